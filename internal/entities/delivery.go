package entities

import "time"

type Delivery struct {
	ID           int64
	UserID       int64
	CourierID    *int64
	Pickup       GeoPoint
	Dropoff      GeoPoint
	WeightKg     float64
	Dimensions   *Dimensions
	DistanceKm   float64
	Price        float64
	TrackingCode string
	Status       DeliveryStatusType
	CreatedAt    time.Time
}

// Dimensions габариты посылки, либо заданы все три, либо ни одного.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

type DeliveryStatusType string

const (
	DeliveryRequested DeliveryStatusType = "requested"
	DeliveryAccepted  DeliveryStatusType = "accepted"
	DeliveryPickedUp  DeliveryStatusType = "picked_up"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryCancelled DeliveryStatusType = "cancelled"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// IsTerminal терминальные статусы не допускают никаких переходов.
func (s DeliveryStatusType) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

// CanTransitionTo проверяет легальность перехода статуса.
// Переход requested -> accepted выполняется только назначением курьера,
// запрет прямого редактирования обеспечивает сервисный слой.
func (s DeliveryStatusType) CanTransitionTo(next DeliveryStatusType) bool {
	if s.IsTerminal() {
		return false
	}
	if next == DeliveryCancelled {
		return true
	}

	switch s {
	case DeliveryRequested:
		return next == DeliveryAccepted
	case DeliveryAccepted:
		return next == DeliveryPickedUp
	case DeliveryPickedUp:
		return next == DeliveryInTransit
	case DeliveryInTransit:
		return next == DeliveryDelivered
	default:
		return false
	}
}

// DeliveryModify частичное обновление деталей доставки.
// Статус здесь отсутствует намеренно: смена статуса это отдельная
// операция со своими правилами доступа.
type DeliveryModify struct {
	ID         *int64
	Pickup     *GeoPoint
	Dropoff    *GeoPoint
	WeightKg   *float64
	Dimensions *Dimensions
}

// DeliveryFilter выборка доставок по владельцу либо курьеру.
type DeliveryFilter struct {
	UserID    *int64
	CourierID *int64
}
