package delivery_price

import "dispatch/internal/entities"

// Дефолтные ставки тарифа, менять только синхронно с прайсингом
// мобильных клиентов.
const (
	DefaultBasePrice     = 5.0
	DefaultPerKmRate     = 1.5
	DefaultPerKgRate     = 0.2
	DefaultPerVolumeRate = 0.0001
)

// PriceFactory детерминированный расчет стоимости доставки.
// Котировка считается ровно один раз при создании доставки и больше
// никогда не пересчитывается.
type PriceFactory struct {
	basePrice     float64
	perKmRate     float64
	perKgRate     float64
	perVolumeRate float64
}

func New() *PriceFactory {
	return &PriceFactory{
		basePrice:     DefaultBasePrice,
		perKmRate:     DefaultPerKmRate,
		perKgRate:     DefaultPerKgRate,
		perVolumeRate: DefaultPerVolumeRate,
	}
}

func NewWithRates(basePrice, perKmRate, perKgRate, perVolumeRate float64) *PriceFactory {
	return &PriceFactory{
		basePrice:     basePrice,
		perKmRate:     perKmRate,
		perKgRate:     perKgRate,
		perVolumeRate: perVolumeRate,
	}
}

// Quote цена = база + дистанция + вес + объем. Объемная часть
// учитывается только когда заданы все три габарита.
func (f *PriceFactory) Quote(distanceKm, weightKg float64, dims *entities.Dimensions) float64 {
	price := f.basePrice +
		distanceKm*f.perKmRate +
		weightKg*f.perKgRate

	if dims != nil {
		price += dims.Volume() * f.perVolumeRate
	}

	return price
}
