package courier_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/gateway/geocoding"
	"dispatch/internal/pkg/middlewares/actor"
	"dispatch/internal/service/courier"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorEntity, ok := actor.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var registerDTO dto.CourierRegister
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	registration := courier.Registration{
		Vehicle:         toVehicleModify(registerDTO.Vehicle),
		LocationAddress: registerDTO.LocationAddress,
	}
	if registerDTO.Location != nil {
		registration.Location = &entities.GeoPoint{
			Longitude: registerDTO.Location.Longitude,
			Latitude:  registerDTO.Location.Latitude,
			Address:   registerDTO.Location.Address,
		}
	}

	id, err := h.service.RegisterCourier(r.Context(), actorEntity, registration)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidVehicle),
			errors.Is(err, courier.ErrInvalidCoordinate),
			errors.Is(err, geocoding.ErrAddressNotFound):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrAlreadyCourier),
			errors.Is(err, courier.ErrPlateConflict):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, geocoding.ErrUnavailable):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CourierRegisterResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Обязательные поля транспорта передаются в сервис как nil, когда они не
// заполнены, чтобы сработала проверка ErrMissingRequiredFields.
func toVehicleModify(vehicleDTO dto.VehicleCreate) entities.VehicleModify {
	vehicleModify := entities.VehicleModify{
		Color:          &vehicleDTO.Color,
		CapacityWeight: &vehicleDTO.CapacityWeight,
		CapacityVolume: &vehicleDTO.CapacityVolume,
	}

	if vehicleDTO.Type != "" {
		vehicleType := entities.VehicleType(vehicleDTO.Type)
		vehicleModify.Type = &vehicleType
	}
	if vehicleDTO.Make != "" {
		vehicleModify.Make = &vehicleDTO.Make
	}
	if vehicleDTO.Model != "" {
		vehicleModify.Model = &vehicleDTO.Model
	}
	if vehicleDTO.Year != 0 {
		vehicleModify.Year = &vehicleDTO.Year
	}
	if vehicleDTO.LicensePlate != "" {
		vehicleModify.LicensePlate = &vehicleDTO.LicensePlate
	}

	if vehicleDTO.Insurance != nil {
		vehicleModify.Insurance = &entities.InsuranceRecord{
			Provider:     vehicleDTO.Insurance.Provider,
			PolicyNumber: vehicleDTO.Insurance.PolicyNumber,
			ExpiryDate:   vehicleDTO.Insurance.ExpiresAt,
		}
	}
	if vehicleDTO.Registration != nil {
		vehicleModify.Registration = &entities.RegistrationRecord{
			Number:     vehicleDTO.Registration.Number,
			ExpiryDate: vehicleDTO.Registration.ExpiresAt,
		}
	}

	return vehicleModify
}
