package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/gateway/geocoding"
	"dispatch/internal/pkg/middlewares/actor"
	"dispatch/internal/service/delivery"
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

	var createDTO dto.DeliveryCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	create := delivery.CreateDelivery{
		PickupAddress:  createDTO.PickupAddress,
		DropoffAddress: createDTO.DropoffAddress,
		WeightKg:       createDTO.WeightKg,
	}
	if createDTO.Dimensions != nil {
		create.Dimensions = &entities.Dimensions{
			Length: createDTO.Dimensions.Length,
			Width:  createDTO.Dimensions.Width,
			Height: createDTO.Dimensions.Height,
		}
	}

	created, err := h.service.CreateDelivery(r.Context(), actorEntity, create)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidPackage),
			errors.Is(err, delivery.ErrInvalidCoordinate),
			errors.Is(err, geocoding.ErrAddressNotFound):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, geocoding.ErrUnavailable):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.NewDelivery(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
