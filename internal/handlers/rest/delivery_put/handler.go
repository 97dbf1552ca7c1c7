package delivery_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updateDTO dto.DeliveryUpdate
	err = json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryModify := entities.DeliveryModify{
		ID:       &id,
		WeightKg: updateDTO.WeightKg,
	}
	if updateDTO.Pickup != nil {
		deliveryModify.Pickup = &entities.GeoPoint{
			Longitude: updateDTO.Pickup.Longitude,
			Latitude:  updateDTO.Pickup.Latitude,
			Address:   updateDTO.Pickup.Address,
		}
	}
	if updateDTO.Dropoff != nil {
		deliveryModify.Dropoff = &entities.GeoPoint{
			Longitude: updateDTO.Dropoff.Longitude,
			Latitude:  updateDTO.Dropoff.Latitude,
			Address:   updateDTO.Dropoff.Address,
		}
	}
	if updateDTO.Dimensions != nil {
		deliveryModify.Dimensions = &entities.Dimensions{
			Length: updateDTO.Dimensions.Length,
			Width:  updateDTO.Dimensions.Width,
			Height: updateDTO.Dimensions.Height,
		}
	}

	updated, err := h.service.UpdateDelivery(r.Context(), actorEntity, deliveryModify)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidPackage),
			errors.Is(err, delivery.ErrInvalidCoordinate):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrInvalidTransition):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.NewDelivery(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
