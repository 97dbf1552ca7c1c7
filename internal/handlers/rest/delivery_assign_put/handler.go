package delivery_assign_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dispatch/internal/dto"
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
	deliveryID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var assignDTO dto.DeliveryAssign
	err = json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil || assignDTO.CourierID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assigned, err := h.service.AssignCourier(r.Context(), actorEntity, deliveryID, assignDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, delivery.ErrDeliveryNotFound),
			errors.Is(err, delivery.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrCourierUnavailable),
			errors.Is(err, delivery.ErrStorageConflict):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, delivery.ErrInvalidTransition):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.NewDelivery(assigned))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
