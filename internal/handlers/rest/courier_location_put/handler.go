package courier_location_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var locationDTO dto.CourierLocationUpdate
	err = json.NewDecoder(r.Body).Decode(&locationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var point *entities.GeoPoint
	if locationDTO.Location != nil {
		point = &entities.GeoPoint{
			Longitude: locationDTO.Location.Longitude,
			Latitude:  locationDTO.Location.Latitude,
			Address:   locationDTO.Location.Address,
		}
	}

	updated, err := h.service.UpdateLocation(r.Context(), actorEntity, id, locationDTO.Address, point)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidCoordinate),
			errors.Is(err, geocoding.ErrAddressNotFound):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, geocoding.ErrUnavailable):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.NewCourier(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
