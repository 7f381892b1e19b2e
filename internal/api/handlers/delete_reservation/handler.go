package delete_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avelinemakeup/AM-BookingService/internal/api/handlers"
	reservations "github.com/avelinemakeup/AM-BookingService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgReservationNotFound  = "бронь не найдена"
	msgStoreUnavailable     = "сервис временно недоступен, попробуйте позже"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/%d - Reservation not found", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("DELETE /reservations/%d - Store unavailable: %v", id, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("DELETE /reservations/%d - Failed to delete reservation: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/%d - Reservation deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
