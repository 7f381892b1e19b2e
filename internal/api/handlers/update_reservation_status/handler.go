package update_reservation_status

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
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgReservationNotFound  = "бронь не найдена"
	msgInvalidTransition    = "недопустимый переход статуса"
	msgSlotUnavailable      = "слот уже занят другой бронью"
	msgStoreUnavailable     = "сервис временно недоступен, попробуйте позже"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

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

// Handle PUT /api/v1/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id}/status - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/%d/status - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Transition(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/%d/status - Reservation not found", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PUT /reservations/%d/status - Invalid transition to %q", id, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, reservations.ErrSlotUnavailable):
			h.logger.Warn("PUT /reservations/%d/status - Slot already taken", id)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("PUT /reservations/%d/status - Store unavailable: %v", id, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PUT /reservations/%d/status - Failed to update status: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/%d/status - Status updated to %s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}
