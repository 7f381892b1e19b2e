package create_reservation

import (
	"errors"
	"net/http"

	"github.com/avelinemakeup/AM-BookingService/internal/api/handlers"
	"github.com/avelinemakeup/AM-BookingService/internal/api/middleware"
	createReservation "github.com/avelinemakeup/AM-BookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSlotUnavailable    = "выбранный временной слот недоступен"
	msgValidationFailed   = "некорректные данные заявки"
	msgStoreUnavailable   = "сервис временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Прямая запись администратора сразу подтверждается
	useCaseReq, err := req.ToUseCaseRequest(middleware.IsAdmin(r.Context()))
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrValidation):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, createReservation.ErrSlotUnavailable):
			h.logger.Warn("POST /reservations - Slot unavailable: date=%s, slot=%s", req.Date, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createReservation.ErrStoreUnavailable):
			h.logger.Error("POST /reservations - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, date=%s, slot=%s, status=%s",
		result.ID, req.Date, req.TimeSlot, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
