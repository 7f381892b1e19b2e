package get_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/avelinemakeup/AM-BookingService/internal/api/handlers"
	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	reservations "github.com/avelinemakeup/AM-BookingService/internal/service/reservations"
	"github.com/avelinemakeup/AM-BookingService/internal/service/reservations/models"
)

const (
	msgInvalidStatus    = "некорректный статус брони"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStoreUnavailable = "сервис временно недоступен, попробуйте позже"
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

// Handle GET /api/v1/reservations?status=&date=&from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListReservationsRequest{}
	query := r.URL.Query()

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	// date задает период из одного дня, from/to задают диапазон
	if date := query.Get("date"); date != "" {
		parsed, err := time.Parse(domain.DateFormat, date)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid date %q: %v", date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &parsed
		req.EndDate = &parsed
	} else {
		if from := query.Get("from"); from != "" {
			parsed, err := time.Parse(domain.DateFormat, from)
			if err != nil {
				h.logger.Warn("GET /reservations - Invalid from %q: %v", from, err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			req.StartDate = &parsed
		}
		if to := query.Get("to"); to != "" {
			parsed, err := time.Parse(domain.DateFormat, to)
			if err != nil {
				h.logger.Warn("GET /reservations - Invalid to %q: %v", to, err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			req.EndDate = &parsed
		}
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("GET /reservations - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Returned %d reservations", len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
