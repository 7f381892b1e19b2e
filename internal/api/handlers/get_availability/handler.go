package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/avelinemakeup/AM-BookingService/internal/api/handlers"
	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	reservations "github.com/avelinemakeup/AM-BookingService/internal/service/reservations"
)

const (
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

// Handle GET /api/v1/reservations/availability?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var startDate, endDate *time.Time
	query := r.URL.Query()

	if from := query.Get("from"); from != "" {
		parsed, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			h.logger.Warn("GET /reservations/availability - Invalid from %q: %v", from, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		startDate = &parsed
	}
	if to := query.Get("to"); to != "" {
		parsed, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			h.logger.Warn("GET /reservations/availability - Invalid to %q: %v", to, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		endDate = &parsed
	}

	result, err := h.service.ListActive(r.Context(), startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("GET /reservations/availability - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /reservations/availability - Failed to list active reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/availability - Returned %d occupied slots", len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
