package get_day_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avelinemakeup/AM-BookingService/internal/api/handlers"
	"github.com/avelinemakeup/AM-BookingService/internal/api/middleware"
	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	getDaySchedule "github.com/avelinemakeup/AM-BookingService/internal/usecase/get_day_schedule"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStoreUnavailable = "сервис временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/days/{date}?confirmedOnly=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /calendar/days/{date} - Invalid date %q: %v", vars["date"], err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Админский подсчет загруженности учитывает только подтвержденные
	confirmedOnly := r.URL.Query().Get("confirmedOnly") == "true" && middleware.IsAdmin(r.Context())

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{
		Date:          date,
		ConfirmedOnly: confirmedOnly,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrValidation):
			h.logger.Warn("GET /calendar/days/%s - Validation failed: %v", vars["date"], err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getDaySchedule.ErrStoreUnavailable):
			h.logger.Error("GET /calendar/days/%s - Store unavailable: %v", vars["date"], err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /calendar/days/%s - Failed to build schedule: %v", vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/days/%s - Status %s", result.Date, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
