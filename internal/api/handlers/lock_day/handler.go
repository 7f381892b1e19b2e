package lock_day

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avelinemakeup/AM-BookingService/internal/api/handlers"
	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	locks "github.com/avelinemakeup/AM-BookingService/internal/service/locks"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStoreUnavailable = "сервис временно недоступен, попробуйте позже"
)

type Handler struct {
	service LockService
	logger  Logger
}

func NewHandler(service LockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/calendar/days/{date}/locks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("PUT /calendar/days/{date}/locks - Invalid date %q: %v", vars["date"], err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	changedCount, err := h.service.LockDay(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, locks.ErrStoreUnavailable):
			h.logger.Error("PUT /calendar/days/%s/locks - Store unavailable: %v", vars["date"], err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PUT /calendar/days/%s/locks - Failed to lock day: %v", vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /calendar/days/%s/locks - Day locked, %d slots changed", vars["date"], changedCount)
	handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"date":         vars["date"],
		"locked":       true,
		"changedSlots": changedCount,
	})
}
