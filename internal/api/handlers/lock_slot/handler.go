package lock_slot

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
	msgUnknownSlot      = "неизвестный временной слот"
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

// Handle PUT /api/v1/calendar/days/{date}/locks/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("PUT /calendar/days/{date}/locks/{slotId} - Invalid date %q: %v", vars["date"], err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	slotID := vars["slotId"]

	changed, err := h.service.LockSlot(r.Context(), date, slotID)
	if err != nil {
		switch {
		case errors.Is(err, locks.ErrUnknownSlot):
			h.logger.Warn("PUT /calendar/days/%s/locks/%s - Unknown slot", vars["date"], slotID)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, locks.ErrStoreUnavailable):
			h.logger.Error("PUT /calendar/days/%s/locks/%s - Store unavailable: %v", vars["date"], slotID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PUT /calendar/days/%s/locks/%s - Failed to lock slot: %v", vars["date"], slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /calendar/days/%s/locks/%s - Locked (changed=%v)", vars["date"], slotID, changed)
	handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"date":    vars["date"],
		"slotId":  slotID,
		"locked":  true,
		"changed": changed,
	})
}
