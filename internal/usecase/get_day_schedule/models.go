package get_day_schedule

import (
	"time"

	"github.com/avelinemakeup/AM-BookingService/internal/availability"
	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	"github.com/avelinemakeup/AM-BookingService/pkg/types"
)

// Request входные данные для получения расписания дня
type Request struct {
	Date time.Time
	// ConfirmedOnly учитывать только подтвержденные брони при
	// расчете загруженности дня (режим администратора)
	ConfirmedOnly bool
}

// SlotInfo состояние одного слота в расписании дня
type SlotInfo struct {
	ID        string           `json:"id"`
	Label     string           `json:"label"`
	StartTime types.TimeString `json:"start_time"`
	EndTime   types.TimeString `json:"end_time"`
	Bookable  bool             `json:"bookable"`
	Reason    string           `json:"reason,omitempty"`
}

// Response расписание дня со статусом загруженности
type Response struct {
	Date   string     `json:"date"`
	Status string     `json:"status"`
	Slots  []SlotInfo `json:"slots"`
}

func fromEvaluation(date time.Time, eval availability.DayEvaluation) *Response {
	slots := make([]SlotInfo, 0, len(eval.Slots))
	for _, s := range eval.Slots {
		slots = append(slots, SlotInfo{
			ID:        s.Slot.ID,
			Label:     s.Slot.Label,
			StartTime: s.Slot.StartTime,
			EndTime:   s.Slot.EndTime,
			Bookable:  s.Bookable,
			Reason:    string(s.Reason),
		})
	}

	return &Response{
		Date:   date.Format(domain.DateFormat),
		Status: string(eval.Status),
		Slots:  slots,
	}
}
