package get_availability

import (
	"github.com/avelinemakeup/AM-BookingService/internal/service/reservations/models"
)

// OccupiedSlot занятый слот без персональных данных клиента.
// Публичный эндпоинт отдает только то, что нужно календарю
// для расчета занятости.
type OccupiedSlot struct {
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
	Status   string `json:"status"`
}

// AvailabilityResponse список занятых слотов за период
type AvailabilityResponse struct {
	Reservations []OccupiedSlot `json:"reservations"`
}

// FromServiceResponse конвертирует ответ сервиса, отбрасывая
// клиентские поля
func FromServiceResponse(resp *models.ReservationListResponse) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Reservations: make([]OccupiedSlot, 0, len(resp.Reservations)),
	}

	for _, r := range resp.Reservations {
		out.Reservations = append(out.Reservations, OccupiedSlot{
			Date:     r.Date,
			TimeSlot: r.TimeSlot,
			Status:   r.Status,
		})
	}

	return out
}
