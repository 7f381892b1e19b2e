package get_availability

import (
	"context"
	"time"

	"github.com/avelinemakeup/AM-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	ListActive(ctx context.Context, startDate, endDate *time.Time) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
