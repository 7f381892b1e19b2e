package get_reservations

import (
	"context"

	"github.com/avelinemakeup/AM-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
