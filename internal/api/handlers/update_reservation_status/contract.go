package update_reservation_status

import "context"

type ReservationService interface {
	Transition(ctx context.Context, id int64, targetStatus string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
