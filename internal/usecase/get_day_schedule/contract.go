package get_day_schedule

import (
	"context"
	"time"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
)

// ReservationRepository определяет контракт для работы с бронями
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// LockService определяет контракт для работы с блокировками календаря
type LockService interface {
	LockedSlots(ctx context.Context, date time.Time) (map[string]bool, error)
}

// TimeProvider provides current time (abstracted for testing)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger определяет интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
