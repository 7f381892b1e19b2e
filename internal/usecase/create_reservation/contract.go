package create_reservation

import (
	"context"
	"time"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	"github.com/avelinemakeup/AM-BookingService/internal/events"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// LockService интерфейс сервиса блокировок слотов
type LockService interface {
	LockedSlots(ctx context.Context, date time.Time) (map[string]bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс для уведомления подписчиков об изменениях
type EventPublisher interface {
	Publish(event events.Event)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
