package reservations

import (
	"context"
	"time"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	"github.com/avelinemakeup/AM-BookingService/internal/events"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	CountActiveBySlot(ctx context.Context, date time.Time, slotID string, excludeID int64) (int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс для уведомления подписчиков об изменениях
type EventPublisher interface {
	Publish(event events.Event)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
