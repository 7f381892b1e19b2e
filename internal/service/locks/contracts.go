package locks

import (
	"context"
	"time"

	"github.com/avelinemakeup/AM-BookingService/internal/events"
)

// LockStorage интерфейс хранилища блокировок слотов
type LockStorage interface {
	Add(ctx context.Context, date time.Time, slotID string) (bool, error)
	Remove(ctx context.Context, date time.Time, slotID string) (bool, error)
	Contains(ctx context.Context, date time.Time, slotID string) (bool, error)
	Members(ctx context.Context, date time.Time) ([]string, error)
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
