package lock_slot

import (
	"context"
	"time"
)

type LockService interface {
	LockSlot(ctx context.Context, date time.Time, slotID string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
