package lock_day

import (
	"context"
	"time"
)

type LockService interface {
	LockDay(ctx context.Context, date time.Time) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
