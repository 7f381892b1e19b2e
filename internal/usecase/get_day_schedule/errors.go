package get_day_schedule

import "errors"

var (
	ErrValidation       = errors.New("get_day_schedule: invalid request")
	ErrStoreUnavailable = errors.New("get_day_schedule: store unavailable")
)
