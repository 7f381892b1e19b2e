package domain

import "github.com/avelinemakeup/AM-BookingService/pkg/types"

// Day density thresholds (active reservation count per date)
const (
	ThresholdHalf       = 3
	ThresholdAlmostFull = 4
	ThresholdFull       = 6
)

// Default opening hours for weekdays missing from the configuration
const (
	DefaultOpenTime  types.TimeString = "09:00"
	DefaultCloseTime types.TimeString = "18:00"
)

// Business validation constants
const (
	MaxClientNameLength = 120
	MaxNotesLength      = 500
	MaxAddressLength    = 250
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
