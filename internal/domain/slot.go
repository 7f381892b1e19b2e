package domain

import "github.com/avelinemakeup/AM-BookingService/pkg/types"

// TimeSlot represents an immutable entry of the daily slot catalog
type TimeSlot struct {
	ID        string // catalog id, the start time "HH:MM"
	Label     string
	StartTime types.TimeString
	EndTime   types.TimeString
}

// slotCatalog fixed set of bookable slots, defined at deploy time
var slotCatalog = []TimeSlot{
	{ID: "09:00", Label: "09:00 – 10:30", StartTime: "09:00", EndTime: "10:30"},
	{ID: "11:00", Label: "11:00 – 12:30", StartTime: "11:00", EndTime: "12:30"},
	{ID: "14:00", Label: "14:00 – 15:30", StartTime: "14:00", EndTime: "15:30"},
	{ID: "16:00", Label: "16:00 – 17:30", StartTime: "16:00", EndTime: "17:30"},
}

// SlotCatalog returns the ordered list of bookable time slots
func SlotCatalog() []TimeSlot {
	out := make([]TimeSlot, len(slotCatalog))
	copy(out, slotCatalog)
	return out
}

// SlotByID looks up a catalog slot by id
func SlotByID(id string) (TimeSlot, bool) {
	for _, s := range slotCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// SlotLabel returns the display label for a slot id,
// or the id itself when the slot is unknown
func SlotLabel(id string) string {
	if s, ok := SlotByID(id); ok {
		return s.Label
	}
	return id
}

// serviceStyles fixed catalog of bookable service styles
var serviceStyles = map[string]string{
	"mariage":  "Maquillage mariée",
	"soiree":   "Maquillage soirée",
	"shooting": "Maquillage shooting",
	"cours":    "Cours d'auto-maquillage",
}

// ServiceLabel returns the display label for a service style id,
// or the id itself when the style is unknown
func ServiceLabel(id string) string {
	if label, ok := serviceStyles[id]; ok {
		return label
	}
	return id
}

// DayStatus aggregate booking-load classification of a calendar date
type DayStatus string

const (
	DayPast       DayStatus = "past"
	DayClosed     DayStatus = "closed"
	DayAvailable  DayStatus = "available"
	DayHalf       DayStatus = "half"
	DayAlmostFull DayStatus = "almost-full"
	DayFull       DayStatus = "full"
)

// DayStatusForCount maps an active-reservation count to a density status.
// Boundaries are exact: 0-2 available, 3 half, 4-5 almost-full, >=6 full.
// Counts above the cap stay "full"; negative counts are treated as zero.
func DayStatusForCount(count int) DayStatus {
	switch {
	case count >= ThresholdFull:
		return DayFull
	case count >= ThresholdAlmostFull:
		return DayAlmostFull
	case count >= ThresholdHalf:
		return DayHalf
	default:
		return DayAvailable
	}
}
