package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"confirmed to rejected", StatusConfirmed, StatusRejected, false},
		{"rejected to anything", StatusRejected, StatusPending, false},
		{"rejected to confirmed", StatusRejected, StatusConfirmed, false},
		{"cancelled to pending", StatusCancelled, StatusPending, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
		{"same status is not a transition", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Reservation{Status: tt.from}
			assert.Equal(t, tt.allowed, r.CanTransitionTo(tt.to))
		})
	}
}

func TestIsActiveAndTerminal(t *testing.T) {
	for _, status := range ActiveStatuses() {
		r := &Reservation{Status: status}
		assert.True(t, r.IsActive(), "status %s must be active", status)
		assert.False(t, r.IsTerminal())
	}
	for _, status := range TerminalStatuses() {
		r := &Reservation{Status: status}
		assert.False(t, r.IsActive(), "status %s must not be active", status)
		assert.True(t, r.IsTerminal())
	}
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusCancelled))
	assert.False(t, IsValidStatus("approved"))
	assert.False(t, IsValidStatus(""))
}

func TestDayStatusForCount(t *testing.T) {
	tests := []struct {
		count int
		want  DayStatus
	}{
		{0, DayAvailable},
		{2, DayAvailable},
		{3, DayHalf},
		{4, DayAlmostFull},
		{5, DayAlmostFull},
		{6, DayFull},
		{7, DayFull},
		{100, DayFull},
		{-1, DayAvailable},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DayStatusForCount(tt.count), "count=%d", tt.count)
	}
}

func TestSlotCatalogLookup(t *testing.T) {
	slots := SlotCatalog()
	assert.Len(t, slots, 4)

	slot, ok := SlotByID("09:00")
	assert.True(t, ok)
	assert.Equal(t, "09:00 – 10:30", slot.Label)

	_, ok = SlotByID("08:00")
	assert.False(t, ok)

	// неизвестные id отображаются как есть
	assert.Equal(t, "08:00", SlotLabel("08:00"))
	assert.Equal(t, "Maquillage mariée", ServiceLabel("mariage"))
	assert.Equal(t, "tatouage", ServiceLabel("tatouage"))
}
