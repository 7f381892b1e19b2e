package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
)

// 2025-06-10 is a Tuesday
var (
	tuesday = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	morning = time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
)

func activeReservation(slotID string) *domain.Reservation {
	return &domain.Reservation{Date: tuesday, TimeSlot: slotID, Status: domain.StatusConfirmed}
}

func TestIsBookable(t *testing.T) {
	snap := Snapshot{Date: tuesday, Now: morning}

	for _, slot := range domain.SlotCatalog() {
		assert.True(t, snap.IsBookable(slot.ID), "empty future day, slot %s", slot.ID)
	}
	assert.False(t, snap.IsBookable("08:00"), "unknown slot id")
}

func TestIsBookable_PastDateNeverBookable(t *testing.T) {
	snap := Snapshot{
		Date: tuesday,
		Now:  time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC),
	}

	for _, slot := range domain.SlotCatalog() {
		assert.False(t, snap.IsBookable(slot.ID), "past date, slot %s", slot.ID)
	}
}

func TestIsBookable_ElapsedSlotsOfToday(t *testing.T) {
	// в 12:00 утренние слоты прошли, дневные еще доступны
	snap := Snapshot{
		Date: tuesday,
		Now:  time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
	}

	assert.False(t, snap.IsBookable("09:00"))
	assert.False(t, snap.IsBookable("11:00"))
	assert.True(t, snap.IsBookable("14:00"))
	assert.True(t, snap.IsBookable("16:00"))
}

func TestIsBookable_LockedSlot(t *testing.T) {
	snap := Snapshot{
		Date:        tuesday,
		Now:         morning,
		LockedSlots: map[string]bool{"14:00": true},
	}

	assert.False(t, snap.IsBookable("14:00"))
	assert.True(t, snap.IsBookable("09:00"))
}

func TestIsBookable_ReservedSlot(t *testing.T) {
	snap := Snapshot{
		Date:         tuesday,
		Now:          morning,
		Reservations: []*domain.Reservation{activeReservation("11:00")},
	}

	assert.False(t, snap.IsBookable("11:00"))
	assert.True(t, snap.IsBookable("09:00"))
}

func TestIsBookable_PendingOccupiesSlot(t *testing.T) {
	pending := &domain.Reservation{Date: tuesday, TimeSlot: "09:00", Status: domain.StatusPending}
	snap := Snapshot{
		Date:         tuesday,
		Now:          morning,
		Reservations: []*domain.Reservation{pending},
	}

	assert.False(t, snap.IsBookable("09:00"))
}

func TestIsBookable_RejectedFreesSlot(t *testing.T) {
	rejected := &domain.Reservation{Date: tuesday, TimeSlot: "09:00", Status: domain.StatusRejected}
	snap := Snapshot{
		Date:         tuesday,
		Now:          morning,
		Reservations: []*domain.Reservation{rejected},
	}

	assert.True(t, snap.IsBookable("09:00"))
}

func TestIsBookable_ClosedWeekday(t *testing.T) {
	hours := domain.WeekSchedule{Tuesday: domain.DaySchedule{Closed: true}}
	snap := Snapshot{Date: tuesday, Now: morning, Hours: hours}

	assert.False(t, snap.IsBookable("09:00"))
}

func TestSlotReasonPrecedence(t *testing.T) {
	// слот одновременно в прошлом, заблокирован и занят: причина past
	snap := Snapshot{
		Date:         tuesday,
		Now:          time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
		LockedSlots:  map[string]bool{"09:00": true},
		Reservations: []*domain.Reservation{activeReservation("09:00")},
	}

	eval := snap.EvaluateDay()
	assert.Equal(t, ReasonPast, eval.Slots[0].Reason)

	// заблокирован и занят, не в прошлом: причина locked
	snap.Now = morning
	eval = snap.EvaluateDay()
	assert.Equal(t, ReasonLocked, eval.Slots[0].Reason)
	assert.False(t, eval.Slots[0].Bookable)
}

func TestEvaluateDay_TuesdayScenario(t *testing.T) {
	// 2025-06-10: слот 09:00 заблокирован владельцем, 11:00 занят
	// подтвержденной бронью, остальные свободны
	snap := Snapshot{
		Date:         tuesday,
		Now:          morning,
		LockedSlots:  map[string]bool{"09:00": true},
		Reservations: []*domain.Reservation{activeReservation("11:00")},
	}

	eval := snap.EvaluateDay()
	assert.Equal(t, domain.DayAvailable, eval.Status)

	byID := map[string]SlotState{}
	for _, s := range eval.Slots {
		byID[s.Slot.ID] = s
	}

	assert.False(t, byID["09:00"].Bookable)
	assert.Equal(t, ReasonLocked, byID["09:00"].Reason)
	assert.False(t, byID["11:00"].Bookable)
	assert.Equal(t, ReasonReserved, byID["11:00"].Reason)
	assert.True(t, byID["14:00"].Bookable)
	assert.True(t, byID["16:00"].Bookable)
}

func TestEvaluateDay_StatusPrecedence(t *testing.T) {
	allLocked := map[string]bool{}
	for _, slot := range domain.SlotCatalog() {
		allLocked[slot.ID] = true
	}

	tests := []struct {
		name string
		snap Snapshot
		want domain.DayStatus
	}{
		{
			"past date",
			Snapshot{Date: tuesday, Now: time.Date(2025, 6, 12, 8, 0, 0, 0, time.UTC)},
			domain.DayPast,
		},
		{
			"fully locked day",
			Snapshot{Date: tuesday, Now: morning, LockedSlots: allLocked},
			domain.DayClosed,
		},
		{
			"closed weekday",
			Snapshot{Date: tuesday, Now: morning, Hours: domain.WeekSchedule{Tuesday: domain.DaySchedule{Closed: true}}},
			domain.DayClosed,
		},
		{
			"past wins over locked",
			Snapshot{Date: tuesday, Now: time.Date(2025, 6, 12, 8, 0, 0, 0, time.UTC), LockedSlots: allLocked},
			domain.DayPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.snap.EvaluateDay().Status)
		})
	}
}

func TestEvaluateDay_DensityThresholds(t *testing.T) {
	makeSnap := func(count int) Snapshot {
		reservations := make([]*domain.Reservation, 0, count)
		for i := 0; i < count; i++ {
			reservations = append(reservations, activeReservation("09:00"))
		}
		return Snapshot{Date: tuesday, Now: morning, Reservations: reservations}
	}

	tests := []struct {
		count int
		want  domain.DayStatus
	}{
		{0, domain.DayAvailable},
		{2, domain.DayAvailable},
		{3, domain.DayHalf},
		{5, domain.DayAlmostFull},
		{6, domain.DayFull},
		{7, domain.DayFull},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, makeSnap(tt.count).EvaluateDay().Status, "count=%d", tt.count)
	}
}

func TestEvaluateDay_ConfirmedOnlyDensity(t *testing.T) {
	reservations := []*domain.Reservation{
		{Date: tuesday, TimeSlot: "09:00", Status: domain.StatusConfirmed},
		{Date: tuesday, TimeSlot: "11:00", Status: domain.StatusPending},
		{Date: tuesday, TimeSlot: "14:00", Status: domain.StatusPending},
		{Date: tuesday, TimeSlot: "16:00", Status: domain.StatusPending},
	}

	all := Snapshot{Date: tuesday, Now: morning, Reservations: reservations}
	assert.Equal(t, domain.DayAlmostFull, all.EvaluateDay().Status)

	confirmedOnly := all
	confirmedOnly.ConfirmedOnly = true
	assert.Equal(t, domain.DayAvailable, confirmedOnly.EvaluateDay().Status)
}
