package availability

import (
	"time"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
)

// Snapshot состояние календаря на одну дату, собранное вызывающей стороной.
// Все функции пакета — чистые вычисления над этим снимком: сами они
// ничего не читают из хранилищ и не знают про "текущее" время.
type Snapshot struct {
	Date  time.Time // календарная дата, время игнорируется
	Now   time.Time // момент запроса
	Hours domain.WeekSchedule

	// LockedSlots множество слотов, заблокированных владельцем на дату
	LockedSlots map[string]bool

	// Reservations все активные (pending/confirmed) брони на дату
	Reservations []*domain.Reservation

	// ConfirmedOnly считать в плотности дня только подтвержденные брони
	// (админский календарь); на бронируемость слотов не влияет
	ConfirmedOnly bool
}

// SlotReason причина недоступности слота
type SlotReason string

const (
	ReasonPast     SlotReason = "past"
	ReasonClosed   SlotReason = "closed"
	ReasonLocked   SlotReason = "locked"
	ReasonReserved SlotReason = "reserved"
)

// SlotState состояние одного слота календарной ячейки
type SlotState struct {
	Slot     domain.TimeSlot
	Bookable bool
	Reason   SlotReason // пустая, если слот доступен
}

// DayEvaluation агрегированное состояние даты
type DayEvaluation struct {
	Status domain.DayStatus
	Slots  []SlotState
}

// IsBookable проверяет, можно ли забронировать слот:
// слот не в прошлом, не заблокирован владельцем, день недели рабочий
// и слот не занят активной бронью.
// Слот, который одновременно заблокирован и занят, просто недоступен —
// отдельного состояния "конфликт" нет.
func (s Snapshot) IsBookable(slotID string) bool {
	slot, ok := domain.SlotByID(slotID)
	if !ok {
		return false
	}
	return s.slotState(slot).Bookable
}

// EvaluateDay возвращает статус даты и состояние каждого слота каталога.
// Приоритет статусов: past > closed (полная блокировка или выходной) >
// пороги плотности по числу активных броней.
func (s Snapshot) EvaluateDay() DayEvaluation {
	eval := DayEvaluation{
		Slots: make([]SlotState, 0, len(domain.SlotCatalog())),
	}

	for _, slot := range domain.SlotCatalog() {
		eval.Slots = append(eval.Slots, s.slotState(slot))
	}

	switch {
	case isDateInPast(s.Date, s.Now):
		eval.Status = domain.DayPast
	case s.isDayFullyLocked() || s.Hours.IsClosedOn(s.Date):
		eval.Status = domain.DayClosed
	default:
		eval.Status = domain.DayStatusForCount(s.densityCount())
	}

	return eval
}

// slotState вычисляет состояние одного слота
func (s Snapshot) slotState(slot domain.TimeSlot) SlotState {
	state := SlotState{Slot: slot}

	switch {
	case s.isSlotInPast(slot):
		state.Reason = ReasonPast
	case s.Hours.IsClosedOn(s.Date):
		state.Reason = ReasonClosed
	case s.LockedSlots[slot.ID]:
		state.Reason = ReasonLocked
	case s.activeCount(slot.ID) > 0:
		state.Reason = ReasonReserved
	default:
		state.Bookable = true
	}

	return state
}

// isSlotInPast слот в прошлом, если дата+время начала строго раньше now;
// будущие слоты текущего дня остаются доступными
func (s Snapshot) isSlotInPast(slot domain.TimeSlot) bool {
	if isDateInPast(s.Date, s.Now) {
		return true
	}
	start, err := slot.StartTime.At(s.Date)
	if err != nil {
		return true
	}
	return start.Before(s.Now)
}

// isDayFullyLocked день полностью заблокирован, если заблокирован
// каждый слот каталога (производное условие, не отдельный маркер)
func (s Snapshot) isDayFullyLocked() bool {
	for _, slot := range domain.SlotCatalog() {
		if !s.LockedSlots[slot.ID] {
			return false
		}
	}
	return true
}

// activeCount число активных броней, занимающих слот
func (s Snapshot) activeCount(slotID string) int {
	count := 0
	for _, r := range s.Reservations {
		if r.TimeSlot == slotID && r.IsActive() {
			count++
		}
	}
	return count
}

// densityCount число броней, учитываемых в плотности дня
func (s Snapshot) densityCount() int {
	count := 0
	for _, r := range s.Reservations {
		if !r.IsActive() {
			continue
		}
		if s.ConfirmedOnly && r.Status != domain.StatusConfirmed {
			continue
		}
		count++
	}
	return count
}

// isDateInPast дата строго раньше сегодняшней (время игнорируется)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
