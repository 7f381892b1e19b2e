package locks

import (
	"context"
	"fmt"
	"time"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	"github.com/avelinemakeup/AM-BookingService/internal/events"
)

// Service операции владельца над блокировками слотов.
// Каноническая модель — поштучная блокировка: "полностью закрытый день"
// является производным условием, а не отдельной сущностью.
// Каждая мутация сохраняется в хранилище и публикует событие,
// чтобы календарные представления могли перерисоваться.
type Service struct {
	storage LockStorage
	bus     EventPublisher
	logger  Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(storage LockStorage, bus EventPublisher, logger Logger) *Service {
	return &Service{
		storage: storage,
		bus:     bus,
		logger:  logger,
	}
}

// LockSlot блокирует слот на дату. Идемпотентна: повторная блокировка —
// no-op (changed=false), а не ошибка. Ошибка хранилища отличима от no-op.
func (s *Service) LockSlot(ctx context.Context, date time.Time, slotID string) (bool, error) {
	if _, ok := domain.SlotByID(slotID); !ok {
		s.logger.Warn("LockSlot: unknown slot id=%s", slotID)
		return false, ErrUnknownSlot
	}

	changed, err := s.storage.Add(ctx, date, slotID)
	if err != nil {
		s.logger.Error("LockSlot: storage error for date=%s slot=%s: %v",
			date.Format(domain.DateFormat), slotID, err)
		return false, fmt.Errorf("%w: LockSlot: %v", ErrStoreUnavailable, err)
	}

	if changed {
		s.logger.Info("LockSlot: locked date=%s slot=%s", date.Format(domain.DateFormat), slotID)
		s.publish(date, slotID, "locked")
	}

	return changed, nil
}

// UnlockSlot снимает блокировку слота на дату. Идемпотентна.
// Существующие брони не затрагиваются: блокировка ограничивает
// только будущие бронирования.
func (s *Service) UnlockSlot(ctx context.Context, date time.Time, slotID string) (bool, error) {
	if _, ok := domain.SlotByID(slotID); !ok {
		s.logger.Warn("UnlockSlot: unknown slot id=%s", slotID)
		return false, ErrUnknownSlot
	}

	changed, err := s.storage.Remove(ctx, date, slotID)
	if err != nil {
		s.logger.Error("UnlockSlot: storage error for date=%s slot=%s: %v",
			date.Format(domain.DateFormat), slotID, err)
		return false, fmt.Errorf("%w: UnlockSlot: %v", ErrStoreUnavailable, err)
	}

	if changed {
		s.logger.Info("UnlockSlot: unlocked date=%s slot=%s", date.Format(domain.DateFormat), slotID)
		s.publish(date, slotID, "unlocked")
	}

	return changed, nil
}

// LockDay блокирует все слоты каталога на дату.
// Обходит каталог и применяет поштучную операцию, поэтому затрагивает
// только еще не заблокированные слоты и безопасна при повторных вызовах.
// Возвращает число слотов, состояние которых изменилось.
func (s *Service) LockDay(ctx context.Context, date time.Time) (int, error) {
	changedCount := 0
	for _, slot := range domain.SlotCatalog() {
		changed, err := s.LockSlot(ctx, date, slot.ID)
		if err != nil {
			return changedCount, err
		}
		if changed {
			changedCount++
		}
	}

	s.logger.Info("LockDay: date=%s, %d slots changed", date.Format(domain.DateFormat), changedCount)
	return changedCount, nil
}

// UnlockDay снимает блокировку со всех слотов каталога на дату
func (s *Service) UnlockDay(ctx context.Context, date time.Time) (int, error) {
	changedCount := 0
	for _, slot := range domain.SlotCatalog() {
		changed, err := s.UnlockSlot(ctx, date, slot.ID)
		if err != nil {
			return changedCount, err
		}
		if changed {
			changedCount++
		}
	}

	s.logger.Info("UnlockDay: date=%s, %d slots changed", date.Format(domain.DateFormat), changedCount)
	return changedCount, nil
}

// IsSlotLocked проверяет, заблокирован ли слот на дату
func (s *Service) IsSlotLocked(ctx context.Context, date time.Time, slotID string) (bool, error) {
	locked, err := s.storage.Contains(ctx, date, slotID)
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotLocked: %v", ErrStoreUnavailable, err)
	}
	return locked, nil
}

// IsDayFullyLocked проверяет, заблокирован ли каждый слот каталога на дату
func (s *Service) IsDayFullyLocked(ctx context.Context, date time.Time) (bool, error) {
	lockedSet, err := s.LockedSlots(ctx, date)
	if err != nil {
		return false, err
	}

	for _, slot := range domain.SlotCatalog() {
		if !lockedSet[slot.ID] {
			return false, nil
		}
	}
	return true, nil
}

// LockedSlots возвращает множество заблокированных слотов даты
func (s *Service) LockedSlots(ctx context.Context, date time.Time) (map[string]bool, error) {
	members, err := s.storage.Members(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: LockedSlots: %v", ErrStoreUnavailable, err)
	}

	lockedSet := make(map[string]bool, len(members))
	for _, slotID := range members {
		lockedSet[slotID] = true
	}
	return lockedSet, nil
}

func (s *Service) publish(date time.Time, slotID string, detail string) {
	s.bus.Publish(events.Event{
		Type:   events.TypeLockChanged,
		Date:   date.Format(domain.DateFormat),
		SlotID: slotID,
		Detail: detail,
	})
}
