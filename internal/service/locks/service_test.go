package locks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	"github.com/avelinemakeup/AM-BookingService/internal/events"
)

var testDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

// memStorage in-memory замена redis-хранилища
type memStorage struct {
	sets map[string]map[string]bool
	err  error
}

func newMemStorage() *memStorage {
	return &memStorage{sets: make(map[string]map[string]bool)}
}

func (m *memStorage) set(date time.Time) map[string]bool {
	key := date.Format(domain.DateFormat)
	if m.sets[key] == nil {
		m.sets[key] = make(map[string]bool)
	}
	return m.sets[key]
}

func (m *memStorage) Add(_ context.Context, date time.Time, slotID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	set := m.set(date)
	if set[slotID] {
		return false, nil
	}
	set[slotID] = true
	return true, nil
}

func (m *memStorage) Remove(_ context.Context, date time.Time, slotID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	set := m.set(date)
	if !set[slotID] {
		return false, nil
	}
	delete(set, slotID)
	return true, nil
}

func (m *memStorage) Contains(_ context.Context, date time.Time, slotID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.set(date)[slotID], nil
}

func (m *memStorage) Members(_ context.Context, date time.Time) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []string
	for slotID := range m.set(date) {
		out = append(out, slotID)
	}
	return out, nil
}

type capturingBus struct {
	published []events.Event
}

func (b *capturingBus) Publish(event events.Event) {
	b.published = append(b.published, event)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *memStorage, *capturingBus) {
	storage := newMemStorage()
	bus := &capturingBus{}
	return NewService(storage, bus, nopLogger{}), storage, bus
}

func TestLockSlotIdempotent(t *testing.T) {
	svc, _, bus := newTestService()
	ctx := context.Background()

	changed, err := svc.LockSlot(ctx, testDate, "09:00")
	require.NoError(t, err)
	assert.True(t, changed)

	// повторная блокировка — no-op, событие не публикуется
	changed, err = svc.LockSlot(ctx, testDate, "09:00")
	require.NoError(t, err)
	assert.False(t, changed)

	assert.Len(t, bus.published, 1)
	assert.Equal(t, events.TypeLockChanged, bus.published[0].Type)
	assert.Equal(t, "locked", bus.published[0].Detail)
}

func TestUnlockSlotIdempotent(t *testing.T) {
	svc, _, bus := newTestService()
	ctx := context.Background()

	// снятие несуществующей блокировки — no-op, не ошибка
	changed, err := svc.UnlockSlot(ctx, testDate, "09:00")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, bus.published)

	_, err = svc.LockSlot(ctx, testDate, "09:00")
	require.NoError(t, err)

	changed, err = svc.UnlockSlot(ctx, testDate, "09:00")
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestLockSlotUnknownSlot(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.LockSlot(context.Background(), testDate, "08:00")
	assert.ErrorIs(t, err, ErrUnknownSlot)

	_, err = svc.UnlockSlot(context.Background(), testDate, "08:00")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestLockSlotStorageFailure(t *testing.T) {
	svc, storage, _ := newTestService()
	storage.err = errors.New("connection refused")

	_, err := svc.LockSlot(context.Background(), testDate, "09:00")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestLockDayUnlockDayRoundTrip(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	changed, err := svc.LockDay(ctx, testDate)
	require.NoError(t, err)
	assert.Equal(t, len(domain.SlotCatalog()), changed)

	fullyLocked, err := svc.IsDayFullyLocked(ctx, testDate)
	require.NoError(t, err)
	assert.True(t, fullyLocked)

	// повторная блокировка дня ничего не меняет
	changed, err = svc.LockDay(ctx, testDate)
	require.NoError(t, err)
	assert.Equal(t, 0, changed)

	changed, err = svc.UnlockDay(ctx, testDate)
	require.NoError(t, err)
	assert.Equal(t, len(domain.SlotCatalog()), changed)

	fullyLocked, err = svc.IsDayFullyLocked(ctx, testDate)
	require.NoError(t, err)
	assert.False(t, fullyLocked)

	locked, err := svc.LockedSlots(ctx, testDate)
	require.NoError(t, err)
	assert.Empty(t, locked)
}

func TestLockDayOnPartiallyLockedDay(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.LockSlot(ctx, testDate, "11:00")
	require.NoError(t, err)

	changed, err := svc.LockDay(ctx, testDate)
	require.NoError(t, err)
	assert.Equal(t, len(domain.SlotCatalog())-1, changed)
}

func TestIsSlotLocked(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	locked, err := svc.IsSlotLocked(ctx, testDate, "14:00")
	require.NoError(t, err)
	assert.False(t, locked)

	_, err = svc.LockSlot(ctx, testDate, "14:00")
	require.NoError(t, err)

	locked, err = svc.IsSlotLocked(ctx, testDate, "14:00")
	require.NoError(t, err)
	assert.True(t, locked)

	// блокировка привязана к дате
	otherDate := testDate.AddDate(0, 0, 1)
	locked, err = svc.IsSlotLocked(ctx, otherDate, "14:00")
	require.NoError(t, err)
	assert.False(t, locked)
}
