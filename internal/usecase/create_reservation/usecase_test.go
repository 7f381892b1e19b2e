package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	"github.com/avelinemakeup/AM-BookingService/internal/events"
	reservationRepo "github.com/avelinemakeup/AM-BookingService/internal/infra/storage/reservation"
	"github.com/avelinemakeup/AM-BookingService/pkg/ptr"
)

// 2025-06-10 is a Tuesday
var (
	testDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)
)

// fakeRepo репозиторий с заранее заданным состоянием дня
type fakeRepo struct {
	existing  []*domain.Reservation
	createErr error
	nextID    int64
	created   []*domain.Reservation
}

func (f *fakeRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	clone := *res
	clone.ID = f.nextID
	clone.CreatedAt = testNow
	clone.UpdatedAt = testNow
	f.created = append(f.created, &clone)
	f.existing = append(f.existing, &clone)
	return &clone, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.existing {
		if filter.OnlyActive && !r.IsActive() {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeLockService struct {
	locked map[string]bool
	err    error
}

func (f *fakeLockService) LockedSlots(context.Context, time.Time) (map[string]bool, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.locked, nil
}

type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

type fixedTimeProvider struct{}

func (fixedTimeProvider) Now() time.Time { return testNow }

func newTestUseCase(repo *fakeRepo, lockSvc *fakeLockService) (*UseCase, *capturingBus) {
	bus := &capturingBus{}
	uc := NewUseCase(repo, lockSvc, domain.WeekSchedule{}, inlineTxManager{}, bus, nopLogger{})
	uc.timeProvider = fixedTimeProvider{}
	return uc, bus
}

func validRequest() *Request {
	return &Request{
		ClientName: "Claire Fontaine",
		Phone:      "+33612345678",
		Email:      "claire@example.com",
		Date:       testDate,
		TimeSlot:   "09:00",
		Service:    "mariage",
	}
}

func TestExecuteCreatesPendingReservation(t *testing.T) {
	repo := &fakeRepo{}
	uc, bus := newTestUseCase(repo, &fakeLockService{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "09:00", resp.TimeSlot)
	assert.NotZero(t, resp.ID)

	require.Len(t, bus.published, 1)
	assert.Equal(t, events.TypeReservationChanged, bus.published[0].Type)
	assert.Equal(t, "created:pending", bus.published[0].Detail)
}

func TestExecuteAdminEntryIsConfirmed(t *testing.T) {
	repo := &fakeRepo{}
	uc, _ := newTestUseCase(repo, &fakeLockService{})

	req := validRequest()
	req.AdminEntry = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecuteValidation(t *testing.T) {
	longNotes := string(make([]byte, domain.MaxNotesLength+1))

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty name", func(r *Request) { r.ClientName = "  " }},
		{"empty phone", func(r *Request) { r.Phone = "" }},
		{"bad email", func(r *Request) { r.Email = "not-an-email" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty slot", func(r *Request) { r.TimeSlot = "" }},
		{"unknown slot", func(r *Request) { r.TimeSlot = "08:00" }},
		{"empty service", func(r *Request) { r.Service = "" }},
		{"notes too long", func(r *Request) { r.Notes = ptr.Ptr(longNotes) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc, _ := newTestUseCase(repo, &fakeLockService{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, repo.created, "nothing must be written on validation failure")
		})
	}
}

func TestExecuteLockedSlotRejected(t *testing.T) {
	repo := &fakeRepo{}
	lockSvc := &fakeLockService{locked: map[string]bool{"09:00": true}}
	uc, bus := newTestUseCase(repo, lockSvc)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, repo.created)

	require.Len(t, bus.published, 1)
	assert.Equal(t, events.TypeReservationConflict, bus.published[0].Type)
}

func TestExecuteOccupiedSlotRejected(t *testing.T) {
	repo := &fakeRepo{existing: []*domain.Reservation{
		{Date: testDate, TimeSlot: "09:00", Status: domain.StatusPending},
	}}
	uc, _ := newTestUseCase(repo, &fakeLockService{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecutePastDateRejected(t *testing.T) {
	repo := &fakeRepo{}
	uc, _ := newTestUseCase(repo, &fakeLockService{})

	req := validRequest()
	req.Date = time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecuteUniqueViolationMapsToSlotUnavailable(t *testing.T) {
	// пред-проверка прошла, но конкурентная вставка выиграла гонку:
	// ограничение уникальности срабатывает внутри транзакции
	repo := &fakeRepo{createErr: reservationRepo.ErrSlotTaken}
	uc, bus := newTestUseCase(repo, &fakeLockService{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	require.Len(t, bus.published, 1)
	assert.Equal(t, events.TypeReservationConflict, bus.published[0].Type)
}

func TestExecuteLockStoreFailure(t *testing.T) {
	repo := &fakeRepo{}
	lockSvc := &fakeLockService{err: errors.New("connection refused")}
	uc, _ := newTestUseCase(repo, lockSvc)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Empty(t, repo.created)
}

func TestExecuteExactlyOneWins(t *testing.T) {
	// два запроса на один слот: первый создает бронь, второй
	// отсеивается повторной проверкой внутри транзакции
	repo := &fakeRepo{}
	uc, _ := newTestUseCase(repo, &fakeLockService{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(ctx, validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	assert.Len(t, repo.created, 1)
}
