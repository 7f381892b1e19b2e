package get_day_schedule

import (
	"context"
	"fmt"

	"github.com/avelinemakeup/AM-BookingService/internal/availability"
	"github.com/avelinemakeup/AM-BookingService/internal/domain"
)

// UseCase расписание одного дня: статус загруженности и состояние
// каждого слота с причиной недоступности
type UseCase struct {
	reservationRepo ReservationRepository
	lockService     LockService
	hours           domain.WeekSchedule
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	lockService LockService,
	hours domain.WeekSchedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		lockService:     lockService,
		hours:           hours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения расписания дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}

	lockedSlots, err := uc.lockService.LockedSlots(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get locked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get locked slots: %v", ErrStoreUnavailable, err)
	}

	active, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{
		StartDate:  &req.Date,
		EndDate:    &req.Date,
		OnlyActive: true,
	})
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrStoreUnavailable, err)
	}

	snapshot := availability.Snapshot{
		Date:          req.Date,
		Now:           uc.timeProvider.Now(),
		Hours:         uc.hours,
		LockedSlots:   lockedSlots,
		Reservations:  active,
		ConfirmedOnly: req.ConfirmedOnly,
	}

	return fromEvaluation(req.Date, snapshot.EvaluateDay()), nil
}
