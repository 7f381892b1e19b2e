package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avelinemakeup/AM-BookingService/internal/availability"
	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	"github.com/avelinemakeup/AM-BookingService/internal/events"
	reservationRepo "github.com/avelinemakeup/AM-BookingService/internal/infra/storage/reservation"
)

// UseCase создание брони.
// Предварительная проверка доступности дает клиенту быстрый ответ,
// но единственной гарантией отсутствия двойных броней является
// ограничение уникальности (дата, слот) в хранилище: при гонке двух
// запросов ровно один проходит, второй получает ErrSlotUnavailable.
type UseCase struct {
	reservationRepo ReservationRepository
	lockService     LockService
	hours           domain.WeekSchedule
	txManager       TransactionManager
	bus             EventPublisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	lockService LockService,
	hours domain.WeekSchedule,
	txManager TransactionManager,
	bus EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		lockService:     lockService,
		hours:           hours,
		txManager:       txManager,
		bus:             bus,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: client=%q, date=%s, slot=%s, service=%s, admin=%v",
		req.ClientName, req.Date.Format(domain.DateFormat), req.TimeSlot, req.Service, req.AdminEntry)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время
	now := uc.timeProvider.Now()

	// 3. Блокировки владельца на дату
	lockedSlots, err := uc.lockService.LockedSlots(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get locked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get locked slots: %v", ErrStoreUnavailable, err)
	}

	// 4. Предварительная проверка доступности — оптимизация для
	// быстрой обратной связи, не гарантия корректности
	if err := uc.checkBookable(ctx, req, now, lockedSlots); err != nil {
		uc.publishConflict(req, err)
		return nil, err
	}

	var result *domain.Reservation

	// 5. Создание в сериализуемой транзакции; повторная проверка
	// выполняется по заблокированным строкам даты (FOR UPDATE),
	// а ограничение уникальности закрывает оставшееся окно гонки
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checkBookable(txCtx, req, now, lockedSlots); err != nil {
			return err
		}

		status := domain.StatusPending
		if req.AdminEntry {
			status = domain.StatusConfirmed
		}

		res := &domain.Reservation{
			ClientID:   req.ClientID,
			ClientName: req.ClientName,
			Phone:      req.Phone,
			Email:      req.Email,
			Address:    req.Address,
			Date:       req.Date,
			TimeSlot:   req.TimeSlot,
			Service:    req.Service,
			Notes:      req.Notes,
			Status:     status,
		}

		created, err := uc.reservationRepo.Create(txCtx, res)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateReservation: slot %s %s taken concurrently",
					req.Date.Format(domain.DateFormat), req.TimeSlot)
				return ErrSlotUnavailable
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrStoreUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.publishConflict(req, err)
		return nil, err
	}

	uc.bus.Publish(events.Event{
		Type:   events.TypeReservationChanged,
		Date:   result.Date.Format(domain.DateFormat),
		SlotID: result.TimeSlot,
		Detail: "created:" + string(result.Status),
	})

	uc.logger.Info("CreateReservation: successfully created reservation id=%d status=%s",
		result.ID, result.Status)

	return &Response{
		ID:         result.ID,
		ClientID:   result.ClientID,
		ClientName: result.ClientName,
		Phone:      result.Phone,
		Email:      result.Email,
		Address:    result.Address,
		Date:       result.Date,
		TimeSlot:   result.TimeSlot,
		Service:    result.Service,
		Notes:      result.Notes,
		Status:     string(result.Status),
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

// publishConflict сообщает наблюдателям об отклоненной из-за занятого
// слота попытке бронирования
func (uc *UseCase) publishConflict(req *Request, err error) {
	if !errors.Is(err, ErrSlotUnavailable) {
		return
	}
	uc.bus.Publish(events.Event{
		Type:   events.TypeReservationConflict,
		Date:   req.Date.Format(domain.DateFormat),
		SlotID: req.TimeSlot,
		Detail: "rejected",
	})
}

// checkBookable собирает снимок календаря на дату и проверяет слот
func (uc *UseCase) checkBookable(ctx context.Context, req *Request, now time.Time, lockedSlots map[string]bool) error {
	active, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{
		StartDate:  &req.Date,
		EndDate:    &req.Date,
		OnlyActive: true,
	})
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
		return fmt.Errorf("%w: failed to get reservations: %v", ErrStoreUnavailable, err)
	}

	snapshot := availability.Snapshot{
		Date:         req.Date,
		Now:          now,
		Hours:        uc.hours,
		LockedSlots:  lockedSlots,
		Reservations: active,
	}

	if !snapshot.IsBookable(req.TimeSlot) {
		uc.logger.Warn("CreateReservation: slot %s %s is not bookable",
			req.Date.Format(domain.DateFormat), req.TimeSlot)
		return ErrSlotUnavailable
	}

	return nil
}
