package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	"github.com/avelinemakeup/AM-BookingService/internal/events"
	reservationRepo "github.com/avelinemakeup/AM-BookingService/internal/infra/storage/reservation"
	"github.com/avelinemakeup/AM-BookingService/internal/service/reservations/models"
)

// Service управляет жизненным циклом брони: переходы статусов и их
// побочные эффекты. Создание брони живет в отдельном usecase —
// здесь только approve/reject/cancel/delete и чтение.
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	bus             EventPublisher
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	bus EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		bus:             bus,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	res, err := s.getReservation(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainReservation(res), nil
}

// List получает брони с фильтрацией по статусу и периоду
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// ListActive получает активные брони за период — вход для
// клиентского расчета занятости календаря
func (s *Service) ListActive(ctx context.Context, startDate, endDate *time.Time) (*models.ReservationListResponse, error) {
	filter := domain.ReservationsFilter{
		StartDate:  startDate,
		EndDate:    endDate,
		OnlyActive: true,
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrStoreUnavailable, err)
	}

	return models.FromDomainReservationList(reservations), nil
}

// Transition применяет переход жизненного цикла к брони.
// Допустимые переходы: pending -> confirmed | rejected | cancelled,
// confirmed -> cancelled. Любая попытка перехода из терминального
// статуса или в неизвестный статус завершается ErrInvalidTransition,
// запись при этом не меняется.
func (s *Service) Transition(ctx context.Context, id int64, targetStatus string) error {
	s.logger.Info("Transition: reservation id=%d -> %s", id, targetStatus)

	target, err := models.ToDomainStatus(targetStatus)
	if err != nil {
		s.logger.Warn("Transition: unknown target status=%q for id=%d", targetStatus, id)
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, targetStatus)
	}

	// Переход и повторная проверка занятости выполняются атомарно
	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := s.getReservation(txCtx, "Transition", id)
		if err != nil {
			return err
		}

		if !res.CanTransitionTo(target) {
			s.logger.Warn("Transition: %s -> %s not permitted for id=%d", res.Status, target, id)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, target)
		}

		// Подтверждение повторно проверяет, что слот не занят другой
		// активной бронью: вторая pending-заявка на тот же слот не
		// должна подтверждаться после подтверждения первой
		if target == domain.StatusConfirmed {
			occupied, err := s.reservationRepo.CountActiveBySlot(txCtx, res.Date, res.TimeSlot, res.ID)
			if err != nil {
				s.logger.Error("Transition: occupancy check failed for id=%d: %v", id, err)
				return fmt.Errorf("%w: Transition - occupancy check: %v", ErrStoreUnavailable, err)
			}
			if occupied > 0 {
				s.logger.Warn("Transition: slot %s %s already taken, cannot confirm id=%d",
					res.Date.Format(domain.DateFormat), res.TimeSlot, id)
				return ErrSlotUnavailable
			}
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, target); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			s.logger.Error("Transition: repository error for id=%d: %v", id, err)
			return fmt.Errorf("%w: Transition - repository error: %v", ErrStoreUnavailable, err)
		}

		s.publish(res, string(target))
		s.logger.Info("Transition: reservation id=%d is now %s", id, target)
		return nil
	})
}

// Delete физически удаляет бронь. Административная очистка,
// не часть жизненного цикла — для отмены есть Transition(cancelled).
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing reservation id=%d", id)

	res, err := s.getReservation(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrStoreUnavailable, err)
	}

	s.publish(res, "deleted")
	s.logger.Info("Delete: reservation id=%d removed", id)
	return nil
}

// getReservation общий fetch с маппингом ошибок репозитория
func (s *Service) getReservation(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrStoreUnavailable, op, err)
	}
	return res, nil
}

func (s *Service) publish(res *domain.Reservation, detail string) {
	s.bus.Publish(events.Event{
		Type:   events.TypeReservationChanged,
		Date:   res.Date.Format(domain.DateFormat),
		SlotID: res.TimeSlot,
		Detail: detail,
	})
}
