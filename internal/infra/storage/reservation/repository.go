package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	"github.com/avelinemakeup/AM-BookingService/pkg/psqlbuilder"
	"github.com/avelinemakeup/AM-BookingService/pkg/txmanager"
)

// activeSlotConstraint имя частичного уникального индекса,
// запрещающего две активные брони на одну пару (дата, слот)
const activeSlotConstraint = "reservations_active_slot_uniq"

const pqUniqueViolation = "23505"

var reservationColumns = []string{
	"id",
	"client_id",
	"client_name",
	"phone",
	"email",
	"address",
	"reservation_date",
	"time_slot",
	"service",
	"notes",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь.
// Если в контексте передана активная транзакция, использует её.
// Нарушение уникальности активного слота транслируется в ErrSlotTaken —
// именно это ограничение, а не предварительная проверка доступности,
// гарантирует отсутствие двойных броней при конкурентных запросах.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"client_id",
			"client_name",
			"phone",
			"email",
			"address",
			"reservation_date",
			"time_slot",
			"service",
			"notes",
			"status",
		).
		Values(
			res.ClientID,
			res.ClientName,
			res.Phone,
			res.Email,
			res.Address,
			res.Date,
			res.TimeSlot,
			res.Service,
			res.Notes,
			res.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation && pqErr.Constraint == activeSlotConstraint {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает брони с гибкой фильтрацией по статусу, периоду и активности
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if filter.OnlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": activeStatusStrings()})
	}

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"reservation_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"reservation_date": *filter.EndDate})
	}

	// Для конкретной даты сортируем по слоту, иначе — сначала новые
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.OrderBy("time_slot ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("reservation_date DESC, time_slot DESC")
	}

	// Внутри транзакции создания брони блокируем строки даты (FOR UPDATE)
	if txmanager.IsInTransaction(ctx) && filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// CountActiveBySlot подсчитывает активные брони, занимающие слот на дату.
// excludeID исключает из подсчета саму бронь (для повторной проверки
// занятости при подтверждении pending-заявки).
func (r *Repository) CountActiveBySlot(ctx context.Context, date time.Time, slotID string, excludeID int64) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"reservation_date": date}).
		Where(squirrel.Eq{"time_slot": slotID}).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		Where(squirrel.NotEq{"id": excludeID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySlot - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySlot - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus обновляет статус брони
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронь (физическое удаление, только для административной очистки)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// activeStatusStrings статусы, занимающие слот, в виде значений запроса
func activeStatusStrings() []string {
	statuses := domain.ActiveStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку в бронь
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.ClientID,
		&res.ClientName,
		&res.Phone,
		&res.Email,
		&res.Address,
		&res.Date,
		&res.TimeSlot,
		&res.Service,
		&res.Notes,
		&res.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс броней
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
