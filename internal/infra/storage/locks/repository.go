package locks

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
)

// keyPrefix ключи вида calendar:locks:2025-06-15 -> множество id слотов
const keyPrefix = "calendar:locks:"

// Repository хранилище блокировок слотов: по одному redis-множеству на дату.
// Блокировки не истекают сами — прошедшие даты безвредны, так как
// прошлое небронируемо независимо от блокировок.
type Repository struct {
	client *redis.Client
}

// NewRepository создает новый экземпляр хранилища блокировок
func NewRepository(client *redis.Client) *Repository {
	return &Repository{client: client}
}

// Add добавляет слот в множество заблокированных на дату.
// Возвращает true, если состояние изменилось (слот не был заблокирован).
func (r *Repository) Add(ctx context.Context, date time.Time, slotID string) (bool, error) {
	added, err := r.client.SAdd(ctx, key(date), slotID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Add - SADD %s %s: %v", ErrStore, key(date), slotID, err)
	}
	return added > 0, nil
}

// Remove убирает слот из множества заблокированных на дату.
// Возвращает true, если состояние изменилось (слот был заблокирован).
func (r *Repository) Remove(ctx context.Context, date time.Time, slotID string) (bool, error) {
	removed, err := r.client.SRem(ctx, key(date), slotID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Remove - SREM %s %s: %v", ErrStore, key(date), slotID, err)
	}
	return removed > 0, nil
}

// Contains проверяет, заблокирован ли слот на дату
func (r *Repository) Contains(ctx context.Context, date time.Time, slotID string) (bool, error) {
	locked, err := r.client.SIsMember(ctx, key(date), slotID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Contains - SISMEMBER %s %s: %v", ErrStore, key(date), slotID, err)
	}
	return locked, nil
}

// Members возвращает все заблокированные слоты даты
func (r *Repository) Members(ctx context.Context, date time.Time) ([]string, error) {
	members, err := r.client.SMembers(ctx, key(date)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: Members - SMEMBERS %s: %v", ErrStore, key(date), err)
	}
	return members, nil
}

func key(date time.Time) string {
	return keyPrefix + date.Format(domain.DateFormat)
}
