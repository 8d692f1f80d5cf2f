package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/habitricky/internal/core/domain"
)

var _ domain.HabitRepository = (*CachedHabitRepository)(nil)

const (
	habitListCacheKey    = "habitricky:habits"
	habitHistoryCacheKey = "habitricky:habits:history"
	habitCacheTTL        = 30 * time.Minute
)

// CachedHabitRepository fronts a HabitRepository with a read-through Redis
// cache for the list and history views. Every write invalidates both keys.
type CachedHabitRepository struct {
	next  domain.HabitRepository
	cache *redis.Client
	log   *zap.Logger
}

func NewCachedHabitRepository(next domain.HabitRepository, cache *redis.Client, log *zap.Logger) *CachedHabitRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedHabitRepository{
		next:  next,
		cache: cache,
		log:   log,
	}
}

// Purge drops any cached views, including those left by a previous process
// whose store was seeded independently.
func (r *CachedHabitRepository) Purge(ctx context.Context) error {
	return r.cache.Del(ctx, habitListCacheKey, habitHistoryCacheKey).Err()
}

func (r *CachedHabitRepository) invalidate(ctx context.Context) {
	if err := r.cache.Del(ctx, habitListCacheKey, habitHistoryCacheKey).Err(); err != nil {
		r.log.Warn("habit cache invalidation failed", zap.Error(err))
	}
}

func (r *CachedHabitRepository) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, data, habitCacheTTL).Err(); err != nil {
		r.log.Warn("habit cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// load reports whether key held a decodable value. Corrupt entries are
// removed.
func (r *CachedHabitRepository) load(ctx context.Context, key string, v any) bool {
	val, err := r.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warn("habit cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(val, v); err != nil {
		r.log.Warn("corrupt habit cache entry, dropping", zap.String("key", key))
		r.cache.Del(ctx, key)
		return false
	}
	return true
}

func (r *CachedHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	var habits []*domain.Habit
	if r.load(ctx, habitListCacheKey, &habits) {
		return habits, nil
	}

	habits, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	r.store(ctx, habitListCacheKey, habits)
	return habits, nil
}

func (r *CachedHabitRepository) History(ctx context.Context) (domain.CompletionHistory, error) {
	var history domain.CompletionHistory
	if r.load(ctx, habitHistoryCacheKey, &history) {
		return history, nil
	}

	history, err := r.next.History(ctx)
	if err != nil {
		return domain.CompletionHistory{}, err
	}

	r.store(ctx, habitHistoryCacheKey, history)
	return history, nil
}

func (r *CachedHabitRepository) GetByID(ctx context.Context, id int) (*domain.Habit, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedHabitRepository) NextID(ctx context.Context) (int, error) {
	return r.next.NextID(ctx)
}

func (r *CachedHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Create(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Update(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedHabitRepository) PushHistory(ctx context.Context, day domain.HabitDay) error {
	if err := r.next.PushHistory(ctx, day); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}
