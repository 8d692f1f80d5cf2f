package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/comitanigiacomo/habitricky/internal/core/domain"
)

var (
	_ domain.MetricRepository = (*InMemoryMetricRepository)(nil)
	_ domain.HabitRepository  = (*InMemoryHabitRepository)(nil)
)

// InMemoryMetricRepository holds a fixed set of metrics. Metrics cannot be
// added or removed once the repository is built.
type InMemoryMetricRepository struct {
	order []domain.MetricID
	store map[domain.MetricID]*domain.Metric

	mu sync.RWMutex
}

func NewInMemoryMetricRepository(metrics []*domain.Metric) *InMemoryMetricRepository {
	r := &InMemoryMetricRepository{
		store: make(map[domain.MetricID]*domain.Metric, len(metrics)),
	}
	for _, m := range metrics {
		if _, dup := r.store[m.ID]; dup {
			continue
		}
		r.order = append(r.order, m.ID)
		r.store[m.ID] = m.Clone()
	}
	return r
}

func (r *InMemoryMetricRepository) List(ctx context.Context) ([]*domain.Metric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	metrics := make([]*domain.Metric, 0, len(r.order))
	for _, id := range r.order {
		metrics = append(metrics, r.store[id].Clone())
	}
	return metrics, nil
}

func (r *InMemoryMetricRepository) GetByID(ctx context.Context, id domain.MetricID) (*domain.Metric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.store[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownMetric, id)
	}
	return m.Clone(), nil
}

func (r *InMemoryMetricRepository) Update(ctx context.Context, metric *domain.Metric) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[metric.ID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownMetric, metric.ID)
	}

	r.store[metric.ID] = metric.Clone()
	return nil
}

type InMemoryHabitRepository struct {
	store   map[int]*domain.Habit
	lastID  int
	history domain.CompletionHistory

	mu sync.RWMutex
}

func NewInMemoryHabitRepository(habits []*domain.Habit, history domain.CompletionHistory) *InMemoryHabitRepository {
	r := &InMemoryHabitRepository{
		store:   make(map[int]*domain.Habit, len(habits)),
		history: history,
	}
	for _, h := range habits {
		r.store[h.ID] = h.Clone()
		if h.ID > r.lastID {
			r.lastID = h.ID
		}
	}
	return r
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if habit.ID <= r.lastID {
		return fmt.Errorf("%w: %d", domain.ErrDuplicateHabit, habit.ID)
	}

	r.store[habit.ID] = habit.Clone()
	r.lastID = habit.ID
	return nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id int) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.store[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownHabit, id)
	}
	return h.Clone(), nil
}

func (r *InMemoryHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habits := make([]*domain.Habit, 0, len(r.store))
	for _, h := range r.store {
		habits = append(habits, h.Clone())
	}

	sort.Slice(habits, func(i, j int) bool {
		return habits[i].ID < habits[j].ID
	})

	return habits, nil
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[habit.ID]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrUnknownHabit, habit.ID)
	}

	r.store[habit.ID] = habit.Clone()
	return nil
}

func (r *InMemoryHabitRepository) NextID(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.lastID + 1, nil
}

func (r *InMemoryHabitRepository) History(ctx context.Context) (domain.CompletionHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.history, nil
}

func (r *InMemoryHabitRepository) PushHistory(ctx context.Context, day domain.HabitDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history.Push(day)
	return nil
}
