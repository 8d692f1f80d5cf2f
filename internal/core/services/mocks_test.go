package services_test

import (
	"context"
	"sort"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/habitricky/internal/core/domain"
)

type MockMetricRepo struct {
	order         []domain.MetricID
	store         map[domain.MetricID]*domain.Metric
	simulateError error
	updates       int
}

func NewMockMetricRepo(metrics []*domain.Metric) *MockMetricRepo {
	m := &MockMetricRepo{store: make(map[domain.MetricID]*domain.Metric)}
	for _, metric := range metrics {
		m.order = append(m.order, metric.ID)
		m.store[metric.ID] = metric.Clone()
	}
	return m
}

func (m *MockMetricRepo) List(ctx context.Context) ([]*domain.Metric, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	list := make([]*domain.Metric, 0, len(m.order))
	for _, id := range m.order {
		list = append(list, m.store[id].Clone())
	}
	return list, nil
}

func (m *MockMetricRepo) GetByID(ctx context.Context, id domain.MetricID) (*domain.Metric, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	metric, ok := m.store[id]
	if !ok {
		return nil, domain.ErrUnknownMetric
	}
	return metric.Clone(), nil
}

func (m *MockMetricRepo) Update(ctx context.Context, metric *domain.Metric) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, ok := m.store[metric.ID]; !ok {
		return domain.ErrUnknownMetric
	}
	m.updates++
	m.store[metric.ID] = metric.Clone()
	return nil
}

type MockHabitRepo struct {
	store         map[int]*domain.Habit
	lastID        int
	history       domain.CompletionHistory
	simulateError error
}

func NewMockHabitRepo(habits []*domain.Habit) *MockHabitRepo {
	m := &MockHabitRepo{store: make(map[int]*domain.Habit)}
	for _, h := range habits {
		m.store[h.ID] = h.Clone()
		if h.ID > m.lastID {
			m.lastID = h.ID
		}
	}
	return m
}

func (m *MockHabitRepo) Create(ctx context.Context, habit *domain.Habit) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if habit.ID <= m.lastID {
		return domain.ErrDuplicateHabit
	}
	m.store[habit.ID] = habit.Clone()
	m.lastID = habit.ID
	return nil
}

func (m *MockHabitRepo) GetByID(ctx context.Context, id int) (*domain.Habit, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	h, ok := m.store[id]
	if !ok {
		return nil, domain.ErrUnknownHabit
	}
	return h.Clone(), nil
}

func (m *MockHabitRepo) List(ctx context.Context) ([]*domain.Habit, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	var list []*domain.Habit
	for _, h := range m.store {
		list = append(list, h.Clone())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *MockHabitRepo) Update(ctx context.Context, habit *domain.Habit) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, ok := m.store[habit.ID]; !ok {
		return domain.ErrUnknownHabit
	}
	m.store[habit.ID] = habit.Clone()
	return nil
}

func (m *MockHabitRepo) NextID(ctx context.Context) (int, error) {
	if m.simulateError != nil {
		return 0, m.simulateError
	}
	return m.lastID + 1, nil
}

func (m *MockHabitRepo) History(ctx context.Context) (domain.CompletionHistory, error) {
	if m.simulateError != nil {
		return domain.CompletionHistory{}, m.simulateError
	}
	return m.history, nil
}

func (m *MockHabitRepo) PushHistory(ctx context.Context, day domain.HabitDay) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	m.history.Push(day)
	return nil
}

type MockSnapshotter struct {
	mock.Mock
}

func (m *MockSnapshotter) Snapshot(ctx context.Context) (domain.MetricSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.MetricSnapshot), args.Error(1)
}

type MockHistorySource struct {
	mock.Mock
}

func (m *MockHistorySource) History(ctx context.Context) (domain.CompletionHistory, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CompletionHistory), args.Error(1)
}
