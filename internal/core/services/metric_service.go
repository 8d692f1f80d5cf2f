package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/comitanigiacomo/habitricky/internal/core/domain"
)

// MetricService owns the metric store. The mutex serialises read-modify-write
// sequences so every mutation is visible in full to the next read.
type MetricService struct {
	repo domain.MetricRepository
	mu   sync.Mutex
}

func NewMetricService(repo domain.MetricRepository) *MetricService {
	return &MetricService{
		repo: repo,
	}
}

func (s *MetricService) SetToday(ctx context.Context, id domain.MetricID, value float64) (*domain.Metric, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	metric, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := metric.SetToday(value); err != nil {
		return nil, fmt.Errorf("%w: %s", err, id)
	}

	if err := s.repo.Update(ctx, metric); err != nil {
		return nil, err
	}

	return metric, nil
}

func (s *MetricService) Get(ctx context.Context, id domain.MetricID) (*domain.Metric, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.GetByID(ctx, id)
}

func (s *MetricService) List(ctx context.Context) ([]*domain.Metric, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.List(ctx)
}

func (s *MetricService) Snapshot(ctx context.Context) (domain.MetricSnapshot, error) {
	metrics, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := make(domain.MetricSnapshot, 0, len(metrics))
	for _, m := range metrics {
		snapshot = append(snapshot, *m)
	}
	return snapshot, nil
}

func (s *MetricService) WeeklyAverage(ctx context.Context, id domain.MetricID) (float64, error) {
	metric, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return metric.WeeklyAverage(), nil
}

func (s *MetricService) BestDay(ctx context.Context, id domain.MetricID) (float64, error) {
	metric, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return metric.BestDay().Value, nil
}

func (s *MetricService) GoalAchievementCount(ctx context.Context, id domain.MetricID) (int, error) {
	metric, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return metric.GoalAchievementCount(), nil
}

func (s *MetricService) IsGoalMetToday(ctx context.Context, id domain.MetricID) (bool, error) {
	metric, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return metric.IsGoalMetToday(), nil
}

func (s *MetricService) Stats(ctx context.Context, id domain.MetricID) (*domain.MetricStats, error) {
	metric, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	stats := domain.NewMetricStats(metric)
	return &stats, nil
}

// CloseDay rolls every metric over to a new day, labelling the closed
// sample with day.
func (s *MetricService) CloseDay(ctx context.Context, day string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	metrics, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	for _, m := range metrics {
		m.CloseDay(day)
		if err := s.repo.Update(ctx, m); err != nil {
			return fmt.Errorf("close day for %s: %w", m.ID, err)
		}
	}
	return nil
}
