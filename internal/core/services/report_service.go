package services

import (
	"context"
	"fmt"

	"github.com/comitanigiacomo/habitricky/internal/core/domain"
)

type CompletionHistorySource interface {
	History(ctx context.Context) (domain.CompletionHistory, error)
}

type ReportService struct {
	metrics MetricSnapshotter
	habits  CompletionHistorySource
}

func NewReportService(metrics MetricSnapshotter, habits CompletionHistorySource) *ReportService {
	return &ReportService{
		metrics: metrics,
		habits:  habits,
	}
}

func (s *ReportService) WeeklyComposite(ctx context.Context) ([]domain.WeeklyAggregatePoint, error) {
	snapshot, err := s.metrics.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	history, err := s.habits.History(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]domain.WeeklyAggregatePoint, 0, domain.WeekLength)
	for i := 0; i < domain.WeekLength; i++ {
		day := history[i].Day
		if day == "" {
			day = domain.WeekDays[i]
		}

		point := domain.WeeklyAggregatePoint{
			DayIndex:        i,
			Day:             day,
			HabitPercentage: history[i].Percentage(),
			Metrics:         make([]domain.MetricPercentage, 0, len(snapshot)),
		}

		for _, m := range snapshot {
			point.Metrics = append(point.Metrics, domain.MetricPercentage{
				MetricID:   m.ID,
				Percentage: m.GoalPercentage(m.WeekData[i].Value),
			})
		}

		points = append(points, point)
	}

	return points, nil
}

func (s *ReportService) HabitConsistencyRatio(ctx context.Context) (float64, error) {
	history, err := s.habits.History(ctx)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for _, d := range history {
		sum += d.Percentage()
	}
	return domain.ClampPercent(sum / domain.WeekLength), nil
}

func (s *ReportService) SleepGoalRatio(ctx context.Context) (float64, error) {
	return s.goalRatio(ctx, domain.MetricSleep)
}

func (s *ReportService) ScreenTimeUnderGoalRatio(ctx context.Context) (float64, error) {
	return s.goalRatio(ctx, domain.MetricScreenTime)
}

func (s *ReportService) goalRatio(ctx context.Context, id domain.MetricID) (float64, error) {
	snapshot, err := s.metrics.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	m, ok := snapshot.Get(id)
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownMetric, id)
	}

	return domain.ClampPercent(float64(m.GoalAchievementCount()) / domain.WeekLength * 100), nil
}

func (s *ReportService) Summary(ctx context.Context) (*domain.SummaryRatios, error) {
	habits, err := s.HabitConsistencyRatio(ctx)
	if err != nil {
		return nil, err
	}

	sleep, err := s.SleepGoalRatio(ctx)
	if err != nil {
		return nil, err
	}

	screen, err := s.ScreenTimeUnderGoalRatio(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.SummaryRatios{
		HabitConsistency:    habits,
		SleepGoal:           sleep,
		ScreenTimeUnderGoal: screen,
	}, nil
}

func (s *ReportService) Correlations() []string {
	out := make([]string, len(domain.Correlations))
	copy(out, domain.Correlations)
	return out
}
