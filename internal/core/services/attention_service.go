package services

import (
	"context"

	"github.com/comitanigiacomo/habitricky/internal/core/domain"
)

type MetricSnapshotter interface {
	Snapshot(ctx context.Context) (domain.MetricSnapshot, error)
}

type AttentionService struct {
	metrics MetricSnapshotter
}

func NewAttentionService(metrics MetricSnapshotter) *AttentionService {
	return &AttentionService{metrics: metrics}
}

func (s *AttentionService) MetricsNeedingAttention(ctx context.Context) (*domain.Attention, error) {
	snapshot, err := s.metrics.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	ids := domain.MetricsNeedingAttention(snapshot)
	return &domain.Attention{
		Metrics: ids,
		Message: domain.ReminderMessage(snapshot, ids),
	}, nil
}
