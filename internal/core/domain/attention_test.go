package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/habitricky/internal/core/domain"
)

func seededSnapshot(t *testing.T) domain.MetricSnapshot {
	t.Helper()

	metrics, err := domain.SeedMetrics(nil)
	require.NoError(t, err)

	snapshot := make(domain.MetricSnapshot, 0, len(metrics))
	for _, m := range metrics {
		snapshot = append(snapshot, *m)
	}
	return snapshot
}

func TestMetricsNeedingAttention(t *testing.T) {
	t.Run("All seeded metrics fail in declared order", func(t *testing.T) {
		snapshot := seededSnapshot(t)

		got := domain.MetricsNeedingAttention(snapshot)

		assert.Equal(t, []domain.MetricID{domain.MetricSleep, domain.MetricWater, domain.MetricScreenTime}, got)
	})

	t.Run("Order does not depend on snapshot order", func(t *testing.T) {
		snapshot := seededSnapshot(t)
		reversed := domain.MetricSnapshot{snapshot[2], snapshot[1], snapshot[0]}

		assert.Equal(t, domain.MetricsNeedingAttention(snapshot), domain.MetricsNeedingAttention(reversed))
	})

	t.Run("Metrics meeting their goal are excluded", func(t *testing.T) {
		snapshot := seededSnapshot(t)
		snapshot[0].Today = 8
		snapshot[2].Today = 2

		assert.Equal(t, []domain.MetricID{domain.MetricWater}, domain.MetricsNeedingAttention(snapshot))
	})

	t.Run("Undeclared metrics follow the declared ones", func(t *testing.T) {
		snapshot := seededSnapshot(t)
		extra := snapshot[0]
		extra.ID = "steps"
		snapshot = append(domain.MetricSnapshot{extra}, snapshot...)

		got := domain.MetricsNeedingAttention(snapshot)

		assert.Equal(t, []domain.MetricID{domain.MetricSleep, domain.MetricWater, domain.MetricScreenTime, "steps"}, got)
	})

	t.Run("Empty snapshot", func(t *testing.T) {
		assert.Empty(t, domain.MetricsNeedingAttention(nil))
	})
}

func TestReminderMessage(t *testing.T) {
	snapshot := seededSnapshot(t)

	t.Run("Joins actions in attention order", func(t *testing.T) {
		msg := domain.ReminderMessage(snapshot, domain.MetricsNeedingAttention(snapshot))

		assert.Equal(t, "You need to get more sleep and drink more water and reduce your screen time today.", msg)
	})

	t.Run("Single metric", func(t *testing.T) {
		msg := domain.ReminderMessage(snapshot, []domain.MetricID{domain.MetricScreenTime})

		assert.Equal(t, "You need to reduce your screen time today.", msg)
	})

	t.Run("Falls back to direction based phrasing", func(t *testing.T) {
		custom := domain.MetricSnapshot{{ID: "steps", Label: "Steps", Direction: domain.AtLeast}}

		msg := domain.ReminderMessage(custom, []domain.MetricID{"steps"})

		assert.Equal(t, "You need to increase your steps today.", msg)
	})

	t.Run("Nothing to report", func(t *testing.T) {
		assert.Empty(t, domain.ReminderMessage(snapshot, nil))
	})
}

func TestSeedMetrics(t *testing.T) {
	t.Run("Seeds the fixed identity set", func(t *testing.T) {
		metrics, err := domain.SeedMetrics(nil)
		require.NoError(t, err)
		require.Len(t, metrics, 3)

		for i, id := range domain.MetricOrder {
			assert.Equal(t, id, metrics[i].ID)
		}
		assert.Equal(t, domain.AtMost, metrics[2].Direction)
		assert.Equal(t, 30, metrics[0].Streak)
	})

	t.Run("Goal overrides apply", func(t *testing.T) {
		metrics, err := domain.SeedMetrics(map[domain.MetricID]float64{domain.MetricWater: 10})
		require.NoError(t, err)

		assert.Equal(t, 10.0, metrics[1].Goal)
		assert.Equal(t, 8.0, metrics[0].Goal)
	})
}
