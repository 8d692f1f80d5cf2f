package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeCloser struct {
	mu   sync.Mutex
	days []string
	err  error
}

func (f *fakeCloser) CloseDay(ctx context.Context, day string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.days = append(f.days, day)
	return nil
}

func (f *fakeCloser) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.err = err
}

func (f *fakeCloser) closed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.days...)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestWorker(metrics, habits DayCloser, loc *time.Location, start time.Time, log *zap.Logger) (*DayRolloverWorker, *fakeClock) {
	clock := &fakeClock{now: start}
	w := NewDayRolloverWorker(metrics, habits, loc, 10*time.Millisecond, log)
	w.now = clock.Now
	w.reset()
	return w, clock
}

func TestDayRolloverWorker_Tick(t *testing.T) {
	ctx := context.Background()
	friday := time.Date(2026, 10, 16, 22, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		advance  time.Duration
		wantDays []string
	}{
		{
			name:     "Same day does nothing",
			advance:  time.Hour,
			wantDays: nil,
		},
		{
			name:     "Crossing midnight closes the previous day",
			advance:  2 * time.Hour,
			wantDays: []string{"Fri"},
		},
		{
			name:     "Missed days are closed one by one",
			advance:  3 * 24 * time.Hour,
			wantDays: []string{"Fri", "Sat", "Sun"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics, habits := &fakeCloser{}, &fakeCloser{}
			w, clock := newTestWorker(metrics, habits, time.UTC, friday, nil)

			clock.Advance(tt.advance)
			require.NoError(t, w.tick(ctx))

			assert.Equal(t, tt.wantDays, metrics.closed())
			assert.Equal(t, tt.wantDays, habits.closed())
		})
	}

	t.Run("Second tick on the same day is a no-op", func(t *testing.T) {
		metrics, habits := &fakeCloser{}, &fakeCloser{}
		w, clock := newTestWorker(metrics, habits, time.UTC, friday, nil)

		clock.Advance(2 * time.Hour)
		require.NoError(t, w.tick(ctx))
		require.NoError(t, w.tick(ctx))

		assert.Len(t, metrics.closed(), 1)
		assert.Len(t, habits.closed(), 1)
	})

	t.Run("Day boundaries follow the configured location", func(t *testing.T) {
		metrics, habits := &fakeCloser{}, &fakeCloser{}
		loc := time.FixedZone("UTC+3", 3*60*60)

		// 22:30 UTC Friday is already 01:30 Saturday in UTC+3.
		w, clock := newTestWorker(metrics, habits, loc, friday, nil)
		assert.Equal(t, "Sat", w.today().Format("Mon"))

		clock.Advance(2 * time.Hour)
		require.NoError(t, w.tick(ctx))
		assert.Empty(t, metrics.closed())
	})
}

func TestDayRolloverWorker_FailedClose(t *testing.T) {
	ctx := context.Background()
	friday := time.Date(2026, 10, 16, 22, 30, 0, 0, time.UTC)

	t.Run("Failed day is retried on the next tick", func(t *testing.T) {
		metrics, habits := &fakeCloser{}, &fakeCloser{}
		w, clock := newTestWorker(metrics, habits, time.UTC, friday, nil)

		metrics.setErr(errors.New("store unavailable"))
		clock.Advance(2 * time.Hour)

		err := w.tick(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "close metrics day Fri")
		assert.Empty(t, metrics.closed())
		assert.Equal(t, []string{"Fri"}, habits.closed(), "a healthy store is not held back")

		metrics.setErr(nil)
		require.NoError(t, w.tick(ctx))

		assert.Equal(t, []string{"Fri"}, metrics.closed())
		assert.Equal(t, []string{"Fri"}, habits.closed(), "no store is closed twice")
	})

	t.Run("Stops at the first failed day of a backlog", func(t *testing.T) {
		metrics, habits := &fakeCloser{}, &fakeCloser{}
		w, clock := newTestWorker(metrics, habits, time.UTC, friday, nil)

		habits.setErr(errors.New("boom"))
		clock.Advance(3 * 24 * time.Hour)
		require.Error(t, w.tick(ctx))

		habits.setErr(nil)
		require.NoError(t, w.tick(ctx))

		assert.Equal(t, []string{"Fri", "Sat", "Sun"}, metrics.closed())
		assert.Equal(t, []string{"Fri", "Sat", "Sun"}, habits.closed())
	})
}

func TestDayRolloverWorker_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	core, logs := observer.New(zapcore.InfoLevel)
	metrics, habits := &fakeCloser{}, &fakeCloser{}
	friday := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)
	w, clock := newTestWorker(metrics, habits, time.UTC, friday, zap.New(core))

	metrics.setErr(errors.New("store unavailable"))
	w.Start(ctx)
	clock.Advance(time.Minute)

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("day rollover incomplete, retrying on next tick").Len() > 0
	}, time.Second, 5*time.Millisecond)

	metrics.setErr(nil)

	assert.Eventually(t, func() bool {
		return len(metrics.closed()) == 1 && len(habits.closed()) == 1
	}, time.Second, 5*time.Millisecond)
}
