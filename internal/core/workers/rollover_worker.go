package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type DayCloser interface {
	CloseDay(ctx context.Context, day string) error
}

// storeCursor tracks the first day a store has not closed yet.
type storeCursor struct {
	name   string
	closer DayCloser
	day    time.Time
}

// DayRolloverWorker closes the tracking day on calendar boundaries. It is
// the only place streaks and week windows move; store mutations never do.
type DayRolloverWorker struct {
	stores   []*storeCursor
	location *time.Location
	interval time.Duration
	now      func() time.Time
	log      *zap.Logger
}

func NewDayRolloverWorker(metrics, habits DayCloser, loc *time.Location, interval time.Duration, log *zap.Logger) *DayRolloverWorker {
	if loc == nil {
		loc = time.UTC
	}
	if interval <= 0 {
		interval = time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}

	w := &DayRolloverWorker{
		location: loc,
		interval: interval,
		now:      time.Now,
		log:      log,
	}
	w.stores = []*storeCursor{
		{name: "metrics", closer: metrics},
		{name: "habits", closer: habits},
	}
	w.reset()
	return w
}

func (w *DayRolloverWorker) reset() {
	today := w.today()
	for _, s := range w.stores {
		s.day = today
	}
}

func (w *DayRolloverWorker) today() time.Time {
	t := w.now().In(w.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, w.location)
}

func (w *DayRolloverWorker) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.log.Info("day rollover worker started",
			zap.String("location", w.location.String()),
			zap.Duration("interval", w.interval))

		for {
			select {
			case <-ticker.C:
				if err := w.tick(ctx); err != nil {
					w.log.Error("day rollover incomplete, retrying on next tick", zap.Error(err))
				}
			case <-ctx.Done():
				w.log.Info("day rollover worker shutting down")
				return
			}
		}
	}()
}

// tick brings every store up to today, closing one day per calendar
// boundary crossed. A store that fails keeps its cursor on the failed day;
// the other stores still advance.
func (w *DayRolloverWorker) tick(ctx context.Context) error {
	today := w.today()

	var errs []error
	for _, s := range w.stores {
		if err := w.catchUp(ctx, s, today); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (w *DayRolloverWorker) catchUp(ctx context.Context, s *storeCursor, today time.Time) error {
	for s.day.Before(today) {
		day := s.day.Format("Mon")
		if err := s.closer.CloseDay(ctx, day); err != nil {
			return fmt.Errorf("close %s day %s: %w", s.name, day, err)
		}
		s.day = s.day.AddDate(0, 0, 1)
		w.log.Info("day closed", zap.String("store", s.name), zap.String("day", day))
	}
	return nil
}
