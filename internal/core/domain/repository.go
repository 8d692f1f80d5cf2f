package domain

import "context"

type MetricRepository interface {
	// List returns every seeded metric in declared order.
	List(ctx context.Context) ([]*Metric, error)

	GetByID(ctx context.Context, id MetricID) (*Metric, error)

	// Update replaces the stored state of an existing metric.
	Update(ctx context.Context, metric *Metric) error
}

type HabitRepository interface {
	// Create stores a new habit. The id must not have been assigned before.
	Create(ctx context.Context, habit *Habit) error

	GetByID(ctx context.Context, id int) (*Habit, error)

	// List returns habits ordered by id.
	List(ctx context.Context) ([]*Habit, error)

	Update(ctx context.Context, habit *Habit) error

	// NextID returns the next sequential id. Ids are never reused.
	NextID(ctx context.Context) (int, error)

	History(ctx context.Context) (CompletionHistory, error)

	// PushHistory appends a closed day to the completion history, dropping the oldest.
	PushHistory(ctx context.Context, day HabitDay) error
}
