package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/comitanigiacomo/habitricky/internal/core/domain"
)

type HabitService struct {
	repo domain.HabitRepository
	mu   sync.Mutex
}

func NewHabitService(repo domain.HabitRepository) *HabitService {
	return &HabitService{
		repo: repo,
	}
}

type AddHabitInput struct {
	Name   string
	Target float64
	Unit   string
}

func (s *HabitService) AddHabit(ctx context.Context, input AddHabitInput) (*domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	habit, err := domain.NewHabit(id, input.Name, input.Target, input.Unit)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) ToggleCompletion(ctx context.Context, id int) (*domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	habit.ToggleCompletion()

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) UpdateTarget(ctx context.Context, id int, value float64) (*domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := habit.UpdateTarget(value); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) Get(ctx context.Context, id int) (*domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.GetByID(ctx, id)
}

func (s *HabitService) List(ctx context.Context) ([]*domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.List(ctx)
}

func (s *HabitService) CompletionSummary(ctx context.Context) (domain.CompletionSummary, error) {
	habits, err := s.List(ctx)
	if err != nil {
		return domain.CompletionSummary{}, err
	}

	summary := domain.CompletionSummary{Total: len(habits)}
	for _, h := range habits {
		if h.Completed {
			summary.Completed++
		}
	}
	return summary, nil
}

func (s *HabitService) History(ctx context.Context) (domain.CompletionHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.History(ctx)
}

// CloseDay records today's completion in the history, advances every streak
// and clears the completion flags.
func (s *HabitService) CloseDay(ctx context.Context, day string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	record := domain.HabitDay{Day: day, Total: len(habits)}
	for _, h := range habits {
		if h.Completed {
			record.Completed++
		}
	}

	if err := s.repo.PushHistory(ctx, record); err != nil {
		return err
	}

	for _, h := range habits {
		h.CloseDay()
		if err := s.repo.Update(ctx, h); err != nil {
			return fmt.Errorf("close day for habit %d: %w", h.ID, err)
		}
	}
	return nil
}
