package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrUnknownHabit   = errors.New("unknown habit")
	ErrInvalidName    = errors.New("habit name cannot be empty")
	ErrInvalidTarget  = errors.New("habit target must be greater than zero")
	ErrDuplicateHabit = errors.New("habit id already exists")
)

const (
	DefaultHabitTarget = 1.0
	DefaultHabitUnit   = "times"
	MaxNameLen         = 100
	StreakGoalDays     = 30
)

type Habit struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Target    float64 `json:"target"`
	Unit      string  `json:"unit"`
	Completed bool    `json:"completed"`
	Streak    int     `json:"streak"`
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrInvalidName
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLen {
		return "", fmt.Errorf("%w: name is too long (max %d chars)", ErrInvalidName, MaxNameLen)
	}
	return trimmed, nil
}

func validateTarget(target float64) error {
	if !isFinite(target) || target <= 0 {
		return ErrInvalidTarget
	}
	return nil
}

func NewHabit(id int, name string, target float64, unit string) (*Habit, error) {
	cleanName, err := validateName(name)
	if err != nil {
		return nil, err
	}

	if target == 0 {
		target = DefaultHabitTarget
	}
	if err := validateTarget(target); err != nil {
		return nil, err
	}

	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = DefaultHabitUnit
	}

	return &Habit{
		ID:     id,
		Name:   cleanName,
		Target: target,
		Unit:   unit,
	}, nil
}

// ToggleCompletion flips today's completion flag. The streak is maintained
// separately by the day rollover.
func (h *Habit) ToggleCompletion() {
	h.Completed = !h.Completed
}

func (h *Habit) UpdateTarget(value float64) error {
	if err := validateTarget(value); err != nil {
		return err
	}
	h.Target = value
	return nil
}

func (h *Habit) CloseDay() {
	h.Streak = NextStreak(h.Streak, h.Completed)
	h.Completed = false
}

// StreakProgress is the streak as a percentage of the 30 day streak goal,
// capped at 100.
func (h *Habit) StreakProgress() float64 {
	return ClampPercent(float64(h.Streak) / StreakGoalDays * 100)
}

func (h *Habit) Clone() *Habit {
	c := *h
	return &c
}

// HabitDay is one day of habit completion history.
type HabitDay struct {
	Day       string `json:"day"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

func (d HabitDay) Percentage() float64 {
	if d.Total <= 0 {
		return 0
	}
	return float64(d.Completed) / float64(d.Total) * 100
}

// CompletionHistory is the fixed 7 day window of habit completion, oldest first.
type CompletionHistory [WeekLength]HabitDay

func NewCompletionHistory(days []string, completed []int, total int) (CompletionHistory, error) {
	var h CompletionHistory
	if len(days) != WeekLength || len(completed) != WeekLength {
		return h, fmt.Errorf("%w: got %d labels and %d counts", ErrInvalidWeekLength, len(days), len(completed))
	}
	for i := range h {
		h[i] = HabitDay{Day: days[i], Completed: completed[i], Total: total}
	}
	return h, nil
}

func (h *CompletionHistory) Push(d HabitDay) {
	copy(h[:], h[1:])
	h[WeekLength-1] = d
}

// ClampPercent bounds v to [0, 100].
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
