package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownMetric      = errors.New("unknown metric")
	ErrInvalidMetricValue = errors.New("metric value must be a finite number")
	ErrInvalidDirection   = errors.New("invalid goal direction (must be at_least or at_most)")
	ErrInvalidWeekLength  = errors.New("week series must have exactly 7 samples")
)

type MetricID string

const (
	MetricSleep      MetricID = "sleep"
	MetricWater      MetricID = "water"
	MetricScreenTime MetricID = "screenTime"
)

// MetricOrder is the declared evaluation order used by every derived view.
var MetricOrder = []MetricID{MetricSleep, MetricWater, MetricScreenTime}

const WeekLength = 7

type DaySample struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

// WeekSeries is a fixed window of daily samples ordered oldest to newest.
type WeekSeries [WeekLength]DaySample

func NewWeekSeries(days []string, values []float64) (WeekSeries, error) {
	var w WeekSeries
	if len(days) != WeekLength || len(values) != WeekLength {
		return w, fmt.Errorf("%w: got %d labels and %d values", ErrInvalidWeekLength, len(days), len(values))
	}
	for i := range w {
		w[i] = DaySample{Day: days[i], Value: values[i]}
	}
	return w, nil
}

func (w WeekSeries) Values() []float64 {
	out := make([]float64, WeekLength)
	for i, s := range w {
		out[i] = s.Value
	}
	return out
}

// Push drops the oldest sample and appends s as the newest.
func (w *WeekSeries) Push(s DaySample) {
	copy(w[:], w[1:])
	w[WeekLength-1] = s
}

type Metric struct {
	ID        MetricID   `json:"id"`
	Label     string     `json:"label"`
	Action    string     `json:"action,omitempty"`
	Today     float64    `json:"today"`
	Goal      float64    `json:"goal"`
	Unit      string     `json:"unit"`
	Direction Direction  `json:"direction"`
	WeekData  WeekSeries `json:"week_data"`
	Streak    int        `json:"streak"`
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func NewMetric(id MetricID, label, unit string, direction Direction, today, goal float64, week WeekSeries, streak int) (*Metric, error) {
	if id == "" {
		return nil, ErrUnknownMetric
	}
	if !direction.Valid() {
		return nil, ErrInvalidDirection
	}
	if !isFinite(today) || !isFinite(goal) {
		return nil, ErrInvalidMetricValue
	}
	if streak < 0 {
		streak = 0
	}

	return &Metric{
		ID:        id,
		Label:     label,
		Today:     today,
		Goal:      goal,
		Unit:      unit,
		Direction: direction,
		WeekData:  week,
		Streak:    streak,
	}, nil
}

// SetToday replaces today's value. Streak and week data are left alone.
func (m *Metric) SetToday(value float64) error {
	if !isFinite(value) {
		return ErrInvalidMetricValue
	}
	m.Today = value
	return nil
}

func (m *Metric) IsGoalMetToday() bool {
	return m.Direction.Meets(m.Today, m.Goal)
}

func (m *Metric) WeeklyAverage() float64 {
	sum := 0.0
	for _, s := range m.WeekData {
		sum += s.Value
	}
	return sum / WeekLength
}

func (m *Metric) BestDay() DaySample {
	best := m.WeekData[0]
	for _, s := range m.WeekData[1:] {
		if m.Direction.Better(s.Value, best.Value) {
			best = s
		}
	}
	return best
}

func (m *Metric) GoalAchievementCount() int {
	count := 0
	for _, s := range m.WeekData {
		if m.Direction.Meets(s.Value, m.Goal) {
			count++
		}
	}
	return count
}

// GoalPercentage is the literal value/goal ratio in percent for every
// direction. An at_most metric above its goal yields more than 100.
func (m *Metric) GoalPercentage(value float64) float64 {
	if m.Goal == 0 {
		return 0
	}
	return value / m.Goal * 100
}

// CloseDay moves today's value into the week window and advances the streak.
func (m *Metric) CloseDay(day string) {
	m.Streak = NextStreak(m.Streak, m.IsGoalMetToday())
	m.WeekData.Push(DaySample{Day: day, Value: m.Today})
}

// NextStreak advances a consecutive-days counter by one qualifying or
// missed day.
func NextStreak(current int, qualified bool) int {
	if !qualified {
		return 0
	}
	return current + 1
}

func (m *Metric) Clone() *Metric {
	c := *m
	return &c
}

// MetricSnapshot is a read-only copy of the metric store in declared order.
type MetricSnapshot []Metric

func (s MetricSnapshot) Get(id MetricID) (Metric, bool) {
	for _, m := range s {
		if m.ID == id {
			return m, true
		}
	}
	return Metric{}, false
}
