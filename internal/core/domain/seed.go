package domain

var WeekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Correlations are fixed behavioural observations shown next to the trend
// views. They are not derived from the tracked data.
var Correlations = []string{
	"On days you exercise, you drink 35% more water",
	"Better sleep (>7.5h) correlates with 50% higher habit completion",
	"Lower screen time days (<3h) show increased meditation consistency",
}

var metricActions = map[MetricID]string{
	MetricSleep:      "get more sleep",
	MetricWater:      "drink more water",
	MetricScreenTime: "reduce your screen time",
}

type metricSeed struct {
	id        MetricID
	label     string
	unit      string
	direction Direction
	today     float64
	goal      float64
	week      []float64
	streak    int
}

var metricSeeds = []metricSeed{
	{MetricSleep, "Sleep", "hours", AtLeast, 7.5, 8, []float64{7.2, 6.5, 8, 7.5, 7.5, 9, 8.3}, 30},
	{MetricWater, "Water", "glasses", AtLeast, 5, 8, []float64{6, 8, 7, 5, 5, 4, 6}, 15},
	{MetricScreenTime, "Screen Time", "hours", AtMost, 4.5, 3, []float64{5.2, 3.5, 4.1, 4.5, 4.5, 2.5, 3.0}, 0},
}

// SeedMetrics builds the fixed metric identity set. A goal override replaces
// the seeded goal for that metric.
func SeedMetrics(goalOverrides map[MetricID]float64) ([]*Metric, error) {
	metrics := make([]*Metric, 0, len(metricSeeds))
	for _, s := range metricSeeds {
		week, err := NewWeekSeries(WeekDays, s.week)
		if err != nil {
			return nil, err
		}

		goal := s.goal
		if g, ok := goalOverrides[s.id]; ok {
			goal = g
		}

		m, err := NewMetric(s.id, s.label, s.unit, s.direction, s.today, goal, week, s.streak)
		if err != nil {
			return nil, err
		}
		m.Action = metricActions[s.id]
		metrics = append(metrics, m)
	}
	return metrics, nil
}

func SeedHabits() []*Habit {
	return []*Habit{
		{ID: 1, Name: "Morning Meditation", Target: 15, Unit: "minutes", Completed: true, Streak: 12},
		{ID: 2, Name: "Read", Target: 30, Unit: "minutes", Completed: false, Streak: 5},
		{ID: 3, Name: "Exercise", Target: 45, Unit: "minutes", Completed: false, Streak: 3},
		{ID: 4, Name: "Journal", Target: 1, Unit: "entry", Completed: true, Streak: 20},
	}
}

func SeedCompletionHistory() (CompletionHistory, error) {
	return NewCompletionHistory(WeekDays, []int{3, 4, 2, 3, 2, 4, 3}, 4)
}
