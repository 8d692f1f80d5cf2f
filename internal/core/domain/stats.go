package domain

type MetricStats struct {
	MetricID             MetricID  `json:"metric_id"`
	Label                string    `json:"label"`
	Unit                 string    `json:"unit"`
	Direction            Direction `json:"direction"`
	Today                float64   `json:"today"`
	Goal                 float64   `json:"goal"`
	GoalMetToday         bool      `json:"goal_met_today"`
	TodayPercentage      float64   `json:"today_percentage"`
	WeeklyAverage        float64   `json:"weekly_average"`
	BestDay              DaySample `json:"best_day"`
	GoalAchievementCount int       `json:"goal_achievement_count"`
	Streak               int       `json:"streak"`
}

func NewMetricStats(m *Metric) MetricStats {
	return MetricStats{
		MetricID:             m.ID,
		Label:                m.Label,
		Unit:                 m.Unit,
		Direction:            m.Direction,
		Today:                m.Today,
		Goal:                 m.Goal,
		GoalMetToday:         m.IsGoalMetToday(),
		TodayPercentage:      m.GoalPercentage(m.Today),
		WeeklyAverage:        m.WeeklyAverage(),
		BestDay:              m.BestDay(),
		GoalAchievementCount: m.GoalAchievementCount(),
		Streak:               m.Streak,
	}
}

type CompletionSummary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type MetricPercentage struct {
	MetricID   MetricID `json:"metric_id"`
	Percentage float64  `json:"percentage"`
}

// WeeklyAggregatePoint joins habit completion and metric goal percentages
// for one day so they can be charted on a common scale.
type WeeklyAggregatePoint struct {
	DayIndex        int                `json:"day_index"`
	Day             string             `json:"day"`
	HabitPercentage float64            `json:"habit_percentage"`
	Metrics         []MetricPercentage `json:"metrics"`
}

type SummaryRatios struct {
	HabitConsistency    float64 `json:"habit_consistency"`
	SleepGoal           float64 `json:"sleep_goal"`
	ScreenTimeUnderGoal float64 `json:"screen_time_under_goal"`
}

type Attention struct {
	Metrics []MetricID `json:"metrics"`
	Message string     `json:"message,omitempty"`
}
