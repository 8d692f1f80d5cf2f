package domain

import "strings"

// MetricsNeedingAttention returns the ids of metrics that miss their goal
// today. Ids listed in MetricOrder come first in that order, any others
// follow in snapshot order.
func MetricsNeedingAttention(snapshot MetricSnapshot) []MetricID {
	failing := make([]MetricID, 0, len(snapshot))
	seen := make(map[MetricID]bool, len(snapshot))

	for _, id := range MetricOrder {
		m, ok := snapshot.Get(id)
		if !ok {
			continue
		}
		seen[id] = true
		if !m.IsGoalMetToday() {
			failing = append(failing, id)
		}
	}

	for _, m := range snapshot {
		if seen[m.ID] {
			continue
		}
		if !m.IsGoalMetToday() {
			failing = append(failing, m.ID)
		}
	}

	return failing
}

func actionFor(m Metric) string {
	if m.Action != "" {
		return m.Action
	}
	label := strings.ToLower(m.Label)
	if label == "" {
		label = string(m.ID)
	}
	if m.Direction == AtMost {
		return "reduce your " + label
	}
	return "increase your " + label
}

// ReminderMessage renders the attention set as a single sentence, or an
// empty string when nothing needs attention.
func ReminderMessage(snapshot MetricSnapshot, ids []MetricID) string {
	if len(ids) == 0 {
		return ""
	}

	actions := make([]string, 0, len(ids))
	for _, id := range ids {
		m, ok := snapshot.Get(id)
		if !ok {
			continue
		}
		actions = append(actions, actionFor(m))
	}
	if len(actions) == 0 {
		return ""
	}

	return "You need to " + strings.Join(actions, " and ") + " today."
}
