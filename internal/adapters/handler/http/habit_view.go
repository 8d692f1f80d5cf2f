package http

import "github.com/comitanigiacomo/habitricky/internal/core/domain"

func newHabitView(h *domain.Habit) habitView {
	return habitView{
		ID:             h.ID,
		Name:           h.Name,
		Target:         h.Target,
		Unit:           h.Unit,
		Completed:      h.Completed,
		Streak:         h.Streak,
		StreakProgress: h.StreakProgress(),
	}
}
