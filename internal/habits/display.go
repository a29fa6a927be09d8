package habits

import (
	"cmp"
	"slices"

	"github.com/dmitrijs2005/primezone/internal/models"
)

// SortedForDisplay returns a copy of list ordered by CreatedAt, newest first.
// Ties keep their stored order.
func SortedForDisplay(list []models.Habit) []models.Habit {
	out := slices.Clone(list)
	if out == nil {
		out = []models.Habit{}
	}
	slices.SortStableFunc(out, func(a, b models.Habit) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
	return out
}

// Streak is the number of completed days ("points") of a habit.
func Streak(h models.Habit) int {
	return len(h.CompletedDays)
}

// ProgressWidth is the card progress bar fill in percent: ten per point,
// capped at 100.
func ProgressWidth(h models.Habit) int {
	return min(Streak(h)*10, 100)
}
