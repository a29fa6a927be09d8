// Package stats derives the dashboard metrics from the habit store.
// Everything here is a pure function of its arguments; nothing is cached.
package stats

import (
	"time"

	"github.com/dmitrijs2005/primezone/internal/datex"
	"github.com/dmitrijs2005/primezone/internal/models"
	"github.com/dmitrijs2005/primezone/internal/roster"
)

// TrendDays is the length of the trailing trend window.
const TrendDays = 7

// Progress is the completion summary for one day.
type Progress struct {
	Done    int
	Total   int
	Percent int
}

// DailyProgress counts habits completed on date.
func DailyProgress(habits []models.Habit, date string) Progress {
	p := Progress{Total: len(habits)}
	for _, h := range habits {
		if h.CompletedOn(date) {
			p.Done++
		}
	}
	if p.Total > 0 {
		// round half up on non-negative integers
		p.Percent = (p.Done*200 + p.Total) / (2 * p.Total)
	}
	return p
}

// Point is one labelled sample of a chart series.
type Point struct {
	Label string
	Date  string
	Value int
}

// SevenDayTrend returns completions per day for the seven days ending at
// today, oldest first. The window follows the clock, not the selected date.
func SevenDayTrend(habits []models.Habit, today time.Time, locale string) []Point {
	anchor := time.Date(today.Year(), today.Month(), today.Day(), 12, 0, 0, 0, today.Location())

	out := make([]Point, 0, TrendDays)
	for i := TrendDays - 1; i >= 0; i-- {
		d := anchor.AddDate(0, 0, -i)
		iso := d.Format(datex.Layout)
		n := 0
		for _, h := range habits {
			if h.CompletedOn(iso) {
				n++
			}
		}
		out = append(out, Point{Label: datex.WeekdayLabel(d, locale), Date: iso, Value: n})
	}
	return out
}

// MemberTotalScore is the number of completed days across all habits.
func MemberTotalScore(habits []models.Habit) int {
	total := 0
	for _, h := range habits {
		total += len(h.CompletedDays)
	}
	return total
}

// Leader is the top scorer of the team.
type Leader struct {
	Member roster.Member
	Points int
}

// Leaderboard returns the roster member with the strictly highest score.
// Ties go to whoever comes first in roster order. When every score is zero
// there is no leader and ok is false.
func Leaderboard(store models.HabitStore) (Leader, bool) {
	var top Leader
	for _, m := range roster.All() {
		points := MemberTotalScore(store.For(m.ID))
		if points > top.Points {
			top = Leader{Member: m, Points: points}
		}
	}
	return top, top.Points > 0
}

// BenchmarkEntry is one member's bar in the team benchmark.
type BenchmarkEntry struct {
	MemberID string
	Name     string
	Score    int
}

// ShortName is the label the benchmark chart prints.
func (e BenchmarkEntry) ShortName() string {
	return roster.Member{Name: e.Name}.FirstName()
}

// TeamBenchmark lists every roster member's score in roster order,
// including members without habits.
func TeamBenchmark(store models.HabitStore) []BenchmarkEntry {
	team := roster.All()
	out := make([]BenchmarkEntry, 0, len(team))
	for _, m := range team {
		out = append(out, BenchmarkEntry{MemberID: m.ID, Name: m.Name, Score: MemberTotalScore(store.For(m.ID))})
	}
	return out
}
