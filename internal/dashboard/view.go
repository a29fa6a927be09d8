package dashboard

import (
	"github.com/dmitrijs2005/primezone/internal/habits"
	"github.com/dmitrijs2005/primezone/internal/models"
	"github.com/dmitrijs2005/primezone/internal/roster"
	"github.com/dmitrijs2005/primezone/internal/stats"
)

// View is a read-only snapshot prepared for rendering. Admin-only fields are
// zero unless the session is an admin session.
type View struct {
	Ready        bool
	Session      models.Session
	Member       roster.Member
	SelectedDate string

	// Habits is the active member's list in display order.
	Habits []models.Habit
	Store  models.HabitStore

	Progress stats.Progress
	Trend    []stats.Point

	Leader    stats.Leader
	HasLeader bool
	Benchmark []stats.BenchmarkEntry
}

// View derives the current snapshot.
func (c *Controller) View() View {
	s := c.state.Get()
	own := s.Habits.For(s.Session.ActiveMemberID)

	v := View{
		Ready:        s.Ready,
		Session:      s.Session,
		Member:       roster.Resolve(s.Session.ActiveMemberID),
		SelectedDate: s.SelectedDate,
		Habits:       habits.SortedForDisplay(own),
		Store:        s.Habits,
		Progress:     stats.DailyProgress(own, s.SelectedDate),
		Trend:        stats.SevenDayTrend(own, c.now(), c.locale),
	}

	if s.Session.AdminView() {
		v.Leader, v.HasLeader = stats.Leaderboard(s.Habits)
		v.Benchmark = stats.TeamBenchmark(s.Habits)
	}
	return v
}

// Manageable lists the roster members the current session may act on.
func (c *Controller) Manageable() []roster.Member {
	s := c.state.Get().Session
	var out []roster.Member
	for _, m := range roster.All() {
		if s.CanManage(m.ID) {
			out = append(out, m)
		}
	}
	return out
}
