// Package dashboard wires the session resolver, the habit store and the
// metrics into a single controller that a presentation layer drives.
//
// All state lives in one state.Container. Habit mutations bump a revision
// and a subscriber persists the store whenever the revision changes.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/primezone/internal/datex"
	"github.com/dmitrijs2005/primezone/internal/habits"
	"github.com/dmitrijs2005/primezone/internal/logging"
	"github.com/dmitrijs2005/primezone/internal/models"
	"github.com/dmitrijs2005/primezone/internal/roster"
	"github.com/dmitrijs2005/primezone/internal/services"
	"github.com/dmitrijs2005/primezone/internal/state"
)

// AppState is the whole dashboard state.
type AppState struct {
	Session      models.Session
	SelectedDate string
	Habits       models.HabitStore
	Ready        bool

	habitsRev uint64
}

type Controller struct {
	sessions services.SessionService
	store    services.HabitService
	log      logging.Logger

	now    func() time.Time
	newID  func() string
	locale string

	state       *state.Container[AppState]
	unsubscribe func()
}

// New builds a Controller. Call Start before using it.
func New(sessions services.SessionService, store services.HabitService, log logging.Logger, opts ...Option) *Controller {
	if log == nil {
		log = logging.Nop{}
	}
	c := &Controller{
		sessions: sessions,
		store:    store,
		log:      log,
		now:      time.Now,
		newID:    habits.NewID,
		locale:   "pt-BR",
		state: state.New(AppState{
			Session: models.Session{ActiveMemberID: roster.First().ID},
			Habits:  models.HabitStore{},
		}),
	}
	for _, o := range opts {
		o(c)
	}
	c.unsubscribe = c.state.Subscribe(c.persist)
	return c
}

func (c *Controller) persist(prev, next AppState) {
	if prev.habitsRev == next.habitsRev {
		return
	}
	if err := c.store.Save(context.Background(), next.Habits); err != nil {
		c.log.Error(context.Background(), "habit store not saved", "error", err)
	}
}

// Close detaches the persistence subscriber.
func (c *Controller) Close() {
	c.unsubscribe()
}

// Start loads the habit store, restores the session after the sync delay and
// marks the dashboard ready. On cancellation nothing is changed.
func (c *Controller) Start(ctx context.Context) error {
	store := c.store.Load(ctx)

	session, err := c.sessions.Initialize(ctx)
	if err != nil {
		return fmt.Errorf("initialize session: %w", err)
	}

	today := datex.Today(c.now())
	c.state.Update(func(s AppState) AppState {
		s.Session = session
		s.Habits = store
		s.SelectedDate = today
		s.Ready = true
		return s
	})

	c.log.Info(ctx, "dashboard ready", "date", today, "logged", session.IsLogged)
	return nil
}

// Ready reports whether Start has completed.
func (c *Controller) Ready() bool {
	return c.state.Get().Ready
}

// State returns the current state snapshot.
func (c *Controller) State() AppState {
	return c.state.Get()
}

// Login tries key. A wrong key returns (false, nil) and leaves the session
// untouched.
func (c *Controller) Login(ctx context.Context, key string) (bool, error) {
	res, err := c.sessions.Authenticate(ctx, key)
	if err != nil {
		return false, err
	}
	if !res.Success {
		return false, nil
	}
	c.state.Update(func(s AppState) AppState {
		s.Session = res.Session
		return s
	})
	return true, nil
}

// Logout ends the session. Habits stay stored.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.sessions.Logout(ctx); err != nil {
		return err
	}
	c.state.Update(func(s AppState) AppState {
		s.Session = models.Session{ActiveMemberID: roster.First().ID}
		return s
	})
	return nil
}

// SwitchMember makes id the active member when the session may manage it.
func (c *Controller) SwitchMember(ctx context.Context, id string) bool {
	current := c.state.Get().Session
	if !current.CanManage(id) {
		return false
	}

	next, ok, err := c.sessions.SwitchMember(ctx, current, id)
	if err != nil {
		c.log.Error(ctx, "switch member failed", "member", id, "error", err)
		return false
	}
	if !ok {
		return false
	}

	c.state.Update(func(s AppState) AppState {
		s.Session = next
		return s
	})
	return true
}

// ShiftDate moves the selected date by offset days.
func (c *Controller) ShiftDate(offset int) error {
	var shiftErr error
	loc := c.now().Location()
	c.state.Update(func(s AppState) AppState {
		d, err := datex.ShiftIn(s.SelectedDate, offset, loc)
		if err != nil {
			shiftErr = err
			return s
		}
		s.SelectedDate = d
		return s
	})
	return shiftErr
}

// AddHabit adds a habit for the active member and returns its id.
func (c *Controller) AddHabit(ctx context.Context, name string) (string, bool) {
	var (
		id string
		ok bool
	)
	createdAt := c.now().UnixMilli()
	c.mutate(func(s AppState) (models.HabitStore, bool) {
		var store models.HabitStore
		store, id, ok = habits.Add(s.Habits, s.Session.ActiveMemberID, name, createdAt, c.newID)
		return store, ok
	})
	if ok {
		c.log.Info(ctx, "habit added", "member", c.state.Get().Session.ActiveMemberID, "habit", id)
	}
	return id, ok
}

// ToggleHabit flips the habit's completion on the selected date.
func (c *Controller) ToggleHabit(ctx context.Context, id string) bool {
	ok := c.mutate(func(s AppState) (models.HabitStore, bool) {
		return habits.Toggle(s.Habits, s.Session.ActiveMemberID, id, s.SelectedDate)
	})
	if ok {
		c.log.Debug(ctx, "habit toggled", "habit", id)
	}
	return ok
}

// DeleteHabit removes the habit from the active member's list.
func (c *Controller) DeleteHabit(ctx context.Context, id string) bool {
	ok := c.mutate(func(s AppState) (models.HabitStore, bool) {
		return habits.Delete(s.Habits, s.Session.ActiveMemberID, id)
	})
	if ok {
		c.log.Info(ctx, "habit deleted", "habit", id)
	}
	return ok
}

// mutate applies fn to a ready, logged-in state. The revision only moves when
// fn reports a change.
func (c *Controller) mutate(fn func(AppState) (models.HabitStore, bool)) bool {
	changed := false
	c.state.Update(func(s AppState) AppState {
		if !s.Ready || !s.Session.IsLogged {
			return s
		}
		store, ok := fn(s)
		if !ok {
			return s
		}
		changed = true
		s.Habits = store
		s.habitsRev++
		return s
	})
	return changed
}
