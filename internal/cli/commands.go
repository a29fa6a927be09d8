package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/primezone/internal/common"
	"github.com/dmitrijs2005/primezone/internal/models"
	"github.com/dmitrijs2005/primezone/internal/roster"
)

// getAccessKey is an indirection used to facilitate testing.
var getAccessKey = GetAccessKey

const invalidKeyNotice = "CHAVE INVÁLIDA"

var errAmbiguousID = errors.New("ambiguous habit id")

// fail reports err to the user and the log and returns it unchanged.
func (a *App) fail(ctx context.Context, op string, err error) error {
	a.logger.Error(ctx, op+" failed", "error", err)
	printlnFn(noticeStyle.Render("Erro: " + err.Error()))
	return err
}

func (a *App) requireLogin(ctx context.Context, op string) error {
	if a.isLoggedIn() {
		return nil
	}
	return a.fail(ctx, op, common.ErrNotLoggedIn)
}

// Login authenticates with key, prompting for it without echo when empty.
// A rejected key flashes a notice in the prompt and is not an error.
func (a *App) Login(ctx context.Context, key string) error {
	if key == "" {
		var err error
		key, err = getAccessKey(a.out)
		if err != nil {
			return a.fail(ctx, "read key", err)
		}
	}

	ok, err := a.ctrl.Login(ctx, key)
	if err != nil {
		return a.fail(ctx, "login", err)
	}
	if !ok {
		a.notice.Flash(invalidKeyNotice, a.config.ErrorNoticeTTL)
		printlnFn(noticeStyle.Render(invalidKeyNotice))
		return nil
	}

	a.notice.Stop()
	printlnFn(renderHabits(a.ctrl.View()))
	return nil
}

// Logout ends the session. Stored habits are kept.
func (a *App) Logout(ctx context.Context) error {
	if err := a.requireLogin(ctx, "logout"); err != nil {
		return err
	}
	if err := a.ctrl.Logout(ctx); err != nil {
		return a.fail(ctx, "logout", err)
	}
	printlnFn("Logged out")
	return nil
}

// Members lists the profiles this session may switch to.
func (a *App) Members(ctx context.Context) error {
	if err := a.requireLogin(ctx, "members"); err != nil {
		return err
	}
	printlnFn(renderMembers(a.ctrl.Manageable(), a.ctrl.View().Session.ActiveMemberID))
	return nil
}

// Switch makes memberID the active profile.
func (a *App) Switch(ctx context.Context, memberID string) error {
	if err := a.requireLogin(ctx, "switch"); err != nil {
		return err
	}
	if !roster.Valid(memberID) {
		return a.fail(ctx, "switch", fmt.Errorf("%w: %s", common.ErrUnknownMember, memberID))
	}
	if !a.ctrl.SwitchMember(ctx, memberID) {
		return a.fail(ctx, "switch", common.ErrForbidden)
	}
	printlnFn(renderHabits(a.ctrl.View()))
	return nil
}

// Shift moves the selected date by offset days.
func (a *App) Shift(ctx context.Context, offset int) error {
	if err := a.ctrl.ShiftDate(offset); err != nil {
		return a.fail(ctx, "shift", err)
	}
	if a.isLoggedIn() {
		printlnFn(renderHabits(a.ctrl.View()))
	} else {
		printlnFn(a.ctrl.View().SelectedDate)
	}
	return nil
}

// Add creates a habit for the active member.
func (a *App) Add(ctx context.Context, name string) error {
	if err := a.requireLogin(ctx, "add"); err != nil {
		return err
	}
	id, ok := a.ctrl.AddHabit(ctx, name)
	if !ok {
		printlnFn("Usage: add <name>")
		return nil
	}
	printlnFn(fmt.Sprintf("Meta criada: %s", shortID(id)))
	return nil
}

// Toggle flips the habit's completion on the selected date.
func (a *App) Toggle(ctx context.Context, ref string) error {
	if err := a.requireLogin(ctx, "toggle"); err != nil {
		return err
	}
	id, err := resolveHabitID(a.ctrl.View().Habits, ref)
	if err != nil {
		return a.fail(ctx, "toggle", err)
	}
	a.ctrl.ToggleHabit(ctx, id)
	printlnFn(renderHabits(a.ctrl.View()))
	return nil
}

// Delete removes a habit.
func (a *App) Delete(ctx context.Context, ref string) error {
	if err := a.requireLogin(ctx, "delete"); err != nil {
		return err
	}
	id, err := resolveHabitID(a.ctrl.View().Habits, ref)
	if err != nil {
		return a.fail(ctx, "delete", err)
	}
	a.ctrl.DeleteHabit(ctx, id)
	printlnFn(fmt.Sprintf("Meta removida: %s", shortID(id)))
	return nil
}

// List shows the active member's habits for the selected date.
func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(ctx, "list"); err != nil {
		return err
	}
	printlnFn(renderHabits(a.ctrl.View()))
	return nil
}

// Stats shows the trend and, for admins, the team view.
func (a *App) Stats(ctx context.Context) error {
	if err := a.requireLogin(ctx, "stats"); err != nil {
		return err
	}
	printlnFn(renderStats(a.ctrl.View()))
	return nil
}

// resolveHabitID matches ref against ids in list. An exact match wins;
// otherwise ref must be the prefix of exactly one id.
func resolveHabitID(list []models.Habit, ref string) (string, error) {
	var match string
	n := 0
	for _, h := range list {
		if h.ID == ref {
			return h.ID, nil
		}
		if strings.HasPrefix(h.ID, ref) {
			match = h.ID
			n++
		}
	}
	switch n {
	case 0:
		return "", fmt.Errorf("habit %q: %w", ref, common.ErrorNotFound)
	case 1:
		return match, nil
	default:
		return "", fmt.Errorf("%w: %q", errAmbiguousID, ref)
	}
}
