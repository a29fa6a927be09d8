// Package habits implements the pure mutation rules of the habit store.
//
// Every function takes a models.HabitStore and returns a new one; inputs are
// never modified, so a previous snapshot stays valid for diffing and undo-free
// rendering. Persisting the result is the caller's job.
package habits

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/primezone/internal/models"
	"github.com/google/uuid"
)

// NewID is the default habit id generator.
func NewID() string {
	return uuid.NewString()
}

// Add prepends a habit named name (trimmed) to ownerID's list.
// It returns the new store, the new habit's id and true, or the unchanged
// store and false when the name is blank.
func Add(store models.HabitStore, ownerID, name string, createdAt int64, newID func() string) (models.HabitStore, string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return store, "", false
	}
	if newID == nil {
		newID = NewID
	}

	current := store.For(ownerID)
	id := newID()
	for indexOf(current, id) >= 0 {
		id = newID()
	}

	h := models.Habit{ID: id, Name: name, CompletedDays: []string{}, CreatedAt: createdAt}

	list := make([]models.Habit, 0, len(current)+1)
	list = append(list, h)
	list = append(list, current...)

	out := store.Clone()
	out[ownerID] = list
	return out, id, true
}

// Toggle flips membership of date in the habit's completion set.
func Toggle(store models.HabitStore, ownerID, habitID, date string) (models.HabitStore, bool) {
	current := store.For(ownerID)
	i := indexOf(current, habitID)
	if i < 0 {
		return store, false
	}

	h := current[i].Clone()
	if j := slices.Index(h.CompletedDays, date); j >= 0 {
		h.CompletedDays = slices.Delete(h.CompletedDays, j, j+1)
	} else {
		h.CompletedDays = append(h.CompletedDays, date)
	}

	out := store.Clone()
	out[ownerID][i] = h
	return out, true
}

// Delete removes the habit from ownerID's list.
func Delete(store models.HabitStore, ownerID, habitID string) (models.HabitStore, bool) {
	current := store.For(ownerID)
	i := indexOf(current, habitID)
	if i < 0 {
		return store, false
	}

	out := store.Clone()
	out[ownerID] = slices.Delete(out[ownerID], i, i+1)
	return out, true
}

// Find returns the owner's habit with the given id.
func Find(store models.HabitStore, ownerID, habitID string) (models.Habit, bool) {
	current := store.For(ownerID)
	if i := indexOf(current, habitID); i >= 0 {
		return current[i], true
	}
	return models.Habit{}, false
}

func indexOf(list []models.Habit, id string) int {
	return slices.IndexFunc(list, func(h models.Habit) bool { return h.ID == id })
}
