// Package models defines the persisted and in-memory value types of primezone.
package models

import "slices"

// Habit is a recurring goal owned by one member.
type Habit struct {
	// ID is unique within the owner's list.
	ID string `json:"id"`

	// Name is the trimmed, non-empty title.
	Name string `json:"name"`

	// CompletedDays is a set of ISO dates (YYYY-MM-DD). Order is insertion
	// order; entries are unique.
	CompletedDays []string `json:"completedDays"`

	// CreatedAt is the creation instant in Unix milliseconds.
	CreatedAt int64 `json:"createdAt"`
}

// CompletedOn reports whether date is in the completion set.
func (h Habit) CompletedOn(date string) bool {
	return slices.Contains(h.CompletedDays, date)
}

// Clone returns a deep copy.
func (h Habit) Clone() Habit {
	h.CompletedDays = slices.Clone(h.CompletedDays)
	if h.CompletedDays == nil {
		h.CompletedDays = []string{}
	}
	return h
}

// HabitStore maps a member id to that member's habits, newest first.
// A missing key and an empty slice mean the same thing.
type HabitStore map[string][]Habit

// For returns the owner's habits; never nil.
func (s HabitStore) For(ownerID string) []Habit {
	if l, ok := s[ownerID]; ok && l != nil {
		return l
	}
	return []Habit{}
}

// Clone copies the map and the owner slices. Habits are shared by value, so
// their CompletedDays backing arrays are shared until a writer replaces them.
func (s HabitStore) Clone() HabitStore {
	out := make(HabitStore, len(s))
	for k, v := range s {
		out[k] = slices.Clone(v)
	}
	return out
}
