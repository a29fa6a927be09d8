package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabit_JSONShape(t *testing.T) {
	h := Habit{ID: "abc", Name: "Train", CompletedDays: []string{"2024-01-01"}, CreatedAt: 1700000000000}
	b, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc","name":"Train","completedDays":["2024-01-01"],"createdAt":1700000000000}`, string(b))
}

func TestHabit_CompletedOn(t *testing.T) {
	h := Habit{CompletedDays: []string{"2024-01-01", "2024-01-03"}}
	assert.True(t, h.CompletedOn("2024-01-03"))
	assert.False(t, h.CompletedOn("2024-01-02"))
}

func TestHabit_CloneIsDeep(t *testing.T) {
	h := Habit{ID: "x", CompletedDays: []string{"2024-01-01"}}
	c := h.Clone()
	c.CompletedDays[0] = "changed"
	assert.Equal(t, "2024-01-01", h.CompletedDays[0])

	empty := Habit{}.Clone()
	assert.NotNil(t, empty.CompletedDays)
}

func TestHabitStore_ForNeverNil(t *testing.T) {
	var s HabitStore
	assert.NotNil(t, s.For("u1"))
	assert.Empty(t, s.For("u1"))

	s = HabitStore{"u1": nil}
	assert.NotNil(t, s.For("u1"))
}

func TestHabitStore_CloneDetachesSlices(t *testing.T) {
	s := HabitStore{"u1": {{ID: "a"}, {ID: "b"}}}
	c := s.Clone()
	c["u1"][0].ID = "z"
	c["u2"] = []Habit{{ID: "q"}}

	assert.Equal(t, "a", s["u1"][0].ID)
	_, ok := s["u2"]
	assert.False(t, ok)
}
