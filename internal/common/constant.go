// Package common contains shared constants and sentinel errors used across
// primezone components.
package common

// Durable store keys. The names match the browser build so an exported
// localStorage dump can be loaded as-is.
const (
	KeyLogged      = "pz_logged"
	KeyIsAdmin     = "pz_is_admin"
	KeyActiveID    = "pz_active_id"
	KeyHabitsStore = "pz_habits_store"
)

// SessionKeys lists the markers owned by the session resolver.
var SessionKeys = []string{KeyLogged, KeyIsAdmin, KeyActiveID}

// MarkerTrue is the only stored value read back as a set flag.
const MarkerTrue = "true"
