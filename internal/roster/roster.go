// Package roster holds the fixed team and the static access-key table.
//
// Lookups are total: callers that need a member always get one, falling back
// to the first roster entry. The fallback policy lives here and nowhere else.
package roster

import "strings"

// AdminRole is the access-key value that grants an admin session.
const AdminRole = "admin"

// Member is a fixed participant with a stable id and a display profile.
type Member struct {
	ID       string
	Name     string
	Role     string
	ImageRef string
}

// FirstName returns the first word of the member's name.
func (m Member) FirstName() string {
	if f := strings.Fields(m.Name); len(f) > 0 {
		return f[0]
	}
	return m.Name
}

var team = []Member{
	{ID: "u1", Name: "ALEX FENIAS", Role: "Funnel Builder", ImageRef: "https://i.postimg.cc/XZQw9gr3/ALEX.png"},
	{ID: "u2", Name: "ARCENIO HUMBERTO", Role: "Copywriter", ImageRef: "https://i.postimg.cc/0Mj7nJSk/ARCENIO.png"},
	{ID: "u3", Name: "SCHNAYDER NANGY", Role: "VSL Creator", ImageRef: "https://i.postimg.cc/r0s5jt45/NAPSTER.png"},
	{ID: "u4", Name: "ARTUR NAKARAPA", Role: "Ads Maker", ImageRef: "https://i.postimg.cc/PpJ1y8Dd/ARTUR.png"},
	{ID: "u5", Name: "AGAPITO SUMBANE", Role: "Offers Miner", ImageRef: "https://i.postimg.cc/Xv5QPMRt/AGAPITO.png"},
}

// keys are stored uppercase; ResolveKey normalizes input the same way.
var accessKeys = map[string]string{
	"PRETOSOLTO": "u1",
	"BADWOLF":    "u2",
	"NAPSTER":    "u3",
	"NAKA":       "u4",
	"OTIPJAN":    "u5",
	"PRIME":      AdminRole,
}

// All returns a copy of the roster in canonical order.
func All() []Member {
	out := make([]Member, len(team))
	copy(out, team)
	return out
}

// First returns the canonical default member.
func First() Member {
	return team[0]
}

// Lookup finds a member by id.
func Lookup(id string) (Member, bool) {
	for _, m := range team {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// Resolve is the total form of Lookup: unknown ids resolve to First.
func Resolve(id string) Member {
	if m, ok := Lookup(id); ok {
		return m
	}
	return First()
}

// Valid reports whether id names a roster member.
func Valid(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Grant is the outcome of a successful access-key check.
type Grant struct {
	IsAdmin bool
	Member  Member
}

// ResolveKey matches key case-insensitively against the access table.
// Admin grants are bound to First.
func ResolveKey(key string) (Grant, bool) {
	role, ok := accessKeys[strings.ToUpper(key)]
	if !ok {
		return Grant{}, false
	}
	if role == AdminRole {
		return Grant{IsAdmin: true, Member: First()}, true
	}
	m, ok := Lookup(role)
	if !ok {
		return Grant{}, false
	}
	return Grant{Member: m}, true
}

// Keys returns the access table. Callers get a copy.
func Keys() map[string]string {
	out := make(map[string]string, len(accessKeys))
	for k, v := range accessKeys {
		out[k] = v
	}
	return out
}
