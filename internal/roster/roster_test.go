package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessKeys_NonAdminValuesResolve(t *testing.T) {
	for k, v := range Keys() {
		assert.Equal(t, strings.ToUpper(k), k, "keys are stored uppercase")
		if v == AdminRole {
			continue
		}
		assert.Truef(t, Valid(v), "key %s maps to unknown member %s", k, v)
	}
}

func TestRoster_IDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range All() {
		require.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
	}
}

func TestResolveKey_AllKeys(t *testing.T) {
	for k, v := range Keys() {
		g, ok := ResolveKey(k)
		require.True(t, ok, k)
		if v == AdminRole {
			assert.True(t, g.IsAdmin)
			assert.Equal(t, First(), g.Member)
		} else {
			assert.False(t, g.IsAdmin)
			assert.Equal(t, v, g.Member.ID)
		}
	}
}

func TestResolveKey_CaseInsensitive(t *testing.T) {
	g, ok := ResolveKey("prime")
	require.True(t, ok)
	assert.True(t, g.IsAdmin)

	g, ok = ResolveKey("NaPsTeR")
	require.True(t, ok)
	assert.Equal(t, "u3", g.Member.ID)
}

func TestResolveKey_Unknown(t *testing.T) {
	for _, k := range []string{"", " ", "PRIME ", "admin", "u1", "nope"} {
		_, ok := ResolveKey(k)
		assert.Falsef(t, ok, "key %q should not resolve", k)
	}
}

func TestResolve_FallsBackToFirst(t *testing.T) {
	assert.Equal(t, "u4", Resolve("u4").ID)
	assert.Equal(t, First(), Resolve(""))
	assert.Equal(t, First(), Resolve("ghost"))
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0].Name = "changed"
	assert.NotEqual(t, "changed", First().Name)
}

func TestFirstName(t *testing.T) {
	assert.Equal(t, "ARTUR", Resolve("u4").FirstName())
	assert.Equal(t, "", Member{}.FirstName())
}
