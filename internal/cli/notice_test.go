package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotice_ClearsAfterTTL(t *testing.T) {
	var n notice
	t.Cleanup(n.Stop)

	n.Flash("CHAVE INVÁLIDA", 20*time.Millisecond)
	assert.Equal(t, "CHAVE INVÁLIDA", n.Current())

	require.Eventually(t, func() bool { return n.Current() == "" }, time.Second, 5*time.Millisecond)
}

func TestNotice_ReflashRestartsCountdown(t *testing.T) {
	var n notice
	t.Cleanup(n.Stop)

	n.Flash("first", 10*time.Millisecond)
	n.Flash("second", time.Hour)

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, "second", n.Current(), "the stale timer must not clear the newer message")
}

func TestNotice_Stop(t *testing.T) {
	var n notice
	n.Flash("msg", time.Hour)
	n.Stop()
	assert.Empty(t, n.Current())
	n.Stop()
}
