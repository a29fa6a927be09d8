package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name:     "all flags",
			args:     []string{"cmd", "-s", "postgres", "-d", "postgres://x", "-l", "en", "-v", "debug", "-delay", "50"},
			expected: &Config{StorageDriver: "postgres", StorageDSN: "postgres://x", Locale: "en", LogLevel: "debug", SyncDelay: 50 * time.Millisecond},
		},
		{
			name:     "unrelated flags ignored",
			args:     []string{"cmd", "-c", "file.json", "-x", "1", "-s", "memory"},
			expected: &Config{StorageDriver: "memory"},
		},
		{name: "bad delay", args: []string{"cmd", "-delay", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
