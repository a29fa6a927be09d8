package logging

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeLines parses each JSON line written by the slog handler.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec), "line: %s", sc.Text())
		out = append(out, rec)
	}
	require.NoError(t, sc.Err())
	return out
}

func TestSlogJSON_EveryLevelCarriesItsAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogJSON(&buf, "debug")
	ctx := context.Background()

	log.Debug(ctx, "session restored", "member", "u1")
	log.Info(ctx, "habit added", "habit", "h1")
	log.Warn(ctx, "store repaired", "dropped", 2)
	log.Error(ctx, "save failed", "err", "disk full")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 4)

	want := []struct {
		level, msg, key string
		val             any
	}{
		{"DEBUG", "session restored", "member", "u1"},
		{"INFO", "habit added", "habit", "h1"},
		{"WARN", "store repaired", "dropped", float64(2)},
		{"ERROR", "save failed", "err", "disk full"},
	}
	for i, w := range want {
		assert.Equal(t, w.level, recs[i]["level"])
		assert.Equal(t, w.msg, recs[i]["msg"])
		assert.Equal(t, w.val, recs[i][w.key])
	}
}

func TestSlogJSON_WithIsScoped(t *testing.T) {
	var buf bytes.Buffer
	base := newSlogJSON(&buf, "info")
	scoped := base.With("component", "dashboard")

	scoped.Info(context.Background(), "ready")
	base.Info(context.Background(), "plain")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 2)
	assert.Equal(t, "dashboard", recs[0]["component"])
	assert.NotContains(t, recs[1], "component", "With must not leak into the parent")
}

func TestSlogJSON_LevelThreshold(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", true, true},
		{"INFO", false, true},
		{"warn", false, false},
		{"bogus", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := newSlogJSON(&buf, tt.level)
			l.Debug(context.Background(), "dbg-line")
			l.Info(context.Background(), "info-line")

			assert.Equal(t, tt.wantDebug, strings.Contains(buf.String(), "dbg-line"))
			assert.Equal(t, tt.wantInfo, strings.Contains(buf.String(), "info-line"))
		})
	}
}

func TestSlogLogger_BelowThresholdDropped(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogJSON(&buf, "error")
	assert.NotPanics(t, func() {
		log.Info(context.TODO(), "dropped")
		log.Error(context.TODO(), "kept")
	})
	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "kept", recs[0]["msg"])
}
