package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/primezone/internal/filex"
)

const (
	BackendZap  = "zap"
	BackendSlog = "slog"
)

// New builds a Logger for backend writing JSON lines to path ("-" or ""
// means stderr). The returned closer flushes and releases the sink.
func New(backend, level, path string) (Logger, func() error, error) {
	w, closeSink, err := openSink(path)
	if err != nil {
		return nil, nil, err
	}

	switch backend {
	case BackendSlog:
		return newSlogJSON(w, level), closeSink, nil

	case BackendZap, "":
		zl := newZapJSON(w, level)
		return zl, func() error {
			_ = zl.Sync()
			return closeSink()
		}, nil
	}

	_ = closeSink()
	return nil, nil, fmt.Errorf("unknown log backend %q", backend)
}

func openSink(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stderr, func() error { return nil }, nil
	}
	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
