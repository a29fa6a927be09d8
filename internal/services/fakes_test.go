package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/primezone/internal/logging"
	"github.com/dmitrijs2005/primezone/internal/repositories/metadata"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var errBoom = errors.New("boom")

// recordingRepo wraps a MemoryRepository, counts writes and can fail
// selected operations.
type recordingRepo struct {
	*metadata.MemoryRepository

	mu     sync.Mutex
	reads  int
	writes int

	GetErr        error
	SetErr        error
	SetManyErr    error
	DeleteManyErr error
}

func newRecordingRepo() *recordingRepo {
	return &recordingRepo{MemoryRepository: metadata.NewMemoryRepository()}
}

func (r *recordingRepo) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	r.reads++
	r.mu.Unlock()
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	return r.MemoryRepository.Get(ctx, key)
}

func (r *recordingRepo) Set(ctx context.Context, key string, value []byte) error {
	r.countWrite()
	if r.SetErr != nil {
		return r.SetErr
	}
	return r.MemoryRepository.Set(ctx, key, value)
}

func (r *recordingRepo) SetMany(ctx context.Context, values map[string][]byte) error {
	r.countWrite()
	if r.SetManyErr != nil {
		return r.SetManyErr
	}
	return r.MemoryRepository.SetMany(ctx, values)
}

func (r *recordingRepo) DeleteMany(ctx context.Context, keys ...string) error {
	r.countWrite()
	if r.DeleteManyErr != nil {
		return r.DeleteManyErr
	}
	return r.MemoryRepository.DeleteMany(ctx, keys...)
}

func (r *recordingRepo) countWrite() {
	r.mu.Lock()
	r.writes++
	r.mu.Unlock()
}

func (r *recordingRepo) counts() (reads, writes int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads, r.writes
}

func newObservedLogger() (logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logging.NewZapLogger(zap.New(core)), logs
}
