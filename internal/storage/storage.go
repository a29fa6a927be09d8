// Package storage opens the durable key-value store selected by configuration
// and brings its schema up to date.
//
// Drivers:
//   - sqlite:   modernc.org/sqlite file database (default)
//   - postgres: PostgreSQL through the pgx database/sql driver
//   - memory:   process memory, nothing survives exit
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dmitrijs2005/primezone/internal/common"
	"github.com/dmitrijs2005/primezone/internal/filex"
	"github.com/dmitrijs2005/primezone/internal/repositories/metadata"
	"github.com/dmitrijs2005/primezone/internal/storage/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations in dir using dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect %s: %w", dialect, err)
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// isPlainPath reports whether a sqlite DSN names a file on disk rather than
// an in-memory database or a file: URI.
func isPlainPath(dsn string) bool {
	return dsn != "" && dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}

// Open returns the repository for driver and a closer releasing it.
func Open(ctx context.Context, driver, dsn string) (metadata.Repository, io.Closer, error) {
	switch driver {
	case DriverMemory:
		return metadata.NewMemoryRepository(), nopCloser{}, nil

	case DriverSQLite, "":
		if isPlainPath(dsn) {
			if _, err := filex.EnsureParentDir(dsn); err != nil {
				return nil, nil, fmt.Errorf("prepare sqlite path: %w", err)
			}
		}
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		// one writer; also keeps ":memory:" a single database
		db.SetMaxOpenConns(1)
		if err := RunMigrations(ctx, db, "sqlite3", "sqlite"); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return metadata.NewSQLiteRepository(db), db, nil

	case DriverPostgres:
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		if err := RunMigrations(ctx, db, "pgx", "postgres"); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return metadata.NewPostgresRepository(db), db, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", common.ErrUnsupportedDriver, driver)
}
