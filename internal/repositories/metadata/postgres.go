package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/primezone/internal/dbx"
)

// PostgresRepository stores metadata in a PostgreSQL `metadata` table,
// reached through the pgx database/sql driver.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const (
	pgGet    = `SELECT value FROM metadata WHERE key = $1`
	pgSet    = `INSERT INTO metadata (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	pgDelete = `DELETE FROM metadata WHERE key = $1`
)

func (r *PostgresRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, pgGet, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *PostgresRepository) Set(ctx context.Context, key string, value []byte) error {
	return setValue(ctx, r.db, pgSet, key, value)
}

func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	return deleteKey(ctx, r.db, pgDelete, key)
}

func (r *PostgresRepository) Clear(ctx context.Context) error {
	return clearAll(ctx, r.db)
}

func (r *PostgresRepository) List(ctx context.Context) (map[string][]byte, error) {
	return listAll(ctx, r.db)
}

func (r *PostgresRepository) SetMany(ctx context.Context, values map[string][]byte) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for k, v := range values {
			if err := setValue(ctx, tx, pgSet, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PostgresRepository) DeleteMany(ctx context.Context, keys ...string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, k := range keys {
			if err := deleteKey(ctx, tx, pgDelete, k); err != nil {
				return err
			}
		}
		return nil
	})
}
