// Package pgstore implements storage.Store on a postgres table.
package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bindaas/storefront/storage"
	"github.com/jmoiron/sqlx"
)

type Store struct {
	db *sqlx.DB
}

var (
	_ storage.Store  = (*Store)(nil)
	_ storage.Lister = (*Store)(nil)
)

type row struct {
	Key       string    `db:"key"`
	Value     []byte    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// New returns a Store over db. The kv table must exist, see database.Migrate.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `
	SELECT
		key, value, updated_at
	FROM kv
	WHERE key = $1`

	var r row
	if err := sqlx.GetContext(ctx, s.db, &r, q, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("selecting key[%s]: %w", key, err)
	}

	return r.Value, nil
}

func (s *Store) Set(ctx context.Context, key string, val []byte) error {
	const q = `
	INSERT INTO kv
		(key, value, updated_at)
	VALUES
		(:key, :value, :updated_at)
	ON CONFLICT (key) DO UPDATE SET
		value = EXCLUDED.value,
		updated_at = EXCLUDED.updated_at`

	r := row{Key: key, Value: val, UpdatedAt: time.Now().UTC()}
	if _, err := sqlx.NamedExecContext(ctx, s.db, q, r); err != nil {
		return fmt.Errorf("upserting key[%s]: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	const q = `
	DELETE FROM kv
	WHERE key = $1`

	if _, err := s.db.ExecContext(ctx, q, key); err != nil {
		return fmt.Errorf("deleting key[%s]: %w", key, err)
	}
	return nil
}

func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	const q = `
	SELECT
		key
	FROM kv
	WHERE starts_with(key, $1)
	ORDER BY key`

	var keys []string
	if err := sqlx.SelectContext(ctx, s.db, &keys, q, prefix); err != nil {
		return nil, fmt.Errorf("selecting keys[%s*]: %w", prefix, err)
	}
	return keys, nil
}
