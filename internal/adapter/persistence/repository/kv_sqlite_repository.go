package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"my_trip/internal/usecase/interfaces"
)

// KVSQLiteRepository stores values in the kv_entries table created by
// database.OpenSQLite.
type KVSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IKeyValueStore = (*KVSQLiteRepository)(nil)

func NewKVSQLiteRepository(db *sql.DB) *KVSQLiteRepository {
	return &KVSQLiteRepository{db: db}
}

func (r *KVSQLiteRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *KVSQLiteRepository) Set(ctx context.Context, key string, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

func (r *KVSQLiteRepository) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key)
	return err
}
