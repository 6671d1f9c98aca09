package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Load fetches the blob stored under key. ok is false when the key has
// never been written.
func (db *DB) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var blob []byte
	err := db.pool.QueryRow(ctx,
		"SELECT blob FROM snapshots WHERE key = $1",
		key,
	).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return blob, true, nil
}

// Save overwrites the blob stored under key with the full snapshot.
func (db *DB) Save(ctx context.Context, key string, blob []byte) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO snapshots (key, blob, updated_at)
         VALUES ($1, $2, CURRENT_TIMESTAMP)
         ON CONFLICT (key) DO UPDATE SET blob = EXCLUDED.blob, updated_at = CURRENT_TIMESTAMP`,
		key, blob,
	)
	return err
}
