package blob

import (
	"context"
	"database/sql"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// PostgresStore is an alternative backend keeping one row per
// (collection, key). Writes are plain upserts; it gives the same
// last-writer-wins semantics as the object-storage backend.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Init creates the backing table. The schema is a single table, so there
// is no migration tooling around it.
func (s *PostgresStore) Init(ctx context.Context) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS blobs (
				collection TEXT NOT NULL,
				key        TEXT NOT NULL,
				doc        BYTEA NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				PRIMARY KEY (collection, key)
			)
		`)
		return err
	})
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) Exists(ctx context.Context, c Collection, key string) (bool, error) {
	var one int
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT 1 FROM blobs WHERE collection = $1 AND key = $2
		`, string(c), key).Scan(&one)
	})
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PostgresStore) Read(ctx context.Context, c Collection, key string) ([]byte, error) {
	var doc []byte
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT doc FROM blobs WHERE collection = $1 AND key = $2
		`, string(c), key).Scan(&doc)
	})
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *PostgresStore) Write(ctx context.Context, c Collection, key string, data []byte) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO blobs (collection, key, doc, updated_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (collection, key)
			DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
		`, string(c), key, data)
		return err
	})
}

func (s *PostgresStore) Remove(ctx context.Context, c Collection, key string) error {
	var affected int64
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		res, err := s.db.ExecContext(ctx, `
			DELETE FROM blobs WHERE collection = $1 AND key = $2
		`, string(c), key)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
