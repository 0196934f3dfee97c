package creds

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"casefile/internal/dbx"
)

const (
	keyToken     = "token"
	keyExpiresAt = "expires_at"
)

// SQLiteStore keeps the credential in a local key/value table so it survives
// restarts. Token and expiry are written in one transaction; a torn write
// must never leave a token without its expiry.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context) (*Credential, error) {
	token, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	raw, err := s.get(ctx, s.db, keyExpiresAt)
	if err != nil {
		return nil, err
	}
	expiresAt, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("corrupt expiry %q: %w", raw, err)
	}

	return &Credential{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *SQLiteStore) Set(ctx context.Context, c Credential) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyToken, c.Token); err != nil {
			return err
		}
		return s.set(ctx, tx, keyExpiresAt, c.ExpiresAt.Format(time.RFC3339))
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
