package creds

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"casefile/internal/client/migrations"
)

// OpenDatabase opens the local sqlite database and applies the embedded
// migrations. Callers that get an error should fall back to NewMemoryStore
// rather than failing the program.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
