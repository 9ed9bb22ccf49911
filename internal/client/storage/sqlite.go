package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/dmitrijs2005/usersconsole/internal/client/migrations"
)

// execer is the subset of database/sql shared by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SQLiteStore keeps keys in the goose-managed kv table.
type SQLiteStore struct {
	db *sql.DB
}

// RunMigrations brings the schema of db up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// OpenSQLite opens (creating if needed) the database at dsn and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one connection: ":memory:" databases are per connection
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLiteStore(db), nil
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", notFound(key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	return set(ctx, s.db, key, value)
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	return del(ctx, s.db, key)
}

func (s *SQLiteStore) SetMany(ctx context.Context, values map[string]string) error {
	return s.withTx(ctx, func(ctx context.Context, tx execer) error {
		for k, v := range values {
			if err := set(ctx, tx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) DeleteMany(ctx context.Context, keys ...string) error {
	return s.withTx(ctx, func(ctx context.Context, tx execer) error {
		for _, k := range keys {
			if err := del(ctx, tx, k); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// withTx runs fn in a transaction, committing on success and rolling back
// on error or panic. Panics are rethrown.
func (s *SQLiteStore) withTx(ctx context.Context, fn func(ctx context.Context, tx execer) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(ctx, tx)
}

func set(ctx context.Context, db execer, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func del(ctx context.Context, db execer, key string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}
