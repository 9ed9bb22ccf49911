// Package storage persists the session across process restarts. It is a
// small key/value contract with SQLite, Redis and in-memory backends.
package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/usersconsole/internal/common"
)

// Store is a durable key/value store.
//
// Get returns common.ErrNotFound for absent keys. SetMany and DeleteMany are
// atomic on backends that support it. Deleting an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	SetMany(ctx context.Context, values map[string]string) error
	DeleteMany(ctx context.Context, keys ...string) error
	Close() error
}

// Drivers accepted by Open.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Driver    string
	DSN       string
	RedisAddr string
	RedisDB   int
	// Passphrase, when set, wraps the backend in a SealedStore.
	Passphrase string
}

// Open builds the backend named by opts.Driver, sealed when opts.Passphrase
// is set.
func Open(ctx context.Context, opts Options) (Store, error) {
	st, err := openBackend(ctx, opts)
	if err != nil || opts.Passphrase == "" {
		return st, err
	}
	sealed, err := Seal(ctx, st, []byte(opts.Passphrase))
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("seal storage: %w", err)
	}
	return sealed, nil
}

func openBackend(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverSQLite, "":
		return OpenSQLite(ctx, opts.DSN)
	case DriverRedis:
		return OpenRedis(ctx, opts.RedisAddr, opts.RedisDB)
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}

func notFound(key string) error {
	return fmt.Errorf("key %s: %w", key, common.ErrNotFound)
}
