package storage

import (
	"errors"
	"fmt"
)

// Store is the persistence port shared by the cart, wishlist, compare and
// catalog containers. It is a plain key -> bytes store: no transactions, no
// schema versioning. Each container owns its keys exclusively, so no
// cross-key coordination is needed. If two clients write the same key the
// last writer wins; callers that need stronger guarantees must not use this.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Keys returns all stored keys with the given prefix.
	Keys(prefix string) ([]string, error)

	Close() error
}

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

// Config selects and parameterizes a backend.
type Config struct {
	Backend     string // "memory", "file", "pebble", "redis" or "postgres"
	DataDir     string // file and pebble backends
	RedisURL    string
	DatabaseURL string
	Namespace   string // redis key prefix
}

// Open creates the backend named by cfg.Backend.
func Open(cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.DataDir)
	case "pebble":
		return NewPebbleStore(cfg.DataDir)
	case "redis":
		return NewRedisStore(cfg.RedisURL, cfg.Namespace)
	case "postgres":
		return NewPostgresStore(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}
