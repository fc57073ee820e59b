// Package kv provides the string-valued key-value stores the run log is
// persisted in. Every backend is synchronous and single-writer.
package kv

import "fmt"

// Store is a synchronous string key-value store.
type Store interface {
	// Get returns the value for key. ok is false when the key was never set.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	Close() error
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Backend  string
	Dir      string
	Compress bool
}

// Open returns the backend named by opts.Backend.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileStore(opts.Dir, opts.Compress)
	case BackendSQLite:
		return OpenSQLite(SQLitePath(opts.Dir))
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (supported: file, sqlite)", opts.Backend)
	}
}
