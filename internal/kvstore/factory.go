package kvstore

import (
	"fmt"
	"log/slog"
)

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// BackendType selects the storage implementation.
type BackendType string

func (bt BackendType) String() string { return string(bt) }

func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Config holds what each backend needs to open.
type Config struct {
	Type         BackendType
	SQLiteDBPath string
}

func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}
	if c.Type == SQLiteBackend && c.SQLiteDBPath == "" {
		return fmt.Errorf("sqlite database path is required for sqlite backend")
	}
	return nil
}

// Open creates the configured store and its cleanup.
func Open(cfg Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case SQLiteBackend:
		store, err := NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized SQLite store", "db_path", cfg.SQLiteDBPath)
		return &Result{Store: store, Cleanup: store.Close}, nil
	case MemoryBackend:
		logger.Info("Initialized memory store")
		return &Result{Store: NewMemoryStore(), Cleanup: nil}, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}
