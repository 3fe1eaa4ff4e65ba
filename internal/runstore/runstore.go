// Package runstore tracks analysis runs and fitted exponents in a database.
package runstore

import (
	"fmt"
	"os"
	"sync"

	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/JesusPetro/mantra/schema"
)

// Global store instance for main logic.
var (
	store     contract.RunStore
	initOnce  sync.Once
	closeOnce sync.Once
	mu        sync.RWMutex
)

// Store returns the global run store, nil when tracking is disabled.
func Store() contract.RunStore {
	mu.RLock()
	defer mu.RUnlock()
	return store
}

// InitStore initializes the global run store. An empty backend disables
// tracking. Safe to call concurrently; only the first call does work.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		if backend == "" || backend == schema.NoneBackend {
			return
		}
		s, err := NewRunStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize run tracking: %w", err)
			return
		}
		mu.Lock()
		store = s
		mu.Unlock()
	})

	return initErr
}

// CloseStore should be called on application shutdown.
func CloseStore() { // called in main defer
	closeOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		if store != nil {
			_ = store.Close()
		}
	})
}

// ClearRuns clears the tracked run data for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the tables.
// For NoneBackend, it does nothing.
func ClearRuns(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return dropTables("mysql", connStr)

	case schema.PostgreSQLBackend:
		return dropTables("pgx", connStr)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}
