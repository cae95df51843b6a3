// Package repomanager opens the configured store and vends the repositories
// built on it.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/invtrack/internal/server/config"
	"github.com/dmitrijs2005/invtrack/internal/server/repositories/inventory"
	"github.com/dmitrijs2005/invtrack/internal/server/repositories/users"
)

// RepositoryManager owns the store connection and the repositories over it.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Inventory() inventory.Repository
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// New opens the store selected by driver, runs its migrations and returns
// the manager. The caller must Close it.
func New(ctx context.Context, driver, dsn string) (RepositoryManager, error) {
	var (
		m   RepositoryManager
		err error
	)

	switch driver {
	case config.DriverPostgres:
		m, err = OpenPostgres(dsn)
	case config.DriverSQLite:
		m, err = OpenSQLite(dsn)
	case config.DriverMemory:
		m = NewMemoryRepositoryManager()
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
