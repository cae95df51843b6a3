package repomanager

import (
	"context"

	"github.com/dmitrijs2005/invtrack/internal/server/repositories/inventory"
	"github.com/dmitrijs2005/invtrack/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory. Useful for
// tests and local runs.
type MemoryRepositoryManager struct {
	users     *users.MemoryRepository
	inventory *inventory.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:     users.NewMemoryRepository(),
		inventory: inventory.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *MemoryRepositoryManager) Inventory() inventory.Repository { return m.inventory }

func (m *MemoryRepositoryManager) Ping(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Close() error { return nil }
