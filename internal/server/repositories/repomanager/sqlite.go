package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/invtrack/internal/filex"
	"github.com/dmitrijs2005/invtrack/internal/server/migrations"
	"github.com/dmitrijs2005/invtrack/internal/server/repositories/inventory"
	"github.com/dmitrijs2005/invtrack/internal/server/repositories/users"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories. The pool is
// limited to one connection because SQLite allows a single writer.
type SQLiteRepositoryManager struct {
	db        *sql.DB
	users     *users.SQLiteRepository
	inventory *inventory.SQLiteRepository
}

// OpenSQLite opens the database file (or URI) at dsn, creating the parent
// directory of a plain file path.
func OpenSQLite(dsn string) (*SQLiteRepositoryManager, error) {
	if path := filex.SQLiteFilePath(dsn); path != "" {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
	}

	db, err := sqlOpen("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(1)
	return NewSQLiteRepositoryManager(db), nil
}

// NewSQLiteRepositoryManager wraps an already open database.
func NewSQLiteRepositoryManager(db *sql.DB) *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{
		db:        db,
		users:     users.NewSQLiteRepository(db),
		inventory: inventory.NewSQLiteRepository(db),
	}
}

func (m *SQLiteRepositoryManager) Users() users.Repository { return m.users }

func (m *SQLiteRepositoryManager) Inventory() inventory.Repository { return m.inventory }

// RunMigrations applies the embedded SQLite migrations.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context) error {
	return migrations.Up(ctx, m.db, migrations.DialectSQLite, migrations.SQLiteDir)
}

func (m *SQLiteRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *SQLiteRepositoryManager) Close() error {
	return m.db.Close()
}
