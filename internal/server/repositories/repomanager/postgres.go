package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/invtrack/internal/server/migrations"
	"github.com/dmitrijs2005/invtrack/internal/server/repositories/inventory"
	"github.com/dmitrijs2005/invtrack/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories sharing one
// pgx connection pool.
type PostgresRepositoryManager struct {
	db        *sql.DB
	users     *users.PostgresRepository
	inventory *inventory.PostgresRepository
}

// OpenPostgres opens a pgx pool for dsn. The connection is established
// lazily; call Ping to check it.
func OpenPostgres(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return NewPostgresRepositoryManager(db), nil
}

// NewPostgresRepositoryManager wraps an already open database.
func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{
		db:        db,
		users:     users.NewPostgresRepository(db),
		inventory: inventory.NewPostgresRepository(db),
	}
}

func (m *PostgresRepositoryManager) Users() users.Repository { return m.users }

func (m *PostgresRepositoryManager) Inventory() inventory.Repository { return m.inventory }

// RunMigrations applies the embedded PostgreSQL migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	return migrations.Up(ctx, m.db, migrations.DialectPostgres, migrations.PostgresDir)
}

func (m *PostgresRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
