package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/invtrack/internal/server/config"
	"github.com/dmitrijs2005/invtrack/internal/server/filter"
	"github.com/dmitrijs2005/invtrack/internal/server/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), "mongo", "")
	assert.ErrorContains(t, err, `unknown store driver "mongo"`)
}

func TestNew_Memory(t *testing.T) {
	m, err := New(context.Background(), config.DriverMemory, "")
	require.NoError(t, err)
	defer m.Close()

	assert.NoError(t, m.Ping(context.Background()))
	assert.NotNil(t, m.Users())
	assert.NotNil(t, m.Inventory())
}

func TestNew_SQLiteMigratesAndServes(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	m, err := New(context.Background(), config.DriverSQLite, dsn)
	require.NoError(t, err)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Ping(ctx))

	_, err = m.Users().Create(ctx, &models.User{Email: "a@b.com", PasswordHash: "h"})
	require.NoError(t, err)

	it, err := m.Inventory().Create(ctx, &models.Item{Fields: models.Fields{"applicationName": models.String("X")}})
	require.NoError(t, err)

	items, err := m.Inventory().List(ctx, filter.Predicate{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, it.ID, items[0].ID)

	// Running migrations again is a no-op.
	assert.NoError(t, m.RunMigrations(ctx))
}

func TestNew_SQLiteFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "inventory.db")

	m, err := New(context.Background(), config.DriverSQLite, path)
	require.NoError(t, err)
	defer m.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNew_OpenError(t *testing.T) {
	orig := sqlOpen
	defer func() { sqlOpen = orig }()
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		return nil, errors.New("no driver")
	}

	_, err := New(context.Background(), config.DriverPostgres, "postgres://x")
	assert.ErrorContains(t, err, "db open error: no driver")
}

func TestPostgresManager_PingAndClose(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	m := NewPostgresRepositoryManager(db)
	assert.NotNil(t, m.Users())
	assert.NotNil(t, m.Inventory())

	mock.ExpectPing().WillReturnError(errors.New("down"))
	assert.EqualError(t, m.Ping(context.Background()), "down")

	mock.ExpectClose()
	require.NoError(t, m.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
