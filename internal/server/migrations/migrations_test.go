package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestMigrations_EmbedsBothDialects(t *testing.T) {
	for _, dir := range []string{PostgresDir, SQLiteDir} {
		entries, err := fs.ReadDir(Migrations, dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2, dir)
	}
}

func TestUp_PassesDirToGoose(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	require.NoError(t, Up(context.Background(), nil, DialectPostgres, PostgresDir))
	assert.Equal(t, PostgresDir, gotDir)
}

func TestUp_PropagatesError(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	err := Up(context.Background(), nil, DialectSQLite, SQLiteDir)
	assert.EqualError(t, err, "boom")
}

func TestUp_UnknownDialect(t *testing.T) {
	assert.Error(t, Up(context.Background(), nil, "oracle", SQLiteDir))
}

func TestUp_SQLiteSchema(t *testing.T) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	require.NoError(t, Up(context.Background(), db, DialectSQLite, SQLiteDir))

	for _, table := range []string{"users", "inventory_items"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}

	_, err = db.Exec(`INSERT INTO inventory_items (id, doc, created_at) VALUES ('x', 'not json', '2024')`)
	assert.Error(t, err, "doc must be valid JSON")
}
