package inventory

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/invtrack/internal/common"
	"github.com/dmitrijs2005/invtrack/internal/server/filter"
	"github.com/dmitrijs2005/invtrack/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validUUID = "0b6a2c58-7d8c-4a52-9d8a-2f7c1d3e4b5a"

var itemColumns = []string{"id", "doc", "created_at", "updated_at"}

func newPostgresWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgresCreate(t *testing.T) {
	repo, mock := newPostgresWithMock(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+inventory_items\s*\(doc,\s*created_at\)\s*VALUES\s*\(\$1::jsonb,\s*\$2\)\s*RETURNING\s+id\s*$`).
		WithArgs(`{"applicationName":"X"}`, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(validUUID))

	got, err := repo.Create(context.Background(), &models.Item{
		Fields:    models.Fields{"applicationName": models.String("X")},
		CreatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, validUUID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+inventory_items`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Item{})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestPostgresList_WithFilter(t *testing.T) {
	repo, mock := newPostgresWithMock(t)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	q := `(?s)^SELECT id, doc, created_at, updated_at FROM inventory_items WHERE .*strpos\(lower\(doc->>'applicationName'\), lower\(\$1\)\) > 0\) AND doc->'severity' = to_jsonb\(\$2::text\) ORDER BY created_at, id$`
	mock.ExpectQuery(q).
		WithArgs("pay", "high").
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow(validUUID, []byte(`{"applicationName":"Payments","severity":"high"}`), created, nil).
			AddRow("11111111-2222-3333-4444-555555555555", []byte(`{"applicationName":"PayOps","severity":"high"}`), created, updated))

	items, err := repo.List(context.Background(), filter.Build(filter.Params{Search: "pay", Severity: "high"}))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, validUUID, items[0].ID)
	assert.Nil(t, items[0].UpdatedAt)
	require.NotNil(t, items[1].UpdatedAt)
	assert.True(t, updated.Equal(*items[1].UpdatedAt))
	assert.True(t, items[1].Fields["applicationName"].Equal(models.String("PayOps")))
}

func TestPostgresList_NoFilterNeverNil(t *testing.T) {
	repo, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`(?s)^SELECT id, doc, created_at, updated_at FROM inventory_items ORDER BY created_at, id$`).
		WillReturnRows(sqlmock.NewRows(itemColumns))

	items, err := repo.List(context.Background(), filter.Predicate{})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestPostgresList_CorruptDocument(t *testing.T) {
	repo, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(validUUID, []byte(`[1]`), time.Now(), nil))

	_, err := repo.List(context.Background(), filter.Predicate{})
	assert.ErrorIs(t, err, models.ErrNotAnObject)
}

func TestPostgresGetByID(t *testing.T) {
	repo, mock := newPostgresWithMock(t)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*doc,\s*created_at,\s*updated_at\s+FROM\s+inventory_items\s+WHERE\s+id\s*=\s*\$1\s*$`).
		WithArgs(validUUID).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(validUUID, []byte(`{"stage":"prod"}`), created, nil))

	got, err := repo.GetByID(context.Background(), validUUID)
	require.NoError(t, err)
	assert.True(t, got.Fields.Equal(models.Fields{"stage": models.String("prod")}))
	assert.True(t, created.Equal(got.CreatedAt))
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	repo, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`FROM\s+inventory_items`).WithArgs(validUUID).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), validUUID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgres_MalformedIDSkipsQuery(t *testing.T) {
	repo, mock := newPostgresWithMock(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, repo.Update(ctx, "123", models.Fields{}, time.Now()), common.ErrorNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, ""), common.ErrorNotFound)

	for _, alt := range []string{
		"{" + validUUID + "}",
		"urn:uuid:" + validUUID,
		"0b6a2c587d8c4a529d8a2f7c1d3e4b5a",
		"0B6A2C58-7D8C-4A52-9D8A-2F7C1D3E4B5A",
	} {
		_, err := repo.GetByID(ctx, alt)
		assert.ErrorIs(t, err, common.ErrorNotFound, alt)
		assert.ErrorIs(t, repo.Delete(ctx, alt), common.ErrorNotFound, alt)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdate(t *testing.T) {
	repo, mock := newPostgresWithMock(t)
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	q := `(?s)^UPDATE\s+inventory_items\s+SET\s+doc\s*=\s*doc\s*\|\|\s*\$2::jsonb,\s*updated_at\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s*$`
	mock.ExpectExec(q).
		WithArgs(validUUID, `{"stage":"prod"}`, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), validUUID, models.Fields{"stage": models.String("prod")}, now)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdate_NoMatch(t *testing.T) {
	repo, mock := newPostgresWithMock(t)

	mock.ExpectExec(`UPDATE\s+inventory_items`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), validUUID, models.Fields{}, time.Now())
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresDelete(t *testing.T) {
	repo, mock := newPostgresWithMock(t)

	mock.ExpectExec(`^DELETE FROM inventory_items WHERE id = \$1$`).
		WithArgs(validUUID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^DELETE FROM inventory_items WHERE id = \$1$`).
		WithArgs(validUUID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), validUUID))
	assert.ErrorIs(t, repo.Delete(context.Background(), validUUID), common.ErrorNotFound)
}

func TestPostgresDelete_DBError(t *testing.T) {
	repo, mock := newPostgresWithMock(t)

	mock.ExpectExec(`DELETE`).WillReturnError(errors.New("db err"))

	err := repo.Delete(context.Background(), validUUID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}
