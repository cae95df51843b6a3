package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/invtrack/internal/common"
	"github.com/dmitrijs2005/invtrack/internal/dbx"
	"github.com/dmitrijs2005/invtrack/internal/server/filter"
	"github.com/dmitrijs2005/invtrack/internal/server/models"
	"github.com/google/uuid"
)

// SQLiteRepository keeps documents as JSON text and filters them with the
// JSON1 functions. Timestamps are dbx.TimeLayout strings.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	doc, err := encodeDoc(item.Fields)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO inventory_items (id, doc, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 `

	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, query, id, doc, dbx.FormatTime(item.CreatedAt), dbx.NullTime(item.UpdatedAt)); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	item.ID = id
	return item, nil
}

func (r *SQLiteRepository) List(ctx context.Context, pred filter.Predicate) ([]models.Item, error) {
	query := `SELECT id, doc, created_at, updated_at FROM inventory_items`

	where, args := pred.SQL(filter.SQLite, 1)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY created_at, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		item, err := scanSQLiteItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}
	return getSQLiteItem(ctx, r.db, id)
}

// Update reads, merges and writes back inside one transaction. json_patch is
// not used because it deletes keys patched with null.
func (r *SQLiteRepository) Update(ctx context.Context, id string, patch models.Fields, updatedAt time.Time) error {
	if !validID(id) {
		return common.ErrorNotFound
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		current, err := getSQLiteItem(ctx, tx, id)
		if err != nil {
			return err
		}

		doc, err := encodeDoc(current.Fields.Merge(patch))
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE inventory_items SET doc = ?, updated_at = ? WHERE id = ?`,
			doc, dbx.FormatTime(updatedAt), id)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return common.ErrorNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

func getSQLiteItem(ctx context.Context, db dbx.DBTX, id string) (*models.Item, error) {
	query :=
		`SELECT id, doc, created_at, updated_at FROM inventory_items
		 WHERE id = ?
		 `

	item, err := scanSQLiteItem(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return item, nil
}

func scanSQLiteItem(row rowScanner) (*models.Item, error) {
	var (
		item    models.Item
		doc     string
		created string
		updated sql.NullString
	)
	if err := row.Scan(&item.ID, &doc, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	fields, err := decodeDoc([]byte(doc))
	if err != nil {
		return nil, err
	}
	item.Fields = fields

	if item.CreatedAt, err = time.Parse(dbx.TimeLayout, created); err != nil {
		return nil, fmt.Errorf("db error: created_at: %w", err)
	}
	if item.UpdatedAt, err = dbx.ParseNullTime(updated); err != nil {
		return nil, fmt.Errorf("db error: updated_at: %w", err)
	}
	return &item, nil
}
