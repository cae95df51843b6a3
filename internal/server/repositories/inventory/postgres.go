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
)

// PostgresRepository keeps documents in a jsonb column. Updates use the
// jsonb concatenation operator, which replaces top-level keys only.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	doc, err := encodeDoc(item.Fields)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO inventory_items (doc, created_at)
		 VALUES ($1::jsonb, $2)
		 RETURNING id
		 `

	if err := r.db.QueryRowContext(ctx, query, doc, item.CreatedAt).Scan(&item.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) List(ctx context.Context, pred filter.Predicate) ([]models.Item, error) {
	query := `SELECT id, doc, created_at, updated_at FROM inventory_items`

	where, args := pred.SQL(filter.Postgres, 1)
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
		item, err := scanPostgresItem(rows)
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

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	query :=
		`SELECT id, doc, created_at, updated_at FROM inventory_items
		 WHERE id = $1
		 `

	item, err := scanPostgresItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, patch models.Fields, updatedAt time.Time) error {
	if !validID(id) {
		return common.ErrorNotFound
	}

	doc, err := encodeDoc(patch)
	if err != nil {
		return err
	}

	query :=
		`UPDATE inventory_items SET doc = doc || $2::jsonb, updated_at = $3
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, doc, updatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return common.ErrorNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostgresItem(row rowScanner) (*models.Item, error) {
	var (
		item    models.Item
		doc     []byte
		updated sql.NullTime
	)
	if err := row.Scan(&item.ID, &doc, &item.CreatedAt, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	fields, err := decodeDoc(doc)
	if err != nil {
		return nil, err
	}
	item.Fields = fields

	if updated.Valid {
		t := updated.Time
		item.UpdatedAt = &t
	}
	return &item, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
