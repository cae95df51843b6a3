// Package inventory persists inventory items as schemaless JSON documents.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/invtrack/internal/server/filter"
	"github.com/dmitrijs2005/invtrack/internal/server/models"
	"github.com/google/uuid"
)

// Repository stores items. IDs are UUID strings assigned on Create; an ID
// that is not a valid UUID behaves like a missing item (common.ErrorNotFound).
// List returns items ordered by creation time.
type Repository interface {
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	List(ctx context.Context, pred filter.Predicate) ([]models.Item, error)
	GetByID(ctx context.Context, id string) (*models.Item, error)
	// Update merges patch into the stored document and sets updated_at. It
	// fails with common.ErrorNotFound only when no item has the ID.
	Update(ctx context.Context, id string, patch models.Fields, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// validID reports whether id can name a stored item. Only the canonical
// form produced on Create qualifies.
func validID(id string) bool {
	u, err := uuid.Parse(id)
	return err == nil && u.String() == id
}

func encodeDoc(f models.Fields) (string, error) {
	if f == nil {
		f = models.Fields{}
	}
	b, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(b), nil
}

func decodeDoc(raw []byte) (models.Fields, error) {
	f, err := models.DecodeFields(raw)
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return f, nil
}
