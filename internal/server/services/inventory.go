package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/invtrack/internal/common"
	"github.com/dmitrijs2005/invtrack/internal/server/filter"
	"github.com/dmitrijs2005/invtrack/internal/server/models"
	"github.com/dmitrijs2005/invtrack/internal/server/repositories/inventory"
	"github.com/google/uuid"
)

// reservedFields are managed by the server and dropped from client input.
var reservedFields = []string{models.FieldID, models.FieldCreatedAt, models.FieldUpdatedAt}

// InventoryService is the inventory store as seen by the HTTP layer.
type InventoryService struct {
	repo inventory.Repository
	now  func() time.Time
}

func NewInventoryService(repo inventory.Repository) *InventoryService {
	return &InventoryService{repo: repo, now: time.Now}
}

// ValidItemID reports whether id is a UUID in canonical form: lowercase
// hex, dashed, without braces or a urn:uuid: prefix.
func ValidItemID(id string) bool {
	u, err := uuid.Parse(id)
	return err == nil && u.String() == id
}

// Create stores fields as a new item stamped with created_at and returns
// its ID.
func (s *InventoryService) Create(ctx context.Context, fields models.Fields) (string, error) {
	item, err := s.repo.Create(ctx, &models.Item{
		Fields:    fields.Without(reservedFields...),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return "", internal("create item", err)
	}
	return item.ID, nil
}

// GetAll returns every item in creation order.
func (s *InventoryService) GetAll(ctx context.Context) ([]models.Item, error) {
	return s.GetFiltered(ctx, filter.Predicate{})
}

// GetFiltered returns the items matching pred in creation order.
func (s *InventoryService) GetFiltered(ctx context.Context, pred filter.Predicate) ([]models.Item, error) {
	items, err := s.repo.List(ctx, pred)
	if err != nil {
		return nil, internal("list items", err)
	}
	return items, nil
}

// GetByID returns one item. A malformed ID yields common.ErrInvalidID and a
// missing one common.ErrorNotFound.
func (s *InventoryService) GetByID(ctx context.Context, id string) (*models.Item, error) {
	if !ValidItemID(id) {
		return nil, common.ErrInvalidID
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, internal("get item", err)
	}
	return item, nil
}

// Update merges fields into the item and stamps updated_at. Only a missing
// (or malformed) ID is reported as common.ErrorNotFound; an update that
// changes nothing still succeeds.
func (s *InventoryService) Update(ctx context.Context, id string, fields models.Fields) error {
	err := s.repo.Update(ctx, id, fields.Without(reservedFields...), s.now().UTC())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return internal("update item", err)
	}
	return nil
}

// Delete removes the item. A malformed ID yields common.ErrInvalidID and a
// missing one common.ErrorNotFound.
func (s *InventoryService) Delete(ctx context.Context, id string) error {
	if !ValidItemID(id) {
		return common.ErrInvalidID
	}

	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return internal("delete item", err)
	}
	return nil
}

func internal(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrorInternal, op, err)
}
