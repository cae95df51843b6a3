package inventory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/invtrack/internal/common"
	"github.com/dmitrijs2005/invtrack/internal/server/filter"
	"github.com/dmitrijs2005/invtrack/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository is a process-local Repository. Data is lost on restart.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.Item
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]models.Item)}
}

func (r *MemoryRepository) Create(_ context.Context, item *models.Item) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = uuid.NewString()
	stored := *item
	stored.Fields = item.Fields.Clone()
	r.items[item.ID] = stored
	return item, nil
}

func (r *MemoryRepository) List(_ context.Context, pred filter.Predicate) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.Item, 0, len(r.items))
	for _, it := range r.items {
		if pred.Match(it.Fields) {
			items = append(items, copyItem(it))
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := copyItem(it)
	return &out, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, patch models.Fields, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return common.ErrorNotFound
	}
	it.Fields = it.Fields.Merge(patch)
	it.UpdatedAt = &updatedAt
	r.items[id] = it
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}

func copyItem(it models.Item) models.Item {
	out := it
	out.Fields = it.Fields.Clone()
	if it.UpdatedAt != nil {
		t := *it.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
