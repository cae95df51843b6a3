package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/invtrack/internal/common"
	"github.com/dmitrijs2005/invtrack/internal/server/filter"
	"github.com/dmitrijs2005/invtrack/internal/server/models"
	"github.com/dmitrijs2005/invtrack/internal/server/repositories/inventory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventory(now time.Time) *InventoryService {
	s := NewInventoryService(inventory.NewMemoryRepository())
	s.now = fixedNow(now)
	return s
}

func TestInventory_CreateGetRoundTrip(t *testing.T) {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s := newInventory(created)
	ctx := context.Background()

	id, err := s.Create(ctx, models.Fields{
		"applicationName": models.String("X"),
		"_id":             models.String("client-chosen"),
		"created_at":      models.String("1999"),
	})
	require.NoError(t, err)
	assert.True(t, ValidItemID(id))

	got, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.True(t, got.Fields.Equal(models.Fields{"applicationName": models.String("X")}))
	assert.True(t, created.Equal(got.CreatedAt))
	assert.Nil(t, got.UpdatedAt)
}

func TestInventory_GetFilteredEmptyEqualsGetAll(t *testing.T) {
	s := newInventory(time.Now())
	ctx := context.Background()
	for _, sev := range []string{"high", "low", "high"} {
		_, err := s.Create(ctx, models.Fields{"severity": models.String(sev)})
		require.NoError(t, err)
	}

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	filtered, err := s.GetFiltered(ctx, filter.Build(filter.Params{}))
	require.NoError(t, err)
	assert.Equal(t, all, filtered)

	high, err := s.GetFiltered(ctx, filter.Build(filter.Params{Severity: "high"}))
	require.NoError(t, err)
	assert.Len(t, high, 2)
	for _, it := range high {
		assert.True(t, it.Fields["severity"].Equal(models.String("high")))
	}
}

func TestInventory_UpdateMergesAndStamps(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newInventory(created)
	ctx := context.Background()

	id, err := s.Create(ctx, models.Fields{"severity": models.String("low"), "stage": models.String("dev")})
	require.NoError(t, err)

	updated := created.Add(time.Hour)
	s.now = fixedNow(updated)
	err = s.Update(ctx, id, models.Fields{"stage": models.String("prod"), "_id": models.String("other")})
	require.NoError(t, err)

	got, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.True(t, got.Fields.Equal(models.Fields{"severity": models.String("low"), "stage": models.String("prod")}))
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, updated.Equal(*got.UpdatedAt))
}

func TestInventory_UpdateNoOpSucceeds(t *testing.T) {
	s := newInventory(time.Now())
	id, err := s.Create(context.Background(), models.Fields{"stage": models.String("dev")})
	require.NoError(t, err)

	assert.NoError(t, s.Update(context.Background(), id, models.Fields{"stage": models.String("dev")}))
}

func TestInventory_NotFoundAndInvalidID(t *testing.T) {
	s := newInventory(time.Now())
	ctx := context.Background()
	missing := uuid.NewString()

	_, err := s.GetByID(ctx, missing)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = s.GetByID(ctx, "xyz")
	assert.ErrorIs(t, err, common.ErrInvalidID)
	assert.ErrorIs(t, err, common.ErrorValidation)

	assert.ErrorIs(t, s.Update(ctx, missing, models.Fields{}), common.ErrorNotFound)
	assert.ErrorIs(t, s.Update(ctx, "xyz", models.Fields{}), common.ErrorNotFound)

	assert.ErrorIs(t, s.Delete(ctx, missing), common.ErrorNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "xyz"), common.ErrInvalidID)
}

func TestInventory_DeleteTwice(t *testing.T) {
	s := newInventory(time.Now())
	ctx := context.Background()
	id, err := s.Create(ctx, models.Fields{})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, id))
	assert.ErrorIs(t, s.Delete(ctx, id), common.ErrorNotFound)
}

func TestInventory_StoreFailuresAreInternal(t *testing.T) {
	s := NewInventoryService(&failingInventoryRepo{err: errDB})
	ctx := context.Background()
	id := uuid.NewString()

	_, err := s.Create(ctx, models.Fields{})
	assert.ErrorIs(t, err, common.ErrorInternal)
	_, err = s.GetAll(ctx)
	assert.ErrorIs(t, err, common.ErrorInternal)
	_, err = s.GetByID(ctx, id)
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.ErrorIs(t, s.Update(ctx, id, models.Fields{}), common.ErrorInternal)
	assert.ErrorIs(t, s.Delete(ctx, id), common.ErrorInternal)
}

func TestInventory_NonCanonicalIDsRejected(t *testing.T) {
	s := newInventory(time.Now())
	ctx := context.Background()

	id, err := s.Create(ctx, models.Fields{"applicationName": models.String("Ledger")})
	require.NoError(t, err)

	for _, alt := range []string{
		"{" + id + "}",
		strings.ReplaceAll(id, "-", ""),
		"urn:uuid:" + id,
		strings.ToUpper(id),
	} {
		assert.False(t, ValidItemID(alt), alt)

		_, err := s.GetByID(ctx, alt)
		assert.ErrorIs(t, err, common.ErrInvalidID, alt)
		assert.ErrorIs(t, s.Delete(ctx, alt), common.ErrInvalidID, alt)
		assert.ErrorIs(t, s.Update(ctx, alt, models.Fields{"a": models.Bool(true)}), common.ErrorNotFound, alt)
	}

	got, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.UpdatedAt)
}
