package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/invtrack/internal/server/auth"
	"github.com/dmitrijs2005/invtrack/internal/server/filter"
	"github.com/dmitrijs2005/invtrack/internal/server/models"
	"github.com/dmitrijs2005/invtrack/internal/server/repositories/inventory"
	"github.com/dmitrijs2005/invtrack/internal/server/repositories/users"
)

var errDB = errors.New("db down")

// --- fakes ---

type failingUsersRepo struct{ err error }

func (f *failingUsersRepo) Create(context.Context, *models.User) (*models.User, error) {
	return nil, f.err
}

func (f *failingUsersRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, f.err
}

type failingInventoryRepo struct{ err error }

func (f *failingInventoryRepo) Create(context.Context, *models.Item) (*models.Item, error) {
	return nil, f.err
}

func (f *failingInventoryRepo) List(context.Context, filter.Predicate) ([]models.Item, error) {
	return nil, f.err
}

func (f *failingInventoryRepo) GetByID(context.Context, string) (*models.Item, error) {
	return nil, f.err
}

func (f *failingInventoryRepo) Update(context.Context, string, models.Fields, time.Time) error {
	return f.err
}

func (f *failingInventoryRepo) Delete(context.Context, string) error {
	return f.err
}

var (
	_ users.Repository     = (*failingUsersRepo)(nil)
	_ inventory.Repository = (*failingInventoryRepo)(nil)
)

// --- helpers ---

func newGateway(repo users.Repository) *AuthGateway {
	return NewAuthGateway(NewCredentialStore(repo), auth.NewTokenService([]byte("test-secret"), time.Hour))
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
