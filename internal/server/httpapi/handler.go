// Package httpapi is the public JSON API: auth routes under /api, inventory
// routes under /inventory, plus health and metrics endpoints.
package httpapi

import (
	"context"

	"github.com/dmitrijs2005/invtrack/internal/logging"
	"github.com/dmitrijs2005/invtrack/internal/server/filter"
	"github.com/dmitrijs2005/invtrack/internal/server/models"
	"github.com/go-playground/validator/v10"
)

// Authenticator is the auth gateway as used by the handlers.
type Authenticator interface {
	Signup(ctx context.Context, email, password, fullName string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(header string) (string, error)
}

// Inventory is the inventory store as used by the handlers.
type Inventory interface {
	Create(ctx context.Context, fields models.Fields) (string, error)
	GetAll(ctx context.Context) ([]models.Item, error)
	GetFiltered(ctx context.Context, pred filter.Predicate) ([]models.Item, error)
	GetByID(ctx context.Context, id string) (*models.Item, error)
	Update(ctx context.Context, id string, fields models.Fields) error
	Delete(ctx context.Context, id string) error
}

// Pinger reports store reachability for /readyz.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the dependencies shared by all routes.
type Handler struct {
	auth      Authenticator
	inventory Inventory
	store     Pinger
	logger    logging.Logger
	validate  *validator.Validate
}

func NewHandler(a Authenticator, inv Inventory, store Pinger, l logging.Logger) *Handler {
	return &Handler{
		auth:      a,
		inventory: inv,
		store:     store,
		logger:    l,
		validate:  newValidator(),
	}
}
