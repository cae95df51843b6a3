// Package users persists user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/invtrack/internal/server/models"
)

// Repository stores users. Create assigns the ID and fails with
// common.ErrDuplicateEmail when the email is taken; GetByEmail fails with
// common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
