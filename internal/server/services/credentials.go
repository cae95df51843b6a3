// Package services contains the server-side business logic sitting between
// the HTTP handlers and the repositories.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/invtrack/internal/common"
	"github.com/dmitrijs2005/invtrack/internal/server/auth"
	"github.com/dmitrijs2005/invtrack/internal/server/models"
	"github.com/dmitrijs2005/invtrack/internal/server/repositories/users"
)

// CredentialStore owns user accounts and their password hashes.
type CredentialStore struct {
	users users.Repository
	now   func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewCredentialStore(repo users.Repository) *CredentialStore {
	return &CredentialStore{users: repo, now: time.Now}
}

// Create hashes rawPassword and stores a new user, returning its ID.
// A taken email yields common.ErrDuplicateEmail; the unique constraint of
// the store decides, so concurrent signups cannot both win.
func (s *CredentialStore) Create(ctx context.Context, email, rawPassword, fullName string) (string, error) {
	hash, err := auth.HashPassword(rawPassword)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	u, err := s.users.Create(ctx, &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return "", common.ErrDuplicateEmail
		}
		return "", fmt.Errorf("%w: create user: %w", common.ErrorInternal, err)
	}
	return u.ID, nil
}

// FindByEmail returns the user or common.ErrorNotFound.
func (s *CredentialStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: find user: %w", common.ErrorInternal, err)
	}
	return u, nil
}

// VerifyPassword checks raw against a stored bcrypt hash.
func (s *CredentialStore) VerifyPassword(raw, storedHash string) bool {
	return auth.VerifyPassword(raw, storedHash)
}

// burnPasswordCheck spends the same bcrypt work as a real check, so a login
// for an unknown email takes as long as one with a wrong password.
func (s *CredentialStore) burnPasswordCheck(raw string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = auth.HashPassword("invtrack-placeholder")
	})
	_ = auth.VerifyPassword(raw, s.dummyHash)
}
