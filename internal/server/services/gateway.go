package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/invtrack/internal/common"
	"github.com/dmitrijs2005/invtrack/internal/server/auth"
)

// AuthGateway implements signup, login and bearer-token authentication.
type AuthGateway struct {
	creds  *CredentialStore
	tokens *auth.TokenService
}

func NewAuthGateway(creds *CredentialStore, tokens *auth.TokenService) *AuthGateway {
	return &AuthGateway{creds: creds, tokens: tokens}
}

// Signup registers a user and returns a session token for it.
func (g *AuthGateway) Signup(ctx context.Context, email, password, fullName string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	id, err := g.creds.Create(ctx, email, password, fullName)
	if err != nil {
		return "", err
	}
	return g.issue(id)
}

// Login returns a session token for valid credentials. An unknown email and a
// wrong password both yield common.ErrInvalidCredentials.
func (g *AuthGateway) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	u, err := g.creds.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			g.creds.burnPasswordCheck(password)
			return "", common.ErrInvalidCredentials
		}
		return "", err
	}

	if !g.creds.VerifyPassword(password, u.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}
	return g.issue(u.ID)
}

// Authenticate extracts the token from an Authorization header value and
// returns the user it was issued to. The header is split on whitespace and
// the second word is the token; the scheme word itself is not checked.
func (g *AuthGateway) Authenticate(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return "", common.ErrTokenMissing
	}

	userID, err := g.tokens.Verify(parts[1])
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (g *AuthGateway) issue(userID string) (string, error) {
	tok, err := g.tokens.Issue(userID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return tok, nil
}
