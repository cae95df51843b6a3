package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/invtrack/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor applied to every new hash.
const PasswordCost = bcrypt.DefaultCost

// HashPassword returns a salted bcrypt hash of raw. Passwords longer than
// 72 bytes fail with common.ErrPasswordTooLong.
func HashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), PasswordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", common.ErrPasswordTooLong
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether raw matches hash. A malformed hash never
// matches.
func VerifyPassword(raw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
