package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/invtrack/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for email, full name and password, creates the account and
// prints the session token.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.prompt)
	if err != nil {
		return err
	}

	fullName, err := getSimpleText(a.reader, "Enter full name", a.prompt)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.prompt)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	token, err := a.api.Signup(ctx, email, string(password), fullName)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, token)
	return nil
}

// Login prompts for credentials and prints the session token.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.prompt)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.prompt)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	token, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, token)
	return nil
}
