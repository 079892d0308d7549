package cli

import (
	"context"
	"fmt"
)

// getSimpleText, getOptionalText and getPassword are indirections used to
// facilitate testing.
var (
	getSimpleText   = GetSimpleText
	getOptionalText = GetOptionalText
	getPassword     = GetPassword
)

// promptEmail uses the first argument when given, otherwise asks for it.
func (a *App) promptEmail(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, "Enter email", a.out)
}

// Signup prompts for email, password and an optional full name and creates
// the account.
func (a *App) Signup(ctx context.Context, args []string) error {
	email, err := a.promptEmail(args)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	fullName, err := getOptionalText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}

	u, err := a.auth.Signup(ctx, email, string(password), fullName)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account created for %s (id %s)\n", u.Email, u.ID)
	return nil
}

// Login prompts for credentials and caches the issued token.
func (a *App) Login(ctx context.Context, args []string) error {
	email, err := a.promptEmail(args)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out successfully")
	return nil
}

func (a *App) Me(ctx context.Context) error {
	u, err := a.auth.Me(ctx)
	if err != nil {
		return err
	}
	printUser(a.out, u)
	return nil
}
