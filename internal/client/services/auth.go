// Package services contains the application services of the runaudit CLI.
// They combine the remote API client with the local session cache.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/runaudit/internal/client/client"
	"github.com/dmitrijs2005/runaudit/internal/client/models"
	"github.com/dmitrijs2005/runaudit/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/runaudit/internal/common"
	"github.com/dmitrijs2005/runaudit/internal/dbx"
)

// AuthService manages the account and the cached session of the CLI.
//
// Contract:
//   - Login stores the issued access token and email in the session cache.
//   - Logout always clears the cache; an unreachable server is not an error.
//   - Token returns client.ErrNotLoggedIn when nothing is cached.
//   - Me drops the cached session when the server rejects the token.
type AuthService interface {
	Signup(ctx context.Context, email, password string, fullName *string) (*models.User, error)
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
	Token(ctx context.Context) (string, error)
	Email(ctx context.Context) (string, error)
	Health(ctx context.Context) (*models.Health, error)
}

type authService struct {
	client client.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and
// session database.
func NewAuthService(c client.Client, db *sql.DB) AuthService {
	return &authService{client: c, db: db}
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

func (a *authService) Signup(ctx context.Context, email, password string, fullName *string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, common.WithDetail(common.ErrValidation, "email and password required")
	}
	return a.client.Signup(ctx, email, password, fullName)
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	tok, err := a.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if err := a.saveSession(ctx, email, tok.AccessToken); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

// saveSession replaces the cached session in a single transaction.
func (a *authService) saveSession(ctx context.Context, email, token string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		if err := repo.Set(ctx, metadata.KeyEmail, email); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyAccessToken, token)
	})
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.getMetadataRepo().Clear(ctx); err != nil {
		return err
	}
	if err := a.client.Logout(ctx); err != nil && !errors.Is(err, client.ErrUnavailable) {
		return err
	}
	return nil
}

func (a *authService) Token(ctx context.Context) (string, error) {
	tok, err := a.getMetadataRepo().Get(ctx, metadata.KeyAccessToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", client.ErrNotLoggedIn
		}
		return "", err
	}
	if tok == "" {
		return "", client.ErrNotLoggedIn
	}
	return tok, nil
}

// Email returns the cached login email, or "" when logged out.
func (a *authService) Email(ctx context.Context) (string, error) {
	email, err := a.getMetadataRepo().Get(ctx, metadata.KeyEmail)
	if errors.Is(err, common.ErrorNotFound) {
		return "", nil
	}
	return email, err
}

func (a *authService) Me(ctx context.Context) (*models.User, error) {
	var u *models.User
	err := withToken(ctx, a, func(token string) error {
		var err error
		u, err = a.client.Me(ctx, token)
		return err
	})
	return u, err
}

func (a *authService) Health(ctx context.Context) (*models.Health, error) {
	return a.client.Health(ctx)
}

// withToken runs fn with the cached token. A 401 answer clears the session
// and is reported as client.ErrNotLoggedIn.
func withToken(ctx context.Context, a *authService, fn func(token string) error) error {
	token, err := a.Token(ctx)
	if err != nil {
		return err
	}

	err = fn(token)
	if errors.Is(err, common.ErrorUnauthorized) {
		if cerr := a.getMetadataRepo().Clear(ctx); cerr != nil {
			return errors.Join(err, cerr)
		}
		return fmt.Errorf("%w: %v", client.ErrNotLoggedIn, err)
	}
	return err
}
