// Package services contains server-side business logic. This file implements
// UserService, which handles signup, login and resolving the caller of an
// access token.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/dmitrijs2005/runaudit/internal/common"
	"github.com/dmitrijs2005/runaudit/internal/server/auth"
	"github.com/dmitrijs2005/runaudit/internal/server/config"
	"github.com/dmitrijs2005/runaudit/internal/server/models"
	"github.com/dmitrijs2005/runaudit/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// Caller-facing messages for authentication failures.
const (
	DetailDuplicateEmail     = "Email already registered"
	DetailInvalidCredentials = "Could not validate credentials"
	DetailIncorrectLogin     = "Incorrect email or password"
	DetailInvalidEmail       = "Invalid email format"
)

// UserService provides authentication-related operations:
// - Signup: create users with a hashed password
// - Login: verify credentials and mint an access token
// - Authenticate: resolve the user behind an access token
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Signup registers a new user. A malformed email yields ErrValidation; a
// taken email yields ErrDuplicateEmail. Neither touches the store.
func (s *UserService) Signup(ctx context.Context, email, password string, fullName *string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, common.WithDetail(common.ErrValidation, "email and password required")
	}
	if !govalidator.IsEmail(email) {
		return nil, common.WithDetail(common.ErrValidation, DetailInvalidEmail)
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.WithDetail(common.ErrDuplicateEmail, DetailDuplicateEmail)
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, common.WithDetail(common.ErrValidation, "password is too long")
		}
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := repo.Create(ctx, &models.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
	})
	if err != nil {
		// lost a race with a concurrent signup
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.WithDetail(common.ErrDuplicateEmail, DetailDuplicateEmail)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns a signed access token whose
// subject is the user's email. Unknown emails and wrong passwords are not
// distinguished.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.WithDetail(common.ErrorUnauthorized, DetailIncorrectLogin)
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", common.WithDetail(common.ErrorUnauthorized, DetailIncorrectLogin)
	}

	token, err := auth.GenerateToken(user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}

// Authenticate returns the user the token was issued to. Bad, expired and
// orphaned tokens all fail with ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	email, err := auth.GetSubjectFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.WithDetail(common.ErrorUnauthorized, DetailInvalidCredentials)
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.WithDetail(common.ErrorUnauthorized, DetailInvalidCredentials)
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return user, nil
}
