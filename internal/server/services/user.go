// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/server/auth"
	"github.com/dmitrijs2005/taskhub/internal/server/config"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/repomanager"
)

// dummyDigest is compared against when the email is unknown, so a login
// attempt costs the same whether or not the account exists.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService provides authentication-related operations:
// - Register: create identities and mint their first token
// - Login: verify credentials and mint tokens
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates a new identity and returns it together with a signed
// token. A duplicate email (any case) yields common.ErrorConflict; empty
// fields yield common.ErrorValidation.
func (s *UserService) Register(ctx context.Context, displayName, email, password string) (*models.User, string, error) {
	if strings.TrimSpace(displayName) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, "", common.ErrorValidation
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	user := &models.User{DisplayName: displayName, Email: strings.ToLower(email), PasswordHash: digest}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, "", common.ErrorConflict
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.generateToken(u)
	if err != nil {
		return nil, "", common.ErrorInternal
	}
	return u, token, nil
}

// Login verifies the credentials and returns the identity with a fresh token.
// An unknown email and a wrong password are indistinguishable: both yield
// common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(dummyDigest, password)
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", common.ErrorInternal
	}
	return user, token, nil
}

func (s *UserService) generateToken(u *models.User) (string, error) {
	return auth.GenerateToken(u.ID, u.Email, s.jwtSecret, s.tokenValidity)
}
