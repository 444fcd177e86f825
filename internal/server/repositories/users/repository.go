// Package users provides persistence for registered identities.
package users

import (
	"context"

	"github.com/dmitrijs2005/taskhub/internal/server/models"
)

type Repository interface {
	// Create persists a new user and returns it with the generated id.
	// A duplicate email yields common.ErrorConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user registered under email (compared
	// lowercased), or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
