// Package todos provides persistence for tasks. Every mutating or reading
// query is predicated on (id, user_id), so a todo owned by someone else is
// indistinguishable from an absent one.
package todos

import (
	"context"

	"github.com/dmitrijs2005/taskhub/internal/server/models"
)

type Repository interface {
	// Create persists a new todo and returns it with the store-assigned
	// creation timestamp.
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)

	// SelectByOwner returns all todos owned by ownerID, newest first.
	// An empty result is not an error.
	SelectByOwner(ctx context.Context, ownerID string) ([]*models.Todo, error)

	// Update applies the non-nil fields to the todo identified by
	// (id, ownerID) in a single statement and returns the resulting row,
	// or common.ErrorNotFound when no such row exists.
	Update(ctx context.Context, ownerID, id string, title *string, completed *bool) (*models.Todo, error)

	// Delete removes the todo identified by (id, ownerID), or returns
	// common.ErrorNotFound. A repeated delete of the same id is NotFound.
	Delete(ctx context.Context, ownerID, id string) error
}
