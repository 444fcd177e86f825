package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TodoPatch carries the optional fields of an update. A nil field means
// "leave unchanged"; the mutation surface is closed by construction.
type TodoPatch struct {
	Title     *string
	Completed *bool
}

// TodoService provides ownership-scoped CRUD over todos. It never checks
// ownership itself: every repository query is predicated on (id, owner),
// so a foreign todo is reported as absent.
type TodoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTodoService constructs a TodoService using repositories.
func NewTodoService(db *sql.DB, m repomanager.RepositoryManager) *TodoService {
	return &TodoService{db: db, repomanager: m}
}

// List returns the user's todos, newest first. A brand-new user gets an
// empty list, not an error.
func (s *TodoService) List(ctx context.Context, userID string) ([]*models.Todo, error) {
	repo := s.repomanager.Todos(s.db)
	items, err := repo.SelectByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}
	return items, nil
}

// Create stores a new todo owned by userID. A whitespace-only title yields
// common.ErrorValidation.
func (s *TodoService) Create(ctx context.Context, userID, title string) (*models.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.ErrorValidation
	}

	todo := &models.Todo{ID: uuid.NewString(), OwnerID: userID, Title: title}
	repo := s.repomanager.Todos(s.db)
	created, err := repo.Create(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("error creating todo: %w", err)
	}
	return created, nil
}

// Update applies the provided fields of patch to the todo identified by
// (todoID, userID). Omitted fields keep their value; an explicitly empty
// title is rejected, matching the create rule. A todo that is absent or
// owned by someone else yields common.ErrorNotFound.
func (s *TodoService) Update(ctx context.Context, userID, todoID string, patch TodoPatch) (*models.Todo, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Todos(s.db)
	updated, err := repo.Update(ctx, userID, todoID, patch.Title, patch.Completed)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating todo: %w", err)
	}
	return updated, nil
}

// Delete removes the todo identified by (todoID, userID). Deleting the same
// id twice yields common.ErrorNotFound on the second call.
func (s *TodoService) Delete(ctx context.Context, userID, todoID string) error {
	repo := s.repomanager.Todos(s.db)
	if err := repo.Delete(ctx, userID, todoID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting todo: %w", err)
	}
	return nil
}
