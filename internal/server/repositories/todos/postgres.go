package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/dbx"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
)

// PostgresRepository implements todo storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query :=
		`INSERT INTO todos (id, user_id, title, completed)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		todo.ID, todo.OwnerID, todo.Title, todo.Completed).Scan(&todo.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return todo, nil
}

func (r *PostgresRepository) SelectByOwner(ctx context.Context, ownerID string) ([]*models.Todo, error) {
	query :=
		`SELECT id, user_id, title, completed, created_at FROM todos
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Todo{}
	for rows.Next() {
		var item models.Todo
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.Title, &item.Completed, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update mutates title/completed in one statement. Nil fields fall through
// to the current column value via COALESCE, so the read-modify-write is
// atomic per row and cannot race a concurrent delete.
func (r *PostgresRepository) Update(ctx context.Context, ownerID, id string, title *string, completed *bool) (*models.Todo, error) {
	query :=
		`UPDATE todos
		 SET title = COALESCE($3, title), completed = COALESCE($4, completed)
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, completed, created_at
		 `

	todo := &models.Todo{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID, title, completed).
		Scan(&todo.ID, &todo.OwnerID, &todo.Title, &todo.Completed, &todo.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return todo, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	query :=
		`DELETE FROM todos
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
