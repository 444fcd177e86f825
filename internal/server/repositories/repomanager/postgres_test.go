package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/todos"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db := newDB(t)
	defer db.Close()

	m := NewPostgresRepositoryManager()
	var _ RepositoryManager = m

	var _ users.Repository = m.Users(db)
	var _ todos.Repository = m.Todos(db)
}

func TestRunMigrations_UsesEmbeddedDir(t *testing.T) {
	db := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	m := NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
	if gotDir != "." {
		t.Fatalf("expected embedded root dir, got %q", gotDir)
	}
}

func TestRunMigrations_PropagatesError(t *testing.T) {
	db := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("migrate failed")
	}

	m := NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err == nil {
		t.Fatalf("expected error")
	}
}
