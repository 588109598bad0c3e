package project

import (
	"context"
	"errors"
	"os"
	"testing"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres_CreateListUpdateDelete(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool)
	created, err := repo.Create(ctx, domain.Project{
		Record:      domain.Record{OrderIndex: 0},
		Title:       "Portfolio",
		Description: "This site",
		Tags:        []string{"go", "postgres"},
		Links:       []domain.ProjectLink{{Name: "Code", URL: "https://github.com/example/portfolio", Icon: "github"}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.Version != 1 {
		t.Fatalf("unexpected project %+v", created)
	}
	if len(created.Links) != 1 || created.Links[0].Icon != "github" {
		t.Fatalf("links not round-tripped: %+v", created.Links)
	}

	if _, err := repo.Create(ctx, domain.Project{Record: domain.Record{OrderIndex: 1}, Title: "Second"}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Title != "Portfolio" || list[1].Title != "Second" {
		t.Fatalf("unexpected list %+v", list)
	}
	if list[1].Tags == nil || list[1].Links == nil {
		t.Fatalf("expected empty slices, got %+v", list[1])
	}

	updated, err := repo.Update(ctx, created.ID, domain.Project{Title: "Portfolio v2", Tags: []string{"go"}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Portfolio v2" || updated.OrderIndex != 0 || updated.Version != 2 {
		t.Fatalf("unexpected update result %+v", updated)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE projects RESTART IDENTITY CASCADE`); err != nil {
		pool.Close()
		t.Fatalf("truncate projects: %v", err)
	}
	return pool
}
