package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueTitle returns a page title that does not collide with other tests
// sharing the container.
func UniqueTitle(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedPage inserts a bare page row with one German noun entry and returns its
// ID.
func SeedPage(t *testing.T, pool *pgxpool.Pool, title string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	id := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO pages (id, title, title_normalized, output, language_count, pos_count, parsed_at)
		 VALUES ($1, $2, $2, '[]'::jsonb, 1, 1, $3)`,
		id, title, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("SeedPage: insert page: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO page_pos_entries (page_id, position, language, pos) VALUES ($1, 0, 'de', 'noun')`,
		id,
	)
	if err != nil {
		t.Fatalf("SeedPage: insert pos entry: %v", err)
	}
	return id
}
