package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	title := UniqueTitle("Smoke")
	id := SeedPage(t, pool, title)

	var got string
	err := pool.QueryRow(context.Background(), `SELECT title FROM pages WHERE id = $1`, id).Scan(&got)
	if err != nil {
		t.Fatalf("expected page in DB, got error: %v", err)
	}
	if got != title {
		t.Fatalf("expected title %q, got %q", title, got)
	}

	var pos int
	err = pool.QueryRow(context.Background(), `SELECT count(*) FROM page_pos_entries WHERE page_id = $1`, id).Scan(&pos)
	if err != nil {
		t.Fatalf("count pos entries: %v", err)
	}
	if pos != 1 {
		t.Fatalf("expected 1 pos entry, got %d", pos)
	}
}
