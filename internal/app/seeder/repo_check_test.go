package seeder_test

import (
	"github.com/heartmarshall/dewiktionary/internal/adapter/postgres/page"
	"github.com/heartmarshall/dewiktionary/internal/app/seeder"
)

// Compile-time check: *page.Repo must satisfy PageRepo.
var _ seeder.PageRepo = (*page.Repo)(nil)
