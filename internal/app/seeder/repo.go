// Package seeder streams a JSONL dump of wiki pages through the parser and
// stores the results in batches.
package seeder

import (
	"context"

	"github.com/heartmarshall/dewiktionary/internal/domain"
)

// PageRepo is the storage contract consumed by the pipeline.
// Implemented by page.Repo.
type PageRepo interface {
	// SavePages upserts pages by normalized title and returns how many rows
	// were written.
	SavePages(ctx context.Context, pages []domain.Page) (int, error)
}
