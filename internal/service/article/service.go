// Package article parses single pages on request and serves stored ones.
package article

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/heartmarshall/dewiktionary/internal/domain"
	"github.com/heartmarshall/dewiktionary/internal/wiktionary"
)

type pageRepo interface {
	SavePages(ctx context.Context, pages []domain.Page) (int, error)
	GetByTitle(ctx context.Context, title string) (*domain.Page, error)
	ListTitles(ctx context.Context, filter domain.PageFilter) ([]string, error)
	WarningStats(ctx context.Context) ([]domain.WarningStat, error)
}

// Service implements page parsing, ingestion and lookup.
type Service struct {
	log   *slog.Logger
	pages pageRepo
	now   func() time.Time
}

// NewService creates a new article service.
func NewService(logger *slog.Logger, pages pageRepo) *Service {
	return &Service{
		log:   logger.With("service", "article"),
		pages: pages,
		now:   time.Now,
	}
}

// Parse parses one page without storing it.
func (s *Service) Parse(ctx context.Context, in ParseInput) (*wiktionary.Output, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := wiktionary.ParsePage(in.page())
	return &out, nil
}

// Ingest parses one page and stores the result, replacing an earlier version
// with the same normalized title. Each call gets its own run ID.
func (s *Service) Ingest(ctx context.Context, in ParseInput) (*domain.Page, error) {
	out, err := s.Parse(ctx, in)
	if err != nil {
		return nil, err
	}

	page := domain.NewPage(in.Title, ulid.Make().String(), *out, s.now().UTC())
	if _, err := s.pages.SavePages(ctx, []domain.Page{page}); err != nil {
		return nil, fmt.Errorf("save page: %w", err)
	}

	s.log.InfoContext(ctx, "page ingested",
		slog.String("title", page.TitleNormalized),
		slog.String("run_id", page.RunID),
		slog.Int("pos_count", page.PosCount),
		slog.Int("warning_count", page.WarningCount),
	)
	return &page, nil
}

// Get returns the stored page with the given title.
func (s *Service) Get(ctx context.Context, title string) (*domain.Page, error) {
	if domain.NormalizeTitle(title) == "" {
		return nil, domain.NewValidationError("title", "required")
	}
	return s.pages.GetByTitle(ctx, title)
}

// List returns stored titles matching filter. Limit defaults to 50 and is
// clamped to 500.
func (s *Service) List(ctx context.Context, filter domain.PageFilter) ([]string, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	return s.pages.ListTitles(ctx, filter.Normalize())
}

// Stats returns the stored warning counts, most frequent first.
func (s *Service) Stats(ctx context.Context) ([]domain.WarningStat, error) {
	stats, err := s.pages.WarningStats(ctx)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []domain.WarningStat{}
	}
	return stats, nil
}
