// Package page implements the page store using PostgreSQL. A page row owns its
// warnings and its part-of-speech index rows; both are replaced whenever the
// page is written again.
package page

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/dewiktionary/internal/adapter/postgres"
	"github.com/heartmarshall/dewiktionary/internal/domain"
)

// Repo provides page persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.DB
	txm *postgres.TxManager
	sb  squirrel.StatementBuilderType
}

// New creates a new page repository.
func New(db postgres.DB, txm *postgres.TxManager) *Repo {
	return &Repo{
		db:  db,
		txm: txm,
		sb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var pageColumns = []string{
	"id", "title", "title_normalized", "run_id", "output",
	"language_count", "pos_count", "warning_count", "parsed_at",
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const upsertPageSQL = `INSERT INTO pages (id, title, title_normalized, run_id, output, language_count, pos_count, warning_count, parsed_at)
	 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	 ON CONFLICT (title_normalized) DO UPDATE SET
	   title = EXCLUDED.title,
	   run_id = EXCLUDED.run_id,
	   output = EXCLUDED.output,
	   language_count = EXCLUDED.language_count,
	   pos_count = EXCLUDED.pos_count,
	   warning_count = EXCLUDED.warning_count,
	   parsed_at = EXCLUDED.parsed_at
	 RETURNING id`

// SavePages upserts pages by normalized title inside one transaction and
// replaces their warnings and part-of-speech rows. When the same title occurs
// more than once, the last occurrence wins. The stored IDs are written back
// into pages. Returns the number of pages written.
func (r *Repo) SavePages(ctx context.Context, pages []domain.Page) (int, error) {
	pages = lastPerTitle(pages)
	if len(pages) == 0 {
		return 0, nil
	}

	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		if err := r.upsertPages(ctx, pages); err != nil {
			return err
		}
		return r.replaceChildren(ctx, pages)
	})
	if err != nil {
		return 0, fmt.Errorf("save pages: %w", err)
	}
	return len(pages), nil
}

func (r *Repo) upsertPages(ctx context.Context, pages []domain.Page) error {
	batch := &pgx.Batch{}
	for i := range pages {
		p := &pages[i]
		output, err := json.Marshal(p.Entries)
		if err != nil {
			return fmt.Errorf("encode page %q: %w", p.Title, err)
		}
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		batch.Queue(upsertPageSQL,
			p.ID, p.Title, p.TitleNormalized, p.RunID, output,
			p.LanguageCount, p.PosCount, p.WarningCount, p.ParsedAt,
		)
	}

	results := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	for i := range pages {
		if err := results.QueryRow().Scan(&pages[i].ID); err != nil {
			return postgres.MapError(err, "page", pages[i].Title)
		}
	}
	return results.Close()
}

func (r *Repo) replaceChildren(ctx context.Context, pages []domain.Page) error {
	ids := make([]uuid.UUID, len(pages))
	for i, p := range pages {
		ids[i] = p.ID
	}

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM page_warnings WHERE page_id = ANY($1)`, ids)
	batch.Queue(`DELETE FROM page_pos_entries WHERE page_id = ANY($1)`, ids)
	for _, p := range pages {
		for _, w := range p.Warnings {
			batch.Queue(
				`INSERT INTO page_warnings (page_id, position, start_offset, end_offset, language, message)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				p.ID, w.Position, w.Start, w.End, w.Language, w.Message,
			)
		}
		for _, e := range p.PosEntries {
			batch.Queue(
				`INSERT INTO page_pos_entries (page_id, position, language, pos)
				 VALUES ($1, $2, $3, $4)`,
				p.ID, e.Position, e.Language, e.Pos,
			)
		}
	}

	_, err := r.sendBatchExec(ctx, batch)
	return err
}

// sendBatchExec sends a pgx.Batch and counts affected rows from Exec results.
func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	results := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	var affected int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return affected, fmt.Errorf("batch exec: %w", err)
		}
		affected += int(tag.RowsAffected())
	}

	return affected, results.Close()
}

func lastPerTitle(pages []domain.Page) []domain.Page {
	last := make(map[string]int, len(pages))
	for i, p := range pages {
		last[p.TitleNormalized] = i
	}
	if len(last) == len(pages) {
		return pages
	}
	out := make([]domain.Page, 0, len(last))
	for i, p := range pages {
		if last[p.TitleNormalized] == i {
			out = append(out, p)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByTitle returns the page stored under the normalized form of title,
// including its warnings and part-of-speech rows.
// Returns domain.ErrNotFound if not found.
func (r *Repo) GetByTitle(ctx context.Context, title string) (*domain.Page, error) {
	key := domain.NormalizeTitle(title)
	query, args, err := r.sb.Select(pageColumns...).
		From("pages").
		Where(squirrel.Eq{"title_normalized": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var (
		p      domain.Page
		output []byte
	)
	err = q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Title, &p.TitleNormalized, &p.RunID, &output,
		&p.LanguageCount, &p.PosCount, &p.WarningCount, &p.ParsedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "page", key)
	}
	if err := json.Unmarshal(output, &p.Entries); err != nil {
		return nil, fmt.Errorf("decode page %q: %w", key, err)
	}

	if p.Warnings, err = r.warnings(ctx, q, p.ID); err != nil {
		return nil, err
	}
	if p.PosEntries, err = r.posEntries(ctx, q, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) warnings(ctx context.Context, q postgres.Querier, pageID uuid.UUID) ([]domain.PageWarning, error) {
	query, args, err := r.sb.Select("position", "start_offset", "end_offset", "language", "message").
		From("page_warnings").
		Where(squirrel.Eq{"page_id": pageID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query page warnings: %w", err)
	}
	defer rows.Close()

	var out []domain.PageWarning
	for rows.Next() {
		var w domain.PageWarning
		if err := rows.Scan(&w.Position, &w.Start, &w.End, &w.Language, &w.Message); err != nil {
			return nil, fmt.Errorf("scan page warning: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *Repo) posEntries(ctx context.Context, q postgres.Querier, pageID uuid.UUID) ([]domain.PagePosEntry, error) {
	query, args, err := r.sb.Select("position", "language", "pos").
		From("page_pos_entries").
		Where(squirrel.Eq{"page_id": pageID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query page pos entries: %w", err)
	}
	defer rows.Close()

	var out []domain.PagePosEntry
	for rows.Next() {
		var e domain.PagePosEntry
		if err := rows.Scan(&e.Position, &e.Language, &e.Pos); err != nil {
			return nil, fmt.Errorf("scan page pos entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListTitles returns stored titles in alphabetical order. Language and Pos
// restrict the result to pages with a matching part-of-speech entry.
func (r *Repo) ListTitles(ctx context.Context, filter domain.PageFilter) ([]string, error) {
	filter = filter.Normalize()

	qb := r.sb.Select("p.title").
		From("pages p").
		OrderBy("p.title").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.Language != "" || filter.Pos != "" {
		sub := squirrel.Select("1").From("page_pos_entries e").Where("e.page_id = p.id")
		if filter.Language != "" {
			sub = sub.Where(squirrel.Eq{"e.language": filter.Language})
		}
		if filter.Pos != "" {
			sub = sub.Where(squirrel.Eq{"e.pos": filter.Pos})
		}
		subSQL, subArgs, err := sub.ToSql()
		if err != nil {
			return nil, fmt.Errorf("build subquery: %w", err)
		}
		qb = qb.Where(squirrel.Expr("EXISTS ("+subSQL+")", subArgs...))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}
	defer rows.Close()

	titles := []string{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scan title: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

// WarningStats counts stored warnings per message, most frequent first.
func (r *Repo) WarningStats(ctx context.Context) ([]domain.WarningStat, error) {
	query, args, err := r.sb.Select("message", "count(*)").
		From("page_warnings").
		GroupBy("message").
		OrderBy("count(*) DESC", "message").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("warning stats: %w", err)
	}
	defer rows.Close()

	stats := []domain.WarningStat{}
	for rows.Next() {
		var s domain.WarningStat
		if err := rows.Scan(&s.Message, &s.Count); err != nil {
			return nil, fmt.Errorf("scan warning stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
