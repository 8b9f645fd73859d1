package seeder

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dewiktionary/internal/domain"
	"github.com/heartmarshall/dewiktionary/internal/wikitext"
	"github.com/heartmarshall/dewiktionary/internal/wiktionary"
)

// Stats summarizes one pipeline run.
type Stats struct {
	TotalLines       int
	MalformedLines   int
	PagesParsed      int
	PagesWithEntries int
	PagesSaved       int
	PagesFailed      int
	Warnings         map[wiktionary.WarningMessage]int
	Duration         time.Duration
}

// Pipeline parses a page dump and persists the results.
type Pipeline struct {
	log   *slog.Logger
	repo  PageRepo
	cfg   Config
	runID string
	now   func() time.Time
	parse func(wikitext.Page) wiktionary.Output
}

// NewPipeline creates a new Pipeline with a fresh run ID.
func NewPipeline(log *slog.Logger, repo PageRepo, cfg Config) *Pipeline {
	runID := ulid.Make().String()
	return &Pipeline{
		log:   log.With(slog.String("run_id", runID)),
		repo:  repo,
		cfg:   cfg,
		runID: runID,
		now:   time.Now,
		parse: wiktionary.ParsePage,
	}
}

// RunID returns the identifier stored with every page of this run.
func (p *Pipeline) RunID() string { return p.runID }

// Run processes the dump at the configured path.
func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	if p.cfg.DumpPath == "" {
		return Stats{}, fmt.Errorf("dump path not configured")
	}
	f, err := os.Open(p.cfg.DumpPath)
	if err != nil {
		return Stats{}, fmt.Errorf("open dump: %w", err)
	}
	defer f.Close()

	return p.Process(ctx, f)
}

type line struct {
	number int
	data   []byte
}

type parsed struct {
	page       domain.Page
	warnings   map[wiktionary.WarningMessage]int
	hasEntries bool
	malformed  bool
	failed     bool
}

// Process reads one page per line from r. Blank lines are skipped, lines that
// do not decode are counted as malformed. Parsing runs on cfg.Workers
// goroutines; pages are saved in batches of cfg.BatchSize unless DryRun is set.
func (p *Pipeline) Process(ctx context.Context, r io.Reader) (Stats, error) {
	start := p.now()
	stats := Stats{Warnings: make(map[wiktionary.WarningMessage]int)}

	workers := max(p.cfg.Workers, 1)
	lines := make(chan line, workers*2)
	results := make(chan parsed, workers*2)

	g, gctx := errgroup.WithContext(ctx)

	var total int
	g.Go(func() error {
		defer close(lines)
		n, err := p.read(gctx, r, lines)
		total = n
		return err
	})

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return p.work(gctx, lines, results)
		})
	}
	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	g.Go(func() error {
		return p.collect(gctx, results, &stats)
	})

	err := g.Wait()
	stats.TotalLines = total
	stats.Duration = p.now().Sub(start)
	if err != nil {
		return stats, err
	}

	p.log.Info("pipeline completed",
		slog.Int("total_lines", stats.TotalLines),
		slog.Int("malformed_lines", stats.MalformedLines),
		slog.Int("pages_parsed", stats.PagesParsed),
		slog.Int("pages_with_entries", stats.PagesWithEntries),
		slog.Int("pages_saved", stats.PagesSaved),
		slog.Int("pages_failed", stats.PagesFailed),
		slog.Duration("duration", stats.Duration),
	)
	return stats, nil
}

// read splits r into lines and returns how many non-blank lines it sent.
func (p *Pipeline) read(ctx context.Context, r io.Reader, out chan<- line) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), max(p.cfg.MaxLineBytes, bufio.MaxScanTokenSize))

	sent, number := 0, 0
	for sc.Scan() {
		number++
		data := bytes.TrimSpace(sc.Bytes())
		if len(data) == 0 {
			continue
		}
		l := line{number: number, data: bytes.Clone(data)}
		select {
		case out <- l:
			sent++
		case <-ctx.Done():
			return sent, ctx.Err()
		}
	}
	if err := sc.Err(); err != nil {
		return sent, fmt.Errorf("read dump line %d: %w", number+1, err)
	}
	return sent, nil
}

func (p *Pipeline) work(ctx context.Context, in <-chan line, out chan<- parsed) error {
	for l := range in {
		res := p.parseLine(l)
		select {
		case out <- res:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// parseLine decodes and parses one dump line. A panic while parsing fails
// only that page.
func (p *Pipeline) parseLine(l line) (res parsed) {
	pg, err := wikitext.UnmarshalPage(l.data)
	if err != nil {
		p.log.Warn("malformed line",
			slog.Int("line", l.number),
			slog.String("error", err.Error()),
		)
		return parsed{malformed: true}
	}

	defer func() {
		if r := recover(); r != nil {
			p.log.Error("parse page failed",
				slog.Int("line", l.number),
				slog.String("title", pg.Title),
				slog.Any("panic", r),
			)
			res = parsed{failed: true}
		}
	}()

	out := p.parse(pg)
	return parsed{
		page:       domain.NewPage(pg.Title, p.runID, out, p.now().UTC()),
		warnings:   out.Stats(),
		hasEntries: out.HasEntries(),
	}
}

// collect folds results into stats and flushes full batches.
func (p *Pipeline) collect(ctx context.Context, in <-chan parsed, stats *Stats) error {
	batch := make([]domain.Page, 0, p.cfg.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := p.save(ctx, batch)
		if err != nil {
			return err
		}
		stats.PagesSaved += n
		batch = batch[:0]
		return nil
	}

	for res := range in {
		if res.malformed {
			stats.MalformedLines++
			continue
		}
		if res.failed {
			stats.PagesFailed++
			continue
		}
		stats.PagesParsed++
		if res.hasEntries {
			stats.PagesWithEntries++
		}
		for msg, n := range res.warnings {
			stats.Warnings[msg] += n
		}
		if p.cfg.DryRun {
			continue
		}
		batch = append(batch, res.page)
		if len(batch) >= max(p.cfg.BatchSize, 1) {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return flush()
}

// save writes one batch, retrying transient failures with exponential backoff.
// Context and validation errors are not retried.
func (p *Pipeline) save(ctx context.Context, batch []domain.Page) (int, error) {
	bo := backoff.NewExponentialBackOff()
	if p.cfg.RetryInterval > 0 {
		bo.InitialInterval = p.cfg.RetryInterval
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(max(p.cfg.RetryAttempts, 0))), ctx)

	var saved int
	attempt := 0
	operation := func() error {
		attempt++
		n, err := p.repo.SavePages(ctx, batch)
		if err == nil {
			saved = n
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, domain.ErrValidation) {
			return backoff.Permanent(err)
		}
		p.log.Warn("save batch failed",
			slog.Int("attempt", attempt),
			slog.Int("pages", len(batch)),
			slog.String("error", err.Error()),
		)
		return err
	}

	if err := backoff.Retry(operation, policy); err != nil {
		return 0, fmt.Errorf("save batch of %d pages: %w", len(batch), err)
	}
	return saved, nil
}
