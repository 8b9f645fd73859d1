// Command seeder parses a JSON Lines dump of Wiktionary pages and stores the
// results. Each line is one page: {"title": ..., "wiki_text": ..., "nodes": ...}.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--dump           path to the dump file (overrides SEEDER_DUMP_PATH)
//	--workers        number of parser goroutines (overrides config)
//	--dry-run        parse the dump without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/heartmarshall/dewiktionary/internal/adapter/postgres"
	"github.com/heartmarshall/dewiktionary/internal/adapter/postgres/page"
	"github.com/heartmarshall/dewiktionary/internal/app"
	"github.com/heartmarshall/dewiktionary/internal/app/seeder"
	"github.com/heartmarshall/dewiktionary/internal/config"
	"github.com/heartmarshall/dewiktionary/internal/wiktionary"
)

func main() {
	dumpFlag := flag.String("dump", "", "path to the JSON Lines page dump")
	workersFlag := flag.Int("workers", 0, "number of parser goroutines")
	dryRunFlag := flag.Bool("dry-run", false, "parse the dump without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	// App config is needed for the DB connection and logging.
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}
	logger := app.NewLogger(appCfg.Log)
	appCfg.Database.AppName += "-seeder"

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dumpFlag != "" {
		seederCfg.DumpPath = *dumpFlag
	}
	if *workersFlag > 0 {
		seederCfg.Workers = *workersFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := page.New(pool, postgres.NewTxManager(pool))
	pipeline := seeder.NewPipeline(logger, repo, *seederCfg)

	stats, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("pipeline failed",
			slog.String("run_id", pipeline.RunID()),
			slog.Int("pages_saved", stats.PagesSaved),
			slog.String("error", err.Error()),
		)
		pool.Close()
		os.Exit(1)
	}

	logWarnings(logger, stats.Warnings)
	if stats.MalformedLines > 0 {
		logger.Warn("dump contained malformed lines", slog.Int("count", stats.MalformedLines))
	}
	if stats.PagesFailed > 0 {
		logger.Error("pages failed to parse", slog.Int("count", stats.PagesFailed))
	}
}

// logWarnings reports parser warning totals, most frequent first.
func logWarnings(logger *slog.Logger, warnings map[wiktionary.WarningMessage]int) {
	msgs := make([]wiktionary.WarningMessage, 0, len(warnings))
	for msg := range warnings {
		msgs = append(msgs, msg)
	}
	sort.Slice(msgs, func(i, j int) bool {
		if warnings[msgs[i]] != warnings[msgs[j]] {
			return warnings[msgs[i]] > warnings[msgs[j]]
		}
		return msgs[i] < msgs[j]
	})
	for _, msg := range msgs {
		logger.Info("parser warnings",
			slog.String("message", string(msg)),
			slog.Int("count", warnings[msg]),
		)
	}
}
