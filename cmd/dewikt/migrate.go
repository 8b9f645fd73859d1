package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/dewiktionary/internal/adapter/postgres"
)

func migrateCommand() *cli.Command {
	dsn := &cli.StringFlag{
		Name:     "dsn",
		Usage:    "PostgreSQL connection string",
		EnvVars:  []string{"DATABASE_DSN"},
		Required: true,
	}
	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations",
				Flags: []cli.Flag{dsn},
				Action: withMigrator(func(ctx context.Context, w io.Writer, p *goose.Provider) error {
					results, err := p.Up(ctx)
					if err != nil {
						return fmt.Errorf("migrate up: %w", err)
					}
					if len(results) == 0 {
						fmt.Fprintln(w, successLabel("schema is up to date"))
						return nil
					}
					for _, r := range results {
						printResult(w, r)
					}
					return nil
				}),
			},
			{
				Name:  "down",
				Usage: "Revert the last applied migration",
				Flags: []cli.Flag{dsn},
				Action: withMigrator(func(ctx context.Context, w io.Writer, p *goose.Provider) error {
					r, err := p.Down(ctx)
					if err != nil {
						return fmt.Errorf("migrate down: %w", err)
					}
					printResult(w, r)
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "Show applied and pending migrations",
				Flags: []cli.Flag{dsn},
				Action: withMigrator(func(ctx context.Context, w io.Writer, p *goose.Provider) error {
					statuses, err := p.Status(ctx)
					if err != nil {
						return fmt.Errorf("migrate status: %w", err)
					}
					printStatus(w, statuses)
					return nil
				}),
			},
		},
	}
}

// withMigrator opens a goose provider for the --dsn flag and closes the
// connection after fn returns.
func withMigrator(fn func(ctx context.Context, w io.Writer, p *goose.Provider) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		provider, db, err := postgres.OpenMigrator(c.Context, c.String("dsn"))
		if err != nil {
			return err
		}
		defer db.Close()
		return fn(c.Context, c.App.Writer, provider)
	}
}

func printResult(w io.Writer, r *goose.MigrationResult) {
	if r == nil || r.Source == nil {
		return
	}
	fmt.Fprintf(w, "%s %s %s (%s)\n",
		successLabel("OK"), r.Direction, keyLabel(r.Source.Path), r.Duration.Round(time.Millisecond))
}

func printStatus(w io.Writer, statuses []*goose.MigrationStatus) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Version", "Migration", "State", "Applied at"})
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		t.AppendRow(table.Row{s.Source.Version, s.Source.Path, string(s.State), applied})
	}
	t.Render()
}
