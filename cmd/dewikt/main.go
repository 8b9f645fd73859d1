// Command dewikt is the operator CLI: it parses single pages, manages the
// database schema and mints API tokens.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/dewiktionary/internal/app"
	"github.com/heartmarshall/dewiktionary/internal/config"
)

func main() {
	// .env must be loaded before flag parsing so EnvVars see it.
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errorLabel("error:"), err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	build := app.Build()
	return &cli.App{
		Name:    "dewikt",
		Usage:   "German Wiktionary page parser",
		Version: build.String(),
		Compiled: func() time.Time {
			t, err := time.Parse(time.RFC3339, build.BuildTime)
			if err != nil {
				return time.Now()
			}
			return t
		}(),
		Commands: []*cli.Command{
			parseCommand(),
			migrateCommand(),
			tokenCommand(),
		},
	}
}
