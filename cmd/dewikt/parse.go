package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/dewiktionary/internal/wikitext"
	"github.com/heartmarshall/dewiktionary/internal/wiktionary"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse one page and print the result",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "title",
				Aliases: []string{"t"},
				Usage:   "page title (required for raw wiki text)",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "input file, - for stdin",
				Value:   "-",
			},
			&cli.BoolFlag{
				Name:  "tokenized",
				Usage: "input is a JSON page with title, wiki_text and optional nodes",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: json, yaml or text",
				Value:   formatJSON,
			},
			&cli.BoolFlag{
				Name:    "warnings",
				Aliases: []string{"w"},
				Usage:   "print a table of warnings instead of the parse result",
			},
		},
		Action: runParse,
	}
}

func runParse(c *cli.Context) error {
	format := c.String("format")
	switch format {
	case formatJSON, formatYAML, formatText:
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or text)", format)
	}

	in, closeIn, err := openInput(c.App.Reader, c.String("input"))
	if err != nil {
		return err
	}
	defer closeIn()

	page, err := readPage(in, c.String("title"), c.Bool("tokenized"))
	if err != nil {
		return err
	}

	out := wiktionary.ParsePage(page)
	if c.Bool("warnings") {
		printWarnings(c.App.Writer, page.WikiText, out.Warnings)
		return nil
	}
	return writeOutput(c.App.Writer, page.Title, &out, format)
}

func openInput(stdin io.Reader, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// readPage reads raw wiki text, or a JSON page when tokenized is set. A
// non-empty title overrides the one in a JSON page.
func readPage(r io.Reader, title string, tokenized bool) (wikitext.Page, error) {
	if tokenized {
		page, err := wikitext.DecodePage(r)
		if err != nil {
			return wikitext.Page{}, err
		}
		if title != "" {
			page.Title = title
		}
		return page, nil
	}

	if title == "" {
		return wikitext.Page{}, errors.New("--title is required unless --tokenized is set")
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return wikitext.Page{}, fmt.Errorf("read input: %w", err)
	}
	return wikitext.ParsePage(title, string(src)), nil
}

func writeOutput(w io.Writer, title string, out *wiktionary.Output, format string) error {
	switch format {
	case formatText:
		printDefinitions(w, title, out)
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
