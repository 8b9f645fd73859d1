package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/heartmarshall/dewiktionary/internal/wiktionary"
)

// maxExcerpt is the longest source excerpt shown per warning, in runes.
const maxExcerpt = 48

var (
	errorLabel   = color.New(color.FgRed, color.Bold).SprintFunc()
	successLabel = color.New(color.FgGreen).SprintFunc()
	keyLabel     = color.New(color.Bold).SprintFunc()
)

// messageColor groups warnings by severity: supplementary content is
// informational, conflicts point at contradicting input.
func messageColor(m wiktionary.WarningMessage) *color.Color {
	switch m {
	case wiktionary.WarningSupplementary:
		return color.New(color.FgCyan)
	case wiktionary.WarningValueConflicting, wiktionary.WarningDuplicate:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

// printWarnings renders warnings as a table with the source each one points
// at.
func printWarnings(w io.Writer, src string, warnings []wiktionary.Warning) {
	if len(warnings) == 0 {
		fmt.Fprintln(w, successLabel("no warnings"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Offset", "Language", "Message", "Source"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
	})

	for i, wr := range warnings {
		lang := string(wr.Language)
		if lang == "" {
			lang = "-"
		}
		t.AppendRow(table.Row{
			i + 1,
			strconv.Itoa(wr.Start) + "-" + strconv.Itoa(wr.End),
			lang,
			messageColor(wr.Message).Sprint(string(wr.Message)),
			excerpt(src, wr.Start, wr.End, maxExcerpt),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "total", len(warnings)})
	t.Render()
}

// printDefinitions lists the definitions of every entry as plain text.
func printDefinitions(w io.Writer, title string, out *wiktionary.Output) {
	if !out.HasEntries() {
		fmt.Fprintln(w, errorLabel("no entries"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(keyLabel(title))
	t.AppendHeader(table.Row{"Language", "Pos", "#", "Definition"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, WidthMax: 72},
	})

	for _, le := range out.LanguageEntries {
		for _, pe := range le.PosEntries {
			for i, def := range pe.Definitions {
				t.AppendRow(table.Row{string(le.Language), string(pe.Pos), i + 1, wiktionary.PlainText(def)})
			}
		}
	}
	t.Render()
}

// excerpt returns src[start:end] on one line, shortened to at most limit
// runes. Out-of-range offsets are clamped.
func excerpt(src string, start, end, limit int) string {
	start = min(max(start, 0), len(src))
	end = min(max(end, start), len(src))

	s := src[start:end]
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "⏎")
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}
