package article

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/dewiktionary/internal/domain"
	"github.com/heartmarshall/dewiktionary/internal/wikitext"
	"github.com/heartmarshall/dewiktionary/internal/wiktionary"
)

const maxTitleLength = 255

// ParseInput is one page submitted for parsing. Nodes may be nil, in which
// case WikiText is tokenized.
type ParseInput struct {
	Title    string
	WikiText string
	Nodes    []wikitext.Node
}

// Validate checks all fields and collects all errors.
func (i *ParseInput) Validate() error {
	var errs domain.FieldErrors

	title := strings.TrimSpace(i.Title)
	switch {
	case title == "":
		errs.Add("title", "required")
	case utf8.RuneCountInString(title) > maxTitleLength:
		errs.Add("title", "too long (max 255)")
	}
	if strings.TrimSpace(i.WikiText) == "" {
		errs.Add("wiki_text", "required")
	}
	if i.Nodes != nil {
		if err := wikitext.Validate(i.WikiText, i.Nodes); err != nil {
			errs.Add("nodes", err.Error())
		}
	}

	return errs.Err()
}

func (i *ParseInput) page() wikitext.Page {
	if i.Nodes != nil {
		return wikitext.Page{Title: i.Title, WikiText: i.WikiText, Nodes: i.Nodes}
	}
	return wikitext.ParsePage(i.Title, i.WikiText)
}

func validateFilter(f domain.PageFilter) error {
	var errs domain.FieldErrors

	if f.Language != "" && !wiktionary.Language(f.Language).Valid() {
		errs.Add("language", "unknown language code")
	}
	if f.Pos != "" && !wiktionary.Pos(f.Pos).Valid() {
		errs.Add("pos", "unknown part of speech")
	}
	if f.Limit < 0 {
		errs.Add("limit", "must not be negative")
	}
	if f.Offset < 0 {
		errs.Add("offset", "must not be negative")
	}

	return errs.Err()
}
