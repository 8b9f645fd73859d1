package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dewiktionary/internal/wiktionary"
)

// Page is a parsed Wiktionary page as it is stored.
type Page struct {
	ID              uuid.UUID
	Title           string
	TitleNormalized string
	RunID           string
	Entries         []wiktionary.LanguageEntry
	LanguageCount   int
	PosCount        int
	WarningCount    int
	ParsedAt        time.Time

	Warnings   []PageWarning
	PosEntries []PagePosEntry
}

// PageWarning is one parser warning of a page, in emission order.
type PageWarning struct {
	Position int
	Start    int
	End      int
	Language *string
	Message  string
}

// PagePosEntry indexes one part-of-speech entry of a page.
type PagePosEntry struct {
	Position int
	Language string
	Pos      string
}

// WarningStat is the number of stored warnings with one message.
type WarningStat struct {
	Message string
	Count   int
}

// NewPage builds the storage record for a parsed page.
func NewPage(title, runID string, out wiktionary.Output, parsedAt time.Time) Page {
	p := Page{
		ID:              uuid.New(),
		Title:           title,
		TitleNormalized: NormalizeTitle(title),
		RunID:           runID,
		Entries:         out.LanguageEntries,
		LanguageCount:   len(out.LanguageEntries),
		PosCount:        out.PosCount(),
		WarningCount:    len(out.Warnings),
		ParsedAt:        parsedAt,
	}

	for i, w := range out.Warnings {
		pw := PageWarning{Position: i, Start: w.Start, End: w.End, Message: string(w.Message)}
		if w.Language != wiktionary.LanguageNone {
			lang := string(w.Language)
			pw.Language = &lang
		}
		p.Warnings = append(p.Warnings, pw)
	}

	for _, le := range out.LanguageEntries {
		for _, pe := range le.PosEntries {
			p.PosEntries = append(p.PosEntries, PagePosEntry{
				Position: len(p.PosEntries),
				Language: string(le.Language),
				Pos:      string(pe.Pos),
			})
		}
	}
	return p
}

// Output reassembles the parser output of a stored page.
func (p *Page) Output() wiktionary.Output {
	out := wiktionary.Output{LanguageEntries: p.Entries}
	for _, w := range p.Warnings {
		ww := wiktionary.Warning{Start: w.Start, End: w.End, Message: wiktionary.WarningMessage(w.Message)}
		if w.Language != nil {
			ww.Language = wiktionary.Language(*w.Language)
		}
		out.Warnings = append(out.Warnings, ww)
	}
	return out
}
