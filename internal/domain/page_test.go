package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dewiktionary/internal/wiktionary"
)

func TestNewPage(t *testing.T) {
	t.Parallel()

	out := wiktionary.Output{
		LanguageEntries: []wiktionary.LanguageEntry{
			{Language: wiktionary.LanguageDe, PosEntries: []wiktionary.PosEntry{
				{Pos: wiktionary.PosNoun}, {Pos: wiktionary.PosVerb},
			}},
			{Language: wiktionary.LanguageEn, PosEntries: []wiktionary.PosEntry{
				{Pos: wiktionary.PosNoun},
			}},
		},
		Warnings: []wiktionary.Warning{
			{Start: 0, End: 4, Message: wiktionary.WarningUnrecognized},
			{Start: 10, End: 20, Language: wiktionary.LanguageDe, Message: wiktionary.WarningDuplicate},
		},
	}
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	p := NewPage("  Haus ", "01HZX", out, now)

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "  Haus ", p.Title)
	assert.Equal(t, "Haus", p.TitleNormalized)
	assert.Equal(t, "01HZX", p.RunID)
	assert.Equal(t, 2, p.LanguageCount)
	assert.Equal(t, 3, p.PosCount)
	assert.Equal(t, 2, p.WarningCount)
	assert.Equal(t, now, p.ParsedAt)

	require.Len(t, p.Warnings, 2)
	assert.Nil(t, p.Warnings[0].Language)
	require.NotNil(t, p.Warnings[1].Language)
	assert.Equal(t, "de", *p.Warnings[1].Language)
	assert.Equal(t, 1, p.Warnings[1].Position)

	assert.Equal(t, []PagePosEntry{
		{Position: 0, Language: "de", Pos: "noun"},
		{Position: 1, Language: "de", Pos: "verb"},
		{Position: 2, Language: "en", Pos: "noun"},
	}, p.PosEntries)

	assert.Equal(t, out, p.Output())
}

func TestNewPage_Empty(t *testing.T) {
	t.Parallel()

	p := NewPage("x", "", wiktionary.Output{}, time.Time{})
	assert.Zero(t, p.PosCount)
	assert.Nil(t, p.Warnings)
	assert.Nil(t, p.PosEntries)
	assert.Equal(t, wiktionary.Output{}, p.Output())
}

func TestPageFilter_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   PageFilter
		want PageFilter
	}{
		{"defaults", PageFilter{}, PageFilter{Limit: DefaultPageLimit}},
		{"clamped", PageFilter{Limit: 10_000, Offset: -3}, PageFilter{Limit: MaxPageLimit}},
		{"kept", PageFilter{Language: "de", Pos: "noun", Limit: 5, Offset: 10}, PageFilter{Language: "de", Pos: "noun", Limit: 5, Offset: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}
