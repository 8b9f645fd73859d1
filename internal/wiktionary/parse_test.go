package wiktionary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dewiktionary/internal/wikitext"
)

func TestParse_Ausstellungswohnen(t *testing.T) {
	const example = `Das Haus sei geeignet bloß zum „Ausstellungswohnen", vermuteten Kritiker, ` +
		`die es meist nur in schwarz-weißen Zeitschriftenfotos betreten hatten.`
	src := "==Ausstellungswohnen ({{Sprache|Deutsch}})==\n" +
		"==={{Wortart|Substantiv|Deutsch}}===\n" +
		"{{Beispiele}}\n" +
		":" + example

	got := Parse("Ausstellungswohnen", src, wikitext.Tokenize(src))

	want := Output{
		LanguageEntries: []LanguageEntry{{
			Language: LanguageDe,
			PosEntries: []PosEntry{{
				Pos:      PosNoun,
				Examples: []Example{{Example: []Flowing{Text(example)}}},
			}},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	got := Parse("", "", nil)
	assert.False(t, got.HasEntries())
	assert.Empty(t, got.Warnings)
}

func TestParse_GenitiveWithParameter(t *testing.T) {
	t.Run("flat list", func(t *testing.T) {
		src, nodes := page(
			languageHeading("Haus", "Deutsch"),
			posHeading("Substantiv", "Deutsch"),
			tmpl("Bedeutungen"),
			dl(dd(text("[1] "), tmpl("Gen.", arg(text("x"))))),
		)
		out := Parse("Haus", src, nodes)

		require.Len(t, out.LanguageEntries, 1)
		defs := out.LanguageEntries[0].PosEntries[0].Definitions
		require.Len(t, defs, 1)
		assert.Equal(t, []Flowing{Text("[1] "), Unknown("{{Gen.|x}}")}, defs[0])
		require.Len(t, out.Warnings, 1)
		assert.Equal(t, WarningUnrecognized, out.Warnings[0].Message)
		assert.Equal(t, LanguageDe, out.Warnings[0].Language)
	})

	t.Run("pronunciation", func(t *testing.T) {
		src, nodes := page(
			languageHeading("Haus", "Deutsch"),
			posHeading("Substantiv", "Deutsch"),
			tmpl("Aussprache"),
			dl(dd(tmpl("IPA"), text(" "), tmpl("Gen.", arg(text("x"))))),
		)
		out := Parse("Haus", src, nodes)

		require.Len(t, out.LanguageEntries, 1)
		assert.Equal(t, []Flowing{Unknown("{{Gen.|x}}")}, out.LanguageEntries[0].PosEntries[0].Ipa)
		require.Len(t, out.Warnings, 1)
		assert.Equal(t, WarningValueUnrecognized, out.Warnings[0].Message)
	})
}

func TestParse_DuplicateTranslations(t *testing.T) {
	src, nodes := page(
		languageHeading("Haus", "Deutsch"),
		posHeading("Substantiv", "Deutsch"),
		heading(4, tmpl("Übersetzungen")),
		tmpl("Ü-Tabelle"),
		heading(4, tmpl("Übersetzungen")),
	)
	out := Parse("Haus", src, nodes)

	assert.False(t, out.HasEntries())
	assert.Equal(t, 1, countMessages(out, WarningDuplicate))

	var messages []WarningMessage
	for _, w := range out.Warnings {
		messages = append(messages, w.Message)
	}
	// The abandoned body is rescanned by the language section.
	assert.Equal(t, []WarningMessage{
		WarningSupplementary,
		WarningDuplicate,
		WarningUnrecognized, WarningUnrecognized, WarningUnrecognized,
		WarningSectionEmpty,
	}, messages)
}

func TestParse_TranslationsSection(t *testing.T) {
	tests := []struct {
		name    string
		pieces  []piece
		message WarningMessage
	}{
		{
			name:    "table",
			pieces:  []piece{heading(4, tmpl("Übersetzungen")), tmpl("Ü-Tabelle")},
			message: WarningSupplementary,
		},
		{
			name:    "parameters",
			pieces:  []piece{heading(4, tmpl("Übersetzungen", arg(text("x"))))},
			message: WarningValueUnrecognized,
		},
		{
			name:    "no table",
			pieces:  []piece{heading(4, tmpl("Übersetzungen"))},
			message: WarningSectionEmpty,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces := append([]piece{languageHeading("Haus", "Deutsch"), posHeading("Substantiv", "Deutsch")}, tt.pieces...)
			src, nodes := page(pieces...)
			out := Parse("Haus", src, nodes)

			require.True(t, out.HasEntries())
			require.Len(t, out.Warnings, 1)
			assert.Equal(t, tt.message, out.Warnings[0].Message)
		})
	}
}

func TestParse_DuplicateSectionMarker(t *testing.T) {
	names := []string{"Aussprache", "Beispiele"}
	for name := range flatSections {
		names = append(names, name)
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			body := func() piece {
				if name == "Aussprache" {
					return dl(dd(tmpl("IPA"), tmpl("Lautschrift", arg(text("haʊ̯s")))))
				}
				return dl(dd(text("Das Haus.")))
			}
			src, nodes := page(
				languageHeading("Haus", "Deutsch"),
				posHeading("Substantiv", "Deutsch"),
				tmpl(name), body(),
				tmpl(name), body(),
			)
			out := Parse("Haus", src, nodes)

			require.Len(t, out.LanguageEntries, 1)
			if diff := cmp.Diff(PosEntry{Pos: PosNoun}, out.LanguageEntries[0].PosEntries[0]); diff != "" {
				t.Errorf("section not reset (-want +got):\n%s", diff)
			}
			assert.Equal(t, 1, countMessages(out, WarningDuplicate))
			// The second list is left for the body, which does not know it.
			assert.Equal(t, 1, countMessages(out, WarningUnrecognized))
		})
	}
}

func TestParse_SectionMarkerEdgeCases(t *testing.T) {
	t.Run("parameters", func(t *testing.T) {
		src, nodes := page(
			languageHeading("Haus", "Deutsch"),
			posHeading("Substantiv", "Deutsch"),
			tmpl("Synonyme", arg(text("x"))),
			dl(dd(text("y"))),
		)
		out := Parse("Haus", src, nodes)
		assert.Equal(t, 1, countMessages(out, WarningValueUnrecognized))
		assert.Equal(t, 1, countMessages(out, WarningUnrecognized))
		assert.Empty(t, out.LanguageEntries[0].PosEntries[0].Synonyms)
	})

	t.Run("no list", func(t *testing.T) {
		src, nodes := page(
			languageHeading("Haus", "Deutsch"),
			posHeading("Substantiv", "Deutsch"),
			tmpl("Synonyme"),
		)
		out := Parse("Haus", src, nodes)
		require.Len(t, out.Warnings, 1)
		assert.Equal(t, WarningSectionEmpty, out.Warnings[0].Message)
	})

	t.Run("term items and empty items", func(t *testing.T) {
		src, nodes := page(
			languageHeading("Haus", "Deutsch"),
			posHeading("Substantiv", "Deutsch"),
			tmpl("Synonyme"),
			dl(dt(text("t")), dd(), dd(text("Gebäude"))),
		)
		out := Parse("Haus", src, nodes)
		assert.Equal(t, [][]Flowing{{Text("Gebäude")}}, out.LanguageEntries[0].PosEntries[0].Synonyms)
		assert.Equal(t, 1, countMessages(out, WarningUnrecognized))
		assert.Equal(t, 1, countMessages(out, WarningEmpty))
	})

	t.Run("references", func(t *testing.T) {
		src, nodes := page(
			languageHeading("Haus", "Deutsch"),
			posHeading("Substantiv", "Deutsch"),
			tmpl("Referenzen"),
			dl(dd(text("Duden"))),
			tmpl("Quellen"),
			tmpl("Referenzen"),
		)
		out := Parse("Haus", src, nodes)
		assert.Equal(t, 2, countMessages(out, WarningSupplementary))
		assert.Equal(t, 1, countMessages(out, WarningSectionEmpty))
		assert.Len(t, out.Warnings, 3)
	})

	t.Run("unknown body nodes", func(t *testing.T) {
		src, nodes := page(
			languageHeading("Haus", "Deutsch"),
			posHeading("Substantiv", "Deutsch"),
			tmpl("Gibt es nicht"),
			text("Fließtext"),
			heading(5, text("tief")),
		)
		out := Parse("Haus", src, nodes)
		assert.True(t, out.HasEntries())
		assert.Equal(t, 3, countMessages(out, WarningUnrecognized))
	})
}

func TestParse_LanguageMismatch(t *testing.T) {
	src, nodes := page(
		languageHeading("house", "Deutsch"),
		posHeading("Substantiv", "Englisch"),
		tmpl("Bedeutungen"),
		dl(dd(text("[1] Haus"))),
	)
	out := Parse("house", src, nodes)

	assert.False(t, out.HasEntries())
	assert.Equal(t, 1, countMessages(out, WarningValueConflicting))
	assert.Equal(t, 1, countMessages(out, WarningSectionEmpty))

	param := findNode(nodes, templateNamed("Wortart")).Parameters[1]
	for _, w := range out.Warnings {
		if w.Message == WarningValueConflicting {
			assert.Equal(t, param.Start, w.Start)
			assert.Equal(t, param.End, w.End)
		}
	}
}

func TestParse_PosTemplateErrors(t *testing.T) {
	tests := []struct {
		name    string
		heading piece
		message WarningMessage
	}{
		{"unknown pos", posHeading("Fantasie", "Deutsch"), WarningValueUnrecognized},
		{"unknown language", posHeading("Substantiv", "Klingonisch"), WarningValueUnrecognized},
		{"arity", heading(3, tmpl("Wortart", arg(text("Substantiv")))), WarningValueUnrecognized},
		{"not wortart", heading(3, text("Substantiv")), WarningValueUnrecognized},
		{"empty", heading(3), WarningEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, nodes := page(languageHeading("Haus", "Deutsch"), tt.heading)
			out := Parse("Haus", src, nodes)
			assert.False(t, out.HasEntries())
			require.Len(t, out.Warnings, 2)
			assert.Equal(t, tt.message, out.Warnings[0].Message)
			assert.Equal(t, WarningSectionEmpty, out.Warnings[1].Message)
		})
	}
}

func TestParse_EmptyLanguageSection(t *testing.T) {
	src, nodes := page(
		languageHeading("Haus", "Deutsch"),
		languageHeading("Haus", "Englisch"),
		posHeading("Substantiv", "Englisch"),
	)
	out := Parse("Haus", src, nodes)

	require.Len(t, out.LanguageEntries, 1)
	assert.Equal(t, LanguageEn, out.LanguageEntries[0].Language)
	require.Len(t, out.Warnings, 1)
	w := out.Warnings[0]
	assert.Equal(t, WarningSectionEmpty, w.Message)
	assert.Equal(t, LanguageDe, w.Language)
	assert.Equal(t, nodes[0].Start, w.Start)
	assert.Equal(t, nodes[0].End, w.End)
}

func TestParse_TopLevel(t *testing.T) {
	t.Run("level 1 heading stops the scan", func(t *testing.T) {
		src, nodes := page(heading(1, text("x")), languageHeading("Haus", "Deutsch"), posHeading("Substantiv", "Deutsch"))
		out := Parse("Haus", src, nodes)
		assert.False(t, out.HasEntries())
		require.Len(t, out.Warnings, 1)
		assert.Equal(t, WarningUnrecognized, out.Warnings[0].Message)
	})

	t.Run("title mismatch", func(t *testing.T) {
		src, nodes := page(languageHeading("Baum", "Deutsch"), posHeading("Substantiv", "Deutsch"))
		out := Parse("Haus", src, nodes)
		assert.False(t, out.HasEntries())
		assert.Equal(t, WarningValueUnrecognized, out.Warnings[0].Message)
		assert.Equal(t, nodes[0].Start, out.Warnings[0].Start)
	})

	t.Run("unknown language", func(t *testing.T) {
		src, nodes := page(languageHeading("Haus", "Klingonisch"))
		out := Parse("Haus", src, nodes)
		require.Len(t, out.Warnings, 1)
		param := nodes[0].Nodes[1].Parameters[0]
		assert.Equal(t, WarningValueUnrecognized, out.Warnings[0].Message)
		assert.Equal(t, param.Start, out.Warnings[0].Start)
		assert.Equal(t, LanguageNone, out.Warnings[0].Language)
	})

	t.Run("stray nodes", func(t *testing.T) {
		src, nodes := page(text("Vorspann"), tmpl("erweitern"), heading(3, text("x")))
		out := Parse("Haus", src, nodes)
		assert.Equal(t, 3, countMessages(out, WarningUnrecognized))
	})

	t.Run("erweitern in language section", func(t *testing.T) {
		src, nodes := page(languageHeading("Haus", "Deutsch"), tmpl("erweitern"), posHeading("Substantiv", "Deutsch"))
		out := Parse("Haus", src, nodes)
		assert.True(t, out.HasEntries())
		require.Len(t, out.Warnings, 1)
		assert.Equal(t, WarningSupplementary, out.Warnings[0].Message)
	})
}

func TestParse_Details(t *testing.T) {
	src, nodes := page(
		languageHeading("Haus", "Deutsch"),
		posHeading("Substantiv", "Deutsch",
			text(", "), tmpl("m"), tmpl("fn"), tmpl("n", arg(text("x"))),
			italic, link("Plural", text("Mehrzahl")), bold,
			tmpl("Wortart", arg(text("Adjektiv")), arg(text("Deutsch"))),
			tmpl("Wortart", arg(text("Adjektiv")), arg(text("Englisch"))),
		),
	)
	out := Parse("Haus", src, nodes)

	require.True(t, out.HasEntries())
	want := []Flowing{
		Marker(FlowingMasculineGender),
		Marker(FlowingFeminineGender), Text(", "), Marker(FlowingNeuterGender),
		Unknown("{{n|x}}"),
		Marker(FlowingItalic),
		Link("Plural", "Mehrzahl"),
		Unknown("'''"),
		PosMarker(PosAdjective),
		Unknown("{{Wortart|Adjektiv|Englisch}}"),
	}
	if diff := cmp.Diff(want, out.LanguageEntries[0].PosEntries[0].Details); diff != "" {
		t.Errorf("details mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, countMessages(out, WarningValueUnrecognized))
	assert.Equal(t, 1, countMessages(out, WarningUnrecognized))
	assert.Equal(t, 1, countMessages(out, WarningValueConflicting))
}

func TestParse_UnknownRoundTrip(t *testing.T) {
	src, nodes := page(
		languageHeading("Haus", "Deutsch"),
		posHeading("Substantiv", "Deutsch"),
		tmpl("Bedeutungen"),
		dl(dd(
			text("[1] "),
			tmpl("Unbekannt", arg(text("a")), named("b", text("c"))),
			startTag("span"),
			link("x", text("y"), italic),
			tmpl("Ü", arg(text("en")), arg()),
			dl(dd(text("tief"))),
		)),
	)
	out := Parse("Haus", src, nodes)

	require.True(t, out.HasEntries())
	def := out.LanguageEntries[0].PosEntries[0].Definitions[0]
	list := findNode(nodes, func(n *wikitext.Node) bool { return n.Kind == wikitext.KindDefinitionList })
	itemNodes := list.Items[0].Nodes
	require.Len(t, def, len(itemNodes))
	for i := 1; i < len(def); i++ {
		assert.Equal(t, FlowingUnknown, def[i].Type)
		assert.Equal(t, src[itemNodes[i].Start:itemNodes[i].End], def[i].Value)
	}
}

func TestParse_IsolatedCalls(t *testing.T) {
	src, nodes := page(languageHeading("Haus", "Klingonisch"))
	first := Parse("Haus", src, nodes)
	second := Parse("Haus", src, nodes)
	assert.Equal(t, first, second)
	assert.Len(t, second.Warnings, 1)
}
