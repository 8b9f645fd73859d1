package wiktionary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// definitions parses a page with one Bedeutungen section holding items.
func definitions(t *testing.T, items ...item) ([][]Flowing, Output) {
	t.Helper()
	src, nodes := page(
		languageHeading("Haus", "Deutsch"),
		posHeading("Substantiv", "Deutsch"),
		tmpl("Bedeutungen"),
		dl(items...),
	)
	out := Parse("Haus", src, nodes)
	require.True(t, out.HasEntries())
	return out.LanguageEntries[0].PosEntries[0].Definitions, out
}

func TestListItem_Elements(t *testing.T) {
	tests := []struct {
		name     string
		nodes    []piece
		want     []Flowing
		warnings map[WarningMessage]int
	}{
		{
			name:  "markup toggles",
			nodes: []piece{bold, text("a"), bold, italic, text("b"), italic},
			want: []Flowing{
				Marker(FlowingBold), Text("a"), Marker(FlowingBold),
				Marker(FlowingItalic), Text("b"), Marker(FlowingItalic),
			},
		},
		{
			name:  "non-breaking space",
			nodes: []piece{text("a"), entity("&nbsp;", "\u00a0"), text("b")},
			want:  []Flowing{Text("a"), Text(nbsp), Text("b")},
		},
		{
			name:     "other entity",
			nodes:    []piece{entity("&amp;", "&")},
			want:     []Flowing{Unknown("&amp;")},
			warnings: map[WarningMessage]int{WarningUnrecognized: 1},
		},
		{
			name:     "comment and reference",
			nodes:    []piece{text("a"), comment(" todo "), ref("Duden")},
			want:     []Flowing{Text("a"), Marker(FlowingComment), Marker(FlowingReference)},
			warnings: map[WarningMessage]int{WarningSupplementary: 2},
		},
		{
			name:  "superscript",
			nodes: []piece{text("m"), startTag("sup"), text("2"), endTag("sup")},
			want:  []Flowing{Text("m"), Marker(FlowingSuperscriptStart), Text("2"), Marker(FlowingSuperscriptEnd)},
		},
		{
			name:  "link",
			nodes: []piece{link("Haus", text("Häuser"))},
			want:  []Flowing{Link("Haus", "Häuser")},
		},
		{
			name:     "quality control",
			nodes:    []piece{tmpl("QS Herkunft"), tmpl("QS_Herkunft")},
			want:     []Flowing{Marker(FlowingQualityControl), Marker(FlowingQualityControl)},
			warnings: map[WarningMessage]int{WarningSupplementary: 2},
		},
		{
			name:  "wortbildung",
			nodes: []piece{tmpl("Wortbildung", arg(text("Adj"))), tmpl("Wortbildung", arg(text("Verben")))},
			want:  []Flowing{PosMarker(PosAdjective), PosMarker(PosVerb)},
		},
		{
			name:     "wortbildung unknown",
			nodes:    []piece{tmpl("Wortbildung", arg(text("Pronomen")))},
			want:     []Flowing{Unknown("{{Wortbildung|Pronomen}}")},
			warnings: map[WarningMessage]int{WarningValueUnrecognized: 1},
		},
		{
			name: "terms",
			nodes: []piece{
				tmpl("Ü", arg(text("en")), arg(text("house"))),
				tmpl("Üt", arg(text("ru")), arg(text("дом")), arg(text("dom"))),
			},
			want: []Flowing{Term("en", "house", ""), Term("ru", "дом", "dom")},
		},
		{
			name:     "term arity",
			nodes:    []piece{tmpl("Üt", arg(text("en")), arg(text("house")))},
			want:     []Flowing{Unknown("{{Üt|en|house}}")},
			warnings: map[WarningMessage]int{WarningValueUnrecognized: 1},
		},
		{
			name:  "languages",
			nodes: []piece{tmpl("en"), tmpl("de."), tmpl("österr."), tmpl("MHA")},
			want: []Flowing{
				LanguageRef("en"), LanguageAdjective("de"), LanguageAdjective("österr"), LanguageRef("MHA"),
			},
		},
		{
			name:     "language with parameters",
			nodes:    []piece{tmpl("en", arg(text("x")))},
			want:     []Flowing{Unknown("{{en|x}}")},
			warnings: map[WarningMessage]int{WarningValueUnrecognized: 1},
		},
		{
			name:     "adjective code without dot is unknown",
			nodes:    []piece{tmpl("amer")},
			want:     []Flowing{Unknown("{{amer}}")},
			warnings: map[WarningMessage]int{WarningUnrecognized: 1},
		},
		{
			name: "simple markers",
			nodes: []piece{
				tmpl("Komp."), tmpl("Part."), tmpl("Pl."), tmpl("Pl.1"), tmpl("Pl.2"),
				tmpl("Pl.3"), tmpl("Pl.4"), tmpl("Prät."), tmpl("Sup."), tmpl("kPl."),
			},
			want: []Flowing{
				Marker(FlowingComparative), Marker(FlowingPastParticiple), Marker(FlowingPlural),
				Marker(FlowingPlural1), Marker(FlowingPlural2), Marker(FlowingPlural3), Marker(FlowingPlural4),
				Marker(FlowingPreterite), Marker(FlowingSuperlative), Marker(FlowingNoPlural),
			},
		},
		{
			name:     "genitive is not a list marker",
			nodes:    []piece{tmpl("Gen.")},
			want:     []Flowing{Unknown("{{Gen.}}")},
			warnings: map[WarningMessage]int{WarningUnrecognized: 1},
		},
		{
			name:  "nested list",
			nodes: []piece{text("a"), ul(li(text("b")), li(), li(text("c"), italic))},
			want: []Flowing{
				Text("a"),
				List([][]Flowing{{Text("b")}, {Text("c"), Marker(FlowingItalic)}}),
			},
			warnings: map[WarningMessage]int{WarningEmpty: 1},
		},
		{
			name:     "nested list of empty items is dropped",
			nodes:    []piece{text("a"), ul(li())},
			want:     []Flowing{Text("a")},
			warnings: map[WarningMessage]int{WarningEmpty: 1},
		},
		{
			name:  "list inside nested list",
			nodes: []piece{ul(li(text("b"), ul(li(text("c")))))},
			want: []Flowing{
				List([][]Flowing{{Text("b"), Unknown("*c")}}),
			},
			warnings: map[WarningMessage]int{WarningUnrecognized: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs, out := definitions(t, dd(tt.nodes...))
			require.Len(t, defs, 1)
			if diff := cmp.Diff(tt.want, defs[0]); diff != "" {
				t.Errorf("item mismatch (-want +got):\n%s", diff)
			}
			want := tt.warnings
			if want == nil {
				want = map[WarningMessage]int{}
			}
			assert.Equal(t, want, out.Stats())
		})
	}
}

func TestListItem_ManyUnknownNodes(t *testing.T) {
	const n = 10001
	nodes := make([]piece, n)
	for i := range nodes {
		nodes[i] = tmpl("Gen.")
	}

	var defs [][]Flowing
	var out Output
	require.NotPanics(t, func() {
		defs, out = definitions(t, dd(nodes...))
	})
	require.Len(t, defs, 1)
	assert.Len(t, defs[0], n)
	assert.Equal(t, Unknown("{{Gen.}}"), defs[0][n-1])
	assert.Equal(t, map[WarningMessage]int{WarningUnrecognized: n}, out.Stats())
}
