package wiktionary

import "github.com/heartmarshall/dewiktionary/internal/wikitext"

// flatField indexes the sections of a part of speech that are plain lists.
type flatField int

const (
	fieldAbbreviations flatField = iota
	fieldAffectionateForms
	fieldAntonyms
	fieldCompoundWords
	fieldDefinitions
	fieldDiminutives
	fieldEtymology
	fieldFeminineForms
	fieldHypernyms
	fieldHyphenation
	fieldHyponyms
	fieldIdioms
	fieldMasculineForms
	fieldNoLongerValidSpellings
	fieldProverbs
	fieldRelatedWords
	fieldShortForms
	fieldSimilarWords
	fieldSymbols
	fieldSynonyms
	fieldTypicalWordCombinations
	fieldVariants
	flatFieldCount
)

var flatSections = map[string]flatField{
	"Abkürzungen":                        fieldAbbreviations,
	"Koseformen":                         fieldAffectionateForms,
	"Gegenwörter":                        fieldAntonyms,
	"Wortbildungen":                      fieldCompoundWords,
	"Bedeutungen":                        fieldDefinitions,
	"Verkleinerungsformen":               fieldDiminutives,
	"Herkunft":                           fieldEtymology,
	"Weibliche Wortformen":               fieldFeminineForms,
	"Oberbegriffe":                       fieldHypernyms,
	"Worttrennung":                       fieldHyphenation,
	"Unterbegriffe":                      fieldHyponyms,
	"Redewendungen":                      fieldIdioms,
	"Männliche Wortformen":               fieldMasculineForms,
	"Nicht mehr gültige Schreibweisen":   fieldNoLongerValidSpellings,
	"Sprichwörter":                       fieldProverbs,
	"Sinnverwandte Wörter":               fieldRelatedWords,
	"Kurzformen":                         fieldShortForms,
	"Ähnlichkeiten":                      fieldSimilarWords,
	"Symbole":                            fieldSymbols,
	"Synonyme":                           fieldSynonyms,
	"Charakteristische Wortkombinationen": fieldTypicalWordCombinations,
	"Nebenformen":                        fieldVariants,
}

// supplementarySections are recognized markers whose content is not parsed.
var supplementarySections = map[string]bool{
	"Abschnitte fehlen": true,
	"Quellen":           true,
	"Referenzen prüfen": true,
	"Ähnlichkeiten 1":   true,
	"Ähnlichkeiten 2":   true,
}

type posSections struct {
	flat          [flatFieldCount]Section[[][]Flowing]
	examples      Section[[]Example]
	pronunciation Section[pronunciation]
	overview      Section[*Overview]
	translations  bool
}

// posSection parses the body of a part-of-speech section up to the next
// heading of level 3 or lower and appends its entry. A repeated translations
// heading abandons the body: nothing is appended and 0 is returned.
func (c *parseContext) posSection(nodes []wikitext.Node, pos Pos, details []Flowing, entries *[]PosEntry) int {
	var s posSections

	i := 0
loop:
	for i < len(nodes) {
		node := &nodes[i]
		switch node.Kind {
		case wikitext.KindHeading:
			if node.Level < 4 {
				break loop
			}
			i++
			if node.Level == 4 && len(node.Nodes) == 1 && isTemplate(&node.Nodes[0], "Übersetzungen") {
				if s.translations {
					c.warn(node, WarningDuplicate)
					return 0
				}
				s.translations = true
				switch {
				case len(node.Nodes[0].Parameters) != 0:
					c.warn(node, WarningValueUnrecognized)
				case i < len(nodes) && isTemplate(&nodes[i], "Ü-Tabelle"):
					c.warn(&nodes[i], WarningSupplementary)
					i++
				default:
					c.warn(node, WarningSectionEmpty)
				}
				continue
			}

		case wikitext.KindTemplate:
			i++
			if name, ok := renderText(node.Name); ok {
				if n, handled := c.sectionMarker(&s, node, name, nodes[i:]); handled {
					i += n
					continue
				}
			}

		default:
			i++
		}
		c.warn(node, WarningUnrecognized)
	}

	*entries = append(*entries, s.entry(pos, details))
	return i
}

// sectionMarker dispatches a template inside a part-of-speech body. It
// reports how many of the following nodes were consumed and whether the
// template was recognized at all.
func (c *parseContext) sectionMarker(s *posSections, node *wikitext.Node, name string, rest []wikitext.Node) (int, bool) {
	if f, ok := flatSections[name]; ok {
		return extractListItems(c, node, rest, &s.flat[f], c.flatList), true
	}
	if supplementarySections[name] {
		c.warn(node, WarningSupplementary)
		return 0, true
	}
	switch name {
	case "Aussprache":
		return extractList(c, node, rest, &s.pronunciation, c.pronunciation), true
	case "Beispiele":
		return extractListItems(c, node, rest, &s.examples, c.example), true
	case "Referenzen":
		if len(rest) > 0 && rest[0].Kind == wikitext.KindDefinitionList {
			c.warn(&rest[0], WarningSupplementary)
			return 1, true
		}
		c.warn(node, WarningSectionEmpty)
		return 0, true
	}
	if c.overview(node, name, &s.overview) {
		return 0, true
	}
	return 0, false
}

func (s *posSections) entry(pos Pos, details []Flowing) PosEntry {
	f := func(field flatField) [][]Flowing { return s.flat[field].Value }
	p := s.pronunciation.Value
	return PosEntry{
		Pos:     pos,
		Details: details,

		Abbreviations:           f(fieldAbbreviations),
		AffectionateForms:       f(fieldAffectionateForms),
		Antonyms:                f(fieldAntonyms),
		CompoundWords:           f(fieldCompoundWords),
		Definitions:             f(fieldDefinitions),
		Diminutives:             f(fieldDiminutives),
		Etymology:               f(fieldEtymology),
		FeminineForms:           f(fieldFeminineForms),
		Hypernyms:               f(fieldHypernyms),
		Hyphenation:             f(fieldHyphenation),
		Hyponyms:                f(fieldHyponyms),
		Idioms:                  f(fieldIdioms),
		MasculineForms:          f(fieldMasculineForms),
		NoLongerValidSpellings:  f(fieldNoLongerValidSpellings),
		Proverbs:                f(fieldProverbs),
		RelatedWords:            f(fieldRelatedWords),
		ShortForms:              f(fieldShortForms),
		SimilarWords:            f(fieldSimilarWords),
		Symbols:                 f(fieldSymbols),
		Synonyms:                f(fieldSynonyms),
		TypicalWordCombinations: f(fieldTypicalWordCombinations),
		Variants:                f(fieldVariants),

		Audio:  p.audio,
		Ipa:    p.ipa,
		Rhymes: p.rhymes,

		Examples: s.examples.Value,
		Overview: s.overview.Value,
	}
}
