package wiktionary

import (
	"strings"
	"unicode"

	"github.com/heartmarshall/dewiktionary/internal/wikitext"
)

var genders = map[string]FlowingType{
	"f": FlowingFeminineGender,
	"m": FlowingMasculineGender,
	"n": FlowingNeuterGender,
	"u": FlowingCommonGender,
}

var genderPairs = map[string][2]FlowingType{
	"fm":  {FlowingFeminineGender, FlowingMasculineGender},
	"fn":  {FlowingFeminineGender, FlowingNeuterGender},
	"mf":  {FlowingMasculineGender, FlowingFeminineGender},
	"mn.": {FlowingMasculineGender, FlowingNeuterGender},
	"nf":  {FlowingNeuterGender, FlowingFeminineGender},
	"nm":  {FlowingNeuterGender, FlowingMasculineGender},
}

// languageSection parses the body of a language section up to the next
// heading of level 2 or lower. An entry is appended only when at least one
// part of speech was found.
func (c *parseContext) languageSection(heading *wikitext.Node, nodes []wikitext.Node, entries *[]LanguageEntry) int {
	var posEntries []PosEntry

	i := 0
loop:
	for i < len(nodes) {
		node := &nodes[i]
		switch {
		case node.Kind == wikitext.KindHeading && node.Level < 3:
			break loop

		case node.Kind == wikitext.KindHeading && node.Level == 3:
			i++
			if len(node.Nodes) == 0 {
				c.warn(node, WarningEmpty)
				continue
			}
			if first := &node.Nodes[0]; isTemplate(first, "Wortart") {
				if pos, ok := c.posTemplate(first); ok {
					details := c.details(node.Nodes[1:])
					i += c.posSection(nodes[i:], pos, details, &posEntries)
				}
				continue
			}
			c.warn(node, WarningValueUnrecognized)
			continue

		case isTemplate(node, "erweitern"):
			i++
			c.warn(node, WarningSupplementary)
			continue
		}
		i++
		c.warn(node, WarningUnrecognized)
	}

	if len(posEntries) == 0 {
		c.warn(heading, WarningSectionEmpty)
	} else {
		*entries = append(*entries, LanguageEntry{Language: c.language, PosEntries: posEntries})
	}
	return i
}

// posTemplate validates {{Wortart|<part of speech>|<language>}}. The language
// must be the one of the enclosing section.
func (c *parseContext) posTemplate(node *wikitext.Node) (Pos, bool) {
	params := node.Parameters
	if len(params) != 2 || !unnamed(params) {
		c.warn(node, WarningValueUnrecognized)
		return "", false
	}

	text, ok := renderText(params[0].Value)
	pos, known := PosFromWortart(text)
	if !ok || !known {
		c.warn(&params[0], WarningValueUnrecognized)
		return "", false
	}

	name, ok := renderText(params[1].Value)
	lang, known := LanguageFromName(name)
	if !ok || !known {
		c.warn(&params[1], WarningValueUnrecognized)
		return "", false
	}
	if lang != c.language {
		c.warn(&params[1], WarningValueConflicting)
		return "", false
	}
	return pos, true
}

// details decodes the heading content after the {{Wortart}} template.
func (c *parseContext) details(nodes []wikitext.Node) []Flowing {
	var out []Flowing
	for i := range nodes {
		node := &nodes[i]
		switch node.Kind {
		case wikitext.KindItalic:
			out = append(out, Marker(FlowingItalic))
		case wikitext.KindLink:
			out = append(out, c.link(node))
		case wikitext.KindTemplate:
			out = c.detailTemplate(node, out)
		case wikitext.KindText:
			value := node.Value
			if len(out) == 0 {
				value = strings.TrimLeftFunc(value, unicode.IsSpace)
				if rest, ok := strings.CutPrefix(value, ","); ok {
					value = strings.TrimLeftFunc(rest, unicode.IsSpace)
				}
				if value == "" {
					continue
				}
			}
			out = append(out, Text(value))
		default:
			out = append(out, c.unknown(node, WarningUnrecognized))
		}
	}
	return out
}

func (c *parseContext) detailTemplate(node *wikitext.Node, out []Flowing) []Flowing {
	name, ok := renderText(node.Name)
	if !ok {
		return append(out, c.unknown(node, WarningUnrecognized))
	}
	if name == "Wortart" {
		// posTemplate has already warned when it fails.
		if pos, ok := c.posTemplate(node); ok {
			return append(out, PosMarker(pos))
		}
		return append(out, c.sourceOf(node))
	}
	if g, ok := genders[name]; ok {
		return append(out, c.simple(node, Marker(g)))
	}
	if pair, ok := genderPairs[name]; ok {
		if len(node.Parameters) != 0 {
			return append(out, c.unknown(node, WarningValueUnrecognized))
		}
		return append(out, Marker(pair[0]), Text(", "), Marker(pair[1]))
	}
	return append(out, c.unknown(node, WarningUnrecognized))
}
