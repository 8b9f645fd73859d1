package wiktionary

import (
	"strings"

	"github.com/heartmarshall/dewiktionary/internal/wikitext"
)

const nbsp = "\u00a0"

// flatList is the classifier shared by all sections that are plain lists of
// flowing items.
func (c *parseContext) flatList(item *wikitext.ListItem) ([]Flowing, bool) {
	if len(item.Nodes) == 0 {
		c.warn(item, WarningEmpty)
		return nil, false
	}
	return c.listItem(item.Nodes, true), true
}

// listItem decodes the content of one list item. Nested unordered lists are
// decoded only when allowList is set.
func (c *parseContext) listItem(nodes []wikitext.Node, allowList bool) []Flowing {
	out := make([]Flowing, 0, len(nodes))
	for i := range nodes {
		node := &nodes[i]
		switch {
		case node.Kind == wikitext.KindBold:
			out = append(out, Marker(FlowingBold))
		case node.Kind == wikitext.KindItalic:
			out = append(out, Marker(FlowingItalic))
		case node.Kind == wikitext.KindCharacterEntity && node.Character == nbsp:
			out = append(out, Text(nbsp))
		case node.Kind == wikitext.KindComment:
			c.warn(node, WarningSupplementary)
			out = append(out, Marker(FlowingComment))
		case node.Kind == wikitext.KindStartTag && node.TagName == "sup":
			out = append(out, Marker(FlowingSuperscriptStart))
		case node.Kind == wikitext.KindEndTag && node.TagName == "sup":
			out = append(out, Marker(FlowingSuperscriptEnd))
		case node.Kind == wikitext.KindLink:
			out = append(out, c.link(node))
		case node.Kind == wikitext.KindTag && node.TagName == "ref":
			c.warn(node, WarningSupplementary)
			out = append(out, Marker(FlowingReference))
		case node.Kind == wikitext.KindTemplate:
			out = append(out, c.listTemplate(node))
		case node.Kind == wikitext.KindText:
			out = append(out, Text(node.Value))
		case node.Kind == wikitext.KindUnorderedList && allowList:
			if l, ok := c.nestedList(node); ok {
				out = append(out, l)
			}
		default:
			out = append(out, c.unknown(node, WarningUnrecognized))
		}
	}
	return out
}

func (c *parseContext) nestedList(node *wikitext.Node) (Flowing, bool) {
	var items [][]Flowing
	for i := range node.Items {
		item := &node.Items[i]
		if len(item.Nodes) == 0 {
			c.warn(item, WarningEmpty)
			continue
		}
		items = append(items, c.listItem(item.Nodes, false))
	}
	if len(items) == 0 {
		return Flowing{}, false
	}
	return List(items), true
}

func (c *parseContext) listTemplate(node *wikitext.Node) Flowing {
	name, ok := renderText(node.Name)
	if !ok {
		return c.unknown(node, WarningUnrecognized)
	}
	switch name {
	case "QS Herkunft", "QS_Herkunft":
		c.warn(node, WarningSupplementary)
		return Marker(FlowingQualityControl)
	case "Wortbildung":
		return c.wortbildung(node)
	case "Ü":
		return c.term(node, false)
	case "Üt":
		return c.term(node, true)
	}
	if code, ok := strings.CutSuffix(name, "."); ok {
		if _, known := languageAdjectiveCodes[code]; known {
			return c.simple(node, LanguageAdjective(code))
		}
	}
	if _, known := languageCodes[name]; known {
		return c.simple(node, LanguageRef(name))
	}
	if t, known := simpleMarkers[name]; known {
		return c.simple(node, Marker(t))
	}
	return c.unknown(node, WarningUnrecognized)
}

func (c *parseContext) wortbildung(node *wikitext.Node) Flowing {
	if len(node.Parameters) == 1 && !node.Parameters[0].Named() {
		if text, ok := renderText(node.Parameters[0].Value); ok {
			if p, known := wortbildungen[text]; known {
				return PosMarker(p)
			}
		}
	}
	return c.unknown(node, WarningValueUnrecognized)
}

// term decodes {{Ü|language|term}} and {{Üt|language|term|transliteration}}.
func (c *parseContext) term(node *wikitext.Node, transliterated bool) Flowing {
	arity := 2
	if transliterated {
		arity = 3
	}
	if len(node.Parameters) != arity || !unnamed(node.Parameters) {
		return c.unknown(node, WarningValueUnrecognized)
	}
	var values [3]string
	for i := range node.Parameters {
		p := &node.Parameters[i]
		v, ok := renderNonEmptyText(p.Value)
		if !ok {
			return c.unknownAt(node, p, WarningValueUnrecognized)
		}
		values[i] = v
	}
	return Term(values[0], values[1], values[2])
}
