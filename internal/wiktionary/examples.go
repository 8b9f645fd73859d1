package wiktionary

import "github.com/heartmarshall/dewiktionary/internal/wikitext"

// example classifies one item of the Beispiele section. A nested definition
// list with a single details item is the translation; anything after it is
// discarded.
func (c *parseContext) example(item *wikitext.ListItem) (Example, bool) {
	var ex Example
	hasText := false

	for i := 0; i < len(item.Nodes); i++ {
		node := &item.Nodes[i]
		switch {
		case node.Kind == wikitext.KindItalic:
			ex.Example = append(ex.Example, Marker(FlowingItalic))
		case node.Kind == wikitext.KindTag && node.TagName == "ref":
			c.warn(node, WarningSupplementary)
			ex.Example = append(ex.Example, Marker(FlowingReference))
		case node.Kind == wikitext.KindText:
			hasText = true
			ex.Example = append(ex.Example, Text(node.Value))
		case node.Kind == wikitext.KindDefinitionList:
			ex.Translation = c.translation(node)
			for j := i + 1; j < len(item.Nodes); j++ {
				c.warn(&item.Nodes[j], WarningUnrecognized)
			}
			i = len(item.Nodes)
		default:
			ex.Example = append(ex.Example, c.unknown(node, WarningUnrecognized))
		}
	}

	if !hasText {
		c.warn(item, WarningEmpty)
		return Example{}, false
	}
	return ex, true
}

func (c *parseContext) translation(list *wikitext.Node) []Flowing {
	if len(list.Items) != 1 || list.Items[0].Kind != wikitext.ItemDetails {
		c.warn(list, WarningValueUnrecognized)
		return nil
	}
	item := &list.Items[0]
	if len(item.Nodes) == 0 {
		c.warn(item, WarningEmpty)
		return nil
	}
	return c.italicText(item.Nodes)
}

// italicText keeps italic toggles and text; everything else is unrecognized.
func (c *parseContext) italicText(nodes []wikitext.Node) []Flowing {
	out := make([]Flowing, 0, len(nodes))
	for i := range nodes {
		node := &nodes[i]
		switch node.Kind {
		case wikitext.KindItalic:
			out = append(out, Marker(FlowingItalic))
		case wikitext.KindText:
			out = append(out, Text(node.Value))
		default:
			out = append(out, c.unknown(node, WarningUnrecognized))
		}
	}
	return out
}
