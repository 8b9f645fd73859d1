package wiktionary

import (
	"strings"

	"github.com/heartmarshall/dewiktionary/internal/wikitext"
)

// renderText flattens nodes that consist only of text and character entities.
func renderText(nodes []wikitext.Node) (string, bool) {
	switch {
	case len(nodes) == 0:
		return "", true
	case len(nodes) == 1 && nodes[0].Kind == wikitext.KindText:
		return nodes[0].Value, true
	}
	var b strings.Builder
	for i := range nodes {
		switch nodes[i].Kind {
		case wikitext.KindText:
			b.WriteString(nodes[i].Value)
		case wikitext.KindCharacterEntity:
			b.WriteString(nodes[i].Character)
		default:
			return "", false
		}
	}
	return b.String(), true
}

func renderNonEmptyText(nodes []wikitext.Node) (string, bool) {
	s, ok := renderText(nodes)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func textEquals(nodes []wikitext.Node, literal string) bool {
	s, ok := renderText(nodes)
	return ok && s == literal
}

// parameterName returns the name of a named parameter whose name is exactly
// one text node.
func parameterName(p *wikitext.Parameter) (string, bool) {
	if len(p.Name) != 1 || p.Name[0].Kind != wikitext.KindText {
		return "", false
	}
	return p.Name[0].Value, true
}

func isTemplate(node *wikitext.Node, name string) bool {
	return node.Kind == wikitext.KindTemplate && textEquals(node.Name, name)
}

func unnamed(params []wikitext.Parameter) bool {
	for i := range params {
		if params[i].Named() {
			return false
		}
	}
	return true
}

func (c *parseContext) link(node *wikitext.Node) Flowing {
	text, ok := renderText(node.Text)
	if !ok {
		return c.unknown(node, WarningValueUnrecognized)
	}
	return Link(node.Target, text)
}

// simple returns element when the template has no parameters.
func (c *parseContext) simple(node *wikitext.Node, element Flowing) Flowing {
	if len(node.Parameters) != 0 {
		return c.unknown(node, WarningValueUnrecognized)
	}
	return element
}
