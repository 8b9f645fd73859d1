// Package wiktionary turns a tokenized German Wiktionary page into structured
// dictionary entries.
//
// The page is walked as a flat node sequence. Heading depth implies the
// section structure: level 2 opens a language section, level 3 a part of
// speech, and template markers within a part of speech introduce its
// sections. Everything that is not understood is reported as a positioned
// Warning instead of failing the parse.
package wiktionary

import (
	"strings"

	"github.com/heartmarshall/dewiktionary/internal/wikitext"
)

// Parse extracts the entries of one page. source is the wiki text the node
// spans refer to. Parse never fails and keeps no state between calls.
func Parse(title, source string, nodes []wikitext.Node) Output {
	c := &parseContext{source: source}
	var entries []LanguageEntry

	i := 0
	for i < len(nodes) {
		node := &nodes[i]
		if node.Kind == wikitext.KindHeading {
			if node.Level < 2 {
				c.warn(node, WarningUnrecognized)
				break
			}
			if node.Level == 2 {
				i++
				i += c.languageHeading(title, node, nodes[i:], &entries)
				continue
			}
		}
		i++
		c.warn(node, WarningUnrecognized)
	}

	return Output{LanguageEntries: entries, Warnings: c.warnings}
}

// ParsePage is Parse for a tokenized page.
func ParsePage(p wikitext.Page) Output {
	return Parse(p.Title, p.WikiText, p.Nodes)
}

// languageHeading validates a "Title ({{Sprache|Name}})" heading and, for a
// known language, parses the section that follows it.
func (c *parseContext) languageHeading(title string, heading *wikitext.Node, rest []wikitext.Node, entries *[]LanguageEntry) int {
	param, ok := spracheParameter(title, heading)
	if !ok {
		c.warn(heading, WarningValueUnrecognized)
		return 0
	}
	name, ok := renderText(param.Value)
	if !ok {
		c.warn(heading, WarningValueUnrecognized)
		return 0
	}
	lang, ok := LanguageFromName(name)
	if !ok {
		c.warn(param, WarningValueUnrecognized)
		return 0
	}

	c.language = lang
	n := c.languageSection(heading, rest, entries)
	c.language = LanguageNone
	return n
}

func spracheParameter(title string, heading *wikitext.Node) (*wikitext.Parameter, bool) {
	children := heading.Nodes
	if len(children) != 3 ||
		children[0].Kind != wikitext.KindText ||
		children[1].Kind != wikitext.KindTemplate ||
		children[2].Kind != wikitext.KindText || children[2].Value != ")" {
		return nil, false
	}
	prefix := children[0].Value
	if len(prefix) != len(title)+2 || !strings.HasPrefix(prefix, title) || !strings.HasSuffix(prefix, " (") {
		return nil, false
	}
	tmpl := &children[1]
	if !textEquals(tmpl.Name, "Sprache") || len(tmpl.Parameters) != 1 || tmpl.Parameters[0].Named() {
		return nil, false
	}
	return &tmpl.Parameters[0], true
}
