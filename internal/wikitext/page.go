package wikitext

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidSpan is returned when a decoded node lies outside the page source
// or has an unknown kind.
var ErrInvalidSpan = errors.New("invalid node span")

// Page is one tokenized wiki page.
type Page struct {
	Title    string `json:"title"`
	WikiText string `json:"wiki_text"`
	Nodes    []Node `json:"nodes,omitempty"`
}

// Tokenized reports whether the page carries nodes.
func (p Page) Tokenized() bool { return p.Nodes != nil }

// ParsePage tokenizes src and wraps it together with the title.
func ParsePage(title, src string) Page {
	return Page{Title: title, WikiText: src, Nodes: Tokenize(src)}
}

// DecodePage reads one JSON page from r. When the page has no nodes, the wiki
// text is tokenized. Decoded nodes are validated against the source length.
func DecodePage(r io.Reader) (Page, error) {
	var p Page
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Page{}, fmt.Errorf("decode page: %w", err)
	}
	if err := p.Normalize(); err != nil {
		return Page{}, err
	}
	return p, nil
}

// UnmarshalPage decodes a page from a single JSON document, for example one
// line of a JSONL dump.
func UnmarshalPage(data []byte) (Page, error) {
	var p Page
	if err := json.Unmarshal(data, &p); err != nil {
		return Page{}, fmt.Errorf("decode page: %w", err)
	}
	if err := p.Normalize(); err != nil {
		return Page{}, err
	}
	return p, nil
}

// Normalize tokenizes an untokenized page and validates the spans of a
// tokenized one.
func (p *Page) Normalize() error {
	if !p.Tokenized() {
		p.Nodes = Tokenize(p.WikiText)
		return nil
	}
	return Validate(p.WikiText, p.Nodes)
}

// Validate checks that every node, parameter and list item has a known kind
// and a span inside src.
func Validate(src string, nodes []Node) error {
	return validateNodes(len(src), nodes, "nodes")
}

func validateNodes(size int, nodes []Node, path string) error {
	for i := range nodes {
		n := &nodes[i]
		at := fmt.Sprintf("%s[%d]", path, i)
		if !n.Kind.Valid() {
			return fmt.Errorf("%s: unknown kind %q: %w", at, n.Kind, ErrInvalidSpan)
		}
		if err := validateSpan(size, n.Span, at); err != nil {
			return err
		}
		for _, child := range []struct {
			name  string
			nodes []Node
		}{{"nodes", n.Nodes}, {"name", n.Name}, {"text", n.Text}} {
			if err := validateNodes(size, child.nodes, at+"."+child.name); err != nil {
				return err
			}
		}
		for j, p := range n.Parameters {
			pat := fmt.Sprintf("%s.parameters[%d]", at, j)
			if err := validateSpan(size, p.Span, pat); err != nil {
				return err
			}
			if err := validateNodes(size, p.Name, pat+".name"); err != nil {
				return err
			}
			if err := validateNodes(size, p.Value, pat+".value"); err != nil {
				return err
			}
		}
		for j, item := range n.Items {
			iat := fmt.Sprintf("%s.items[%d]", at, j)
			if err := validateSpan(size, item.Span, iat); err != nil {
				return err
			}
			if err := validateNodes(size, item.Nodes, iat+".nodes"); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateSpan(size int, s Span, at string) error {
	if s.Start < 0 || s.Start > s.End || s.End > size {
		return fmt.Errorf("%s: span [%d,%d) outside source of %d bytes: %w", at, s.Start, s.End, size, ErrInvalidSpan)
	}
	return nil
}
