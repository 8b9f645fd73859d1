package wiktionary

import (
	"strings"

	"github.com/heartmarshall/dewiktionary/internal/wikitext"
)

// builder writes wiki text while constructing the matching nodes, so that
// every span in a test page points at the text it was built from.
type builder struct {
	sb strings.Builder
}

func (b *builder) offset() int   { return b.sb.Len() }
func (b *builder) write(s string) { b.sb.WriteString(s) }

func (b *builder) span(start int) wikitext.Span {
	return wikitext.Span{Start: start, End: b.offset()}
}

type (
	piece func(*builder) wikitext.Node
	param func(*builder) wikitext.Parameter
	item  func(*builder) wikitext.ListItem
)

func (b *builder) all(pieces []piece) []wikitext.Node {
	var nodes []wikitext.Node
	for _, p := range pieces {
		nodes = append(nodes, p(b))
	}
	return nodes
}

// page renders pieces one per line and returns the source with its nodes.
func page(pieces ...piece) (string, []wikitext.Node) {
	b := &builder{}
	var nodes []wikitext.Node
	for _, p := range pieces {
		nodes = append(nodes, p(b))
		b.write("\n")
	}
	return b.sb.String(), nodes
}

func text(s string) piece {
	return func(b *builder) wikitext.Node {
		start := b.offset()
		b.write(s)
		return wikitext.Node{Span: b.span(start), Kind: wikitext.KindText, Value: s}
	}
}

func leaf(kind wikitext.Kind, src string) piece {
	return func(b *builder) wikitext.Node {
		start := b.offset()
		b.write(src)
		return wikitext.Node{Span: b.span(start), Kind: kind}
	}
}

var (
	italic = leaf(wikitext.KindItalic, "''")
	bold   = leaf(wikitext.KindBold, "'''")
)

func comment(s string) piece {
	return func(b *builder) wikitext.Node {
		n := leaf(wikitext.KindComment, "<!--"+s+"-->")(b)
		n.Value = s
		return n
	}
}

func entity(src, char string) piece {
	return func(b *builder) wikitext.Node {
		n := leaf(wikitext.KindCharacterEntity, src)(b)
		n.Character = char
		return n
	}
}

func startTag(name string) piece {
	return func(b *builder) wikitext.Node {
		n := leaf(wikitext.KindStartTag, "<"+name+">")(b)
		n.TagName = name
		return n
	}
}

func endTag(name string) piece {
	return func(b *builder) wikitext.Node {
		n := leaf(wikitext.KindEndTag, "</"+name+">")(b)
		n.TagName = name
		return n
	}
}

func ref(content string) piece {
	return func(b *builder) wikitext.Node {
		start := b.offset()
		b.write("<ref>")
		children := b.all([]piece{text(content)})
		b.write("</ref>")
		return wikitext.Node{Span: b.span(start), Kind: wikitext.KindTag, TagName: "ref", Nodes: children}
	}
}

func link(target string, display ...piece) piece {
	return func(b *builder) wikitext.Node {
		start := b.offset()
		b.write("[[" + target + "|")
		children := b.all(display)
		b.write("]]")
		return wikitext.Node{Span: b.span(start), Kind: wikitext.KindLink, Target: target, Text: children}
	}
}

func tmpl(name string, params ...param) piece {
	return func(b *builder) wikitext.Node {
		start := b.offset()
		b.write("{{")
		n := wikitext.Node{Kind: wikitext.KindTemplate, Name: b.all([]piece{text(name)})}
		for _, p := range params {
			b.write("|")
			n.Parameters = append(n.Parameters, p(b))
		}
		b.write("}}")
		n.Span = b.span(start)
		return n
	}
}

func arg(value ...piece) param {
	return func(b *builder) wikitext.Parameter {
		start := b.offset()
		v := b.all(value)
		return wikitext.Parameter{Span: b.span(start), Value: v}
	}
}

func named(name string, value ...piece) param {
	return func(b *builder) wikitext.Parameter {
		start := b.offset()
		n := b.all([]piece{text(name)})
		b.write("=")
		v := b.all(value)
		return wikitext.Parameter{Span: b.span(start), Name: n, Value: v}
	}
}

func heading(level int, children ...piece) piece {
	return func(b *builder) wikitext.Node {
		start := b.offset()
		marks := strings.Repeat("=", level)
		b.write(marks)
		nodes := b.all(children)
		b.write(marks)
		return wikitext.Node{Span: b.span(start), Kind: wikitext.KindHeading, Level: level, Nodes: nodes}
	}
}

func list(kind wikitext.Kind, items []item) piece {
	return func(b *builder) wikitext.Node {
		start := b.offset()
		n := wikitext.Node{Kind: kind}
		for i, it := range items {
			if i > 0 {
				b.write("\n")
			}
			n.Items = append(n.Items, it(b))
		}
		n.Span = b.span(start)
		return n
	}
}

func dl(items ...item) piece { return list(wikitext.KindDefinitionList, items) }
func ul(items ...item) piece { return list(wikitext.KindUnorderedList, items) }

func listItem(kind wikitext.ItemKind, marker string, children []piece) item {
	return func(b *builder) wikitext.ListItem {
		start := b.offset()
		b.write(marker)
		nodes := b.all(children)
		return wikitext.ListItem{Span: b.span(start), Kind: kind, Nodes: nodes}
	}
}

func dd(children ...piece) item { return listItem(wikitext.ItemDetails, ":", children) }
func dt(children ...piece) item { return listItem(wikitext.ItemTerm, ";", children) }
func li(children ...piece) item { return listItem(wikitext.ItemOrdinary, "*", children) }

func languageHeading(title, language string) piece {
	return heading(2, text(title+" ("), tmpl("Sprache", arg(text(language))), text(")"))
}

func posHeading(wortart, language string, extra ...piece) piece {
	return heading(3, append([]piece{tmpl("Wortart", arg(text(wortart)), arg(text(language)))}, extra...)...)
}

// countMessages counts the warnings with the given message.
func countMessages(out Output, message WarningMessage) int {
	return out.Stats()[message]
}

// findNode returns the first node, in depth-first order, for which match
// returns true.
func findNode(nodes []wikitext.Node, match func(*wikitext.Node) bool) *wikitext.Node {
	for i := range nodes {
		n := &nodes[i]
		if match(n) {
			return n
		}
		children := [][]wikitext.Node{n.Nodes, n.Name, n.Text}
		for _, p := range n.Parameters {
			children = append(children, p.Name, p.Value)
		}
		for _, it := range n.Items {
			children = append(children, it.Nodes)
		}
		for _, c := range children {
			if found := findNode(c, match); found != nil {
				return found
			}
		}
	}
	return nil
}

func templateNamed(name string) func(*wikitext.Node) bool {
	return func(n *wikitext.Node) bool { return isTemplate(n, name) }
}
