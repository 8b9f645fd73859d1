package wikitext

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Tokenize splits src into nodes. It understands the subset of wiki markup
// found on German Wiktionary entry pages: headings, templates, line-start
// lists, bold/italic toggles, links, comments, tags and character entities.
// Tokenize never fails; markup that is not closed is kept as text.
func Tokenize(src string) []Node {
	t := &tokenizer{src: src}
	return t.blocks()
}

type tokenizer struct {
	src string
}

// extensionTags hold content that is not further tokenized as markup
// (except ref, whose content is tokenized inline).
var extensionTags = map[string]bool{
	"gallery": true, "math": true, "nowiki": true, "poem": true, "pre": true,
	"ref": true, "references": true,
}

var htmlTags = map[string]bool{
	"b": true, "big": true, "blockquote": true, "br": true, "center": true, "code": true,
	"del": true, "div": true, "i": true, "ins": true, "p": true, "s": true, "small": true,
	"span": true, "sub": true, "sup": true, "tt": true, "u": true,
}

var namedEntities = map[string]string{
	"nbsp": "\u00a0", "amp": "&", "lt": "<", "gt": ">", "quot": "\"", "apos": "'",
	"ndash": "–", "mdash": "—", "thinsp": "\u2009", "shy": "\u00ad", "hellip": "…",
	"minus": "−", "times": "×", "middot": "·", "deg": "°", "rarr": "→", "larr": "←",
	"auml": "ä", "ouml": "ö", "uuml": "ü", "Auml": "Ä", "Ouml": "Ö", "Uuml": "Ü",
	"szlig": "ß", "euro": "€", "sect": "§", "laquo": "«", "raquo": "»", "bdquo": "„",
	"ldquo": "“", "rdquo": "”", "lsquo": "‘", "rsquo": "’", "sbquo": "‚",
	"zwj": "\u200d", "zwnj": "\u200c",
}

// ---------------------------------------------------------------------------
// Block level
// ---------------------------------------------------------------------------

type listLine struct {
	start   int // first marker
	markEnd int // end of the marker run
	end     int // end of content, trailing whitespace excluded
}

func (t *tokenizer) blocks() []Node {
	var out []Node
	pos := 0
	lastParagraph := false
	blankStart := -1

	for pos < len(t.src) {
		end := t.lineEnd(pos)
		line := t.src[pos:end]

		switch {
		case strings.TrimSpace(line) == "":
			if blankStart < 0 {
				blankStart = pos
			}
			pos = next(end, len(t.src))
			continue

		case line[0] == '=':
			if h, ok := t.heading(pos, end); ok {
				out = append(out, h)
				lastParagraph = false
				blankStart = -1
				pos = next(end, len(t.src))
				continue
			}

		case isListMarker(line[0]):
			var lines []listLine
			for pos < len(t.src) && isListMarker(t.src[pos]) {
				end = t.lineEnd(pos)
				markEnd := pos
				for markEnd < end && isListMarker(t.src[markEnd]) {
					markEnd++
				}
				lines = append(lines, listLine{start: pos, markEnd: markEnd, end: trimRight(t.src, markEnd, end)})
				pos = next(end, len(t.src))
			}
			for len(lines) > 0 {
				n, used := t.list(lines, 0)
				out = append(out, n)
				lines = lines[used:]
			}
			lastParagraph = false
			blankStart = -1
			continue
		}

		// Paragraph: consecutive lines until a blank line, list or heading.
		start := pos
		last := end
		pos = next(end, len(t.src))
		for pos < len(t.src) {
			end = t.lineEnd(pos)
			if t.startsBlock(pos, end) {
				break
			}
			last = end
			pos = next(end, len(t.src))
		}
		nodes := t.inline(start, trimRight(t.src, start, last))
		// A blank line between two runs of prose is a paragraph break; blank
		// lines around templates and lists are layout only.
		if lastParagraph && blankStart >= 0 && out[len(out)-1].Kind == KindText && nodes[0].Kind == KindText {
			out = append(out, Node{Span: Span{Start: blankStart, End: start}, Kind: KindParagraphBreak})
		}
		out = append(out, nodes...)
		lastParagraph = true
		blankStart = -1
	}
	return out
}

func (t *tokenizer) startsBlock(pos, end int) bool {
	line := t.src[pos:end]
	if strings.TrimSpace(line) == "" || isListMarker(line[0]) {
		return true
	}
	if line[0] == '=' {
		_, ok := t.heading(pos, end)
		return ok
	}
	return false
}

func (t *tokenizer) heading(start, end int) (Node, bool) {
	end = trimRight(t.src, start, end)
	open := 0
	for start+open < end && t.src[start+open] == '=' && open < 6 {
		open++
	}
	closing := 0
	for end-closing-1 >= start+open && t.src[end-closing-1] == '=' && closing < 6 {
		closing++
	}
	if closing == 0 {
		return Node{}, false
	}
	level := min(open, closing)
	cs, ce := trim(t.src, start+level, end-level)
	if cs > ce {
		return Node{}, false
	}
	return Node{
		Span:  Span{Start: start, End: end},
		Kind:  KindHeading,
		Level: level,
		Nodes: t.inline(cs, ce),
	}, true
}

// list builds one list node at the given marker depth and reports how many
// lines it consumed.
func (t *tokenizer) list(lines []listLine, depth int) (Node, int) {
	first := t.src[lines[0].start+depth]
	node := Node{Span: Span{Start: lines[0].start + depth}, Kind: listKind(first)}

	i := 0
	for i < len(lines) {
		l := lines[i]
		if l.markEnd-l.start <= depth || listKind(t.src[l.start+depth]) != node.Kind {
			break
		}
		marker := t.src[l.start+depth]
		if l.markEnd-l.start == depth+1 {
			cs, ce := trim(t.src, l.markEnd, l.end)
			node.Items = append(node.Items, ListItem{
				Span:  Span{Start: l.start + depth, End: max(l.end, l.markEnd)},
				Kind:  itemKind(marker),
				Nodes: t.inline(cs, ce),
			})
			node.End = max(l.end, l.markEnd)
			i++
			continue
		}
		sub, used := t.list(lines[i:], depth+1)
		if len(node.Items) == 0 {
			node.Items = append(node.Items, ListItem{
				Span: Span{Start: l.start + depth, End: l.start + depth + 1},
				Kind: itemKind(marker),
			})
		}
		last := &node.Items[len(node.Items)-1]
		last.Nodes = append(last.Nodes, sub)
		last.End = sub.End
		node.End = sub.End
		i += used
	}
	return node, i
}

// lineEnd returns the end of the logical line starting at pos. Templates and
// comments may span physical lines.
func (t *tokenizer) lineEnd(pos int) int {
	i := pos
	for i < len(t.src) {
		switch {
		case strings.HasPrefix(t.src[i:], "{{"):
			if j := findClose(t.src, i, len(t.src), "{{", "}}"); j >= 0 {
				i = j + 2
				continue
			}
		case strings.HasPrefix(t.src[i:], "<!--"):
			if j := strings.Index(t.src[i+4:], "-->"); j >= 0 {
				i = i + 4 + j + 3
				continue
			}
		case t.src[i] == '\n':
			return i
		}
		i++
	}
	return len(t.src)
}

// ---------------------------------------------------------------------------
// Inline level
// ---------------------------------------------------------------------------

type inlineScanner struct {
	t         *tokenizer
	out       []Node
	textStart int
}

func (s *inlineScanner) flush(at int) {
	if at > s.textStart {
		s.out = append(s.out, Node{
			Span:  Span{Start: s.textStart, End: at},
			Kind:  KindText,
			Value: s.t.src[s.textStart:at],
		})
	}
}

func (s *inlineScanner) emit(n Node) {
	s.flush(n.Start)
	s.out = append(s.out, n)
	s.textStart = n.End
}

// inline tokenizes src[start:end] without block structure.
func (t *tokenizer) inline(start, end int) []Node {
	s := &inlineScanner{t: t, textStart: start}
	src := t.src
	i := start
	for i < end {
		rest := src[i:end]
		switch {
		case strings.HasPrefix(rest, "{{"):
			if j := findClose(src, i, end, "{{", "}}"); j >= 0 {
				s.emit(t.template(i, j+2))
				i = j + 2
				continue
			}

		case strings.HasPrefix(rest, "[["):
			if j := findClose(src, i, end, "[[", "]]"); j >= 0 {
				s.emit(t.link(i, j+2))
				i = j + 2
				continue
			}

		case strings.HasPrefix(rest, "<!--"):
			j := strings.Index(src[i+4:end], "-->")
			stop := end
			value := src[i+4 : end]
			if j >= 0 {
				stop = i + 4 + j + 3
				value = src[i+4 : i+4+j]
			}
			s.emit(Node{Span: Span{Start: i, End: stop}, Kind: KindComment, Value: value})
			i = stop
			continue

		case rest[0] == '<':
			if n, ok := t.tag(i, end); ok {
				s.emit(n)
				i = n.End
				continue
			}

		case strings.HasPrefix(rest, "''"):
			n := 0
			for i+n < end && src[i+n] == '\'' {
				n++
			}
			s.apostrophes(i, n)
			i += n
			continue

		case rest[0] == '&':
			if n, ok := t.entity(i, end); ok {
				s.emit(n)
				i = n.End
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(rest)
		i += size
	}
	s.flush(end)
	return s.out
}

// apostrophes handles a run of n >= 2 apostrophes starting at i.
func (s *inlineScanner) apostrophes(i, n int) {
	switch {
	case n == 2:
		s.emit(Node{Span: Span{Start: i, End: i + 2}, Kind: KindItalic})
	case n == 3:
		s.emit(Node{Span: Span{Start: i, End: i + 3}, Kind: KindBold})
	case n == 4:
		s.emit(Node{Span: Span{Start: i + 1, End: i + 4}, Kind: KindBold})
	default:
		extra := n - 5
		s.emit(Node{Span: Span{Start: i + extra, End: i + extra + 3}, Kind: KindBold})
		s.emit(Node{Span: Span{Start: i + extra + 3, End: i + n}, Kind: KindItalic})
	}
}

// template builds a template node for src[start:end], which starts with "{{"
// and ends with "}}".
func (t *tokenizer) template(start, end int) Node {
	n := Node{Span: Span{Start: start, End: end}, Kind: KindTemplate}
	segments := splitTop(t.src, start+2, end-2)

	ns, ne := trim(t.src, segments[0][0], segments[0][1])
	n.Name = t.inline(ns, ne)

	for _, seg := range segments[1:] {
		p := Parameter{Span: Span{Start: seg[0], End: seg[1]}}
		if eq := indexTop(t.src, seg[0], seg[1], '='); eq >= 0 {
			ks, ke := trim(t.src, seg[0], eq)
			vs, ve := trim(t.src, eq+1, seg[1])
			p.Name = t.inline(ks, ke)
			if p.Name == nil {
				p.Name = []Node{}
			}
			p.Value = t.inline(vs, ve)
		} else {
			p.Value = t.inline(seg[0], seg[1])
		}
		n.Parameters = append(n.Parameters, p)
	}
	return n
}

// link builds a link node for src[start:end], which starts with "[[" and ends
// with "]]".
func (t *tokenizer) link(start, end int) Node {
	n := Node{Span: Span{Start: start, End: end}, Kind: KindLink}
	inner, innerEnd := start+2, end-2
	if bar := strings.IndexByte(t.src[inner:innerEnd], '|'); bar >= 0 {
		ts, te := trim(t.src, inner, inner+bar)
		n.Target = t.src[ts:te]
		n.Text = t.inline(inner+bar+1, innerEnd)
		return n
	}
	ts, te := trim(t.src, inner, innerEnd)
	n.Target = t.src[ts:te]
	n.Text = []Node{{Span: Span{Start: ts, End: te}, Kind: KindText, Value: n.Target}}
	return n
}

// tag recognizes <name ...>, </name> and <name .../> at i.
func (t *tokenizer) tag(i, end int) (Node, bool) {
	gt := strings.IndexByte(t.src[i:end], '>')
	if gt < 0 {
		return Node{}, false
	}
	stop := i + gt + 1
	body := t.src[i+1 : stop-1]
	closing := strings.HasPrefix(body, "/")
	body = strings.TrimPrefix(body, "/")
	selfClosing := strings.HasSuffix(body, "/")
	body = strings.TrimSuffix(body, "/")

	name := body
	if sp := strings.IndexAny(body, " \t\n"); sp >= 0 {
		name = body[:sp]
	}
	name = strings.ToLower(name)
	if !extensionTags[name] && !htmlTags[name] {
		return Node{}, false
	}

	switch {
	case closing:
		return Node{Span: Span{Start: i, End: stop}, Kind: KindEndTag, TagName: name}, true
	case extensionTags[name] && selfClosing:
		return Node{Span: Span{Start: i, End: stop}, Kind: KindTag, TagName: name}, true
	case extensionTags[name]:
		endTag := "</" + name + ">"
		j := indexFold(t.src[stop:end], endTag)
		if j < 0 {
			return Node{Span: Span{Start: i, End: stop}, Kind: KindStartTag, TagName: name}, true
		}
		n := Node{Span: Span{Start: i, End: stop + j + len(endTag)}, Kind: KindTag, TagName: name}
		if name == "ref" {
			n.Nodes = t.inline(stop, stop+j)
		} else if j > 0 {
			n.Nodes = []Node{{Span: Span{Start: stop, End: stop + j}, Kind: KindText, Value: t.src[stop : stop+j]}}
		}
		return n, true
	default:
		return Node{Span: Span{Start: i, End: stop}, Kind: KindStartTag, TagName: name}, true
	}
}

// entity recognizes &name; and &#NNN; / &#xHH; at i.
func (t *tokenizer) entity(i, end int) (Node, bool) {
	semi := strings.IndexByte(t.src[i:min(end, i+12)], ';')
	if semi < 2 {
		return Node{}, false
	}
	name := t.src[i+1 : i+semi]
	span := Span{Start: i, End: i + semi + 1}
	if ch, ok := namedEntities[name]; ok {
		return Node{Span: span, Kind: KindCharacterEntity, Character: ch}, true
	}
	if !strings.HasPrefix(name, "#") {
		return Node{}, false
	}
	digits, base := name[1:], 10
	if strings.HasPrefix(digits, "x") || strings.HasPrefix(digits, "X") {
		digits, base = digits[1:], 16
	}
	code, err := strconv.ParseInt(digits, base, 32)
	if err != nil || !utf8.ValidRune(rune(code)) {
		return Node{}, false
	}
	return Node{Span: span, Kind: KindCharacterEntity, Character: string(rune(code))}, true
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// findClose returns the index of the closing token matching the opening token
// at i, or -1.
func findClose(src string, i, end int, open, close string) int {
	depth := 0
	for j := i; j+len(close) <= end; {
		switch {
		case strings.HasPrefix(src[j:], open):
			depth++
			j += len(open)
		case strings.HasPrefix(src[j:], close):
			depth--
			if depth == 0 {
				return j
			}
			j += len(close)
		default:
			j++
		}
	}
	return -1
}

// splitTop splits src[start:end] at '|' characters outside nested templates
// and links.
func splitTop(src string, start, end int) [][2]int {
	var segs [][2]int
	segStart := start
	depth := 0
	for i := start; i < end; {
		switch {
		case strings.HasPrefix(src[i:end], "{{"), strings.HasPrefix(src[i:end], "[["):
			depth++
			i += 2
		case strings.HasPrefix(src[i:end], "}}"), strings.HasPrefix(src[i:end], "]]"):
			depth--
			i += 2
		case src[i] == '|' && depth == 0:
			segs = append(segs, [2]int{segStart, i})
			segStart = i + 1
			i++
		default:
			i++
		}
	}
	return append(segs, [2]int{segStart, end})
}

// indexTop returns the index of the first c in src[start:end] outside nested
// templates and links, or -1.
func indexTop(src string, start, end int, c byte) int {
	depth := 0
	for i := start; i < end; {
		switch {
		case strings.HasPrefix(src[i:end], "{{"), strings.HasPrefix(src[i:end], "[["):
			depth++
			i += 2
		case strings.HasPrefix(src[i:end], "}}"), strings.HasPrefix(src[i:end], "]]"):
			depth--
			i += 2
		case src[i] == c && depth == 0:
			return i
		default:
			i++
		}
	}
	return -1
}

// indexFold is strings.Index with ASCII case folding.
func indexFold(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func trim(src string, start, end int) (int, int) {
	for start < end && isSpace(src[start]) {
		start++
	}
	return start, trimRight(src, start, end)
}

func trimRight(src string, start, end int) int {
	for end > start && isSpace(src[end-1]) {
		end--
	}
	return end
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isListMarker(c byte) bool {
	return c == ':' || c == ';' || c == '*' || c == '#'
}

func listKind(c byte) Kind {
	switch c {
	case '*':
		return KindUnorderedList
	case '#':
		return KindOrderedList
	default:
		return KindDefinitionList
	}
}

func itemKind(c byte) ItemKind {
	switch c {
	case ':':
		return ItemDetails
	case ';':
		return ItemTerm
	default:
		return ItemOrdinary
	}
}

func next(end, size int) int {
	if end < size {
		return end + 1
	}
	return size
}
