// Package wikitext defines the tokenized form of a wiki page: a flat sequence
// of positioned nodes whose nesting below the heading level is explicit and
// whose section structure is implied only by heading depth.
//
// Nodes are produced by a tokenizer (Tokenize, or an external one whose output
// is decoded with DecodePage) and are treated as read-only by consumers.
package wikitext

// Span is a half-open byte range [Start, End) into the page source.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Pos returns the span itself so that nodes, parameters and list items can all
// be positioned through one interface.
func (s Span) Pos() Span { return s }

// Positioned is implemented by everything that carries a Span.
type Positioned interface {
	Pos() Span
}

// Kind identifies the type of a node.
type Kind string

const (
	KindBold            Kind = "bold"
	KindCharacterEntity Kind = "character_entity"
	KindComment         Kind = "comment"
	KindDefinitionList  Kind = "definition_list"
	KindEndTag          Kind = "end_tag"
	KindHeading         Kind = "heading"
	KindItalic          Kind = "italic"
	KindLink            Kind = "link"
	KindOrderedList     Kind = "ordered_list"
	KindParagraphBreak  Kind = "paragraph_break"
	KindStartTag        Kind = "start_tag"
	KindTag             Kind = "tag"
	KindTemplate        Kind = "template"
	KindText            Kind = "text"
	KindUnorderedList   Kind = "unordered_list"
)

var knownKinds = map[Kind]bool{
	KindBold: true, KindCharacterEntity: true, KindComment: true, KindDefinitionList: true,
	KindEndTag: true, KindHeading: true, KindItalic: true, KindLink: true, KindOrderedList: true,
	KindParagraphBreak: true, KindStartTag: true, KindTag: true, KindTemplate: true,
	KindText: true, KindUnorderedList: true,
}

// Valid reports whether k is one of the known node kinds.
func (k Kind) Valid() bool { return knownKinds[k] }

// Node is a single element of a tokenized page. Which fields are meaningful
// depends on Kind:
//
//	heading          Level, Nodes
//	template         Name, Parameters
//	tag              TagName, Nodes (content, may be empty)
//	start_tag        TagName
//	end_tag          TagName
//	link             Target, Text
//	text, comment    Value
//	character_entity Character
//	*_list           Items
type Node struct {
	Span
	Kind       Kind        `json:"type"`
	Level      int         `json:"level,omitempty"`
	Nodes      []Node      `json:"nodes,omitempty"`
	Name       []Node      `json:"name,omitempty"`
	TagName    string      `json:"tag_name,omitempty"`
	Parameters []Parameter `json:"parameters,omitempty"`
	Items      []ListItem  `json:"items,omitempty"`
	Value      string      `json:"value,omitempty"`
	Character  string      `json:"character,omitempty"`
	Target     string      `json:"target,omitempty"`
	Text       []Node      `json:"text,omitempty"`
}

// Parameter is one template parameter. Name is nil for unnamed parameters.
type Parameter struct {
	Span
	Name  []Node `json:"name,omitempty"`
	Value []Node `json:"value"`
}

// Named reports whether the parameter was written as name=value.
func (p Parameter) Named() bool { return p.Name != nil }

// ItemKind is the marker kind of a list item.
type ItemKind string

const (
	// ItemDetails is a definition list item introduced by ':'.
	ItemDetails ItemKind = "details"
	// ItemTerm is a definition list item introduced by ';'.
	ItemTerm ItemKind = "term"
	// ItemOrdinary is an item of an ordered or unordered list.
	ItemOrdinary ItemKind = "ordinary"
)

// ListItem is one item of a list node.
type ListItem struct {
	Span
	Kind  ItemKind `json:"type"`
	Nodes []Node   `json:"nodes"`
}
