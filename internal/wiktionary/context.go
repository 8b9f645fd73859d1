package wiktionary

import "github.com/heartmarshall/dewiktionary/internal/wikitext"

// WarningMessage identifies the kind of a warning.
type WarningMessage string

const (
	// WarningDuplicate marks an element that repeats something earlier in the
	// same section: a section marker, a selector or a parameter name.
	WarningDuplicate WarningMessage = "duplicate"
	// WarningEmpty marks an element missing required content.
	WarningEmpty WarningMessage = "empty"
	// WarningSectionEmpty marks a section marker not followed by its body.
	WarningSectionEmpty WarningMessage = "section_empty"
	// WarningSupplementary marks recognized content that is not represented
	// in the output. It does not indicate malformed input.
	WarningSupplementary WarningMessage = "supplementary"
	// WarningUnrecognized marks an element not valid in its position.
	WarningUnrecognized WarningMessage = "unrecognized"
	// WarningValueConflicting marks a value that contradicts earlier context,
	// for example a part-of-speech template naming another language.
	WarningValueConflicting WarningMessage = "value_conflicting"
	// WarningValueUnrecognized marks a recognized element whose parameters or
	// content are not.
	WarningValueUnrecognized WarningMessage = "value_unrecognized"
)

// WarningMessages lists every message in a stable order.
var WarningMessages = []WarningMessage{
	WarningDuplicate, WarningEmpty, WarningSectionEmpty, WarningSupplementary,
	WarningUnrecognized, WarningValueConflicting, WarningValueUnrecognized,
}

// Warning is a positioned diagnostic. Start and End are byte offsets into the
// page source.
type Warning struct {
	Start    int            `json:"start" yaml:"start"`
	End      int            `json:"end" yaml:"end"`
	Language Language       `json:"language,omitempty" yaml:"language,omitempty"`
	Message  WarningMessage `json:"message" yaml:"message"`
}

type parseContext struct {
	language Language
	warnings []Warning
	source   string
}

func (c *parseContext) warn(at wikitext.Positioned, message WarningMessage) {
	span := at.Pos()
	c.warnings = append(c.warnings, Warning{
		Start:    span.Start,
		End:      span.End,
		Language: c.language,
		Message:  message,
	})
}

// unknown warns at node and returns its source as an Unknown element.
func (c *parseContext) unknown(node *wikitext.Node, message WarningMessage) Flowing {
	return c.unknownAt(node, node, message)
}

// unknownAt warns at another position, typically a parameter of node, and
// returns the source of node as an Unknown element.
func (c *parseContext) unknownAt(node *wikitext.Node, at wikitext.Positioned, message WarningMessage) Flowing {
	c.warn(at, message)
	return c.sourceOf(node)
}

func (c *parseContext) sourceOf(node *wikitext.Node) Flowing {
	return Unknown(c.source[node.Start:node.End])
}
