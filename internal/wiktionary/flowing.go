package wiktionary

// FlowingType identifies the variant of a Flowing element.
type FlowingType string

const (
	FlowingAudio             FlowingType = "audio"
	FlowingBold              FlowingType = "bold"
	FlowingComment           FlowingType = "comment"
	FlowingCommonGender      FlowingType = "common_gender"
	FlowingComparative       FlowingType = "comparative"
	FlowingEmptyAudio        FlowingType = "empty_audio"
	FlowingFeminineGender    FlowingType = "feminine_gender"
	FlowingGenitive          FlowingType = "genitive"
	FlowingIpa               FlowingType = "ipa"
	FlowingItalic            FlowingType = "italic"
	FlowingLanguage          FlowingType = "language"
	FlowingLanguageAdjective FlowingType = "language_adjective"
	FlowingLink              FlowingType = "link"
	FlowingList              FlowingType = "list"
	FlowingMasculineGender   FlowingType = "masculine_gender"
	FlowingNeuterGender      FlowingType = "neuter_gender"
	FlowingNoPlural          FlowingType = "no_plural"
	FlowingPastParticiple    FlowingType = "past_participle"
	FlowingPlural            FlowingType = "plural"
	FlowingPlural1           FlowingType = "plural1"
	FlowingPlural2           FlowingType = "plural2"
	FlowingPlural3           FlowingType = "plural3"
	FlowingPlural4           FlowingType = "plural4"
	FlowingPos               FlowingType = "pos"
	FlowingPreterite         FlowingType = "preterite"
	FlowingQualityControl    FlowingType = "quality_control"
	FlowingReference         FlowingType = "reference"
	FlowingRhyme             FlowingType = "rhyme"
	FlowingSuperlative       FlowingType = "superlative"
	FlowingSuperscriptEnd    FlowingType = "superscript_end"
	FlowingSuperscriptStart  FlowingType = "superscript_start"
	FlowingTerm              FlowingType = "term"
	FlowingText              FlowingType = "text"
	FlowingUnknown           FlowingType = "unknown"
)

// Flowing is one element of a sequence that mixes text, formatting toggles
// and recognized templates. Only the fields belonging to Type are set:
//
//	audio              FileName, Label, Language
//	ipa                Ipa
//	language,
//	language_adjective Language
//	link               Target, Text
//	list               Items
//	pos                Pos
//	rhyme              Rhyme
//	term               Language, Term, Transliteration
//	text, unknown      Value
//
// All other variants carry no payload.
type Flowing struct {
	Type            FlowingType `json:"type" yaml:"type"`
	Value           string      `json:"value,omitempty" yaml:"value,omitempty"`
	FileName        string      `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	Label           string      `json:"label,omitempty" yaml:"label,omitempty"`
	Language        string      `json:"language,omitempty" yaml:"language,omitempty"`
	Target          string      `json:"target,omitempty" yaml:"target,omitempty"`
	Text            string      `json:"text,omitempty" yaml:"text,omitempty"`
	Ipa             string      `json:"ipa,omitempty" yaml:"ipa,omitempty"`
	Rhyme           string      `json:"rhyme,omitempty" yaml:"rhyme,omitempty"`
	Term            string      `json:"term,omitempty" yaml:"term,omitempty"`
	Transliteration string      `json:"transliteration,omitempty" yaml:"transliteration,omitempty"`
	Pos             Pos         `json:"pos,omitempty" yaml:"pos,omitempty"`
	Items           [][]Flowing `json:"items,omitempty" yaml:"items,omitempty"`
}

// Marker returns a payload-free element such as Bold or Plural.
func Marker(t FlowingType) Flowing { return Flowing{Type: t} }

// Text returns a plain text element.
func Text(value string) Flowing { return Flowing{Type: FlowingText, Value: value} }

// Unknown returns an element carrying unrecognized source verbatim.
func Unknown(value string) Flowing { return Flowing{Type: FlowingUnknown, Value: value} }

// Link returns an internal link to target displayed as text.
func Link(target, text string) Flowing {
	return Flowing{Type: FlowingLink, Target: target, Text: text}
}

// Audio returns a pronunciation recording.
func Audio(fileName, label, language string) Flowing {
	return Flowing{Type: FlowingAudio, FileName: fileName, Label: label, Language: language}
}

// Ipa returns an IPA transcription.
func Ipa(ipa string) Flowing { return Flowing{Type: FlowingIpa, Ipa: ipa} }

// Rhyme returns a rhyme reference.
func Rhyme(rhyme string) Flowing { return Flowing{Type: FlowingRhyme, Rhyme: rhyme} }

// LanguageRef returns a reference to the language with the given code.
func LanguageRef(code string) Flowing { return Flowing{Type: FlowingLanguage, Language: code} }

// LanguageAdjective returns the adjective form of a language or region code.
func LanguageAdjective(code string) Flowing {
	return Flowing{Type: FlowingLanguageAdjective, Language: code}
}

// PosMarker returns a part-of-speech reference.
func PosMarker(p Pos) Flowing { return Flowing{Type: FlowingPos, Pos: p} }

// Term returns a term in another language, optionally transliterated.
func Term(language, term, transliteration string) Flowing {
	return Flowing{Type: FlowingTerm, Language: language, Term: term, Transliteration: transliteration}
}

// List returns a nested unordered list.
func List(items [][]Flowing) Flowing { return Flowing{Type: FlowingList, Items: items} }

// PlainText concatenates the text-bearing elements of seq, dropping markup
// toggles. Links contribute their display text, terms their term.
func PlainText(seq []Flowing) string {
	var n int
	for _, f := range seq {
		n += len(f.Value) + len(f.Text) + len(f.Term)
	}
	buf := make([]byte, 0, n)
	for _, f := range seq {
		switch f.Type {
		case FlowingText:
			buf = append(buf, f.Value...)
		case FlowingLink:
			buf = append(buf, f.Text...)
		case FlowingTerm:
			buf = append(buf, f.Term...)
		}
	}
	return string(buf)
}
