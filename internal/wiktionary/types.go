package wiktionary

// Output is the result of parsing one page.
type Output struct {
	LanguageEntries []LanguageEntry `json:"language_entries,omitempty" yaml:"language_entries,omitempty"`
	Warnings        []Warning       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// LanguageEntry is the dictionary entry for one language section.
type LanguageEntry struct {
	Language   Language   `json:"language" yaml:"language"`
	PosEntries []PosEntry `json:"pos_entries,omitempty" yaml:"pos_entries,omitempty"`
}

// PosEntry is the entry for one part of speech within a language section.
type PosEntry struct {
	Pos     Pos       `json:"pos" yaml:"pos"`
	Details []Flowing `json:"details,omitempty" yaml:"details,omitempty"`

	Abbreviations           [][]Flowing `json:"abbreviations,omitempty" yaml:"abbreviations,omitempty"`
	AffectionateForms       [][]Flowing `json:"affectionate_forms,omitempty" yaml:"affectionate_forms,omitempty"`
	Antonyms                [][]Flowing `json:"antonyms,omitempty" yaml:"antonyms,omitempty"`
	CompoundWords           [][]Flowing `json:"compound_words,omitempty" yaml:"compound_words,omitempty"`
	Definitions             [][]Flowing `json:"definitions,omitempty" yaml:"definitions,omitempty"`
	Diminutives             [][]Flowing `json:"diminutives,omitempty" yaml:"diminutives,omitempty"`
	Etymology               [][]Flowing `json:"etymology,omitempty" yaml:"etymology,omitempty"`
	FeminineForms           [][]Flowing `json:"feminine_forms,omitempty" yaml:"feminine_forms,omitempty"`
	Hypernyms               [][]Flowing `json:"hypernyms,omitempty" yaml:"hypernyms,omitempty"`
	Hyphenation             [][]Flowing `json:"hyphenation,omitempty" yaml:"hyphenation,omitempty"`
	Hyponyms                [][]Flowing `json:"hyponyms,omitempty" yaml:"hyponyms,omitempty"`
	Idioms                  [][]Flowing `json:"idioms,omitempty" yaml:"idioms,omitempty"`
	MasculineForms          [][]Flowing `json:"masculine_forms,omitempty" yaml:"masculine_forms,omitempty"`
	NoLongerValidSpellings  [][]Flowing `json:"no_longer_valid_spellings,omitempty" yaml:"no_longer_valid_spellings,omitempty"`
	Proverbs                [][]Flowing `json:"proverbs,omitempty" yaml:"proverbs,omitempty"`
	RelatedWords            [][]Flowing `json:"related_words,omitempty" yaml:"related_words,omitempty"`
	ShortForms              [][]Flowing `json:"short_forms,omitempty" yaml:"short_forms,omitempty"`
	SimilarWords            [][]Flowing `json:"similar_words,omitempty" yaml:"similar_words,omitempty"`
	Symbols                 [][]Flowing `json:"symbols,omitempty" yaml:"symbols,omitempty"`
	Synonyms                [][]Flowing `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	TypicalWordCombinations [][]Flowing `json:"typical_word_combinations,omitempty" yaml:"typical_word_combinations,omitempty"`
	Variants                [][]Flowing `json:"variants,omitempty" yaml:"variants,omitempty"`

	Audio  []Flowing `json:"audio,omitempty" yaml:"audio,omitempty"`
	Ipa    []Flowing `json:"ipa,omitempty" yaml:"ipa,omitempty"`
	Rhymes []Flowing `json:"rhymes,omitempty" yaml:"rhymes,omitempty"`

	Examples []Example `json:"examples,omitempty" yaml:"examples,omitempty"`
	Overview *Overview `json:"overview,omitempty" yaml:"overview,omitempty"`
}

// Example is a usage example with its optional German translation.
type Example struct {
	Example     []Flowing `json:"example,omitempty" yaml:"example,omitempty"`
	Translation []Flowing `json:"translation,omitempty" yaml:"translation,omitempty"`
}

// Overview carries the parameters of an inflection overview template with
// minimal interpretation.
type Overview struct {
	Name              string            `json:"name" yaml:"name"`
	NamedParameters   map[string]string `json:"named_parameters,omitempty" yaml:"named_parameters,omitempty"`
	UnnamedParameters [][]Flowing       `json:"unnamed_parameters,omitempty" yaml:"unnamed_parameters,omitempty"`
}

// HasEntries reports whether any language entry was produced.
func (o *Output) HasEntries() bool { return len(o.LanguageEntries) > 0 }

// PosCount returns the number of part-of-speech entries over all languages.
func (o *Output) PosCount() int {
	n := 0
	for _, le := range o.LanguageEntries {
		n += len(le.PosEntries)
	}
	return n
}

// Stats counts the warnings per message.
func (o *Output) Stats() map[WarningMessage]int {
	stats := make(map[WarningMessage]int, len(WarningMessages))
	for _, w := range o.Warnings {
		stats[w.Message]++
	}
	return stats
}
