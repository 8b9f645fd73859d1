package wiktionary

// Pos is a part of speech.
type Pos string

const (
	PosAbbreviation   Pos = "abbreviation"
	PosAdjective      Pos = "adjective"
	PosAdverb         Pos = "adverb"
	PosCompoundWord   Pos = "compound_word"
	PosConjugatedForm Pos = "conjugated_form"
	PosConjunction    Pos = "conjunction"
	PosDeclinedForm   Pos = "declined_form"
	PosFirstName      Pos = "first_name"
	PosIdiom          Pos = "idiom"
	PosInterjection   Pos = "interjection"
	PosLastName       Pos = "last_name"
	PosLocalAdverb    Pos = "local_adverb"
	PosNoun           Pos = "noun"
	PosNumeral        Pos = "numeral"
	PosPastParticiple Pos = "past_participle"
	PosPostposition   Pos = "postposition"
	PosPreposition    Pos = "preposition"
	PosProperNoun     Pos = "proper_noun"
	PosProverb        Pos = "proverb"
	PosSymbol         Pos = "symbol"
	PosToponym        Pos = "toponym"
	PosVerb           Pos = "verb"
)

// wortarten maps the first parameter of {{Wortart}} to a part of speech.
var wortarten = map[string]Pos{
	"Abkürzung":        PosAbbreviation,
	"Adjektiv":         PosAdjective,
	"Adverb":           PosAdverb,
	"Deklinierte Form": PosDeclinedForm,
	"Eigenname":        PosProperNoun,
	"Interjektion":     PosInterjection,
	"Konjugierte Form": PosConjugatedForm,
	"Konjunktion":      PosConjunction,
	"Lokaladverb":      PosLocalAdverb,
	"Nachname":         PosLastName,
	"Numerale":         PosNumeral,
	"Postposition":     PosPostposition,
	"Präposition":      PosPreposition,
	"Redewendung":      PosIdiom,
	"Sprichwort":       PosProverb,
	"Symbol":           PosSymbol,
	"Substantiv":       PosNoun,
	"Toponym":          PosToponym,
	"Verb":             PosVerb,
	"Vorname":          PosFirstName,
	"Wortverbindung":   PosCompoundWord,
}

// wortbildungen maps the parameter of {{Wortbildung}} to a part of speech.
var wortbildungen = map[string]Pos{
	"Adj": PosAdjective, "Adje": PosAdjective, "Adjektiv": PosAdjective, "Adjektive": PosAdjective,
	"Adv": PosAdverb, "Adve": PosAdverb, "Adverb": PosAdverb, "Adverbien": PosAdverb,
	"Sub": PosNoun, "Subs": PosNoun, "Substantiv": PosNoun, "Substantive": PosNoun,
	"Ver": PosVerb, "Verb": PosVerb, "Verben": PosVerb,
}

// PosFromWortart returns the part of speech named by a {{Wortart}} value.
func PosFromWortart(name string) (Pos, bool) {
	p, ok := wortarten[name]
	return p, ok
}

// Valid reports whether p is one of the known parts of speech.
func (p Pos) Valid() bool {
	switch p {
	case PosAbbreviation, PosAdjective, PosAdverb, PosCompoundWord, PosConjugatedForm,
		PosConjunction, PosDeclinedForm, PosFirstName, PosIdiom, PosInterjection,
		PosLastName, PosLocalAdverb, PosNoun, PosNumeral, PosPastParticiple,
		PosPostposition, PosPreposition, PosProperNoun, PosProverb, PosSymbol,
		PosToponym, PosVerb:
		return true
	}
	return false
}
