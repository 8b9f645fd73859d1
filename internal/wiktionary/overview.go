package wiktionary

import "github.com/heartmarshall/dewiktionary/internal/wikitext"

type overviewKey struct {
	language Language
	name     string
}

var overviewTemplates = map[overviewKey]bool{
	{LanguageDe, "Bairisch Substantiv Übersicht m"}:           true,
	{LanguageDe, "Bairisch Substantiv Übersicht n"}:           true,
	{LanguageDe, "Bairisch Verb Übersicht"}:                   true,
	{LanguageDe, "Deutsch Adjektiv Übersicht"}:                true,
	{LanguageDe, "Deutsch Adverb Übersicht"}:                  true,
	{LanguageDe, "Deutsch Eigenname Übersicht"}:               true,
	{LanguageDe, "Deutsch Nachname Übersicht"}:                true,
	{LanguageDe, "Deutsch Personalpronomen 1"}:                true,
	{LanguageDe, "Deutsch Personalpronomen 2"}:                true,
	{LanguageDe, "Deutsch Personalpronomen 3"}:                true,
	{LanguageDe, "Deutsch Personalpronomen Berliner Dialekt"}: true,
	{LanguageDe, "Deutsch Pronomen Übersicht"}:                true,
	{LanguageDe, "Deutsch Substantiv Dialekt"}:                true,
	{LanguageDe, "Deutsch Substantiv Übersicht"}:              true,
	{LanguageDe, "Deutsch Substantiv Übersicht -sch"}:         true,
	{LanguageDe, "Deutsch Toponym Übersicht"}:                 true,
	{LanguageDe, "Deutsch Verb Übersicht"}:                    true,
	{LanguageDe, "Deutsch adjektivisch Übersicht"}:            true,
	{LanguageDe, "Kardinalzahl 2-12"}:                         true,
	{LanguageDe, "Possessivpronomina-Tabelle"}:                true,
	{LanguageDe, "Pronomina-Tabelle"}:                         true,
	{LanguageEn, "Englisch Adjektiv Übersicht"}:               true,
	{LanguageEn, "Englisch Personalpronomen 2"}:               true,
	{LanguageEn, "Englisch Personalpronomen"}:                 true,
	{LanguageEn, "Englisch Substantiv Übersicht"}:             true,
	{LanguageEn, "Englisch Verb Übersicht"}:                   true,
}

// overview recognizes an inflection overview template for the active
// language. It returns false when name is not an overview template. A second
// overview in the same section clears the slot.
func (c *parseContext) overview(node *wikitext.Node, name string, slot *Section[*Overview]) bool {
	if !overviewTemplates[overviewKey{c.language, name}] {
		return false
	}
	if slot.Present {
		slot.reset()
		c.warn(node, WarningDuplicate)
		return true
	}

	ov := &Overview{Name: name}
	for i := range node.Parameters {
		p := &node.Parameters[i]
		if !p.Named() {
			ov.UnnamedParameters = append(ov.UnnamedParameters, c.italicText(p.Value))
			continue
		}
		key, ok := parameterName(p)
		if !ok {
			c.warn(p, WarningUnrecognized)
			continue
		}
		if _, seen := ov.NamedParameters[key]; seen {
			c.warn(p, WarningDuplicate)
		}
		value, ok := renderText(p.Value)
		if !ok {
			c.warn(p, WarningValueUnrecognized)
			continue
		}
		if ov.NamedParameters == nil {
			ov.NamedParameters = make(map[string]string)
		}
		ov.NamedParameters[key] = value
	}

	slot.Present = true
	slot.Value = ov
	return true
}
