package wiktionary

import (
	"strings"
	"unicode"

	"github.com/heartmarshall/dewiktionary/internal/wikitext"
)

type pronunciation struct {
	audio  []Flowing
	ipa    []Flowing
	rhymes []Flowing
}

// pronunciationMarkers are the simple templates allowed after a selector.
var pronunciationMarkers = map[string]FlowingType{
	"Gen.":  FlowingGenitive,
	"Part.": FlowingPastParticiple,
	"Pl.":   FlowingPlural,
	"Pl.1":  FlowingPlural1,
	"Pl.2":  FlowingPlural2,
	"Pl.3":  FlowingPlural3,
	"Pl.4":  FlowingPlural4,
	"Prät.": FlowingPreterite,
}

// pronunciation parses the items of the Aussprache section. Each item starts
// with a selector template ({{Hörbeispiele}}, {{IPA}} or {{Reime}}) choosing
// the slot for the rest of the item.
func (c *parseContext) pronunciation(items []wikitext.ListItem) pronunciation {
	var audio, ipa, rhymes Section[[]Flowing]
	for i := range items {
		item := &items[i]
		if item.Kind != wikitext.ItemDetails {
			c.warn(item, WarningUnrecognized)
			continue
		}
		if len(item.Nodes) == 0 {
			c.warn(item, WarningEmpty)
			continue
		}
		selector := &item.Nodes[0]
		var slot *Section[[]Flowing]
		if selector.Kind == wikitext.KindTemplate {
			if name, ok := renderText(selector.Name); ok {
				switch name {
				case "Hörbeispiele":
					slot = &audio
				case "IPA":
					slot = &ipa
				case "Reime":
					slot = &rhymes
				}
			}
		}
		if slot == nil {
			c.warn(selector, WarningUnrecognized)
			continue
		}
		c.pronunciationLine(item, selector, slot)
	}
	return pronunciation{audio: audio.Value, ipa: ipa.Value, rhymes: rhymes.Value}
}

func (c *parseContext) pronunciationLine(item *wikitext.ListItem, selector *wikitext.Node, slot *Section[[]Flowing]) {
	if slot.Present {
		slot.reset()
		c.warn(selector, WarningDuplicate)
		return
	}
	if len(selector.Parameters) != 0 {
		slot.reset()
		c.warn(selector, WarningValueUnrecognized)
		return
	}

	var out []Flowing
	for i := 1; i < len(item.Nodes); i++ {
		node := &item.Nodes[i]
		switch node.Kind {
		case wikitext.KindTemplate:
			if f, ok := c.pronunciationTemplate(node); ok {
				out = append(out, f)
				continue
			}
		case wikitext.KindText:
			value := node.Value
			if len(out) == 0 {
				value = strings.TrimLeftFunc(value, unicode.IsSpace)
				if value == "" {
					continue
				}
			}
			out = append(out, Text(value))
			continue
		}
		out = append(out, c.unknown(node, WarningUnrecognized))
	}

	if len(out) == 0 {
		c.warn(selector, WarningSectionEmpty)
	}
	slot.Present = true
	slot.Value = out
}

// pronunciationTemplate decodes a template after a selector. It returns false
// when the template is not part of the pronunciation vocabulary.
func (c *parseContext) pronunciationTemplate(node *wikitext.Node) (Flowing, bool) {
	name, ok := renderText(node.Name)
	if !ok {
		return Flowing{}, false
	}
	switch name {
	case "Audio":
		return c.audio(node), true
	case "Lautschrift":
		return c.lautschrift(node), true
	case "Reim":
		return c.reim(node), true
	}
	if t, ok := pronunciationMarkers[name]; ok {
		return c.simple(node, Marker(t)), true
	}
	return Flowing{}, false
}

// audio decodes {{Audio|file|label|spr=language}}.
func (c *parseContext) audio(node *wikitext.Node) Flowing {
	params := node.Parameters
	if len(params) == 1 && !params[0].Named() && len(params[0].Value) == 0 {
		return Marker(FlowingEmptyAudio)
	}

	var fileName, label, language string
	var hasLanguage bool
	index := 0
	for i := range params {
		p := &params[i]
		var dst *string
		if !p.Named() {
			index++
			switch index {
			case 1:
				dst = &fileName
			case 2:
				dst = &label
			}
		} else if name, ok := parameterName(p); ok && name == "spr" {
			if hasLanguage {
				return c.unknownAt(node, p, WarningDuplicate)
			}
			hasLanguage = true
			dst = &language
		}
		if dst == nil {
			return c.unknownAt(node, p, WarningUnrecognized)
		}
		v, ok := renderNonEmptyText(p.Value)
		if !ok {
			return c.unknownAt(node, p, WarningValueUnrecognized)
		}
		*dst = v
	}

	if fileName == "" {
		return c.unknown(node, WarningEmpty)
	}
	return Audio(fileName, label, language)
}

// lautschrift decodes {{Lautschrift|ipa}}.
func (c *parseContext) lautschrift(node *wikitext.Node) Flowing {
	params := node.Parameters
	if len(params) != 1 || params[0].Named() {
		return c.unknown(node, WarningValueUnrecognized)
	}
	v, ok := renderNonEmptyText(params[0].Value)
	if !ok {
		return c.unknownAt(node, &params[0], WarningValueUnrecognized)
	}
	return Ipa(v)
}

// reim decodes {{Reim|rhyme|language}}. The language must be the one of the
// enclosing section.
func (c *parseContext) reim(node *wikitext.Node) Flowing {
	params := node.Parameters
	if len(params) != 2 || !unnamed(params) {
		return c.unknown(node, WarningValueUnrecognized)
	}
	rhyme, ok := renderNonEmptyText(params[0].Value)
	if !ok {
		return c.unknownAt(node, &params[0], WarningValueUnrecognized)
	}
	name, ok := renderText(params[1].Value)
	lang, known := LanguageFromName(name)
	if !ok || !known {
		return c.unknownAt(node, &params[1], WarningValueUnrecognized)
	}
	if lang != c.language {
		return c.unknownAt(node, &params[1], WarningValueConflicting)
	}
	return Rhyme(rhyme)
}
