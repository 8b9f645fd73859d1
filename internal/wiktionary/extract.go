package wiktionary

import "github.com/heartmarshall/dewiktionary/internal/wikitext"

// Section holds the result of a section that may appear at most once.
// Present distinguishes "never seen" from "seen but empty".
type Section[T any] struct {
	Present bool
	Value   T
}

func (s *Section[T]) reset() {
	var zero T
	s.Present = true
	s.Value = zero
}

// extractList parses the definition list following marker into slot and
// returns the number of nodes of rest it consumed (0 or 1).
func extractList[T any](c *parseContext, marker *wikitext.Node, rest []wikitext.Node, slot *Section[T], parse func([]wikitext.ListItem) T) int {
	switch {
	case slot.Present:
		slot.reset()
		c.warn(marker, WarningDuplicate)
		return 0
	case len(marker.Parameters) != 0:
		slot.reset()
		c.warn(marker, WarningValueUnrecognized)
		return 0
	case len(rest) == 0 || rest[0].Kind != wikitext.KindDefinitionList:
		slot.reset()
		c.warn(marker, WarningSectionEmpty)
		return 0
	}
	slot.Present = true
	slot.Value = parse(rest[0].Items)
	return 1
}

// extractListItems is extractList for sections whose items are classified
// one by one. Items that are not details items are skipped with a warning.
func extractListItems[T any](c *parseContext, marker *wikitext.Node, rest []wikitext.Node, slot *Section[[]T], classify func(*wikitext.ListItem) (T, bool)) int {
	return extractList(c, marker, rest, slot, func(items []wikitext.ListItem) []T {
		var out []T
		for i := range items {
			item := &items[i]
			if item.Kind != wikitext.ItemDetails {
				c.warn(item, WarningUnrecognized)
				continue
			}
			if v, ok := classify(item); ok {
				out = append(out, v)
			}
		}
		return out
	})
}
