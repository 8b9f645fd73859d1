package wikitext

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodePage_TokenizesMissingNodes(t *testing.T) {
	p, err := DecodePage(strings.NewReader(`{"title":"Haus","wiki_text":"{{n}}"}`))
	if err != nil {
		t.Fatalf("DecodePage: %v", err)
	}
	if len(p.Nodes) != 1 || p.Nodes[0].Kind != KindTemplate {
		t.Fatalf("expected one template node, got %+v", p.Nodes)
	}
}

func TestDecodePage_KeepsGivenNodes(t *testing.T) {
	in := `{"title":"x","wiki_text":"abc","nodes":[{"type":"text","start":0,"end":3,"value":"abc"}]}`
	p, err := DecodePage(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodePage: %v", err)
	}
	if p.Nodes[0].Value != "abc" {
		t.Errorf("unexpected node %+v", p.Nodes[0])
	}
}

func TestUnmarshalPage_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "span past end", in: `{"wiki_text":"ab","nodes":[{"type":"text","start":0,"end":5}]}`},
		{name: "inverted span", in: `{"wiki_text":"ab","nodes":[{"type":"text","start":2,"end":1}]}`},
		{name: "unknown kind", in: `{"wiki_text":"ab","nodes":[{"type":"table","start":0,"end":1}]}`},
		{name: "nested parameter", in: `{"wiki_text":"ab","nodes":[{"type":"template","start":0,"end":2,` +
			`"parameters":[{"start":0,"end":9,"value":[]}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalPage([]byte(tt.in))
			if !errors.Is(err, ErrInvalidSpan) {
				t.Errorf("expected ErrInvalidSpan, got %v", err)
			}
		})
	}
}

func TestUnmarshalPage_BadJSON(t *testing.T) {
	if _, err := UnmarshalPage([]byte("{")); err == nil {
		t.Fatal("expected error")
	}
}
