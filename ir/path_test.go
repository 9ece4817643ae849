package ir

import (
	"errors"
	"testing"
)

func TestPath(t *testing.T) {
	doc := Doc("Root", kv("a", kv("b.c", "1", "plain", "2")))
	b := Get(Get(Get(doc, "Root"), "a"), "b.c")
	if got := b.Path(); got != "$.Root.a.'b.c'" {
		t.Errorf("got %s", got)
	}
	p := Get(Get(Get(doc, "Root"), "a"), "plain")
	if got := p.FieldPath(); got != "Root.a.plain" {
		t.Errorf("got %s", got)
	}
	if got := doc.Path(); got != "$" {
		t.Errorf("got %s", got)
	}
}

func TestParsePathString(t *testing.T) {
	for _, in := range []string{"$", "$.a", "$.a.b", "$.a[2]", "$.a[*].b", "$..b", "$.'x.y'"} {
		p, err := ParsePath(in)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if got := p.String(); got != in {
			t.Errorf("%s: round trip %s", in, got)
		}
	}
	for _, in := range []string{"", "a", "$a", "$.a[", "$.'open"} {
		if _, err := ParsePath(in); !errors.Is(err, ErrBadPath) {
			t.Errorf("%q: expected ErrBadPath, got %v", in, err)
		}
	}
}

func TestGetPath(t *testing.T) {
	doc := kv("a", kv("b", "1", "b", "2", "c", "3"))
	tests := []struct {
		path string
		want string
		nil  bool
	}{
		{path: "$.a.b", want: "1"},
		{path: "$.a.c", want: "3"},
		{path: "$.a[1]", want: "2"},
		{path: "$.a.x", nil: true},
		{path: "$.a[9]", nil: true},
	}
	for _, tt := range tests {
		got, err := doc.GetPath(tt.path)
		if err != nil {
			t.Errorf("%s: %v", tt.path, err)
			continue
		}
		if tt.nil {
			if got != nil {
				t.Errorf("%s: expected nil", tt.path)
			}
			continue
		}
		if got == nil || got.String != tt.want {
			t.Errorf("%s: got %v want %s", tt.path, got, tt.want)
		}
	}
	if _, err := doc.GetPath("$.a.b.c"); err == nil {
		t.Errorf("expected error descending into a leaf")
	}
}

func TestListPath(t *testing.T) {
	doc := kv("a", kv("b", "1", "b", "2"), "x", kv("b", "3"))
	tests := []struct {
		path string
		want []string
	}{
		{"$.a.b", []string{"1", "2"}},
		{"$..b", []string{"1", "2", "3"}},
		{"$[*].b", []string{"1", "2", "3"}},
		{"$.a[0]", []string{"1"}},
	}
	for _, tt := range tests {
		got, err := doc.ListPath(nil, tt.path)
		if err != nil {
			t.Errorf("%s: %v", tt.path, err)
			continue
		}
		var strs []string
		for _, n := range got {
			strs = append(strs, n.String)
		}
		if len(strs) != len(tt.want) {
			t.Errorf("%s: got %v want %v", tt.path, strs, tt.want)
			continue
		}
		for i := range strs {
			if strs[i] != tt.want[i] {
				t.Errorf("%s: got %v want %v", tt.path, strs, tt.want)
				break
			}
		}
	}
}
