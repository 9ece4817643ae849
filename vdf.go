package vdf

import (
	"github.com/signadot/vdf-format/encode"
	"github.com/signadot/vdf-format/gomap"
	"github.com/signadot/vdf-format/ir"
	"github.com/signadot/vdf-format/parse"
)

// Parse parses a document. The result holds one entry, the outer name and
// its value.
func Parse(text string) (*ir.Node, error) {
	return parse.Parse([]byte(text))
}

// Render returns the canonical text of tree.
func Render(tree *ir.Node) string {
	return encode.MustString(tree)
}

// ToText converts v to a document named after its type.
func ToText(v any, opts ...gomap.MapOption) (string, error) {
	d, err := gomap.ToVDF(v, opts...)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// FromText converts the value of a document into v, a non-nil pointer.
func FromText(text string, v any, opts ...gomap.MapOption) error {
	return gomap.FromVDF([]byte(text), v, opts...)
}
