package parse

import (
	"github.com/signadot/vdf-format/ir"
	"github.com/signadot/vdf-format/token"
)

const DefaultMaxDepth = 512

type parseOpts struct {
	positions map[*ir.Node]*token.Pos
	maxDepth  int
	multiRoot bool
}

type ParseOption func(*parseOpts)

// ParsePositions records, for every node of the result, the position of the
// token that introduced it: the key for entries, the first token for the
// root.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// MaxDepth bounds block nesting. Values below 1 restore the default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

func MultiRoot() ParseOption {
	return func(o *parseOpts) { o.multiRoot = true }
}
