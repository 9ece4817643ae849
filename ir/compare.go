package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two trees: Leafs sort before Nodes,
// Leafs by their text and Nodes entry by entry, keys before values.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	if a.Type == LeafType {
		return strings.Compare(a.String, b.String)
	}
	n := min(len(a.Values), len(b.Values))
	for i := range n {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

// Equal reports whether a and b hold the same entries in the same order.
// Parent links are ignored.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
