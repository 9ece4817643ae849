package ir

import (
	"testing"
)

func kv(pairs ...any) *Node {
	res := NewNode()
	for i := 0; i < len(pairs); i += 2 {
		v, ok := pairs[i+1].(*Node)
		if !ok {
			v = FromString(pairs[i+1].(string))
		}
		res.Append(pairs[i].(string), v)
	}
	return res
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		{"Leaf < Node", FromString("z"), NewNode(), -1},
		{"Leaf text", FromString("a"), FromString("b"), -1},
		{"Leaf equal", FromString("a"), FromString("a"), 0},
		{"Empty nodes", NewNode(), NewNode(), 0},
		{"Short < Long", kv("a", "1"), kv("a", "1", "b", "2"), -1},
		{"Key order", kv("a", "1", "b", "2"), kv("b", "2", "a", "1"), -1},
		{"Value differs", kv("a", "2"), kv("a", "1"), 1},
		{"Nested", kv("a", kv("x", "1")), kv("a", kv("x", "1")), 0},
		{"Nil", nil, FromString(""), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestEqualIgnoresParents(t *testing.T) {
	a := kv("a", kv("b", "1"))
	b := Get(kv("outer", kv("a", kv("b", "1"))), "outer")
	if !Equal(a, b) {
		t.Errorf("expected equal")
	}
}
