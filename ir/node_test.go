package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppendLinks(t *testing.T) {
	n := NewNode()
	a := FromString("1")
	b := FromString("2")
	n.Append("k", a).Append("k", b)
	if a.Parent != n || b.Parent != n {
		t.Fatal("parent not set")
	}
	if a.ParentIndex != 0 || b.ParentIndex != 1 {
		t.Errorf("indexes %d %d", a.ParentIndex, b.ParentIndex)
	}
	if n.Len() != 2 {
		t.Errorf("len %d", n.Len())
	}
	if Get(n, "k") != a {
		t.Errorf("Get should return the first entry")
	}
	all := n.GetAll("k")
	if len(all) != 2 || all[1] != b {
		t.Errorf("GetAll %v", all)
	}
	if Get(n, "missing") != nil {
		t.Errorf("expected nil")
	}
}

func TestFromMapSorted(t *testing.T) {
	n := FromMap(map[string]*Node{
		"b": FromString("2"),
		"a": FromString("1"),
		"c": FromString("3"),
	})
	if diff := cmp.Diff([]string{"a", "b", "c"}, n.Fields); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestToMapLastWins(t *testing.T) {
	m := ToMap(kv("k", "1", "k", "2"))
	if m["k"].String != "2" {
		t.Errorf("got %q", m["k"].String)
	}
	if ToMap(FromString("x")) != nil {
		t.Errorf("expected nil for a leaf")
	}
}

func TestDocUnwrap(t *testing.T) {
	inner := kv("a", "1")
	doc := Doc("Name", inner)
	name, v, err := doc.Unwrap()
	if err != nil {
		t.Fatal(err)
	}
	if name != "Name" || v != inner {
		t.Errorf("got %q %v", name, v)
	}
	for _, bad := range []*Node{FromString("x"), NewNode(), kv("a", "1", "b", "2")} {
		if _, _, err := bad.Unwrap(); !errors.Is(err, ErrNotDoc) {
			t.Errorf("expected ErrNotDoc, got %v", err)
		}
	}
}

func TestClone(t *testing.T) {
	n := kv("a", kv("b", "1"), "c", "2")
	c := n.Clone()
	if !Equal(n, c) {
		t.Fatal("clone differs")
	}
	Get(Get(c, "a"), "b").String = "changed"
	c.Fields[1] = "d"
	if Get(Get(n, "a"), "b").String != "1" || n.Fields[1] != "c" {
		t.Errorf("clone shares state with original")
	}
	if Get(c, "a").Parent != c {
		t.Errorf("clone parent links not rewritten")
	}
}

func TestVisit(t *testing.T) {
	n := kv("a", kv("b", "1"), "c", "2")
	var leaves []string
	err := n.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost && y.Type == LeafType {
			leaves = append(leaves, y.String)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"1", "2"}, leaves); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
