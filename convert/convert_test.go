package convert

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/vdf-format/ir"
)

func sample() *ir.Node {
	inner := ir.NewNode().
		Append("name", ir.FromString("x")).
		Append("sub", ir.NewNode().Append("a", ir.FromString("1")))
	return ir.Doc("Root", inner)
}

func TestYAMLRoundTrip(t *testing.T) {
	n := sample()
	d, err := ToYAML(n)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatalf("%v\n%s", err, d)
	}
	if !ir.Equal(n, back) {
		t.Errorf("round trip differs:\n%s", d)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	n := sample()
	d, err := ToJSON(n)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromJSON(d)
	if err != nil {
		t.Fatalf("%v\n%s", err, d)
	}
	if !ir.Equal(n, back) {
		t.Errorf("round trip differs:\n%s", d)
	}
}

func TestRepeatedKeysGrouped(t *testing.T) {
	n := ir.NewNode().
		Append("k", ir.FromString("1")).
		Append("j", ir.FromString("3")).
		Append("k", ir.FromString("2"))
	d, err := ToJSON(n)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"k", "k", "j"}, back.Fields); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	var vals []string
	for _, v := range back.Values {
		vals = append(vals, v.String)
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, vals); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromJSONScalars(t *testing.T) {
	n, err := FromJSON([]byte(`{"b": 12, "a": true, "f": false, "x": 1.5, "l": ["p", "q"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a", "f", "x", "l", "l"}, n.Fields); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	var vals []string
	for _, v := range n.Values {
		vals = append(vals, v.String)
	}
	if diff := cmp.Diff([]string{"12", "1", "0", "1.5", "p", "q"}, vals); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromAnyErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{`{"a": null}`, ErrNull},
		{`{"a": [[1]]}`, ErrNestedSeq},
		{`[1, 2]`, ErrUnkeyedSeq},
	}
	for _, tt := range tests {
		_, err := FromJSON([]byte(tt.in))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v want %v", tt.in, err, tt.want)
		}
	}
}

func TestToAny(t *testing.T) {
	n := ir.NewNode().
		Append("k", ir.FromString("1")).
		Append("k", ir.FromString("2")).
		Append("m", ir.NewNode().Append("x", ir.FromString("y")))
	want := map[string]any{
		"k": []any{"1", "2"},
		"m": map[string]any{"x": "y"},
	}
	if diff := cmp.Diff(want, ToAny(n)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := ToAny(ir.FromString("s")); got != "s" {
		t.Errorf("got %v", got)
	}
}
