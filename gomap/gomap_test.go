package gomap

import (
	"errors"
	"math"
	"net/netip"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/vdf-format/encode"
	"github.com/signadot/vdf-format/ir"
)

type Inner struct {
	BonusContent uint8
	Coolness     float64
}

type Example struct {
	Thing      string
	OtherThing bool
	MoreStuff  Inner
}

const exampleText = `"Example"
{
	"thing"	"hello"
	"other_thing"	"1"
	"more_stuff"
	{
		"bonus_content"	"69"
		"coolness"	"420.1337"
	}
}`

func example() Example {
	return Example{
		Thing:      "hello",
		OtherThing: true,
		MoreStuff:  Inner{BonusContent: 69, Coolness: 420.1337},
	}
}

func TestExampleText(t *testing.T) {
	d, err := ToVDF(example())
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != exampleText {
		t.Errorf("got\n%s\nwant\n%s", d, exampleText)
	}
	var back Example
	if err := FromVDF(d, &back, ExpectName("Example")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(example(), back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDocName(t *testing.T) {
	d, err := ToVDF(&Inner{}, WithName("stuff"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(d), "\"stuff\"\n{") {
		t.Errorf("got %s", d)
	}
	if _, err := ToVDF(map[string]int{"a": 1}); !errors.Is(err, ErrNoName) {
		t.Errorf("expected ErrNoName, got %v", err)
	}
	var e Example
	if err := FromVDF([]byte(exampleText), &e, ExpectName("Other")); !errors.Is(err, ErrName) {
		t.Errorf("expected ErrName, got %v", err)
	}
}

type AB int

func (AB) Variants() []string { return []string{"A", "B"} }

type Color string

func (Color) Variants() []string { return []string{"red", "green"} }

func TestEnum(t *testing.T) {
	node, err := ToIR(AB(0))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.LeafType || node.String != "A" {
		t.Errorf("got %v", encode.MustString(node))
	}
	var ab AB
	if err := FromIR(ir.FromString("B"), &ab); err != nil || ab != 1 {
		t.Errorf("got %v %v", ab, err)
	}
	err = FromIR(ir.FromString("C"), &ab)
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant, got %v", err)
	}
	if ab != 1 {
		t.Errorf("target modified on failure")
	}
	if _, err := ToIR(AB(5)); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant, got %v", err)
	}

	var c Color
	if err := FromIR(ir.FromString("green"), &c); err != nil || c != "green" {
		t.Errorf("got %v %v", c, err)
	}
	if _, err := ToIR(Color("blue")); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
		err  bool
	}{
		{in: "1", want: true},
		{in: "0", want: false},
		{in: "yes", err: true},
		{in: "true", err: true},
		{in: "", err: true},
	}
	for _, tt := range tests {
		var b bool
		err := FromIR(ir.FromString(tt.in), &b)
		if tt.err {
			if !errors.Is(err, ErrParseFailure) {
				t.Errorf("%q: expected ErrParseFailure, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || b != tt.want {
			t.Errorf("%q: got %v %v", tt.in, b, err)
		}
	}
}

type withSlice struct {
	Name  string
	Items []int
}

type withPtr struct {
	N *int
}

type withBytes struct {
	B []byte
}

type withArray struct {
	A [2]int
}

type empty struct{}

type withComplex struct {
	C complex128
}

type withChan struct {
	C chan int
}

type withAny struct {
	V any
}

func TestRejection(t *testing.T) {
	n := 1
	tests := []struct {
		name  string
		v     any
		shape string
	}{
		{"seq", withSlice{Name: "x", Items: []int{1}}, "seq"},
		{"option", withPtr{N: &n}, "option"},
		{"byte array", withBytes{B: []byte("x")}, "byte array"},
		{"tuple", withArray{}, "tuple"},
		{"unit_struct", empty{}, "unit_struct"},
		{"complex", withComplex{}, "complex"},
		{"chan", withChan{}, "chan"},
		{"unit", map[string]any{"a": nil}, "unit"},
		{"top level slice", []string{"a"}, "seq"},
		{"uintptr", map[string]uintptr{"a": 1}, "uintptr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ToVDF(tt.v, WithName("x"))
			if !errors.Is(err, ErrUnsupportedShape) {
				t.Fatalf("expected ErrUnsupportedShape, got %v", err)
			}
			if d != nil {
				t.Errorf("produced output %q", d)
			}
			var use *UnsupportedShapeError
			if !errors.As(err, &use) || use.Shape != tt.shape {
				t.Errorf("got shape %v", err)
			}
		})
	}
	var w withAny
	err := FromIR(ir.NewNode().Append("v", ir.FromString("x")), &w)
	if !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("decoding into an interface: got %v", err)
	}
}

func TestMissingField(t *testing.T) {
	node := ir.NewNode().
		Append("thing", ir.FromString("hello")).
		Append("other_thing", ir.FromString("0")).
		Append("more_stuff", ir.NewNode().Append("bonus_content", ir.FromString("1")))
	e := example()
	err := FromIR(node, &e)
	var mfe *MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if mfe.FieldPath != "more_stuff.coolness" || mfe.Field != "coolness" {
		t.Errorf("got %+v", mfe)
	}
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("not ErrMissingField")
	}
	if diff := cmp.Diff(example(), e); diff != "" {
		t.Errorf("target modified on failure (-want +got):\n%s", diff)
	}
}

func TestExtraKeys(t *testing.T) {
	text := `"Inner" { "extra" "x" "bonus_content" "3" "nested" { "a" "b" } "coolness" "1.5" }`
	var in Inner
	if err := FromVDF([]byte(text), &in); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Inner{BonusContent: 3, Coolness: 1.5}, in); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTypeMismatch(t *testing.T) {
	var e Example
	err := FromIR(ir.NewNode().
		Append("thing", ir.NewNode()).
		Append("other_thing", ir.FromString("1")).
		Append("more_stuff", ir.FromString("x")), &e)
	var tme *TypeMismatchError
	if !errors.As(err, &tme) || tme.FieldPath != "thing" {
		t.Errorf("got %v", err)
	}
	err = FromIR(ir.FromString("x"), &e)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("got %v", err)
	}
}

func TestScalarParseFailures(t *testing.T) {
	tests := []struct {
		text   string
		target any
	}{
		{"256", new(uint8)},
		{"-1", new(uint)},
		{"1.5", new(int)},
		{"abc", new(float64)},
		{"", new(int32)},
		{"ab", new(Char)},
		{"", new(Char)},
		{"1e400", new(float32)},
		{"0x1p-2", new(float64)},
		{"Infinity", new(float64)},
		{"nan", new(float64)},
		{"1_000", new(float64)},
	}
	for _, tt := range tests {
		err := FromIR(ir.FromString(tt.text), tt.target)
		if !errors.Is(err, ErrParseFailure) {
			t.Errorf("%q into %T: got %v", tt.text, tt.target, err)
		}
	}
}

type Scalars struct {
	I8   int8
	I64  int64
	U16  uint16
	U64  uint64
	F32  float32
	F64  float64
	S    string
	C    Char
	Addr netip.Addr
	E    AB
}

func TestScalarRoundTrip(t *testing.T) {
	values := []Scalars{
		{},
		{
			I8: math.MinInt8, I64: math.MaxInt64, U16: math.MaxUint16, U64: math.MaxUint64,
			F32: 0.1, F64: 1e-300, S: "tab\tquote\"back\\slash\nline", C: 'é',
			Addr: netip.MustParseAddr("10.0.0.1"), E: 1,
		},
		{F32: -3.4028235e38, F64: math.SmallestNonzeroFloat64, S: "{}//", C: '"'},
	}
	for _, v := range values {
		if v.C == 0 {
			v.C = 'x'
		}
		if !v.Addr.IsValid() {
			v.Addr = netip.MustParseAddr("::1")
		}
		d, err := ToVDF(v)
		if err != nil {
			t.Fatal(err)
		}
		var back Scalars
		if err := FromVDF(d, &back); err != nil {
			t.Fatalf("%v\n%s", err, d)
		}
		if diff := cmp.Diff(v, back, cmp.Comparer(func(a, b netip.Addr) bool { return a == b })); diff != "" {
			t.Errorf("(-want +got):\n%s\n%s", diff, d)
		}
	}
}

func TestFloatText(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{420.1337, "420.1337"},
		{float32(0.1), "0.1"},
		{1e21, "1000000000000000000000"},
		{0.5, "0.5"},
		{float64(3), "3"},
	}
	for _, tt := range tests {
		node, err := ToIR(tt.v)
		if err != nil {
			t.Fatal(err)
		}
		if node.String != tt.want {
			t.Errorf("%v: got %s want %s", tt.v, node.String, tt.want)
		}
	}
}

func TestFloatSpecialValues(t *testing.T) {
	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		node, err := ToIR(f)
		if err != nil {
			t.Fatal(err)
		}
		var back float64
		if err := FromIR(node, &back); err != nil {
			t.Fatalf("%s: %v", node.String, err)
		}
		if math.IsNaN(f) != math.IsNaN(back) || (!math.IsNaN(f) && f != back) {
			t.Errorf("%s: got %v", node.String, back)
		}
	}
}

type Text struct {
	S string
}

type Letter struct {
	C Char
}

func TestUnwritableText(t *testing.T) {
	tests := []struct {
		name  string
		v     any
		shape string
	}{
		{"string", Text{S: "a\xffb"}, "invalid utf8 string"},
		{"map key", map[string]int{"k\xfe": 1}, "invalid utf8 string"},
		{"negative rune", Letter{C: -1}, "invalid rune"},
		{"surrogate", Letter{C: 0xD800}, "invalid rune"},
		{"beyond unicode", Letter{C: 0x110000}, "invalid rune"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ToVDF(tt.v, WithName("doc"))
			if !errors.Is(err, ErrUnsupportedShape) {
				t.Fatalf("expected ErrUnsupportedShape, got %v", err)
			}
			var use *UnsupportedShapeError
			if !errors.As(err, &use) || use.Shape != tt.shape {
				t.Errorf("got %v", err)
			}
			if d != nil {
				t.Errorf("produced output %q", d)
			}
		})
	}
}

func TestMaps(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	node, err := ToIR(m)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, node.Fields); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	var back map[string]int
	if err := FromIR(node, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(m, back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	dup := ir.NewNode().
		Append("k", ir.FromString("1")).
		Append("k", ir.FromString("2"))
	var last map[string]int
	if err := FromIR(dup, &last); err != nil {
		t.Fatal(err)
	}
	if last["k"] != 2 {
		t.Errorf("expected last value to win, got %d", last["k"])
	}

	im := map[int]AB{10: 1, 9: 0}
	node, err = ToIR(im)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"10", "9"}, node.Fields); diff != "" {
		t.Errorf("keys sort as text (-want +got):\n%s", diff)
	}
	if node.Values[0].String != "B" {
		t.Errorf("got %s", node.Values[0].String)
	}
	var imBack map[int]AB
	if err := FromIR(node, &imBack); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(im, imBack); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	var bad map[int]string
	err = FromIR(ir.NewNode().Append("x", ir.FromString("y")), &bad)
	if !errors.Is(err, ErrParseFailure) {
		t.Errorf("got %v", err)
	}
}

type Meters struct {
	V float64 `vdf:",newtype"`
}

type Label struct {
	Text string
}

func (Label) VDFKind() Kind { return NewtypeKind }

type Hidden struct {
	A int
}

func (Hidden) VDFKind() Kind { return UnsupportedKind }

type Tagged struct {
	Distance Meters
	Name     Label
	Renamed  int    `vdf:"Count"`
	Skipped  string `vdf:"-"`
	private  int
	Embedded
}

type Embedded struct {
	Promoted string
}

func TestNewtypeAndTags(t *testing.T) {
	v := Tagged{
		Distance: Meters{V: 1.5},
		Name:     Label{Text: "x"},
		Renamed:  3,
		Skipped:  "gone",
		private:  4,
		Embedded: Embedded{Promoted: "p"},
	}
	node, err := ToIR(v)
	if err != nil {
		t.Fatal(err)
	}
	want := "\"distance\"\t\"1.5\"\n\"name\"\t\"x\"\n\"Count\"\t\"3\"\n\"promoted\"\t\"p\""
	if got := encode.MustString(node); got != want {
		t.Errorf("got %q want %q", got, want)
	}
	var back Tagged
	if err := FromIR(node, &back); err != nil {
		t.Fatal(err)
	}
	v.Skipped, v.private = "", 0
	if diff := cmp.Diff(v, back, cmp.AllowUnexported(Tagged{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := ToIR(Hidden{A: 1}); !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("got %v", err)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		v    any
		want Kind
	}{
		{true, ScalarKind},
		{Char('x'), ScalarKind},
		{netip.Addr{}, ScalarKind},
		{Example{}, RecordKind},
		{map[string]int{}, MapKind},
		{map[AB]int{}, MapKind},
		{map[[2]int]int{}, UnsupportedKind},
		{AB(0), UnitVariantKind},
		{Meters{}, NewtypeKind},
		{Label{}, NewtypeKind},
		{Hidden{}, UnsupportedKind},
		{[]int{}, UnsupportedKind},
		{empty{}, UnsupportedKind},
	}
	for _, tt := range tests {
		if got := KindOf(reflect.TypeOf(tt.v)); got != tt.want {
			t.Errorf("%T: got %s want %s", tt.v, got, tt.want)
		}
	}
}

type Tree map[string]Tree

func deepTree(n int) Tree {
	t := Tree{}
	for range n {
		t = Tree{"k": t}
	}
	return t
}

func TestDepth(t *testing.T) {
	if _, err := ToIR(deepTree(10), MaxDepth(10)); err != nil {
		t.Errorf("depth 10: %v", err)
	}
	if _, err := ToIR(deepTree(11), MaxDepth(10)); !errors.Is(err, ErrDepth) {
		t.Errorf("depth 11: got %v", err)
	}
	node, err := ToIR(deepTree(11), MaxDepth(20))
	if err != nil {
		t.Fatal(err)
	}
	var back Tree
	if err := FromIR(node, &back, MaxDepth(10)); !errors.Is(err, ErrDepth) {
		t.Errorf("decode depth 11: got %v", err)
	}
	if err := FromIR(node, &back); err != nil {
		t.Errorf("default depth: %v", err)
	}
}

type Raw struct {
	Name string
	Body *ir.Node
}

type Custom struct {
	parts []string
}

func (c Custom) MarshalVDF() (*ir.Node, error) {
	res := ir.NewNode()
	for _, p := range c.parts {
		res.Append("part", ir.FromString(p))
	}
	return res, nil
}

func (c *Custom) UnmarshalVDF(n *ir.Node) error {
	if n.Type != ir.NodeType {
		return errors.New("expected parts")
	}
	c.parts = nil
	for _, v := range n.GetAll("part") {
		c.parts = append(c.parts, v.String)
	}
	return nil
}

func TestHooks(t *testing.T) {
	body := ir.NewNode().Append("a", ir.FromString("1")).Append("a", ir.FromString("2"))
	d, err := ToVDF(Raw{Name: "r", Body: body})
	if err != nil {
		t.Fatal(err)
	}
	var back Raw
	if err := FromVDF(d, &back); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(body, back.Body) || back.Name != "r" {
		t.Errorf("got %s", d)
	}
	if _, err := ToIR(Raw{Name: "r"}); !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("nil tree: got %v", err)
	}

	c := Custom{parts: []string{"x", "y", "x"}}
	node, err := ToIR(c)
	if err != nil {
		t.Fatal(err)
	}
	var cBack Custom
	if err := FromIR(node, &cBack); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(c.parts, cBack.parts); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	var ue *UnmarshalError
	if err := FromIR(ir.FromString("x"), &cBack); !errors.As(err, &ue) {
		t.Errorf("got %v", err)
	}
}

func TestBadTarget(t *testing.T) {
	var e Example
	for _, v := range []any{nil, e, (*Example)(nil)} {
		if err := FromIR(ir.NewNode(), v); !errors.Is(err, ErrTarget) {
			t.Errorf("%T: got %v", v, err)
		}
	}
}
