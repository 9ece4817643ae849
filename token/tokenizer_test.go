package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokTest struct {
	in    string
	types []TokenType
	strs  []string
}

func TestTokenize(t *testing.T) {
	tests := []tokTest{
		{
			in:    `"a"	"b"`,
			types: []TokenType{TString, TString},
			strs:  []string{"a", "b"},
		},
		{
			in:    "\"A\"\n{\n\t\"x\"\t\"1\"\n}",
			types: []TokenType{TString, TLCurl, TString, TString, TRCurl},
			strs:  []string{"A", "{", "x", "1", "}"},
		},
		{
			in:    `key value`,
			types: []TokenType{TLiteral, TLiteral},
			strs:  []string{"key", "value"},
		},
		{
			in:    "// comment\n\"a\" // trailing\n\"b\"",
			types: []TokenType{TString, TString},
			strs:  []string{"a", "b"},
		},
		{
			in:    `"a\"b" "c\\d"`,
			types: []TokenType{TString, TString},
			strs:  []string{`a"b`, `c\d`},
		},
		{
			in:    `a{b}c`,
			types: []TokenType{TLiteral, TLCurl, TLiteral, TRCurl, TLiteral},
			strs:  []string{"a", "{", "b", "}", "c"},
		},
		{
			in:    `""`,
			types: []TokenType{TString},
			strs:  []string{""},
		},
		{
			in: " \n\t ",
		},
	}
	for _, test := range tests {
		toks, err := Tokenize([]byte(test.in))
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		var types []TokenType
		var strs []string
		for i := range toks {
			types = append(types, toks[i].Type)
			strs = append(strs, toks[i].String())
		}
		if diff := cmp.Diff(test.types, types); diff != "" {
			t.Errorf("%q types (-want +got):\n%s", test.in, diff)
		}
		if diff := cmp.Diff(test.strs, strs); diff != "" {
			t.Errorf("%q strings (-want +got):\n%s", test.in, diff)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
		off  int
	}{
		{in: `"abc`, want: ErrUnterminated, off: 0},
		{in: `"a" "b\"`, want: ErrUnterminated, off: 4},
		{in: "\"\xff\"", want: ErrBadUTF8, off: 0},
		{in: "x \xfe", want: ErrBadUTF8, off: 2},
	}
	for _, test := range tests {
		_, err := Tokenize([]byte(test.in))
		if !errors.Is(err, test.want) {
			t.Errorf("%q: got %v want %v", test.in, err, test.want)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v is not a parse error", test.in, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%q: expected *ParseError", test.in)
			continue
		}
		if pe.Pos.I != test.off {
			t.Errorf("%q: offset %d want %d", test.in, pe.Pos.I, test.off)
		}
	}
}

func TestTokensStopsEarly(t *testing.T) {
	n := 0
	for range Tokens([]byte(`"a" "b" "c"`)) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("got %d tokens", n)
	}
}

func TestPosLineCol(t *testing.T) {
	d := []byte("\"a\"\n{\n\t\"x\"")
	toks, err := Tokenize(d)
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{0, 0}, {1, 0}, {2, 1}}
	for i, tok := range toks {
		l, c := tok.Pos.LineCol()
		if l != want[i][0] || c != want[i][1] {
			t.Errorf("token %d at %d:%d want %d:%d", i, l, c, want[i][0], want[i][1])
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	tests := []struct {
		raw, quoted string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{`a"b`, `"a\"b"`},
		{`C:\dir`, `"C:\\dir"`},
		{"tab\there", "\"tab\there\""},
		{"line\nbreak", "\"line\nbreak\""},
	}
	for _, test := range tests {
		if got := Quote(test.raw); got != test.quoted {
			t.Errorf("Quote(%q) = %q want %q", test.raw, got, test.quoted)
		}
		if got := Unquote([]byte(test.quoted)); got != test.raw {
			t.Errorf("Unquote(%q) = %q want %q", test.quoted, got, test.raw)
		}
	}
	escapes := map[string]string{
		`"a\nb"`: "a\nb",
		`"a\tb"`: "a\tb",
		`"a\qb"`: `a\qb`,
	}
	for in, want := range escapes {
		if got := Unquote([]byte(in)); got != want {
			t.Errorf("Unquote(%s) = %q want %q", in, got, want)
		}
	}
}
