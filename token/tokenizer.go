package token

import (
	"io"
	"iter"
	"unicode/utf8"
)

// Tokenizer scans VDF text one token at a time.
type Tokenizer struct {
	d   []byte
	i   int
	doc *PosDoc
}

func NewTokenizer(d []byte) *Tokenizer {
	return &Tokenizer{d: d, doc: NewPosDoc(d)}
}

// Doc returns the position document of the input, for converting offsets
// to lines and columns.
func (t *Tokenizer) Doc() *PosDoc {
	return t.doc
}

// Next returns the next token, or io.EOF once the input is exhausted.
func (t *Tokenizer) Next() (*Token, error) {
	t.skip()
	if t.i >= len(t.d) {
		return nil, io.EOF
	}
	start := t.i
	switch t.d[start] {
	case '{':
		t.i++
		return t.token(TLCurl, start), nil
	case '}':
		t.i++
		return t.token(TRCurl, start), nil
	case '"':
		return t.quoted(start)
	default:
		return t.literal(start)
	}
}

func (t *Tokenizer) token(tt TokenType, start int) *Token {
	return &Token{
		Type:  tt,
		Pos:   t.doc.Pos(start),
		Bytes: t.d[start:t.i],
	}
}

// skip advances past whitespace and // comments.
func (t *Tokenizer) skip() {
	for t.i < len(t.d) {
		switch c := t.d[t.i]; c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			t.i++
		case '/':
			if t.i+1 >= len(t.d) || t.d[t.i+1] != '/' {
				return
			}
			for t.i < len(t.d) && t.d[t.i] != '\n' {
				t.i++
			}
		default:
			return
		}
	}
}

func (t *Tokenizer) quoted(start int) (*Token, error) {
	i := start + 1
	for i < len(t.d) {
		switch t.d[i] {
		case '\\':
			i += 2
			continue
		case '"':
			t.i = i + 1
			tok := t.token(TString, start)
			if !utf8.Valid(tok.Bytes) {
				return nil, NewParseError(ErrBadUTF8, tok.Pos)
			}
			return tok, nil
		}
		i++
	}
	return nil, NewParseError(ErrUnterminated, t.doc.Pos(start))
}

func (t *Tokenizer) literal(start int) (*Token, error) {
	i := start
loop:
	for i < len(t.d) {
		switch t.d[i] {
		case ' ', '\t', '\n', '\r', '\v', '\f', '{', '}', '"':
			break loop
		}
		i++
	}
	t.i = i
	tok := t.token(TLiteral, start)
	if !utf8.Valid(tok.Bytes) {
		return nil, NewParseError(ErrBadUTF8, tok.Pos)
	}
	return tok, nil
}

// Tokens iterates over the tokens of d. Iteration stops after the first
// error, which is yielded with a nil token.
func Tokens(d []byte) iter.Seq2[*Token, error] {
	return func(yield func(*Token, error) bool) {
		tz := NewTokenizer(d)
		for {
			tok, err := tz.Next()
			if err == io.EOF {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

// Tokenize returns all tokens of d.
func Tokenize(d []byte) ([]Token, error) {
	var res []Token
	for tok, err := range Tokens(d) {
		if err != nil {
			return nil, err
		}
		res = append(res, *tok)
	}
	return res, nil
}
