package token

import "fmt"

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TString
	TLiteral
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TString:  "TString",
		TLiteral: "TLiteral",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the decoded content of the token: quotes and escapes are
// removed from TString tokens, other tokens are returned as written.
func (t *Token) String() string {
	if t.Type == TString {
		return Unquote(t.Bytes)
	}
	return string(t.Bytes)
}

// IsText reports whether t can serve as a key or a leaf value.
func (t *Token) IsText() bool {
	return t.Type == TString || t.Type == TLiteral
}
