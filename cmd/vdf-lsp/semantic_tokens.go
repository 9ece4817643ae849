package main

import (
	"bytes"
	"context"
	"strconv"

	"github.com/signadot/vdf-format/token"
	"go.lsp.dev/protocol"
)

// indexes into tokenTypes
const (
	semProperty uint32 = iota
	semString
	semNumber
	semOperator
)

var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
}

type semToken struct {
	line, char, length, typ uint32
}

// semanticTokens classifies the tokens of content: keys as properties,
// values as strings or numbers, braces as operators. Tokenizing stops at
// the first error.
func semanticTokens(content string) []semToken {
	var (
		res     []semToken
		wantKey = true
	)
	for tok, err := range token.Tokens([]byte(content)) {
		if err != nil {
			break
		}
		var typ uint32
		switch {
		case tok.Type == token.TLCurl || tok.Type == token.TRCurl:
			typ = semOperator
			wantKey = true
		case wantKey:
			typ = semProperty
			wantKey = false
		default:
			typ = semString
			if _, err := strconv.ParseFloat(tok.String(), 64); err == nil {
				typ = semNumber
			}
			wantKey = true
		}
		line, col := tok.Pos.LineCol()
		text := tok.Bytes
		// tokens may not span lines
		if i := bytes.IndexByte(text, '\n'); i >= 0 {
			text = text[:i]
		}
		start := lspPosition(content, line, col)
		res = append(res, semToken{
			line:   start.Line,
			char:   start.Character,
			length: uint32(utf16Len(string(text))),
			typ:    typ,
		})
	}
	return res
}

// encodeSemanticTokens produces the relative encoding of the protocol, 5
// integers per token.
func encodeSemanticTokens(toks []semToken, from, to uint32) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for _, t := range toks {
		if t.line < from || t.line > to {
			continue
		}
		dl, dc := t.line-prevLine, t.char
		if dl == 0 {
			dc = t.char - prevChar
		}
		data = append(data, dl, dc, t.length, t.typ, 0)
		prevLine, prevChar = t.line, t.char
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(params.TextDocument.URI)
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	toks := semanticTokens(doc.content)
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(toks, 0, ^uint32(0)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(params.TextDocument.URI)
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	toks := semanticTokens(doc.content)
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(toks, params.Range.Start.Line, params.Range.End.Line),
	}, nil
}
