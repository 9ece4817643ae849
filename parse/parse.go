package parse

import (
	"errors"
	"io"

	"github.com/signadot/vdf-format/debug"
	"github.com/signadot/vdf-format/ir"
	"github.com/signadot/vdf-format/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{tz: token.NewTokenizer(d), opts: pOpts}
	res, err := p.parse()
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse error: %v\n", err)
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed:\n%v\n", res)
	}
	return res, nil
}

type parser struct {
	tz   *token.Tokenizer
	opts *parseOpts
	peek *token.Token
}

func (p *parser) next() (*token.Token, error) {
	if p.peek != nil {
		t := p.peek
		p.peek = nil
		return t, nil
	}
	t, err := p.tz.Next()
	if err != nil {
		return nil, err
	}
	if debug.Tokens() {
		debug.Logf("token %s %q\n", t.Info(), t.Bytes)
	}
	return t, nil
}

func (p *parser) unread(t *token.Token) {
	p.peek = t
}

func (p *parser) trackPos(node *ir.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[node] = pos
	}
}

func (p *parser) parse() (*ir.Node, error) {
	root := ir.NewNode()
	for {
		t, err := p.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(root.Values) == 0 {
			p.trackPos(root, t.Pos)
		} else if !p.opts.multiRoot {
			return nil, token.UnexpectedErr("trailing "+tokenDesc(t), t.Pos)
		}
		if err := p.parsePair(root, t, 0); err != nil {
			return nil, err
		}
	}
	if len(root.Values) == 0 {
		return nil, token.NewParseError(token.ErrEmptyDoc, p.tz.Doc().End())
	}
	return root, nil
}

// parsePair parses the value following key and appends the entry to parent.
func (p *parser) parsePair(parent *ir.Node, key *token.Token, depth int) error {
	if !key.IsText() {
		return token.ExpectedErr("key, got "+tokenDesc(key), key.Pos)
	}
	t, err := p.next()
	if errors.Is(err, io.EOF) {
		return token.NewParseError(errMissingValue(key), p.tz.Doc().End())
	}
	if err != nil {
		return err
	}
	var val *ir.Node
	switch t.Type {
	case token.TString, token.TLiteral:
		val = ir.FromString(t.String())
	case token.TLCurl:
		val, err = p.parseBlock(t, depth+1)
		if err != nil {
			return err
		}
	case token.TRCurl:
		return token.NewParseError(errMissingValue(key), t.Pos)
	}
	p.trackPos(val, key.Pos)
	parent.Append(key.String(), val)
	return nil
}

func (p *parser) parseBlock(open *token.Token, depth int) (*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, token.NewParseError(token.ErrDepth, open.Pos)
	}
	node := ir.NewNode()
	for {
		t, err := p.next()
		if errors.Is(err, io.EOF) {
			return nil, token.NewParseError(errUnclosed, open.Pos)
		}
		if err != nil {
			return nil, err
		}
		if t.Type == token.TRCurl {
			return node, nil
		}
		if err := p.parsePair(node, t, depth); err != nil {
			return nil, err
		}
	}
}

func tokenDesc(t *token.Token) string {
	switch t.Type {
	case token.TLCurl:
		return "'{'"
	case token.TRCurl:
		return "'}'"
	default:
		return "string " + token.Quote(t.String())
	}
}
