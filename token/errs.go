package token

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError with errors.Is.
	ErrParse = errors.New("parse error")

	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated quoted string")
	ErrEmptyDoc     = errors.New("empty document")
	ErrDepth        = errors.New("nesting too deep")
)

// ParseError is a syntax error tagged with the position at which it was
// detected.
type ParseError struct {
	Err error
	Pos Pos
}

func NewParseError(e error, p *Pos) *ParseError {
	return &ParseError{Err: e, Pos: *p}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func ExpectedErr(what string, p *Pos) error {
	return NewParseError(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewParseError(fmt.Errorf("unexpected %s", what), p)
}
