package ir

import "errors"

var (
	ErrNotDoc  = errors.New("not a document: expected a node with exactly one entry")
	ErrBadPath = errors.New("bad path")
)
