package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/vdf-format/token"
)

var errUnclosed = errors.New("unclosed '{'")

func errMissingValue(key *token.Token) error {
	return fmt.Errorf("missing value for key %s", token.Quote(key.String()))
}
