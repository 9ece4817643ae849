package encode

import (
	"bytes"

	"github.com/signadot/vdf-format/ir"
)

// MustString renders node as VDF text, panicking on error.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
