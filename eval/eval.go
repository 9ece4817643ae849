package eval

import (
	"errors"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/signadot/vdf-format/convert"
	"github.com/signadot/vdf-format/debug"
	"github.com/signadot/vdf-format/ir"
)

var ErrNotBool = errors.New("filter expression must evaluate to a boolean")

func env(doc *ir.Node) map[string]any {
	return map[string]any{"doc": convert.ToAny(doc)}
}

// Eval evaluates code against doc.
func Eval(doc *ir.Node, code string) (any, error) {
	e := env(doc)
	opts := append(exprOpts(doc), expr.Env(e))
	prog, err := expr.Compile(code, opts...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prog, e)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q => %v\n", code, res)
	}
	return res, nil
}

// Filter evaluates code against doc, which must produce a boolean.
func Filter(doc *ir.Node, code string) (bool, error) {
	e := env(doc)
	opts := append(exprOpts(doc), expr.Env(e), expr.AsBool())
	prog, err := expr.Compile(code, opts...)
	if err != nil {
		return false, err
	}
	res, err := expr.Run(prog, e)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, ErrNotBool
	}
	return b, nil
}

// ToNode converts a result of Eval to a tree. Lists become nodes keyed by
// index, the way Valve files spell arrays.
func ToNode(res any) (*ir.Node, error) {
	switch x := res.(type) {
	case *ir.Node:
		return x, nil
	case []any:
		n := ir.NewNode()
		for i, v := range x {
			c, err := ToNode(v)
			if err != nil {
				return nil, err
			}
			n.Append(strconv.Itoa(i), c)
		}
		return n, nil
	}
	return convert.FromAny(res)
}
