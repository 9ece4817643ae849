package eval

import (
	"fmt"
	"os"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/signadot/vdf-format/convert"
	"github.com/signadot/vdf-format/ir"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			if res == nil {
				return nil, nil
			}
			return convert.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			nodes, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for i, item := range nodes {
				res[i] = convert.ToAny(item)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("has", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return res != nil, nil
		},
			new(func(string) bool)),
		expr.Function("num", func(params ...any) (any, error) {
			s, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("num expects a leaf, got %T", params[0])
			}
			return strconv.ParseFloat(s, 64)
		},
			new(func(any) float64)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
