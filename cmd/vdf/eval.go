package main

import (
	"fmt"

	"github.com/signadot/vdf-format/encode"
	"github.com/signadot/vdf-format/eval"
	"github.com/signadot/vdf-format/ir"

	"github.com/scott-cotton/cli"
)

func evalFiles(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	code := args[0]
	n := 0
	for _, arg := range inputs(args[1:]) {
		doc, err := getObjFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := evalDoc(doc, code, cfg.Filter)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", arg, err)
		}
		if res == nil {
			continue
		}
		if n > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		n++
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

// evalDoc returns the result of code as a document named "result", or
// with filter, doc itself when code is true and nil otherwise.
func evalDoc(doc *ir.Node, code string, filter bool) (*ir.Node, error) {
	if filter {
		ok, err := eval.Filter(doc, code)
		if err != nil || !ok {
			return nil, err
		}
		return doc, nil
	}
	v, err := eval.Eval(doc, code)
	if err != nil {
		return nil, err
	}
	res, err := eval.ToNode(v)
	if err != nil {
		return nil, err
	}
	return ir.Doc("result", res), nil
}
