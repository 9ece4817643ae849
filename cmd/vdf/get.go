package main

import (
	"fmt"

	"github.com/signadot/vdf-format/encode"
	"github.com/signadot/vdf-format/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a document path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	sep := false
	for _, arg := range inputs(args[1:]) {
		doc, err := getObjFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := query(doc, path, cfg.List)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
		for _, node := range res {
			if sep {
				if err := writeSep(cc.Out); err != nil {
					return err
				}
			}
			sep = true
			if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
	}
	return nil
}

// query returns the nodes at path as documents named by their key, all
// matches when list is set and the first otherwise.
func query(doc *ir.Node, path string, list bool) ([]*ir.Node, error) {
	var found []*ir.Node
	if list {
		res, err := doc.ListPath(nil, path)
		if err != nil {
			return nil, err
		}
		found = res
	} else {
		res, err := doc.GetPath(path)
		if err != nil {
			return nil, err
		}
		if res == nil {
			// don't encode anything and don't yell either
			return nil, nil
		}
		found = []*ir.Node{res}
	}
	docs := make([]*ir.Node, 0, len(found))
	for _, node := range found {
		name := node.ParentField
		if node.Parent == nil {
			docs = append(docs, node.Clone())
			continue
		}
		docs = append(docs, ir.Doc(name, node.Clone()))
	}
	return docs, nil
}
