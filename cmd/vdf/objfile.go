package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/vdf-format/convert"
	"github.com/signadot/vdf-format/format"
	"github.com/signadot/vdf-format/ir"
	"github.com/signadot/vdf-format/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return decode(cfg, cfg.inFormat(path), d)
}

func decode(cfg *MainConfig, f format.Format, d []byte) (*ir.Node, error) {
	switch f {
	case format.YAMLFormat:
		return convert.FromYAML(d)
	case format.JSONFormat:
		return convert.FromJSON(d)
	default:
		return parse.Parse(d, cfg.parseOpts()...)
	}
}

// inputs returns args, or stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeSep(w io.Writer) error {
	_, err := w.Write([]byte("\n"))
	return err
}
