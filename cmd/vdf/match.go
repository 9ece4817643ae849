package main

import (
	"fmt"
	"io"
	"os"

	vdf "github.com/signadot/vdf-format"
	"github.com/signadot/vdf-format/encode"
	"github.com/signadot/vdf-format/ir"
	"github.com/signadot/vdf-format/parse"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern document", cli.ErrUsage)
	}
	pattern, err := getPattern(cfg, cc, args[0])
	if err != nil {
		return err
	}
	n := 0
	for _, arg := range inputs(args[1:]) {
		doc, err := getObjFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if !vdf.Match(doc, pattern, vdf.MatchWildcard(cfg.Wildcard)) {
			continue
		}
		if cfg.Trim {
			doc = vdf.Trim(pattern, doc)
		}
		if n > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		n++
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	if n == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// getPattern reads the pattern as a string with -s, as a file with -f, and
// otherwise as a file when arg names one.
func getPattern(cfg *MatchConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	if cfg.String && cfg.File {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var d []byte
	switch {
	case cfg.String:
		d = []byte(arg)
	case arg == "-":
		b, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading match: %w", err)
		}
		d = b
	default:
		b, err := os.ReadFile(arg)
		if err != nil {
			if cfg.File || !os.IsNotExist(err) {
				return nil, fmt.Errorf("error opening %s: %w", arg, err)
			}
			b = []byte(arg)
		}
		d = b
	}
	res, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding match: %w", err)
	}
	return res, nil
}
