package main

import (
	"fmt"
	"os"

	vdf "github.com/signadot/vdf-format"
	"github.com/signadot/vdf-format/encode"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a JSON patch, and a file to which to apply it", cli.ErrUsage)
	}
	ops := []byte(args[0])
	if !cfg.String {
		ops, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	target, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	res, err := vdf.Patch(target, ops)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
