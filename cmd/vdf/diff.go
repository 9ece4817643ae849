package main

import (
	"fmt"
	"io"
	"strings"

	vdf "github.com/signadot/vdf-format"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d := vdf.Diff(y1, y2)
	if d == "" {
		return nil
	}
	if err := writeDiff(cc.Out, d, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeDiff(w io.Writer, d string, colors bool) error {
	if !colors {
		_, err := io.WriteString(w, d)
		return err
	}
	add := color.New(color.FgGreen).SprintFunc()
	del := color.New(color.FgRed).SprintFunc()
	for _, ln := range strings.Split(strings.TrimSuffix(d, "\n"), "\n") {
		switch ln[0] {
		case '+':
			ln = add(ln)
		case '-':
			ln = del(ln)
		}
		if _, err := io.WriteString(w, ln+"\n"); err != nil {
			return err
		}
	}
	return nil
}
