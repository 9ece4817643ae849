package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/vdf-format/encode"
	"github.com/signadot/vdf-format/parse"

	"github.com/scott-cotton/cli"
	"golang.org/x/sync/errgroup"
)

type fmtResult struct {
	file    string
	in, out []byte
}

func (r *fmtResult) changed() bool {
	return !bytes.Equal(r.in, r.out)
}

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: fmt requires at least one file", cli.ErrUsage)
	}
	results := make([]fmtResult, len(args))
	var g errgroup.Group
	if cfg.Jobs > 0 {
		g.SetLimit(cfg.Jobs)
	}
	for i, file := range args {
		g.Go(func() error {
			in, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			out, err := formatDoc(in, cfg.parseOpts()...)
			if err != nil {
				return fmt.Errorf("error formatting %s: %w", file, err)
			}
			results[i] = fmtResult{file: file, in: in, out: out}
			if cfg.Write && results[i].changed() {
				return os.WriteFile(file, out, 0644)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i := range results {
		r := &results[i]
		switch {
		case cfg.List:
			if r.changed() {
				fmt.Fprintln(cc.Out, r.file)
			}
		case !cfg.Write:
			if _, err := cc.Out.Write(r.out); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatDoc renders d canonically. A trailing newline in d is kept.
func formatDoc(d []byte, opts ...parse.ParseOption) ([]byte, error) {
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	nl := encode.TrailingNewline(bytes.HasSuffix(d, []byte("\n")))
	if err := encode.Encode(doc, &buf, nl); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
