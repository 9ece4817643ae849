package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/vdf-format/encode"
	"github.com/signadot/vdf-format/format"
	"github.com/signadot/vdf-format/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color     bool `cli:"name=color desc='encode with color'"`
	MultiRoot bool `cli:"name=m aliases=multi desc='allow several top-level entries'"`
	MaxDepth  int  `cli:"name=depth desc='maximum block nesting'"`
	NL        bool `cli:"name=nl desc='end output with a newline'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{parse.MaxDepth(cfg.MaxDepth)}
	if cfg.MultiRoot {
		res = append(res, parse.MultiRoot())
	}
	return res
}

// inFormat returns the format in which to read path: the -I format if
// given, otherwise the one named by its suffix.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.TrailingNewline(cfg.NL),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether to color output to w: as set by -color, or
// when w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write result to the source file'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`
	Jobs  int  `cli:"name=j desc='number of files formatted at once'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	List bool `cli:"name=l desc='list every match of the path'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim     bool   `cli:"name=trim desc='trim the results to the match'"`
	String   bool   `cli:"name=s desc='consider match a string argument'"`
	File     bool   `cli:"name=f desc='consider match a file path'"`
	Wildcard string `cli:"name=wild desc='leaf text matching any value'"`
}

type EvalConfig struct {
	*MainConfig
	Filter bool `cli:"name=f desc='print documents for which the expression is true'"`

	Eval *cli.Command
}
