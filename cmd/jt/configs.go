package main

import (
	"io"
	"os"

	"github.com/jsontree/go-jsontree/encode"
	"github.com/jsontree/go-jsontree/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact single-line form'"`
	Keep    bool `cli:"name=k aliases=keep desc='keep object key insertion order'"`
	Dec     bool `cli:"name=dec desc='plain decimal numbers, no exponents'"`

	Indent   int `cli:"name=indent desc='indent width (default 2)'"`
	MaxDepth int `cli:"name=depth desc='max parse nesting depth'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	res := []parse.Option{}
	if cfg.MaxDepth > 0 {
		res = append(res, parse.MaxDepth(cfg.MaxDepth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	res := []encode.Option{
		encode.Compact(cfg.WireOut),
		encode.SortKeys(!cfg.Keep),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Dec {
		res = append(res, encode.FloatFormat(encode.FloatDecimal))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit status, no output'"`
	Tree  bool `cli:"name=s aliases=tree desc='structural diff output as a JSON document'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m aliases=merge desc='treat the patch as an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type YAMLConfig struct {
	*MainConfig
	To bool `cli:"name=to desc='convert JSON input to YAML instead'"`

	YAML *cli.Command
}
