package main

import (
	"io"
	"os"

	"github.com/jx-format/go-jx/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='minimized output'"`
	Color   bool `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.Compact),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.Compact {
		return res
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type MinConfig struct {
	*MainConfig
	Min *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

type YAMLConfig struct {
	*MainConfig
	YAML *cli.Command
}
