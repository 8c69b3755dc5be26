package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jx-format/go-jx/ir"
	"github.com/jx-format/go-jx/parse"

	"github.com/scott-cotton/cli"
)

func jxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// getObjFile parses one document from file, "-" meaning cc.In.
func getObjFile(cc *cli.Context, file string, opts ...parse.Option) (*ir.Node, error) {
	d, err := readFileArg(cc, file)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return node, nil
}

func readFileArg(cc *cli.Context, file string) ([]byte, error) {
	var r io.Reader = cc.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return d, nil
}

func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
