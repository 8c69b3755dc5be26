package main

import (
	"fmt"

	jx "github.com/jx-format/go-jx"

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
	a, err := getObjFile(cc, args[0])
	if err != nil {
		return err
	}
	b, err := getObjFile(cc, args[1])
	if err != nil {
		return err
	}
	d := jx.Diff(a, b)
	if d == "" {
		return nil
	}
	if _, err := cc.Out.Write([]byte(d)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
