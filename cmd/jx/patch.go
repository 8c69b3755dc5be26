package main

import (
	"fmt"

	jx "github.com/jx-format/go-jx"
	"github.com/jx-format/go-jx/encode"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	patchDoc, err := getObjFile(cc, args[0])
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range orStdin(args[1:]) {
		doc, err := getObjFile(cc, file)
		if err != nil {
			return err
		}
		res, err := jx.Patch(doc, patchDoc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return err
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
