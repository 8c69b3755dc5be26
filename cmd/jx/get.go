package main

import (
	"fmt"

	"github.com/jx-format/go-jx/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a document path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range orStdin(args[1:]) {
		node, err := getObjFile(cc, file)
		if err != nil {
			return err
		}
		res, err := node.GetPath(path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
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
