package main

import (
	"fmt"

	"github.com/jx-format/go-jx/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return viewFiles(cfg.MainConfig, cc, orStdin(args))
}

func minimize(cfg *MinConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Min.Parse(cc, args)
	if err != nil {
		return err
	}
	mCfg := *cfg.MainConfig
	mCfg.Compact = true
	return viewFiles(&mCfg, cc, orStdin(args))
}

func viewFiles(cfg *MainConfig, cc *cli.Context, files []string) error {
	opts := cfg.encOpts(cc.Out)
	for _, file := range files {
		node, err := getObjFile(cc, file)
		if err != nil {
			return err
		}
		if err := encode.Encode(node, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
