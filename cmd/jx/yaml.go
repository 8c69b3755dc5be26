package main

import (
	"fmt"

	jx "github.com/jx-format/go-jx"
	"github.com/jx-format/go-jx/encode"

	"github.com/scott-cotton/cli"
)

func yamlConvert(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range orStdin(args) {
		d, err := readFileArg(cc, file)
		if err != nil {
			return err
		}
		node, err := jx.FromYAML(d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := encode.Encode(node, cc.Out, opts...); err != nil {
			return err
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
