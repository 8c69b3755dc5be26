package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jx").
		WithSynopsis("jx [opts] command [opts]").
		WithDescription("jx is a tool for working with JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jxMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			MinCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			YAMLCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("pretty-print JSON files, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func MinCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MinConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("min").
		WithAliases("m").
		WithSynopsis("min [files]").
		WithDescription("re-encode JSON files with all whitespace removed").
		WithRun(func(cc *cli.Context, args []string) error {
			return minimize(cfg, cc, args)
		})
	cfg.Min = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get document elements from files by path, eg $.a.b[0]").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("line diff of two documents in pretty form").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch <patchfile> [files]").
		WithDescription("apply an RFC 6902 patch to documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func YAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &YAMLConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("yaml").
		WithAliases("y").
		WithSynopsis("yaml [files]").
		WithDescription("convert YAML documents to JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return yamlConvert(cfg, cc, args)
		})
	cfg.YAML = cmd
	return cmd
}
