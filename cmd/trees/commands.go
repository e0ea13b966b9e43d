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
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: newick/n, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, {
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: newick/n, json/j, yaml/y, dot/d, mermaid/m, text/t",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "trees").
		WithSynopsis("trees [opts] command [opts]").
		WithDescription("trees is a tool for working with hierarchical data.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return treesMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			ConvertCommand(cfg),
			GetCommand(cfg),
			GlobCommand(cfg),
			RouteCommand(cfg),
			DiffCommand(cfg),
			RenderCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [opts] [files]").
		WithDescription("render tree files as indented listings").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "co").
		WithSynopsis("convert [files]").
		WithDescription("convert tree files between formats").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get the subtree at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func GlobCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GlobConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "glob").
		WithAliases("gl").
		WithSynopsis("glob <pattern> [files]").
		WithDescription("list the paths matching a pattern, ** spans levels").
		WithRun(func(cc *cli.Context, args []string) error {
			return glob(cfg, cc, args)
		})
}

func RouteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RouteConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Route, "route").
		WithAliases("r", "lca").
		WithSynopsis("route <path> <path> [file]").
		WithDescription("show the route between two paths through their common ancestor").
		WithRun(func(cc *cli.Context, args []string) error {
			return route(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff <file> <file>").
		WithDescription("compare two tree files by position").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Render, "render").
		WithAliases("img").
		WithOpts(opts...).
		WithSynopsis("render [opts] <out-image> [file]").
		WithDescription("render a tree file to an image via dot or mmdc").
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
}
