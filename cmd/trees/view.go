package main

import (
	"github.com/scott-cotton/cli"

	"github.com/treekit/treekit/export"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts, err := cfg.textOpts(cc.Out)
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args) {
		root, err := cfg.readTree(arg)
		if err != nil {
			return err
		}
		if err := export.WriteText(root, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range argsOrStdin(args) {
		root, err := cfg.readTree(arg)
		if err != nil {
			return err
		}
		if err := cfg.writeTree(root, cc.Out); err != nil {
			return err
		}
	}
	return nil
}
