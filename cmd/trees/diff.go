package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treekit/treekit/export"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	self, err := cfg.readTree(args[0])
	if err != nil {
		return err
	}
	other, err := cfg.readTree(args[1])
	if err != nil {
		return err
	}
	res := self.Compare(other, cfg.KeepEqual)
	if res == nil {
		return nil
	}
	if err := export.WriteDiff(res, cc.Out,
		export.DiffWithColor(cfg.colorEnabled(cc.Out))); err != nil {
		return err
	}
	// Report differences through the exit code, like diff(1).
	return cli.ExitCodeErr(1)
}
