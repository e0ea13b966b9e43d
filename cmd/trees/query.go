package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treekit/treekit/tree"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range argsOrStdin(args[1:]) {
		root, err := cfg.readTree(arg)
		if err != nil {
			return err
		}
		node, err := root.Path().Resolve(path)
		if err != nil {
			return fmt.Errorf("error resolving %q in %s: %w", path, arg, err)
		}
		if err := cfg.writeTree(node, cc.Out); err != nil {
			return err
		}
	}
	return nil
}

func glob(cfg *GlobConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: glob requires one argument, a pattern", cli.ErrUsage)
	}
	pattern := args[0]
	for _, arg := range argsOrStdin(args[1:]) {
		root, err := cfg.readTree(arg)
		if err != nil {
			return err
		}
		matches, err := root.Path().Glob(pattern)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for n := range matches {
			fmt.Fprintln(cc.Out, n.Path())
		}
	}
	return nil
}

func route(cfg *RouteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Route.Parse(cc, args)
	if err != nil {
		cfg.Route.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: route requires two path arguments", cli.ErrUsage)
	}
	pa, pb := args[0], args[1]
	for _, arg := range argsOrStdin(args[2:]) {
		root, err := cfg.readTree(arg)
		if err != nil {
			return err
		}
		a, err := root.Path().Resolve(pa)
		if err != nil {
			return fmt.Errorf("error resolving %q in %s: %w", pa, arg, err)
		}
		b, err := root.Path().Resolve(pb)
		if err != nil {
			return fmt.Errorf("error resolving %q in %s: %w", pb, arg, err)
		}
		r, err := tree.NewRoute(a, b)
		if err != nil {
			return err
		}
		for n := range r.Nodes() {
			mark := " "
			if n == r.LCA() {
				mark = "*"
			}
			fmt.Fprintf(cc.Out, "%s %s\n", mark, n.Path())
		}
	}
	return nil
}
