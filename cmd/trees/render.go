package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/scott-cotton/cli"

	"github.com/treekit/treekit/export"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		cfg.Render.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: render requires an output image argument", cli.ErrUsage)
	}
	out := args[0]
	src := "-"
	if len(args) > 1 {
		src = args[1]
	}
	root, err := cfg.readTree(src)
	if err != nil {
		return err
	}
	keep, err := cfg.keepFunc()
	if err != nil {
		return err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if cfg.Mermaid {
		opts := []export.MermaidOption{export.MermaidWithKeep(keep)}
		if cfg.Exe != "" {
			opts = append(opts, export.MermaidWithPath(cfg.Exe))
		}
		return export.MermaidImage(ctx, root, out, opts...)
	}
	opts := []export.DotOption{export.DotWithKeep(keep)}
	if cfg.Exe != "" {
		opts = append(opts, export.DotWithPath(cfg.Exe))
	}
	return export.DotImage(ctx, root, out, opts...)
}
