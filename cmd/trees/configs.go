package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/treekit/treekit/export"
	"github.com/treekit/treekit/format"
	"github.com/treekit/treekit/newick"
	"github.com/treekit/treekit/tree"
)

type MainConfig struct {
	N bool `cli:"name=n aliases=newick desc='do i/o in newick'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Keep  string `cli:"name=keep desc='prune nodes failing this expression (id, depth, index, leaf, data)'"`
	Color bool   `cli:"name=color desc='render with color'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.N:
		return format.NewickFormat, true
	case cfg.J:
		return format.JSONFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	}
	return format.NewickFormat, false
}

func (cfg *MainConfig) inFormat(name string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	if name != "-" {
		return format.FromSuffix(name)
	}
	return format.NewickFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Out != "" && cfg.Out != "-" {
		return format.FromSuffix(cfg.Out)
	}
	f, _ := cfg.flagFormat()
	return f
}

func (cfg *MainConfig) keepFunc() (tree.Keep, error) {
	if cfg.Keep == "" {
		return nil, nil
	}
	keep, err := tree.CompileKeep(cfg.Keep)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return keep, nil
}

func (cfg *MainConfig) colorEnabled(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// readTree decodes one tree from a file argument, "-" meaning stdin.
func (cfg *MainConfig) readTree(arg string) (*tree.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	var (
		root *tree.Node
		err  error
	)
	switch cfg.inFormat(arg) {
	case format.JSONFormat:
		root, err = export.DecodeJSON(r)
	case format.YAMLFormat:
		root, err = export.DecodeYAML(r)
	default:
		root, err = newick.ParseReader(r)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return root, nil
}

// writeTree encodes root to w in the selected output format.
func (cfg *MainConfig) writeTree(root *tree.Node, w io.Writer) error {
	keep, err := cfg.keepFunc()
	if err != nil {
		return err
	}
	if keep != nil {
		if root = root.Copy(keep); root == nil {
			return fmt.Errorf("-keep %q prunes the whole tree", cfg.Keep)
		}
	}
	switch cfg.outFormat() {
	case format.JSONFormat:
		return export.EncodeJSON(root, w, nil)
	case format.YAMLFormat:
		return export.EncodeYAML(root, w, nil)
	case format.DOTFormat:
		return export.WriteDOT(root, w)
	case format.MermaidFormat:
		return export.WriteMermaid(root, w)
	case format.TextFormat:
		return export.WriteText(root, w,
			export.TextWithRenderer(export.RenderData),
			export.TextWithColor(cfg.colorEnabled(w)))
	default:
		return newick.Serialize(root, w)
	}
}

type ViewConfig struct {
	*MainConfig

	Style string `cli:"name=style desc='connector style: square, round, ascii'"`
	Data  bool   `cli:"name=d desc='show payloads'"`

	View *cli.Command
}

func (cfg *ViewConfig) textOpts(w io.Writer) ([]export.TextOption, error) {
	res := []export.TextOption{
		export.TextWithColor(cfg.colorEnabled(w)),
	}
	switch cfg.Style {
	case "", "square":
	case "round":
		res = append(res, export.TextWithStyle(export.RoundStyle))
	case "ascii":
		res = append(res, export.TextWithStyle(export.ASCIIStyle))
	default:
		return nil, fmt.Errorf("%w: unknown style %q", cli.ErrUsage, cfg.Style)
	}
	if cfg.Data {
		res = append(res, export.TextWithRenderer(export.RenderData))
	}
	keep, err := cfg.keepFunc()
	if err != nil {
		return nil, err
	}
	if keep != nil {
		res = append(res, export.TextWithKeep(keep))
	}
	return res, nil
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type GlobConfig struct {
	*MainConfig

	Get *cli.Command
}

type RouteConfig struct {
	*MainConfig

	Route *cli.Command
}

type DiffConfig struct {
	*MainConfig

	KeepEqual bool `cli:"name=a aliases=all desc='keep equal nodes in the diff'"`

	Diff *cli.Command
}

type RenderConfig struct {
	*MainConfig

	Mermaid bool   `cli:"name=m aliases=mermaid desc='render via mmdc instead of dot'"`
	Exe     string `cli:"name=exe desc='path to the dot or mmdc executable'"`

	Render *cli.Command
}
