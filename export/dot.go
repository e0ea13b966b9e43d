package export

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"github.com/treekit/treekit/tree"
)

// DotOption configures the Graphviz exporter.
type DotOption func(*dotWriter)

func DotWithName(name string) DotOption {
	return func(d *dotWriter) { d.name = name }
}

func DotWithKeep(keep tree.Keep) DotOption {
	return func(d *dotWriter) { d.keep = keep }
}

func DotWithRenderer(r Renderer) DotOption {
	return func(d *dotWriter) { d.render = r }
}

// DotWithNodeAttrs sets default attributes on every node statement.
func DotWithNodeAttrs(attrs map[string]string) DotOption {
	return func(d *dotWriter) { d.nodeAttrs = attrs }
}

// DotWithPath overrides the dot executable used by DotImage.
func DotWithPath(path string) DotOption {
	return func(d *dotWriter) { d.dotPath = path }
}

type dotWriter struct {
	name      string
	keep      tree.Keep
	render    Renderer
	nodeAttrs map[string]string
	dotPath   string
}

func newDotWriter(opts []DotOption) *dotWriter {
	d := &dotWriter{name: "tree", render: RenderID, dotPath: "dot"}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WriteDOT renders root's subtree as a Graphviz digraph. Nodes are keyed by
// preorder index so identifiers only need to be unique among siblings.
func WriteDOT(root *tree.Node, w io.Writer, opts ...DotOption) error {
	d := newDotWriter(opts)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", quoteDotID(d.name))
	if len(d.nodeAttrs) > 0 {
		keys := make([]string, 0, len(d.nodeAttrs))
		for k := range d.nodeAttrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = k + "=" + quoteDotID(d.nodeAttrs[k])
		}
		fmt.Fprintf(bw, "\tnode [%s];\n", strings.Join(pairs, ", "))
	}
	// ids[d] is the preorder index of the current ancestor at depth d.
	var ids []int
	i := 0
	for node, item := range root.Preorder(d.keep) {
		fmt.Fprintf(bw, "\tn%d [label=%s];\n", i, quoteDotID(d.render(node)))
		if item.Depth > 0 {
			fmt.Fprintf(bw, "\tn%d -> n%d;\n", ids[item.Depth-1], i)
		}
		ids = append(ids[:item.Depth], i)
		i++
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// DotImage renders root's subtree to an image file by piping the DOT text
// through the dot executable. The output format follows the file suffix.
func DotImage(ctx context.Context, root *tree.Node, outPath string, opts ...DotOption) error {
	d := newDotWriter(opts)
	typ := strings.TrimPrefix(strings.ToLower(pathExt(outPath)), ".")
	if typ == "" {
		return fmt.Errorf("dot: %q has no suffix to derive the image type from", outPath)
	}
	cmd := exec.CommandContext(ctx, d.dotPath, "-T"+typ, "-o", outPath)
	pr, pw := io.Pipe()
	cmd.Stdin = pr
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	werr := WriteDOT(root, pw, opts...)
	pw.Close()
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	return werr
}

func pathExt(p string) string {
	if i := strings.LastIndexByte(p, '.'); i >= 0 {
		return p[i:]
	}
	return ""
}

func quoteDotID(s string) string {
	return strconv.Quote(s)
}
