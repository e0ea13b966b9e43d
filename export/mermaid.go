package export

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/treekit/treekit/tree"
)

// MermaidShape selects the node outline in a Mermaid flowchart.
type MermaidShape int

const (
	ShapeBox MermaidShape = iota
	ShapeRounded
	ShapeStadium
	ShapeCircle
	ShapeRhombus
)

var mermaidBrackets = map[MermaidShape][2]string{
	ShapeBox:     {"[", "]"},
	ShapeRounded: {"(", ")"},
	ShapeStadium: {"([", "])"},
	ShapeCircle:  {"((", "))"},
	ShapeRhombus: {"{", "}"},
}

// MermaidOption configures the Mermaid exporter.
type MermaidOption func(*mermaidWriter)

func MermaidWithKeep(keep tree.Keep) MermaidOption {
	return func(m *mermaidWriter) { m.keep = keep }
}

func MermaidWithRenderer(r Renderer) MermaidOption {
	return func(m *mermaidWriter) { m.render = r }
}

func MermaidWithShape(s MermaidShape) MermaidOption {
	return func(m *mermaidWriter) { m.shape = s }
}

// MermaidWithDirection sets the flowchart direction, "TD" by default.
func MermaidWithDirection(dir string) MermaidOption {
	return func(m *mermaidWriter) { m.direction = dir }
}

// MermaidWithPath overrides the mmdc executable used by MermaidImage.
func MermaidWithPath(path string) MermaidOption {
	return func(m *mermaidWriter) { m.mmdcPath = path }
}

type mermaidWriter struct {
	keep      tree.Keep
	render    Renderer
	shape     MermaidShape
	direction string
	mmdcPath  string
}

func newMermaidWriter(opts []MermaidOption) *mermaidWriter {
	m := &mermaidWriter{render: RenderID, direction: "TD", mmdcPath: "mmdc"}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WriteMermaid renders root's subtree as a Mermaid flowchart.
func WriteMermaid(root *tree.Node, w io.Writer, opts ...MermaidOption) error {
	m := newMermaidWriter(opts)
	lb, rb := mermaidBrackets[m.shape][0], mermaidBrackets[m.shape][1]
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "flowchart %s\n", m.direction)
	var ids []int
	i := 0
	for node, item := range root.Preorder(m.keep) {
		fmt.Fprintf(bw, "\tn%d%s%q%s\n", i, lb, m.render(node), rb)
		if item.Depth > 0 {
			fmt.Fprintf(bw, "\tn%d --> n%d\n", ids[item.Depth-1], i)
		}
		ids = append(ids[:item.Depth], i)
		i++
	}
	return bw.Flush()
}

// MermaidImage renders root's subtree to a file via the mermaid CLI. The
// output format follows the file suffix.
func MermaidImage(ctx context.Context, root *tree.Node, outPath string, opts ...MermaidOption) error {
	m := newMermaidWriter(opts)
	src, err := os.CreateTemp("", "tree-*.mmd")
	if err != nil {
		return fmt.Errorf("mermaid: %w", err)
	}
	defer os.Remove(src.Name())
	werr := WriteMermaid(root, src, opts...)
	if cerr := src.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("mermaid: %w", werr)
	}
	cmd := exec.CommandContext(ctx, m.mmdcPath, "-i", src.Name(), "-o", outPath)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("mermaid: %w", err)
	}
	return nil
}
