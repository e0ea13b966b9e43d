package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/treekit/treekit/tree"
)

// TextStyle holds the four connector glyph sets of a box-drawing rendering.
type TextStyle struct {
	Branch   string // child with following siblings
	Last     string // last child
	Vertical string // continuation under Branch
	Blank    string // continuation under Last
}

var (
	SquareStyle = TextStyle{"├── ", "└── ", "│   ", "    "}
	RoundStyle  = TextStyle{"├── ", "╰── ", "│   ", "    "}
	ASCIIStyle  = TextStyle{"|-- ", "`-- ", "|   ", "    "}
)

// Renderer produces the label line of a node.
type Renderer func(*tree.Node) string

// RenderID is the default renderer: the identifier only.
func RenderID(n *tree.Node) string { return n.ID() }

// RenderData shows the identifier and a compact payload.
func RenderData(n *tree.Node) string {
	if n.Data == nil {
		return n.ID()
	}
	return fmt.Sprintf("%s %v", n.ID(), n.Data)
}

// TextOption configures the text renderer.
type TextOption func(*textWriter)

func TextWithStyle(s TextStyle) TextOption {
	return func(t *textWriter) { t.style = s }
}

func TextWithRenderer(r Renderer) TextOption {
	return func(t *textWriter) { t.render = r }
}

func TextWithKeep(keep tree.Keep) TextOption {
	return func(t *textWriter) { t.keep = keep }
}

// TextWithColor dims the connector glyphs. Off by default; color.NoColor
// still applies on top.
func TextWithColor(v bool) TextOption {
	return func(t *textWriter) { t.color = v }
}

type textWriter struct {
	style  TextStyle
	render Renderer
	keep   tree.Keep
	color  bool
}

var connectorColor = color.New(color.FgHiBlack)

// WriteText renders root's subtree as an indented listing with box-drawing
// connectors, one node per line, in preorder.
func WriteText(root *tree.Node, w io.Writer, opts ...TextOption) error {
	t := &textWriter{style: SquareStyle, render: RenderID}
	for _, opt := range opts {
		opt(t)
	}
	glyph := func(s string) string {
		if t.color {
			return connectorColor.Sprint(s)
		}
		return s
	}
	bw := bufio.NewWriter(w)
	// prefix[d-1] is the continuation string owed to depth d.
	var prefix []string
	for node, item := range root.Preorder(t.keep) {
		if item.Depth == 0 {
			bw.WriteString(t.render(node))
			bw.WriteByte('\n')
			continue
		}
		last := node.Parent().At(node.Parent().Len()-1) == node
		prefix = prefix[:item.Depth-1]
		bw.WriteString(strings.Join(prefix, ""))
		if last {
			bw.WriteString(glyph(t.style.Last))
			prefix = append(prefix, glyph(t.style.Blank))
		} else {
			bw.WriteString(glyph(t.style.Branch))
			prefix = append(prefix, glyph(t.style.Vertical))
		}
		bw.WriteString(t.render(node))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// TextString renders root's subtree to a string.
func TextString(root *tree.Node, opts ...TextOption) string {
	var b strings.Builder
	WriteText(root, &b, opts...)
	return b.String()
}
