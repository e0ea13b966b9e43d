package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/treekit/treekit/tree"
)

// DiffOption configures the difference-tree renderer.
type DiffOption func(*diffWriter)

// DiffWithColor enables colored markers and inline highlights. Off by
// default; color.NoColor still applies on top.
func DiffWithColor(v bool) DiffOption {
	return func(d *diffWriter) { d.color = v }
}

func DiffWithStyle(s TextStyle) DiffOption {
	return func(d *diffWriter) { d.style = s }
}

type diffWriter struct {
	style TextStyle
	color bool

	ins, del, chg func(a ...any) string
}

func plainSprint(a ...any) string { return fmt.Sprint(a...) }

// WriteDiff renders a difference tree produced by tree.Compare as an
// indented listing. Each line starts with a marker: "+" only in other, "-"
// only in self, "~" changed payload, and a space for structural carriers.
// Changed string payloads get an inline character diff.
func WriteDiff(root *tree.Node, w io.Writer, opts ...DiffOption) error {
	d := &diffWriter{style: SquareStyle, ins: plainSprint, del: plainSprint, chg: plainSprint}
	for _, opt := range opts {
		opt(d)
	}
	if d.color {
		d.ins = color.New(color.FgGreen).SprintFunc()
		d.del = color.New(color.FgRed).SprintFunc()
		d.chg = color.New(color.FgYellow).SprintFunc()
	}
	bw := bufio.NewWriter(w)
	var prefix []string
	for node, item := range root.Preorder(nil) {
		line := d.renderNode(node)
		if item.Depth == 0 {
			bw.WriteString(line)
			bw.WriteByte('\n')
			continue
		}
		last := node.Parent().At(node.Parent().Len()-1) == node
		prefix = prefix[:item.Depth-1]
		bw.WriteString(strings.Join(prefix, ""))
		if last {
			bw.WriteString(d.style.Last)
			prefix = append(prefix, d.style.Blank)
		} else {
			bw.WriteString(d.style.Branch)
			prefix = append(prefix, d.style.Vertical)
		}
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DiffString renders a difference tree to a string.
func DiffString(root *tree.Node, opts ...DiffOption) string {
	var b strings.Builder
	WriteDiff(root, &b, opts...)
	return b.String()
}

func (d *diffWriter) renderNode(n *tree.Node) string {
	df, ok := n.Data.(*tree.Diff)
	if !ok {
		return "  " + n.ID()
	}
	switch {
	case !df.HasSelf && !df.HasOther:
		return "  " + n.ID()
	case !df.HasOther:
		return d.del(fmt.Sprintf("- %s %v", n.ID(), df.Self))
	case !df.HasSelf:
		return d.ins(fmt.Sprintf("+ %s %v", n.ID(), df.Other))
	case df.Equal():
		return "  " + n.ID()
	}
	a, aok := df.Self.(string)
	b, bok := df.Other.(string)
	if aok && bok {
		return d.chg("~ "+n.ID()+" ") + d.inline(a, b)
	}
	return d.chg(fmt.Sprintf("~ %s %v => %v", n.ID(), df.Self, df.Other))
}

// inline renders a character-level diff of two string payloads.
func (d *diffWriter) inline(a, b string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var sb strings.Builder
	for _, df := range diffs {
		switch df.Type {
		case diffpatch.DiffDelete:
			sb.WriteString(d.del("[-" + df.Text + "]"))
		case diffpatch.DiffInsert:
			sb.WriteString(d.ins("[+" + df.Text + "]"))
		default:
			sb.WriteString(df.Text)
		}
	}
	return sb.String()
}
