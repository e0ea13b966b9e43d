package newick

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/treekit/treekit/tree"
)

// EncodeOption configures serialization.
type EncodeOption func(*encoder)

// EncodeDialect selects the output dialect; the default is DefaultDialect.
func EncodeDialect(d Dialect) EncodeOption {
	return func(e *encoder) { e.dialect = d }
}

// EncodeBranchLengths toggles writing DistanceKey payloads (default on).
func EncodeBranchLengths(v bool) EncodeOption {
	return func(e *encoder) { e.branchLengths = v }
}

// EncodeComments toggles writing CommentKey payloads (default on).
func EncodeComments(v bool) EncodeOption {
	return func(e *encoder) { e.comments = v }
}

// EscapeComments overrides the dialect's comment escaping.
func EscapeComments(v bool) EncodeOption {
	return func(e *encoder) { e.dialect.EscapeComments = v }
}

type encoder struct {
	dialect       Dialect
	branchLengths bool
	comments      bool
	w             *bufio.Writer
}

// Serialize writes root's subtree to w in Newick notation, terminated by a
// semicolon. The writer runs a single postorder pass, emitting parentheses
// and commas from the depth deltas between consecutive nodes.
func Serialize(root *tree.Node, w io.Writer, opts ...EncodeOption) error {
	e := &encoder{
		dialect:       DefaultDialect,
		branchLengths: true,
		comments:      true,
		w:             bufio.NewWriter(w),
	}
	for _, opt := range opts {
		opt(e)
	}
	prev := 0
	for node, item := range root.Postorder(nil) {
		if item.Depth >= prev {
			if prev > 0 {
				e.w.WriteByte(',')
			}
			for range item.Depth - prev {
				e.w.WriteByte('(')
			}
		} else {
			for range prev - item.Depth {
				e.w.WriteByte(')')
			}
		}
		e.writeLabel(node.ID())
		e.writeData(node)
		prev = item.Depth
	}
	e.w.WriteByte(';')
	return e.w.Flush()
}

// String renders root's subtree as a Newick string.
func String(root *tree.Node, opts ...EncodeOption) string {
	var b bytes.Buffer
	Serialize(root, &b, opts...)
	return b.String()
}

func needsQuote(name string) bool {
	return strings.ContainsAny(name, "()[]:;,' \t\n\r")
}

func (e *encoder) writeLabel(name string) {
	if !e.dialect.QuoteNames && !needsQuote(name) {
		e.w.WriteString(name)
		return
	}
	e.w.WriteByte('\'')
	e.w.WriteString(strings.ReplaceAll(name, "'", "''"))
	e.w.WriteByte('\'')
}

func (e *encoder) writeData(n *tree.Node) {
	attrs, ok := n.Data.(map[string]any)
	if !ok {
		return
	}
	if e.branchLengths {
		if d, ok := attrs[DistanceKey]; ok {
			e.w.WriteByte(':')
			e.w.WriteString(formatValue(d))
		}
	}
	var keys []string
	for k := range attrs {
		if k != DistanceKey && k != CommentKey {
			keys = append(keys, k)
		}
	}
	if len(keys) > 0 && e.dialect.NHXPrefix != "" {
		sort.Strings(keys)
		e.w.WriteByte('[')
		e.w.WriteString(e.dialect.NHXPrefix)
		for _, k := range keys {
			e.w.WriteByte(':')
			e.w.WriteString(e.escape(k))
			e.w.WriteByte('=')
			e.w.WriteString(e.escape(formatValue(attrs[k])))
		}
		e.w.WriteByte(']')
	}
	if e.comments {
		if c, ok := attrs[CommentKey].(string); ok && c != "" {
			e.w.WriteByte('[')
			e.w.WriteString(e.escape(c))
			e.w.WriteByte(']')
		}
	}
}

func (e *encoder) escape(s string) string {
	if !e.dialect.EscapeComments {
		return s
	}
	return escaper.Replace(s)
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
