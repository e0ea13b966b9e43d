// Package export converts trees to and from flat and rendered
// representations: path rows, parent/child relations, nested documents
// (JSON/YAML), Graphviz DOT, Mermaid and box-drawing text.
package export

import (
	"iter"

	"github.com/treekit/treekit/tree"
)

// Row pairs a root-relative path with the payload stored there. The root
// itself appears as a row with an empty path.
type Row struct {
	Path []string
	Data any
}

// ToRows streams one row per node in preorder, paths relative to root.
func ToRows(root *tree.Node, keep tree.Keep) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		// Path segments are rebuilt incrementally from depth deltas.
		var segs []string
		for node, item := range root.Preorder(keep) {
			if item.Depth == 0 {
				if !yield(Row{Data: node.Data}) {
					return
				}
				continue
			}
			segs = append(segs[:item.Depth-1], node.ID())
			row := Row{Path: make([]string, item.Depth), Data: node.Data}
			copy(row.Path, segs)
			if !yield(row) {
				return
			}
		}
	}
}

// FromRows rebuilds a tree from rows, creating missing intermediate nodes
// with nil payloads. A row with an empty path sets the root payload. Later
// rows win on duplicate paths.
func FromRows(rows iter.Seq[Row], opts ...tree.Option) *tree.Node {
	root := tree.New("", opts...)
	for row := range rows {
		root.Path().CreateSegments(row.Path).Data = row.Data
	}
	return root
}
