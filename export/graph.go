package export

import (
	"iter"

	"github.com/treekit/treekit/tree"
)

// Nodes yields the nodes of root's subtree in preorder, for feeding graph
// or dataframe builders together with Edges.
func Nodes(root *tree.Node, keep tree.Keep) iter.Seq[*tree.Node] {
	return func(yield func(*tree.Node) bool) {
		for n := range root.Preorder(keep) {
			if !yield(n) {
				return
			}
		}
	}
}

// Edges yields the parent/child pairs of root's subtree, parents first.
func Edges(root *tree.Node, keep tree.Keep) iter.Seq2[*tree.Node, *tree.Node] {
	return func(yield func(*tree.Node, *tree.Node) bool) {
		for n, it := range root.Preorder(keep) {
			if it.Depth == 0 {
				continue
			}
			if !yield(n.Parent(), n) {
				return
			}
		}
	}
}
