package tree

import (
	"fmt"
	"iter"
	"slices"
)

// LCA returns the lowest common ancestor of a and b: the deeper node is
// walked up to equal depth, then both walk up in lockstep until they meet.
// Fails with ErrDifferentTree if the nodes do not share a root.
func LCA(a, b *Node) (*Node, error) {
	x, y := a, b
	dx, dy := x.Depth(), y.Depth()
	for dx > dy {
		x, dx = x.parent, dx-1
	}
	for dy > dx {
		y, dy = y.parent, dy-1
	}
	for x != y {
		x, y = x.parent, y.parent
	}
	if x == nil {
		return nil, fmt.Errorf("%w: %q and %q", ErrDifferentTree, a.id, b.id)
	}
	return x, nil
}

// Route is the node sequence connecting two nodes of the same tree through
// their lowest common ancestor, which appears exactly once.
type Route struct {
	nodes []*Node
	lca   *Node
}

// NewRoute computes the route a -> ... -> lca -> ... -> b. For a == b the
// route has a single node and no edges; if one node is an ancestor of the
// other, the route is the downward path only.
func NewRoute(a, b *Node) (*Route, error) {
	lca, err := LCA(a, b)
	if err != nil {
		return nil, err
	}
	var nodes []*Node
	for x := a; x != lca; x = x.parent {
		nodes = append(nodes, x)
	}
	nodes = append(nodes, lca)
	var down []*Node
	for y := b; y != lca; y = y.parent {
		down = append(down, y)
	}
	slices.Reverse(down)
	return &Route{nodes: append(nodes, down...), lca: lca}, nil
}

// LCA returns the route's lowest common ancestor.
func (r *Route) LCA() *Node { return r.lca }

// NodeCount returns the number of nodes on the route.
func (r *Route) NodeCount() int { return len(r.nodes) }

// EdgeCount returns the number of edges on the route.
func (r *Route) EdgeCount() int { return len(r.nodes) - 1 }

// Nodes iterates the route from its first endpoint to its second.
func (r *Route) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, n := range r.nodes {
			if !yield(n) {
				return
			}
		}
	}
}

// Edges iterates consecutive node pairs along the route.
func (r *Route) Edges() iter.Seq2[*Node, *Node] {
	return func(yield func(*Node, *Node) bool) {
		for i := 1; i < len(r.nodes); i++ {
			if !yield(r.nodes[i-1], r.nodes[i]) {
				return
			}
		}
	}
}
