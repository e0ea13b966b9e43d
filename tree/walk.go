package tree

import "iter"

// Item carries the position metadata of a visited node: Depth relative to
// the traversal root (root = 0) and Index among its siblings at visit time
// (-1 for the root itself).
type Item struct {
	Index int
	Depth int
}

// Keep is a pruning predicate. Returning false excludes the node and its
// entire subtree from the traversal.
type Keep func(*Node, Item) bool

// MaxDepth keeps nodes with depth <= limit.
func MaxDepth(limit int) Keep {
	return func(_ *Node, it Item) bool { return it.Depth <= limit }
}

type frame struct {
	node *Node
	item Item
}

// Preorder visits n before its children, children in mapping order. The
// sequence is lazy and restartable; all traversals use explicit stacks so
// very deep trees cannot overflow the call stack.
func (n *Node) Preorder(keep Keep) iter.Seq2[*Node, Item] {
	return func(yield func(*Node, Item) bool) {
		root := Item{Index: -1, Depth: 0}
		if keep != nil && !keep(n, root) {
			return
		}
		if !yield(n, root) {
			return
		}
		stack := pushChildren(nil, n, 1)
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if keep != nil && !keep(f.node, f.item) {
				continue
			}
			if !yield(f.node, f.item) {
				return
			}
			stack = pushChildren(stack, f.node, f.item.Depth+1)
		}
	}
}

// pushChildren appends the children of n in reverse mapping order so the
// first child is popped first.
func pushChildren(stack []frame, n *Node, depth int) []frame {
	for i := n.Len() - 1; i >= 0; i-- {
		stack = append(stack, frame{node: n.At(i), item: Item{Index: i, Depth: depth}})
	}
	return stack
}

// Postorder visits n after all of its children. Pruning is still evaluated
// per node before descending, so a pruned node's subtree is never entered.
func (n *Node) Postorder(keep Keep) iter.Seq2[*Node, Item] {
	type pframe struct {
		node *Node
		item Item
		next int
	}
	return func(yield func(*Node, Item) bool) {
		root := Item{Index: -1, Depth: 0}
		if keep != nil && !keep(n, root) {
			return
		}
		stack := []pframe{{node: n, item: root}}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next < f.node.Len() {
				child := f.node.At(f.next)
				it := Item{Index: f.next, Depth: f.item.Depth + 1}
				f.next++
				if keep == nil || keep(child, it) {
					stack = append(stack, pframe{node: child, item: it})
				}
				continue
			}
			node, it := f.node, f.item
			stack = stack[:len(stack)-1]
			if !yield(node, it) {
				return
			}
		}
	}
}

// Levelorder visits nodes breadth-first; depth increases monotonically.
func (n *Node) Levelorder(keep Keep) iter.Seq2[*Node, Item] {
	return func(yield func(*Node, Item) bool) {
		root := Item{Index: -1, Depth: 0}
		if keep != nil && !keep(n, root) {
			return
		}
		if !yield(n, root) {
			return
		}
		queue := make([]frame, 0, n.Len())
		for i, c := range n.childSeq() {
			queue = append(queue, frame{node: c, item: Item{Index: i, Depth: 1}})
		}
		for head := 0; head < len(queue); head++ {
			f := queue[head]
			if keep != nil && !keep(f.node, f.item) {
				continue
			}
			if !yield(f.node, f.item) {
				return
			}
			for i, c := range f.node.childSeq() {
				queue = append(queue, frame{node: c, item: Item{Index: i, Depth: f.item.Depth + 1}})
			}
		}
	}
}

func (n *Node) childSeq() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		if n.children == nil {
			return
		}
		for i, c := range n.children.All() {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Size returns the number of nodes in n's subtree, n included.
func (n *Node) Size() int {
	res := 0
	for range n.Preorder(nil) {
		res++
	}
	return res
}

// LeafCount returns the number of leaves in n's subtree.
func (n *Node) LeafCount() int {
	res := 0
	for range n.Leaves() {
		res++
	}
	return res
}

// Ancestors yields parent, grandparent and further ancestors up to the root.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := n.parent; p != nil; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Siblings yields the other children of n's parent, in mapping order.
func (n *Node) Siblings() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n.parent == nil {
			return
		}
		for c := range n.parent.Children() {
			if c == n {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Leaves yields the leaf nodes of n's subtree in preorder.
func (n *Node) Leaves() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := range n.Preorder(nil) {
			if c.IsLeaf() && !yield(c) {
				return
			}
		}
	}
}
