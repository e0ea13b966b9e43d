// Package tree implements an in-memory tree of identified nodes with a
// dict-like mutation API, iterative traversal, path addressing, route
// computation and structural comparison.
//
// Every node has at most one parent, identifiers are unique among siblings
// and no node can become its own ancestor; these invariants are enforced on
// every mutation. Trees are not safe for concurrent mutation; callers that
// share a tree across goroutines must provide their own mutual exclusion.
package tree

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Node is a single element of a tree. The identifier distinguishes a node
// among its siblings. Data is an opaque payload the library never inspects;
// distinct nodes may deliberately share the same payload value.
type Node struct {
	id       string
	parent   *Node
	children ChildMap
	newMap   MapFactory

	Data any
}

// Option configures a node at construction time.
type Option func(*Node)

// WithData sets the initial payload.
func WithData(v any) Option {
	return func(n *Node) { n.Data = v }
}

// WithChildMap selects the ordered-map backend for this node and for nodes
// created below it. A nil factory keeps the default insertion-ordered map.
func WithChildMap(f MapFactory) Option {
	return func(n *Node) { n.newMap = f }
}

// New creates a standalone node with no parent and no children.
func New(id string, opts ...Option) *Node {
	n := &Node{id: id}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Node) String() string { return n.id }

// ID returns the node's identifier.
func (n *Node) ID() string { return n.id }

// Parent returns the node holding n, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Root walks the parent chain up to the root.
func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

func (n *Node) IsRoot() bool { return n.parent == nil }

func (n *Node) IsLeaf() bool { return n.children == nil || n.children.Len() == 0 }

// Len returns the number of children.
func (n *Node) Len() int {
	if n.children == nil {
		return 0
	}
	return n.children.Len()
}

// Get returns the child stored under key, or nil.
func (n *Node) Get(key string) *Node {
	if n.children == nil {
		return nil
	}
	c, _ := n.children.Lookup(key)
	return c
}

// Contains reports whether a child with the given identifier exists.
func (n *Node) Contains(key string) bool { return n.Get(key) != nil }

// At returns the i-th child in mapping order.
func (n *Node) At(i int) *Node { return n.children.At(i) }

// Keys returns the child identifiers in mapping order.
func (n *Node) Keys() []string {
	keys := make([]string, 0, n.Len())
	for c := range n.Children() {
		keys = append(keys, c.id)
	}
	return keys
}

// Children iterates over the children in mapping order.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n.children == nil {
			return
		}
		for _, c := range n.children.All() {
			if !yield(c) {
				return
			}
		}
	}
}

func (n *Node) mapFactory() MapFactory {
	if n.newMap != nil {
		return n.newMap
	}
	return NewChildMap
}

func (n *Node) childMap() ChildMap {
	if n.children == nil {
		n.children = n.mapFactory()()
	}
	return n.children
}

// AddChild attaches child under its own identifier. It fails with
// ErrDuplicateParent if child is already held elsewhere, ErrLoop if child is
// n or an ancestor of n, and ErrDuplicateChild on a sibling key collision.
func (n *Node) AddChild(child *Node) error {
	return n.attach(child, child.id, true)
}

// AddChildUnchecked is AddChild without the ancestor walk. Unsafe: the caller
// must guarantee that child is not n or an ancestor of n, otherwise the tree
// is corrupted. Intended for bulk builds where acyclicity is known.
func (n *Node) AddChildUnchecked(child *Node) error {
	return n.attach(child, child.id, false)
}

// Set attaches child under key, renaming it. Same failure modes as AddChild.
func (n *Node) Set(key string, child *Node) error {
	return n.attach(child, key, true)
}

func (n *Node) attach(child *Node, key string, checkLoop bool) error {
	if child.parent != nil {
		return fmt.Errorf("%w: %q is held by %q", ErrDuplicateParent, child.id, child.parent.id)
	}
	if checkLoop {
		if err := n.checkLoop(child); err != nil {
			return err
		}
	}
	if _, ok := n.childMap().Lookup(key); ok {
		return fmt.Errorf("%w: %q under %q", ErrDuplicateChild, key, n.id)
	}
	child.id = key
	if child.newMap == nil {
		child.newMap = n.newMap
	}
	child.parent = n
	n.children.Insert(child)
	return nil
}

func (n *Node) checkLoop(child *Node) error {
	if child == n {
		return fmt.Errorf("%w: %q cannot contain itself", ErrLoop, n.id)
	}
	if child.IsLeaf() {
		// A leaf cannot be an ancestor of anything.
		return nil
	}
	for p := n.parent; p != nil; p = p.parent {
		if p == child {
			return fmt.Errorf("%w: %q is an ancestor of %q", ErrLoop, child.id, n.id)
		}
	}
	return nil
}

// Detach removes n from its parent and returns it, leaving n's subtree
// intact. Fails with ErrNoParent on a root.
func (n *Node) Detach() (*Node, error) {
	if n.parent == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoParent, n.id)
	}
	n.parent.children.Remove(n.id)
	n.parent = nil
	return n, nil
}

// Pop removes and returns the child stored under key, or nil.
func (n *Node) Pop(key string) *Node {
	if n.children == nil {
		return nil
	}
	c, ok := n.children.Remove(key)
	if !ok {
		return nil
	}
	c.parent = nil
	return c
}

// Delete removes the child stored under key, failing with ErrNodeNotFound if
// it does not exist.
func (n *Node) Delete(key string) error {
	if n.Pop(key) == nil {
		return fmt.Errorf("%w: no child %q under %q", ErrNodeNotFound, key, n.id)
	}
	return nil
}

// Clear detaches all children.
func (n *Node) Clear() {
	for c := range n.Children() {
		c.parent = nil
	}
	n.children = nil
}

// Rename changes the key under which n is stored in its parent. Renaming to
// the current key is a no-op; a sibling collision fails with
// ErrDuplicateChild.
func (n *Node) Rename(newKey string) error {
	if newKey == n.id {
		return nil
	}
	if p := n.parent; p != nil {
		if _, ok := p.children.Lookup(newKey); ok {
			return fmt.Errorf("%w: %q under %q", ErrDuplicateChild, newKey, p.id)
		}
	}
	old := n.id
	n.id = newKey
	if n.parent != nil {
		n.parent.children.Rekey(old, newKey)
	}
	return nil
}

// SortChildren reorders the children, by identifier when less is nil.
func (n *Node) SortChildren(less func(a, b *Node) bool, recursive bool) {
	if less == nil {
		less = func(a, b *Node) bool { return a.id < b.id }
	}
	n.sortChildren(less)
	if recursive {
		for c := range n.Preorder(nil) {
			if c != n {
				c.sortChildren(less)
			}
		}
	}
}

func (n *Node) sortChildren(less func(a, b *Node) bool) {
	if n.Len() < 2 {
		return
	}
	kids := make([]*Node, 0, n.Len())
	for c := range n.Children() {
		kids = append(kids, c)
	}
	slices.SortStableFunc(kids, func(a, b *Node) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
	n.children = n.mapFactory()()
	for _, c := range kids {
		n.children.Insert(c)
	}
}

// UpdateMode controls how bulk updates treat nodes that already have a
// parent.
type UpdateMode int

const (
	// ModeAttach fails with ErrDuplicateParent on parented nodes.
	ModeAttach UpdateMode = iota
	// ModeCopy attaches a copy, leaving the source tree untouched.
	ModeCopy
	// ModeDetach detaches nodes from their current parent first.
	ModeDetach
)

// UpdateMap bulk-attaches the nodes of src under the map's keys, in sorted
// key order. The operation is not transactional: on failure, previously
// attached entries stay attached and the error names the offending key.
func (n *Node) UpdateMap(src map[string]*Node, mode UpdateMode) error {
	for _, key := range slices.Sorted(maps.Keys(src)) {
		if err := n.updateOne(key, src[key], mode); err != nil {
			return err
		}
	}
	return nil
}

// UpdateNodes bulk-attaches src in slice order, keyed by each node's own
// identifier. Same partial-failure behavior as UpdateMap.
func (n *Node) UpdateNodes(src []*Node, mode UpdateMode) error {
	for _, c := range src {
		if err := n.updateOne(c.id, c, mode); err != nil {
			return err
		}
	}
	return nil
}

// UpdateFrom bulk-attaches the children of other. With ModeDetach this moves
// them, emptying other. Same partial-failure behavior as UpdateMap.
func (n *Node) UpdateFrom(other *Node, mode UpdateMode) error {
	kids := make([]*Node, 0, other.Len())
	for c := range other.Children() {
		kids = append(kids, c)
	}
	for _, c := range kids {
		if err := n.updateOne(c.id, c, mode); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) updateOne(key string, child *Node, mode UpdateMode) error {
	switch mode {
	case ModeCopy:
		child = child.Copy(nil)
	case ModeDetach:
		if child.parent != nil {
			child.parent.children.Remove(child.id)
			child.parent = nil
		}
	}
	if err := n.attach(child, key, true); err != nil {
		return fmt.Errorf("update %q: %w", key, err)
	}
	return nil
}
