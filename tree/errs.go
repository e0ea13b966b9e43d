package tree

import "errors"

var (
	// ErrDuplicateParent is returned when attaching a node that is still
	// held by another parent. Detach or copy it first.
	ErrDuplicateParent = errors.New("node already has a parent")

	// ErrDuplicateChild is returned when an identifier collides with an
	// existing sibling.
	ErrDuplicateChild = errors.New("duplicate child identifier")

	// ErrLoop is returned when an attach would make a node its own
	// ancestor.
	ErrLoop = errors.New("attach would create a loop")

	// ErrNoParent is returned by Detach on a root node.
	ErrNoParent = errors.New("node has no parent")

	// ErrNodeNotFound is returned by path resolution when a segment is
	// missing.
	ErrNodeNotFound = errors.New("node not found")

	// ErrDifferentTree is returned when a route or LCA is requested for
	// nodes that do not share a root.
	ErrDifferentTree = errors.New("nodes are in different trees")
)
