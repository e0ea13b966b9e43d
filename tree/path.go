package tree

import (
	"fmt"
	"iter"
	"path"
	"strings"
)

// Separator splits and joins path strings.
const Separator = "/"

// Path is a view on a node's location that resolves, creates and globs
// slash-delimited paths relative to that node.
type Path struct {
	node *Node
}

// Path returns the path view anchored at n.
func (n *Node) Path() Path { return Path{node: n} }

// String renders the identifiers from the root down to the node, prefixed
// and joined by the separator.
func (p Path) String() string {
	segs := p.Segments()
	return Separator + strings.Join(segs, Separator)
}

// Segments returns the identifiers from the root down to the node.
func (p Path) Segments() []string {
	depth := p.node.Depth()
	segs := make([]string, depth+1)
	node := p.node
	for i := depth; i >= 0; i-- {
		segs[i] = node.id
		node = node.parent
	}
	return segs
}

// SplitPath splits a path string on the separator. Consecutive separators
// collapse; the empty string yields an empty path.
func SplitPath(s string) []string {
	parts := strings.Split(s, Separator)
	segs := parts[:0]
	for _, seg := range parts {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}

// Resolve walks the path relative to the anchor node. An empty path resolves
// to the anchor itself. Fails with ErrNodeNotFound naming the first missing
// segment.
func (p Path) Resolve(s string) (*Node, error) {
	return p.ResolveSegments(SplitPath(s))
}

// ResolveSegments is Resolve for a pre-split path.
func (p Path) ResolveSegments(segs []string) (*Node, error) {
	node := p.node
	for _, seg := range segs {
		child := node.Get(seg)
		if child == nil {
			return nil, fmt.Errorf("%w: %q has no child %q", ErrNodeNotFound, node.Path(), seg)
		}
		node = child
	}
	return node, nil
}

// Create resolves the path, creating any missing segment with a
// default-constructed payload. Idempotent.
func (p Path) Create(s string) *Node {
	return p.CreateSegments(SplitPath(s))
}

// CreateSegments is Create for a pre-split path.
func (p Path) CreateSegments(segs []string) *Node {
	node := p.node
	for _, seg := range segs {
		child := node.Get(seg)
		if child == nil {
			child = New(seg, WithChildMap(node.newMap))
			// Fresh leaf under a tree node, cannot form a loop.
			node.attach(child, seg, false)
		}
		node = child
	}
	return node
}

// Glob matches a pattern against the subtree. Segments are shell-style
// patterns matched against one level of identifiers ("*", "?", character
// classes), except "**" which matches zero or more levels. Matches are
// de-duplicated. A malformed pattern fails up front.
func (p Path) Glob(pattern string) (iter.Seq[*Node], error) {
	segs := SplitPath(pattern)
	for _, seg := range segs {
		if seg == "**" {
			continue
		}
		if _, err := path.Match(seg, ""); err != nil {
			return nil, fmt.Errorf("glob %q: bad segment %q: %w", pattern, seg, err)
		}
	}
	return func(yield func(*Node) bool) {
		frontier := []*Node{p.node}
		for _, seg := range segs {
			var next []*Node
			seen := map[*Node]bool{}
			add := func(n *Node) {
				if !seen[n] {
					seen[n] = true
					next = append(next, n)
				}
			}
			switch {
			case seg == "**":
				for _, n := range frontier {
					for d := range n.Preorder(nil) {
						add(d)
					}
				}
			case strings.ContainsAny(seg, "*?["):
				for _, n := range frontier {
					for c := range n.Children() {
						if ok, _ := path.Match(seg, c.id); ok {
							add(c)
						}
					}
				}
			default:
				for _, n := range frontier {
					if c := n.Get(seg); c != nil {
						add(c)
					}
				}
			}
			frontier = next
		}
		for _, n := range frontier {
			if !yield(n) {
				return
			}
		}
	}, nil
}
