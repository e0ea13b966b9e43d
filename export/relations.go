package export

import (
	"fmt"
	"iter"

	"github.com/treekit/treekit/tree"
)

// Relation is a parent/child edge keyed by identifier, with the child's
// payload. The root is the relation whose Parent is empty.
type Relation struct {
	Parent string
	Child  string
	Data   any
}

// ToRelations streams one relation per node in preorder. Identifiers must be
// unique across the whole tree for the output to be invertible; that is the
// caller's concern.
func ToRelations(root *tree.Node, keep tree.Keep) iter.Seq[Relation] {
	return func(yield func(Relation) bool) {
		for node := range root.Preorder(keep) {
			r := Relation{Child: node.ID(), Data: node.Data}
			if node != root && node.Parent() != nil {
				r.Parent = node.Parent().ID()
			}
			if !yield(r) {
				return
			}
		}
	}
}

// FromRelations rebuilds a tree from parent/child pairs, in any order.
// Parents referenced before definition are created on demand. Fails when the
// relations do not form a single tree: no root, several roots, or a cycle.
func FromRelations(rels iter.Seq[Relation], opts ...tree.Option) (*tree.Node, error) {
	byID := map[string]*tree.Node{}
	get := func(id string) *tree.Node {
		n := byID[id]
		if n == nil {
			n = tree.New(id, opts...)
			byID[id] = n
		}
		return n
	}
	var root *tree.Node
	for r := range rels {
		child := get(r.Child)
		child.Data = r.Data
		if r.Parent == "" {
			if root != nil && root != child {
				return nil, fmt.Errorf("relations: multiple roots %q and %q", root.ID(), r.Child)
			}
			root = child
			continue
		}
		if err := get(r.Parent).AddChild(child); err != nil {
			return nil, fmt.Errorf("relations: %w", err)
		}
	}
	if root == nil {
		for _, n := range byID {
			if n.IsRoot() {
				if root != nil {
					return nil, fmt.Errorf("relations: multiple roots %q and %q", root.ID(), n.ID())
				}
				root = n
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("relations: no root")
	}
	// A cycle keeps some nodes unreachable from the root.
	reach := 0
	for range root.Preorder(nil) {
		reach++
	}
	if reach != len(byID) {
		return nil, fmt.Errorf("relations: %d of %d nodes unreachable from root %q",
			len(byID)-reach, len(byID), root.ID())
	}
	return root, nil
}
