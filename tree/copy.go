package tree

import (
	"reflect"
)

// TransformFunc maps a source node to the key and payload of its replacement
// in the rebuilt tree.
type TransformFunc func(*Node) (key string, data any)

// CopyFunc copies a payload value.
type CopyFunc func(any) any

// Transform produces a new detached tree mirroring n's subtree, with fn
// applied per node and keep pruning whole subtrees. The rebuild is iterative
// over an explicit stack of pending child lists. Returns nil when keep
// excludes the root; fails with ErrDuplicateChild when fn maps two siblings
// to the same key.
func (n *Node) Transform(fn TransformFunc, keep Keep) (*Node, error) {
	// stack[d-1] holds finished replacement nodes at depth d that are
	// waiting for their parent to be visited.
	var stack [][]*Node
	for node, item := range n.Postorder(keep) {
		key, data := fn(node)
		nn := New(key, WithData(data), WithChildMap(n.newMap))
		if len(stack) > item.Depth {
			kids := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, c := range kids {
				if err := nn.attach(c, c.id, false); err != nil {
					return nil, err
				}
			}
		}
		if item.Depth == 0 {
			return nn, nil
		}
		for len(stack) < item.Depth {
			stack = append(stack, nil)
		}
		stack[item.Depth-1] = append(stack[item.Depth-1], nn)
	}
	return nil, nil
}

// Copy returns a detached copy of n's subtree restricted to the kept nodes.
// Payloads are shared by identity with the source.
func (n *Node) Copy(keep Keep) *Node {
	// Keys are preserved, so duplicate-key errors cannot occur.
	res, _ := n.Transform(func(m *Node) (string, any) { return m.id, m.Data }, keep)
	return res
}

// DeepCopy is Copy with payloads copied per node by copyData, or by a
// recursive value copy of the common container shapes (maps and slices of
// any/string) when copyData is nil. Other payload types fall back to
// identity.
func (n *Node) DeepCopy(keep Keep, copyData CopyFunc) *Node {
	if copyData == nil {
		copyData = deepCopyValue
	}
	res, _ := n.Transform(func(m *Node) (string, any) { return m.id, copyData(m.Data) }, keep)
	return res
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = deepCopyValue(e)
		}
		return m
	case map[string]string:
		m := make(map[string]string, len(t))
		for k, e := range t {
			m[k] = e
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = deepCopyValue(e)
		}
		return s
	case []string:
		s := make([]string, len(t))
		copy(s, t)
		return s
	default:
		return v
	}
}

// Diff is the payload of nodes in a difference tree produced by Compare.
// HasSelf/HasOther mark on which side the node exists; a node present on
// both sides with equal payloads and equal child-key sets is not reported.
type Diff struct {
	Self     any
	Other    any
	HasSelf  bool
	HasOther bool
}

// Equal reports whether the node exists on both sides with equal payloads.
func (d *Diff) Equal() bool {
	return d.HasSelf && d.HasOther && reflect.DeepEqual(d.Self, d.Other)
}

// Missing reports whether the node is absent on one side.
func (d *Diff) Missing() bool { return !d.HasSelf || !d.HasOther }

// Compare matches n against other by position (root identifiers are ignored
// by design) and returns a difference tree isomorphic to the union of both
// structures, every node carrying a *Diff payload. Returns nil when the
// subtrees are equal. With keepEqual, equal nodes stay in the result.
func (n *Node) Compare(other *Node, keepEqual bool) *Node {
	// Same keys as the source, duplicate-key errors cannot occur.
	diff, _ := n.Transform(func(m *Node) (string, any) {
		return m.id, &Diff{Self: m.Data, HasSelf: true}
	}, nil)

	rd := diff.Data.(*Diff)
	rd.Other = other.Data
	rd.HasOther = true

	// Overlay other's structure, creating nodes missing on the self side.
	cur, depth := diff, 0
	for node, item := range other.Preorder(nil) {
		if item.Depth == 0 {
			continue
		}
		for depth > item.Depth-1 {
			cur, depth = cur.parent, depth-1
		}
		child := cur.Get(node.id)
		if child == nil {
			child = New(node.id, WithData(&Diff{}))
			cur.attach(child, node.id, false)
		}
		d := child.Data.(*Diff)
		d.Other = node.Data
		d.HasOther = true
		cur, depth = child, depth+1
	}

	if keepEqual {
		return diff
	}

	// Drop equal subtrees bottom-up: an equal node whose children all
	// turned out equal disappears; one with surviving descendants stays
	// as a structural carrier with an empty Diff.
	var order []*Node
	for node := range diff.Postorder(nil) {
		order = append(order, node)
	}
	for _, node := range order {
		d := node.Data.(*Diff)
		if !d.Equal() {
			continue
		}
		if node.IsLeaf() && node.parent != nil {
			node.Detach()
		} else {
			node.Data = &Diff{}
		}
	}
	if rd := diff.Data.(*Diff); diff.IsLeaf() && !rd.HasSelf && !rd.HasOther {
		return nil
	}
	return diff
}
