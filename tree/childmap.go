package tree

import (
	"iter"
	"sort"
)

// ChildMap is the ordered mapping a node keeps its children in. The key of
// every entry is the child's identifier; implementations must preserve that
// correspondence across Rekey.
//
// The default implementation preserves insertion order. SortedChildMap keeps
// children sorted by identifier instead. A custom implementation can be
// injected per tree with WithChildMap.
type ChildMap interface {
	// Insert adds n under its identifier. The caller guarantees the key is
	// not present.
	Insert(n *Node)
	// Lookup returns the child stored under key.
	Lookup(key string) (*Node, bool)
	// Remove deletes and returns the child stored under key.
	Remove(key string) (*Node, bool)
	// Rekey moves the entry at oldKey to newKey. The node itself has
	// already been renamed; the caller guarantees newKey is free.
	Rekey(oldKey, newKey string)
	Len() int
	// At returns the i-th child in mapping order.
	At(i int) *Node
	All() iter.Seq2[int, *Node]
}

// MapFactory produces the ChildMap used by a node and, transitively, by nodes
// created below it (for example by Path().Create).
type MapFactory func() ChildMap

// NewChildMap returns the default insertion-ordered implementation.
func NewChildMap() ChildMap {
	return &orderedMap{index: map[string]int{}}
}

// NewSortedChildMap returns a ChildMap that keeps children sorted by
// identifier.
func NewSortedChildMap() ChildMap {
	return &sortedMap{orderedMap{index: map[string]int{}}}
}

type orderedMap struct {
	nodes []*Node
	index map[string]int
}

func (m *orderedMap) Insert(n *Node) {
	m.index[n.id] = len(m.nodes)
	m.nodes = append(m.nodes, n)
}

func (m *orderedMap) Lookup(key string) (*Node, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.nodes[i], true
}

func (m *orderedMap) Remove(key string) (*Node, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	n := m.nodes[i]
	delete(m.index, key)
	m.nodes = append(m.nodes[:i], m.nodes[i+1:]...)
	for j := i; j < len(m.nodes); j++ {
		m.index[m.nodes[j].id] = j
	}
	return n, true
}

func (m *orderedMap) Rekey(oldKey, newKey string) {
	i, ok := m.index[oldKey]
	if !ok {
		return
	}
	delete(m.index, oldKey)
	m.index[newKey] = i
}

func (m *orderedMap) Len() int { return len(m.nodes) }

func (m *orderedMap) At(i int) *Node { return m.nodes[i] }

func (m *orderedMap) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i, n := range m.nodes {
			if !yield(i, n) {
				return
			}
		}
	}
}

type sortedMap struct {
	orderedMap
}

func (m *sortedMap) Insert(n *Node) {
	i := sort.Search(len(m.nodes), func(i int) bool {
		return m.nodes[i].id >= n.id
	})
	m.nodes = append(m.nodes, nil)
	copy(m.nodes[i+1:], m.nodes[i:])
	m.nodes[i] = n
	for j := i; j < len(m.nodes); j++ {
		m.index[m.nodes[j].id] = j
	}
}

func (m *sortedMap) Rekey(oldKey, newKey string) {
	n, ok := m.Remove(oldKey)
	if !ok {
		return
	}
	m.Insert(n)
}
