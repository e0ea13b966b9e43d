package tree

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ids[T any](seq func(yield func(*Node, T) bool)) []string {
	var res []string
	seq(func(n *Node, _ T) bool {
		res = append(res, n.ID())
		return true
	})
	return res
}

func TestTraversalOrders(t *testing.T) {
	root := buildWorld(t)
	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{
			"preorder",
			ids(root.Preorder(nil)),
			[]string{"world", "Europe", "Norway", "Oslo", "Sweden", "Stockholm", "Africa"},
		},
		{
			"postorder",
			ids(root.Postorder(nil)),
			[]string{"Oslo", "Norway", "Stockholm", "Sweden", "Europe", "Africa", "world"},
		},
		{
			"levelorder",
			ids(root.Levelorder(nil)),
			[]string{"world", "Europe", "Africa", "Norway", "Sweden", "Oslo", "Stockholm"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := cmp.Diff(tt.want, tt.got); d != "" {
				t.Errorf("order mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestTraversalItems(t *testing.T) {
	root := buildWorld(t)
	type rec struct {
		ID           string
		Index, Depth int
	}
	var got []rec
	for n, it := range root.Preorder(nil) {
		got = append(got, rec{n.ID(), it.Index, it.Depth})
	}
	want := []rec{
		{"world", -1, 0},
		{"Europe", 0, 1},
		{"Norway", 0, 2},
		{"Oslo", 0, 3},
		{"Sweden", 1, 2},
		{"Stockholm", 0, 3},
		{"Africa", 1, 1},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("items mismatch (-want +got):\n%s", d)
	}
}

func TestTraversalKeep(t *testing.T) {
	root := buildWorld(t)
	noEurope := func(n *Node, _ Item) bool { return n.ID() != "Europe" }

	got := ids(root.Preorder(noEurope))
	want := []string{"world", "Africa"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("preorder keep (-want +got):\n%s", d)
	}

	// Postorder must not visit a pruned node's descendants either.
	got = ids(root.Postorder(noEurope))
	want = []string{"Africa", "world"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("postorder keep (-want +got):\n%s", d)
	}

	got = ids(root.Levelorder(noEurope))
	want = []string{"world", "Africa"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("levelorder keep (-want +got):\n%s", d)
	}
}

func TestMaxDepth(t *testing.T) {
	root := buildWorld(t)
	got := ids(root.Preorder(MaxDepth(1)))
	want := []string{"world", "Europe", "Africa"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("MaxDepth(1) (-want +got):\n%s", d)
	}
}

func TestTraversalEarlyStop(t *testing.T) {
	root := buildWorld(t)
	n := 0
	for range root.Preorder(nil) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("visited %d nodes after break", n)
	}
	// The sequence restarts from scratch.
	if got := len(ids(root.Preorder(nil))); got != 7 {
		t.Errorf("restarted sequence visited %d nodes, want 7", got)
	}
}

func TestDeepTree(t *testing.T) {
	const depth = 20000
	root := New("n0")
	parent := root
	for i := 1; i <= depth; i++ {
		child := New(fmt.Sprintf("n%d", i))
		parent.AddChildUnchecked(child)
		parent = child
	}
	if got := parent.Depth(); got != depth {
		t.Fatalf("Depth() = %d, want %d", got, depth)
	}
	for _, tt := range []struct {
		name string
		got  []string
	}{
		{"preorder", ids(root.Preorder(nil))},
		{"postorder", ids(root.Postorder(nil))},
		{"levelorder", ids(root.Levelorder(nil))},
	} {
		if len(tt.got) != depth+1 {
			t.Errorf("%s visited %d nodes, want %d", tt.name, len(tt.got), depth+1)
		}
	}
	// Rebuilding is iterative as well.
	cp := root.Copy(nil)
	if got := len(ids(cp.Preorder(nil))); got != depth+1 {
		t.Errorf("copy has %d nodes, want %d", got, depth+1)
	}
}

func TestCounts(t *testing.T) {
	root := buildWorld(t)
	if got := root.Size(); got != 7 {
		t.Errorf("Size() = %d, want 7", got)
	}
	if got := root.LeafCount(); got != 3 {
		t.Errorf("LeafCount() = %d, want 3", got)
	}
	if got := root.Get("Africa").Size(); got != 1 {
		t.Errorf("leaf Size() = %d, want 1", got)
	}
}

func TestAncestorsSiblingsLeaves(t *testing.T) {
	root := buildWorld(t)
	oslo, err := root.Path().Resolve("Europe/Norway/Oslo")
	if err != nil {
		t.Fatal(err)
	}
	var anc []string
	for n := range oslo.Ancestors() {
		anc = append(anc, n.ID())
	}
	if d := cmp.Diff([]string{"Norway", "Europe", "world"}, anc); d != "" {
		t.Errorf("Ancestors (-want +got):\n%s", d)
	}

	var sib []string
	for n := range root.Get("Europe").Get("Norway").Siblings() {
		sib = append(sib, n.ID())
	}
	if d := cmp.Diff([]string{"Sweden"}, sib); d != "" {
		t.Errorf("Siblings (-want +got):\n%s", d)
	}

	var leaves []string
	for n := range root.Leaves() {
		leaves = append(leaves, n.ID())
	}
	if d := cmp.Diff([]string{"Oslo", "Stockholm", "Africa"}, leaves); d != "" {
		t.Errorf("Leaves (-want +got):\n%s", d)
	}
}
