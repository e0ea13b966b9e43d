package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func routeIDs(r *Route) []string {
	var res []string
	for n := range r.Nodes() {
		res = append(res, n.ID())
	}
	return res
}

func TestLCA(t *testing.T) {
	root := buildWorld(t)
	oslo, _ := root.Path().Resolve("Europe/Norway/Oslo")
	stockholm, _ := root.Path().Resolve("Europe/Sweden/Stockholm")
	africa := root.Get("Africa")
	europe := root.Get("Europe")

	tests := []struct {
		name string
		a, b *Node
		want string
	}{
		{"cousins", oslo, stockholm, "Europe"},
		{"across continents", oslo, africa, "world"},
		{"ancestor", oslo, europe, "Europe"},
		{"same node", oslo, oslo, "Oslo"},
		{"root", root, africa, "world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LCA(tt.a, tt.b)
			if err != nil {
				t.Fatalf("LCA() = %v", err)
			}
			if got.ID() != tt.want {
				t.Errorf("LCA() = %q, want %q", got.ID(), tt.want)
			}
			// Symmetric.
			sym, _ := LCA(tt.b, tt.a)
			if sym != got {
				t.Errorf("LCA(b, a) = %v, want %v", sym, got)
			}
		})
	}
}

func TestLCADifferentTrees(t *testing.T) {
	a := buildWorld(t)
	b := buildWorld(t)
	if _, err := LCA(a.Get("Africa"), b.Get("Africa")); !errors.Is(err, ErrDifferentTree) {
		t.Errorf("got %v, want ErrDifferentTree", err)
	}
	if _, err := NewRoute(a, b); !errors.Is(err, ErrDifferentTree) {
		t.Errorf("NewRoute: got %v, want ErrDifferentTree", err)
	}
}

func TestRoute(t *testing.T) {
	root := buildWorld(t)
	oslo, _ := root.Path().Resolve("Europe/Norway/Oslo")
	stockholm, _ := root.Path().Resolve("Europe/Sweden/Stockholm")

	r, err := NewRoute(oslo, stockholm)
	if err != nil {
		t.Fatalf("NewRoute() = %v", err)
	}
	want := []string{"Oslo", "Norway", "Europe", "Sweden", "Stockholm"}
	if d := cmp.Diff(want, routeIDs(r)); d != "" {
		t.Errorf("route (-want +got):\n%s", d)
	}
	if r.LCA().ID() != "Europe" {
		t.Errorf("LCA() = %q", r.LCA().ID())
	}
	if r.NodeCount() != 5 || r.EdgeCount() != 4 {
		t.Errorf("counts = %d nodes, %d edges", r.NodeCount(), r.EdgeCount())
	}

	var edges [][2]string
	for a, b := range r.Edges() {
		edges = append(edges, [2]string{a.ID(), b.ID()})
	}
	wantEdges := [][2]string{
		{"Oslo", "Norway"}, {"Norway", "Europe"}, {"Europe", "Sweden"}, {"Sweden", "Stockholm"},
	}
	if d := cmp.Diff(wantEdges, edges); d != "" {
		t.Errorf("edges (-want +got):\n%s", d)
	}
}

func TestRouteDegenerate(t *testing.T) {
	root := buildWorld(t)
	oslo, _ := root.Path().Resolve("Europe/Norway/Oslo")

	r, err := NewRoute(oslo, oslo)
	if err != nil {
		t.Fatal(err)
	}
	if r.NodeCount() != 1 || r.EdgeCount() != 0 {
		t.Errorf("self route = %d nodes, %d edges", r.NodeCount(), r.EdgeCount())
	}

	// Ancestor to descendant: the downward leg only.
	r, err = NewRoute(root, oslo)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"world", "Europe", "Norway", "Oslo"}
	if d := cmp.Diff(want, routeIDs(r)); d != "" {
		t.Errorf("downward route (-want +got):\n%s", d)
	}
	if r.LCA() != root {
		t.Errorf("LCA() = %v, want root", r.LCA())
	}
}
