package export

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/treekit/treekit/tree"
)

func buildWorld(t *testing.T) *tree.Node {
	t.Helper()
	root := tree.New("world")
	for _, p := range []string{
		"Europe/Norway/Oslo",
		"Europe/Sweden/Stockholm",
		"Africa",
	} {
		root.Path().Create(p)
	}
	return root
}

func TestToRows(t *testing.T) {
	root := buildWorld(t)
	root.Data = "home"
	var got []string
	for row := range ToRows(root, nil) {
		got = append(got, strings.Join(row.Path, "/"))
	}
	want := []string{
		"",
		"Europe",
		"Europe/Norway",
		"Europe/Norway/Oslo",
		"Europe/Sweden",
		"Europe/Sweden/Stockholm",
		"Africa",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("rows (-want +got):\n%s", d)
	}
}

func TestRowsRoundTrip(t *testing.T) {
	root := buildWorld(t)
	root.Data = "home"
	root.Get("Africa").Data = 54

	back := FromRows(ToRows(root, nil))
	if d := root.Compare(back, false); d != nil {
		t.Errorf("round trip diverged")
	}
	if back.Data != "home" || back.Get("Africa").Data != 54 {
		t.Errorf("payloads lost: %v, %v", back.Data, back.Get("Africa").Data)
	}
}

func TestFromRowsCreatesIntermediates(t *testing.T) {
	rows := func(yield func(Row) bool) {
		yield(Row{Path: []string{"a", "b", "c"}, Data: 1})
	}
	root := FromRows(rows)
	got, err := root.Path().Resolve("a/b/c")
	if err != nil || got.Data != 1 {
		t.Fatalf("Resolve = %v, %v", got, err)
	}
	if mid, _ := root.Path().Resolve("a/b"); mid.Data != nil {
		t.Errorf("intermediate payload = %v, want nil", mid.Data)
	}
}

func TestToRelations(t *testing.T) {
	root := buildWorld(t)
	var got []Relation
	for r := range ToRelations(root, nil) {
		r.Data = nil
		got = append(got, r)
	}
	want := []Relation{
		{Parent: "", Child: "world"},
		{Parent: "world", Child: "Europe"},
		{Parent: "Europe", Child: "Norway"},
		{Parent: "Norway", Child: "Oslo"},
		{Parent: "Europe", Child: "Sweden"},
		{Parent: "Sweden", Child: "Stockholm"},
		{Parent: "world", Child: "Africa"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("relations (-want +got):\n%s", d)
	}
}

func TestRelationsRoundTrip(t *testing.T) {
	root := buildWorld(t)
	back, err := FromRelations(ToRelations(root, nil))
	if err != nil {
		t.Fatalf("FromRelations() = %v", err)
	}
	if d := root.Compare(back, false); d != nil {
		t.Errorf("round trip diverged")
	}
}

func TestFromRelationsOutOfOrder(t *testing.T) {
	rels := func(yield func(Relation) bool) {
		for _, r := range []Relation{
			{Parent: "b", Child: "c"},
			{Parent: "a", Child: "b"},
			{Parent: "", Child: "a"},
		} {
			if !yield(r) {
				return
			}
		}
	}
	root, err := FromRelations(rels)
	if err != nil {
		t.Fatalf("FromRelations() = %v", err)
	}
	if got, err := root.Path().Resolve("b/c"); err != nil || got == nil {
		t.Errorf("Resolve(b/c) = %v, %v", got, err)
	}
}

func TestEdges(t *testing.T) {
	root := buildWorld(t)
	var got [][2]string
	for p, c := range Edges(root, nil) {
		got = append(got, [2]string{p.ID(), c.ID()})
	}
	want := [][2]string{
		{"world", "Europe"},
		{"Europe", "Norway"},
		{"Norway", "Oslo"},
		{"Europe", "Sweden"},
		{"Sweden", "Stockholm"},
		{"world", "Africa"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("edges (-want +got):\n%s", d)
	}
	n := 0
	for range Nodes(root, nil) {
		n++
	}
	if n != 7 {
		t.Errorf("Nodes yielded %d, want 7", n)
	}
}

func TestFromRelationsErrors(t *testing.T) {
	tests := []struct {
		name string
		rels []Relation
	}{
		{"no root", []Relation{{Parent: "a", Child: "b"}, {Parent: "b", Child: "a"}}},
		{"two roots", []Relation{{Parent: "", Child: "a"}, {Parent: "", Child: "b"}}},
		{"two parents", []Relation{{Parent: "", Child: "r"}, {Parent: "r", Child: "x"}, {Parent: "r2", Child: "x"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := func(yield func(Relation) bool) {
				for _, r := range tt.rels {
					if !yield(r) {
						return
					}
				}
			}
			if _, err := FromRelations(seq); err == nil {
				t.Errorf("invalid relations accepted")
			}
		})
	}
}
