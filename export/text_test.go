package export

import (
	"strings"
	"testing"

	"github.com/treekit/treekit/tree"
)

func TestTextString(t *testing.T) {
	root := buildWorld(t)
	want := strings.Join([]string{
		"world",
		"├── Europe",
		"│   ├── Norway",
		"│   │   └── Oslo",
		"│   └── Sweden",
		"│       └── Stockholm",
		"└── Africa",
		"",
	}, "\n")
	if got := TextString(root); got != want {
		t.Errorf("TextString() =\n%s\nwant:\n%s", got, want)
	}
}

func TestTextStyles(t *testing.T) {
	root := tree.New("r")
	root.AddChild(tree.New("a"))
	root.AddChild(tree.New("b"))

	if got := TextString(root, TextWithStyle(ASCIIStyle)); !strings.Contains(got, "`-- b") {
		t.Errorf("ascii style missing: %q", got)
	}
	if got := TextString(root, TextWithStyle(RoundStyle)); !strings.Contains(got, "╰── b") {
		t.Errorf("round style missing: %q", got)
	}
}

func TestTextRenderer(t *testing.T) {
	root := tree.New("r", tree.WithData(42))
	got := TextString(root, TextWithRenderer(RenderData))
	if got != "r 42\n" {
		t.Errorf("TextString() = %q", got)
	}
}

func TestTextKeep(t *testing.T) {
	root := buildWorld(t)
	got := TextString(root, TextWithKeep(tree.MaxDepth(1)))
	if strings.Contains(got, "Norway") {
		t.Errorf("pruned node rendered:\n%s", got)
	}
}

func TestWriteDOT(t *testing.T) {
	root := buildWorld(t)
	var b strings.Builder
	if err := WriteDOT(root, &b, DotWithName("world")); err != nil {
		t.Fatalf("WriteDOT() = %v", err)
	}
	out := b.String()
	for _, want := range []string{
		`digraph "world" {`,
		`n0 [label="world"];`,
		"n0 -> n1;",
		`[label="Oslo"];`,
		"}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDOTNodeAttrs(t *testing.T) {
	root := tree.New("r")
	var b strings.Builder
	if err := WriteDOT(root, &b, DotWithNodeAttrs(map[string]string{"shape": "box"})); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `node [shape="box"];`) {
		t.Errorf("node attrs missing:\n%s", b.String())
	}
}

func TestWriteMermaid(t *testing.T) {
	root := buildWorld(t)
	var b strings.Builder
	if err := WriteMermaid(root, &b, MermaidWithShape(ShapeRounded)); err != nil {
		t.Fatalf("WriteMermaid() = %v", err)
	}
	out := b.String()
	for _, want := range []string{
		"flowchart TD",
		`n0("world")`,
		"n0 --> n1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDiff(t *testing.T) {
	a := buildWorld(t)
	b := buildWorld(t)
	b.Path().Create("Asia")
	oslo, _ := b.Path().Resolve("Europe/Norway/Oslo")
	oslo.Data = "fjord"
	africa, _ := a.Path().Resolve("Africa")
	africa.Data = "hot"

	res := a.Compare(b, false)
	if res == nil {
		t.Fatal("Compare() = nil")
	}
	out := DiffString(res)
	for _, want := range []string{"+ Asia", "~ Africa", "~ Oslo"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDiffInlineStrings(t *testing.T) {
	a := tree.New("r", tree.WithData("hello world"))
	b := tree.New("r", tree.WithData("hello mars"))
	res := a.Compare(b, false)
	out := DiffString(res)
	if !strings.Contains(out, "[-") || !strings.Contains(out, "[+") {
		t.Errorf("no inline markers:\n%s", out)
	}
	if !strings.Contains(out, "hello ") {
		t.Errorf("common prefix not preserved:\n%s", out)
	}
}
