package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/treekit/treekit/tree"
)

func TestNestedRoundTrip(t *testing.T) {
	root := buildWorld(t)
	root.Get("Africa").Data = "hot"

	doc := ToNested(root, nil)
	if doc.Name != "world" || len(doc.Children) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	back, err := FromNested(doc)
	if err != nil {
		t.Fatalf("FromNested() = %v", err)
	}
	if d := root.Compare(back, false); d != nil {
		t.Errorf("round trip diverged")
	}
}

func TestFromNestedDuplicate(t *testing.T) {
	doc := &Nested{Name: "r", Children: []*Nested{{Name: "a"}, {Name: "a"}}}
	if _, err := FromNested(doc); err == nil {
		t.Errorf("duplicate sibling names accepted")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	root := buildWorld(t)
	root.Get("Africa").Data = "hot"

	var buf bytes.Buffer
	if err := EncodeJSON(root, &buf, nil); err != nil {
		t.Fatalf("EncodeJSON() = %v", err)
	}
	if !strings.Contains(buf.String(), `"name": "world"`) {
		t.Errorf("output missing root name:\n%s", buf.String())
	}
	back, err := DecodeJSON(&buf)
	if err != nil {
		t.Fatalf("DecodeJSON() = %v", err)
	}
	if d := root.Compare(back, false); d != nil {
		t.Errorf("round trip diverged")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	root := buildWorld(t)

	var buf bytes.Buffer
	if err := EncodeYAML(root, &buf, nil); err != nil {
		t.Fatalf("EncodeYAML() = %v", err)
	}
	if !strings.Contains(buf.String(), "name: world") {
		t.Errorf("output missing root name:\n%s", buf.String())
	}
	back, err := DecodeYAML(&buf)
	if err != nil {
		t.Fatalf("DecodeYAML() = %v", err)
	}
	if back.ID() != "world" || back.Get("Europe") == nil {
		t.Errorf("decoded tree incomplete")
	}
}

func TestNestedKeep(t *testing.T) {
	root := buildWorld(t)
	doc := ToNested(root, func(n *tree.Node, _ tree.Item) bool { return n.ID() != "Europe" })
	if len(doc.Children) != 1 || doc.Children[0].Name != "Africa" {
		t.Errorf("pruned doc = %+v", doc)
	}
}
