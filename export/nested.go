package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/treekit/treekit/tree"
)

// Nested is the document shape of a tree: one object per node holding its
// name, payload and children in order.
type Nested struct {
	Name     string    `json:"name" yaml:"name"`
	Data     any       `json:"data,omitempty" yaml:"data,omitempty"`
	Children []*Nested `json:"children,omitempty" yaml:"children,omitempty"`
}

// ToNested converts root's subtree to its document shape without recursion.
func ToNested(root *tree.Node, keep tree.Keep) *Nested {
	var stack [][]*Nested
	for node, item := range root.Postorder(keep) {
		nn := &Nested{Name: node.ID(), Data: node.Data}
		if len(stack) > item.Depth {
			nn.Children = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		if item.Depth == 0 {
			return nn
		}
		for len(stack) < item.Depth {
			stack = append(stack, nil)
		}
		stack[item.Depth-1] = append(stack[item.Depth-1], nn)
	}
	return nil
}

// FromNested converts a document back to a tree. Fails with
// tree.ErrDuplicateChild when sibling names collide.
func FromNested(doc *Nested, opts ...tree.Option) (*tree.Node, error) {
	root := tree.New(doc.Name, append([]tree.Option{tree.WithData(doc.Data)}, opts...)...)
	type frame struct {
		doc  *Nested
		node *tree.Node
	}
	stack := []frame{{doc, root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range f.doc.Children {
			cn := tree.New(c.Name, tree.WithData(c.Data))
			if err := f.node.AddChildUnchecked(cn); err != nil {
				return nil, err
			}
			stack = append(stack, frame{c, cn})
		}
	}
	return root, nil
}

// EncodeJSON writes root's subtree as an indented JSON document.
func EncodeJSON(root *tree.Node, w io.Writer, keep tree.Keep) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToNested(root, keep))
}

// DecodeJSON reads a JSON document into a tree.
func DecodeJSON(r io.Reader, opts ...tree.Option) (*tree.Node, error) {
	var doc Nested
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return FromNested(&doc, opts...)
}

// EncodeYAML writes root's subtree as a YAML document.
func EncodeYAML(root *tree.Node, w io.Writer, keep tree.Keep) error {
	return yaml.NewEncoder(w).Encode(ToNested(root, keep))
}

// DecodeYAML reads a YAML document into a tree.
func DecodeYAML(r io.Reader, opts ...tree.Option) (*tree.Node, error) {
	var doc Nested
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return FromNested(&doc, opts...)
}
