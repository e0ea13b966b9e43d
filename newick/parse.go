// Package newick reads and writes trees in Newick notation, including NHX
// comment attributes.
//
// Parsed payloads are map[string]any values: branch lengths live under
// DistanceKey as float64, comment text under CommentKey, NHX attributes under
// their own keys as strings. Nodes without any of these carry a nil payload.
package newick

import (
	"io"
	"strconv"
	"strings"

	"github.com/treekit/treekit/tree"
)

// ParseOption configures parsing.
type ParseOption func(*parser)

// ParseDialect selects the dialect; the default is DefaultDialect.
func ParseDialect(d Dialect) ParseOption {
	return func(p *parser) { p.dialect = d }
}

// Parse decodes a single tree from d. Labels may precede or follow a child
// group; when both are present the trailing label wins. Errors satisfy
// errors.Is(err, ErrParse) and carry the byte offset of the fault.
func Parse(d []byte, opts ...ParseOption) (*tree.Node, error) {
	p := &parser{dialect: DefaultDialect, d: d, doc: newDoc(d)}
	for _, opt := range opts {
		opt(p)
	}
	return p.run()
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) (*tree.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader, opts ...ParseOption) (*tree.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

type parser struct {
	dialect Dialect
	d       []byte
	doc     *Doc
	i       int

	// stack holds the suspended sibling lists of enclosing groups; nodes
	// is the sibling list of the current group, its last element the node
	// under construction.
	stack [][]*tree.Node
	nodes []*tree.Node

	inDist  bool
	labeled bool
	done    bool
}

func (p *parser) pos(i int) *Pos { return p.doc.Pos(i) }

func (p *parser) last() *tree.Node { return p.nodes[len(p.nodes)-1] }

func (p *parser) run() (*tree.Node, error) {
	p.nodes = []*tree.Node{tree.New("")}
	for p.i < len(p.d) && !p.done {
		c := p.d[p.i]
		var err error
		switch c {
		case ' ', '\t', '\n', '\r':
			p.i++
		case '(':
			p.openGroup()
		case ')':
			err = p.closeGroup()
		case ',':
			p.nodes = append(p.nodes, tree.New(""))
			p.inDist, p.labeled = false, false
			p.i++
		case ':':
			p.inDist = true
			p.i++
		case '[':
			err = p.readComment()
		case ']':
			err = parseErrf(p.pos(p.i), "unmatched ]")
		case '\'':
			err = p.readQuoted()
		case ';':
			p.done = true
			p.i++
		default:
			err = p.readBare()
		}
		if err != nil {
			return nil, err
		}
	}
	if len(p.stack) != 0 {
		return nil, parseErrf(p.pos(len(p.d)), "%d unclosed groups", len(p.stack))
	}
	if len(p.nodes) != 1 {
		return nil, parseErrf(p.pos(len(p.d)), "expected a single root, got %d trees", len(p.nodes))
	}
	return p.nodes[0], nil
}

func (p *parser) openGroup() {
	p.stack = append(p.stack, p.nodes)
	p.nodes = []*tree.Node{tree.New("")}
	p.inDist, p.labeled = false, false
	p.i++
}

func (p *parser) closeGroup() error {
	if len(p.stack) == 0 {
		return parseErrf(p.pos(p.i), "unmatched )")
	}
	kids := p.nodes
	p.nodes = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	parent := p.last()
	for _, c := range kids {
		if err := parent.AddChild(c); err != nil {
			return parseErrf(p.pos(p.i), "sibling %q: %v", c.ID(), err)
		}
	}
	p.inDist, p.labeled = false, false
	p.i++
	return nil
}

func isReserved(c byte) bool {
	switch c {
	case '(', ')', '[', ']', ':', ';', ',', '\'', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func (p *parser) readBare() error {
	start := p.i
	for p.i < len(p.d) && !isReserved(p.d[p.i]) {
		p.i++
	}
	word := string(p.d[start:p.i])
	if p.inDist {
		f, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return parseErrf(p.pos(start), "bad branch length %q", word)
		}
		setAttr(p.last(), DistanceKey, f)
		p.inDist = false
		return nil
	}
	return p.setLabel(word, start)
}

func (p *parser) readQuoted() error {
	start := p.i
	p.i++
	var b strings.Builder
	for p.i < len(p.d) {
		c := p.d[p.i]
		if c != '\'' {
			b.WriteByte(c)
			p.i++
			continue
		}
		if p.i+1 < len(p.d) && p.d[p.i+1] == '\'' {
			// Doubled quote escapes a literal quote.
			b.WriteByte('\'')
			p.i += 2
			continue
		}
		p.i++
		return p.setLabel(b.String(), start)
	}
	return parseErrf(p.pos(start), "unterminated quoted label")
}

func (p *parser) setLabel(name string, off int) error {
	if p.labeled {
		return parseErrf(p.pos(off), "unexpected label %q", name)
	}
	// A trailing label overwrites a leading one; the node is detached, so
	// renaming cannot collide.
	p.last().Rename(name)
	p.labeled = true
	return nil
}

func (p *parser) readComment() error {
	start := p.i
	p.i++
	body := p.i
	depth := 1
	for p.i < len(p.d) && depth > 0 {
		switch p.d[p.i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				continue
			}
		}
		p.i++
	}
	if depth != 0 {
		return parseErrf(p.pos(start), "unterminated comment")
	}
	raw := string(p.d[body:p.i])
	p.i++
	return p.applyComment(p.last(), raw, start)
}

func (p *parser) applyComment(n *tree.Node, raw string, off int) error {
	d := p.dialect
	if d.NHXPrefix != "" && strings.HasPrefix(raw, d.NHXPrefix) {
		for _, item := range strings.Split(raw[len(d.NHXPrefix):], ":") {
			if item == "" {
				continue
			}
			k, v, ok := strings.Cut(item, "=")
			if !ok || k == "" {
				return parseErrf(p.pos(off), "malformed attribute %q", item)
			}
			if d.EscapeComments {
				k, v = unescaper.Replace(k), unescaper.Replace(v)
			}
			setAttr(n, k, v)
		}
		return nil
	}
	if d.EscapeComments {
		raw = unescaper.Replace(raw)
	}
	attrs := nodeAttrs(n)
	if prev, ok := attrs[CommentKey].(string); ok && prev != "" {
		raw = prev + "|" + raw
	}
	attrs[CommentKey] = raw
	return nil
}

func nodeAttrs(n *tree.Node) map[string]any {
	if m, ok := n.Data.(map[string]any); ok {
		return m
	}
	m := map[string]any{}
	n.Data = m
	return m
}

func setAttr(n *tree.Node, key string, v any) {
	nodeAttrs(n)[key] = v
}
