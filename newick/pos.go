package newick

import (
	"fmt"
	"sort"
	"strconv"
)

// Doc indexes the newline offsets of a parsed document so positions can be
// reported as line/column pairs.
type Doc struct {
	d []byte
	n []int
}

func newDoc(d []byte) *Doc {
	doc := &Doc{d: d}
	for i, c := range d {
		if c == '\n' {
			doc.n = append(doc.n, i)
		}
	}
	return doc
}

func (d *Doc) LineCol(off int) (int, int) {
	N := len(d.n)
	di := sort.Search(N, func(i int) bool {
		return d.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - d.n[di-1] - 1
}

func (d *Doc) Pos(i int) *Pos {
	return &Pos{I: i, D: d}
}

// Pos is a byte offset into the parsed document.
type Pos struct {
	I int
	D *Doc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p Pos) String() string {
	line, col := p.LineCol()
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, line, col)
}
