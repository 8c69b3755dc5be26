package token

import (
	"bytes"
	"fmt"
	"strings"
)

// PosDoc associates byte offsets with the document they index.
type PosDoc struct {
	d []byte
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) Len() int {
	return len(p.d)
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

// LineCol returns the 1-based line and column of off, the line computed
// by counting preceding newlines.
func (p *PosDoc) LineCol(off int) (int, int) {
	off = min(off, len(p.d))
	line := 1 + bytes.Count(p.d[:off], []byte{'\n'})
	start := bytes.LastIndexByte(p.d[:off], '\n') + 1
	return line, off - start + 1
}

// Pos is a byte offset into a document.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) Line() int {
	l, _ := p.D.LineCol(p.I)
	return l
}

func (p *Pos) Col() int {
	_, c := p.D.LineCol(p.I)
	return c
}

// contextRadius bounds how much of the offending line appears on each
// side of the cursor in error annotations.
const contextRadius = 24

// String renders a two-line annotation: the offending line clipped to
// contextRadius bytes around the cursor, and a dash line with a caret
// under the offending column.
func (p Pos) String() string {
	d := p.D.d
	off := min(p.I, len(d))
	line, col := p.D.LineCol(off)

	start := bytes.LastIndexByte(d[:off], '\n') + 1
	end := bytes.IndexByte(d[off:], '\n')
	if end == -1 {
		end = len(d)
	} else {
		end += off
	}
	left := max(start, off-contextRadius)
	right := min(end, off+contextRadius)
	window := string(d[left:right])
	// tabs would misalign the caret
	window = strings.Replace(window, "\t", " ", -1)
	caret := strings.Repeat("-", off-left) + "^"
	return fmt.Sprintf("line %d, col %d\n%s\n%s", line, col, window, caret)
}
