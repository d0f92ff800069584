package jchunk

import "fmt"

// A Pos describes the location of a rune in the source text.
type Pos struct {
	Offset int // byte offset, 0-based
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// advance returns the position following p after consuming ch, which occupies
// nb bytes of the input.
func (p Pos) advance(ch rune, nb int) Pos {
	p.Offset += nb
	if ch == '\n' {
		p.Line++
		p.Column = 0
	} else {
		p.Column += nb
	}
	return p
}
