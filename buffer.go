// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"io"

	"go4.org/mem"
)

// A Buffer provides single-rune lookahead over the text delivered by a
// Source. The buffer holds only the unread portion of the most recent chunk;
// it requests another chunk from the source only when a read needs one.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	src Source
	cur mem.RO // unread remainder of the current chunk
	pos Pos    // position of the first rune of cur
	err error  // sticky error from src, or io.EOF
}

// NewBuffer constructs a Buffer that consumes input from src.
func NewBuffer(src Source) *Buffer {
	return &Buffer{src: src, pos: Pos{Line: 1}}
}

// Peek returns the next rune of the input without consuming it. At the end of
// the input, Peek returns io.EOF. Any other error is an error reported by the
// source. Once an error is returned, every later Peek or Next returns it too.
func (b *Buffer) Peek() (rune, error) {
	if !b.fill() {
		return 0, b.err
	}
	ch, _ := mem.DecodeRune(b.cur)
	return ch, nil
}

// Next returns and consumes the next rune of the input. At the end of the
// input, Next returns io.EOF, as for Peek.
func (b *Buffer) Next() (rune, error) {
	if !b.fill() {
		return 0, b.err
	}
	ch, nb := mem.DecodeRune(b.cur)
	b.cur = b.cur.SliceFrom(nb)
	b.pos = b.pos.advance(ch, nb)
	return ch, nil
}

// SkipSpace consumes spaces, tabs, carriage returns, and newlines until a
// rune of any other kind, or the end of input, is seen.
func (b *Buffer) SkipSpace() {
	for {
		ch, err := b.Peek()
		if err != nil || !isSpace(ch) {
			return
		}
		b.Next()
	}
}

// Pos returns the position of the next unread rune.
func (b *Buffer) Pos() Pos { return b.pos }

// fill ensures cur is non-empty, pulling chunks from the source as needed.
// It reports false if the source is exhausted or failed.
func (b *Buffer) fill() bool {
	for b.cur.Len() == 0 {
		if b.err != nil {
			return false
		}
		chunk, err := b.src.Next()
		if err != nil {
			b.err = err
			return false
		}
		b.cur = mem.S(chunk)
	}
	return true
}

// atEOF reports whether err is the normal end of the input.
func atEOF(err error) bool { return err == io.EOF }

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
