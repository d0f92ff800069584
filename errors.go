// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a SyntaxError.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	UnexpectedEndOfInput ErrorKind = iota + 1 // input ended inside a production
	UnexpectedToken                           // a rune violates the grammar here
	UnknownValueStart                         // a rune that cannot begin a value
)

var kindStr = [...]string{
	0:                    "invalid error",
	UnexpectedEndOfInput: "unexpected end of input",
	UnexpectedToken:      "unexpected",
	UnknownValueStart:    "unknown value start",
}

func (k ErrorKind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[0]
	}
	return kindStr[v]
}

// ErrKeyPosition is reported by [Tokenizer.Decode] when the tokenizer is
// positioned at an object key rather than a value.
var ErrKeyPosition = errors.New("decode at object key position")

// SyntaxError is the concrete type of errors reported for malformed input.
type SyntaxError struct {
	Kind ErrorKind
	Char rune // the offending rune; zero for UnexpectedEndOfInput
	Pos  Pos  // location of the offending rune, or of the end of input
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	if e.Kind == UnexpectedEndOfInput {
		return fmt.Sprintf("at %s: %s", e.Pos, e.Kind)
	}
	return fmt.Sprintf("at %s: %s %q", e.Pos, e.Kind, e.Char)
}

// Is reports whether target is a *SyntaxError of the same kind. If target
// has a non-zero Char, it must also match.
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	if !ok || t.Kind != e.Kind {
		return false
	}
	return t.Char == 0 || t.Char == e.Char
}

func errEOF(pos Pos) error { return &SyntaxError{Kind: UnexpectedEndOfInput, Pos: pos} }

func errToken(ch rune, pos Pos) error {
	return &SyntaxError{Kind: UnexpectedToken, Char: ch, Pos: pos}
}

func errValueStart(ch rune, pos Pos) error {
	return &SyntaxError{Kind: UnknownValueStart, Char: ch, Pos: pos}
}
