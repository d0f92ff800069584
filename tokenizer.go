// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"io"
	"iter"

	"github.com/creachadair/jchunk/value"
	"github.com/creachadair/mds/stack"
)

// A step is a pending obligation of the grammar, recorded on the continuation
// stack of a Tokenizer.
type step byte

const (
	stepValue            step = iota // any value
	stepKey                          // "key" :
	stepObjectFirst                  // first key, or "}"
	stepEndObjectOrValue             // "," then another member, or "}"
	stepEndObject                    // "}"
	stepArrayFirst                   // first value, or "]"
	stepEndArrayOrValue              // "," then another value, or "]"
	stepEndArray                     // "]"
)

// A Tokenizer reads the tokens of a JSON value from a Source, one at a time.
//
// Instead of recursing, the tokenizer records what remains to be parsed on an
// explicit stack. Each call to Token runs steps from the stack until one of
// them produces a token, so the caller may stop between any two tokens and
// resume later, and the state retained is proportional to the nesting depth
// of the input rather than its length.
//
// Between calls to Token, the caller may use More and Decode to decode the
// remaining elements of an array, or the value of an object member, as
// complete values:
//
//	tok, err := t.Token() // OpenArray
//	for t.More() {
//	   v, err := t.Decode()
//	   // ...
//	}
//	tok, err = t.Token() // CloseArray
//
// Once a Tokenizer reports a syntax error or an error from its source, every
// subsequent call to Token or Decode reports the same error.
//
// A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	buf *Buffer
	stk *stack.Stack[step]
	err error
}

// NewTokenizer constructs a Tokenizer that reads a single value from src.
func NewTokenizer(src Source) *Tokenizer {
	t := &Tokenizer{buf: NewBuffer(src), stk: stack.New[step]()}
	t.stk.Push(stepValue)
	return t
}

// Token returns the next token of the input. When the value is complete,
// Token returns io.EOF. In case of a syntax error, the returned error has
// type [*SyntaxError].
func (t *Tokenizer) Token() (Token, error) {
	if t.err != nil {
		return nil, t.err
	}
	for {
		next, ok := t.stk.Pop()
		if !ok {
			return nil, io.EOF
		}
		tok, err := t.run(next)
		if err != nil {
			t.err = err
			return nil, err
		} else if tok != nil {
			return tok, nil
		}
	}
}

// More reports whether another element of the current array or object
// follows at the current position of the input. It is meaningful only at the
// start of an array or object, or after one of its elements is complete.
func (t *Tokenizer) More() bool {
	if t.err != nil {
		return false
	}
	t.buf.SkipSpace()
	ch, err := t.buf.Peek()
	return err == nil && ch != ']' && ch != '}'
}

// Decode decodes the next complete value from the input, in place of the
// tokens that Token would otherwise have reported for it. Inside an array,
// each value after the first must be preceded by a comma, which Decode
// consumes. At the position of an object key, Decode reports ErrKeyPosition
// and has no effect. When the value is complete, Decode returns io.EOF.
func (t *Tokenizer) Decode() (value.Value, error) {
	if t.err != nil {
		return nil, t.err
	}
	next, ok := t.stk.Pop()
	if !ok {
		return nil, io.EOF
	}
	switch next {
	case stepValue:
		// The obligations of the enclosing container, if any, remain.
	case stepArrayFirst, stepEndArrayOrValue:
		t.stk.Push(stepEndArrayOrValue)
	default:
		t.stk.Push(next)
		return nil, ErrKeyPosition
	}

	b := t.buf
	if next == stepEndArrayOrValue {
		b.SkipSpace()
		if err := skipComma(b, ']'); err != nil {
			t.err = err
			return nil, err
		}
	}
	v, err := DecodeValue(b)
	if err != nil {
		t.err = err
		return nil, err
	}
	return v, nil
}

// NextDocument prepares t to read another value from its source, following
// the value just completed. It reports false if the input is exhausted, or
// if t has not yet completed the previous value.
func (t *Tokenizer) NextDocument() bool {
	if t.err != nil || !t.stk.IsEmpty() {
		return false
	}
	t.buf.SkipSpace()
	if _, err := t.buf.Peek(); err != nil {
		if !atEOF(err) {
			t.err = err
		}
		return false
	}
	t.stk.Push(stepValue)
	return true
}

// All returns an iterator over the remaining tokens of the input. Iteration
// stops at the end of the value, or after the first error.
func (t *Tokenizer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := t.Token()
			if atEOF(err) {
				return
			} else if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

// Walk delivers the remaining tokens of the input to h, until the value is
// complete or an error occurs. If a method of h reports an error, Walk stops
// and returns that error.
func (t *Tokenizer) Walk(h Handler) error {
	for tok, err := range t.All() {
		if err != nil {
			return err
		} else if err := Visit(tok, h); err != nil {
			return err
		}
	}
	return nil
}

// Walk delivers the tokens of the value read from src to h. It is shorthand
// for constructing a Tokenizer and calling its Walk method.
func Walk(src Source, h Handler) error { return NewTokenizer(src).Walk(h) }

// Depth reports the number of pending steps on the continuation stack.
// Depth is zero when the value is complete.
func (t *Tokenizer) Depth() int { return t.stk.Len() }

// Pos returns the position of the next unread rune of the input.
func (t *Tokenizer) Pos() Pos { return t.buf.Pos() }

// run executes a single step. It returns a nil Token without error if the
// step made progress without producing a token.
func (t *Tokenizer) run(s step) (Token, error) {
	b := t.buf
	switch s {
	case stepValue:
		b.SkipSpace()
		ch, err := b.Peek()
		if err != nil {
			return nil, b.fail(err)
		}
		switch ch {
		case '{':
			b.Next()
			t.stk.Push(stepObjectFirst)
			return OpenObject{}, nil
		case '[':
			b.Next()
			t.stk.Push(stepArrayFirst)
			return OpenArray{}, nil
		}
		v, err := DecodePrimitive(b)
		if err != nil {
			return nil, err
		}
		return Value{Datum: v}, nil

	case stepKey:
		b.SkipSpace()
		key, err := DecodeString(b)
		if err != nil {
			return nil, err
		}
		b.SkipSpace()
		if err := expect(b, ':'); err != nil {
			return nil, err
		}
		return Key(key), nil

	case stepObjectFirst:
		ch, err := t.peekNext()
		if err != nil {
			return nil, err
		} else if ch == '}' {
			return t.run(stepEndObject)
		}
		t.pushMember()
		return nil, nil

	case stepEndObjectOrValue:
		ch, err := t.peekNext()
		if err != nil {
			return nil, err
		}
		switch ch {
		case '}':
			return t.run(stepEndObject)
		case ',':
			if err := skipComma(b, '}'); err != nil {
				return nil, err
			}
			t.pushMember()
			return nil, nil
		}
		return nil, errToken(ch, b.Pos())

	case stepEndObject:
		b.SkipSpace()
		if err := expect(b, '}'); err != nil {
			return nil, err
		}
		return CloseObject{}, nil

	case stepArrayFirst:
		ch, err := t.peekNext()
		if err != nil {
			return nil, err
		} else if ch == ']' {
			return t.run(stepEndArray)
		}
		t.pushElement()
		return nil, nil

	case stepEndArrayOrValue:
		ch, err := t.peekNext()
		if err != nil {
			return nil, err
		}
		switch ch {
		case ']':
			return t.run(stepEndArray)
		case ',':
			if err := skipComma(b, ']'); err != nil {
				return nil, err
			}
			t.pushElement()
			return nil, nil
		}
		return nil, errToken(ch, b.Pos())

	case stepEndArray:
		b.SkipSpace()
		if err := expect(b, ']'); err != nil {
			return nil, err
		}
		return CloseArray{}, nil
	}
	panic("invalid tokenizer step")
}

// pushMember schedules a key and value, followed by the end of the object or
// another member.
func (t *Tokenizer) pushMember() {
	t.stk.Push(stepEndObjectOrValue)
	t.stk.Push(stepValue)
	t.stk.Push(stepKey)
}

// pushElement schedules a value, followed by the end of the array or another
// element.
func (t *Tokenizer) pushElement() {
	t.stk.Push(stepEndArrayOrValue)
	t.stk.Push(stepValue)
}

// peekNext skips whitespace and returns the next rune of the input, without
// consuming it.
func (t *Tokenizer) peekNext() (rune, error) {
	t.buf.SkipSpace()
	ch, err := t.buf.Peek()
	if err != nil {
		return 0, t.buf.fail(err)
	}
	return ch, nil
}
