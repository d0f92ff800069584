// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/creachadair/jchunk/internal/escape"
	"github.com/creachadair/jchunk/value"

	"go4.org/mem"
)

// ValueKind identifies the grammar production of a JSON value.
type ValueKind byte

// Constants defining the valid ValueKind values.
const (
	InvalidKind ValueKind = iota // not a value
	StringKind                   // quoted string
	NumberKind                   // unsigned number, no exponent
	BoolKind                     // constant: true or false
	NullKind                     // constant: null
	ArrayKind                    // [ ... ]
	ObjectKind                   // { ... }
)

var valueKindStr = [...]string{
	InvalidKind: "invalid",
	StringKind:  "string",
	NumberKind:  "number",
	BoolKind:    "boolean",
	NullKind:    "null",
	ArrayKind:   "array",
	ObjectKind:  "object",
}

func (k ValueKind) String() string {
	v := int(k)
	if v >= len(valueKindStr) {
		return valueKindStr[InvalidKind]
	}
	return valueKindStr[v]
}

// WhichValueKind reports which kind of value begins at the next rune of b,
// without consuming any input.
func WhichValueKind(b *Buffer) (ValueKind, error) {
	ch, err := b.Peek()
	if err != nil {
		return InvalidKind, b.fail(err)
	}
	switch {
	case ch == '"':
		return StringKind, nil
	case isDigit(ch):
		return NumberKind, nil
	case ch == 't', ch == 'f':
		return BoolKind, nil
	case ch == 'n':
		return NullKind, nil
	case ch == '[':
		return ArrayKind, nil
	case ch == '{':
		return ObjectKind, nil
	}
	return InvalidKind, errValueStart(ch, b.Pos())
}

// DecodeString decodes a quoted string starting at the next rune of b.
//
// The escapes \", \\, and \n are recognized. A backslash followed by any
// other rune is dropped and the rune is kept as written, so "\t" decodes as
// "t" and "\u0041" decodes as "u0041".
func DecodeString(b *Buffer) (string, error) {
	if err := expect(b, '"'); err != nil {
		return "", err
	}
	var buf []byte
	for {
		ch, err := b.Next()
		if err != nil {
			return "", b.fail(err)
		}
		switch ch {
		case '"':
			return string(buf), nil
		case '\\':
			esc, err := b.Next()
			if err != nil {
				return "", b.fail(err)
			}
			buf = utf8.AppendRune(buf, escape.Unescape(esc))
		default:
			buf = utf8.AppendRune(buf, ch)
		}
	}
}

// DecodeNumber decodes a number starting at the next rune of b. A number is a
// run of decimal digits containing at most one decimal point, which may not
// be the first rune. Signs and exponents are not recognized.
func DecodeNumber(b *Buffer) (float64, error) {
	var buf []byte
	var dot bool
	for {
		pos := b.Pos()
		ch, err := b.Peek()
		if atEOF(err) {
			break
		} else if err != nil {
			return 0, err
		}
		if ch == '.' {
			if dot || len(buf) == 0 {
				return 0, errToken(ch, pos)
			}
			dot = true
		} else if !isDigit(ch) {
			break
		}
		buf = append(buf, byte(ch))
		b.Next()
	}
	if len(buf) == 0 {
		ch, err := b.Peek()
		if err != nil {
			return 0, b.fail(err)
		}
		return 0, errToken(ch, b.Pos())
	}
	v, err := strconv.ParseFloat(string(buf), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", buf, err)
	}
	return v, nil
}

// DecodeBool decodes one of the constants true or false starting at the next
// rune of b.
func DecodeBool(b *Buffer) (bool, error) {
	ch, err := b.Peek()
	if err != nil {
		return false, b.fail(err)
	}
	switch ch {
	case 't', 'f':
		want := mem.S("true")
		if ch == 'f' {
			want = mem.S("false")
		}
		if err := matchLiteral(b, want); err != nil {
			return false, err
		}
		return ch == 't', nil
	}
	return false, errToken(ch, b.Pos())
}

// DecodeNull decodes the constant null starting at the next rune of b.
func DecodeNull(b *Buffer) error { return matchLiteral(b, mem.S("null")) }

// DecodePrimitive decodes a string, number, Boolean, or null starting at the
// next rune of b. An array or object at this position is reported as an
// unexpected token.
func DecodePrimitive(b *Buffer) (value.Value, error) {
	kind, err := WhichValueKind(b)
	if err != nil {
		return nil, err
	}
	switch kind {
	case StringKind:
		s, err := DecodeString(b)
		if err != nil {
			return nil, err
		}
		return value.String(s), nil
	case NumberKind:
		z, err := DecodeNumber(b)
		if err != nil {
			return nil, err
		}
		return value.Number(z), nil
	case BoolKind:
		ok, err := DecodeBool(b)
		if err != nil {
			return nil, err
		}
		return value.Bool(ok), nil
	case NullKind:
		if err := DecodeNull(b); err != nil {
			return nil, err
		}
		return value.Null{}, nil
	default:
		ch, _ := b.Peek()
		return nil, errToken(ch, b.Pos())
	}
}

// matchLiteral consumes the runes of want from b, reporting an error at the
// first rune that does not match.
func matchLiteral(b *Buffer, want mem.RO) error {
	for want.Len() != 0 {
		wr, n := mem.DecodeRune(want)
		if err := expect(b, wr); err != nil {
			return err
		}
		want = want.SliceFrom(n)
	}
	return nil
}

// expect consumes a single rune from b and reports an error if it is not want.
func expect(b *Buffer, want rune) error {
	pos := b.Pos()
	ch, err := b.Next()
	if err != nil {
		return b.fail(err)
	} else if ch != want {
		return errToken(ch, pos)
	}
	return nil
}

// fail converts an error from the source into a decoding error. The end of
// input inside a production is an UnexpectedEndOfInput syntax error; other
// errors are returned unchanged.
func (b *Buffer) fail(err error) error {
	if atEOF(err) {
		return errEOF(b.pos)
	}
	return err
}
