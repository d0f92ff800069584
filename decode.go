// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jchunk

import "github.com/creachadair/jchunk/value"

// Decode decodes a single complete value from the front of src.
// Any input following the value is ignored.
func Decode(src Source) (value.Value, error) { return DecodeValue(NewBuffer(src)) }

// DecodeAll decodes a sequence of values separated by optional whitespace
// from src, until the input is exhausted. In case of error, any complete
// values already decoded are returned along with the error.
func DecodeAll(src Source) ([]value.Value, error) {
	b := NewBuffer(src)
	var vs []value.Value
	for {
		b.SkipSpace()
		if _, err := b.Peek(); atEOF(err) {
			return vs, nil
		} else if err != nil {
			return vs, err
		}
		v, err := DecodeValue(b)
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
}

// DecodeValue decodes a complete value of any kind starting at the next
// non-whitespace rune of b.
func DecodeValue(b *Buffer) (value.Value, error) {
	b.SkipSpace()
	kind, err := WhichValueKind(b)
	if err != nil {
		return nil, err
	}
	switch kind {
	case ArrayKind:
		return DecodeArray(b)
	case ObjectKind:
		return DecodeObject(b)
	default:
		return DecodePrimitive(b)
	}
}

// DecodeArray decodes an array starting at the next rune of b, which must be
// an open bracket.
func DecodeArray(b *Buffer) (value.Array, error) {
	if err := expect(b, '['); err != nil {
		return nil, err
	}
	a := value.Array{}
	for {
		done, err := endOfList(b, ']', len(a) == 0)
		if err != nil {
			return nil, err
		} else if done {
			return a, nil
		}
		v, err := DecodeValue(b)
		if err != nil {
			return nil, err
		}
		a = append(a, v)
	}
}

// DecodeObject decodes an object starting at the next rune of b, which must
// be an open brace. If a key occurs more than once, the last value wins.
func DecodeObject(b *Buffer) (*value.Object, error) {
	if err := expect(b, '{'); err != nil {
		return nil, err
	}
	o := new(value.Object)
	for first := true; ; first = false {
		done, err := endOfList(b, '}', first)
		if err != nil {
			return nil, err
		} else if done {
			return o, nil
		}
		b.SkipSpace()
		key, err := DecodeString(b)
		if err != nil {
			return nil, err
		}
		b.SkipSpace()
		if err := expect(b, ':'); err != nil {
			return nil, err
		}
		v, err := DecodeValue(b)
		if err != nil {
			return nil, err
		}
		o.Set(key, v)
	}
}

// endOfList reports whether the next rune of b is the closing delimiter of a
// list, consuming it if so. Otherwise, unless this is the first element, it
// consumes the comma separating the next element from the previous one.
func endOfList(b *Buffer, closer rune, first bool) (bool, error) {
	b.SkipSpace()
	ch, err := b.Peek()
	if err != nil {
		return false, b.fail(err)
	}
	if ch == closer {
		b.Next()
		return true, nil
	} else if first {
		return false, nil
	}
	return false, skipComma(b, closer)
}

// skipComma consumes a comma separating two elements of a list. A closing
// delimiter directly after the comma is an unexpected token.
func skipComma(b *Buffer, closer rune) error {
	if err := expect(b, ','); err != nil {
		return err
	}
	b.SkipSpace()
	if ch, err := b.Peek(); err == nil && ch == closer {
		return errToken(ch, b.Pos())
	}
	return nil
}
