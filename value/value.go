// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package value defines the in-memory representation of decoded JSON values.
//
// A decoded value is one of String, Number, Bool, Null, Array, or *Object.
// Values are not modified by the decoder once they have been returned.
package value

import (
	"strconv"
	"strings"

	"github.com/creachadair/jchunk/internal/escape"
	"go4.org/mem"
)

// A Value is an arbitrary decoded JSON value.
type Value interface {
	// JSON renders the value as JSON text.
	JSON() string
}

// A String is a string value.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return `"` + string(escape.Quote(mem.S(string(s)))) + `"` }

// A Number is a double-precision numeric value.
type Number float64

// JSON satisfies the Value interface.
func (z Number) JSON() string { return strconv.FormatFloat(float64(z), 'f', -1, 64) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

// An Array is a sequence of values.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// An Object is a collection of key-value members, in order of first
// appearance of each key.
type Object struct {
	Members []*Member
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Find returns the member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Get returns the value of the member of o with the given key, or nil.
func (o *Object) Get(key string) Value {
	if m := o.Find(key); m != nil {
		return m.Value
	}
	return nil
}

// Set sets the value of key in o. If o already has a member with that key,
// its value is replaced and it keeps its position; otherwise a new member is
// added at the end.
func (o *Object) Set(key string, v Value) {
	if m := o.Find(key); m != nil {
		m.Value = v
		return
	}
	o.Members = append(o.Members, &Member{Key: key, Value: v})
}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.Members) }

// Keys returns the keys of o in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.Members))
	for i, m := range o.Members {
		keys[i] = m.Key
	}
	return keys
}

// JSON satisfies the Value interface.
func (o *Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(String(m.Key).JSON())
		sb.WriteByte(':')
		sb.WriteString(m.Value.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}
