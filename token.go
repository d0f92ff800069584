// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"fmt"

	"github.com/creachadair/jchunk/value"
)

// A Token is a lexical token reported by a Tokenizer. The concrete type of a
// Token is one of OpenObject, CloseObject, OpenArray, CloseArray, Key, or
// Value. Use Visit to dispatch on the type of a token.
type Token interface {
	fmt.Stringer

	visit(Handler) error
}

// OpenObject is the token for the open brace "{" of an object.
type OpenObject struct{}

// CloseObject is the token for the close brace "}" of an object.
type CloseObject struct{}

// OpenArray is the token for the open bracket "[" of an array.
type OpenArray struct{}

// CloseArray is the token for the close bracket "]" of an array.
type CloseArray struct{}

// Key is the token for the key of an object member, including its colon.
type Key string

// Value is the token for a string, number, Boolean, or null value.
type Value struct {
	Datum value.Value // String, Number, Bool, or Null
}

func (OpenObject) String() string  { return "OpenObject" }
func (CloseObject) String() string { return "CloseObject" }
func (OpenArray) String() string   { return "OpenArray" }
func (CloseArray) String() string  { return "CloseArray" }
func (k Key) String() string       { return fmt.Sprintf("Key(%s)", value.String(k).JSON()) }
func (v Value) String() string     { return fmt.Sprintf("Value(%s)", v.Datum.JSON()) }

func (OpenObject) visit(h Handler) error  { return h.OpenObject() }
func (CloseObject) visit(h Handler) error { return h.CloseObject() }
func (OpenArray) visit(h Handler) error   { return h.OpenArray() }
func (CloseArray) visit(h Handler) error  { return h.CloseArray() }
func (k Key) visit(h Handler) error       { return h.Key(string(k)) }
func (v Value) visit(h Handler) error     { return h.Value(v.Datum) }

// A Handler handles the tokens of a stream, one method per kind of token. If
// a method reports an error, processing stops and that error is returned to
// the caller.
type Handler interface {
	// Begin a new object.
	OpenObject() error

	// End the most-recently-opened object.
	CloseObject() error

	// Begin a new array.
	OpenArray() error

	// End the most-recently-opened array.
	CloseArray() error

	// Begin an object member with the given key. The member value follows.
	Key(key string) error

	// Report a string, number, Boolean, or null value.
	Value(v value.Value) error
}

// Visit calls the method of h corresponding to the type of tok, and returns
// its result.
func Visit(tok Token, h Handler) error { return tok.visit(h) }
