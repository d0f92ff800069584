// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jchunk implements an incremental JSON tokenizer and decoder for
// input delivered in chunks.
//
// # Sources
//
// Input is read from a Source, which delivers the text of a document as a
// sequence of chunks of any size. Next returns io.EOF at the end of the input:
//
//	src := jchunk.Chunks(`{"foo": [`, `"bar", true, 42]}`)
//
// NewReaderSource reads chunks from an io.Reader, NewChanSource receives them
// from a channel as a producer delivers them, and NewStandardSource accepts
// input with comments and trailing commas.
//
// # Tokenizing
//
// The Tokenizer type reads one token at a time. Construct a tokenizer from a
// Source and call its Token method. Token returns io.EOF when the value is
// complete:
//
//	t := jchunk.NewTokenizer(src)
//	for {
//	   tok, err := t.Token()
//	   if err == io.EOF {
//	      break
//	   } else if err != nil {
//	      log.Fatalf("Token failed: %v", err)
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// The tokenizer retains only the unread portion of the current chunk and a
// stack of pending work proportional to the nesting depth of the input, so an
// array of any length can be tokenized in constant memory.
//
// # Tokens
//
// A Token has one of six concrete types:
//
//	Token type  | Description
//	----------- | -----------------------------------
//	OpenObject  | {
//	CloseObject | }
//	OpenArray   | [
//	CloseArray  | ]
//	Key         | "key": (the key of an object member)
//	Value       | a string, number, Boolean, or null
//
// To handle tokens by type, implement the Handler interface and call Visit,
// or pass the handler to Walk.
//
// # Decoding
//
// DecodeValue and its relatives decode a complete value into memory as a
// value.Value. Within a tokenizer, More and Decode switch from token-by-token
// processing to decoding whole elements, for example to decode each record of
// a large array in turn.
//
// # Grammar
//
// The accepted grammar is a subset of JSON: numbers are unsigned and have no
// exponent, and the only recognized string escapes are \", \\, and \n. A
// backslash before any other rune is dropped. Syntax errors are reported as
// values of type *SyntaxError.
package jchunk
