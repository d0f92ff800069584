// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unescaping of JSON strings in the
// restricted escape grammar understood by the decoder: only \", \\, and \n
// are escapes, and a backslash before any other rune is dropped.
package escape

// Unescape returns the rune denoted by the escape sequence whose second rune
// (following the backslash) is r.
func Unescape(r rune) rune {
	if r == 'n' {
		return '\n'
	}
	return r
}
