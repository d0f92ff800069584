// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

// Quote encodes src as a JSON string body for inclusion between double
// quotation marks. Quotation marks, backslashes, and newlines are escaped;
// all other runes are copied unchanged, so Unescape inverts Quote.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		switch r {
		case '"', '\\':
			buf = append(buf, '\\', byte(r))
		case '\n':
			buf = append(buf, '\\', 'n')
		default:
			buf = mem.Append(buf, src.SliceTo(n))
		}
		src = src.SliceFrom(n)
	}
	return buf
}
