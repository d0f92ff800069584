// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package value

import "fmt"

// Path traverses a sequential path through the structure of a value starting
// at v, where path elements are either strings (denoting object keys) or
// integers (denoting offsets into arrays).  If the path is valid, the element
// reached is returned. In case of error, the input v is returned along with
// the error.
//
// Negative array indices count backward from the end of the array (-1 is
// last, -2 second last, etc.).
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			o, ok := cur.(*Object)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %q", cur, elt)
			}
			m := o.Find(t)
			if m == nil {
				return v, fmt.Errorf("key %q not found", t)
			}
			cur = m.Value
		case int:
			a, ok := cur.(Array)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %v", cur, elt)
			}
			i, ok := fixArrayBound(len(a), t)
			if !ok {
				return v, fmt.Errorf("array index %d out of bounds (n=%d)", i, len(a))
			}
			cur = a[i]
		default:
			return v, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
