// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"fmt"
	"slices"
)

// ToValue converts a Go value into an equivalent Value.
//
// The input may be nil, a Value, a bool, a string, any integer or
// floating-point type, a []any or []Value whose elements can be converted, or
// a map[string]any whose values can be converted. Map members are added in
// sorted order of their keys. ToValue panics for any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	case []Value:
		return Array(t)
	case []any:
		a := make(Array, len(t))
		for i, elt := range t {
			a[i] = ToValue(elt)
		}
		return a
	case map[string]any:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		o := new(Object)
		for _, key := range keys {
			o.Members = append(o.Members, &Member{Key: key, Value: ToValue(t[key])})
		}
		return o
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}
