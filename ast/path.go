// Copyright (C) 2026 The jot Authors. All Rights Reserved.

package ast

import "fmt"

// A PathFunc is a custom traversal step usable as a Path element.
type PathFunc func(Value) (Value, error)

// Path traverses v by the given path elements and returns the value reached.
//
// A string element selects the named member of an object, an int element
// selects an offset in an array with negative offsets counting from the end,
// and a PathFunc element applies the function to the value reached so far.
// With no path elements, Path returns v.
func Path(v Value, path ...any) (Value, error) {
	for _, elt := range path {
		next, err := pathStep(v, elt)
		if err != nil {
			return nil, err
		}
		v = next
	}
	return v, nil
}

func pathStep(v Value, elt any) (Value, error) {
	switch t := elt.(type) {
	case string:
		obj, ok := v.(*Object)
		if !ok {
			return nil, fmt.Errorf("cannot traverse %T with key %q", v, t)
		}
		m := obj.Find(t)
		if m == nil {
			return nil, fmt.Errorf("key %q not found", t)
		}
		return m.Value, nil

	case int:
		arr, ok := v.(*Array)
		if !ok {
			return nil, fmt.Errorf("cannot traverse %T with offset %d", v, t)
		}
		i := t
		if i < 0 {
			i += arr.Len()
		}
		if i < 0 || i >= arr.Len() {
			return nil, fmt.Errorf("offset %d out of range (0..%d)", t, arr.Len())
		}
		return arr.Values[i], nil

	case PathFunc:
		return t(v)
	case func(Value) (Value, error):
		return t(v)

	default:
		return nil, fmt.Errorf("invalid path element %T", elt)
	}
}
