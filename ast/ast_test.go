// Copyright (C) 2026 The jot Authors. All Rights Reserved.

package ast_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/halfmoonlabs/jot/ast"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestPath(t *testing.T) {
	v := ast.MustParse(testJSON)

	// A custom step selecting the first element of an array.
	first := func(v ast.Value) (ast.Value, error) {
		if arr, ok := v.(*ast.Array); ok && arr.Len() > 0 {
			return arr.Values[0], nil
		}
		return nil, errors.New("not a non-empty array")
	}

	tests := []struct {
		name string
		path []any
		want any
		fail bool
	}{
		{"NilInput", nil, toAny(v), false},
		{"NoMatch", []any{"nonesuch"}, nil, true},
		{"WrongType", []any{11}, nil, true},
		{"BadElement", []any{3.5}, nil, true},

		{"ArrayPos", []any{"list", 1, "x"}, 2.0, false},
		{"ArrayNeg", []any{"list", -1, "x"}, 2.0, false},
		{"ArrayRange", []any{"o", 25}, nil, true},
		{"ObjPath", []any{"xyz", "d"}, true, false},
		{"StrPath", []any{"y", "hello"}, "there", false},

		{"FuncArray", []any{"o", ast.PathFunc(first)}, "hi", false},
		{"FuncPlain", []any{"list", first, "x"}, 1.0, false},
		{"FuncWrong", []any{"xyz", "d", first}, nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ast.Path(v, tc.path...)
			if err != nil {
				if !tc.fail {
					t.Fatalf("Path: unexpected error: %v", err)
				}
				t.Logf("Got expected error: %v", err)
				return
			} else if tc.fail {
				t.Fatalf("Path: got %+v, want error", got)
			}
			if diff := cmp.Diff(tc.want, toAny(got)); diff != "" {
				t.Errorf("Wrong result (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFind(t *testing.T) {
	obj := ast.MustParse(testJSON).(*ast.Object)

	if m := obj.Find("list"); m == nil {
		t.Error(`Find("list"): not found`)
	} else if _, ok := m.Value.(*ast.Array); !ok {
		t.Errorf(`Find("list"): value is %T, not array`, m.Value)
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf(`Find("nonesuch"): got %+v, want nil`, m)
	}
}

func TestSpans(t *testing.T) {
	input := `{"a": [10, true]}`
	v := ast.MustParse(input)

	if got, want := v.Span(), len(input); got.Pos != 0 || got.End != want {
		t.Errorf("Object span: got %+v, want {0 %d}", got, want)
	}

	arr, err := ast.Path(v, "a")
	if err != nil {
		t.Fatalf("Path: unexpected error: %v", err)
	}
	if got := arr.Span(); input[got.Pos:got.End] != "[10, true]" {
		t.Errorf("Array span: got %q", input[got.Pos:got.End])
	}

	elt, err := ast.Path(arr, 0)
	if err != nil {
		t.Fatalf("Path: unexpected error: %v", err)
	}
	if got, ok := elt.(ast.Integer); !ok {
		t.Errorf("Element is %T, not integer", elt)
	} else if got.Text() != "10" {
		t.Errorf("Text: got %q, want %q", got.Text(), "10")
	}
}

func TestDatum(t *testing.T) {
	v := ast.MustParse(`["x\ny", -3.25e2, 17, false, null]`).(*ast.Array)

	tests := []struct {
		value ast.Value
		text  string
	}{
		{v.Values[0], `"x\ny"`}, // raw text keeps the escape
		{v.Values[1], `-3.25e2`},
		{v.Values[2], `17`},
		{v.Values[3], `false`},
		{v.Values[4], `null`},
	}
	for i, tc := range tests {
		d, ok := tc.value.(ast.Datum)
		if !ok {
			t.Errorf("Value %d is %T, which has no text", i, tc.value)
			continue
		}
		if d.Text() != tc.text {
			t.Errorf("Value %d: text %q, want %q", i, d.Text(), tc.text)
		}
	}

	if got := v.Values[1].(ast.Number).Float64(); got != -325 {
		t.Errorf("Float64: got %v, want -325", got)
	}
	if got := v.Values[2].(ast.Integer).Int64(); got != 17 {
		t.Errorf("Int64: got %v, want 17", got)
	}
}
