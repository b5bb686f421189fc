// Copyright (C) 2026 The jot Authors. All Rights Reserved.

package jwcc_test

import (
	"testing"

	"github.com/halfmoonlabs/jot/ast"
	"github.com/halfmoonlabs/jot/jwcc"
)

const testDoc = `// A document with non-standard decorations.
{
  "name": "fortinbras", // a line comment
  /* a block comment */
  "tags": ["royal", "norwegian",],
  "age": 30,
}`

func TestParse(t *testing.T) {
	v, err := jwcc.Parse(testDoc)
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}

	obj, ok := v.(*ast.Object)
	if !ok {
		t.Fatalf("Root is %T, not object", v)
	}
	if obj.Len() != 3 {
		t.Errorf("Len: got %d, want 3", obj.Len())
	}

	if got, err := ast.Path(v, "name"); err != nil {
		t.Errorf("Path(name): unexpected error: %v", err)
	} else if s := got.(ast.String).Value(); s != "fortinbras" {
		t.Errorf("Path(name): got %q, want %q", s, "fortinbras")
	}
	if got, err := ast.Path(v, "tags", -1); err != nil {
		t.Errorf("Path(tags, -1): unexpected error: %v", err)
	} else if s := got.(ast.String).Value(); s != "norwegian" {
		t.Errorf("Path(tags, -1): got %q, want %q", s, "norwegian")
	}
	if got, err := ast.Path(v, "age"); err != nil {
		t.Errorf("Path(age): unexpected error: %v", err)
	} else if z := got.(ast.Integer).Int64(); z != 30 {
		t.Errorf("Path(age): got %d, want 30", z)
	}
}

func TestParseStrict(t *testing.T) {
	// Standard JSON is valid JWCC.
	if _, err := jwcc.Parse(`{"plain": [1, 2, 3]}`); err != nil {
		t.Errorf("Parse: unexpected error: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		`{"unclosed": // comment`,
		`/* unterminated block {}`,
		`{"a": 1} {"b": 2}`,
		``,
	}
	for _, input := range tests {
		if v, err := jwcc.Parse(input); err == nil {
			t.Errorf("Parse %#q: got %+v, want error", input, v)
		}
	}
}
