// Copyright (C) 2026 The jot Authors. All Rights Reserved.

// Package jwcc parses JSON With Commas and Comments (JWCC) as defined by
// https://nigeltao.github.io/blog/2021/json-with-commas-comments.html
//
// Input is standardized to plain JSON, then handed to the strict core
// parser. Comments and trailing commas do not survive into the value tree;
// the core lexer and parser never see them.
package jwcc

import (
	"github.com/tailscale/hujson"

	"github.com/halfmoonlabs/jot/ast"
)

// Parse parses a single JWCC value from input and returns its value tree.
func Parse(input string) (ast.Value, error) {
	std, err := hujson.Standardize([]byte(input))
	if err != nil {
		return nil, err
	}
	return ast.Parse(string(std))
}
