// Copyright (C) 2026 The jot Authors. All Rights Reserved.

// Package jot implements a strict lexer for JSON text (RFC 8259).
//
// # Scanning
//
// The Lexer type implements a lexical scanner with one token of lookahead.
// Construct a lexer from an input string. Peek reports the next token of the
// input without consuming it, and Advance consumes it:
//
//	lx := jot.NewLexer(input)
//	for {
//		tok, err := lx.Advance()
//		if err != nil {
//			log.Fatalf("Scanning failed: %v", err)
//		} else if tok == jot.End {
//			break
//		}
//		log.Printf("Next token: %v", tok)
//	}
//
// Tokens carry no payload. When Peek reports a String, Integer, or Number
// token, call ReadString or ReadNumber instead of Advance to consume the
// token and obtain its decoded value.
//
// Scanning failures are reported as *LexError values wrapping one of the
// package sentinels (ErrUnexpectedCharacter, ErrInvalidNumber,
// ErrInvalidEscape, ErrUnterminatedString); use errors.Is to classify them.
//
// # Parsing
//
// Parsing JSON text into a value tree is provided by the ast subpackage,
// whose parser drives a Lexer through the JSON grammar:
//
//	v, err := ast.Parse(`{"a": [1, 2.5, null]}`)
//
// The jwcc subpackage accepts JSON with commas and comments by standardizing
// the input before handing it to the strict parser.
package jot
