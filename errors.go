// Copyright (C) 2026 The jot Authors. All Rights Reserved.

package jot

import (
	"errors"
	"fmt"

	"github.com/halfmoonlabs/jot/internal/escape"
)

// Sentinel errors classifying the failures reported by a Lexer.
// Use errors.Is to test for them.
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrInvalidEscape       = escape.ErrInvalidEscape
	ErrUnterminatedString  = errors.New("unterminated string")
)

// A LexError is the concrete type of errors reported by a Lexer. It records
// the byte offset in the input at which scanning failed.
type LexError struct {
	Offset int    // offset of the offending input, 0-based
	Err    error  // the sentinel classifying this failure
	Detail string // optional human-readable context
}

func (e *LexError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v (offset %d)", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v: %s (offset %d)", e.Err, e.Detail, e.Offset)
}

// Unwrap supports error wrapping.
func (e *LexError) Unwrap() error { return e.Err }

func lexErr(off int, sentinel error, msg string, args ...any) *LexError {
	return &LexError{Offset: off, Err: sentinel, Detail: fmt.Sprintf(msg, args...)}
}
