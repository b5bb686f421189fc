// Copyright (C) 2026 The jot Authors. All Rights Reserved.

package jot

import (
	"errors"
	"strings"

	"go4.org/mem"

	"github.com/halfmoonlabs/jot/internal/escape"
)

// Unquote decodes a JSON string literal.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
// Malformed escape sequences report an error wrapping ErrInvalidEscape.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
