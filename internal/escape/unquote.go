// Copyright (C) 2026 The jot Authors. All Rights Reserved.

// Package escape handles unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// ErrInvalidEscape is the concrete cause of all escape decoding failures
// reported by Unquote.
var ErrInvalidEscape = errors.New("invalid escape sequence")

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A malformed
// or incomplete escape sequence is an error. Surrogate pairs written as two
// \u escapes decode to a single rune; a lone surrogate decodes to the Unicode
// replacement rune, as in encoding/json.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	putRune := func(r rune) {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		// Decode the rune after the backslash to find out what to substitute.
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, fmt.Errorf("%w: incomplete escape", ErrInvalidEscape)
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				return nil, fmt.Errorf("%w: incomplete Unicode escape", ErrInvalidEscape)
			}
			v, err := parseHex(src.SliceTo(4))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidEscape, err)
			}
			src = src.SliceFrom(4)
			if c := rune(v); !utf16.IsSurrogate(c) {
				putRune(c)
			} else if pair, rest, ok := combineSurrogate(c, src); ok {
				putRune(pair)
				src = rest
			} else {
				putRune(utf8.RuneError)
			}
		default:
			return nil, fmt.Errorf("%w: %q after backslash", ErrInvalidEscape, r)
		}

		// Look for the next escape sequence, and if one is not found we can
		// blit the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// combineSurrogate combines hi with a low surrogate written as a \uXXXX
// escape at the front of src. It reports false if no valid pair is present.
func combineSurrogate(hi rune, src mem.RO) (rune, mem.RO, bool) {
	if src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
		return 0, src, false
	}
	v, err := parseHex(src.SliceFrom(2).SliceTo(4))
	if err != nil {
		return 0, src, false
	}
	c := utf16.DecodeRune(hi, rune(v))
	if c == utf8.RuneError {
		return 0, src, false
	}
	return c, src.SliceFrom(6), true
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
