// Copyright (C) 2026 The jot Authors. All Rights Reserved.

package jot_test

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/halfmoonlabs/jot"
)

// benchInput synthesizes a moderately nested JSON document.
func benchInput() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < 1000; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": "item-%d ☃", "score": %d.%03d, "tags": ["x", "y\nz"], "ok": %v, "ref": null}`,
			i, i, i%97, i%1000, i%2 == 0)
	}
	sb.WriteString("]")
	return sb.String()
}

func BenchmarkLexer(b *testing.B) {
	input := benchInput()
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(strings.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Lexer", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			lx := jot.NewLexer(input)
			for {
				tok, err := lx.Advance()
				if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				} else if tok == jot.End {
					break
				}
			}
		}
	})
}
