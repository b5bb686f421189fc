// Copyright (C) 2026 The jot Authors. All Rights Reserved.

package jot

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"go4.org/mem"

	"github.com/halfmoonlabs/jot/internal/escape"
)

// A Lexer reads lexical tokens from a JSON text held fully in memory.  The
// lexer maintains a cursor with one token of lookahead: Peek classifies the
// next token without consuming any input, Advance consumes it.  Peek and
// Advance share a single scan routine, so the token Peek reports is always
// the token Advance will produce.
//
// Tokens carry no payload. The raw text of the most recently consumed token
// is available from Text, and the decoded payloads of string and number
// tokens are obtained by calling ReadString or ReadNumber instead of Advance.
type Lexer struct {
	in  string
	pos int // read offset, advanced past each consumed token

	tok   Token // most recently consumed token, Invalid before the first Advance
	start int   // offset of the first byte of the current token
	end   int   // offset one past the last byte of the current token

	// Apparent line and column offsets (0-based) of the current token and of
	// the read offset.
	fline, fcol int
	line, col   int
}

// NewLexer constructs a lexer that reads tokens from input.
func NewLexer(input string) *Lexer { return &Lexer{in: input} }

// Advance consumes the next token of the input and returns its type.  Once
// the remaining input is exhausted, Advance returns End; it is safe to call
// Advance again after that, and it will keep returning End.  If the input at
// the read position matches no token grammar rule, Advance reports a
// *LexError and consumes nothing.
func (l *Lexer) Advance() (Token, error) {
	tok, start, end, err := scanToken(l.in, l.pos)
	if err != nil {
		return Invalid, err
	}
	l.seek(start)
	l.fline, l.fcol = l.line, l.col
	l.seek(end)
	l.tok, l.start, l.end = tok, start, end
	return tok, nil
}

// Peek reports the token the next call to Advance would return, without
// consuming any input. Repeated calls to Peek are idempotent.
func (l *Lexer) Peek() (Token, error) {
	tok, _, _, err := scanToken(l.in, l.pos)
	if err != nil {
		return Invalid, err
	}
	return tok, nil
}

// SkipWhitespace consumes a maximal run of whitespace at the read position.
func (l *Lexer) SkipWhitespace() { l.seek(skipSpace(l.in, l.pos)) }

// IsDone reports whether the input is exhausted, meaning at most whitespace
// remains beyond the read position.
func (l *Lexer) IsDone() bool { return skipSpace(l.in, l.pos) >= len(l.in) }

// Token returns the type of the current token.
func (l *Lexer) Token() Token { return l.tok }

// Text returns the undecoded text of the current token.
func (l *Lexer) Text() string { return l.in[l.start:l.end] }

// Span returns the location span of the current token.
func (l *Lexer) Span() Span { return Span{Pos: l.start, End: l.end} }

// Location returns the complete location of the current token.
func (l *Lexer) Location() Location {
	return Location{
		Span:  l.Span(),
		First: LineCol{Line: l.fline + 1, Column: l.fcol},
		Last:  LineCol{Line: l.line + 1, Column: l.col},
	}
}

// ReadString consumes a string token and returns its decoded text, with the
// enclosing quotes removed and all escape sequences replaced.  It reports a
// *LexError if the next token is not a string or the literal is malformed.
func (l *Lexer) ReadString() (string, error) {
	tok, err := l.Peek()
	if err != nil {
		return "", err
	} else if tok != String {
		return "", lexErr(l.pos, ErrUnexpectedCharacter, "got %v, want string", tok)
	}
	l.Advance()

	dec, err := escape.Unquote(mem.S(l.in[l.start+1 : l.end-1]))
	if err != nil {
		return "", &LexError{Offset: l.start, Err: err}
	}
	return string(dec), nil
}

// ReadNumber consumes a number token and returns its decoded value.  Text
// containing a fraction or exponent decodes to a floating-point value,
// integer-only text to an integer.  It reports a *LexError if the next token
// is not a number or the literal deviates from the JSON number grammar.
func (l *Lexer) ReadNumber() (Numeric, error) {
	tok, err := l.Peek()
	if err != nil {
		return Numeric{}, err
	} else if tok != Integer && tok != Number {
		return Numeric{}, lexErr(l.pos, ErrInvalidNumber, "got %v, want a number", tok)
	}
	l.Advance()

	text := l.Text()
	if tok == Integer {
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Numeric{text: text, isInt: true, vint: v}, nil
		}
		// The literal overflows int64; fall through to floating point.
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Numeric{}, lexErr(l.start, ErrInvalidNumber, "%v", err)
	}
	return Numeric{text: text, vfloat: v}, nil
}

// A Numeric is the decoded value of a JSON number literal.
type Numeric struct {
	text   string
	isInt  bool
	vint   int64
	vfloat float64
}

// IsInt reports whether n was decoded as an integer.
func (n Numeric) IsInt() bool { return n.isInt }

// Int64 returns the value of n as an int64. It is zero unless IsInt is true.
func (n Numeric) Int64() int64 { return n.vint }

// Float64 returns the value of n as a float64.
func (n Numeric) Float64() float64 {
	if n.isInt {
		return float64(n.vint)
	}
	return n.vfloat
}

// Text returns the raw literal text n was decoded from.
func (n Numeric) Text() string { return n.text }

// seek advances the read offset to end, updating the line and column
// projection for the input skipped over.
func (l *Lexer) seek(end int) {
	for i := l.pos; i < end; i++ {
		if l.in[i] == '\n' {
			l.line++
			l.col = 0
		} else {
			l.col++
		}
	}
	l.pos = end
}

// scanToken classifies the token beginning at the first non-whitespace byte
// of in at or after pos, returning its type and the start and end offsets of
// its text.  When only whitespace remains it returns End with start == end ==
// len(in).  scanToken mutates nothing: Advance commits its result and Peek
// discards it, which keeps the two paths consistent by construction.
func scanToken(in string, pos int) (tok Token, start, end int, err error) {
	start = skipSpace(in, pos)
	if start >= len(in) {
		return End, len(in), len(in), nil
	}

	c := in[start]

	// Punctuation.
	if t, ok := selfDelim(c); ok {
		return t, start, start + 1, nil
	}

	// Numbers.
	if c == '-' || isDigit(c) {
		end, tok, err := scanNumber(in, start)
		return tok, start, end, err
	}

	// Strings.
	if c == '"' {
		end, err := scanString(in, start)
		return String, start, end, err
	}

	// Constants: true, false, null.
	if isNameByte(c) {
		end = start + 1
		for end < len(in) && isNameByte(in[end]) {
			end++
		}
		word := mem.S(in[start:end])
		switch {
		case word.Equal(mem.S("true")):
			return True, start, end, nil
		case word.Equal(mem.S("false")):
			return False, start, end, nil
		case word.Equal(mem.S("null")):
			return Null, start, end, nil
		}
		return Invalid, start, end, lexErr(start, ErrUnexpectedCharacter, "unknown constant %q", in[start:end])
	}

	r, _ := utf8.DecodeRuneInString(in[start:])
	return Invalid, start, start, lexErr(start, ErrUnexpectedCharacter, "%q", r)
}

// scanNumber scans the number literal beginning at pos and returns the offset
// past its end.  The token is Integer if the literal has no fraction or
// exponent, otherwise Number.
func scanNumber(in string, pos int) (int, Token, error) {
	i := pos
	if in[i] == '-' {
		i++
	}

	// Integer part: "0", or a nonzero digit followed by digits.
	ds := i
	for i < len(in) && isDigit(in[i]) {
		i++
	}
	if i == ds {
		return i, Invalid, lexErr(pos, ErrInvalidNumber, "no digits after sign")
	}
	if in[ds] == '0' && i > ds+1 {
		// 0.12 is OK, 012 is not.
		return i, Invalid, lexErr(pos, ErrInvalidNumber, "extra leading zeroes")
	}

	tok := Integer
	if i < len(in) && in[i] == '.' {
		i++
		fs := i
		for i < len(in) && isDigit(in[i]) {
			i++
		}
		if i == fs {
			return i, Invalid, lexErr(pos, ErrInvalidNumber, "no digits after decimal point")
		}
		tok = Number
	}
	if i < len(in) && (in[i] == 'e' || in[i] == 'E') {
		i++
		if i < len(in) && (in[i] == '+' || in[i] == '-') {
			i++
		}
		es := i
		for i < len(in) && isDigit(in[i]) {
			i++
		}
		if i == es {
			return i, Invalid, lexErr(pos, ErrInvalidNumber, "missing exponent digits")
		}
		tok = Number
	}
	return i, tok, nil
}

// scanString scans the string literal beginning at the opening quote at pos
// and returns the offset past its closing quote.  Escape sequences are
// validated here; decoding happens in ReadString.
func scanString(in string, pos int) (int, error) {
	i := pos + 1
	for i < len(in) {
		switch c := in[i]; {
		case c == '"':
			return i + 1, nil
		case c == '\\':
			n, err := scanEscape(in, i)
			if err != nil {
				return i, err
			}
			i = n
		case c < ' ':
			return i, lexErr(i, ErrUnexpectedCharacter, "unescaped control %q", rune(c))
		default:
			i++ // multibyte runes pass through byte by byte
		}
	}
	return len(in), lexErr(pos, ErrUnterminatedString, "no closing quote")
}

// scanEscape validates the escape sequence at i, where in[i] is the
// backslash, and returns the offset just past it.
func scanEscape(in string, i int) (int, error) {
	if i+1 >= len(in) {
		return 0, lexErr(i, ErrUnterminatedString, "input ends in escape")
	}
	switch c := in[i+1]; c {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return i + 2, nil
	case 'u':
		for j := i + 2; j < i+6; j++ {
			if j >= len(in) || !isHexDigit(in[j]) {
				return 0, lexErr(i, ErrInvalidEscape, "invalid Unicode escape")
			}
		}
		return i + 6, nil
	default:
		return 0, lexErr(i+1, ErrInvalidEscape, "invalid %q after backslash", rune(c))
	}
}

func skipSpace(in string, pos int) int {
	for pos < len(in) && isSpace(in[pos]) {
		pos++
	}
	return pos
}

func isSpace(c byte) bool    { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
func isDigit(c byte) bool    { return '0' <= c && c <= '9' }
func isNameByte(c byte) bool { return c >= 'a' && c <= 'z' }

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(c byte) (Token, bool) {
	i := strings.IndexByte("{}[],:", c)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
