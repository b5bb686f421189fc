// Copyright (C) 2026 The jot Authors. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"slices"

	"github.com/halfmoonlabs/jot"
)

// DefaultMaxDepth is the element nesting limit applied by a new Parser.
const DefaultMaxDepth = 10000

// Sentinel errors classifying the grammar violations reported by a Parser.
// Use errors.Is to test for them.
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingInput   = errors.New("trailing input")
	ErrEmptyInput      = errors.New("empty input")
	ErrTooDeep         = errors.New("nesting too deep")
)

// Parse parses input as a single JSON element and returns its value tree.
// The whole input must be consumed by that element, apart from whitespace.
//
// Grammar violations are reported as *SyntaxError values; lexical errors
// propagate unchanged as *jot.LexError values. In either case no partial
// value is returned.
func Parse(input string) (Value, error) { return NewParser(input).Parse() }

// MustParse is Parse, but panics on error. Its main use is static
// initialization of values known to be syntactically valid.
func MustParse(input string) Value {
	v, err := Parse(input)
	if err != nil {
		panic("jot/ast: " + err.Error())
	}
	return v
}

// A Parser is a one-shot recursive-descent parser over a single input.
// Each grammar production is an unexported method; the parser keeps no state
// beyond its lexer cursor and a nesting depth counter.
type Parser struct {
	lx       *jot.Lexer
	maxDepth int
	depth    int
}

// NewParser constructs a parser for the given input text.
func NewParser(input string) *Parser {
	return &Parser{lx: jot.NewLexer(input), maxDepth: DefaultMaxDepth}
}

// MaxDepth sets the maximum element nesting depth to n.
// Values n <= 0 restore DefaultMaxDepth.
func (p *Parser) MaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	p.maxDepth = n
}

// Parse consumes the input as one JSON element and returns its value tree.
// Parse must be called at most once per Parser.
func (p *Parser) Parse() (Value, error) {
	tok, err := p.lx.Peek()
	if err != nil {
		return nil, err
	} else if tok == jot.End {
		return nil, p.syntaxErr(ErrEmptyInput, "no element found")
	}
	v, err := p.parseElement()
	if err != nil {
		return nil, err
	}
	if !p.lx.IsDone() {
		return nil, p.syntaxErr(ErrTrailingInput, "input continues after element")
	}
	return v, nil
}

// parseElement parses a single value of any type, with surrounding
// whitespace discarded.
func (p *Parser) parseElement() (Value, error) {
	if p.depth >= p.maxDepth {
		return nil, p.syntaxErr(ErrTooDeep, "nesting exceeds %d levels", p.maxDepth)
	}
	p.depth++
	defer func() { p.depth-- }()

	tok, err := p.lx.Peek()
	if err != nil {
		return nil, err
	}
	switch tok {
	case jot.LBrace:
		return p.parseObject()

	case jot.LSquare:
		return p.parseArray()

	case jot.String:
		text, err := p.lx.ReadString()
		if err != nil {
			return nil, err
		}
		return String{datum: p.tokenDatum(), value: text}, nil

	case jot.Integer, jot.Number:
		num, err := p.lx.ReadNumber()
		if err != nil {
			return nil, err
		}
		if num.IsInt() {
			return Integer{datum: p.tokenDatum(), value: num.Int64()}, nil
		}
		return Number{datum: p.tokenDatum(), value: num.Float64()}, nil

	case jot.True, jot.False:
		if _, err := p.lx.Advance(); err != nil {
			return nil, err
		}
		return Bool{datum: p.tokenDatum(), value: tok == jot.True}, nil

	case jot.Null:
		if _, err := p.lx.Advance(); err != nil {
			return nil, err
		}
		return Null{datum: p.tokenDatum()}, nil

	case jot.End:
		return nil, p.syntaxErr(ErrUnexpectedToken, "unexpected end of input")

	default:
		return nil, p.syntaxErr(ErrUnexpectedToken, "unexpected %v", tok)
	}
}

// parseObject parses an object. Precondition: the next token is "{".
func (p *Parser) parseObject() (Value, error) {
	if _, err := p.lx.Advance(); err != nil {
		return nil, err
	}
	obj := &Object{pos: p.lx.Span().Pos}

	tok, err := p.lx.Peek()
	if err != nil {
		return nil, err
	} else if tok == jot.RBrace {
		p.lx.Advance()
		obj.end = p.lx.Span().End
		return obj, nil
	}
	for {
		m, err := p.parseMember()
		if err != nil {
			return nil, err
		}

		// Last write wins: an earlier member with the same key is removed so
		// the new member takes the later position.
		for i, old := range obj.Members {
			if old.Key == m.Key {
				obj.Members = append(obj.Members[:i], obj.Members[i+1:]...)
				break
			}
		}
		obj.Members = append(obj.Members, m)

		tok, err := p.advance(`"," or "}"`, jot.Comma, jot.RBrace)
		if err != nil {
			return nil, err
		} else if tok == jot.RBrace {
			obj.end = p.lx.Span().End
			return obj, nil
		}
	}
}

// parseMember parses a single "key": element member.
// Precondition: the next token begins the key.
func (p *Parser) parseMember() (*Member, error) {
	tok, err := p.lx.Peek()
	if err != nil {
		return nil, err
	} else if tok != jot.String {
		return nil, p.syntaxErr(ErrUnexpectedToken, "got %v, want object key", tok)
	}
	key, err := p.lx.ReadString()
	if err != nil {
		return nil, err
	}
	pos := p.lx.Span().Pos

	if _, err := p.advance(`":"`, jot.Colon); err != nil {
		return nil, err
	}
	val, err := p.parseElement()
	if err != nil {
		return nil, err
	}
	return &Member{pos: pos, end: val.Span().End, Key: key, Value: val}, nil
}

// parseArray parses an array. Precondition: the next token is "[".
func (p *Parser) parseArray() (Value, error) {
	if _, err := p.lx.Advance(); err != nil {
		return nil, err
	}
	arr := &Array{pos: p.lx.Span().Pos}

	tok, err := p.lx.Peek()
	if err != nil {
		return nil, err
	} else if tok == jot.RSquare {
		p.lx.Advance()
		arr.end = p.lx.Span().End
		return arr, nil
	}
	for {
		v, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, v)

		tok, err := p.advance(`"," or "]"`, jot.Comma, jot.RSquare)
		if err != nil {
			return nil, err
		} else if tok == jot.RSquare {
			arr.end = p.lx.Span().End
			return arr, nil
		}
	}
}

// advance consumes the next token and checks it against the allowed set,
// reporting a syntax error naming label if it does not match.
func (p *Parser) advance(label string, want ...jot.Token) (jot.Token, error) {
	tok, err := p.lx.Advance()
	if err != nil {
		return jot.Invalid, err
	}
	if !slices.Contains(want, tok) {
		return tok, p.syntaxErr(ErrUnexpectedToken, "got %v, want %s", tok, label)
	}
	return tok, nil
}

// tokenDatum captures the span and raw text of the current lexer token.
func (p *Parser) tokenDatum() datum {
	sp := p.lx.Span()
	return datum{pos: sp.Pos, end: sp.End, text: p.lx.Text()}
}

func (p *Parser) syntaxErr(sentinel error, msg string, args ...any) error {
	return &SyntaxError{
		Location: p.lx.Location().Last,
		Message:  fmt.Sprintf(msg, args...),
		err:      sentinel,
	}
}

// SyntaxError is the concrete type of grammar errors reported by the parser.
type SyntaxError struct {
	Location jot.LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
