// Copyright (C) 2026 The jot Authors. All Rights Reserved.

// Package ast defines a tree representation for JSON values, and a parser
// that constructs value trees from JSON source.
package ast

import "github.com/halfmoonlabs/jot"

// A Value is a single JSON value. The concrete types are *Object, *Array,
// String, Integer, Number, Bool, and Null.
type Value interface {
	Span() jot.Span
}

// A Datum is a Value with a source text representation.
type Datum interface {
	Value
	Text() string
}

func newSpan(pos, end int) jot.Span { return jot.Span{Pos: pos, End: end} }

// An Object is a collection of key-value members. Keys are unique: when an
// object literal repeats a key, the member holds the value of the last
// occurrence and sits at the position of the last write.
type Object struct {
	pos, end int

	Members []*Member
}

// Span satisfies the Value interface.
func (o *Object) Span() jot.Span { return newSpan(o.pos, o.end) }

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.Members) }

// Find returns the member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object. The key is
// fully unescaped.
type Member struct {
	pos, end int

	Key   string
	Value Value
}

// Span satisfies the Value interface.
func (m *Member) Span() jot.Span { return newSpan(m.pos, m.end) }

// An Array is an ordered sequence of values.
type Array struct {
	pos, end int

	Values []Value
}

// Span satisfies the Value interface.
func (a *Array) Span() jot.Span { return newSpan(a.pos, a.end) }

// Len reports the number of elements of a.
func (a *Array) Len() int { return len(a.Values) }

type datum struct {
	pos, end int
	text     string
}

// Span satisfies the Value interface.
func (d datum) Span() jot.Span { return newSpan(d.pos, d.end) }

// Text satisfies the Datum interface.
func (d datum) Text() string { return d.text }

// A String is a string value. Its value is fully unescaped.
type String struct {
	datum
	value string
}

// Value returns the decoded text of s.
func (s String) Value() string { return s.value }

// An Integer is a number value written without fraction or exponent.
type Integer struct {
	datum
	value int64
}

// Int64 returns the value of z as an int64.
func (z Integer) Int64() int64 { return z.value }

// A Number is a floating-point number value.
type Number struct {
	datum
	value float64
}

// Float64 returns the value of n as a float64.
func (n Number) Float64() float64 { return n.value }

// A Bool is a Boolean constant, true or false.
type Bool struct {
	datum
	value bool
}

// Value returns the truth value of b.
func (b Bool) Value() bool { return b.value }

// Null represents the null constant.
type Null struct{ datum }
