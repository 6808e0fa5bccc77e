// Package value defines the editor-side value representation that script
// results are marshaled into. It mirrors the extension language's data model:
// nil, booleans, integers, floats, immutable strings, fixed-size ordered
// lists, and association lists of (key, value) pairs.
//
// Objects become association lists, not maps: the editor side searches
// linearly and key order is significant.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the closed set of editor value kinds.
type Value interface {
	isValue()
	// Format renders the value in the editor's literal notation, for
	// diagnostics and CLI output.
	Format() string
}

// Nil is the nil-equivalent.
type Nil struct{}

// Bool is the true/false-equivalent.
type Bool bool

// Int is a signed integer value.
type Int int64

// Float is a floating-point value.
type Float float64

// String is an immutable text value.
type String string

// List is a fixed-size ordered sequence.
type List []Value

// Pair is one (key, value) element of an association list.
type Pair struct {
	Key string
	Val Value
}

// AList is an ordered sequence of (key, value) pairs. Lookup is linear by
// construction; duplicate keys are preserved in source order.
type AList []Pair

func (Nil) isValue()    {}
func (Bool) isValue()   {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (String) isValue() {}
func (List) isValue()   {}
func (AList) isValue()  {}

func (Nil) Format() string { return "nil" }

func (b Bool) Format() string {
	if b {
		return "t"
	}
	return "nil"
}

func (i Int) Format() string { return strconv.FormatInt(int64(i), 10) }

func (f Float) Format() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

func (s String) Format() string { return strconv.Quote(string(s)) }

func (l List) Format() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.Format()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (a AList) Format() string {
	parts := make([]string, len(a))
	for i, p := range a {
		parts[i] = fmt.Sprintf("(%s . %s)", strconv.Quote(p.Key), p.Val.Format())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Get returns the value for the first pair with the given key.
func (a AList) Get(key string) (Value, bool) {
	for _, p := range a {
		if p.Key == key {
			return p.Val, true
		}
	}
	return nil, false
}
