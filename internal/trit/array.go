package trit

import "fmt"

// Array is an ordered, fixed-length sequence of trits. Length is immutable
// after creation; every element is always a valid trit.
type Array struct {
	elems []Trit
}

// NewArray creates an Array of the given length with every element set to
// the neutral trit.
func NewArray(length int) *Array {
	elems := make([]Trit, length)
	for i := range elems {
		elems[i] = New(0)
	}
	return &Array{elems: elems}
}

// FromValues builds an Array directly from a slice of {-1,0,1} ints.
func FromValues(values []int) *Array {
	elems := make([]Trit, len(values))
	for i, v := range values {
		elems[i] = New(v)
	}
	return &Array{elems: elems}
}

// Len returns the number of elements in a.
func (a *Array) Len() int {
	return len(a.elems)
}

// Get returns the trit at index i, or Unknown if i is out of range.
func (a *Array) Get(i int) Trit {
	if i < 0 || i >= len(a.elems) {
		return UnknownTrit()
	}
	return a.elems[i]
}

// Set writes t at index i. It fails (returns false, no side effect) if i is
// out of range or t is not a valid trit.
func (a *Array) Set(i int, t Trit) bool {
	if i < 0 || i >= len(a.elems) || !t.IsValid() {
		return false
	}
	a.elems[i] = t
	return true
}

// Equal reports whether a and b have the same length and identical
// elements in order.
func (a *Array) Equal(b *Array) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.elems {
		if a.elems[i].Value() != b.elems[i].Value() {
			return false
		}
	}
	return true
}

// Dup returns an independent copy of a.
func (a *Array) Dup() *Array {
	out := make([]Trit, len(a.elems))
	copy(out, a.elems)
	return &Array{elems: out}
}

// Map applies op element-wise across a and b, which must have equal
// length. It returns (nil, false) on a length mismatch.
func Map(a, b *Array, op func(x, y Trit) Trit) (*Array, bool) {
	if a.Len() != b.Len() {
		return nil, false
	}
	out := make([]Trit, a.Len())
	for i := range out {
		out[i] = op(a.elems[i], b.elems[i])
	}
	return &Array{elems: out}, true
}

// String renders a debug form, e.g. "[+1 0 -1]".
func (a *Array) String() string {
	s := "["
	for i, t := range a.elems {
		if i > 0 {
			s += " "
		}
		s += t.String()
	}
	return s + "]"
}

var _ fmt.Stringer = (*Array)(nil)
