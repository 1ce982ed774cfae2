// Package trit implements the balanced-ternary scalar value and bulk
// operations over ordered sequences of it.
package trit

import "fmt"

// Value is the underlying balanced-ternary digit. Only Neg, Neu, and Pos
// are ever stored in memory or a register; Unknown is returned from a
// failed operation and never persisted.
type Value int8

const (
	Neg     Value = -1
	Neu     Value = 0
	Pos     Value = 1
	Unknown Value = 2 // sentinel, never stored
)

// Trit is a three-valued scalar in balanced ternary, plus the Unknown
// sentinel used to signal a failed operation.
type Trit struct {
	v     Value
	valid bool
}

// New constructs a Trit from -1, 0, or +1. Any other input produces the
// Unknown sentinel.
func New(v int) Trit {
	switch v {
	case -1:
		return Trit{v: Neg, valid: true}
	case 0:
		return Trit{v: Neu, valid: true}
	case 1:
		return Trit{v: Pos, valid: true}
	default:
		return Trit{v: Unknown, valid: false}
	}
}

// UnknownTrit is the sentinel returned by failed operations.
func UnknownTrit() Trit {
	return Trit{v: Unknown, valid: false}
}

// IsValid reports whether t holds one of Neg, Neu, Pos.
func (t Trit) IsValid() bool {
	return t.valid
}

// Value returns the underlying digit. Callers should check IsValid first;
// an invalid Trit returns Unknown.
func (t Trit) Value() Value {
	if !t.valid {
		return Unknown
	}
	return t.v
}

// Int returns the digit as an int (-1, 0, or 1). Callers should check
// IsValid first; an invalid Trit returns 0.
func (t Trit) Int() int {
	if !t.valid {
		return 0
	}
	return int(t.v)
}

// IsNeutral reports whether t is the valid neutral (0) trit.
func (t Trit) IsNeutral() bool {
	return t.valid && t.v == Neu
}

// IsPositive reports whether t is the valid positive (+1) trit.
func (t Trit) IsPositive() bool {
	return t.valid && t.v == Pos
}

// IsNegative reports whether t is the valid negative (-1) trit.
func (t Trit) IsNegative() bool {
	return t.valid && t.v == Neg
}

// Equal returns a trit result: Pos if a and b are both valid and equal,
// Neu if both valid and not equal, Unknown if either operand is invalid.
func Equal(a, b Trit) Trit {
	if !a.valid || !b.valid {
		return UnknownTrit()
	}
	if a.v == b.v {
		return New(1)
	}
	return New(0)
}

// String renders a debug form of t: "-1", "0", "+1", or "unknown".
func (t Trit) String() string {
	if !t.valid {
		return "unknown"
	}
	switch t.v {
	case Neg:
		return "-1"
	case Pos:
		return "+1"
	default:
		return "0"
	}
}

// Ensure Trit satisfies fmt.Stringer for %v/%s formatting in diagnostics.
var _ fmt.Stringer = Trit{}
