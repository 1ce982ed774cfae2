// Package alu implements the stateless balanced-ternary arithmetic/logic
// unit: arithmetic, logic, comparison, and shift over single trits, with
// condition flags updated on each operation (spec §4.3).
package alu

import "github.com/teros-kernel/teros/internal/trit"

// ALU is stateless over trit values; it only carries the condition flags
// set by the most recently executed operation, matching the teacher's
// internal/mips/cpu.go pattern of flags living alongside the execution
// unit rather than in a separate global.
type ALU struct {
	Flags Flags
}

// New returns an ALU with all flags cleared.
func New() *ALU {
	return &ALU{}
}

// wrap reduces a balanced-ternary digit sum into {-1,0,1}, reporting
// whether the unreduced sum overflowed (>1) or underflowed (<-1). This is
// shared by Add/Sub/Xor since all three are "addition modulo 3 in
// balanced form" per spec §4.3.
func wrap(sum int) (result int, overflow, underflow bool) {
	if sum > 1 {
		return sum - 3, true, false
	}
	if sum < -1 {
		return sum + 3, false, true
	}
	return sum, false, false
}

func (a *ALU) resultTrit(v int, overflow, underflow bool) trit.Trit {
	a.Flags.Overflow = overflow
	a.Flags.Underflow = underflow
	a.Flags.setFromResult(v)
	return trit.New(v)
}

// Add returns x+y in balanced ternary, per-trit: a sum outside {-1,0,1}
// sets Overflow/Underflow and wraps (it does not carry into a second
// trit; that composition is the caller's job).
func (a *ALU) Add(x, y trit.Trit) trit.Trit {
	a.Flags.Clear()
	if !x.IsValid() || !y.IsValid() {
		return trit.UnknownTrit()
	}
	v, ov, un := wrap(x.Int() + y.Int())
	return a.resultTrit(v, ov, un)
}

// Sub returns x-y in balanced ternary, with the same per-trit wrap
// contract as Add.
func (a *ALU) Sub(x, y trit.Trit) trit.Trit {
	a.Flags.Clear()
	if !x.IsValid() || !y.IsValid() {
		return trit.UnknownTrit()
	}
	v, ov, un := wrap(x.Int() - y.Int())
	return a.resultTrit(v, ov, un)
}

// Mul returns x*y. The product of two trits never leaves {-1,0,1}, so
// overflow/underflow are never set by Mul.
func (a *ALU) Mul(x, y trit.Trit) trit.Trit {
	a.Flags.Clear()
	if !x.IsValid() || !y.IsValid() {
		return trit.UnknownTrit()
	}
	return a.resultTrit(x.Int()*y.Int(), false, false)
}

// Div returns x/y. Division by zero sets the Unknown sentinel on the
// result and does not update flags beyond Zero (set when x is neutral).
func (a *ALU) Div(x, y trit.Trit) trit.Trit {
	a.Flags.Clear()
	if !x.IsValid() || !y.IsValid() {
		return trit.UnknownTrit()
	}
	if y.Int() == 0 {
		a.Flags.Zero = x.IsNeutral()
		return trit.UnknownTrit()
	}
	return a.resultTrit(x.Int()/y.Int(), false, false)
}

// And returns min(x,y), the balanced-ternary logical AND.
func (a *ALU) And(x, y trit.Trit) trit.Trit {
	a.Flags.Clear()
	if !x.IsValid() || !y.IsValid() {
		return trit.UnknownTrit()
	}
	v := x.Int()
	if y.Int() < v {
		v = y.Int()
	}
	return a.resultTrit(v, false, false)
}

// Or returns max(x,y), the balanced-ternary logical OR.
func (a *ALU) Or(x, y trit.Trit) trit.Trit {
	a.Flags.Clear()
	if !x.IsValid() || !y.IsValid() {
		return trit.UnknownTrit()
	}
	v := x.Int()
	if y.Int() > v {
		v = y.Int()
	}
	return a.resultTrit(v, false, false)
}

// Not maps +1<->-1 and fixes 0.
func (a *ALU) Not(x trit.Trit) trit.Trit {
	a.Flags.Clear()
	if !x.IsValid() {
		return trit.UnknownTrit()
	}
	return a.resultTrit(-x.Int(), false, false)
}

// Xor returns (x+y) mod 3 mapped to {-1,0,1}.
func (a *ALU) Xor(x, y trit.Trit) trit.Trit {
	a.Flags.Clear()
	if !x.IsValid() || !y.IsValid() {
		return trit.UnknownTrit()
	}
	v, ov, un := wrap(x.Int() + y.Int())
	return a.resultTrit(v, ov, un)
}

// Compare returns +1 if x>y, 0 if equal, -1 if x<y.
func (a *ALU) Compare(x, y trit.Trit) trit.Trit {
	a.Flags.Clear()
	if !x.IsValid() || !y.IsValid() {
		return trit.UnknownTrit()
	}
	switch {
	case x.Int() > y.Int():
		return a.resultTrit(1, false, false)
	case x.Int() < y.Int():
		return a.resultTrit(-1, false, false)
	default:
		return a.resultTrit(0, false, false)
	}
}

// GreaterThan returns a trit boolean: +1 true, -1 false.
func (a *ALU) GreaterThan(x, y trit.Trit) trit.Trit {
	cmp := a.Compare(x, y)
	if !cmp.IsValid() {
		return trit.UnknownTrit()
	}
	if cmp.Int() > 0 {
		return trit.New(1)
	}
	return trit.New(-1)
}

// LessThan returns a trit boolean: +1 true, -1 false.
func (a *ALU) LessThan(x, y trit.Trit) trit.Trit {
	cmp := a.Compare(x, y)
	if !cmp.IsValid() {
		return trit.UnknownTrit()
	}
	if cmp.Int() < 0 {
		return trit.New(1)
	}
	return trit.New(-1)
}

// Shift models a per-trit shift, which degenerates to sign propagation: a
// single trit has no internal structure, so any shift of magnitude k>=1
// returns neutral. This is the documented contract of spec §4.3/§9.
func (a *ALU) Shift(x trit.Trit, k int) trit.Trit {
	a.Flags.Clear()
	if !x.IsValid() {
		return trit.UnknownTrit()
	}
	if k >= 1 || k <= -1 {
		return a.resultTrit(0, false, false)
	}
	return a.resultTrit(x.Int(), false, false)
}

// ClearFlags resets all condition flags.
func (a *ALU) ClearFlags() {
	a.Flags.Clear()
}
