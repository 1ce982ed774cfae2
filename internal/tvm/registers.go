// Package tvm implements the ternary virtual machine: a RegisterFile,
// a TernaryMemory, and a bounded stack, with the primitives the
// Interpreter composes into the fetch-decode-execute loop (spec §4.5).
package tvm

import "github.com/teros-kernel/teros/internal/trit"

// General-purpose register identifiers, mirroring the teacher's
// internal/mips/cpu.go fixed register-array shape (here sized for
// T3-ISA instead of MIPS' 32 GPRs).
//
// PC and SP are deliberately not members of this trit-valued set: a
// single trit can only distinguish three states, which cannot index a
// program or stack of more than three positions. Spec §3 says "PC/SP
// are interpreted by the interpreter/TVM" rather than holding them to
// the uniform "every register holds one valid trit" invariant that
// governs the general-purpose registers, so the TVM tracks them as
// plain machine-word program/stack indices instead (see TVM.PC/SetPC
// and TVM.SP in tvm.go, the latter tracked automatically as the stack
// is pushed/popped). This is recorded as a decided Open Question in
// DESIGN.md.
const (
	R0 = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	RegCount
)

// RegisterFile is a fixed set of addressable trit-valued general-purpose
// registers. Every register always holds one valid trit.
type RegisterFile struct {
	regs [RegCount]trit.Trit
}

// NewRegisterFile returns a RegisterFile with every register neutral.
func NewRegisterFile() *RegisterFile {
	rf := &RegisterFile{}
	for i := range rf.regs {
		rf.regs[i] = trit.New(0)
	}
	return rf
}

// Get returns the trit held by register id, or Unknown if id is out of
// range.
func (rf *RegisterFile) Get(id int) trit.Trit {
	if id < 0 || id >= RegCount {
		return trit.UnknownTrit()
	}
	return rf.regs[id]
}

// Set writes t into register id. It is rejected (no side effect) for an
// out-of-range id or an invalid trit.
func (rf *RegisterFile) Set(id int, t trit.Trit) bool {
	if id < 0 || id >= RegCount || !t.IsValid() {
		return false
	}
	rf.regs[id] = t
	return true
}
