package interp

import (
	"github.com/teros-kernel/teros/internal/alu"
	"github.com/teros-kernel/teros/internal/trit"
	"github.com/teros-kernel/teros/internal/tvm"
)

// Interpreter wraps a TVM and an ALU in a fetch-decode-execute loop over
// T3-ISA instructions, matching the teacher's internal/mips/cpu.go
// CPU.Run shape (a running-flag-gated loop calling Decode then Execute).
type Interpreter struct {
	alu *alu.ALU
	vm  *tvm.TVM

	running bool
	halted  bool
	errored bool
}

// New returns an Interpreter over vm and alu, not yet running.
func New(vm *tvm.TVM, a *alu.ALU) *Interpreter {
	return &Interpreter{alu: a, vm: vm}
}

// IsRunning reports whether Run is currently executing instructions.
func (in *Interpreter) IsRunning() bool {
	return in.running
}

// IsHalted reports whether HALT has executed. Sticky until the
// Interpreter is reconstructed.
func (in *Interpreter) IsHalted() bool {
	return in.halted
}

// HasError reports whether any Step has hit a bad opcode or
// out-of-range operand. Sticky until the Interpreter is reconstructed.
func (in *Interpreter) HasError() bool {
	return in.errored
}

// Run executes program starting at the TVM's current PC until HALT, an
// error, or the PC runs off the end of program.
func (in *Interpreter) Run(program []Instruction) {
	in.running = true
	for in.running {
		pc := in.vm.PC()
		if pc < 0 || pc >= len(program) {
			in.running = false
			return
		}
		in.Step(program[pc])
		if in.errored {
			in.running = false
			return
		}
	}
}

// Step executes a single instruction and advances the PC, unless the
// instruction itself set the PC (branch/jump/call/ret).
func (in *Interpreter) Step(i Instruction) trit.Trit {
	in.alu.ClearFlags()

	nextPC := in.vm.PC() + 1
	result := trit.UnknownTrit()

	switch i.Op {
	case OpLoad:
		result = in.execLoad(i)
	case OpStore:
		result = in.execStore(i)
	case OpAdd:
		result = in.execBinALU(i, in.alu.Add)
	case OpSub:
		result = in.execBinALU(i, in.alu.Sub)
	case OpMul:
		result = in.execBinALU(i, in.alu.Mul)
	case OpDiv:
		result = in.execBinALU(i, in.alu.Div)
	case OpAnd:
		result = in.execBinALU(i, in.alu.And)
	case OpOr:
		result = in.execBinALU(i, in.alu.Or)
	case OpXor:
		result = in.execBinALU(i, in.alu.Xor)
	case OpNot:
		result = in.execNot(i)
	case OpCmp:
		result = in.execCmp(i)
	case OpJmp:
		in.vm.SetPC(i.Imm)
		return trit.UnknownTrit()
	case OpJz:
		in.execBranch(i, true)
		return trit.UnknownTrit()
	case OpJnz:
		in.execBranch(i, false)
		return trit.UnknownTrit()
	case OpCall:
		in.vm.PushReturn(nextPC)
		in.vm.SetPC(i.Imm)
		return trit.UnknownTrit()
	case OpRet:
		addr, ok := in.vm.PopReturn()
		if !ok {
			in.errored = true
			return trit.UnknownTrit()
		}
		in.vm.SetPC(addr)
		return trit.UnknownTrit()
	case OpPush:
		val := in.vm.GetRegister(i.Ra)
		if !val.IsValid() || !in.vm.StackPush(val) {
			in.errored = true
			return trit.UnknownTrit()
		}
	case OpPop:
		val := in.vm.StackPop()
		if !val.IsValid() || !in.vm.SetRegister(i.Rd, val) {
			in.errored = true
			return trit.UnknownTrit()
		}
	case OpHalt:
		in.halted = true
		in.running = false
		return trit.UnknownTrit()
	default:
		in.errored = true
		return trit.UnknownTrit()
	}

	if in.errored {
		return trit.UnknownTrit()
	}
	in.vm.SetPC(nextPC)
	return result
}

func (in *Interpreter) execLoad(i Instruction) trit.Trit {
	var val trit.Trit
	if i.Ra == 0 {
		val = trit.New(i.Imm)
	} else {
		val = in.vm.GetRegister(i.Ra)
	}
	if !val.IsValid() || !in.vm.SetRegister(i.Rd, val) {
		in.errored = true
		return trit.UnknownTrit()
	}
	return val
}

// execStore implements the documented (not "corrected") STORE
// semantics of spec §4.6/§9: it copies register Ra into register Rb,
// not a memory store despite the mnemonic.
func (in *Interpreter) execStore(i Instruction) trit.Trit {
	val := in.vm.GetRegister(i.Ra)
	if !val.IsValid() || !in.vm.SetRegister(i.Rb, val) {
		in.errored = true
		return trit.UnknownTrit()
	}
	return val
}

func (in *Interpreter) execBinALU(i Instruction, op func(x, y trit.Trit) trit.Trit) trit.Trit {
	a := in.vm.GetRegister(i.Ra)
	b := in.vm.GetRegister(i.Rb)
	if !a.IsValid() || !b.IsValid() {
		in.errored = true
		return trit.UnknownTrit()
	}
	result := op(a, b)
	if !result.IsValid() {
		// A failed ALU op (e.g. division by zero) is not itself a bad
		// opcode/operand; it surfaces via the returned Unknown trit and
		// flags, not via Interpreter.errored.
		return result
	}
	if !in.vm.SetRegister(i.Rd, result) {
		in.errored = true
		return trit.UnknownTrit()
	}
	return result
}

func (in *Interpreter) execNot(i Instruction) trit.Trit {
	a := in.vm.GetRegister(i.Ra)
	if !a.IsValid() {
		in.errored = true
		return trit.UnknownTrit()
	}
	result := in.alu.Not(a)
	if !in.vm.SetRegister(i.Rd, result) {
		in.errored = true
		return trit.UnknownTrit()
	}
	return result
}

func (in *Interpreter) execCmp(i Instruction) trit.Trit {
	a := in.vm.GetRegister(i.Ra)
	b := in.vm.GetRegister(i.Rb)
	if !a.IsValid() || !b.IsValid() {
		in.errored = true
		return trit.UnknownTrit()
	}
	return in.alu.Compare(a, b)
}

// execBranch handles JZ/JNZ. wantNeutral selects JZ (true) vs JNZ
// (false). It always sets the PC itself: either to Imm (branch taken)
// or to the next sequential instruction (not taken).
func (in *Interpreter) execBranch(i Instruction, wantNeutral bool) {
	a := in.vm.GetRegister(i.Ra)
	if !a.IsValid() {
		in.errored = true
		return
	}
	if a.IsNeutral() == wantNeutral {
		in.vm.SetPC(i.Imm)
	} else {
		in.vm.SetPC(in.vm.PC() + 1)
	}
}
