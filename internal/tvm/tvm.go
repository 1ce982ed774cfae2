package tvm

import "github.com/teros-kernel/teros/internal/trit"

// DefaultStackDepth bounds the TVM's call/push stack when none is given
// to New.
const DefaultStackDepth = 256

// TVM couples a RegisterFile, a TernaryMemory, and a bounded stack,
// matching the teacher's internal/mips/cpu.go CPU{Registers, PC, Memory}
// struct, generalized with an explicit stack the T3-ISA's PUSH/POP/CALL/
// RET opcodes need.
type TVM struct {
	Regs   *RegisterFile
	Memory Memory

	pc int
	sp int

	stack    []trit.Trit
	capacity int

	callStack []int
}

// Memory is the subset of tmem.Memory the TVM needs; kept as an
// interface so tests can substitute a fake without depending on tmem's
// allocator/find machinery.
type Memory interface {
	Read(addr int) trit.Trit
	Write(addr int, t trit.Trit) bool
}

// New constructs a TVM over mem with a stack of the given capacity.
func New(mem Memory, stackCapacity int) *TVM {
	if stackCapacity <= 0 {
		stackCapacity = DefaultStackDepth
	}
	return &TVM{
		Regs:     NewRegisterFile(),
		Memory:   mem,
		stack:    make([]trit.Trit, 0, stackCapacity),
		capacity: stackCapacity,
	}
}

// GetRegister reads general-purpose register id.
func (v *TVM) GetRegister(id int) trit.Trit {
	return v.Regs.Get(id)
}

// SetRegister writes t into general-purpose register id.
func (v *TVM) SetRegister(id int, t trit.Trit) bool {
	return v.Regs.Set(id, t)
}

// PC returns the program counter, a plain instruction index (see the
// doc comment on registers.go's RegCount block for why PC is not a
// trit-valued register).
func (v *TVM) PC() int {
	return v.pc
}

// SetPC sets the program counter.
func (v *TVM) SetPC(pc int) {
	v.pc = pc
}

// SP returns the stack pointer, tracked as the current stack depth.
func (v *TVM) SP() int {
	return v.sp
}

// StackDepth returns the current number of pushed trits.
func (v *TVM) StackDepth() int {
	return len(v.stack)
}

// StackCapacity returns the maximum stack depth.
func (v *TVM) StackCapacity() int {
	return v.capacity
}

// StackPush pushes t. It fails if the stack is at capacity.
func (v *TVM) StackPush(t trit.Trit) bool {
	if !t.IsValid() || len(v.stack) >= v.capacity {
		return false
	}
	v.stack = append(v.stack, t)
	v.sp = len(v.stack)
	return true
}

// StackPop pops and returns the top of stack, or Unknown if empty.
func (v *TVM) StackPop() trit.Trit {
	if len(v.stack) == 0 {
		return trit.UnknownTrit()
	}
	top := v.stack[len(v.stack)-1]
	v.stack = v.stack[:len(v.stack)-1]
	v.sp = len(v.stack)
	return top
}

// PushReturn saves a return address for CALL/RET. Kept as a separate
// bounded stack from the trit data stack (used by PUSH/POP) because a
// return address is a plain instruction index, not a trit; it shares
// the TVM's stack capacity.
func (v *TVM) PushReturn(addr int) bool {
	if len(v.callStack) >= v.capacity {
		return false
	}
	v.callStack = append(v.callStack, addr)
	return true
}

// PopReturn pops the most recently pushed return address, or (0, false)
// if the call-return stack is empty.
func (v *TVM) PopReturn() (int, bool) {
	if len(v.callStack) == 0 {
		return 0, false
	}
	addr := v.callStack[len(v.callStack)-1]
	v.callStack = v.callStack[:len(v.callStack)-1]
	return addr, true
}
