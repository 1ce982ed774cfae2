package tvm

import (
	"testing"

	"github.com/teros-kernel/teros/internal/tmem"
	"github.com/teros-kernel/teros/internal/trit"
)

func TestRegisterGetSetBounds(t *testing.T) {
	rf := NewRegisterFile()
	if !rf.Set(R0, trit.New(1)) {
		t.Fatal("Set(R0, +1) should succeed")
	}
	if got := rf.Get(R0); !got.IsPositive() {
		t.Errorf("Get(R0) = %v, want +1", got)
	}
	if rf.Set(999, trit.New(1)) {
		t.Error("Set on out-of-range id should fail")
	}
	if got := rf.Get(999); got.IsValid() {
		t.Error("Get on out-of-range id should return unknown")
	}
}

func TestStackPushPopBounded(t *testing.T) {
	mem := tmem.New(16)
	v := New(mem, 2)

	if !v.StackPush(trit.New(1)) {
		t.Fatal("first push should succeed")
	}
	if !v.StackPush(trit.New(-1)) {
		t.Fatal("second push should succeed")
	}
	if v.StackPush(trit.New(0)) {
		t.Error("push on full stack should fail")
	}

	if got := v.StackPop(); got.Int() != -1 {
		t.Errorf("pop = %d, want -1 (LIFO)", got.Int())
	}
	if got := v.StackPop(); got.Int() != 1 {
		t.Errorf("pop = %d, want 1", got.Int())
	}
	if got := v.StackPop(); got.IsValid() {
		t.Error("pop on empty stack should return unknown")
	}
}

func TestTVMRegisterMemoryWiring(t *testing.T) {
	mem := tmem.New(8)
	v := New(mem, 4)

	v.SetRegister(R0, trit.New(1))
	if got := v.GetRegister(R0); !got.IsPositive() {
		t.Errorf("GetRegister(R0) = %v, want +1", got)
	}

	v.Memory.Write(3, trit.New(-1))
	if got := v.Memory.Read(3); !got.IsNegative() {
		t.Errorf("Memory.Read(3) = %v, want -1", got)
	}
}
