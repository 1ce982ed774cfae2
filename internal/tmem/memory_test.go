package tmem

import (
	"testing"

	"github.com/teros-kernel/teros/internal/trit"
)

func TestWriteReadRoundTrip(t *testing.T) {
	m := New(16)
	if !m.Write(3, trit.New(1)) {
		t.Fatal("Write should succeed")
	}
	if got := m.Read(3); !got.IsPositive() {
		t.Errorf("Read(3) = %v, want +1", got)
	}
}

func TestReadOnlyRejectsWrite(t *testing.T) {
	m := New(8)
	m.Write(0, trit.New(1))
	m.SetReadOnly(true)

	if m.Write(0, trit.New(-1)) {
		t.Error("Write should fail on read-only memory")
	}
	if got := m.Read(0); !got.IsPositive() {
		t.Error("Read-only write should not change underlying value")
	}
}

func TestOutOfRangeReadReturnsUnknown(t *testing.T) {
	m := New(4)
	if got := m.Read(10); got.IsValid() {
		t.Errorf("Read(10) = %v, want unknown", got)
	}
	if m.Write(10, trit.New(1)) {
		t.Error("Write(10, ...) should fail out of range")
	}
}

func TestCopyAndMove(t *testing.T) {
	src := New(8)
	src.WriteBlock(0, trit.FromValues([]int{1, -1, 1, -1}))
	dst := New(8)

	if !Copy(dst, src, 2, 0, 4) {
		t.Fatal("Copy should succeed")
	}
	got, _ := dst.ReadBlock(2, 4)
	want := trit.FromValues([]int{1, -1, 1, -1})
	if !got.Equal(want) {
		t.Errorf("Copy result = %v, want %v", got, want)
	}

	// Overlapping move within the same memory.
	m := New(8)
	m.WriteBlock(0, trit.FromValues([]int{1, 0, -1, 1}))
	if !m.Move(1, 0, 4) {
		t.Fatal("Move should succeed")
	}
	gotMove, _ := m.ReadBlock(1, 4)
	wantMove := trit.FromValues([]int{1, 0, -1, 1})
	if !gotMove.Equal(wantMove) {
		t.Errorf("Move result = %v, want %v", gotMove, wantMove)
	}
}

func TestFillAndFind(t *testing.T) {
	m := New(10)
	m.Fill(2, 3, trit.New(1))

	if idx := m.Find(trit.New(1), 0); idx != 2 {
		t.Errorf("Find(+1, 0) = %d, want 2", idx)
	}
	if idx := m.Find(trit.New(-1), 0); idx != NotFound {
		t.Errorf("Find(-1, 0) = %d, want NotFound", idx)
	}
}

func TestFindPattern(t *testing.T) {
	m := New(10)
	m.WriteBlock(4, trit.FromValues([]int{1, -1, 1}))

	pattern := trit.FromValues([]int{1, -1, 1})
	if idx := m.FindPattern(pattern); idx != 4 {
		t.Errorf("FindPattern = %d, want 4", idx)
	}
}

func TestAllocateDeallocate(t *testing.T) {
	m := New(16)

	addr := m.Allocate(4)
	if addr == NotFound {
		t.Fatal("Allocate(4) should succeed on fresh memory")
	}
	if m.Used() != 4 {
		t.Errorf("Used() = %d, want 4", m.Used())
	}
	for i := addr; i < addr+4; i++ {
		if !m.Read(i).IsPositive() {
			t.Errorf("allocated cell %d should be marked positive", i)
		}
	}

	if !m.Deallocate(addr, 4) {
		t.Fatal("Deallocate should succeed")
	}
	if m.Used() != 0 {
		t.Errorf("Used() after Deallocate = %d, want 0", m.Used())
	}
}

func TestAllocateExhaustion(t *testing.T) {
	m := New(4)
	if addr := m.Allocate(5); addr != NotFound {
		t.Errorf("Allocate(5) on a 4-trit memory = %d, want NotFound", addr)
	}
}
