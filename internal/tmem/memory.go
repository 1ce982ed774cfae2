// Package tmem implements TernaryMemory: a fixed-size linear array of
// trits with bounds-checked read/write, block operations, find, and a
// trivial first-fit allocator (spec §4.4).
package tmem

import "github.com/teros-kernel/teros/internal/trit"

// NotFound is the sentinel index returned by Find/FindPattern and
// Allocate when no match or no room is available.
const NotFound = -1

// Memory is a linear array of trits, mirroring the teacher's
// internal/mips32/memory.go Memory{Data []byte} shape, generalized from
// byte-word granularity to trit-cell granularity.
type Memory struct {
	cells    []trit.Trit
	readOnly bool
	used     int
}

// New allocates a Memory of size trits, all initialized neutral.
func New(size int) *Memory {
	cells := make([]trit.Trit, size)
	for i := range cells {
		cells[i] = trit.New(0)
	}
	return &Memory{cells: cells}
}

// Size returns the total trit capacity.
func (m *Memory) Size() int {
	return len(m.cells)
}

// Used returns the number of cells currently allocated: Allocate adds
// to it and Deallocate subtracts from it (never below 0).
func (m *Memory) Used() int {
	return m.used
}

// SetReadOnly toggles the read-only flag. Writes to a read-only memory
// are rejected silently (spec §4.4, §7).
func (m *Memory) SetReadOnly(ro bool) {
	m.readOnly = ro
}

// IsReadOnly reports the current read-only flag.
func (m *Memory) IsReadOnly() bool {
	return m.readOnly
}

func (m *Memory) inRange(addr int) bool {
	return addr >= 0 && addr < len(m.cells)
}

// Read returns the trit at addr, or Unknown if addr is out of range.
func (m *Memory) Read(addr int) trit.Trit {
	if !m.inRange(addr) {
		return trit.UnknownTrit()
	}
	return m.cells[addr]
}

// Write stores t at addr. It is a silent no-op (no error, no state
// change) when the memory is read-only or addr is out of range, per
// spec §4.4/§7.
func (m *Memory) Write(addr int, t trit.Trit) bool {
	if m.readOnly || !m.inRange(addr) || !t.IsValid() {
		return false
	}
	m.cells[addr] = t
	return true
}

// ReadBlock copies n trits starting at addr into a new Array. It fails
// if the requested range is out of bounds.
func (m *Memory) ReadBlock(addr, n int) (*trit.Array, bool) {
	if n < 0 {
		return nil, false
	}
	if n > 0 && (!m.inRange(addr) || !m.inRange(addr+n-1)) {
		return nil, false
	}
	out := trit.NewArray(n)
	for i := 0; i < n; i++ {
		out.Set(i, m.cells[addr+i])
	}
	return out, true
}

// WriteBlock writes arr starting at addr. It fails without side effects
// if the memory is read-only or the range is out of bounds.
func (m *Memory) WriteBlock(addr int, arr *trit.Array) bool {
	n := arr.Len()
	if m.readOnly || n < 0 {
		return false
	}
	if n > 0 && (!m.inRange(addr) || !m.inRange(addr+n-1)) {
		return false
	}
	for i := 0; i < n; i++ {
		m.cells[addr+i] = arr.Get(i)
	}
	return true
}

// Copy copies n trits from src at srcAddr into dst at dstAddr. It fails
// without side effects if either range is out of bounds or dst is
// read-only.
func Copy(dst, src *Memory, dstAddr, srcAddr, n int) bool {
	if n < 0 {
		return false
	}
	if n == 0 {
		return true
	}
	if dst.readOnly || !src.inRange(srcAddr) || !src.inRange(srcAddr+n-1) ||
		!dst.inRange(dstAddr) || !dst.inRange(dstAddr+n-1) {
		return false
	}
	buf := make([]trit.Trit, n)
	copy(buf, src.cells[srcAddr:srcAddr+n])
	copy(dst.cells[dstAddr:dstAddr+n], buf)
	return true
}

// Move shifts n trits from src to dst within the same Memory, safe for
// overlapping ranges.
func (m *Memory) Move(dstAddr, srcAddr, n int) bool {
	if n < 0 {
		return false
	}
	if n == 0 {
		return true
	}
	if m.readOnly || !m.inRange(srcAddr) || !m.inRange(srcAddr+n-1) ||
		!m.inRange(dstAddr) || !m.inRange(dstAddr+n-1) {
		return false
	}
	buf := make([]trit.Trit, n)
	copy(buf, m.cells[srcAddr:srcAddr+n])
	copy(m.cells[dstAddr:dstAddr+n], buf)
	return true
}

// Fill sets n trits starting at addr to t.
func (m *Memory) Fill(addr, n int, t trit.Trit) bool {
	if m.readOnly || !t.IsValid() || n < 0 {
		return false
	}
	if n == 0 {
		return true
	}
	if !m.inRange(addr) || !m.inRange(addr+n-1) {
		return false
	}
	for i := 0; i < n; i++ {
		m.cells[addr+i] = t
	}
	return true
}

// Find returns the first index >= start holding t, or NotFound.
func (m *Memory) Find(t trit.Trit, start int) int {
	if !t.IsValid() || start < 0 {
		return NotFound
	}
	for i := start; i < len(m.cells); i++ {
		if m.cells[i].Value() == t.Value() {
			return i
		}
	}
	return NotFound
}

// FindPattern returns the first index of an occurrence of pattern, or
// NotFound.
func (m *Memory) FindPattern(pattern *trit.Array) int {
	n := pattern.Len()
	if n == 0 || n > len(m.cells) {
		return NotFound
	}
outer:
	for i := 0; i+n <= len(m.cells); i++ {
		for j := 0; j < n; j++ {
			if m.cells[i+j].Value() != pattern.Get(j).Value() {
				continue outer
			}
		}
		return i
	}
	return NotFound
}

// Allocate performs a first-fit scan over neutral-marked cells for a run
// of size free trits, marking them positive (allocated) and returning
// the base address, or NotFound if no run of that size is free.
func (m *Memory) Allocate(size int) int {
	if size <= 0 || m.readOnly {
		return NotFound
	}
	run := 0
	for i := 0; i < len(m.cells); i++ {
		if m.cells[i].IsNeutral() {
			run++
			if run == size {
				base := i - size + 1
				for j := base; j <= i; j++ {
					m.cells[j] = trit.New(1)
				}
				m.used += size
				return base
			}
		} else {
			run = 0
		}
	}
	return NotFound
}

// Deallocate marks size cells starting at addr back to neutral (free).
func (m *Memory) Deallocate(addr, size int) bool {
	if m.readOnly || size <= 0 || !m.inRange(addr) || !m.inRange(addr+size-1) {
		return false
	}
	for i := addr; i < addr+size; i++ {
		m.cells[i] = trit.New(0)
	}
	m.used -= size
	if m.used < 0 {
		m.used = 0
	}
	return true
}
