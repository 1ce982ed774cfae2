// Package shm implements anonymous shared-memory segments with
// refcounting and copy-on-write on the second mapper (spec §4.9). The
// slot-table shape is grounded on the teacher's internal/mips/cop0.go
// TLBEntry arena: a fixed slice of structs addressed by index, carrying
// a generation-style id rather than a raw pointer.
package shm

import (
	"sync"

	"github.com/teros-kernel/teros/internal/alloc"
)

// MaxSegments bounds the fixed-capacity shared-memory table.
const MaxSegments = 32

type segment struct {
	id         int
	name       string
	data       []byte
	refCount   int
	writeCount int
	valid      bool
	unlinked   bool
}

// Table is the fixed-capacity shared-memory segment table.
type Table struct {
	mu     sync.Mutex
	slots  [MaxSegments]segment
	nextID int
}

// NewTable returns an empty shared-memory table.
func NewTable() *Table {
	return &Table{}
}

// Open reserves a slot and returns a new id. name is accepted and
// stored for introspection but never consulted for lookup — identity
// is always the returned id (spec §9, an explicitly left-open named-IPC
// question resolved this way for TEROS).
func (t *Table) Open(name string) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.slots {
		if !t.slots[i].valid {
			t.nextID++
			t.slots[i] = segment{id: t.nextID, name: name, refCount: 1, valid: true}
			return t.nextID, true
		}
	}
	return -1, false
}

func (t *Table) find(id int) *segment {
	for i := range t.slots {
		if t.slots[i].valid && t.slots[i].id == id {
			return &t.slots[i]
		}
	}
	return nil
}

// Mapping is a live view onto a segment, returned by Map and consumed
// by Unmap.
type Mapping struct {
	slotID int
	Data   []byte
}

// Map attaches to segment id. On the first Map, it allocates size bytes
// and returns that buffer directly. On any subsequent Map (copy-on-
// write), it duplicates the existing contents into a private
// allocation, increments write_count, and returns the new buffer — per
// spec §4.9's literal map-time-duplication contract (not a
// write-triggered split; spec §9's "ownership splitting" describes the
// same effect one level more abstractly).
func (t *Table) Map(id int, size int) (*Mapping, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.find(id)
	if s == nil || size <= 0 {
		return nil, false
	}
	if s.data == nil {
		s.data = alloc.Alloc(size)
		return &Mapping{slotID: s.id, Data: s.data}, true
	}

	priv := alloc.Alloc(size)
	copy(priv, s.data)
	s.writeCount++
	s.refCount++
	return &Mapping{slotID: s.id, Data: priv}, true
}

// Unmap decrements the ref_count of the segment m was mapped from; on
// reaching zero it frees the segment and releases the slot.
func (t *Table) Unmap(m *Mapping) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.find(m.slotID)
	if s == nil {
		return false
	}
	s.refCount--
	if s.refCount <= 0 {
		alloc.Free(s.data)
		*s = segment{}
	}
	return true
}

// Unlink is accepted but has no effect on segment identity, per the
// teacher's source behavior documented (not changed) in spec §4.9/§9.
func (t *Table) Unlink(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.slots {
		if t.slots[i].valid && t.slots[i].name == name {
			t.slots[i].unlinked = true
		}
	}
	return true
}

// RefCount returns the current ref_count for id, or 0 if not valid.
func (t *Table) RefCount(id int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.find(id)
	if s == nil {
		return 0
	}
	return s.refCount
}

// WriteCount returns the number of copy-on-write splits id has
// undergone.
func (t *Table) WriteCount(id int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.find(id)
	if s == nil {
		return 0
	}
	return s.writeCount
}
