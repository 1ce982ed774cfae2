// Package pipe implements fixed-capacity circular byte-buffer pipes
// named by id (spec §4.7). Both ends of a pipe share one id; caller
// discipline distinguishes reader from writer (spec §9, an explicitly
// unresolved design question carried forward as observed behavior, not
// "fixed").
package pipe

import (
	"sync"

	"github.com/teros-kernel/teros/internal/alloc"
)

// MaxPipes bounds the fixed-capacity pipe table.
const MaxPipes = 64

// BufferSize is the fixed circular buffer capacity per pipe, matching
// the teacher's internal/mips32/memory.go fixed-size-backing-array
// pattern.
const BufferSize = 4096

type slot struct {
	buf      []byte
	head     int // next byte to read
	tail     int // next byte to write
	count    int // bytes currently buffered
	refCount int
	open     bool
	id       int
}

// Table is the fixed-capacity pipe table; external holders reference a
// pipe only by its integer id (spec §3's identity/ownership model).
type Table struct {
	mu     sync.Mutex
	slots  [MaxPipes]slot
	nextID int
}

// NewTable returns an empty pipe table.
func NewTable() *Table {
	return &Table{}
}

// Open reserves a free slot, allocates its buffer, and returns the same
// id for both ends with ref_count=2 (spec §4.7). It returns (-1, false)
// when the table is full.
func (t *Table) Open() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.slots {
		if !t.slots[i].open {
			t.nextID++
			t.slots[i] = slot{
				buf:      alloc.Alloc(BufferSize),
				refCount: 2,
				open:     true,
				id:       t.nextID,
			}
			return t.nextID, true
		}
	}
	return -1, false
}

// find returns the slot for id, or nil if id never named a pipe or has
// since been fully closed. Callers must distinguish this from the
// valid-but-empty/full case themselves (spec §7: not-open is -1, not 0).
func (t *Table) find(id int) *slot {
	for i := range t.slots {
		if t.slots[i].open && t.slots[i].id == id {
			return &t.slots[i]
		}
	}
	return nil
}

// Read copies up to len(buf) bytes starting at the read cursor,
// advancing it around the ring; when the pipe drains, both cursors
// reset to 0. It returns -1 if id is not an open
// pipe, or 0 (not an error) when the pipe is open but empty, per spec
// §4.7/§7/S1's non-blocking read contract.
func (t *Table) Read(id int, buf []byte) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.find(id)
	if s == nil {
		return -1
	}
	if s.count == 0 {
		return 0
	}
	n := len(buf)
	if n > s.count {
		n = s.count
	}

	first := BufferSize - s.head
	if first > n {
		first = n
	}
	copy(buf[:first], s.buf[s.head:s.head+first])
	if n > first {
		copy(buf[first:n], s.buf[:n-first])
	}

	s.head = (s.head + n) % BufferSize
	s.count -= n
	if s.count == 0 {
		// A fully drained pipe starts over at the front of its buffer.
		s.head, s.tail = 0, 0
	}
	return n
}

// Write copies up to len(data) bytes into the ring starting at the
// write cursor, advancing it around the ring. It returns -1 if id is
// not an open pipe, or 0 when the pipe is open but full (non-blocking,
// spec §4.7/§7).
func (t *Table) Write(id int, data []byte) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.find(id)
	if s == nil {
		return -1
	}
	free := BufferSize - s.count
	if free <= 0 {
		return 0
	}
	n := len(data)
	if n > free {
		n = free
	}

	first := BufferSize - s.tail
	if first > n {
		first = n
	}
	copy(s.buf[s.tail:s.tail+first], data[:first])
	if n > first {
		copy(s.buf[:n-first], data[first:n])
	}

	s.tail = (s.tail + n) % BufferSize
	s.count += n
	return n
}

// Close decrements the pipe's ref_count; on reaching zero it frees the
// buffer and marks the slot free. It returns false if id is not open.
func (t *Table) Close(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.find(id)
	if s == nil {
		return false
	}
	s.refCount--
	if s.refCount <= 0 {
		alloc.Free(s.buf)
		*s = slot{}
	}
	return true
}

// IsOpen reports whether id currently names a live pipe.
func (t *Table) IsOpen(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.find(id) != nil
}

// RefCount returns the current ref_count for id, or 0 if not open.
func (t *Table) RefCount(id int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.find(id)
	if s == nil {
		return 0
	}
	return s.refCount
}
