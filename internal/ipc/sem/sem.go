// Package sem implements counting semaphores with wait/post/trywait and
// a periodic deadlock-detection probe (spec §4.10). sem_wait is the
// only IPC operation in spec §5 permitted to spin; the cooperative
// yield it calls into is runtime.Gosched, the idiomatic Go stand-in for
// the "hardware pause equivalent" spec §5 asks for, pending a real
// scheduler's park/unpark primitive (spec §9).
package sem

import (
	"runtime"
	"sync"

	"github.com/teros-kernel/teros/internal/kernlog"
)

// MaxSemaphores bounds the fixed-capacity semaphore table.
const MaxSemaphores = 64

// deadlockProbeInterval is how often, in spin iterations, Wait reruns
// the deadlock heuristic (spec §4.10: "every 1000 iterations").
const deadlockProbeInterval = 1000

type semaphore struct {
	id               int
	value            int
	maxValue         int
	refCount         int
	waitCount        int
	valid            bool
	deadlockDetected bool
}

// Table is the fixed-capacity semaphore table.
type Table struct {
	mu     sync.Mutex
	slots  [MaxSemaphores]semaphore
	nextID int
	log    *kernlog.Logger
}

// NewTable returns an empty semaphore table. log may be nil to disable
// deadlock diagnostics.
func NewTable(log *kernlog.Logger) *Table {
	return &Table{log: log}
}

// Open reserves a slot with value = max_value = initial and ref_count
// = 1. name is accepted but not stored or used (spec §9).
func (t *Table) Open(name string, initial int) (int, bool) {
	_ = name
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.slots {
		if !t.slots[i].valid {
			t.nextID++
			t.slots[i] = semaphore{
				id:       t.nextID,
				value:    initial,
				maxValue: initial,
				refCount: 1,
				valid:    true,
			}
			return t.nextID, true
		}
	}
	return -1, false
}

func (t *Table) find(id int) *semaphore {
	for i := range t.slots {
		if t.slots[i].valid && t.slots[i].id == id {
			return &t.slots[i]
		}
	}
	return nil
}

// checkDeadlock implements the conservative global probe of spec
// §4.10: the probed semaphore is flagged when it has value <= 0 and
// waiters of its own, and the total wait_count W across all live
// semaphores is non-zero and equals the number of live semaphores. The
// other semaphores' values are not examined. Must be called with t.mu
// held.
func (t *Table) checkDeadlock(s *semaphore) bool {
	if s.value > 0 || s.waitCount == 0 {
		return false
	}
	var w, live int
	for i := range t.slots {
		if t.slots[i].valid {
			live++
			w += t.slots[i].waitCount
		}
	}
	return w > 0 && w == live
}

// Wait blocks (spinning cooperatively) while value <= 0, then
// decrements value and returns 0. It returns -1 if id is invalid or if
// the deadlock probe fires during the spin.
func (t *Table) Wait(id int) int {
	t.mu.Lock()
	s := t.find(id)
	if s == nil {
		t.mu.Unlock()
		return -1
	}
	s.waitCount++
	t.mu.Unlock()

	iterations := 0
	for {
		t.mu.Lock()
		s = t.find(id)
		if s == nil {
			t.mu.Unlock()
			return -1
		}
		if s.value > 0 {
			s.value--
			s.waitCount--
			t.mu.Unlock()
			return 0
		}

		iterations++
		deadlocked := false
		if iterations%deadlockProbeInterval == 0 {
			deadlocked = t.checkDeadlock(s)
			if deadlocked {
				s.deadlockDetected = true
				s.waitCount--
			}
		}
		t.mu.Unlock()

		if deadlocked {
			if t.log != nil {
				t.log.Always("sem: deadlock detected on semaphore %d", id)
			}
			return -1
		}
		runtime.Gosched()
	}
}

// Post increments value unless it is already at max_value, in which
// case it is a deliberate saturating no-op (spec §4.10).
func (t *Table) Post(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.find(id)
	if s == nil {
		return false
	}
	if s.value < s.maxValue {
		s.value++
	}
	return true
}

// TryWait decrements value and returns 0 if value > 0, else -1 without
// blocking.
func (t *Table) TryWait(id int) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.find(id)
	if s == nil || s.value <= 0 {
		return -1
	}
	s.value--
	return 0
}

// Close decrements ref_count; on reaching zero it frees the slot.
func (t *Table) Close(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.find(id)
	if s == nil {
		return false
	}
	s.refCount--
	if s.refCount <= 0 {
		*s = semaphore{}
	}
	return true
}

// Value returns the current value of id, or -1 if not valid.
func (t *Table) Value(id int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.find(id)
	if s == nil {
		return -1
	}
	return s.value
}

// DeadlockDetected reports whether id's deadlock probe has ever fired.
func (t *Table) DeadlockDetected(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.find(id)
	return s != nil && s.deadlockDetected
}
