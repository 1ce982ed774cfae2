// Package mq implements priority message queues bounded by message
// count and per-message size (spec §4.11/§4.12). The ordered-insert
// doubly-linked list is grounded on the teacher's pack-mate
// rcornwell-S370's emu/event/event.go AddEvent: walk from the head
// while it sorts before the incoming entry, then splice in after.
package mq

import (
	"sync"

	"github.com/teros-kernel/teros/internal/alloc"
)

// MaxQueues bounds the fixed-capacity message-queue table.
const MaxQueues = 32

// Priority encodes the trit-valued priority scale of spec §4.12:
// numerically ascending order is logically high-to-low.
const (
	PriorityHigh   = -1
	PriorityNormal = 0
	PriorityLow    = 1
)

type message struct {
	data     []byte
	priority int
	next     *message
	prev     *message
}

type queue struct {
	id          int
	maxMessages int
	maxMsgSize  int
	count       int
	head        *message
	tail        *message
	refCount    int
	valid       bool
}

// Table is the fixed-capacity message-queue table.
type Table struct {
	mu     sync.Mutex
	slots  [MaxQueues]queue
	nextID int
}

// NewTable returns an empty message-queue table.
func NewTable() *Table {
	return &Table{}
}

// Open reserves a slot bounded by maxMessages and maxMsgSize. name is
// accepted but not stored or used (spec §9).
func (t *Table) Open(name string, maxMessages, maxMsgSize int) (int, bool) {
	_ = name
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.slots {
		if !t.slots[i].valid {
			t.nextID++
			t.slots[i] = queue{
				id:          t.nextID,
				maxMessages: maxMessages,
				maxMsgSize:  maxMsgSize,
				refCount:    1,
				valid:       true,
			}
			return t.nextID, true
		}
	}
	return -1, false
}

func (t *Table) find(id int) *queue {
	for i := range t.slots {
		if t.slots[i].valid && t.slots[i].id == id {
			return &t.slots[i]
		}
	}
	return nil
}

// Send copies data into a new message at priority and inserts it in
// priority order, FIFO among equal priorities (spec §4.12: walk from
// the head while its priority is <= the incoming one, insert after the
// last such node). It fails if the queue is full or data exceeds
// max_message_size.
func (t *Table) Send(id int, data []byte, priority int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	q := t.find(id)
	if q == nil {
		return false
	}
	if q.count >= q.maxMessages || len(data) > q.maxMsgSize {
		return false
	}

	buf := alloc.Alloc(len(data))
	copy(buf, data)
	m := &message{data: buf, priority: priority}

	if q.head == nil {
		q.head = m
		q.tail = m
		q.count++
		return true
	}

	cur := q.head
	for cur != nil && cur.priority <= priority {
		cur = cur.next
	}

	if cur == nil {
		// Goes at the tail.
		m.prev = q.tail
		q.tail.next = m
		q.tail = m
	} else if cur.prev == nil {
		// Goes before the current head.
		m.next = cur
		cur.prev = m
		q.head = m
	} else {
		m.prev = cur.prev
		m.next = cur
		cur.prev.next = m
		cur.prev = m
	}
	q.count++
	return true
}

// Receive removes the head message, copies up to maxSize bytes of it,
// and returns the copied bytes, the message's priority, and true. It
// fails if the queue is empty or id is invalid.
func (t *Table) Receive(id int, maxSize int) ([]byte, int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	q := t.find(id)
	if q == nil || q.head == nil {
		return nil, 0, false
	}

	m := q.head
	q.head = m.next
	if q.head != nil {
		q.head.prev = nil
	} else {
		q.tail = nil
	}
	q.count--

	n := len(m.data)
	if maxSize < n {
		n = maxSize
	}
	out := alloc.Alloc(n)
	copy(out, m.data[:n])
	alloc.Free(m.data)
	return out, m.priority, true
}

// Close decrements ref_count; on reaching zero it frees the slot and
// any queued messages.
func (t *Table) Close(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	q := t.find(id)
	if q == nil {
		return false
	}
	if q.refCount == 1 {
		for cur := q.head; cur != nil; cur = cur.next {
			alloc.Free(cur.data)
		}
	}
	q.refCount--
	if q.refCount <= 0 {
		*q = queue{}
	}
	return true
}

// Count returns the number of messages currently queued for id, or -1
// if id is invalid.
func (t *Table) Count(id int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	q := t.find(id)
	if q == nil {
		return -1
	}
	return q.count
}
