package mq

import (
	"bytes"
	"testing"
)

func TestPriorityOrderWithFIFOTiebreak(t *testing.T) {
	// S4 in spec.md.
	tbl := NewTable()
	id, ok := tbl.Open("mq", 10, 64)
	if !ok {
		t.Fatal("Open should succeed")
	}

	if !tbl.Send(id, []byte("A"), PriorityNormal) {
		t.Fatal("send A failed")
	}
	if !tbl.Send(id, []byte("B"), PriorityLow) {
		t.Fatal("send B failed")
	}
	if !tbl.Send(id, []byte("C"), PriorityHigh) {
		t.Fatal("send C failed")
	}
	if !tbl.Send(id, []byte("D"), PriorityNormal) {
		t.Fatal("send D failed")
	}

	want := []string{"C", "A", "D", "B"}
	for i, w := range want {
		data, _, ok := tbl.Receive(id, 64)
		if !ok {
			t.Fatalf("receive %d: expected success", i)
		}
		if !bytes.Equal(data, []byte(w)) {
			t.Errorf("receive %d = %q, want %q", i, data, w)
		}
	}

	if _, _, ok := tbl.Receive(id, 64); ok {
		t.Error("receive on drained queue should fail")
	}
}

func TestSendRejectsOversizedMessage(t *testing.T) {
	tbl := NewTable()
	id, _ := tbl.Open("mq", 10, 4)

	if tbl.Send(id, []byte("toolong"), PriorityNormal) {
		t.Error("send should reject a message larger than max_message_size")
	}
}

func TestSendRejectsWhenFull(t *testing.T) {
	tbl := NewTable()
	id, _ := tbl.Open("mq", 2, 64)

	if !tbl.Send(id, []byte("a"), PriorityNormal) {
		t.Fatal("send 1 failed")
	}
	if !tbl.Send(id, []byte("b"), PriorityNormal) {
		t.Fatal("send 2 failed")
	}
	if tbl.Send(id, []byte("c"), PriorityNormal) {
		t.Error("send should fail once max_messages is reached")
	}
}

func TestReceiveTruncatesToMaxSize(t *testing.T) {
	tbl := NewTable()
	id, _ := tbl.Open("mq", 10, 64)
	tbl.Send(id, []byte("hello"), PriorityNormal)

	data, _, ok := tbl.Receive(id, 2)
	if !ok {
		t.Fatal("receive should succeed")
	}
	if !bytes.Equal(data, []byte("he")) {
		t.Errorf("data = %q, want truncated to %q", data, "he")
	}
}

func TestCloseFreesSlot(t *testing.T) {
	tbl := NewTable()
	id, _ := tbl.Open("mq", 10, 64)

	if !tbl.Close(id) {
		t.Fatal("Close should succeed")
	}
	if tbl.Count(id) != -1 {
		t.Error("Count on a closed queue should report -1 (invalid id)")
	}
}
