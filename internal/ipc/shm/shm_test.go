package shm

import "testing"

func TestFirstMapAllocates(t *testing.T) {
	tbl := NewTable()
	id, ok := tbl.Open("seg")
	if !ok {
		t.Fatal("Open should succeed")
	}

	m, ok := tbl.Map(id, 64)
	if !ok {
		t.Fatal("Map should succeed")
	}
	if len(m.Data) != 64 {
		t.Errorf("Data len = %d, want 64", len(m.Data))
	}
	if tbl.WriteCount(id) != 0 {
		t.Errorf("first map should not count as a COW split")
	}
}

func TestSecondMapCopyOnWriteSplits(t *testing.T) {
	tbl := NewTable()
	id, _ := tbl.Open("seg")

	first, _ := tbl.Map(id, 8)
	first.Data[0] = 0x42

	second, _ := tbl.Map(id, 8)

	if second.Data[0] != 0x42 {
		t.Errorf("second map should see the first writer's contents, got %x", second.Data[0])
	}

	second.Data[0] = 0x99
	if first.Data[0] != 0x42 {
		t.Error("writing through the second mapping should not affect the first (private copy)")
	}
	if tbl.WriteCount(id) != 1 {
		t.Errorf("WriteCount = %d, want 1 after one COW split", tbl.WriteCount(id))
	}
	if tbl.RefCount(id) != 2 {
		t.Errorf("RefCount = %d, want 2 after the second mapper", tbl.RefCount(id))
	}
}

func TestUnmapRefCountToZeroFreesSlot(t *testing.T) {
	tbl := NewTable()
	id, _ := tbl.Open("seg")
	m, _ := tbl.Map(id, 8)

	if !tbl.Unmap(m) {
		t.Fatal("Unmap should succeed")
	}
	if tbl.RefCount(id) != 0 {
		t.Errorf("RefCount after final unmap = %d, want 0", tbl.RefCount(id))
	}
	if _, ok := tbl.Map(id, 8); ok {
		t.Error("Map on a freed id should fail")
	}
}

func TestUnlinkIsNoOpOnIdentity(t *testing.T) {
	tbl := NewTable()
	id, _ := tbl.Open("seg")

	if !tbl.Unlink("seg") {
		t.Fatal("Unlink should be accepted")
	}
	if _, ok := tbl.Map(id, 8); !ok {
		t.Error("Unlink should not prevent further mapping by id")
	}
}
