package trit

import "testing"

func TestNewValidValues(t *testing.T) {
	for _, v := range []int{-1, 0, 1} {
		tr := New(v)
		if !tr.IsValid() {
			t.Fatalf("New(%d).IsValid() = false, want true", v)
		}
		if tr.Int() != v {
			t.Errorf("New(%d).Int() = %d, want %d", v, tr.Int(), v)
		}
	}
}

func TestNewInvalidValue(t *testing.T) {
	tr := New(5)
	if tr.IsValid() {
		t.Fatal("New(5).IsValid() = true, want false")
	}
	if tr.Value() != Unknown {
		t.Errorf("New(5).Value() = %v, want Unknown", tr.Value())
	}
}

func TestEqual(t *testing.T) {
	a := New(1)
	b := New(1)
	c := New(-1)

	if got := Equal(a, b); !got.IsPositive() {
		t.Errorf("Equal(1,1) = %v, want +1", got)
	}
	if got := Equal(a, c); !got.IsNeutral() {
		t.Errorf("Equal(1,-1) = %v, want 0", got)
	}
	if got := Equal(a, UnknownTrit()); got.IsValid() {
		t.Errorf("Equal(1,unknown) = %v, want unknown", got)
	}
}

func TestPredicates(t *testing.T) {
	if !New(0).IsNeutral() {
		t.Error("New(0).IsNeutral() = false")
	}
	if !New(1).IsPositive() {
		t.Error("New(1).IsPositive() = false")
	}
	if !New(-1).IsNegative() {
		t.Error("New(-1).IsNegative() = false")
	}
}

func TestArrayLengthImmutableAllNeutral(t *testing.T) {
	arr := NewArray(5)
	if arr.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", arr.Len())
	}
	for i := 0; i < arr.Len(); i++ {
		if !arr.Get(i).IsNeutral() {
			t.Errorf("element %d = %v, want neutral", i, arr.Get(i))
		}
	}
}

func TestArraySetGetBounds(t *testing.T) {
	arr := NewArray(3)
	if !arr.Set(1, New(1)) {
		t.Fatal("Set(1, +1) failed")
	}
	if got := arr.Get(1); !got.IsPositive() {
		t.Errorf("Get(1) = %v, want +1", got)
	}
	if arr.Set(10, New(1)) {
		t.Error("Set(10, ...) should fail out of range")
	}
	if got := arr.Get(-1); got.IsValid() {
		t.Error("Get(-1) should be unknown")
	}
}

func TestArrayEqual(t *testing.T) {
	a := FromValues([]int{-1, 0, 1})
	b := FromValues([]int{-1, 0, 1})
	c := FromValues([]int{-1, 0, 0})
	d := FromValues([]int{-1, 0})

	if !a.Equal(b) {
		t.Error("a should equal b")
	}
	if a.Equal(c) {
		t.Error("a should not equal c")
	}
	if a.Equal(d) {
		t.Error("a should not equal d (different length)")
	}
}

func TestArrayDupIndependence(t *testing.T) {
	a := FromValues([]int{1, 1, 1})
	b := a.Dup()
	b.Set(0, New(-1))

	if a.Get(0).Int() != 1 {
		t.Error("Dup should not alias the original array")
	}
}

func TestMapLengthMismatch(t *testing.T) {
	a := FromValues([]int{1, 0})
	b := FromValues([]int{1, 0, -1})

	_, ok := Map(a, b, func(x, y Trit) Trit { return x })
	if ok {
		t.Error("Map should fail on length mismatch")
	}
}
