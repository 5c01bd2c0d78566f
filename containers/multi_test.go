package containers

import "testing"

func TestMultiSetDuplicateCounts(t *testing.T) {
	s := NewMultiSet()

	for i := 0; i < 4; i++ {
		s.Add(7)
	}

	s.Add(3)

	if got := s.Count(7); got != 4 {
		t.Errorf("Count(7) = %d, want 4", got)
	}

	if got := s.Count(3); got != 1 {
		t.Errorf("Count(3) = %d, want 1", got)
	}

	if got := s.Count(99); got != 0 {
		t.Errorf("Count(99) = %d, want 0", got)
	}

	if s.Len() != 5 {
		t.Errorf("Len = %d, want 5", s.Len())
	}

	if s.DistinctLen() != 2 {
		t.Errorf("DistinctLen = %d, want 2", s.DistinctLen())
	}
}

func TestMultiSetRemoveOneDecrements(t *testing.T) {
	s := NewMultiSet()

	for i := 0; i < 3; i++ {
		s.Add(5)
	}

	if !s.RemoveOne(5) {
		t.Fatal("RemoveOne reported absent for present key")
	}

	if got := s.Count(5); got != 2 {
		t.Errorf("Count after RemoveOne = %d, want 2", got)
	}

	if s.Len() != 2 {
		t.Errorf("Len after RemoveOne = %d, want 2", s.Len())
	}

	if s.RemoveOne(99) {
		t.Error("RemoveOne reported present for absent key")
	}
}

func TestMultiSetOrderedWalk(t *testing.T) {
	s := NewMultiSet()
	for _, v := range []int{5, 1, 5, 3, 1} {
		s.Add(v)
	}

	var got []int

	s.Each(func(v int) bool {
		got = append(got, v)

		return true
	})

	want := []int{1, 1, 3, 5, 5}
	if len(got) != len(want) {
		t.Fatalf("Each yielded %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Each yielded %v, want %v", got, want)
		}
	}
}

func TestMultiSetNavigation(t *testing.T) {
	s := NewMultiSet()
	for _, v := range []int{10, 10, 20, 30} {
		s.Add(v)
	}

	if min, ok := s.Min(); !ok || min != 10 {
		t.Errorf("Min = %d, %v, want 10, true", min, ok)
	}

	if max, ok := s.Max(); !ok || max != 30 {
		t.Errorf("Max = %d, %v, want 30, true", max, ok)
	}

	if f, ok := s.Floor(25); !ok || f != 20 {
		t.Errorf("Floor(25) = %d, %v, want 20, true", f, ok)
	}

	if f, ok := s.Floor(10); !ok || f != 10 {
		t.Errorf("Floor(10) = %d, %v, want 10, true", f, ok)
	}

	if c, ok := s.Ceiling(25); !ok || c != 30 {
		t.Errorf("Ceiling(25) = %d, %v, want 30, true", c, ok)
	}

	if _, ok := s.Floor(5); ok {
		t.Error("Floor below minimum reported present")
	}

	if _, ok := s.Ceiling(35); ok {
		t.Error("Ceiling above maximum reported present")
	}
}

func TestMultiMapEqualRange(t *testing.T) {
	m := NewMultiMap()
	m.Add(1, 100)
	m.Add(2, 200)
	m.Add(1, 101)
	m.Add(1, 102)

	if got := m.Count(1); got != 3 {
		t.Errorf("Count(1) = %d, want 3", got)
	}

	var vals []int

	m.EqualRange(1, func(v int) bool {
		vals = append(vals, v)

		return true
	})

	want := []int{100, 101, 102} // insertion order within one key
	if len(vals) != len(want) {
		t.Fatalf("EqualRange yielded %v, want %v", vals, want)
	}

	for i := range want {
		if vals[i] != want[i] {
			t.Fatalf("EqualRange yielded %v, want %v", vals, want)
		}
	}

	if m.Has(3) {
		t.Error("Has(3) = true for absent key")
	}

	if m.DistinctLen() != 2 {
		t.Errorf("DistinctLen = %d, want 2", m.DistinctLen())
	}
}

func TestMultiMapRemoveOne(t *testing.T) {
	m := NewMultiMap()
	m.Add(1, 100)
	m.Add(1, 101)

	if !m.RemoveOne(1) {
		t.Fatal("RemoveOne reported absent for present key")
	}

	if got := m.Count(1); got != 1 {
		t.Errorf("Count after RemoveOne = %d, want 1", got)
	}

	// Oldest entry goes first.
	var vals []int

	m.EqualRange(1, func(v int) bool {
		vals = append(vals, v)

		return true
	})

	if len(vals) != 1 || vals[0] != 101 {
		t.Errorf("remaining values = %v, want [101]", vals)
	}
}

func TestMultiMapFirstLast(t *testing.T) {
	m := NewMultiMap()
	m.Add(20, 2)
	m.Add(10, 1)
	m.Add(30, 3)

	if k, v, ok := m.First(); !ok || k != 10 || v != 1 {
		t.Errorf("First = (%d, %d, %v), want (10, 1, true)", k, v, ok)
	}

	if k, v, ok := m.Last(); !ok || k != 30 || v != 3 {
		t.Errorf("Last = (%d, %d, %v), want (30, 3, true)", k, v, ok)
	}

	if k, _, ok := m.Floor(25); !ok || k != 20 {
		t.Errorf("Floor(25) key = %d, want 20", k)
	}

	if k, _, ok := m.Ceiling(15); !ok || k != 20 {
		t.Errorf("Ceiling(15) key = %d, want 20", k)
	}
}
