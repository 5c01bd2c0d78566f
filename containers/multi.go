package containers

import "github.com/google/btree"

// Multi-valued ordered containers. Duplicate keys are kept as
// distinct (key, seq) items in a B-tree, with seq a per-container
// insertion counter, so equal keys stay adjacent in key order and
// count/equal-range walk a contiguous run.

// Multi-valued container kinds.
const (
	KindMultiSet = "btree-multiset"
	KindMultiMap = "btree-multimap"
)

type multiItem struct {
	key, seq, val int
}

func multiLess(a, b multiItem) bool {
	if a.key != b.key {
		return a.key < b.key
	}

	return a.seq < b.seq
}

// MultiSet is an ordered multiset of ints.
type MultiSet struct {
	tr      *btree.BTreeG[multiItem]
	nextSeq int
}

// NewMultiSet returns an empty MultiSet.
func NewMultiSet() *MultiSet {
	return &MultiSet{tr: btree.NewG(btreeDegree, multiLess)}
}

// Add inserts one occurrence of v.
func (s *MultiSet) Add(v int) {
	s.tr.ReplaceOrInsert(multiItem{key: v, seq: s.nextSeq})
	s.nextSeq++
}

// Has reports whether at least one occurrence of v is present.
func (s *MultiSet) Has(v int) bool {
	found := false

	s.tr.AscendGreaterOrEqual(multiItem{key: v}, func(item multiItem) bool {
		found = item.key == v

		return false
	})

	return found
}

// Count returns the number of occurrences of v.
func (s *MultiSet) Count(v int) int {
	n := 0

	s.tr.AscendGreaterOrEqual(multiItem{key: v}, func(item multiItem) bool {
		if item.key != v {
			return false
		}

		n++

		return true
	})

	return n
}

// RemoveOne deletes a single occurrence of v, reporting whether one
// was present. Remaining occurrences are untouched.
func (s *MultiSet) RemoveOne(v int) bool {
	var (
		victim multiItem
		found  bool
	)

	s.tr.AscendGreaterOrEqual(multiItem{key: v}, func(item multiItem) bool {
		if item.key == v {
			victim, found = item, true
		}

		return false
	})

	if !found {
		return false
	}

	s.tr.Delete(victim)

	return true
}

// Len returns the total number of occurrences.
func (s *MultiSet) Len() int { return s.tr.Len() }

// DistinctLen returns the number of distinct keys.
func (s *MultiSet) DistinctLen() int {
	n := 0
	first := true
	prev := 0

	s.tr.Ascend(func(item multiItem) bool {
		if first || item.key != prev {
			n++
			first = false
			prev = item.key
		}

		return true
	})

	return n
}

func (s *MultiSet) Min() (int, bool) {
	item, ok := s.tr.Min()

	return item.key, ok
}

func (s *MultiSet) Max() (int, bool) {
	item, ok := s.tr.Max()

	return item.key, ok
}

// Floor returns the largest key <= v.
func (s *MultiSet) Floor(v int) (int, bool) {
	var (
		out int
		ok  bool
	)

	s.tr.DescendLessOrEqual(multiItem{key: v, seq: s.nextSeq},
		func(item multiItem) bool {
			if item.key > v {
				return true
			}

			out, ok = item.key, true

			return false
		})

	return out, ok
}

// Ceiling returns the smallest key >= v.
func (s *MultiSet) Ceiling(v int) (int, bool) {
	var (
		out int
		ok  bool
	)

	s.tr.AscendGreaterOrEqual(multiItem{key: v}, func(item multiItem) bool {
		out, ok = item.key, true

		return false
	})

	return out, ok
}

// Each visits every occurrence in key order until fn returns false.
func (s *MultiSet) Each(fn func(v int) bool) {
	s.tr.Ascend(func(item multiItem) bool {
		return fn(item.key)
	})
}

// MultiMap is an ordered int->int map allowing duplicate keys.
type MultiMap struct {
	tr      *btree.BTreeG[multiItem]
	nextSeq int
}

// NewMultiMap returns an empty MultiMap.
func NewMultiMap() *MultiMap {
	return &MultiMap{tr: btree.NewG(btreeDegree, multiLess)}
}

// Add inserts one (k, v) entry; existing entries for k are kept.
func (m *MultiMap) Add(k, v int) {
	m.tr.ReplaceOrInsert(multiItem{key: k, seq: m.nextSeq, val: v})
	m.nextSeq++
}

// Has reports whether at least one entry for k is present.
func (m *MultiMap) Has(k int) bool {
	found := false

	m.tr.AscendGreaterOrEqual(multiItem{key: k}, func(item multiItem) bool {
		found = item.key == k

		return false
	})

	return found
}

// Count returns the number of entries stored under k.
func (m *MultiMap) Count(k int) int {
	n := 0

	m.tr.AscendGreaterOrEqual(multiItem{key: k}, func(item multiItem) bool {
		if item.key != k {
			return false
		}

		n++

		return true
	})

	return n
}

// EqualRange visits the values stored under k in insertion order
// until fn returns false.
func (m *MultiMap) EqualRange(k int, fn func(v int) bool) {
	m.tr.AscendGreaterOrEqual(multiItem{key: k}, func(item multiItem) bool {
		if item.key != k {
			return false
		}

		return fn(item.val)
	})
}

// RemoveOne deletes the oldest entry for k, reporting whether one
// was present.
func (m *MultiMap) RemoveOne(k int) bool {
	var (
		victim multiItem
		found  bool
	)

	m.tr.AscendGreaterOrEqual(multiItem{key: k}, func(item multiItem) bool {
		if item.key == k {
			victim, found = item, true
		}

		return false
	})

	if !found {
		return false
	}

	m.tr.Delete(victim)

	return true
}

// Len returns the total number of entries.
func (m *MultiMap) Len() int { return m.tr.Len() }

// DistinctLen returns the number of distinct keys.
func (m *MultiMap) DistinctLen() int {
	n := 0
	first := true
	prev := 0

	m.tr.Ascend(func(item multiItem) bool {
		if first || item.key != prev {
			n++
			first = false
			prev = item.key
		}

		return true
	})

	return n
}

// First returns the entry with the smallest key.
func (m *MultiMap) First() (int, int, bool) {
	item, ok := m.tr.Min()

	return item.key, item.val, ok
}

// Last returns the entry with the largest key.
func (m *MultiMap) Last() (int, int, bool) {
	item, ok := m.tr.Max()

	return item.key, item.val, ok
}

// Floor returns an entry with the largest key <= k.
func (m *MultiMap) Floor(k int) (int, int, bool) {
	var (
		out multiItem
		ok  bool
	)

	m.tr.DescendLessOrEqual(multiItem{key: k, seq: m.nextSeq},
		func(item multiItem) bool {
			if item.key > k {
				return true
			}

			out, ok = item, true

			return false
		})

	return out.key, out.val, ok
}

// Ceiling returns an entry with the smallest key >= k.
func (m *MultiMap) Ceiling(k int) (int, int, bool) {
	var (
		out multiItem
		ok  bool
	)

	m.tr.AscendGreaterOrEqual(multiItem{key: k}, func(item multiItem) bool {
		out, ok = item, true

		return false
	})

	return out.key, out.val, ok
}

// Each visits every entry in key order until fn returns false.
func (m *MultiMap) Each(fn func(k, v int) bool) {
	m.tr.Ascend(func(item multiItem) bool {
		return fn(item.key, item.val)
	})
}
