// Package containers adapts off-the-shelf container libraries to the
// small uniform surface the benchmark taxonomy needs. The adapters pin
// the operation semantics every comparison target must share: range
// queries are inclusive at both bounds, floor/ceiling are inclusive at
// the probe key, and absent results are reported with an ok flag.
package containers

import (
	"fmt"

	"github.com/google/btree"
)

// Matches the degree google/btree uses in its own benchmarks.
const btreeDegree = 32

// OrderedSet is the surface ordered-set benchmarks run against.
type OrderedSet interface {
	Add(v int)
	Has(v int) bool
	Delete(v int)
	Len() int
	Min() (int, bool)
	Max() (int, bool)
	Floor(v int) (int, bool)
	Ceiling(v int) (int, bool)
	Lower(v int) (int, bool)
	Higher(v int) (int, bool)
	RangeCount(lo, hi int) int
	Each(fn func(v int) bool)
}

// OrderedMap is the surface ordered-map benchmarks run against.
type OrderedMap interface {
	Put(k, v int)
	Get(k int) (int, bool)
	Delete(k int)
	Len() int
	First() (int, int, bool)
	Last() (int, int, bool)
	Floor(k int) (int, int, bool)
	Ceiling(k int) (int, int, bool)
	Lower(k int) (int, int, bool)
	Higher(k int) (int, int, bool)
	RangeCount(lo, hi int) int
	Each(fn func(k, v int) bool)
}

// Container kinds. The kind string becomes part of the result label,
// so it identifies the backing implementation, not just the family.
const (
	KindBTreeSet  = "btree-set"
	KindRBTreeSet = "rbtree-set"
	KindBTreeMap  = "btree-map"
	KindRBTreeMap = "rbtree-map"
)

// OrderedSetKinds lists the ordered-set implementations under test.
func OrderedSetKinds() []string {
	return []string{KindBTreeSet, KindRBTreeSet}
}

// OrderedMapKinds lists the ordered-map implementations under test.
func OrderedMapKinds() []string {
	return []string{KindBTreeMap, KindRBTreeMap}
}

// NewOrderedSet constructs an empty ordered set of the given kind.
func NewOrderedSet(kind string) (OrderedSet, error) {
	switch kind {
	case KindBTreeSet:
		return NewTreeSet(), nil
	case KindRBTreeSet:
		return NewRBSet(), nil
	default:
		return nil, fmt.Errorf("unknown ordered set kind %q", kind)
	}
}

// NewOrderedMap constructs an empty ordered map of the given kind.
func NewOrderedMap(kind string) (OrderedMap, error) {
	switch kind {
	case KindBTreeMap:
		return NewTreeMap(), nil
	case KindRBTreeMap:
		return NewRBMap(), nil
	default:
		return nil, fmt.Errorf("unknown ordered map kind %q", kind)
	}
}

// TreeSet is an ordered integer set on a google/btree B-tree.
type TreeSet struct {
	tr *btree.BTreeG[int]
}

// NewTreeSet returns an empty TreeSet.
func NewTreeSet() *TreeSet {
	return &TreeSet{tr: btree.NewOrderedG[int](btreeDegree)}
}

func (s *TreeSet) Add(v int)      { s.tr.ReplaceOrInsert(v) }
func (s *TreeSet) Has(v int) bool { return s.tr.Has(v) }
func (s *TreeSet) Delete(v int)   { s.tr.Delete(v) }
func (s *TreeSet) Len() int       { return s.tr.Len() }

func (s *TreeSet) Min() (int, bool) { return s.tr.Min() }
func (s *TreeSet) Max() (int, bool) { return s.tr.Max() }

// Floor returns the largest element <= v.
func (s *TreeSet) Floor(v int) (int, bool) {
	var (
		out int
		ok  bool
	)

	s.tr.DescendLessOrEqual(v, func(item int) bool {
		out, ok = item, true

		return false
	})

	return out, ok
}

// Ceiling returns the smallest element >= v.
func (s *TreeSet) Ceiling(v int) (int, bool) {
	var (
		out int
		ok  bool
	)

	s.tr.AscendGreaterOrEqual(v, func(item int) bool {
		out, ok = item, true

		return false
	})

	return out, ok
}

// Lower returns the largest element strictly < v.
func (s *TreeSet) Lower(v int) (int, bool) {
	var (
		out int
		ok  bool
	)

	s.tr.DescendLessOrEqual(v, func(item int) bool {
		if item == v {
			return true
		}

		out, ok = item, true

		return false
	})

	return out, ok
}

// Higher returns the smallest element strictly > v.
func (s *TreeSet) Higher(v int) (int, bool) {
	var (
		out int
		ok  bool
	)

	s.tr.AscendGreaterOrEqual(v, func(item int) bool {
		if item == v {
			return true
		}

		out, ok = item, true

		return false
	})

	return out, ok
}

// RangeCount counts elements in [lo, hi], inclusive at both ends.
func (s *TreeSet) RangeCount(lo, hi int) int {
	n := 0

	s.tr.AscendGreaterOrEqual(lo, func(item int) bool {
		if item > hi {
			return false
		}

		n++

		return true
	})

	return n
}

// Each visits elements in ascending order until fn returns false.
func (s *TreeSet) Each(fn func(v int) bool) {
	s.tr.Ascend(btree.ItemIteratorG[int](fn))
}

// Clone returns a copy-on-write snapshot sharing structure with s.
func (s *TreeSet) Clone() *TreeSet {
	return &TreeSet{tr: s.tr.Clone()}
}

type kv struct {
	key, val int
}

// TreeMap is an ordered int->int map on a google/btree B-tree.
type TreeMap struct {
	tr *btree.BTreeG[kv]
}

// NewTreeMap returns an empty TreeMap.
func NewTreeMap() *TreeMap {
	return &TreeMap{tr: btree.NewG(btreeDegree, func(a, b kv) bool {
		return a.key < b.key
	})}
}

func (m *TreeMap) Put(k, v int) { m.tr.ReplaceOrInsert(kv{key: k, val: v}) }

func (m *TreeMap) Get(k int) (int, bool) {
	item, ok := m.tr.Get(kv{key: k})

	return item.val, ok
}

func (m *TreeMap) Delete(k int) { m.tr.Delete(kv{key: k}) }
func (m *TreeMap) Len() int     { return m.tr.Len() }

func (m *TreeMap) First() (int, int, bool) {
	item, ok := m.tr.Min()

	return item.key, item.val, ok
}

func (m *TreeMap) Last() (int, int, bool) {
	item, ok := m.tr.Max()

	return item.key, item.val, ok
}

// Floor returns the entry with the largest key <= k.
func (m *TreeMap) Floor(k int) (int, int, bool) {
	var (
		out kv
		ok  bool
	)

	m.tr.DescendLessOrEqual(kv{key: k}, func(item kv) bool {
		out, ok = item, true

		return false
	})

	return out.key, out.val, ok
}

// Ceiling returns the entry with the smallest key >= k.
func (m *TreeMap) Ceiling(k int) (int, int, bool) {
	var (
		out kv
		ok  bool
	)

	m.tr.AscendGreaterOrEqual(kv{key: k}, func(item kv) bool {
		out, ok = item, true

		return false
	})

	return out.key, out.val, ok
}

// Lower returns the entry with the largest key strictly < k.
func (m *TreeMap) Lower(k int) (int, int, bool) {
	var (
		out kv
		ok  bool
	)

	m.tr.DescendLessOrEqual(kv{key: k}, func(item kv) bool {
		if item.key == k {
			return true
		}

		out, ok = item, true

		return false
	})

	return out.key, out.val, ok
}

// Higher returns the entry with the smallest key strictly > k.
func (m *TreeMap) Higher(k int) (int, int, bool) {
	var (
		out kv
		ok  bool
	)

	m.tr.AscendGreaterOrEqual(kv{key: k}, func(item kv) bool {
		if item.key == k {
			return true
		}

		out, ok = item, true

		return false
	})

	return out.key, out.val, ok
}

// RangeCount counts entries with key in [lo, hi], inclusive.
func (m *TreeMap) RangeCount(lo, hi int) int {
	n := 0

	m.tr.AscendGreaterOrEqual(kv{key: lo}, func(item kv) bool {
		if item.key > hi {
			return false
		}

		n++

		return true
	})

	return n
}

// Each visits entries in ascending key order until fn returns false.
func (m *TreeMap) Each(fn func(k, v int) bool) {
	m.tr.Ascend(func(item kv) bool {
		return fn(item.key, item.val)
	})
}

// Clone returns a copy-on-write snapshot sharing structure with m.
func (m *TreeMap) Clone() *TreeMap {
	return &TreeMap{tr: m.tr.Clone()}
}
