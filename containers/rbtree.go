package containers

import (
	"github.com/emirpasic/gods/v2/trees/redblacktree"
)

// RBSet is an ordered integer set on a gods red-black tree. It is the
// rotation-based counterpart to TreeSet, kept so ordered benchmarks
// compare node-per-element trees against the B-tree layout.
type RBSet struct {
	tr *redblacktree.Tree[int, struct{}]
}

// NewRBSet returns an empty RBSet.
func NewRBSet() *RBSet {
	return &RBSet{tr: redblacktree.New[int, struct{}]()}
}

func (s *RBSet) Add(v int) { s.tr.Put(v, struct{}{}) }

func (s *RBSet) Has(v int) bool {
	_, ok := s.tr.Get(v)

	return ok
}

func (s *RBSet) Delete(v int) { s.tr.Remove(v) }
func (s *RBSet) Len() int     { return s.tr.Size() }

func (s *RBSet) Min() (int, bool) {
	node := s.tr.Left()
	if node == nil {
		return 0, false
	}

	return node.Key, true
}

func (s *RBSet) Max() (int, bool) {
	node := s.tr.Right()
	if node == nil {
		return 0, false
	}

	return node.Key, true
}

// Floor returns the largest element <= v.
func (s *RBSet) Floor(v int) (int, bool) {
	node, ok := s.tr.Floor(v)
	if !ok {
		return 0, false
	}

	return node.Key, true
}

// Ceiling returns the smallest element >= v.
func (s *RBSet) Ceiling(v int) (int, bool) {
	node, ok := s.tr.Ceiling(v)
	if !ok {
		return 0, false
	}

	return node.Key, true
}

// Lower returns the largest element strictly < v.
func (s *RBSet) Lower(v int) (int, bool) {
	return s.Floor(v - 1)
}

// Higher returns the smallest element strictly > v.
func (s *RBSet) Higher(v int) (int, bool) {
	return s.Ceiling(v + 1)
}

// RangeCount counts elements in [lo, hi], inclusive at both ends.
// The lower bound is located with a ceiling lookup, then the
// iterator walks in order until it passes hi.
func (s *RBSet) RangeCount(lo, hi int) int {
	start, ok := s.tr.Ceiling(lo)
	if !ok {
		return 0
	}

	n := 0

	it := s.tr.IteratorAt(start)
	for {
		if it.Key() > hi {
			break
		}

		n++

		if !it.Next() {
			break
		}
	}

	return n
}

// Each visits elements in ascending order until fn returns false.
func (s *RBSet) Each(fn func(v int) bool) {
	it := s.tr.Iterator()
	for it.Next() {
		if !fn(it.Key()) {
			return
		}
	}
}

// RBMap is an ordered int->int map on a gods red-black tree.
type RBMap struct {
	tr *redblacktree.Tree[int, int]
}

// NewRBMap returns an empty RBMap.
func NewRBMap() *RBMap {
	return &RBMap{tr: redblacktree.New[int, int]()}
}

func (m *RBMap) Put(k, v int)          { m.tr.Put(k, v) }
func (m *RBMap) Get(k int) (int, bool) { return m.tr.Get(k) }
func (m *RBMap) Delete(k int)          { m.tr.Remove(k) }
func (m *RBMap) Len() int              { return m.tr.Size() }

func (m *RBMap) First() (int, int, bool) {
	node := m.tr.Left()
	if node == nil {
		return 0, 0, false
	}

	return node.Key, node.Value, true
}

func (m *RBMap) Last() (int, int, bool) {
	node := m.tr.Right()
	if node == nil {
		return 0, 0, false
	}

	return node.Key, node.Value, true
}

// Floor returns the entry with the largest key <= k.
func (m *RBMap) Floor(k int) (int, int, bool) {
	node, ok := m.tr.Floor(k)
	if !ok {
		return 0, 0, false
	}

	return node.Key, node.Value, true
}

// Ceiling returns the entry with the smallest key >= k.
func (m *RBMap) Ceiling(k int) (int, int, bool) {
	node, ok := m.tr.Ceiling(k)
	if !ok {
		return 0, 0, false
	}

	return node.Key, node.Value, true
}

// Lower returns the entry with the largest key strictly < k.
func (m *RBMap) Lower(k int) (int, int, bool) {
	return m.Floor(k - 1)
}

// Higher returns the entry with the smallest key strictly > k.
func (m *RBMap) Higher(k int) (int, int, bool) {
	return m.Ceiling(k + 1)
}

// RangeCount counts entries with key in [lo, hi], inclusive.
func (m *RBMap) RangeCount(lo, hi int) int {
	start, ok := m.tr.Ceiling(lo)
	if !ok {
		return 0
	}

	n := 0

	it := m.tr.IteratorAt(start)
	for {
		if it.Key() > hi {
			break
		}

		n++

		if !it.Next() {
			break
		}
	}

	return n
}

// Each visits entries in ascending key order until fn returns false.
func (m *RBMap) Each(fn func(k, v int) bool) {
	it := m.tr.Iterator()
	for it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}
