package containers

import (
	"fmt"

	"github.com/cockroachdb/swiss"
	"github.com/tidwall/hashmap"
)

// HashMap is the surface hash-map benchmarks run against.
type HashMap interface {
	Put(k, v int)
	Get(k int) (int, bool)
	Delete(k int)
	Len() int
	Each(fn func(k, v int) bool)
}

// HashSet is the surface hash-set benchmarks run against.
type HashSet interface {
	Add(v int)
	Has(v int) bool
	Delete(v int)
	Len() int
}

// Hash container kinds.
const (
	KindSwissMap   = "swiss-map"
	KindGoMap      = "go-map"
	KindTidwallMap = "tidwall-map"
	KindSwissSet   = "swiss-set"
	KindGoSet      = "go-set"
)

// HashMapKinds lists the hash-map implementations under test.
func HashMapKinds() []string {
	return []string{KindSwissMap, KindGoMap, KindTidwallMap}
}

// HashSetKinds lists the hash-set implementations under test.
func HashSetKinds() []string {
	return []string{KindSwissSet, KindGoSet}
}

// NewHashMap constructs an empty hash map of the given kind.
func NewHashMap(kind string) (HashMap, error) {
	switch kind {
	case KindSwissMap:
		return &SwissMap{m: swiss.New[int, int](0)}, nil
	case KindGoMap:
		return make(goMap), nil
	case KindTidwallMap:
		return &TidwallMap{}, nil
	default:
		return nil, fmt.Errorf("unknown hash map kind %q", kind)
	}
}

// NewHashSet constructs an empty hash set of the given kind.
func NewHashSet(kind string) (HashSet, error) {
	switch kind {
	case KindSwissSet:
		return &SwissSet{m: swiss.New[int, struct{}](0)}, nil
	case KindGoSet:
		return make(goSet), nil
	default:
		return nil, fmt.Errorf("unknown hash set kind %q", kind)
	}
}

// SwissMap adapts the cockroachdb swiss-table map.
type SwissMap struct {
	m *swiss.Map[int, int]
}

func (m *SwissMap) Put(k, v int)          { m.m.Put(k, v) }
func (m *SwissMap) Get(k int) (int, bool) { return m.m.Get(k) }
func (m *SwissMap) Delete(k int)          { m.m.Delete(k) }
func (m *SwissMap) Len() int              { return m.m.Len() }

func (m *SwissMap) Each(fn func(k, v int) bool) {
	m.m.All(fn)
}

// SwissSet is a hash set on the swiss-table map.
type SwissSet struct {
	m *swiss.Map[int, struct{}]
}

func (s *SwissSet) Add(v int) { s.m.Put(v, struct{}{}) }

func (s *SwissSet) Has(v int) bool {
	_, ok := s.m.Get(v)

	return ok
}

func (s *SwissSet) Delete(v int) { s.m.Delete(v) }
func (s *SwissSet) Len() int     { return s.m.Len() }

// TidwallMap adapts the tidwall robin-hood hashmap. The zero value
// is ready to use.
type TidwallMap struct {
	m hashmap.Map[int, int]
}

func (m *TidwallMap) Put(k, v int)          { m.m.Set(k, v) }
func (m *TidwallMap) Get(k int) (int, bool) { return m.m.Get(k) }

func (m *TidwallMap) Delete(k int) { m.m.Delete(k) }
func (m *TidwallMap) Len() int     { return m.m.Len() }

func (m *TidwallMap) Each(fn func(k, v int) bool) {
	m.m.Scan(fn)
}

// goMap is the builtin map baseline every hash kind is compared to.
type goMap map[int]int

func (m goMap) Put(k, v int) { m[k] = v }

func (m goMap) Get(k int) (int, bool) {
	v, ok := m[k]

	return v, ok
}

func (m goMap) Delete(k int) { delete(m, k) }
func (m goMap) Len() int     { return len(m) }

func (m goMap) Each(fn func(k, v int) bool) {
	for k, v := range m {
		if !fn(k, v) {
			return
		}
	}
}

type goSet map[int]struct{}

func (s goSet) Add(v int) { s[v] = struct{}{} }

func (s goSet) Has(v int) bool {
	_, ok := s[v]

	return ok
}

func (s goSet) Delete(v int) { delete(s, v) }
func (s goSet) Len() int     { return len(s) }
