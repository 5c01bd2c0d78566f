package benchmarks

import (
	"fmt"
	"testing"

	"github.com/kevholder/dsbench/containers"
	"github.com/kevholder/dsbench/fixture"
	"github.com/kevholder/dsbench/harness"
	"github.com/kevholder/dsbench/workload"
)

// Shared fixtures for read-only benchmarks. Each is built once per
// process by replaying a workload through the container's insertion
// operation; lookup, range, navigation and iteration bodies then
// measure only the operation itself. Mutating bodies never touch
// these, they build privately or rebuild untimed.

func orderedSetFixture(
	b *testing.B,
	s *harness.Suite,
	kind string,
	w *workload.Workload,
) containers.OrderedSet {
	b.Helper()

	name := fmt.Sprintf("ordered-set/%s/%s", kind, w.Spec().Name())

	set, err := fixture.Ensure(s.Fixtures(), name,
		func() (containers.OrderedSet, error) {
			set, err := containers.NewOrderedSet(kind)
			if err != nil {
				return nil, err
			}

			for _, v := range w.Values() {
				set.Add(v)
			}

			return set, nil
		})
	if err != nil {
		b.Fatalf("fixture %s: %v", name, err)
	}

	return set
}

func orderedMapFixture(
	b *testing.B,
	s *harness.Suite,
	kind string,
	w *workload.Workload,
) containers.OrderedMap {
	b.Helper()

	name := fmt.Sprintf("ordered-map/%s/%s", kind, w.Spec().Name())

	m, err := fixture.Ensure(s.Fixtures(), name,
		func() (containers.OrderedMap, error) {
			m, err := containers.NewOrderedMap(kind)
			if err != nil {
				return nil, err
			}

			for _, v := range w.Values() {
				m.Put(v, v)
			}

			return m, nil
		})
	if err != nil {
		b.Fatalf("fixture %s: %v", name, err)
	}

	return m
}

func multiSetFixture(
	b *testing.B,
	s *harness.Suite,
	w *workload.Workload,
) *containers.MultiSet {
	b.Helper()

	name := fmt.Sprintf("multiset/%s", w.Spec().Name())

	set, err := fixture.Ensure(s.Fixtures(), name,
		func() (*containers.MultiSet, error) {
			set := containers.NewMultiSet()
			for _, v := range w.Values() {
				set.Add(v)
			}

			return set, nil
		})
	if err != nil {
		b.Fatalf("fixture %s: %v", name, err)
	}

	return set
}

func multiMapFixture(
	b *testing.B,
	s *harness.Suite,
	w *workload.Workload,
) *containers.MultiMap {
	b.Helper()

	name := fmt.Sprintf("multimap/%s", w.Spec().Name())

	m, err := fixture.Ensure(s.Fixtures(), name,
		func() (*containers.MultiMap, error) {
			m := containers.NewMultiMap()
			for i, v := range w.Values() {
				m.Add(v, i)
			}

			return m, nil
		})
	if err != nil {
		b.Fatalf("fixture %s: %v", name, err)
	}

	return m
}

func hashMapFixture(
	b *testing.B,
	s *harness.Suite,
	kind string,
	keys []int,
) containers.HashMap {
	b.Helper()

	name := fmt.Sprintf("hash-map/%s/%d", kind, len(keys))

	m, err := fixture.Ensure(s.Fixtures(), name,
		func() (containers.HashMap, error) {
			m, err := containers.NewHashMap(kind)
			if err != nil {
				return nil, err
			}

			for _, k := range keys {
				m.Put(k, k)
			}

			return m, nil
		})
	if err != nil {
		b.Fatalf("fixture %s: %v", name, err)
	}

	return m
}
