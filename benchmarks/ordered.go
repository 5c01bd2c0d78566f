package benchmarks

import (
	"testing"

	"github.com/kevholder/dsbench/containers"
	"github.com/kevholder/dsbench/harness"
	"github.com/kevholder/dsbench/workload"
)

// Range-search bounds shared with the external comparison targets.
const (
	rangeLo = 69_900
	rangeHi = 70_000
)

func registerOrdered(s *harness.Suite, seed int64) {
	for _, kind := range containers.OrderedSetKinds() {
		registerOrderedSet(s, seed, kind)
	}

	for _, kind := range containers.OrderedMapKinds() {
		registerOrderedMap(s, seed, kind)
	}
}

func mustNewOrderedSet(b *testing.B, kind string) containers.OrderedSet {
	b.Helper()

	set, err := containers.NewOrderedSet(kind)
	if err != nil {
		b.Fatalf("new %s: %v", kind, err)
	}

	return set
}

func mustNewOrderedMap(b *testing.B, kind string) containers.OrderedMap {
	b.Helper()

	m, err := containers.NewOrderedMap(kind)
	if err != nil {
		b.Fatalf("new %s: %v", kind, err)
	}

	return m
}

func registerOrderedSet(s *harness.Suite, seed int64, kind string) {
	spec1M := workload.Spec{Size: Million, Domain: Million, Seed: seed}
	spec100K := workload.Spec{Size: HundredK, Domain: HundredK, Seed: seed}

	// Build: construction is the subject, so it runs inside the
	// measured region.
	s.Register(harness.Label{Size: Million, Op: harness.OpAdd, Kind: kind},
		func(b *testing.B) {
			keys := mustWorkload(b, s, spec1M).Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				set := mustNewOrderedSet(b, kind)
				for _, k := range keys {
					set.Add(k)
				}

				harness.Consume(set.Len())
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpHas, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec1M)
			set := orderedSetFixture(b, s, kind, w)
			keys := w.Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				n := 0

				for _, k := range keys {
					if set.Has(k) {
						n++
					}
				}

				harness.Consume(n)
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpBuildHas, Kind: kind},
		func(b *testing.B) {
			keys := mustWorkload(b, s, spec1M).Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				set := mustNewOrderedSet(b, kind)
				for _, k := range keys {
					set.Add(k)
				}

				n := 0

				for _, k := range keys {
					if set.Has(k) {
						n++
					}
				}

				harness.Consume(n)
			}
		})

	s.Register(harness.Label{Size: HundredK, Op: harness.OpRangeSearch, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec100K)
			set := orderedSetFixture(b, s, kind, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				harness.Consume(set.RangeCount(rangeLo, rangeHi))
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpRangeSearch, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec1M)
			set := orderedSetFixture(b, s, kind, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				harness.Consume(set.RangeCount(rangeLo, rangeHi))
			}
		})

	s.Register(harness.Label{Size: HundredK, Op: harness.OpNavigable, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec1M)
			set := orderedSetFixture(b, s, kind, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				sum := 0

				for probe := 0; probe < HundredK; probe++ {
					if v, ok := set.Floor(probe); ok {
						sum += v
					}

					if v, ok := set.Ceiling(probe); ok {
						sum += v
					}

					if v, ok := set.Lower(probe); ok {
						sum += v
					}

					if v, ok := set.Higher(probe); ok {
						sum += v
					}
				}

				harness.Consume(sum)
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpIterate, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec1M)
			set := orderedSetFixture(b, s, kind, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				sum := 0

				set.Each(func(v int) bool {
					sum += v

					return true
				})

				harness.Consume(sum)
			}
		})

	s.Register(harness.Label{Size: HundredK, Op: harness.OpFirstLast, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec1M)
			set := orderedSetFixture(b, s, kind, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				sum := 0

				for j := 0; j < HundredK; j++ {
					if v, ok := set.Min(); ok {
						sum += v
					}

					if v, ok := set.Max(); ok {
						sum += v
					}
				}

				harness.Consume(sum)
			}
		})

	// Insert-then-delete pairs, sequential and random key order.
	for _, mode := range []string{harness.ModeSeq, harness.ModeRand} {
		mode := mode

		s.Register(harness.Label{
			Size: HundredK, Op: harness.OpAddDelete, Kind: kind, Mode: mode,
		}, func(b *testing.B) {
			var keys []int
			if mode == harness.ModeSeq {
				keys = workload.Sequential(HundredK)
			} else {
				keys = mustWorkload(b, s, spec100K).Values()
			}

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				set := mustNewOrderedSet(b, kind)

				for _, k := range keys {
					set.Add(k)
				}

				for _, k := range keys {
					set.Delete(k)
				}

				harness.Consume(set.Len())
			}
		})
	}
}

func registerOrderedMap(s *harness.Suite, seed int64, kind string) {
	spec1M := workload.Spec{Size: Million, Domain: Million, Seed: seed}
	spec100K := workload.Spec{Size: HundredK, Domain: HundredK, Seed: seed}

	s.Register(harness.Label{Size: Million, Op: harness.OpSet, Kind: kind},
		func(b *testing.B) {
			keys := mustWorkload(b, s, spec1M).Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				m := mustNewOrderedMap(b, kind)
				for _, k := range keys {
					m.Put(k, k)
				}

				harness.Consume(m.Len())
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpGet, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec1M)
			m := orderedMapFixture(b, s, kind, w)
			keys := w.Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				sum := 0

				for _, k := range keys {
					if v, ok := m.Get(k); ok {
						sum += v
					}
				}

				harness.Consume(sum)
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpBuildGet, Kind: kind},
		func(b *testing.B) {
			keys := mustWorkload(b, s, spec1M).Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				m := mustNewOrderedMap(b, kind)
				for _, k := range keys {
					m.Put(k, k)
				}

				sum := 0

				for _, k := range keys {
					if v, ok := m.Get(k); ok {
						sum += v
					}
				}

				harness.Consume(sum)
			}
		})

	// Insertion cost under monotonic vs. random key order.
	for _, mode := range []string{harness.ModeSeq, harness.ModeRand} {
		mode := mode

		s.Register(harness.Label{
			Size: Million, Op: harness.OpIns, Kind: kind, Mode: mode,
		}, func(b *testing.B) {
			var keys []int
			if mode == harness.ModeSeq {
				keys = workload.Sequential(Million)
			} else {
				keys = mustWorkload(b, s, spec1M).Values()
			}

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				m := mustNewOrderedMap(b, kind)
				for _, k := range keys {
					m.Put(k, k)
				}

				harness.Consume(m.Len())
			}
		})

		// Update overwrites existing keys; the rebuild that provides
		// them is untimed so only the overwrite pass is measured.
		s.Register(harness.Label{
			Size: Million, Op: harness.OpUpd, Kind: kind, Mode: mode,
		}, func(b *testing.B) {
			var keys []int
			if mode == harness.ModeSeq {
				keys = workload.Sequential(Million)
			} else {
				keys = mustWorkload(b, s, spec1M).Values()
			}

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				b.StopTimer()

				m := mustNewOrderedMap(b, kind)
				for _, k := range keys {
					m.Put(k, k)
				}

				b.StartTimer()

				for _, k := range keys {
					m.Put(k, k+1)
				}

				harness.Consume(m.Len())
			}
		})
	}

	s.Register(harness.Label{Size: Million, Op: harness.OpKeysOnly, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec1M)
			m := orderedMapFixture(b, s, kind, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				sum := 0

				m.Each(func(k, _ int) bool {
					sum += k

					return true
				})

				harness.Consume(sum)
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpIterate, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec1M)
			m := orderedMapFixture(b, s, kind, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				sum := 0

				m.Each(func(_, v int) bool {
					sum += v

					return true
				})

				harness.Consume(sum)
			}
		})

	s.Register(harness.Label{Size: HundredK, Op: harness.OpRangeSearch, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec100K)
			m := orderedMapFixture(b, s, kind, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				harness.Consume(m.RangeCount(rangeLo, rangeHi))
			}
		})

	s.Register(harness.Label{Size: HundredK, Op: harness.OpNavigable, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec1M)
			m := orderedMapFixture(b, s, kind, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				sum := 0

				for probe := 0; probe < HundredK; probe++ {
					if _, v, ok := m.Ceiling(probe); ok {
						sum += v
					}

					if _, v, ok := m.Higher(probe); ok {
						sum += v
					}
				}

				harness.Consume(sum)
			}
		})
}
