package benchmarks

import (
	"testing"

	"github.com/kevholder/dsbench/containers"
	"github.com/kevholder/dsbench/harness"
	"github.com/kevholder/dsbench/workload"
)

// Hash benchmarks use sequential keys, matching the comparison
// baselines: hashing spreads them regardless, and random keys would
// measure the workload array walk twice.

func registerHash(s *harness.Suite, seed int64) {
	for _, kind := range containers.HashMapKinds() {
		registerHashMap(s, kind)
	}

	for _, kind := range containers.HashSetKinds() {
		registerHashSet(s, kind)
	}

	registerHashRandom(s, seed)
}

func mustNewHashMap(b *testing.B, kind string) containers.HashMap {
	b.Helper()

	m, err := containers.NewHashMap(kind)
	if err != nil {
		b.Fatalf("new %s: %v", kind, err)
	}

	return m
}

func mustNewHashSet(b *testing.B, kind string) containers.HashSet {
	b.Helper()

	set, err := containers.NewHashSet(kind)
	if err != nil {
		b.Fatalf("new %s: %v", kind, err)
	}

	return set
}

func registerHashMap(s *harness.Suite, kind string) {
	s.Register(harness.Label{Size: Million, Op: harness.OpSet, Kind: kind},
		func(b *testing.B) {
			keys := workload.Sequential(Million)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				m := mustNewHashMap(b, kind)
				for _, k := range keys {
					m.Put(k, k)
				}

				harness.Consume(m.Len())
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpGet, Kind: kind},
		func(b *testing.B) {
			keys := workload.Sequential(Million)
			m := hashMapFixture(b, s, kind, keys)
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

	s.Register(harness.Label{Size: Million, Op: harness.OpSetGet, Kind: kind},
		func(b *testing.B) {
			keys := workload.Sequential(Million)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				m := mustNewHashMap(b, kind)
				for _, k := range keys {
					m.Put(k, k)
				}

				n := 0

				for _, k := range keys {
					if _, ok := m.Get(k); ok {
						n++
					}
				}

				harness.Consume(n)
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpIterate, Kind: kind},
		func(b *testing.B) {
			keys := workload.Sequential(Million)
			m := hashMapFixture(b, s, kind, keys)
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
}

func registerHashSet(s *harness.Suite, kind string) {
	s.Register(harness.Label{Size: Million, Op: harness.OpAdd, Kind: kind},
		func(b *testing.B) {
			keys := workload.Sequential(Million)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				set := mustNewHashSet(b, kind)
				for _, k := range keys {
					set.Add(k)
				}

				harness.Consume(set.Len())
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpAddHas, Kind: kind},
		func(b *testing.B) {
			keys := workload.Sequential(Million)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				set := mustNewHashSet(b, kind)
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
}

// One random-order insertion benchmark per hash-map kind, so hash
// probing under adversarial-looking order stays visible next to the
// tree containers' RAND numbers.
func registerHashRandom(s *harness.Suite, seed int64) {
	spec := workload.Spec{Size: Million, Domain: Million, Seed: seed}

	for _, kind := range containers.HashMapKinds() {
		kind := kind

		s.Register(harness.Label{
			Size: Million, Op: harness.OpIns, Kind: kind, Mode: harness.ModeRand,
		}, func(b *testing.B) {
			keys := mustWorkload(b, s, spec).Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				m := mustNewHashMap(b, kind)
				for _, k := range keys {
					m.Put(k, k)
				}

				harness.Consume(m.Len())
			}
		})
	}
}
