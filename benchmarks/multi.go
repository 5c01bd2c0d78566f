package benchmarks

import (
	"testing"

	"github.com/kevholder/dsbench/containers"
	"github.com/kevholder/dsbench/harness"
	"github.com/kevholder/dsbench/workload"
)

// Multi-valued workloads draw one million values from a hundred
// thousand distinct keys, so every key carries roughly ten
// occurrences and count/equal-range walk real duplicate runs.

func registerMulti(s *harness.Suite, seed int64) {
	registerMultiSet(s, seed)
	registerMultiMap(s, seed)
}

func registerMultiSet(s *harness.Suite, seed int64) {
	kind := containers.KindMultiSet
	spec := workload.Spec{Size: Million, Domain: HundredK, Seed: seed}

	s.Register(harness.Label{Size: Million, Op: harness.OpAdd, Kind: kind},
		func(b *testing.B) {
			keys := mustWorkload(b, s, spec).Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				set := containers.NewMultiSet()
				for _, k := range keys {
					set.Add(k)
				}

				harness.Consume(set.Len())
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpHas, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			set := multiSetFixture(b, s, w)
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

	s.Register(harness.Label{Size: Million, Op: harness.OpCount, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			set := multiSetFixture(b, s, w)
			keys := w.Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				total := 0

				for _, k := range keys {
					total += set.Count(k)
				}

				harness.Consume(total)
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpBuildHas, Kind: kind},
		func(b *testing.B) {
			keys := mustWorkload(b, s, spec).Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				set := containers.NewMultiSet()
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

	s.Register(harness.Label{Size: Million, Op: harness.OpBuildCount, Kind: kind},
		func(b *testing.B) {
			keys := mustWorkload(b, s, spec).Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				set := containers.NewMultiSet()
				for _, k := range keys {
					set.Add(k)
				}

				total := 0

				for _, k := range keys {
					total += set.Count(k)
				}

				harness.Consume(total)
			}
		})

	// Removing one occurrence must leave the rest; the rebuild that
	// restores removed occurrences is untimed.
	s.Register(harness.Label{Size: HundredK, Op: harness.OpDeleteOne, Kind: kind},
		func(b *testing.B) {
			keys := mustWorkload(b, s, spec).Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				b.StopTimer()

				set := containers.NewMultiSet()
				for _, k := range keys {
					set.Add(k)
				}

				b.StartTimer()

				n := 0

				for _, k := range keys[:HundredK] {
					if set.RemoveOne(k) {
						n++
					}
				}

				harness.Consume(n)
			}
		})

	s.Register(harness.Label{Size: HundredK, Op: harness.OpFirstLast, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			set := multiSetFixture(b, s, w)
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

	s.Register(harness.Label{Size: HundredK, Op: harness.OpCeilingFloor, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			set := multiSetFixture(b, s, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				sum := 0

				for probe := 0; probe < HundredK; probe++ {
					if v, ok := set.Ceiling(probe); ok {
						sum += v
					}

					if v, ok := set.Floor(probe); ok {
						sum += v
					}
				}

				harness.Consume(sum)
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpIterate, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			set := multiSetFixture(b, s, w)
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

	s.Register(harness.Label{Size: Million, Op: harness.OpSize, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			set := multiSetFixture(b, s, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				harness.Consume(set.Len())
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpDistinctSize, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			set := multiSetFixture(b, s, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				harness.Consume(set.DistinctLen())
			}
		})
}

func registerMultiMap(s *harness.Suite, seed int64) {
	kind := containers.KindMultiMap
	spec := workload.Spec{Size: Million, Domain: HundredK, Seed: seed}

	s.Register(harness.Label{Size: Million, Op: harness.OpAdd, Kind: kind},
		func(b *testing.B) {
			keys := mustWorkload(b, s, spec).Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				m := containers.NewMultiMap()
				for j, k := range keys {
					m.Add(k, j)
				}

				harness.Consume(m.Len())
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpHas, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			m := multiMapFixture(b, s, w)
			keys := w.Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				n := 0

				for _, k := range keys {
					if m.Has(k) {
						n++
					}
				}

				harness.Consume(n)
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpGet, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			m := multiMapFixture(b, s, w)
			keys := w.Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				sum := 0

				for _, k := range keys {
					m.EqualRange(k, func(v int) bool {
						sum += v

						return true
					})
				}

				harness.Consume(sum)
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpCount, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			m := multiMapFixture(b, s, w)
			keys := w.Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				total := 0

				for _, k := range keys {
					total += m.Count(k)
				}

				harness.Consume(total)
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpBuildHas, Kind: kind},
		func(b *testing.B) {
			keys := mustWorkload(b, s, spec).Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				m := containers.NewMultiMap()
				for j, k := range keys {
					m.Add(k, j)
				}

				n := 0

				for _, k := range keys {
					if m.Has(k) {
						n++
					}
				}

				harness.Consume(n)
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpBuildGet, Kind: kind},
		func(b *testing.B) {
			keys := mustWorkload(b, s, spec).Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				m := containers.NewMultiMap()
				for j, k := range keys {
					m.Add(k, j)
				}

				sum := 0

				for _, k := range keys {
					m.EqualRange(k, func(v int) bool {
						sum += v

						return true
					})
				}

				harness.Consume(sum)
			}
		})

	s.Register(harness.Label{Size: HundredK, Op: harness.OpFirstLast, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			m := multiMapFixture(b, s, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				sum := 0

				for j := 0; j < HundredK; j++ {
					if _, v, ok := m.First(); ok {
						sum += v
					}

					if _, v, ok := m.Last(); ok {
						sum += v
					}
				}

				harness.Consume(sum)
			}
		})

	s.Register(harness.Label{Size: HundredK, Op: harness.OpCeilingFloor, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			m := multiMapFixture(b, s, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				sum := 0

				for probe := 0; probe < HundredK; probe++ {
					if _, v, ok := m.Ceiling(probe); ok {
						sum += v
					}

					if _, v, ok := m.Floor(probe); ok {
						sum += v
					}
				}

				harness.Consume(sum)
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpIterate, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			m := multiMapFixture(b, s, w)
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

	s.Register(harness.Label{Size: Million, Op: harness.OpSize, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			m := multiMapFixture(b, s, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				harness.Consume(m.Len())
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpDistinctSize, Kind: kind},
		func(b *testing.B) {
			w := mustWorkload(b, s, spec)
			m := multiMapFixture(b, s, w)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				harness.Consume(m.DistinctLen())
			}
		})
}
