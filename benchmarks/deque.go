package benchmarks

import (
	"testing"

	"github.com/gammazero/deque"

	"github.com/kevholder/dsbench/harness"
)

// Double-ended kinds. The slice baseline grows at the back and pays
// the copy cost at the front, like a plain vector would.
const (
	kindRingDeque  = "gammazero-deque"
	kindSliceDeque = "slice-deque"
)

func registerDeques(s *harness.Suite, _ int64) {
	registerRingDeque(s)
	registerSliceDeque(s)
}

func registerRingDeque(s *harness.Suite) {
	kind := kindRingDeque

	s.Register(harness.Label{Size: Million, Op: harness.OpPush, Kind: kind},
		func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var q deque.Deque[int]
				for j := 0; j < Million; j++ {
					q.PushBack(j)
				}

				harness.Consume(q.Len())
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpPushPop, Kind: kind},
		func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var q deque.Deque[int]

				for j := 0; j < Million; j++ {
					q.PushBack(j)
				}

				sum := 0
				for q.Len() > 0 {
					sum += q.PopBack()
				}

				harness.Consume(sum)
			}
		})

	s.Register(harness.Label{Size: HundredK, Op: harness.OpPushShift, Kind: kind},
		func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var q deque.Deque[int]

				for j := 0; j < HundredK; j++ {
					q.PushBack(j)
				}

				sum := 0
				for q.Len() > 0 {
					sum += q.PopFront()
				}

				harness.Consume(sum)
			}
		})

	s.Register(harness.Label{
		Size: HundredK, Op: harness.OpUnshiftShift, Kind: kind,
	}, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var q deque.Deque[int]

			for j := 0; j < HundredK; j++ {
				q.PushFront(j)
			}

			sum := 0
			for q.Len() > 0 {
				sum += q.PopFront()
			}

			harness.Consume(sum)
		}
	})
}

func registerSliceDeque(s *harness.Suite) {
	kind := kindSliceDeque

	s.Register(harness.Label{Size: Million, Op: harness.OpPush, Kind: kind},
		func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var q []int
				for j := 0; j < Million; j++ {
					q = append(q, j)
				}

				harness.Consume(len(q))
			}
		})

	s.Register(harness.Label{Size: Million, Op: harness.OpPushPop, Kind: kind},
		func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var q []int

				for j := 0; j < Million; j++ {
					q = append(q, j)
				}

				sum := 0
				for len(q) > 0 {
					sum += q[len(q)-1]
					q = q[:len(q)-1]
				}

				harness.Consume(sum)
			}
		})

	s.Register(harness.Label{Size: HundredK, Op: harness.OpPushShift, Kind: kind},
		func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var q []int

				for j := 0; j < HundredK; j++ {
					q = append(q, j)
				}

				sum := 0
				for len(q) > 0 {
					sum += q[0]
					q = q[1:]
				}

				harness.Consume(sum)
			}
		})

	// Front insertion shifts the whole slice each time, so this one is
	// quadratic on purpose.
	s.Register(harness.Label{
		Size: HundredK, Op: harness.OpUnshiftShift, Kind: kind,
	}, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var q []int

			for j := 0; j < HundredK; j++ {
				q = append(q, 0)
				copy(q[1:], q)
				q[0] = j
			}

			sum := 0
			for len(q) > 0 {
				sum += q[0]
				q = q[1:]
			}

			harness.Consume(sum)
		}
	})
}
