package benchmarks

import (
	"testing"

	"github.com/emirpasic/gods/v2/queues/arrayqueue"
	"github.com/emirpasic/gods/v2/stacks/arraystack"

	"github.com/kevholder/dsbench/harness"
)

const (
	kindGodsQueue  = "gods-queue"
	kindGodsStack  = "gods-stack"
	kindSliceStack = "slice-stack"
)

func registerQueues(s *harness.Suite, _ int64) {
	kind := kindGodsQueue

	s.Register(harness.Label{Size: Million, Op: harness.OpPush, Kind: kind},
		func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				q := arrayqueue.New[int]()
				for j := 0; j < Million; j++ {
					q.Enqueue(j)
				}

				harness.Consume(q.Size())
			}
		})

	s.Register(harness.Label{Size: HundredK, Op: harness.OpPushShift, Kind: kind},
		func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				q := arrayqueue.New[int]()

				for j := 0; j < HundredK; j++ {
					q.Enqueue(j)
				}

				sum := 0

				for {
					v, ok := q.Dequeue()
					if !ok {
						break
					}

					sum += v
				}

				harness.Consume(sum)
			}
		})
}

func registerStacks(s *harness.Suite, _ int64) {
	s.Register(harness.Label{Size: Million, Op: harness.OpPush, Kind: kindGodsStack},
		func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				st := arraystack.New[int]()
				for j := 0; j < Million; j++ {
					st.Push(j)
				}

				harness.Consume(st.Size())
			}
		})

	s.Register(harness.Label{
		Size: Million, Op: harness.OpPushPop, Kind: kindGodsStack,
	}, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			st := arraystack.New[int]()

			for j := 0; j < Million; j++ {
				st.Push(j)
			}

			sum := 0

			for {
				v, ok := st.Pop()
				if !ok {
					break
				}

				sum += v
			}

			harness.Consume(sum)
		}
	})

	s.Register(harness.Label{Size: Million, Op: harness.OpPush, Kind: kindSliceStack},
		func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var st []int
				for j := 0; j < Million; j++ {
					st = append(st, j)
				}

				harness.Consume(len(st))
			}
		})

	s.Register(harness.Label{
		Size: Million, Op: harness.OpPushPop, Kind: kindSliceStack,
	}, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var st []int

			for j := 0; j < Million; j++ {
				st = append(st, j)
			}

			sum := 0
			for len(st) > 0 {
				sum += st[len(st)-1]
				st = st[:len(st)-1]
			}

			harness.Consume(sum)
		}
	})
}
