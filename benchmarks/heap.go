package benchmarks

import (
	stdheap "container/heap"
	"testing"

	"github.com/emirpasic/gods/v2/queues/priorityqueue"

	"github.com/kevholder/dsbench/harness"
	"github.com/kevholder/dsbench/workload"
)

const (
	kindStdHeap = "std-heap"
	kindGodsPQ  = "gods-pq"
)

// intHeap is a min-heap for container/heap.
type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *intHeap) Push(x any) {
	*h = append(*h, x.(int))
}

func (h *intHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}

// Heap order depends on arrival order, so these draw random values
// rather than a sequential ramp.
func registerHeaps(s *harness.Suite, seed int64) {
	spec := workload.Spec{Size: HundredK, Domain: HundredK, Seed: seed}

	s.Register(harness.Label{Size: HundredK, Op: harness.OpAdd, Kind: kindStdHeap},
		func(b *testing.B) {
			values := mustWorkload(b, s, spec).Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				h := make(intHeap, 0, HundredK)
				for _, v := range values {
					stdheap.Push(&h, v)
				}

				harness.Consume(h.Len())
			}
		})

	s.Register(harness.Label{
		Size: HundredK, Op: harness.OpAddPoll, Kind: kindStdHeap,
	}, func(b *testing.B) {
		values := mustWorkload(b, s, spec).Values()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			h := make(intHeap, 0, HundredK)

			for _, v := range values {
				stdheap.Push(&h, v)
			}

			sum := 0
			for h.Len() > 0 {
				sum += stdheap.Pop(&h).(int)
			}

			harness.Consume(sum)
		}
	})

	s.Register(harness.Label{Size: HundredK, Op: harness.OpAdd, Kind: kindGodsPQ},
		func(b *testing.B) {
			values := mustWorkload(b, s, spec).Values()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				pq := priorityqueue.NewWith(func(a, b int) int { return a - b })
				for _, v := range values {
					pq.Enqueue(v)
				}

				harness.Consume(pq.Size())
			}
		})

	s.Register(harness.Label{
		Size: HundredK, Op: harness.OpAddPoll, Kind: kindGodsPQ,
	}, func(b *testing.B) {
		values := mustWorkload(b, s, spec).Values()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			pq := priorityqueue.NewWith(func(a, b int) int { return a - b })

			for _, v := range values {
				pq.Enqueue(v)
			}

			sum := 0

			for {
				v, ok := pq.Dequeue()
				if !ok {
					break
				}

				sum += v
			}

			harness.Consume(sum)
		}
	})
}
