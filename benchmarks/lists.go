package benchmarks

import (
	stdlist "container/list"
	"testing"

	"github.com/emirpasic/gods/v2/lists/doublylinkedlist"
	"github.com/emirpasic/gods/v2/lists/singlylinkedlist"

	"github.com/kevholder/dsbench/harness"
)

// Linked-list kinds.
const (
	kindSList   = "gods-slist"
	kindDList   = "gods-dlist"
	kindStdList = "std-list"
)

// seqList is the surface the list benchmarks share. Values are
// synthetic sequence positions; list benchmarks measure structure
// cost, not key distribution, so no workload is involved.
type seqList interface {
	push(v int)
	unshift(v int)
	shift() (int, bool)
	insertAt(i, v int)
	length() int
}

type godsSList struct {
	l *singlylinkedlist.List[int]
}

func (s *godsSList) push(v int)        { s.l.Append(v) }
func (s *godsSList) unshift(v int)     { s.l.Prepend(v) }
func (s *godsSList) insertAt(i, v int) { s.l.Insert(i, v) }
func (s *godsSList) length() int       { return s.l.Size() }

func (s *godsSList) shift() (int, bool) {
	v, ok := s.l.Get(0)
	if ok {
		s.l.Remove(0)
	}

	return v, ok
}

type godsDList struct {
	l *doublylinkedlist.List[int]
}

func (d *godsDList) push(v int)        { d.l.Append(v) }
func (d *godsDList) unshift(v int)     { d.l.Prepend(v) }
func (d *godsDList) insertAt(i, v int) { d.l.Insert(i, v) }
func (d *godsDList) length() int       { return d.l.Size() }

func (d *godsDList) shift() (int, bool) {
	v, ok := d.l.Get(0)
	if ok {
		d.l.Remove(0)
	}

	return v, ok
}

type stdList struct {
	l *stdlist.List
}

func (s *stdList) push(v int)    { s.l.PushBack(v) }
func (s *stdList) unshift(v int) { s.l.PushFront(v) }
func (s *stdList) length() int   { return s.l.Len() }

func (s *stdList) shift() (int, bool) {
	front := s.l.Front()
	if front == nil {
		return 0, false
	}

	return s.l.Remove(front).(int), true
}

func (s *stdList) insertAt(i, v int) {
	e := s.l.Front()
	for j := 0; j < i && e != nil; j++ {
		e = e.Next()
	}

	if e == nil {
		s.l.PushBack(v)

		return
	}

	s.l.InsertBefore(v, e)
}

func newSeqList(kind string) seqList {
	switch kind {
	case kindSList:
		return &godsSList{l: singlylinkedlist.New[int]()}
	case kindDList:
		return &godsDList{l: doublylinkedlist.New[int]()}
	default:
		return &stdList{l: stdlist.New()}
	}
}

func registerLists(s *harness.Suite, _ int64) {
	for _, kind := range []string{kindSList, kindDList, kindStdList} {
		kind := kind

		s.Register(harness.Label{Size: HundredK, Op: harness.OpPush, Kind: kind},
			func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					l := newSeqList(kind)
					for j := 0; j < HundredK; j++ {
						l.push(j)
					}

					harness.Consume(l.length())
				}
			})

		s.Register(harness.Label{Size: HundredK, Op: harness.OpUnshift, Kind: kind},
			func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					l := newSeqList(kind)
					for j := 0; j < HundredK; j++ {
						l.unshift(j)
					}

					harness.Consume(l.length())
				}
			})

		s.Register(harness.Label{
			Size: HundredK, Op: harness.OpUnshiftShift, Kind: kind,
		}, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				l := newSeqList(kind)

				for j := 0; j < HundredK; j++ {
					l.unshift(j)
				}

				sum := 0

				for {
					v, ok := l.shift()
					if !ok {
						break
					}

					sum += v
				}

				harness.Consume(sum)
			}
		})

		// Quadratic for every kind: each insert walks to the middle.
		s.Register(harness.Label{Size: TenK, Op: harness.OpAddAtMid, Kind: kind},
			func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					l := newSeqList(kind)
					for j := 0; j < TenK; j++ {
						l.insertAt(l.length()/2, j)
					}

					harness.Consume(l.length())
				}
			})
	}

	// Insertion at a held cursor is O(1) only where the list hands out
	// stable element references; of the kinds here that is container/list.
	s.Register(harness.Label{
		Size: TenK, Op: harness.OpAddBeforeCursor, Kind: kindStdList,
	}, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			l := stdlist.New()
			cursor := l.PushBack(-1)

			for j := 0; j < TenK; j++ {
				l.InsertBefore(j, cursor)
			}

			harness.Consume(l.Len())
		}
	})
}
