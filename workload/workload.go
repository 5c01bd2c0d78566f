// Package workload generates deterministic integer key sequences for
// container benchmarking. A workload is a pure function of its spec:
// the same (size, domain, seed) always yields the same sequence, so
// benchmarks built on the same spec compare the same data.
package workload

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
)

// Mode selects how a workload's random source is seeded.
type Mode string

const (
	// FixedSeed derives the sequence from Spec.Seed. Required for any
	// benchmark whose numbers are compared against a baseline.
	FixedSeed Mode = "fixed"

	// Entropy draws the seed from the system entropy source once per
	// generation. Run-to-run variation is acceptable only for
	// stress-style benchmarks that are never compared numerically.
	Entropy Mode = "entropy"
)

// Spec describes a workload: Size values drawn uniformly from
// [0, Domain). Seed is ignored in Entropy mode.
type Spec struct {
	Size   int
	Domain int
	Seed   int64
	Mode   Mode
}

// Name returns a stable identifier for the spec, used as a cache key.
func (s Spec) Name() string {
	return fmt.Sprintf("%d/%d/%d/%s", s.Size, s.Domain, s.Seed, s.Mode)
}

// Workload holds a generated value sequence. It is immutable after
// generation; Values returns the backing slice and callers must not
// modify it.
type Workload struct {
	spec   Spec
	values []int
}

// Generate produces the value sequence for the given spec.
// Generation happens outside any timed region.
func Generate(spec Spec) (*Workload, error) {
	if spec.Size <= 0 {
		return nil, fmt.Errorf("workload size must be positive, got %d", spec.Size)
	}

	if spec.Domain <= 0 {
		return nil, fmt.Errorf("workload domain must be positive, got %d", spec.Domain)
	}

	seed := spec.Seed

	switch spec.Mode {
	case FixedSeed, "":
	case Entropy:
		var err error

		seed, err = entropySeed()
		if err != nil {
			return nil, fmt.Errorf("draw entropy seed: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown workload mode %q", spec.Mode)
	}

	rng := mrand.New(mrand.NewSource(seed))
	values := make([]int, spec.Size)

	for i := range values {
		values[i] = rng.Intn(spec.Domain)
	}

	return &Workload{spec: spec, values: values}, nil
}

// Spec returns the spec the workload was generated from.
func (w *Workload) Spec() Spec { return w.spec }

// Values returns the generated sequence. Read-only.
func (w *Workload) Values() []int { return w.values }

// Len returns the sequence length.
func (w *Workload) Len() int { return len(w.values) }

// CountInRange counts values v with lo <= v <= hi by linear scan.
// It is the reference against which container range queries are
// checked; it never runs inside a timed region.
func (w *Workload) CountInRange(lo, hi int) int {
	n := 0

	for _, v := range w.values {
		if v >= lo && v <= hi {
			n++
		}
	}

	return n
}

// CountDistinctInRange counts distinct values v with lo <= v <= hi by
// linear scan. It is the reference for unique-key containers, which
// collapse the duplicates CountInRange counts.
func (w *Workload) CountDistinctInRange(lo, hi int) int {
	seen := make(map[int]struct{})

	for _, v := range w.values {
		if v >= lo && v <= hi {
			seen[v] = struct{}{}
		}
	}

	return len(seen)
}

// Sequential returns the keys 0..size-1 in increasing order, for
// benchmarks that isolate monotonic-insertion cost from random-order
// insertion cost.
func Sequential(size int) []int {
	keys := make([]int, size)
	for i := range keys {
		keys[i] = i
	}

	return keys
}

func entropySeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}

	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}
