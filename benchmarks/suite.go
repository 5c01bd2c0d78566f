// Package benchmarks registers the per-container trial bodies on a
// harness suite. Each family file is a repetitive application of the
// harness core: fetch the shared workload, take or build a container,
// run one operation category per body, consume the result.
package benchmarks

import (
	"fmt"
	"log/slog"
	"sort"
	"testing"

	"github.com/kevholder/dsbench/harness"
	"github.com/kevholder/dsbench/workload"
)

// Benchmark sizes, matching the external comparison targets.
const (
	Million  = 1_000_000
	HundredK = 100_000
	TenK     = 10_000
)

// DefaultSeed is the fixed seed every comparative run shares. Results
// produced under a different seed are not comparable against
// published baselines.
const DefaultSeed = 42

// Options configures suite construction.
type Options struct {
	// Seed for fixed-seed workloads; DefaultSeed when zero.
	Seed int64

	// Mode selects the workload seeding mode for the whole suite.
	// Defaults to workload.FixedSeed.
	Mode workload.Mode

	// Families restricts registration to the named families.
	// Empty means all.
	Families []string
}

type registerFunc func(s *harness.Suite, seed int64)

var families = map[string]registerFunc{
	"ordered": registerOrdered,
	"multi":   registerMulti,
	"hash":    registerHash,
	"list":    registerLists,
	"deque":   registerDeques,
	"queue":   registerQueues,
	"stack":   registerStacks,
	"heap":    registerHeaps,
}

// Families returns the registrable family names, sorted.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// NewSuite builds a suite with the requested families registered.
func NewSuite(logger *slog.Logger, opts Options) (*harness.Suite, error) {
	if opts.Seed == 0 {
		opts.Seed = DefaultSeed
	}

	if opts.Mode == "" {
		opts.Mode = workload.FixedSeed
	}

	names := opts.Families
	if len(names) == 0 {
		names = Families()
	}

	s := harness.NewSuite(logger, opts.Mode)

	for _, name := range names {
		register, ok := families[name]
		if !ok {
			return nil, fmt.Errorf("unknown benchmark family %q", name)
		}

		register(s, opts.Seed)
	}

	return s, nil
}

// mustWorkload fetches the cached value pool for spec. Generation is
// untimed: callers fetch before the measured region starts.
func mustWorkload(b *testing.B, s *harness.Suite, spec workload.Spec) *workload.Workload {
	b.Helper()

	w, err := s.Workload(spec)
	if err != nil {
		b.Fatalf("workload %s: %v", spec.Name(), err)
	}

	return w
}
