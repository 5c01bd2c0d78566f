package harness

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/kevholder/dsbench/fixture"
	"github.com/kevholder/dsbench/workload"
)

// Body is one trial body. The runtime invokes it repeatedly and
// decides iteration count and warm-up; the body follows the trial
// protocol documented on this package.
type Body func(b *testing.B)

// Benchmark pairs a label with its trial body.
type Benchmark struct {
	Label Label
	Body  Body
}

// Suite owns everything a set of comparable benchmarks shares: the
// fixture registry, the workload pool, and the registered bodies.
// A suite is homogeneous in seeding mode; mixing fixed-seed and
// entropy-seeded workloads inside one comparative group would make
// its numbers incomparable, so Workload rejects the attempt.
type Suite struct {
	fixtures *fixture.Registry
	logger   *slog.Logger
	seeding  workload.Mode
	benches  []Benchmark
	labels   map[string]struct{}
}

// NewSuite creates an empty suite whose workloads all use the given
// seeding mode.
func NewSuite(logger *slog.Logger, seeding workload.Mode) *Suite {
	if seeding == "" {
		seeding = workload.FixedSeed
	}

	return &Suite{
		fixtures: fixture.NewRegistry(),
		logger:   logger,
		seeding:  seeding,
		labels:   make(map[string]struct{}),
	}
}

// Fixtures returns the suite's shared fixture registry.
func (s *Suite) Fixtures() *fixture.Registry { return s.fixtures }

// Seeding returns the suite's workload seeding mode.
func (s *Suite) Seeding() workload.Mode { return s.seeding }

// Workload returns the cached value pool for the given spec,
// generating it on first use. Many benchmark bodies share one pool so
// relative comparisons run the same data. Panics if the spec's mode
// disagrees with the suite's seeding mode; that is a programming
// error, not a runtime condition.
func (s *Suite) Workload(spec workload.Spec) (*workload.Workload, error) {
	if spec.Mode == "" {
		spec.Mode = s.seeding
	}

	if spec.Mode != s.seeding {
		panic(fmt.Sprintf(
			"workload mode %q in a %q-seeded suite", spec.Mode, s.seeding,
		))
	}

	return fixture.Ensure(s.fixtures, "workload/"+spec.Name(),
		func() (*workload.Workload, error) {
			return workload.Generate(spec)
		})
}

// Register adds a benchmark to the suite. Duplicate labels panic:
// two bodies under one label would report indistinguishable results.
func (s *Suite) Register(label Label, body Body) {
	name := label.String()
	if _, dup := s.labels[name]; dup {
		panic(fmt.Sprintf("duplicate benchmark label %q", name))
	}

	s.labels[name] = struct{}{}
	s.benches = append(s.benches, Benchmark{Label: label, Body: body})
}

// Benchmarks returns the registered benchmarks in registration order.
func (s *Suite) Benchmarks() []Benchmark { return s.benches }

// Run executes every registered benchmark whose label matches filter
// (nil matches all) and returns the collected results. Bodies run
// sequentially on the calling goroutine; the context is checked
// between trials, not inside them.
func (s *Suite) Run(ctx context.Context, filter *regexp.Regexp) ([]Result, error) {
	results := make([]Result, 0, len(s.benches))

	for _, bm := range s.benches {
		name := bm.Label.String()

		if filter != nil && !filter.MatchString(name) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("benchmark run cancelled: %w", err)
		}

		s.logger.InfoContext(ctx, "running benchmark",
			slog.String("label", name),
		)

		start := time.Now()
		r := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			bm.Body(b)
		})
		elapsed := time.Since(start)

		result := Result{
			Label:       name,
			Iterations:  r.N,
			NsPerOp:     r.NsPerOp(),
			AllocsPerOp: r.AllocsPerOp(),
			BytesPerOp:  r.AllocedBytesPerOp(),
			ElapsedMs:   elapsed.Milliseconds(),
		}

		s.logger.InfoContext(ctx, "benchmark finished",
			slog.String("label", name),
			slog.Int("iterations", result.Iterations),
			slog.Int64("ns_per_op", result.NsPerOp),
			slog.Duration("wall_time", elapsed),
		)

		results = append(results, result)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no benchmarks matched")
	}

	return results, nil
}
