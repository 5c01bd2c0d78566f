package harness

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/kevholder/dsbench/workload"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSuiteWorkloadCached(t *testing.T) {
	s := NewSuite(testLogger(), workload.FixedSeed)
	spec := workload.Spec{Size: 100, Domain: 50, Seed: 7, Mode: workload.FixedSeed}

	w1, err := s.Workload(spec)
	if err != nil {
		t.Fatalf("first workload failed: %v", err)
	}

	w2, err := s.Workload(spec)
	if err != nil {
		t.Fatalf("second workload failed: %v", err)
	}

	if w1 != w2 {
		t.Error("same spec returned distinct workload pools")
	}

	if s.Fixtures().Builds("workload/"+spec.Name()) != 1 {
		t.Error("workload pool generated more than once")
	}
}

func TestSuiteWorkloadDefaultsMode(t *testing.T) {
	s := NewSuite(testLogger(), workload.FixedSeed)

	w, err := s.Workload(workload.Spec{Size: 10, Domain: 10, Seed: 1})
	if err != nil {
		t.Fatalf("workload failed: %v", err)
	}

	if w.Spec().Mode != workload.FixedSeed {
		t.Errorf("mode = %q, want %q", w.Spec().Mode, workload.FixedSeed)
	}
}

func TestSuiteRejectsMixedSeeding(t *testing.T) {
	s := NewSuite(testLogger(), workload.FixedSeed)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for mixed seeding modes")
		}
	}()

	s.Workload(workload.Spec{Size: 10, Domain: 10, Mode: workload.Entropy})
}

func TestRegisterRejectsDuplicateLabels(t *testing.T) {
	s := NewSuite(testLogger(), workload.FixedSeed)
	label := Label{Size: 1000, Op: OpAdd, Kind: "btree-set"}

	s.Register(label, func(b *testing.B) {})

	defer func() {
		if recover() == nil {
			t.Error("expected panic for duplicate label")
		}
	}()

	s.Register(label, func(b *testing.B) {})
}

func TestSuiteRunFilters(t *testing.T) {
	s := NewSuite(testLogger(), workload.FixedSeed)

	ran := map[string]int{}

	body := func(name string) Body {
		return func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Consume(i)
			}
			ran[name]++
		}
	}

	s.Register(Label{Size: 1000, Op: OpAdd, Kind: "btree-set"}, body("add"))
	s.Register(Label{Size: 1000, Op: OpHas, Kind: "btree-set"}, body("has"))

	results, err := s.Run(context.Background(), regexp.MustCompile(`has`))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	if results[0].Label != "1K has btree-set" {
		t.Errorf("label = %q, want %q", results[0].Label, "1K has btree-set")
	}

	if results[0].Iterations <= 0 {
		t.Error("iterations not recorded")
	}

	if ran["add"] != 0 {
		t.Error("filtered-out benchmark still ran")
	}
}

func TestSuiteRunNoMatch(t *testing.T) {
	s := NewSuite(testLogger(), workload.FixedSeed)
	s.Register(Label{Size: 10, Op: OpAdd}, func(b *testing.B) {})

	if _, err := s.Run(context.Background(), regexp.MustCompile(`nope`)); err == nil {
		t.Error("expected error when nothing matches")
	}
}

func TestSuiteRunCancelled(t *testing.T) {
	s := NewSuite(testLogger(), workload.FixedSeed)
	s.Register(Label{Size: 10, Op: OpAdd}, func(b *testing.B) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Run(ctx, nil); err == nil {
		t.Error("expected error from cancelled context")
	}
}
