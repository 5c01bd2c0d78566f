// Package main provides the CLI entry point for dsbench, a
// reproducible container micro-benchmark harness.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/kevholder/dsbench/benchmarks"
	"github.com/kevholder/dsbench/report"
	"github.com/kevholder/dsbench/workload"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "dsbench",
		Short: "Reproducible container micro-benchmarks",
		Long: `Dsbench runs deterministic micro-benchmarks over ordered, hashed,
multi-valued and sequence containers. Every trial draws its keys from a shared
fixed-seed workload pool, so numbers are comparable across runs, machines and
the external baselines that share the label convention.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newListCmd(logger))

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		families   []string
		filter     string
		seed       int64
		entropy    bool
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run benchmarks and print a comparison report",
		Long: `Register the selected benchmark families, run every trial whose label
matches the filter, and print a markdown comparison table (or JSON).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmarks(cmd.Context(), logger, runConfig{
				families:   families,
				filter:     filter,
				seed:       seed,
				entropy:    entropy,
				outputJSON: outputJSON,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&families, "families", nil,
		"Benchmark families to run (default: all)")
	flags.StringVar(&filter, "filter", "",
		"Regexp over benchmark labels; empty runs everything")
	flags.Int64Var(&seed, "seed", benchmarks.DefaultSeed,
		"Workload seed for fixed-seed runs")
	flags.BoolVar(&entropy, "entropy", false,
		"Draw workload seeds from OS entropy (results not comparable)")
	flags.BoolVar(&outputJSON, "json", false,
		"Output results as JSON instead of a markdown table")

	return cmd
}

func newListCmd(logger *slog.Logger) *cobra.Command {
	var families []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered benchmark labels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := benchmarks.NewSuite(logger, benchmarks.Options{
				Families: families,
			})
			if err != nil {
				return err
			}

			for _, bm := range s.Benchmarks() {
				fmt.Fprintln(cmd.OutOrStdout(), bm.Label)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&families, "families", nil,
		"Benchmark families to list (default: all)")

	return cmd
}

type runConfig struct {
	families   []string
	filter     string
	seed       int64
	entropy    bool
	outputJSON bool
}

func runBenchmarks(
	ctx context.Context,
	logger *slog.Logger,
	cfg runConfig,
) error {
	var filter *regexp.Regexp

	if cfg.filter != "" {
		var err error

		filter, err = regexp.Compile(cfg.filter)
		if err != nil {
			return fmt.Errorf("compile filter: %w", err)
		}
	}

	mode := workload.FixedSeed
	if cfg.entropy {
		mode = workload.Entropy
	}

	logger.InfoContext(ctx, "starting benchmarks",
		slog.Any("families", cfg.families),
		slog.String("filter", cfg.filter),
		slog.Int64("seed", cfg.seed),
		slog.String("mode", string(mode)),
	)

	s, err := benchmarks.NewSuite(logger, benchmarks.Options{
		Seed:     cfg.seed,
		Mode:     mode,
		Families: cfg.families,
	})
	if err != nil {
		return fmt.Errorf("build suite: %w", err)
	}

	results, err := s.Run(ctx, filter)
	if err != nil {
		return fmt.Errorf("run benchmarks: %w", err)
	}

	if cfg.outputJSON {
		if err := report.GenerateJSON(os.Stdout, results); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	} else {
		if err := report.Generate(os.Stdout, results); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	}

	logger.InfoContext(ctx, "benchmarks complete",
		slog.Int("results", len(results)),
	)

	return nil
}
