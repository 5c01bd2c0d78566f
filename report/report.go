// Package report formats benchmark results into comparison tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kevholder/dsbench/harness"
)

// Generate writes a markdown comparison table for the given results.
// The "vs fastest" column compares kinds within one comparison group,
// which is everything the label shares except the container kind.
func Generate(w io.Writer, results []harness.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fastest := fastestPerGroup(results)

	// Header.
	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	// Table.
	fmt.Fprintln(w, "| Label | Iterations | Time/op | B/op "+
		"| Allocs/op | vs fastest |")
	fmt.Fprintln(w, "|-------|------------|---------|------"+
		"|-----------|------------|")

	for _, r := range results {
		ratio := 1.0
		if base := fastest[groupKey(r.Label)]; base > 0 && r.NsPerOp > 0 {
			ratio = float64(r.NsPerOp) / float64(base)
		}

		fmt.Fprintf(w, "| %s | %d | %s | %s | %d | %.2fx |\n",
			r.Label,
			r.Iterations,
			formatNs(r.NsPerOp),
			formatBytes(r.BytesPerOp),
			r.AllocsPerOp,
			ratio,
		)
	}

	return nil
}

// GenerateJSON writes results as JSON to w.
func GenerateJSON(w io.Writer, results []harness.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

// groupKey strips the container kind out of a rendered label. Labels
// read "<size> <op> <kind> (<mode>)" with kind and mode optional, so
// the key keeps the first two fields plus any trailing mode marker.
func groupKey(label string) string {
	fields := strings.Fields(label)
	if len(fields) < 2 {
		return label
	}

	key := fields[0] + " " + fields[1]

	if last := fields[len(fields)-1]; len(fields) > 2 && strings.HasPrefix(last, "(") {
		key += " " + last
	}

	return key
}

func fastestPerGroup(results []harness.Result) map[string]int64 {
	fastest := make(map[string]int64)

	for _, r := range results {
		if r.NsPerOp <= 0 {
			continue
		}

		key := groupKey(r.Label)
		if best, ok := fastest[key]; !ok || r.NsPerOp < best {
			fastest[key] = r.NsPerOp
		}
	}

	return fastest
}

func formatNs(ns int64) string {
	switch {
	case ns < 1_000:
		return fmt.Sprintf("%dns", ns)
	case ns < 1_000_000:
		return trimZeros(fmt.Sprintf("%.1f", float64(ns)/1_000)) + "µs"
	case ns < 1_000_000_000:
		return trimZeros(fmt.Sprintf("%.1f", float64(ns)/1_000_000)) + "ms"
	default:
		return trimZeros(fmt.Sprintf("%.2f", float64(ns)/1_000_000_000)) + "s"
	}
}

func formatBytes(b int64) string {
	if b <= 0 {
		return "-"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(b)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	return trimZeros(fmt.Sprintf("%.1f", size)) + " " + units[unit]
}

func trimZeros(s string) string {
	s = strings.TrimRight(s, "0")

	return strings.TrimRight(s, ".")
}
