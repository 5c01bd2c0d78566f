package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/kevholder/dsbench/harness"
)

func TestGenerateGroupsByOperation(t *testing.T) {
	results := []harness.Result{
		{Label: "1M has btree-set", Iterations: 10, NsPerOp: 1000,
			AllocsPerOp: 0, BytesPerOp: 0, ElapsedMs: 100},
		{Label: "1M has rbtree-set", Iterations: 10, NsPerOp: 2000,
			AllocsPerOp: 0, BytesPerOp: 0, ElapsedMs: 200},
		{Label: "1M iterate btree-set", Iterations: 5, NsPerOp: 9000,
			AllocsPerOp: 1, BytesPerOp: 64, ElapsedMs: 50},
	}

	var buf bytes.Buffer
	if err := Generate(&buf, results); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "## Benchmark Results") {
		t.Error("expected report header")
	}
	if !strings.Contains(output, "1M has rbtree-set") {
		t.Error("expected rbtree-set row")
	}
	// rbtree-set is twice the group's fastest; iterate is alone in its
	// group and stays at 1.00x despite being slowest overall.
	if !strings.Contains(output, "2.00x") {
		t.Error("expected 2.00x for the slower kind in the has group")
	}
	if strings.Count(output, "1.00x") != 2 {
		t.Errorf("expected two 1.00x rows, output:\n%s", output)
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, nil)
	if err == nil {
		t.Error("expected error for empty results")
	}
}

func TestGenerateJSON(t *testing.T) {
	results := []harness.Result{
		{Label: "1M ins btree-map (RAND)", Iterations: 3, NsPerOp: 5000000},
	}

	var buf bytes.Buffer
	if err := GenerateJSON(&buf, results); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	var parsed []harness.Result
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(parsed) != 1 {
		t.Fatalf("expected 1 result, got %d", len(parsed))
	}
	if parsed[0].Label != "1M ins btree-map (RAND)" {
		t.Errorf("label = %q, want 1M ins btree-map (RAND)", parsed[0].Label)
	}
}

func TestGroupKey(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"1M has btree-set", "1M has"},
		{"1M ins btree-map (RAND)", "1M ins (RAND)"},
		{"1M upd (SEQ)", "1M upd (SEQ)"},
		{"1M push&pop", "1M push&pop"},
		{"100K rangeSearch rbtree-set", "100K rangeSearch"},
	}

	for _, tt := range tests {
		got := groupKey(tt.label)
		if got != tt.want {
			t.Errorf("groupKey(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestFormatNs(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0ns"},
		{999, "999ns"},
		{1000, "1µs"},
		{1500, "1.5µs"},
		{1000000, "1ms"},
		{2500000, "2.5ms"},
		{1000000000, "1s"},
		{1500000000, "1.5s"},
	}

	for _, tt := range tests {
		got := formatNs(tt.input)
		if got != tt.want {
			t.Errorf("formatNs(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "-"},
		{512, "512 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
	}

	for _, tt := range tests {
		got := formatBytes(tt.input)
		if got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
