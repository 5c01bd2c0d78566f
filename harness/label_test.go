package harness

import "testing"

func TestLabelString(t *testing.T) {
	tests := []struct {
		name  string
		label Label
		want  string
	}{
		{
			name:  "full",
			label: Label{Size: 1_000_000, Op: OpIns, Kind: "btree-map", Mode: ModeRand},
			want:  "1M ins btree-map (RAND)",
		},
		{
			name:  "no mode",
			label: Label{Size: 100_000, Op: OpRangeSearch, Kind: "rbtree-set"},
			want:  "100K rangeSearch rbtree-set",
		},
		{
			name:  "no kind",
			label: Label{Size: 1_000_000, Op: OpPushPop},
			want:  "1M push&pop",
		},
		{
			name:  "mode without kind",
			label: Label{Size: 1_000_000, Op: OpUpd, Mode: ModeSeq},
			want:  "1M upd (SEQ)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.label.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1_000_000, "1M"},
		{2_000_000, "2M"},
		{100_000, "100K"},
		{10_000, "10K"},
		{1_000, "1K"},
		{2_500, "2500"},
		{999, "999"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.n); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestConsumeObserves(t *testing.T) {
	Consume(41)
	Consume(42)

	if Sink() != 42 {
		t.Errorf("Sink() = %d, want 42", Sink())
	}

	ConsumeBool(true)

	if !SinkBool() {
		t.Error("SinkBool() = false, want true")
	}
}
