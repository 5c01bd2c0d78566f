package harness

// Package-level sinks make trial results externally observable so the
// compiler cannot prove the benchmarked work unused and eliminate it.
// Every trial body routes its result (a count, a sum, a length)
// through Consume or one of its typed variants exactly once per
// iteration of the measured loop, the single sanctioned
// dead-code-elimination defeat in this harness.
var (
	sinkInt  int
	sinkBool bool
)

// Consume marks an int result as observed.
func Consume(v int) { sinkInt = v }

// ConsumeBool marks a bool result as observed.
func ConsumeBool(v bool) { sinkBool = v }

// Sink returns the last consumed int. Exists so tests can verify the
// sink actually observes values; benchmark code never reads it.
func Sink() int { return sinkInt }

// SinkBool returns the last consumed bool.
func SinkBool() bool { return sinkBool }
