// Package harness owns the benchmark execution model: the trial
// protocol each body follows, the operation taxonomy and label
// convention, and the suite that runs registered bodies through the
// testing runtime.
//
// The trial protocol is a contract, not a framework. A body invoked
// by the runtime must:
//
//  1. do one-time setup (workload access, fixture lookup) before the
//     measured region, or include construction in the measured region
//     when build cost is the subject;
//  2. route every observable result through Consume once per
//     iteration so the work cannot be eliminated;
//  3. depend on no residual state from earlier trials other than a
//     shared read-only fixture.
package harness

// Result holds the measurements for one benchmark, in the shape the
// report layer consumes.
type Result struct {
	Label       string `json:"label"`
	Iterations  int    `json:"iterations"`
	NsPerOp     int64  `json:"ns_per_op"`
	AllocsPerOp int64  `json:"allocs_per_op"`
	BytesPerOp  int64  `json:"bytes_per_op"`
	ElapsedMs   int64  `json:"elapsed_ms"`
}
