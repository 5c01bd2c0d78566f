package harness

import (
	"fmt"
	"strings"
)

// Op names the operation a benchmark measures. The verbs follow the
// label convention shared with the external comparison targets, so a
// result line is matchable across runtimes.
type Op string

// Canonical operation verbs, grouped by taxonomy category.
const (
	// Build: construct from empty by repeated insertion.
	OpAdd Op = "add" // sets and set-like containers
	OpSet Op = "set" // map-like containers
	OpIns Op = "ins" // tracked SEQ vs RAND via Label.Mode

	// Point lookup.
	OpHas Op = "has"
	OpGet Op = "get"

	// Range query and ordered navigation.
	OpRangeSearch  Op = "rangeSearch"
	OpNavigable    Op = "navigable"
	OpCeilingFloor Op = "ceiling/floor"
	OpFirstLast    Op = "first/last"

	// Iteration.
	OpIterate  Op = "iterate"
	OpKeysOnly Op = "keys-only"

	// Update and delete.
	OpUpd       Op = "upd"
	OpAddDelete Op = "add&delete"
	OpDeleteOne Op = "delete-one"

	// Build+query combos.
	OpBuildHas   Op = "build+has"
	OpBuildGet   Op = "build+get"
	OpBuildCount Op = "build+count"
	OpSetGet     Op = "set&get"
	OpAddHas     Op = "add&has"

	// Multi-valued extras.
	OpCount        Op = "count"
	OpSize         Op = "size"
	OpDistinctSize Op = "distinctSize"

	// Sequence containers.
	OpPush            Op = "push"
	OpUnshift         Op = "unshift"
	OpPushPop         Op = "push&pop"
	OpPushShift       Op = "push&shift"
	OpUnshiftShift    Op = "unshift&shift"
	OpAddAtMid        Op = "addAt(mid)"
	OpAddBeforeCursor Op = "addBefore(cursor)"
	OpAddPoll         Op = "add&poll"
)

// Key-order modes for insertion/update benchmarks. Sequential and
// random order are labelled separately because tree rebalancing and
// hash probing amortize differently under the two.
const (
	ModeSeq  = "SEQ"
	ModeRand = "RAND"
)

// Label identifies one benchmark: element count, operation verb,
// container kind and optional key-order mode. Rendered as
// "<size> <op> <kind> (<mode>)", e.g. "1M ins btree-map (RAND)".
type Label struct {
	Size int
	Op   Op
	Kind string
	Mode string
}

func (l Label) String() string {
	var b strings.Builder

	b.WriteString(FormatSize(l.Size))
	b.WriteByte(' ')
	b.WriteString(string(l.Op))

	if l.Kind != "" {
		b.WriteByte(' ')
		b.WriteString(l.Kind)
	}

	if l.Mode != "" {
		b.WriteString(" (")
		b.WriteString(l.Mode)
		b.WriteByte(')')
	}

	return b.String()
}

// FormatSize renders an element count the way result labels expect:
// 1000000 -> "1M", 100000 -> "100K", 2500 -> "2500".
func FormatSize(n int) string {
	switch {
	case n >= 1_000_000 && n%1_000_000 == 0:
		return fmt.Sprintf("%dM", n/1_000_000)
	case n >= 1_000 && n%1_000 == 0:
		return fmt.Sprintf("%dK", n/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
