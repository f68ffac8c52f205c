package fsm

// Result reports the outcome of a single Dispatch call. The taxonomy is
// deliberately total: every dispatch produces exactly one of the three
// values below, never an error or a panic. NoTransition and GuardRejected
// are expected, recoverable outcomes the caller inspects, not faults.
type Result int

const (
	// OK means a transition was found, its guard passed (or was absent),
	// its action ran, and the state change was committed.
	OK Result = iota
	// NoTransition means the table has no entry for the (current state,
	// event) pair. The state is unchanged.
	NoTransition
	// GuardRejected means a matching entry exists but its guard returned
	// false. The state is unchanged and the action was not invoked.
	GuardRejected
)

// String returns a stable snake_case label, handy for logs and metrics.
func (r Result) String() string {
	switch r {
	case OK:
		return "ok"
	case NoTransition:
		return "no_transition"
	case GuardRejected:
		return "guard_rejected"
	default:
		return "unknown"
	}
}
