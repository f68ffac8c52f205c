// Package fsm provides a generic, embeddable finite-state-machine evaluation
// core: a transition table keyed by (source state, event) pairs, a
// deterministic dispatch algorithm with optional guard predicates and
// side-effecting actions, and graph serialization for visualization.
//
// The package is a decision engine for "what happens next" given the current
// state and an incoming event, meant to be embedded in protocol handlers, UI
// flow controllers, device drivers, and workflow logic. It deliberately owns
// nothing beyond the table and the current state: no persistence, no event
// queueing, no hierarchical states, no history.
//
// # Architecture
//
// Machine[S, E, C] stores transitions in a map keyed by a composite
// struct{src S; event E} for O(1) lookup, plus a first-insertion-order key
// slice so graph emission is stable across runs. States and events are
// opaque comparable identifiers supplied as type parameters; C is a
// caller-owned context type passed by pointer to guards and actions during a
// single dispatch call.
//
// Dispatch resolves one event to exactly one of three Result values:
//
//	OK            transition taken, action ran, state committed
//	NoTransition  no table entry for (current, event); state unchanged
//	GuardRejected guard declined; state unchanged, action not run
//
// These are ordinary return values, not errors; dispatch never fails.
// When a transition is taken the order is fixed: guard, then action (which
// still observes the source state), then commit. Registering a second
// transition for an occupied (source, event) pair replaces the first
// entirely (last write wins).
//
// # Usage
//
//	type Light int
//	type Tick int
//
//	const (
//	    Red Light = iota
//	    Green
//	    Yellow
//	)
//	const Timer Tick = 0
//
//	type Counter struct{ N int }
//
//	m := fsm.New[Light, Tick, Counter](Red,
//	    fsm.WithTransition(Red, Timer, Green,
//	        fsm.WithAction(func(c *Counter) { c.N++ }),
//	    ),
//	    fsm.WithTransition(Green, Timer, Yellow,
//	        fsm.WithAction(func(c *Counter) { c.N++ }),
//	    ),
//	    fsm.WithTransition(Yellow, Timer, Red,
//	        fsm.WithAction(func(c *Counter) { c.N++ }),
//	    ),
//	)
//
//	var c Counter
//	m.Dispatch(Timer, &c) // fsm.OK, now Green, c.N == 1
//
// # Variants
//
// Simple[S, E] is the void-context flavor whose guards and actions take no
// arguments; the variant is chosen at type-instantiation time. Synced[S, E, C]
// wraps a Machine in a sync.RWMutex for callers that share one machine across
// goroutines, since the bare Machine has no internal locking. Builder
// offers a fluent From/When/To/GuardedBy/Do chain as an alternative to
// functional options.
//
// # Visualization
//
// DOT renders the table as a Graphviz digraph, Mermaid as a stateDiagram-v2.
// Both walk the table in first-insertion order and stringify states and
// events through pluggable formatters (fmt.Sprint by default, overridable
// with WithStateFormatter and WithEventFormatter). The package only emits
// text; writing files and invoking a renderer are the caller's job.
//
// # Concurrency
//
// Every operation runs to completion without yielding or blocking, so the
// core takes no context.Context. Independent machine instances are fully
// isolated from one another.
package fsm
