package fsm

// Guard decides whether a transition may be taken. It receives the caller's
// context object for the duration of the call and must not retain it.
// A nil Guard always passes.
type Guard[C any] func(ctx *C) bool

// Action runs side effects when a transition is taken. It executes after the
// guard passes and before the state change is committed, so the machine still
// reports the source state while the action runs. A nil Action is a no-op.
type Action[C any] func(ctx *C)

// Transition is a single table entry: when the machine is in Src and Event
// arrives, move to Dst, provided Guard (if set) returns true, running Action
// (if set) on the way.
type Transition[S, E comparable, C any] struct {
	Src    S
	Event  E
	Dst    S
	Guard  Guard[C]
	Action Action[C]
}

// tableKey composes the lookup key. Key uniqueness per (source, event) pair
// is the only property dispatch depends on.
type tableKey[S, E comparable] struct {
	src   S
	event E
}

// Machine is a table-driven finite state machine. S identifies states, E
// identifies events, and C is the caller-owned context passed by pointer to
// guards and actions. A Machine assumes exclusive access by a single logical
// owner; wrap it in Synced to share it across goroutines.
//
// The zero value is not usable; construct machines with New.
type Machine[S, E comparable, C any] struct {
	current   S
	table     map[tableKey[S, E]]Transition[S, E, C]
	order     []tableKey[S, E] // first-insertion order, kept for graph emission
	stateFmt  func(S) string
	eventFmt  func(E) string
	graphName string
	observers []func(from, to S, event E)
}

// New creates a machine in the given initial state. Construction cannot fail:
// options only register transitions and adjust formatting, and every
// constructed machine is immediately dispatch-ready.
func New[S, E comparable, C any](initial S, opts ...Option[S, E, C]) *Machine[S, E, C] {
	m := &Machine[S, E, C]{
		current:   initial,
		table:     make(map[tableKey[S, E]]Transition[S, E, C]),
		stateFmt:  defaultFormat[S],
		eventFmt:  defaultFormat[E],
		graphName: defaultGraphName,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add inserts t into the transition table, replacing any existing entry for
// the same (Src, Event) pair. Last write wins: the previous entry's
// destination, guard, and action become unreachable. Add never fails and
// does not affect the current state. A replaced entry keeps its original
// position in graph emission order.
func (m *Machine[S, E, C]) Add(t Transition[S, E, C]) {
	key := tableKey[S, E]{src: t.Src, event: t.Event}
	if _, exists := m.table[key]; !exists {
		m.order = append(m.order, key)
	}
	m.table[key] = t
}

// Dispatch handles exactly one event synchronously. It looks up the
// (current state, event) pair and returns NoTransition when the table has no
// entry, GuardRejected when the entry's guard declines (the guard is invoked
// exactly once and the action not at all), or OK after running the action
// and committing the destination state. On any outcome other than OK the
// current state is untouched.
//
// The machine never inspects ctx; it only forwards the pointer to the
// transition's guard and action. Passing nil is fine as long as the callables
// involved tolerate it.
func (m *Machine[S, E, C]) Dispatch(event E, ctx *C) Result {
	tr, ok := m.table[tableKey[S, E]{src: m.current, event: event}]
	if !ok {
		return NoTransition
	}
	if tr.Guard != nil && !tr.Guard(ctx) {
		return GuardRejected
	}
	// Action observes the pre-transition state; the commit happens after.
	if tr.Action != nil {
		tr.Action(ctx)
	}
	from := m.current
	m.current = tr.Dst
	for _, observe := range m.observers {
		observe(from, tr.Dst, event)
	}
	return OK
}

// CanFire reports whether Dispatch would return OK for event right now,
// evaluating the transition's guard without running the action or moving
// the machine.
func (m *Machine[S, E, C]) CanFire(event E, ctx *C) bool {
	tr, ok := m.table[tableKey[S, E]{src: m.current, event: event}]
	if !ok {
		return false
	}
	return tr.Guard == nil || tr.Guard(ctx)
}

// Current returns the active state. It is a pure read: the current state
// mutates only as a direct result of a successful Dispatch.
func (m *Machine[S, E, C]) Current() S {
	return m.current
}

// CurrentLabel returns the active state rendered through the state formatter.
func (m *Machine[S, E, C]) CurrentLabel() string {
	return m.stateFmt(m.current)
}

// Len returns the number of entries in the transition table.
func (m *Machine[S, E, C]) Len() int {
	return len(m.table)
}
