package fsm

// Option configures a machine during construction. Options cannot fail,
// matching the rule that construction has no failure modes.
type Option[S, E comparable, C any] func(*Machine[S, E, C])

// TransitionOption attaches a guard or an action to a single transition
// registered through WithTransition.
type TransitionOption[C any] func(*transitionConfig[C])

type transitionConfig[C any] struct {
	guard  Guard[C]
	action Action[C]
}

// WithTransition registers src --event--> dst during construction. Guards
// and actions are attached via transition options:
//
//	fsm.New[Light, Tick, Counter](Red,
//	    fsm.WithTransition(Red, Timer, Green,
//	        fsm.WithAction(func(c *Counter) { c.N++ }),
//	    ),
//	)
func WithTransition[S, E comparable, C any](src S, event E, dst S, opts ...TransitionOption[C]) Option[S, E, C] {
	return func(m *Machine[S, E, C]) {
		cfg := &transitionConfig[C]{}
		for _, opt := range opts {
			opt(cfg)
		}
		m.Add(Transition[S, E, C]{Src: src, Event: event, Dst: dst, Guard: cfg.guard, Action: cfg.action})
	}
}

// WithTransitions registers a batch of transitions in slice order. Later
// entries replace earlier ones with the same (Src, Event) pair, the same as
// repeated Add calls.
func WithTransitions[S, E comparable, C any](transitions []Transition[S, E, C]) Option[S, E, C] {
	return func(m *Machine[S, E, C]) {
		for _, t := range transitions {
			m.Add(t)
		}
	}
}

// WithGuard gates the transition on the given predicate.
func WithGuard[C any](guard Guard[C]) TransitionOption[C] {
	return func(cfg *transitionConfig[C]) {
		cfg.guard = guard
	}
}

// WithAction runs the given side effect when the transition is taken.
func WithAction[C any](action Action[C]) TransitionOption[C] {
	return func(cfg *transitionConfig[C]) {
		cfg.action = action
	}
}

// WithStateFormatter overrides how states render in CurrentLabel and graph
// output. The default renders with fmt.Sprint, which yields the decimal
// value for integer-based enums and honors fmt.Stringer.
func WithStateFormatter[S, E comparable, C any](format func(S) string) Option[S, E, C] {
	return func(m *Machine[S, E, C]) {
		if format != nil {
			m.stateFmt = format
		}
	}
}

// WithEventFormatter overrides how events render in graph edge labels.
func WithEventFormatter[S, E comparable, C any](format func(E) string) Option[S, E, C] {
	return func(m *Machine[S, E, C]) {
		if format != nil {
			m.eventFmt = format
		}
	}
}

// WithGraphName overrides the digraph name in DOT output. The default is
// "FSM". The name is emitted verbatim and must be a valid DOT identifier.
func WithGraphName[S, E comparable, C any](name string) Option[S, E, C] {
	return func(m *Machine[S, E, C]) {
		if name != "" {
			m.graphName = name
		}
	}
}

// WithObserver registers a callback invoked synchronously after every
// committed transition, once the new state is in place. Observers sit
// outside the dispatch decision path: they cannot veto or reorder anything,
// and they do not run for NoTransition or GuardRejected outcomes. Multiple
// observers run in registration order.
func WithObserver[S, E comparable, C any](observe func(from, to S, event E)) Option[S, E, C] {
	return func(m *Machine[S, E, C]) {
		if observe != nil {
			m.observers = append(m.observers, observe)
		}
	}
}
