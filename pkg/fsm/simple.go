package fsm

// Simple is the void-context variant of Machine: guards take no arguments
// and return bool, actions take no arguments. The variant is selected at
// type-instantiation time, not by runtime branching. Use Simple when there
// is no shared mutable data to thread through dispatch.
type Simple[S, E comparable] struct {
	m *Machine[S, E, struct{}]
}

// NewSimple creates a void-context machine in the given initial state.
// Options are the regular machine options instantiated with an empty
// context, which keeps formatter and observer options available:
//
//	s := fsm.NewSimple[Door, Input](Locked,
//	    fsm.WithGraphName[Door, Input, struct{}]("Turnstile"),
//	)
func NewSimple[S, E comparable](initial S, opts ...Option[S, E, struct{}]) *Simple[S, E] {
	return &Simple[S, E]{m: New(initial, opts...)}
}

// Add registers src --event--> dst, replacing any existing entry for the
// pair. Either or both of guard and action may be nil, meaning "always pass"
// and "no side effect" respectively.
func (s *Simple[S, E]) Add(src S, event E, dst S, guard func() bool, action func()) {
	t := Transition[S, E, struct{}]{Src: src, Event: event, Dst: dst}
	if guard != nil {
		t.Guard = func(*struct{}) bool { return guard() }
	}
	if action != nil {
		t.Action = func(*struct{}) { action() }
	}
	s.m.Add(t)
}

// Dispatch handles one event with the same semantics as Machine.Dispatch.
func (s *Simple[S, E]) Dispatch(event E) Result {
	return s.m.Dispatch(event, nil)
}

// CanFire reports whether Dispatch would return OK for event right now.
func (s *Simple[S, E]) CanFire(event E) bool {
	return s.m.CanFire(event, nil)
}

// Current returns the active state.
func (s *Simple[S, E]) Current() S {
	return s.m.Current()
}

// CurrentLabel returns the active state rendered through the state formatter.
func (s *Simple[S, E]) CurrentLabel() string {
	return s.m.CurrentLabel()
}

// Len returns the number of entries in the transition table.
func (s *Simple[S, E]) Len() int {
	return s.m.Len()
}

// DOT renders the transition table as a Graphviz digraph.
func (s *Simple[S, E]) DOT() string {
	return s.m.DOT()
}

// Mermaid renders the transition table as a Mermaid stateDiagram-v2.
func (s *Simple[S, E]) Mermaid() string {
	return s.m.Mermaid()
}
