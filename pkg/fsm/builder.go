package fsm

// Builder assembles a machine through a fluent chain:
//
//	m := fsm.NewBuilder[Door, Input, Visitor](Locked).
//	    From(Locked).When(Coin).To(Unlocked).Do(thank).Add().
//	    From(Unlocked).When(Push).To(Locked).Add().
//	    Build()
//
// Registration cannot fail, so the chain carries no error returns.
type Builder[S, E comparable, C any] struct {
	machine *Machine[S, E, C]
	src     S
	event   E
	dst     S
	guard   Guard[C]
	action  Action[C]
}

// NewBuilder starts a builder for a machine in the given initial state.
func NewBuilder[S, E comparable, C any](initial S, opts ...Option[S, E, C]) *Builder[S, E, C] {
	return &Builder[S, E, C]{machine: New(initial, opts...)}
}

// From starts a new transition clause, clearing any half-built one.
func (b *Builder[S, E, C]) From(src S) *Builder[S, E, C] {
	b.reset()
	b.src = src
	return b
}

// When sets the event that triggers the transition.
func (b *Builder[S, E, C]) When(event E) *Builder[S, E, C] {
	b.event = event
	return b
}

// To sets the destination state.
func (b *Builder[S, E, C]) To(dst S) *Builder[S, E, C] {
	b.dst = dst
	return b
}

// GuardedBy gates the transition on the given predicate.
func (b *Builder[S, E, C]) GuardedBy(guard Guard[C]) *Builder[S, E, C] {
	b.guard = guard
	return b
}

// Do runs the given side effect when the transition is taken.
func (b *Builder[S, E, C]) Do(action Action[C]) *Builder[S, E, C] {
	b.action = action
	return b
}

// Add finalizes the current clause into the transition table and clears the
// builder for the next clause.
func (b *Builder[S, E, C]) Add() *Builder[S, E, C] {
	b.machine.Add(Transition[S, E, C]{Src: b.src, Event: b.event, Dst: b.dst, Guard: b.guard, Action: b.action})
	b.reset()
	return b
}

// Build returns the machine assembled so far. The builder stays usable for
// registering further transitions on the same machine.
func (b *Builder[S, E, C]) Build() *Machine[S, E, C] {
	return b.machine
}

func (b *Builder[S, E, C]) reset() {
	var zeroS S
	var zeroE E
	b.src = zeroS
	b.event = zeroE
	b.dst = zeroS
	b.guard = nil
	b.action = nil
}
