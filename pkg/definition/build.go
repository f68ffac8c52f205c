package definition

import (
	"fmt"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

// Bindings resolves the guard and action names used in a Definition to Go
// callables over the context type C. Nil maps are fine for definitions that
// never reference guards or actions.
type Bindings[C any] struct {
	Guards  map[string]fsm.Guard[C]
	Actions map[string]fsm.Action[C]
}

// Build validates d and assembles a string-typed machine from it, resolving
// guard and action names through b. Transitions register in file order, so
// duplicate (from, event) pairs follow the table's last-write-wins rule.
// Build fails on validation errors and on guard or action names that the
// bindings do not cover.
//
// Extra machine options, such as fsm.WithObserver, apply after the
// definition's own name option and may override it.
func Build[C any](d *Definition, b Bindings[C], extra ...fsm.Option[string, string, C]) (*fsm.Machine[string, string, C], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var opts []fsm.Option[string, string, C]
	if d.Name != "" {
		opts = append(opts, fsm.WithGraphName[string, string, C](d.Name))
	}
	opts = append(opts, extra...)
	m := fsm.New[string, string, C](d.Initial, opts...)

	for i, t := range d.Transitions {
		tr := fsm.Transition[string, string, C]{Src: t.From, Event: t.Event, Dst: t.To}
		if t.Guard != "" {
			guard, ok := b.Guards[t.Guard]
			if !ok || guard == nil {
				return nil, fmt.Errorf("%w: transition[%d] guard %q", ErrUnboundGuard, i, t.Guard)
			}
			tr.Guard = guard
		}
		if t.Action != "" {
			action, ok := b.Actions[t.Action]
			if !ok || action == nil {
				return nil, fmt.Errorf("%w: transition[%d] action %q", ErrUnboundAction, i, t.Action)
			}
			tr.Action = action
		}
		m.Add(tr)
	}

	return m, nil
}

// MustBuild is Build that panics on error, for definitions compiled into
// the binary where a broken document is a programming bug.
func MustBuild[C any](d *Definition, b Bindings[C], extra ...fsm.Option[string, string, C]) *fsm.Machine[string, string, C] {
	m, err := Build(d, b, extra...)
	if err != nil {
		panic(fmt.Sprintf("definition: failed to build machine: %v", err))
	}
	return m
}
