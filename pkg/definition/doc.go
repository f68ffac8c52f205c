// Package definition loads finite-state-machine transition tables from YAML
// or JSON documents instead of code, keeping the machine's shape in
// configuration while guards and actions stay in Go.
//
// A document names the initial state, an optional closed set of states, and
// the transition list:
//
//	name: order
//	initial: pending
//	states: [pending, paid, shipped, cancelled]
//	transitions:
//	  - {from: pending, event: pay, to: paid, guard: has_funds, action: charge}
//	  - {from: pending, event: cancel, to: cancelled}
//	  - {from: paid, event: ship, to: shipped, action: notify}
//
// Guard and action fields are names, resolved against Bindings at build
// time:
//
//	d, err := definition.ParseFile("order.yaml")
//	if err != nil { ... }
//
//	m, err := definition.Build(d, definition.Bindings[Order]{
//	    Guards: map[string]fsm.Guard[Order]{
//	        "has_funds": func(o *Order) bool { return o.Balance >= o.Total },
//	    },
//	    Actions: map[string]fsm.Action[Order]{
//	        "charge": func(o *Order) { o.Balance -= o.Total },
//	        "notify": func(o *Order) { o.Notified = true },
//	    },
//	})
//
// The built machine is fsm.Machine[string, string, C]; state and event
// identifiers are the document's strings.
//
// # Validation
//
// Validate (run implicitly by Build) requires an initial state, both
// endpoints and an event per transition, and, when the states list is
// present, membership of the initial state and every endpoint in it.
// Duplicate (from, event) pairs are not an error: later entries replace
// earlier ones, matching the core table's last-write-wins rule.
//
// # Error Handling
//
// Sentinel errors (ErrNoInitialState, ErrUnknownState, ErrEmptyEvent,
// ErrUnboundGuard, ErrUnboundAction, ErrInvalidDefinition) are wrapped with
// positional context and compare with errors.Is.
package definition
