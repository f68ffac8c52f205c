package definition

import "errors"

var (
	// ErrInvalidDefinition is returned for undecodable documents and
	// structurally broken definitions (missing endpoints, unreadable files).
	ErrInvalidDefinition = errors.New("invalid definition")

	// ErrNoInitialState is returned when a definition does not name its
	// initial state.
	ErrNoInitialState = errors.New("no initial state defined")

	// ErrUnknownState is returned when an explicit states list is given and
	// the initial state or a transition endpoint is not in it.
	ErrUnknownState = errors.New("unknown state")

	// ErrEmptyEvent is returned when a transition has no event name.
	ErrEmptyEvent = errors.New("empty event")

	// ErrUnboundGuard is returned by Build when a transition names a guard
	// that the bindings do not provide.
	ErrUnboundGuard = errors.New("guard not bound")

	// ErrUnboundAction is returned by Build when a transition names an
	// action that the bindings do not provide.
	ErrUnboundAction = errors.New("action not bound")
)
