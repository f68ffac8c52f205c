package snapshot

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

// Snapshot carries the current state of one machine instance. Only the
// latest state is kept; transition history is out of scope.
type Snapshot[S comparable] struct {
	State     S         `json:"state" bson:"state"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Store persists snapshots keyed by instance id. Implementations must be
// safe for concurrent use.
type Store[S comparable] interface {
	// Save writes or overwrites the snapshot for id.
	Save(ctx context.Context, id string, snap Snapshot[S]) error
	// Load returns the snapshot for id, or ErrNotFound when absent.
	Load(ctx context.Context, id string) (Snapshot[S], error)
	// Delete removes the snapshot for id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error
	// Close releases the store's underlying resources.
	Close() error
}

// Take captures the machine's current state, stamped with the present time.
// Resuming later means rebuilding the table and passing snap.State as the
// initial state of the new machine.
func Take[S, E comparable, C any](m *fsm.Machine[S, E, C]) Snapshot[S] {
	return Of(m.Current())
}

// Of wraps a bare state value in a snapshot. Useful with machine flavors
// that expose Current() but are not a *fsm.Machine.
func Of[S comparable](state S) Snapshot[S] {
	return Snapshot[S]{State: state, UpdatedAt: time.Now().UTC()}
}

// NewID returns a fresh machine instance identifier.
func NewID() string {
	return uuid.NewString()
}
