// Package snapshot persists the current state of identified machine
// instances so applications can resume them after a restart.
//
// A snapshot holds only the latest state of an instance. The transition
// table is never persisted; it is rebuilt from code (or from a definition
// file) and the saved state becomes the initial state of the new machine:
//
//	store := snapshot.NewMemoryStore[string]()
//	defer store.Close()
//
//	id := snapshot.NewID()
//	m := fsm.New("draft", fsm.WithTransition[string, string, struct{}]("draft", "submit", "review"))
//	m.Dispatch("submit", nil)
//
//	// Persist the instance and resume it later.
//	_ = store.Save(ctx, id, snapshot.Take(m))
//	snap, _ := store.Load(ctx, id)
//	resumed := fsm.New(snap.State, fsm.WithTransition[string, string, struct{}]("draft", "submit", "review"))
//
// Four backends implement the Store interface: MemoryStore (optionally LRU
// bounded), RedisStore, PostgresStore and MongoStore. Each network-backed
// store wraps an already-connected client, with an Open* convenience that
// dials from an env-tagged config with retries.
//
// Load returns ErrNotFound for unknown ids; Delete on an unknown id is a
// no-op.
package snapshot
