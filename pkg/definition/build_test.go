package definition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/definition"
	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

type wallet struct {
	coins  int
	thanks int
}

func turnstileBindings() definition.Bindings[wallet] {
	return definition.Bindings[wallet]{
		Guards: map[string]fsm.Guard[wallet]{
			"polite": func(w *wallet) bool { return w.coins > 0 },
		},
		Actions: map[string]fsm.Action[wallet]{
			"thank": func(w *wallet) { w.thanks++ },
		},
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("full flow from a parsed document", func(t *testing.T) {
		t.Parallel()
		d, err := definition.Parse([]byte(turnstileYAML))
		require.NoError(t, err)

		m, err := definition.Build(d, turnstileBindings())
		require.NoError(t, err)

		w := wallet{coins: 1}
		assert.Equal(t, "locked", m.Current())
		require.Equal(t, fsm.OK, m.Dispatch("coin", &w))
		assert.Equal(t, "unlocked", m.Current())
		assert.Equal(t, 1, w.thanks)

		require.Equal(t, fsm.OK, m.Dispatch("push", &w))
		assert.Equal(t, "locked", m.Current())
	})

	t.Run("definition name becomes the graph name", func(t *testing.T) {
		t.Parallel()
		d, err := definition.Parse([]byte(turnstileYAML))
		require.NoError(t, err)

		m, err := definition.Build(d, turnstileBindings())
		require.NoError(t, err)
		assert.Contains(t, m.DOT(), "digraph turnstile {")
	})

	t.Run("guarded self-loop", func(t *testing.T) {
		t.Parallel()
		d, err := definition.Parse([]byte(turnstileYAML))
		require.NoError(t, err)

		m, err := definition.Build(d, turnstileBindings())
		require.NoError(t, err)

		w := wallet{coins: 1}
		require.Equal(t, fsm.OK, m.Dispatch("coin", &w)) // locked -> unlocked
		require.Equal(t, fsm.OK, m.Dispatch("coin", &w)) // unlocked self-loop, guard passes

		w.coins = 0
		assert.Equal(t, fsm.GuardRejected, m.Dispatch("coin", &w))
		assert.Equal(t, "unlocked", m.Current())
	})

	t.Run("extra machine options apply", func(t *testing.T) {
		t.Parallel()
		d, err := definition.Parse([]byte(turnstileYAML))
		require.NoError(t, err)

		var observed []string
		m, err := definition.Build(d, turnstileBindings(),
			fsm.WithObserver[string, string, wallet](func(from, to string, event string) {
				observed = append(observed, from+"->"+to+":"+event)
			}),
		)
		require.NoError(t, err)

		w := wallet{coins: 1}
		require.Equal(t, fsm.OK, m.Dispatch("coin", &w))
		assert.Equal(t, []string{"locked->unlocked:coin"}, observed)
	})

	t.Run("later duplicate entries win", func(t *testing.T) {
		t.Parallel()
		d := &definition.Definition{
			Initial: "a",
			Transitions: []definition.Transition{
				{From: "a", Event: "x", To: "b"},
				{From: "a", Event: "x", To: "c"},
			},
		}

		m, err := definition.Build(d, definition.Bindings[struct{}]{})
		require.NoError(t, err)
		assert.Equal(t, 1, m.Len())

		require.Equal(t, fsm.OK, m.Dispatch("x", nil))
		assert.Equal(t, "c", m.Current())
	})

	t.Run("unbound guard", func(t *testing.T) {
		t.Parallel()
		d := &definition.Definition{
			Initial: "a",
			Transitions: []definition.Transition{
				{From: "a", Event: "x", To: "b", Guard: "ghost"},
			},
		}

		_, err := definition.Build(d, definition.Bindings[struct{}]{})
		require.Error(t, err)
		assert.ErrorIs(t, err, definition.ErrUnboundGuard)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("unbound action", func(t *testing.T) {
		t.Parallel()
		d := &definition.Definition{
			Initial: "a",
			Transitions: []definition.Transition{
				{From: "a", Event: "x", To: "b", Action: "ghost"},
			},
		}

		_, err := definition.Build(d, definition.Bindings[struct{}]{})
		require.Error(t, err)
		assert.ErrorIs(t, err, definition.ErrUnboundAction)
	})

	t.Run("validation failure propagates", func(t *testing.T) {
		t.Parallel()
		d := &definition.Definition{Transitions: []definition.Transition{{From: "a", Event: "x", To: "b"}}}

		_, err := definition.Build(d, definition.Bindings[struct{}]{})
		assert.ErrorIs(t, err, definition.ErrNoInitialState)
	})
}

func TestMustBuild(t *testing.T) {
	t.Parallel()

	t.Run("returns the machine on success", func(t *testing.T) {
		t.Parallel()
		d := &definition.Definition{
			Initial:     "a",
			Transitions: []definition.Transition{{From: "a", Event: "x", To: "b"}},
		}

		m := definition.MustBuild(d, definition.Bindings[struct{}]{})
		assert.Equal(t, "a", m.Current())
	})

	t.Run("panics on a broken definition", func(t *testing.T) {
		t.Parallel()
		d := &definition.Definition{}

		assert.Panics(t, func() {
			definition.MustBuild(d, definition.Bindings[struct{}]{})
		})
	})
}
