package watch_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
	"github.com/dmitrymomot/fsmkit/pkg/watch"
)

func TestHub_Subscribe(t *testing.T) {
	t.Run("subscribe creates active subscriber", func(t *testing.T) {
		hub := watch.NewHub[string, string](10)
		defer hub.Close()

		ctx := context.Background()
		sub := hub.Subscribe(ctx)
		require.NotNil(t, sub)
		require.NotNil(t, sub.Receive(ctx))
		assert.Equal(t, 1, hub.SubscriberCount())
	})

	t.Run("subscribe after close returns closed subscriber", func(t *testing.T) {
		hub := watch.NewHub[string, string](10)
		require.NoError(t, hub.Close())

		ctx := context.Background()
		sub := hub.Subscribe(ctx)
		_, ok := <-sub.Receive(ctx)
		assert.False(t, ok)
	})

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		hub := watch.NewHub[string, string](10)
		defer hub.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := hub.Subscribe(ctx)
		require.Equal(t, 1, hub.SubscriberCount())

		cancel()
		assert.Eventually(t, func() bool {
			return hub.SubscriberCount() == 0
		}, time.Second, 10*time.Millisecond)

		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
	})
}

func TestHub_Observer(t *testing.T) {
	t.Run("committed transitions reach the subscriber", func(t *testing.T) {
		hub := watch.NewHub[string, string](10)
		defer hub.Close()

		ctx := context.Background()
		sub := hub.Subscribe(ctx)

		m := fsm.New("locked",
			fsm.WithTransition[string, string, struct{}]("locked", "coin", "unlocked"),
			fsm.WithTransition[string, string, struct{}]("unlocked", "push", "locked"),
			fsm.WithObserver[string, string, struct{}](hub.Observer()),
		)
		require.Equal(t, fsm.OK, m.Dispatch("coin", nil))
		require.Equal(t, fsm.OK, m.Dispatch("push", nil))

		first := <-sub.Receive(ctx)
		assert.Equal(t, "locked", first.From)
		assert.Equal(t, "unlocked", first.To)
		assert.Equal(t, "coin", first.Event)
		assert.Equal(t, uint64(1), first.Seq)
		assert.False(t, first.At.IsZero())

		second := <-sub.Receive(ctx)
		assert.Equal(t, "push", second.Event)
		assert.Equal(t, uint64(2), second.Seq)
	})

	t.Run("rejected dispatches publish nothing", func(t *testing.T) {
		hub := watch.NewHub[string, string](10)
		defer hub.Close()

		ctx := context.Background()
		sub := hub.Subscribe(ctx)

		m := fsm.New("locked",
			fsm.WithTransition("locked", "coin", "unlocked",
				fsm.WithGuard(func(_ *struct{}) bool { return false })),
			fsm.WithObserver[string, string, struct{}](hub.Observer()),
		)
		require.Equal(t, fsm.GuardRejected, m.Dispatch("coin", nil))
		require.Equal(t, fsm.NoTransition, m.Dispatch("refund", nil))

		select {
		case change := <-sub.Receive(ctx):
			t.Fatalf("nothing should be published, got: %+v", change)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("every subscriber receives the change", func(t *testing.T) {
		hub := watch.NewHub[int, int](10)
		defer hub.Close()

		ctx := context.Background()
		subs := make([]watch.Subscriber[int, int], 5)
		for i := range subs {
			subs[i] = hub.Subscribe(ctx)
		}

		hub.Observer()(1, 2, 7)

		for i, sub := range subs {
			select {
			case change := <-sub.Receive(ctx):
				assert.Equal(t, 1, change.From, "subscriber %d", i)
				assert.Equal(t, 2, change.To, "subscriber %d", i)
				assert.Equal(t, 7, change.Event, "subscriber %d", i)
			case <-time.After(100 * time.Millisecond):
				t.Fatalf("subscriber %d timeout", i)
			}
		}
	})

	t.Run("slow subscriber loses changes but stays subscribed", func(t *testing.T) {
		hub := watch.NewHub[int, int](1)
		defer hub.Close()

		ctx := context.Background()
		sub := hub.Subscribe(ctx)
		observe := hub.Observer()

		// Buffer holds one change; the second is dropped.
		observe(1, 2, 0)
		observe(2, 3, 0)

		first := <-sub.Receive(ctx)
		assert.Equal(t, uint64(1), first.Seq)

		// Still subscribed: a later change comes through with a Seq gap.
		observe(3, 4, 0)
		select {
		case third := <-sub.Receive(ctx):
			assert.Equal(t, uint64(3), third.Seq)
		case <-time.After(100 * time.Millisecond):
			t.Fatal("subscriber should still receive after drops")
		}
		assert.Equal(t, 1, hub.SubscriberCount())
	})

	t.Run("publishing after close is safe", func(t *testing.T) {
		hub := watch.NewHub[int, int](1)
		observe := hub.Observer()
		require.NoError(t, hub.Close())

		observe(1, 2, 0)
	})
}

func TestHub_Close(t *testing.T) {
	t.Run("closes all subscribers", func(t *testing.T) {
		hub := watch.NewHub[string, string](10)

		ctx := context.Background()
		first := hub.Subscribe(ctx)
		second := hub.Subscribe(ctx)

		require.NoError(t, hub.Close())

		_, ok := <-first.Receive(ctx)
		assert.False(t, ok)
		_, ok = <-second.Receive(ctx)
		assert.False(t, ok)
		assert.Equal(t, 0, hub.SubscriberCount())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		hub := watch.NewHub[string, string](10)
		require.NoError(t, hub.Close())
		require.NoError(t, hub.Close())
	})

	t.Run("close does not wait for live contexts", func(t *testing.T) {
		hub := watch.NewHub[string, string](10)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		hub.Subscribe(ctx)

		done := make(chan struct{})
		go func() {
			_ = hub.Close()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Close should return without the subscriber context being cancelled")
		}
	})

	t.Run("subscriber close detaches it on the next publish", func(t *testing.T) {
		hub := watch.NewHub[string, string](10)
		defer hub.Close()

		sub := hub.Subscribe(context.Background())
		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close())

		hub.Observer()("a", "b", "x")
		assert.Eventually(t, func() bool {
			return hub.SubscriberCount() == 0
		}, time.Second, 10*time.Millisecond)

		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
	})
}
