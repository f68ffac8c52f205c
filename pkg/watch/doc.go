// Package watch fans committed transitions out to multiple consumers such
// as debug UIs, metrics collectors and loggers.
//
// A Hub plugs into a machine through its Observer callback and never touches
// the dispatch path: it neither queues inbound events nor drives dispatch.
// Delivery is non-blocking, so a slow consumer loses changes instead of
// stalling the dispatcher. Every change carries a hub-wide sequence number;
// a gap in the received sequence tells the consumer it missed something.
//
// Basic usage:
//
//	hub := watch.NewHub[string, string](16)
//	defer hub.Close()
//
//	sub := hub.Subscribe(ctx)
//	defer sub.Close()
//
//	m := fsm.New("locked",
//		fsm.WithTransition[string, string, struct{}]("locked", "coin", "unlocked"),
//		fsm.WithObserver[string, string, struct{}](hub.Observer()),
//	)
//
//	go func() {
//		for change := range sub.Receive(ctx) {
//			slog.Info("transition",
//				slog.Any("from", change.From),
//				slog.Any("to", change.To),
//				slog.Any("event", change.Event),
//				slog.Uint64("seq", change.Seq))
//		}
//	}()
//
// Subscriptions are cleaned up when their context is cancelled, when the
// subscriber is closed, or when the hub itself closes.
package watch
