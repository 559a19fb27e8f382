// Package statemachine is a small finite state machine keyed by state and
// event names.
//
// Transitions are declared up front with options and never change afterwards:
//
//	m := statemachine.MustNew(idle,
//		statemachine.WithTransitionFrom([]statemachine.State{idle, failed}, pending, submit),
//		statemachine.WithTransition(pending, failed, reject),
//		statemachine.WithHook(func(ctx context.Context, from, to statemachine.State, e statemachine.Event) {
//			slog.DebugContext(ctx, "transition", "from", from.Name(), "to", to.Name())
//		}),
//	)
//	if err := m.Fire(ctx, submit); statemachine.IsRefused(err) {
//		// already pending
//	}
//
// Guards can veto a route; when several routes share a state and event the
// first one whose guards pass is taken. All methods are safe for
// concurrent use, and the check-and-move in Fire is atomic, which makes the
// machine usable as a single-flight latch.
package statemachine
