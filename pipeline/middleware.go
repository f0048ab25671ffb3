package pipeline

import (
	"context"

	"github.com/spetersoncode/agui"
	"github.com/spetersoncode/agui/events"
)

// Producer turns run input into an event stream. The returned channel
// must be closed when the run's events are exhausted. Producers are the
// boundary to whatever actually executes the agent; this package only
// consumes them.
type Producer func(ctx context.Context, input agui.RunAgentInput) (<-chan events.Event, error)

// Middleware wraps a Producer with pre- and post-logic.
type Middleware func(next Producer) Producer

// Compose applies middlewares to a producer so the first listed is
// outermost: Compose(p, a, b) runs a's pre-logic first and its
// post-logic last.
func Compose(producer Producer, middlewares ...Middleware) Producer {
	for i := len(middlewares) - 1; i >= 0; i-- {
		producer = middlewares[i](producer)
	}
	return producer
}

// FromSlice returns a Producer that replays a fixed event sequence,
// useful for tests and for feeding recorded streams through a Runner.
func FromSlice(evs []events.Event) Producer {
	return func(ctx context.Context, _ agui.RunAgentInput) (<-chan events.Event, error) {
		out := make(chan events.Event)
		go func() {
			defer close(out)
			for _, ev := range evs {
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}()
		return out, nil
	}
}
