package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spetersoncode/agui"
	"github.com/spetersoncode/agui/canon"
	"github.com/spetersoncode/agui/events"
	"github.com/spetersoncode/agui/session"
	"github.com/spetersoncode/agui/verify"
)

// Runner drives one producer's event stream through canonicalization,
// verification, the subscriber chain, and the session reducer.
type Runner struct {
	producer Producer
	chain    *Chain
	strict   bool
	logger   *slog.Logger
	emit     func(events.Event)
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithStrict makes a sequencing violation abort the run instead of
// being logged.
func WithStrict() RunnerOption {
	return func(r *Runner) {
		r.strict = true
	}
}

// WithLogger sets the logger used for lenient-mode violations.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithSubscribers registers subscribers on the runner's chain.
func WithSubscribers(subscribers ...Subscriber) RunnerOption {
	return func(r *Runner) {
		r.chain.Add(subscribers...)
	}
}

// WithEmit sets a sink for canonical events that survive the subscriber
// chain, e.g. a transport forwarding them to a UI.
func WithEmit(emit func(events.Event)) RunnerOption {
	return func(r *Runner) {
		r.emit = emit
	}
}

// NewRunner returns a Runner over the producer. Middleware should be
// composed onto the producer beforehand with Compose.
func NewRunner(producer Producer, opts ...RunnerOption) *Runner {
	r := &Runner{
		producer: producer,
		chain:    NewChain(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one run to completion and returns the final session.
// The session reflects every event processed before any error, so a
// strict-mode abort still leaves a usable partial snapshot.
func (r *Runner) Run(ctx context.Context, input agui.RunAgentInput) (session.Session, error) {
	s := session.FromInput(input)

	stream, err := r.producer(ctx, input)
	if err != nil {
		return s, fmt.Errorf("pipeline: producer: %w", err)
	}

	c := canon.New()
	v := verify.New()

loop:
	for {
		select {
		case <-ctx.Done():
			return s, ctx.Err()
		case ev, ok := <-stream:
			if !ok {
				break loop
			}
			for _, canonical := range c.Process(ev) {
				s, err = r.step(v, canonical, s)
				if err != nil {
					return s, err
				}
			}
		}
	}

	for _, canonical := range c.Finalize() {
		s, err = r.step(v, canonical, s)
		if err != nil {
			return s, err
		}
	}

	if err := v.Finalize(); err != nil {
		if r.strict {
			return s, fmt.Errorf("pipeline: %w", err)
		}
		r.logger.Error("event stream ended in a bad state",
			"error", err,
			"state", v.State(),
		)
	}

	return s, nil
}

func (r *Runner) step(v *verify.Verifier, ev events.Event, s session.Session) (session.Session, error) {
	if err := v.Verify(ev); err != nil {
		if r.strict {
			return s, fmt.Errorf("pipeline: %w", err)
		}
		r.logger.Error("protocol violation from remote agent",
			"error", err,
			"event", eventContext(ev),
			"state", v.State(),
		)
	}

	s, propagate := r.chain.Notify(ev, s)
	s = session.Apply(s, ev)
	if propagate && r.emit != nil {
		r.emit(ev)
	}
	return s, nil
}

// eventContext renders an event for violation logs.
func eventContext(ev events.Event) string {
	b, err := events.ToJSON(ev)
	if err != nil {
		return string(ev.Type())
	}
	return string(b)
}
