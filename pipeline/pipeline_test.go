package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/agui"
	"github.com/spetersoncode/agui/events"
	"github.com/spetersoncode/agui/session"
	"github.com/spetersoncode/agui/verify"
)

func testInput() agui.RunAgentInput {
	return agui.RunAgentInput{ThreadID: "t1", RunID: "r1"}
}

func TestRunnerHappyPath(t *testing.T) {
	producer := FromSlice([]events.Event{
		events.NewRunStartedEvent("t1", "r1"),
		events.NewTextMessageChunkEvent("m1", "Hello "),
		events.NewTextMessageChunkEvent("m1", "World!"),
		events.NewRunFinishedEvent("t1", "r1"),
	})

	var emitted []events.EventType
	runner := NewRunner(producer, WithEmit(func(ev events.Event) {
		emitted = append(emitted, ev.Type())
	}))

	s, err := runner.Run(context.Background(), testInput())
	require.NoError(t, err)

	assert.Equal(t, session.StatusFinished, s.Status)
	require.Len(t, s.Messages, 1)
	assert.Equal(t, "Hello World!", s.Messages[0].Content)

	// Downstream sees only canonical events.
	assert.Equal(t, []events.EventType{
		events.EventTypeRunStarted,
		events.EventTypeTextMessageStart,
		events.EventTypeTextMessageContent,
		events.EventTypeTextMessageContent,
		events.EventTypeTextMessageEnd,
		events.EventTypeRunFinished,
	}, emitted)
}

func TestRunnerStrictAbortsOnViolation(t *testing.T) {
	producer := FromSlice([]events.Event{
		events.NewRunStartedEvent("t1", "r1"),
		events.NewToolCallEndEvent("tc1"),
		events.NewRunFinishedEvent("t1", "r1"),
	})

	runner := NewRunner(producer, WithStrict())
	s, err := runner.Run(context.Background(), testInput())

	var verr *verify.VerifyError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, verify.KindToolNotStarted, verr.Kind)

	// The partial session up to the violation is still returned.
	assert.Equal(t, session.StatusRunning, s.Status)
}

func TestRunnerStrictRequiresCleanFinish(t *testing.T) {
	producer := FromSlice([]events.Event{
		events.NewRunStartedEvent("t1", "r1"),
	})

	runner := NewRunner(producer, WithStrict())
	_, err := runner.Run(context.Background(), testInput())

	var verr *verify.VerifyError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, verify.KindRunNotFinished, verr.Kind)
}

func TestRunnerLenientContinues(t *testing.T) {
	producer := FromSlice([]events.Event{
		events.NewRunStartedEvent("t1", "r1"),
		events.NewToolCallEndEvent("tc1"),
		events.NewTextMessageStartEvent("m1"),
		events.NewTextMessageContentEvent("m1", "still here"),
		events.NewTextMessageEndEvent("m1"),
		events.NewRunFinishedEvent("t1", "r1"),
	})

	s, err := NewRunner(producer).Run(context.Background(), testInput())
	require.NoError(t, err)
	assert.Equal(t, session.StatusFinished, s.Status)
	require.Len(t, s.Messages, 1)
	assert.Equal(t, "still here", s.Messages[0].Content)
}

func TestSubscriberMutatesState(t *testing.T) {
	producer := FromSlice([]events.Event{
		events.NewRunStartedEvent("t1", "r1"),
		events.NewRunFinishedEvent("t1", "r1"),
	})

	runner := NewRunner(producer, WithSubscribers(
		SubscriberFunc(func(ev events.Event, s session.Session) Decision {
			if ev.Type() == events.EventTypeRunStarted {
				return ReplaceState(map[string]any{"injected": true})
			}
			return Continue()
		}),
	))

	s, err := runner.Run(context.Background(), testInput())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"injected": true}, s.State)
}

func TestStopPropagationSuppressesEmitOnly(t *testing.T) {
	producer := FromSlice([]events.Event{
		events.NewRunStartedEvent("t1", "r1"),
		events.NewCustomEvent("internal", nil),
		events.NewRunFinishedEvent("t1", "r1"),
	})

	var emitted []events.EventType
	runner := NewRunner(producer,
		WithEmit(func(ev events.Event) { emitted = append(emitted, ev.Type()) }),
		WithSubscribers(SubscriberFunc(func(ev events.Event, s session.Session) Decision {
			if ev.Type() == events.EventTypeCustom {
				return Decision{StopPropagation: true}
			}
			return Continue()
		})),
	)

	s, err := runner.Run(context.Background(), testInput())
	require.NoError(t, err)

	// The custom event never reached downstream, but the run still
	// finished normally through the reducer.
	assert.NotContains(t, emitted, events.EventTypeCustom)
	assert.Equal(t, session.StatusFinished, s.Status)
}

func TestChainOrderAndEarlyHalt(t *testing.T) {
	var seen []string
	sub := func(name string, stop bool) Subscriber {
		return SubscriberFunc(func(events.Event, session.Session) Decision {
			seen = append(seen, name)
			return Decision{StopPropagation: stop}
		})
	}

	chain := NewChain(sub("first", false), sub("second", true), sub("third", false))
	_, propagate := chain.Notify(events.NewCustomEvent("x", nil), session.New())

	assert.False(t, propagate)
	assert.Equal(t, []string{"first", "second"}, seen)
}

func TestComposeOrdering(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next Producer) Producer {
			return func(ctx context.Context, input agui.RunAgentInput) (<-chan events.Event, error) {
				order = append(order, name)
				return next(ctx, input)
			}
		}
	}

	producer := Compose(FromSlice(nil), mw("outer"), mw("inner"))
	_, err := producer(context.Background(), testInput())
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestRunnerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocked := Producer(func(ctx context.Context, _ agui.RunAgentInput) (<-chan events.Event, error) {
		return make(chan events.Event), nil
	})

	_, err := NewRunner(blocked).Run(ctx, testInput())
	assert.ErrorIs(t, err, context.Canceled)
}
