package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/agui/events"
)

func assertKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	var verr *VerifyError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, kind, verr.Kind)
}

func TestVerifyCompleteRun(t *testing.T) {
	err := All([]events.Event{
		events.NewRunStartedEvent("t1", "r1"),
		events.NewTextMessageStartEvent("m1"),
		events.NewTextMessageContentEvent("m1", "Hello!"),
		events.NewTextMessageEndEvent("m1"),
		events.NewRunFinishedEvent("t1", "r1"),
	})
	assert.NoError(t, err)
}

func TestFirstEventMustBeRunStarted(t *testing.T) {
	v := New()
	assertKind(t, v.Verify(events.NewTextMessageStartEvent("m1")), KindFirstEventMustBeRunStarted)

	// RunFinished before any RunStarted is the same violation.
	v = New()
	assertKind(t, v.Verify(events.NewRunFinishedEvent("t1", "r1")), KindFirstEventMustBeRunStarted)
}

func TestRunAlreadyStarted(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))
	assertKind(t, v.Verify(events.NewRunStartedEvent("t1", "r2")), KindRunAlreadyStarted)
}

func TestEventsAfterRunFinished(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))
	require.NoError(t, v.Verify(events.NewRunFinishedEvent("t1", "r1")))

	assertKind(t, v.Verify(events.NewTextMessageStartEvent("m1")), KindRunAlreadyFinished)

	// RunError is still allowed after a finish and moves to errored.
	require.NoError(t, v.Verify(events.NewRunErrorEvent("late failure")))
	assert.Equal(t, StatusErrored, v.Status())
}

func TestErroredAcceptsOnlyRunStarted(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))
	require.NoError(t, v.Verify(events.NewRunErrorEvent("boom")))

	assertKind(t, v.Verify(events.NewTextMessageStartEvent("m1")), KindRunAlreadyErrored)
	assertKind(t, v.Verify(events.NewRunErrorEvent("again")), KindRunAlreadyErrored)

	// Recovery: a fresh RunStarted begins a new run on the same stream.
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r2")))
	assert.Equal(t, StatusRunning, v.Status())
}

func TestRunErrorThenFinalize(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))
	require.NoError(t, v.Verify(events.NewRunErrorEvent("boom")))
	assert.NoError(t, v.Finalize())
	assert.Equal(t, StatusErrored, v.Status())
}

func TestRunErrorClosesOpenStreams(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))
	require.NoError(t, v.Verify(events.NewTextMessageStartEvent("m1")))
	require.NoError(t, v.Verify(events.NewToolCallStartEvent("tc1", "search")))
	require.NoError(t, v.Verify(events.NewRunErrorEvent("boom")))

	assert.NoError(t, v.Finalize())
	state := v.State()
	assert.Empty(t, state.OpenTextIDs)
	assert.Empty(t, state.OpenToolIDs)
}

func TestTextSequencing(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))

	assertKind(t, v.Verify(events.NewTextMessageContentEvent("m1", "x")), KindTextNotStarted)
	assertKind(t, v.Verify(events.NewTextMessageEndEvent("m1")), KindTextNotStarted)

	require.NoError(t, v.Verify(events.NewTextMessageStartEvent("m1")))
	assertKind(t, v.Verify(events.NewTextMessageStartEvent("m1")), KindTextAlreadyStarted)

	require.NoError(t, v.Verify(events.NewTextMessageContentEvent("m1", "x")))
	require.NoError(t, v.Verify(events.NewTextMessageEndEvent("m1")))
	assertKind(t, v.Verify(events.NewTextMessageEndEvent("m1")), KindTextNotStarted)
}

func TestToolEndWithoutStart(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))
	assertKind(t, v.Verify(events.NewToolCallEndEvent("tc1")), KindToolNotStarted)
}

func TestToolSequencing(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))
	require.NoError(t, v.Verify(events.NewToolCallStartEvent("tc1", "search")))

	assertKind(t, v.Verify(events.NewToolCallStartEvent("tc1", "search")), KindToolAlreadyStarted)
	assertKind(t, v.Verify(events.NewToolCallArgsEvent("tc2", "{}")), KindToolNotStarted)

	require.NoError(t, v.Verify(events.NewToolCallArgsEvent("tc1", "{}")))
	require.NoError(t, v.Verify(events.NewToolCallEndEvent("tc1")))
}

func TestConcurrentStreams(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))

	// Distinct ids may be open at the same time.
	require.NoError(t, v.Verify(events.NewTextMessageStartEvent("m1")))
	require.NoError(t, v.Verify(events.NewTextMessageStartEvent("m2")))
	require.NoError(t, v.Verify(events.NewToolCallStartEvent("tc1", "search")))
	require.NoError(t, v.Verify(events.NewTextMessageContentEvent("m2", "x")))
	require.NoError(t, v.Verify(events.NewTextMessageEndEvent("m1")))
	require.NoError(t, v.Verify(events.NewTextMessageEndEvent("m2")))
	require.NoError(t, v.Verify(events.NewToolCallEndEvent("tc1")))
	require.NoError(t, v.Verify(events.NewRunFinishedEvent("t1", "r1")))
	assert.NoError(t, v.Finalize())
}

func TestStepSequencing(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))

	assertKind(t, v.Verify(events.NewStepFinishedEvent("plan")), KindStepNotStarted)

	require.NoError(t, v.Verify(events.NewStepStartedEvent("plan")))
	assertKind(t, v.Verify(events.NewStepStartedEvent("plan")), KindStepAlreadyStarted)

	require.NoError(t, v.Verify(events.NewStepStartedEvent("act")))
	require.NoError(t, v.Verify(events.NewStepFinishedEvent("plan")))
	require.NoError(t, v.Verify(events.NewStepFinishedEvent("act")))
}

func TestThinkingSequencing(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))

	assertKind(t, v.Verify(events.NewThinkingEndEvent()), KindThinkingNotStarted)
	assertKind(t, v.Verify(events.NewThinkingTextMessageContentEvent("x")), KindThinkingTextNotStarted)

	require.NoError(t, v.Verify(events.NewThinkingStartEvent()))
	assertKind(t, v.Verify(events.NewThinkingStartEvent()), KindThinkingAlreadyStarted)

	require.NoError(t, v.Verify(events.NewThinkingTextMessageStartEvent()))
	assertKind(t, v.Verify(events.NewThinkingTextMessageStartEvent()), KindThinkingTextAlreadyStarted)
	require.NoError(t, v.Verify(events.NewThinkingTextMessageContentEvent("hmm")))
	require.NoError(t, v.Verify(events.NewThinkingTextMessageEndEvent()))
	require.NoError(t, v.Verify(events.NewThinkingEndEvent()))
}

func TestRunFinishedWithOpenStreams(t *testing.T) {
	tests := []struct {
		name string
		open events.Event
		kind ErrorKind
	}{
		{"text", events.NewTextMessageStartEvent("m1"), KindTextNotEnded},
		{"tool", events.NewToolCallStartEvent("tc1", "search"), KindToolNotEnded},
		{"step", events.NewStepStartedEvent("plan"), KindStepNotFinished},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))
			require.NoError(t, v.Verify(tt.open))
			assertKind(t, v.Verify(events.NewRunFinishedEvent("t1", "r1")), tt.kind)
			// The rejected finish leaves the run in progress.
			assert.Equal(t, StatusRunning, v.Status())
		})
	}
}

func TestFinalizeWhileRunning(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))
	assertKind(t, v.Finalize(), KindRunNotFinished)
}

func TestFinalizeIdleStream(t *testing.T) {
	assert.NoError(t, New().Finalize())
}

func TestMultipleSequentialRuns(t *testing.T) {
	v := New()
	for _, run := range []string{"r1", "r2", "r3"} {
		require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", run)))
		require.NoError(t, v.Verify(events.NewTextMessageStartEvent("m-"+run)))
		require.NoError(t, v.Verify(events.NewTextMessageEndEvent("m-"+run)))
		require.NoError(t, v.Verify(events.NewRunFinishedEvent("t1", run)))
	}
	assert.NoError(t, v.Finalize())
}

func TestPassthroughEvents(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))

	for _, ev := range []events.Event{
		events.NewStateSnapshotEvent(map[string]any{"k": "v"}),
		events.NewStateDeltaEvent(events.Add("/k", 1)),
		events.NewMessagesSnapshotEvent(nil),
		events.NewActivitySnapshotEvent("m1", "SEARCH", map[string]any{}),
		events.NewActivityDeltaEvent("m1", "SEARCH", events.Replace("/q", "x")),
		events.NewToolCallResultEvent("m2", "tc1", "result"),
		events.NewRawEvent("anything"),
		events.NewCustomEvent("ping", nil),
	} {
		assert.NoError(t, v.Verify(ev), "%s should pass through", ev.Type())
	}
}

func TestStateSnapshot(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))
	require.NoError(t, v.Verify(events.NewTextMessageStartEvent("m1")))
	require.NoError(t, v.Verify(events.NewToolCallStartEvent("tc1", "search")))
	require.NoError(t, v.Verify(events.NewStepStartedEvent("plan")))
	require.NoError(t, v.Verify(events.NewThinkingStartEvent()))

	state := v.State()
	assert.Equal(t, StatusRunning, state.Status)
	assert.Equal(t, []string{"m1"}, state.OpenTextIDs)
	assert.Equal(t, []string{"tc1"}, state.OpenToolIDs)
	assert.Equal(t, []string{"plan"}, state.ActiveSteps)
	assert.True(t, state.ThinkingActive)
	assert.False(t, state.ThinkingTextActive)
}

func TestRejectionLeavesStateUnchanged(t *testing.T) {
	v := New()
	require.NoError(t, v.Verify(events.NewRunStartedEvent("t1", "r1")))
	before := v.State()

	err := v.Verify(events.NewTextMessageEndEvent("m1"))
	require.Error(t, err)
	assert.Equal(t, before, v.State())

	var verr *VerifyError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "m1")
}
