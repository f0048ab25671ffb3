package verify

import (
	"io"
	"log/slog"
	"slices"

	"github.com/spetersoncode/agui/events"
)

// Status is the run phase the verifier believes the stream is in.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusRunning  Status = "running"
	StatusFinished Status = "finished"
	StatusErrored  Status = "errored"
)

// State is a snapshot of the verifier's sequencing state, useful for
// diagnostics when a violation is logged rather than treated as fatal.
type State struct {
	Status             Status
	OpenTextIDs        []string
	OpenToolIDs        []string
	ActiveSteps        []string
	ThinkingActive     bool
	ThinkingTextActive bool
}

// Verifier checks one event stream. Both terminal statuses accept a new
// RunStarted, so a single Verifier can follow several sequential runs on
// the same stream, including recovery after a RunError.
type Verifier struct {
	status       Status
	openText     []string
	openTool     []string
	activeSteps  []string
	thinking     bool
	thinkingText bool
	logger       *slog.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithLogger has the verifier log every violation at debug level before
// returning it.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Verifier) {
		v.logger = logger
	}
}

// New returns a Verifier for a fresh stream.
func New(opts ...Option) *Verifier {
	v := &Verifier{
		status: StatusIdle,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Status reports the current run phase.
func (v *Verifier) Status() Status {
	return v.status
}

// State returns a copy of the full sequencing state.
func (v *Verifier) State() State {
	return State{
		Status:             v.status,
		OpenTextIDs:        slices.Clone(v.openText),
		OpenToolIDs:        slices.Clone(v.openTool),
		ActiveSteps:        slices.Clone(v.activeSteps),
		ThinkingActive:     v.thinking,
		ThinkingTextActive: v.thinkingText,
	}
}

// Verify checks one event against the sequencing rules. A non-nil return
// is always a *VerifyError; the verifier's state is unchanged when an
// event is rejected.
func (v *Verifier) Verify(event events.Event) error {
	if err := v.verify(event); err != nil {
		v.logger.Debug("sequencing violation",
			"kind", string(err.Kind),
			"event", string(err.EventType),
			"id", err.ID,
			"status", string(v.status),
		)
		return err
	}
	return nil
}

func (v *Verifier) verify(event events.Event) *VerifyError {
	t := event.Type()

	switch v.status {
	case StatusErrored:
		if t != events.EventTypeRunStarted {
			return violation(KindRunAlreadyErrored, t, "")
		}
	case StatusFinished:
		if t != events.EventTypeRunStarted && t != events.EventTypeRunError {
			return violation(KindRunAlreadyFinished, t, "")
		}
	case StatusIdle:
		if t != events.EventTypeRunStarted {
			return violation(KindFirstEventMustBeRunStarted, t, "")
		}
	}

	switch e := event.(type) {
	case *events.RunStartedEvent:
		if v.status == StatusRunning {
			return violation(KindRunAlreadyStarted, t, e.RunID)
		}
		v.startRun()

	case *events.RunFinishedEvent:
		if len(v.openText) > 0 {
			return violation(KindTextNotEnded, t, v.openText[0])
		}
		if len(v.openTool) > 0 {
			return violation(KindToolNotEnded, t, v.openTool[0])
		}
		if len(v.activeSteps) > 0 {
			return violation(KindStepNotFinished, t, v.activeSteps[0])
		}
		v.status = StatusFinished

	case *events.RunErrorEvent:
		// An error terminates everything in flight.
		v.status = StatusErrored
		v.openText = nil
		v.openTool = nil
		v.activeSteps = nil
		v.thinking = false
		v.thinkingText = false

	case *events.TextMessageStartEvent:
		if slices.Contains(v.openText, e.MessageID) {
			return violation(KindTextAlreadyStarted, t, e.MessageID)
		}
		v.openText = append(v.openText, e.MessageID)

	case *events.TextMessageContentEvent:
		if !slices.Contains(v.openText, e.MessageID) {
			return violation(KindTextNotStarted, t, e.MessageID)
		}

	case *events.TextMessageEndEvent:
		i := slices.Index(v.openText, e.MessageID)
		if i < 0 {
			return violation(KindTextNotStarted, t, e.MessageID)
		}
		v.openText = slices.Delete(v.openText, i, i+1)

	case *events.ToolCallStartEvent:
		if slices.Contains(v.openTool, e.ToolCallID) {
			return violation(KindToolAlreadyStarted, t, e.ToolCallID)
		}
		v.openTool = append(v.openTool, e.ToolCallID)

	case *events.ToolCallArgsEvent:
		if !slices.Contains(v.openTool, e.ToolCallID) {
			return violation(KindToolNotStarted, t, e.ToolCallID)
		}

	case *events.ToolCallEndEvent:
		i := slices.Index(v.openTool, e.ToolCallID)
		if i < 0 {
			return violation(KindToolNotStarted, t, e.ToolCallID)
		}
		v.openTool = slices.Delete(v.openTool, i, i+1)

	case *events.StepStartedEvent:
		if slices.Contains(v.activeSteps, e.StepName) {
			return violation(KindStepAlreadyStarted, t, e.StepName)
		}
		v.activeSteps = append(v.activeSteps, e.StepName)

	case *events.StepFinishedEvent:
		i := slices.Index(v.activeSteps, e.StepName)
		if i < 0 {
			return violation(KindStepNotStarted, t, e.StepName)
		}
		v.activeSteps = slices.Delete(v.activeSteps, i, i+1)

	case *events.ThinkingStartEvent:
		if v.thinking {
			return violation(KindThinkingAlreadyStarted, t, "")
		}
		v.thinking = true

	case *events.ThinkingEndEvent:
		if !v.thinking {
			return violation(KindThinkingNotStarted, t, "")
		}
		v.thinking = false

	case *events.ThinkingTextMessageStartEvent:
		if v.thinkingText {
			return violation(KindThinkingTextAlreadyStarted, t, "")
		}
		v.thinkingText = true

	case *events.ThinkingTextMessageContentEvent:
		if !v.thinkingText {
			return violation(KindThinkingTextNotStarted, t, "")
		}

	case *events.ThinkingTextMessageEndEvent:
		if !v.thinkingText {
			return violation(KindThinkingTextNotStarted, t, "")
		}
		v.thinkingText = false
	}

	return nil
}

func (v *Verifier) startRun() {
	v.status = StatusRunning
	v.openText = nil
	v.openTool = nil
	v.activeSteps = nil
	v.thinking = false
	v.thinkingText = false
}

// Finalize checks that the stream ended in a clean state. Idle and both
// terminal statuses finalize cleanly; a run still in progress or any
// stream left open is reported.
func (v *Verifier) Finalize() error {
	if err := v.finalize(); err != nil {
		v.logger.Debug("stream ended in bad state",
			"kind", string(err.Kind),
			"id", err.ID,
			"status", string(v.status),
		)
		return err
	}
	return nil
}

func (v *Verifier) finalize() *VerifyError {
	if v.status == StatusRunning {
		return violation(KindRunNotFinished, "", "")
	}
	if len(v.openText) > 0 {
		return violation(KindTextNotEnded, "", v.openText[0])
	}
	if len(v.openTool) > 0 {
		return violation(KindToolNotEnded, "", v.openTool[0])
	}
	if len(v.activeSteps) > 0 {
		return violation(KindStepNotFinished, "", v.activeSteps[0])
	}
	return nil
}

// All verifies a complete event sequence including the end-of-stream
// checks, returning the first violation found.
func All(evs []events.Event) error {
	v := New()
	for _, ev := range evs {
		if err := v.Verify(ev); err != nil {
			return err
		}
	}
	return v.Finalize()
}
