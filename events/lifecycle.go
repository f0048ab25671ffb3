package events

// RunStartedEvent signals that an agent run has begun.
type RunStartedEvent struct {
	BaseEvent
	ThreadID string `json:"threadId"`
	RunID    string `json:"runId"`
	// ParentRunID links a nested run to the run that spawned it.
	ParentRunID string `json:"parentRunId,omitempty"`
}

// RunStartedOption configures optional fields of a RunStartedEvent.
type RunStartedOption func(*RunStartedEvent)

// WithParentRunID sets the parent run identifier on a RUN_STARTED event.
func WithParentRunID(parentRunID string) RunStartedOption {
	return func(e *RunStartedEvent) {
		e.ParentRunID = parentRunID
	}
}

// NewRunStartedEvent creates a RUN_STARTED event.
func NewRunStartedEvent(threadID, runID string, opts ...RunStartedOption) *RunStartedEvent {
	e := &RunStartedEvent{
		BaseEvent: newBaseEvent(EventTypeRunStarted),
		ThreadID:  threadID,
		RunID:     runID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate checks that the event carries its required fields.
func (e *RunStartedEvent) Validate() error {
	if e.ThreadID == "" {
		return missingField(EventTypeRunStarted, "threadId")
	}
	if e.RunID == "" {
		return missingField(EventTypeRunStarted, "runId")
	}
	return nil
}

// RunFinishedEvent signals that an agent run has completed successfully. The
// optional Result carries the run's final output.
type RunFinishedEvent struct {
	BaseEvent
	ThreadID string `json:"threadId"`
	RunID    string `json:"runId"`
	Result   any    `json:"result,omitempty"`
}

// RunFinishedOption configures optional fields of a RunFinishedEvent.
type RunFinishedOption func(*RunFinishedEvent)

// WithResult sets the run result on a RUN_FINISHED event.
func WithResult(result any) RunFinishedOption {
	return func(e *RunFinishedEvent) {
		e.Result = result
	}
}

// NewRunFinishedEvent creates a RUN_FINISHED event.
func NewRunFinishedEvent(threadID, runID string, opts ...RunFinishedOption) *RunFinishedEvent {
	e := &RunFinishedEvent{
		BaseEvent: newBaseEvent(EventTypeRunFinished),
		ThreadID:  threadID,
		RunID:     runID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate checks that the event carries its required fields.
func (e *RunFinishedEvent) Validate() error {
	if e.ThreadID == "" {
		return missingField(EventTypeRunFinished, "threadId")
	}
	if e.RunID == "" {
		return missingField(EventTypeRunFinished, "runId")
	}
	return nil
}

// RunErrorEvent signals that an agent run has failed. Transports should
// surface it immediately and stop treating the stream as in progress.
type RunErrorEvent struct {
	BaseEvent
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// RunErrorOption configures optional fields of a RunErrorEvent.
type RunErrorOption func(*RunErrorEvent)

// WithErrorCode sets the machine-readable error code on a RUN_ERROR event.
func WithErrorCode(code string) RunErrorOption {
	return func(e *RunErrorEvent) {
		e.Code = code
	}
}

// NewRunErrorEvent creates a RUN_ERROR event.
func NewRunErrorEvent(message string, opts ...RunErrorOption) *RunErrorEvent {
	e := &RunErrorEvent{
		BaseEvent: newBaseEvent(EventTypeRunError),
		Message:   message,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate checks that the event carries its required fields.
func (e *RunErrorEvent) Validate() error {
	if e.Message == "" {
		return missingField(EventTypeRunError, "message")
	}
	return nil
}

// StepStartedEvent signals the start of a named step within a run.
type StepStartedEvent struct {
	BaseEvent
	StepName string `json:"stepName"`
}

// NewStepStartedEvent creates a STEP_STARTED event.
func NewStepStartedEvent(stepName string) *StepStartedEvent {
	return &StepStartedEvent{
		BaseEvent: newBaseEvent(EventTypeStepStarted),
		StepName:  stepName,
	}
}

// Validate checks that the event carries its required fields.
func (e *StepStartedEvent) Validate() error {
	if e.StepName == "" {
		return missingField(EventTypeStepStarted, "stepName")
	}
	return nil
}

// StepFinishedEvent signals the completion of a named step within a run.
type StepFinishedEvent struct {
	BaseEvent
	StepName string `json:"stepName"`
}

// NewStepFinishedEvent creates a STEP_FINISHED event.
func NewStepFinishedEvent(stepName string) *StepFinishedEvent {
	return &StepFinishedEvent{
		BaseEvent: newBaseEvent(EventTypeStepFinished),
		StepName:  stepName,
	}
}

// Validate checks that the event carries its required fields.
func (e *StepFinishedEvent) Validate() error {
	if e.StepName == "" {
		return missingField(EventTypeStepFinished, "stepName")
	}
	return nil
}
