package session

import (
	"maps"
	"slices"

	"github.com/spetersoncode/agui"
)

// Status is the lifecycle phase of the current run.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusRunning  Status = "running"
	StatusFinished Status = "finished"
	StatusErrored  Status = "errored"
)

// StepStatus tracks whether a named step is still in progress.
type StepStatus string

const (
	StepStatusStarted  StepStatus = "started"
	StepStatusFinished StepStatus = "finished"
)

// Step is one entry in the run's ordered step history.
type Step struct {
	Name   string     `json:"name"`
	Status StepStatus `json:"status"`
}

// TextBuffer accumulates a streaming text message until its End event.
type TextBuffer struct {
	Role    agui.Role `json:"role"`
	Content string    `json:"content"`
}

// ToolBuffer accumulates a streaming tool call until its End event.
type ToolBuffer struct {
	Name            string `json:"name"`
	Args            string `json:"args"`
	ParentMessageID string `json:"parentMessageId,omitempty"`
}

// Activity is one entry in the session's activity timeline.
type Activity struct {
	MessageID    string `json:"messageId"`
	ActivityType string `json:"activityType"`
	Content      any    `json:"content"`
}

// Thinking tracks the agent's reasoning phase.
type Thinking struct {
	Active  bool   `json:"active"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// Session is the accumulated state of one conversation thread. It is a
// plain value; Apply replaces it rather than mutating it in place.
type Session struct {
	ThreadID string `json:"threadId,omitempty"`
	RunID    string `json:"runId,omitempty"`
	Status   Status `json:"status"`

	// Error and ErrorCode hold the RunError payload when Status is
	// errored; Result holds the RunFinished payload when finished.
	Error     string `json:"error,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
	Result    any    `json:"result,omitempty"`

	Messages   []agui.Message `json:"messages"`
	State      any            `json:"state,omitempty"`
	Steps      []Step         `json:"steps,omitempty"`
	Activities []Activity     `json:"activities,omitempty"`
	Thinking   Thinking       `json:"thinking"`

	TextBuffers map[string]TextBuffer `json:"textBuffers,omitempty"`
	ToolBuffers map[string]ToolBuffer `json:"toolBuffers,omitempty"`
}

// New returns an empty idle session.
func New() Session {
	return Session{Status: StatusIdle}
}

// FromInput seeds a session from the run input a transport adapter
// received: thread and run ids, prior messages, and initial state.
func FromInput(input agui.RunAgentInput) Session {
	return Session{
		ThreadID: input.ThreadID,
		RunID:    input.RunID,
		Status:   StatusIdle,
		Messages: slices.Clone(input.Messages),
		State:    input.State,
	}
}

// clone makes the containers private to one Apply call so snapshots
// never share mutable structure.
func (s Session) clone() Session {
	s.Messages = slices.Clone(s.Messages)
	s.Steps = slices.Clone(s.Steps)
	s.Activities = slices.Clone(s.Activities)
	s.TextBuffers = maps.Clone(s.TextBuffers)
	s.ToolBuffers = maps.Clone(s.ToolBuffers)
	return s
}
