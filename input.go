package agui

import "errors"

// Context is an additional context item supplied by the frontend for a run.
type Context struct {
	Description string `json:"description"`
	Value       string `json:"value"`
}

// Tool describes a frontend-provided tool the agent may invoke. Parameters
// holds a JSON Schema for the tool arguments.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  any    `json:"parameters"`
}

// RunAgentInput is the AG-UI request that seeds a run: the conversation so
// far, shared state, and any frontend tools. Transports decode it from the
// request body and hand it to the runner; the core consumes it but does not
// own it.
type RunAgentInput struct {
	ThreadID       string    `json:"threadId"`
	RunID          string    `json:"runId"`
	Messages       []Message `json:"messages"`
	Tools          []Tool    `json:"tools,omitempty"`
	Context        []Context `json:"context,omitempty"`
	State          any       `json:"state,omitempty"`
	ForwardedProps any       `json:"forwardedProps,omitempty"`
}

// ErrNoThreadID is returned when the input is missing a thread identifier.
var ErrNoThreadID = errors.New("agui: no thread id provided")

// ErrNoRunID is returned when the input is missing a run identifier.
var ErrNoRunID = errors.New("agui: no run id provided")

// Validate checks that the input carries the identifiers every run needs.
func (r *RunAgentInput) Validate() error {
	if r.ThreadID == "" {
		return ErrNoThreadID
	}
	if r.RunID == "" {
		return ErrNoRunID
	}
	return nil
}

// EnsureIDs fills in generated thread and run identifiers when the frontend
// omitted them, and returns the input for chaining.
func (r *RunAgentInput) EnsureIDs() *RunAgentInput {
	if r.ThreadID == "" {
		r.ThreadID = GenerateThreadID()
	}
	if r.RunID == "" {
		r.RunID = GenerateRunID()
	}
	return r
}
