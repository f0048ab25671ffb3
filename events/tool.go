package events

import "github.com/spetersoncode/agui"

// ToolCallStartEvent opens a streamed tool call.
type ToolCallStartEvent struct {
	BaseEvent
	ToolCallID   string `json:"toolCallId"`
	ToolCallName string `json:"toolCallName"`
	// ParentMessageID links the tool call to the assistant message that
	// requested it.
	ParentMessageID string `json:"parentMessageId,omitempty"`
}

// ToolCallStartOption configures optional fields of a ToolCallStartEvent.
type ToolCallStartOption func(*ToolCallStartEvent)

// WithParentMessageID sets the parent message on a TOOL_CALL_START event.
func WithParentMessageID(messageID string) ToolCallStartOption {
	return func(e *ToolCallStartEvent) {
		e.ParentMessageID = messageID
	}
}

// NewToolCallStartEvent creates a TOOL_CALL_START event.
func NewToolCallStartEvent(toolCallID, toolCallName string, opts ...ToolCallStartOption) *ToolCallStartEvent {
	e := &ToolCallStartEvent{
		BaseEvent:    newBaseEvent(EventTypeToolCallStart),
		ToolCallID:   toolCallID,
		ToolCallName: toolCallName,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate checks that the event carries its required fields.
func (e *ToolCallStartEvent) Validate() error {
	if e.ToolCallID == "" {
		return missingField(EventTypeToolCallStart, "toolCallId")
	}
	if e.ToolCallName == "" {
		return missingField(EventTypeToolCallStart, "toolCallName")
	}
	return nil
}

// ToolCallArgsEvent carries one streamed piece of a tool call's
// JSON-encoded arguments.
type ToolCallArgsEvent struct {
	BaseEvent
	ToolCallID string `json:"toolCallId"`
	Delta      string `json:"delta"`
}

// NewToolCallArgsEvent creates a TOOL_CALL_ARGS event.
func NewToolCallArgsEvent(toolCallID, delta string) *ToolCallArgsEvent {
	return &ToolCallArgsEvent{
		BaseEvent:  newBaseEvent(EventTypeToolCallArgs),
		ToolCallID: toolCallID,
		Delta:      delta,
	}
}

// Validate checks that the event carries its required fields.
func (e *ToolCallArgsEvent) Validate() error {
	if e.ToolCallID == "" {
		return missingField(EventTypeToolCallArgs, "toolCallId")
	}
	return nil
}

// ToolCallEndEvent closes a streamed tool call.
type ToolCallEndEvent struct {
	BaseEvent
	ToolCallID string `json:"toolCallId"`
}

// NewToolCallEndEvent creates a TOOL_CALL_END event.
func NewToolCallEndEvent(toolCallID string) *ToolCallEndEvent {
	return &ToolCallEndEvent{
		BaseEvent:  newBaseEvent(EventTypeToolCallEnd),
		ToolCallID: toolCallID,
	}
}

// Validate checks that the event carries its required fields.
func (e *ToolCallEndEvent) Validate() error {
	if e.ToolCallID == "" {
		return missingField(EventTypeToolCallEnd, "toolCallId")
	}
	return nil
}

// ToolCallChunkEvent is the convenience variant bundling tool call start and
// argument deltas into a single event. All fields are optional; the canon
// package expands chunks into canonical triads.
type ToolCallChunkEvent struct {
	BaseEvent
	ToolCallID      string `json:"toolCallId,omitempty"`
	ToolCallName    string `json:"toolCallName,omitempty"`
	ParentMessageID string `json:"parentMessageId,omitempty"`
	Delta           string `json:"delta,omitempty"`
}

// ToolCallChunkOption configures optional fields of a ToolCallChunkEvent.
type ToolCallChunkOption func(*ToolCallChunkEvent)

// WithChunkToolCallName sets the tool name on a TOOL_CALL_CHUNK event. The
// first chunk of a new tool call must carry the name.
func WithChunkToolCallName(name string) ToolCallChunkOption {
	return func(e *ToolCallChunkEvent) {
		e.ToolCallName = name
	}
}

// WithChunkParentMessageID sets the parent message on a TOOL_CALL_CHUNK
// event.
func WithChunkParentMessageID(messageID string) ToolCallChunkOption {
	return func(e *ToolCallChunkEvent) {
		e.ParentMessageID = messageID
	}
}

// NewToolCallChunkEvent creates a TOOL_CALL_CHUNK event.
func NewToolCallChunkEvent(toolCallID, delta string, opts ...ToolCallChunkOption) *ToolCallChunkEvent {
	e := &ToolCallChunkEvent{
		BaseEvent:  newBaseEvent(EventTypeToolCallChunk),
		ToolCallID: toolCallID,
		Delta:      delta,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate always succeeds: every chunk field is optional.
func (e *ToolCallChunkEvent) Validate() error {
	return nil
}

// ToolCallResultEvent carries the result of an executed tool call, to be
// appended to the conversation as a tool message.
type ToolCallResultEvent struct {
	BaseEvent
	MessageID  string    `json:"messageId"`
	ToolCallID string    `json:"toolCallId"`
	Content    string    `json:"content"`
	Role       agui.Role `json:"role,omitempty"`
}

// NewToolCallResultEvent creates a TOOL_CALL_RESULT event with the tool
// role.
func NewToolCallResultEvent(messageID, toolCallID, content string) *ToolCallResultEvent {
	return &ToolCallResultEvent{
		BaseEvent:  newBaseEvent(EventTypeToolCallResult),
		MessageID:  messageID,
		ToolCallID: toolCallID,
		Content:    content,
		Role:       agui.RoleTool,
	}
}

// Validate checks that the event carries its required fields.
func (e *ToolCallResultEvent) Validate() error {
	if e.MessageID == "" {
		return missingField(EventTypeToolCallResult, "messageId")
	}
	if e.ToolCallID == "" {
		return missingField(EventTypeToolCallResult, "toolCallId")
	}
	return nil
}
