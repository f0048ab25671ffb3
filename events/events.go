package events

// EventType discriminates the kind of an AG-UI event. The values are the
// wire-format "type" tags.
type EventType string

// Lifecycle events
const (
	EventTypeRunStarted   EventType = "RUN_STARTED"
	EventTypeRunFinished  EventType = "RUN_FINISHED"
	EventTypeRunError     EventType = "RUN_ERROR"
	EventTypeStepStarted  EventType = "STEP_STARTED"
	EventTypeStepFinished EventType = "STEP_FINISHED"
)

// Text message events
const (
	EventTypeTextMessageStart   EventType = "TEXT_MESSAGE_START"
	EventTypeTextMessageContent EventType = "TEXT_MESSAGE_CONTENT"
	EventTypeTextMessageEnd     EventType = "TEXT_MESSAGE_END"
	EventTypeTextMessageChunk   EventType = "TEXT_MESSAGE_CHUNK"
)

// Tool call events
const (
	EventTypeToolCallStart  EventType = "TOOL_CALL_START"
	EventTypeToolCallArgs   EventType = "TOOL_CALL_ARGS"
	EventTypeToolCallEnd    EventType = "TOOL_CALL_END"
	EventTypeToolCallChunk  EventType = "TOOL_CALL_CHUNK"
	EventTypeToolCallResult EventType = "TOOL_CALL_RESULT"
)

// State events
const (
	EventTypeStateSnapshot    EventType = "STATE_SNAPSHOT"
	EventTypeStateDelta       EventType = "STATE_DELTA"
	EventTypeMessagesSnapshot EventType = "MESSAGES_SNAPSHOT"
	EventTypeActivitySnapshot EventType = "ACTIVITY_SNAPSHOT"
	EventTypeActivityDelta    EventType = "ACTIVITY_DELTA"
)

// Thinking events
const (
	EventTypeThinkingStart              EventType = "THINKING_START"
	EventTypeThinkingEnd                EventType = "THINKING_END"
	EventTypeThinkingTextMessageStart   EventType = "THINKING_TEXT_MESSAGE_START"
	EventTypeThinkingTextMessageContent EventType = "THINKING_TEXT_MESSAGE_CONTENT"
	EventTypeThinkingTextMessageEnd     EventType = "THINKING_TEXT_MESSAGE_END"
)

// Special events
const (
	EventTypeRaw    EventType = "RAW"
	EventTypeCustom EventType = "CUSTOM"
)

// AllEventTypes returns every wire event type, grouped by family. Useful for
// exhaustiveness checks in tests.
func AllEventTypes() []EventType {
	return []EventType{
		EventTypeRunStarted,
		EventTypeRunFinished,
		EventTypeRunError,
		EventTypeStepStarted,
		EventTypeStepFinished,
		EventTypeTextMessageStart,
		EventTypeTextMessageContent,
		EventTypeTextMessageEnd,
		EventTypeTextMessageChunk,
		EventTypeToolCallStart,
		EventTypeToolCallArgs,
		EventTypeToolCallEnd,
		EventTypeToolCallChunk,
		EventTypeToolCallResult,
		EventTypeStateSnapshot,
		EventTypeStateDelta,
		EventTypeMessagesSnapshot,
		EventTypeActivitySnapshot,
		EventTypeActivityDelta,
		EventTypeThinkingStart,
		EventTypeThinkingEnd,
		EventTypeThinkingTextMessageStart,
		EventTypeThinkingTextMessageContent,
		EventTypeThinkingTextMessageEnd,
		EventTypeRaw,
		EventTypeCustom,
	}
}

// Event is the interface implemented by every AG-UI protocol event.
type Event interface {
	// Type returns the wire event type.
	Type() EventType

	// Timestamp returns the event timestamp in Unix milliseconds, or nil if
	// the event carries none.
	Timestamp() *int64

	// SetTimestamp sets the event timestamp (Unix milliseconds).
	SetTimestamp(ms int64)

	// Validate checks that the event carries its required fields.
	Validate() error
}

// BaseEvent carries the fields common to every event: the type tag, an
// optional timestamp, and an opaque rawEvent passthrough payload used for
// debugging and tracing. It is never interpreted by the engine.
type BaseEvent struct {
	EventType   EventType `json:"type"`
	TimestampMs *int64    `json:"timestamp,omitempty"`
	RawEvent    any       `json:"rawEvent,omitempty"`
}

func newBaseEvent(t EventType) BaseEvent {
	return BaseEvent{EventType: t}
}

// Type returns the wire event type.
func (b *BaseEvent) Type() EventType {
	return b.EventType
}

// Timestamp returns the event timestamp in Unix milliseconds, or nil.
func (b *BaseEvent) Timestamp() *int64 {
	return b.TimestampMs
}

// SetTimestamp sets the event timestamp (Unix milliseconds).
func (b *BaseEvent) SetTimestamp(ms int64) {
	b.TimestampMs = &ms
}
