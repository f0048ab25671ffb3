package events

import "github.com/spetersoncode/agui"

// TextMessageStartEvent opens a streamed text message.
type TextMessageStartEvent struct {
	BaseEvent
	MessageID string    `json:"messageId"`
	Role      agui.Role `json:"role"`
}

// TextMessageStartOption configures optional fields of a
// TextMessageStartEvent.
type TextMessageStartOption func(*TextMessageStartEvent)

// WithRole overrides the message role on a TEXT_MESSAGE_START event. The
// default is assistant.
func WithRole(role agui.Role) TextMessageStartOption {
	return func(e *TextMessageStartEvent) {
		e.Role = role
	}
}

// NewTextMessageStartEvent creates a TEXT_MESSAGE_START event with the
// assistant role unless overridden with [WithRole].
func NewTextMessageStartEvent(messageID string, opts ...TextMessageStartOption) *TextMessageStartEvent {
	e := &TextMessageStartEvent{
		BaseEvent: newBaseEvent(EventTypeTextMessageStart),
		MessageID: messageID,
		Role:      agui.RoleAssistant,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate checks that the event carries its required fields.
func (e *TextMessageStartEvent) Validate() error {
	if e.MessageID == "" {
		return missingField(EventTypeTextMessageStart, "messageId")
	}
	return nil
}

// TextMessageContentEvent carries one streamed piece of message text. Delta
// must be non-empty.
type TextMessageContentEvent struct {
	BaseEvent
	MessageID string `json:"messageId"`
	Delta     string `json:"delta"`
}

// NewTextMessageContentEvent creates a TEXT_MESSAGE_CONTENT event.
func NewTextMessageContentEvent(messageID, delta string) *TextMessageContentEvent {
	return &TextMessageContentEvent{
		BaseEvent: newBaseEvent(EventTypeTextMessageContent),
		MessageID: messageID,
		Delta:     delta,
	}
}

// Validate checks that the event carries its required fields.
func (e *TextMessageContentEvent) Validate() error {
	if e.MessageID == "" {
		return missingField(EventTypeTextMessageContent, "messageId")
	}
	if e.Delta == "" {
		return &InvalidFieldError{
			EventType: EventTypeTextMessageContent,
			Field:     "delta",
			Reason:    "must not be empty",
		}
	}
	return nil
}

// TextMessageEndEvent closes a streamed text message.
type TextMessageEndEvent struct {
	BaseEvent
	MessageID string `json:"messageId"`
}

// NewTextMessageEndEvent creates a TEXT_MESSAGE_END event.
func NewTextMessageEndEvent(messageID string) *TextMessageEndEvent {
	return &TextMessageEndEvent{
		BaseEvent: newBaseEvent(EventTypeTextMessageEnd),
		MessageID: messageID,
	}
}

// Validate checks that the event carries its required fields.
func (e *TextMessageEndEvent) Validate() error {
	if e.MessageID == "" {
		return missingField(EventTypeTextMessageEnd, "messageId")
	}
	return nil
}

// TextMessageChunkEvent is the convenience variant bundling start, content,
// and end into a single event for transport efficiency. All fields are
// optional; the canon package expands chunks into canonical triads.
type TextMessageChunkEvent struct {
	BaseEvent
	MessageID string    `json:"messageId,omitempty"`
	Role      agui.Role `json:"role,omitempty"`
	Delta     string    `json:"delta,omitempty"`
}

// TextMessageChunkOption configures optional fields of a
// TextMessageChunkEvent.
type TextMessageChunkOption func(*TextMessageChunkEvent)

// WithChunkRole sets the role on a TEXT_MESSAGE_CHUNK event.
func WithChunkRole(role agui.Role) TextMessageChunkOption {
	return func(e *TextMessageChunkEvent) {
		e.Role = role
	}
}

// NewTextMessageChunkEvent creates a TEXT_MESSAGE_CHUNK event. Empty
// messageID or delta are valid and mean "continue the current stream" and
// "no content" respectively.
func NewTextMessageChunkEvent(messageID, delta string, opts ...TextMessageChunkOption) *TextMessageChunkEvent {
	e := &TextMessageChunkEvent{
		BaseEvent: newBaseEvent(EventTypeTextMessageChunk),
		MessageID: messageID,
		Delta:     delta,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate always succeeds: every chunk field is optional.
func (e *TextMessageChunkEvent) Validate() error {
	return nil
}
