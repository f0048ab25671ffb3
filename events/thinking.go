package events

// ThinkingStartEvent opens a thinking phase, during which the agent streams
// reasoning rather than user-facing text.
type ThinkingStartEvent struct {
	BaseEvent
	Title string `json:"title,omitempty"`
}

// ThinkingStartOption configures optional fields of a ThinkingStartEvent.
type ThinkingStartOption func(*ThinkingStartEvent)

// WithTitle sets a display title on a THINKING_START event.
func WithTitle(title string) ThinkingStartOption {
	return func(e *ThinkingStartEvent) {
		e.Title = title
	}
}

// NewThinkingStartEvent creates a THINKING_START event.
func NewThinkingStartEvent(opts ...ThinkingStartOption) *ThinkingStartEvent {
	e := &ThinkingStartEvent{BaseEvent: newBaseEvent(EventTypeThinkingStart)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate always succeeds.
func (e *ThinkingStartEvent) Validate() error {
	return nil
}

// ThinkingEndEvent closes a thinking phase.
type ThinkingEndEvent struct {
	BaseEvent
}

// NewThinkingEndEvent creates a THINKING_END event.
func NewThinkingEndEvent() *ThinkingEndEvent {
	return &ThinkingEndEvent{BaseEvent: newBaseEvent(EventTypeThinkingEnd)}
}

// Validate always succeeds.
func (e *ThinkingEndEvent) Validate() error {
	return nil
}

// ThinkingTextMessageStartEvent opens a streamed thinking message within a
// thinking phase. Thinking messages carry no message id: at most one is open
// at a time.
type ThinkingTextMessageStartEvent struct {
	BaseEvent
}

// NewThinkingTextMessageStartEvent creates a THINKING_TEXT_MESSAGE_START
// event.
func NewThinkingTextMessageStartEvent() *ThinkingTextMessageStartEvent {
	return &ThinkingTextMessageStartEvent{BaseEvent: newBaseEvent(EventTypeThinkingTextMessageStart)}
}

// Validate always succeeds.
func (e *ThinkingTextMessageStartEvent) Validate() error {
	return nil
}

// ThinkingTextMessageContentEvent carries one streamed piece of thinking
// text. Delta must be non-empty.
type ThinkingTextMessageContentEvent struct {
	BaseEvent
	Delta string `json:"delta"`
}

// NewThinkingTextMessageContentEvent creates a
// THINKING_TEXT_MESSAGE_CONTENT event.
func NewThinkingTextMessageContentEvent(delta string) *ThinkingTextMessageContentEvent {
	return &ThinkingTextMessageContentEvent{
		BaseEvent: newBaseEvent(EventTypeThinkingTextMessageContent),
		Delta:     delta,
	}
}

// Validate checks that the event carries its required fields.
func (e *ThinkingTextMessageContentEvent) Validate() error {
	if e.Delta == "" {
		return &InvalidFieldError{
			EventType: EventTypeThinkingTextMessageContent,
			Field:     "delta",
			Reason:    "must not be empty",
		}
	}
	return nil
}

// ThinkingTextMessageEndEvent closes a streamed thinking message.
type ThinkingTextMessageEndEvent struct {
	BaseEvent
}

// NewThinkingTextMessageEndEvent creates a THINKING_TEXT_MESSAGE_END event.
func NewThinkingTextMessageEndEvent() *ThinkingTextMessageEndEvent {
	return &ThinkingTextMessageEndEvent{BaseEvent: newBaseEvent(EventTypeThinkingTextMessageEnd)}
}

// Validate always succeeds.
func (e *ThinkingTextMessageEndEvent) Validate() error {
	return nil
}
