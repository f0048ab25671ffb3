package events

// RawEvent wraps an event from an external system for opaque passthrough.
// The engine re-emits it unchanged and never interprets the payload.
type RawEvent struct {
	BaseEvent
	Event  any    `json:"event"`
	Source string `json:"source,omitempty"`
}

// RawOption configures optional fields of a RawEvent.
type RawOption func(*RawEvent)

// WithSource names the system the raw event originated from.
func WithSource(source string) RawOption {
	return func(e *RawEvent) {
		e.Source = source
	}
}

// NewRawEvent creates a RAW event.
func NewRawEvent(event any, opts ...RawOption) *RawEvent {
	e := &RawEvent{
		BaseEvent: newBaseEvent(EventTypeRaw),
		Event:     event,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate always succeeds: the wrapped payload is opaque.
func (e *RawEvent) Validate() error {
	return nil
}

// CustomEvent carries an application-defined named value. The engine passes
// it through without interpretation.
type CustomEvent struct {
	BaseEvent
	Name  string `json:"name"`
	Value any    `json:"value,omitempty"`
}

// NewCustomEvent creates a CUSTOM event.
func NewCustomEvent(name string, value any) *CustomEvent {
	return &CustomEvent{
		BaseEvent: newBaseEvent(EventTypeCustom),
		Name:      name,
		Value:     value,
	}
}

// Validate checks that the event carries its required fields.
func (e *CustomEvent) Validate() error {
	if e.Name == "" {
		return missingField(EventTypeCustom, "name")
	}
	return nil
}
