package events

import (
	"errors"
	"fmt"
)

// ErrMissingType is returned by decoding when the wire map has no "type"
// field.
var ErrMissingType = errors.New("events: missing event type")

// UnknownEventTypeError is returned by decoding when the "type" field does
// not name a known event kind.
type UnknownEventTypeError struct {
	// EventType is the unrecognized wire tag.
	EventType string
}

func (e *UnknownEventTypeError) Error() string {
	return fmt.Sprintf("events: unknown event type %q", e.EventType)
}

// InvalidFieldError is returned when an event is missing a required field or
// carries a field with an invalid value.
type InvalidFieldError struct {
	EventType EventType
	Field     string
	Reason    string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("events: %s: field %q %s", e.EventType, e.Field, e.Reason)
}

func missingField(t EventType, field string) error {
	return &InvalidFieldError{EventType: t, Field: field, Reason: "is required"}
}
