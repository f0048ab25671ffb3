// Package events defines the AG-UI protocol event model: one Go type per
// wire event, plus bidirectional JSON conversion.
//
// Every AG-UI event is a JSON map with a SCREAMING_SNAKE_CASE "type" field
// and camelCase payload fields. The 26 event kinds fall into five families:
//
//   - Lifecycle: RUN_STARTED, RUN_FINISHED, RUN_ERROR, STEP_STARTED,
//     STEP_FINISHED
//   - Text message: TEXT_MESSAGE_START, TEXT_MESSAGE_CONTENT,
//     TEXT_MESSAGE_END, TEXT_MESSAGE_CHUNK
//   - Tool call: TOOL_CALL_START, TOOL_CALL_ARGS, TOOL_CALL_END,
//     TOOL_CALL_RESULT, TOOL_CALL_CHUNK
//   - State: STATE_SNAPSHOT, STATE_DELTA, MESSAGES_SNAPSHOT,
//     ACTIVITY_SNAPSHOT, ACTIVITY_DELTA
//   - Thinking: THINKING_START, THINKING_END, THINKING_TEXT_MESSAGE_START,
//     THINKING_TEXT_MESSAGE_CONTENT, THINKING_TEXT_MESSAGE_END
//
// plus the passthrough kinds RAW and CUSTOM.
//
// # Decoding
//
// Use [FromJSON] (or [FromMap]) to decode a wire event. Decoding dispatches
// on the "type" discriminator, validates required fields, and returns one of
// three error kinds: [ErrMissingType], [*UnknownEventTypeError], or
// [*InvalidFieldError]. All are recoverable; callers choose whether to skip
// the event or abort the stream.
//
// Encoding is the exact inverse: [ToJSON] (or [ToMap]) on a decoded event
// reproduces the original wire map.
//
// # Constructing Events
//
// Each event has a constructor taking its required fields, with functional
// options for the optional ones:
//
//	ev := events.NewTextMessageStartEvent(msgID, events.WithRole(agui.RoleUser))
//
// Constructors do not set timestamps; transports that want them call
// [Event.SetTimestamp] at emission time.
//
// This package has no side effects and no dependencies on the rest of the
// engine; every other package depends on it.
package events
