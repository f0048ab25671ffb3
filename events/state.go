package events

import "github.com/spetersoncode/agui"

// JSON Patch operation kinds accepted by STATE_DELTA and ACTIVITY_DELTA
// payloads (RFC 6902 subset).
const (
	PatchAdd     = "add"
	PatchReplace = "replace"
	PatchRemove  = "remove"
)

// JSONPatchOperation is a single RFC 6902 patch operation. Path is a JSON
// Pointer (RFC 6901), with ~0/~1 escaping for ~ and / in keys.
type JSONPatchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// Add creates an "add" patch operation.
func Add(path string, value any) JSONPatchOperation {
	return JSONPatchOperation{Op: PatchAdd, Path: path, Value: value}
}

// Replace creates a "replace" patch operation.
func Replace(path string, value any) JSONPatchOperation {
	return JSONPatchOperation{Op: PatchReplace, Path: path, Value: value}
}

// Remove creates a "remove" patch operation.
func Remove(path string) JSONPatchOperation {
	return JSONPatchOperation{Op: PatchRemove, Path: path}
}

// Validate checks the operation kind and path.
func (op JSONPatchOperation) Validate() error {
	switch op.Op {
	case PatchAdd, PatchReplace, PatchRemove:
	default:
		return &InvalidFieldError{
			EventType: EventTypeStateDelta,
			Field:     "op",
			Reason:    "must be add, replace, or remove",
		}
	}
	if op.Path == "" {
		return &InvalidFieldError{
			EventType: EventTypeStateDelta,
			Field:     "path",
			Reason:    "is required",
		}
	}
	return nil
}

// StateSnapshotEvent replaces the shared state document wholesale.
type StateSnapshotEvent struct {
	BaseEvent
	Snapshot any `json:"snapshot"`
}

// NewStateSnapshotEvent creates a STATE_SNAPSHOT event.
func NewStateSnapshotEvent(snapshot any) *StateSnapshotEvent {
	return &StateSnapshotEvent{
		BaseEvent: newBaseEvent(EventTypeStateSnapshot),
		Snapshot:  snapshot,
	}
}

// Validate always succeeds: any snapshot value, including null, is legal.
func (e *StateSnapshotEvent) Validate() error {
	return nil
}

// StateDeltaEvent mutates the shared state document incrementally with a
// JSON Patch.
type StateDeltaEvent struct {
	BaseEvent
	Delta []JSONPatchOperation `json:"delta"`
}

// NewStateDeltaEvent creates a STATE_DELTA event.
func NewStateDeltaEvent(delta ...JSONPatchOperation) *StateDeltaEvent {
	return &StateDeltaEvent{
		BaseEvent: newBaseEvent(EventTypeStateDelta),
		Delta:     delta,
	}
}

// Validate checks every patch operation.
func (e *StateDeltaEvent) Validate() error {
	for _, op := range e.Delta {
		if err := op.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MessagesSnapshotEvent replaces the conversation message list wholesale.
type MessagesSnapshotEvent struct {
	BaseEvent
	Messages []agui.Message `json:"messages"`
}

// NewMessagesSnapshotEvent creates a MESSAGES_SNAPSHOT event.
func NewMessagesSnapshotEvent(messages []agui.Message) *MessagesSnapshotEvent {
	return &MessagesSnapshotEvent{
		BaseEvent: newBaseEvent(EventTypeMessagesSnapshot),
		Messages:  messages,
	}
}

// Validate always succeeds: an empty snapshot clears the conversation.
func (e *MessagesSnapshotEvent) Validate() error {
	return nil
}

// ActivitySnapshotEvent publishes a structured activity update (for example
// a progress card) keyed by message id.
type ActivitySnapshotEvent struct {
	BaseEvent
	MessageID    string `json:"messageId"`
	ActivityType string `json:"activityType"`
	Content      any    `json:"content"`
	// Replace indicates the previous activity entry with the same message id
	// should be replaced rather than a new entry appended.
	Replace bool `json:"replace,omitempty"`
}

// ActivitySnapshotOption configures optional fields of an
// ActivitySnapshotEvent.
type ActivitySnapshotOption func(*ActivitySnapshotEvent)

// WithReplace marks an ACTIVITY_SNAPSHOT event as replacing the previous
// activity entry with the same message id.
func WithReplace(replace bool) ActivitySnapshotOption {
	return func(e *ActivitySnapshotEvent) {
		e.Replace = replace
	}
}

// NewActivitySnapshotEvent creates an ACTIVITY_SNAPSHOT event.
func NewActivitySnapshotEvent(messageID, activityType string, content any, opts ...ActivitySnapshotOption) *ActivitySnapshotEvent {
	e := &ActivitySnapshotEvent{
		BaseEvent:    newBaseEvent(EventTypeActivitySnapshot),
		MessageID:    messageID,
		ActivityType: activityType,
		Content:      content,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate checks that the event carries its required fields.
func (e *ActivitySnapshotEvent) Validate() error {
	if e.MessageID == "" {
		return missingField(EventTypeActivitySnapshot, "messageId")
	}
	if e.ActivityType == "" {
		return missingField(EventTypeActivitySnapshot, "activityType")
	}
	return nil
}

// ActivityDeltaEvent mutates the content of an existing activity entry with
// a JSON Patch.
type ActivityDeltaEvent struct {
	BaseEvent
	MessageID    string               `json:"messageId"`
	ActivityType string               `json:"activityType"`
	Patch        []JSONPatchOperation `json:"patch"`
}

// NewActivityDeltaEvent creates an ACTIVITY_DELTA event.
func NewActivityDeltaEvent(messageID, activityType string, patch ...JSONPatchOperation) *ActivityDeltaEvent {
	return &ActivityDeltaEvent{
		BaseEvent:    newBaseEvent(EventTypeActivityDelta),
		MessageID:    messageID,
		ActivityType: activityType,
		Patch:        patch,
	}
}

// Validate checks that the event carries its required fields and that every
// patch operation is well-formed.
func (e *ActivityDeltaEvent) Validate() error {
	if e.MessageID == "" {
		return missingField(EventTypeActivityDelta, "messageId")
	}
	if e.ActivityType == "" {
		return missingField(EventTypeActivityDelta, "activityType")
	}
	for _, op := range e.Patch {
		if err := op.Validate(); err != nil {
			return err
		}
	}
	return nil
}
