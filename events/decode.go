package events

import "encoding/json"

// FromJSON decodes a single wire event. It dispatches on the "type"
// discriminator, unmarshals the matching variant, and validates required
// fields. Errors are one of [ErrMissingType], [*UnknownEventTypeError], or
// [*InvalidFieldError].
func FromJSON(data []byte) (Event, error) {
	var head struct {
		Type *EventType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, &InvalidFieldError{Field: "type", Reason: "is not valid JSON: " + err.Error()}
	}
	if head.Type == nil || *head.Type == "" {
		return nil, ErrMissingType
	}

	event := newEvent(*head.Type)
	if event == nil {
		return nil, &UnknownEventTypeError{EventType: string(*head.Type)}
	}

	if err := json.Unmarshal(data, event); err != nil {
		return nil, &InvalidFieldError{
			EventType: *head.Type,
			Field:     "payload",
			Reason:    "does not match event shape: " + err.Error(),
		}
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	return event, nil
}

// FromMap decodes a wire event already parsed into a generic map, as
// delivered by transports that frame their own JSON.
func FromMap(wire map[string]any) (Event, error) {
	if _, ok := wire["type"]; !ok {
		return nil, ErrMissingType
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return nil, &InvalidFieldError{Field: "payload", Reason: "is not JSON-encodable: " + err.Error()}
	}
	return FromJSON(data)
}

// ToJSON encodes an event to its wire JSON form. It is the exact inverse of
// [FromJSON]: decoding the output yields an equal event.
func ToJSON(event Event) ([]byte, error) {
	return json.Marshal(event)
}

// ToMap encodes an event to a generic wire map.
func ToMap(event Event) (map[string]any, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	return wire, nil
}

// newEvent returns a zero value of the variant matching the wire tag, or nil
// for an unknown tag.
func newEvent(t EventType) Event {
	switch t {
	case EventTypeRunStarted:
		return &RunStartedEvent{}
	case EventTypeRunFinished:
		return &RunFinishedEvent{}
	case EventTypeRunError:
		return &RunErrorEvent{}
	case EventTypeStepStarted:
		return &StepStartedEvent{}
	case EventTypeStepFinished:
		return &StepFinishedEvent{}
	case EventTypeTextMessageStart:
		return &TextMessageStartEvent{}
	case EventTypeTextMessageContent:
		return &TextMessageContentEvent{}
	case EventTypeTextMessageEnd:
		return &TextMessageEndEvent{}
	case EventTypeTextMessageChunk:
		return &TextMessageChunkEvent{}
	case EventTypeToolCallStart:
		return &ToolCallStartEvent{}
	case EventTypeToolCallArgs:
		return &ToolCallArgsEvent{}
	case EventTypeToolCallEnd:
		return &ToolCallEndEvent{}
	case EventTypeToolCallChunk:
		return &ToolCallChunkEvent{}
	case EventTypeToolCallResult:
		return &ToolCallResultEvent{}
	case EventTypeStateSnapshot:
		return &StateSnapshotEvent{}
	case EventTypeStateDelta:
		return &StateDeltaEvent{}
	case EventTypeMessagesSnapshot:
		return &MessagesSnapshotEvent{}
	case EventTypeActivitySnapshot:
		return &ActivitySnapshotEvent{}
	case EventTypeActivityDelta:
		return &ActivityDeltaEvent{}
	case EventTypeThinkingStart:
		return &ThinkingStartEvent{}
	case EventTypeThinkingEnd:
		return &ThinkingEndEvent{}
	case EventTypeThinkingTextMessageStart:
		return &ThinkingTextMessageStartEvent{}
	case EventTypeThinkingTextMessageContent:
		return &ThinkingTextMessageContentEvent{}
	case EventTypeThinkingTextMessageEnd:
		return &ThinkingTextMessageEndEvent{}
	case EventTypeRaw:
		return &RawEvent{}
	case EventTypeCustom:
		return &CustomEvent{}
	}
	return nil
}
