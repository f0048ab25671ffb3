package canon

import (
	"github.com/spetersoncode/agui"
	"github.com/spetersoncode/agui/events"
)

// Canonicalizer expands chunk events into canonical Start/Content/End triads
// and closes any stream the input leaves open. It tracks at most one open
// synthesized text stream and one open synthesized tool stream; text and
// tool chunks are mutually exclusive at the cursor, so opening one closes
// the other.
//
// Create a new Canonicalizer per stream. It is not safe for concurrent use.
type Canonicalizer struct {
	// textID is the message id of the open synthesized text stream, or "".
	textID string
	// toolID is the tool call id of the open synthesized tool stream, or "".
	toolID string
}

// New creates a Canonicalizer with no open streams.
func New() *Canonicalizer {
	return &Canonicalizer{}
}

// Process consumes one raw event and returns the canonical events it expands
// to, in emission order. Non-chunk events are re-emitted unchanged, preceded
// by synthesized End events for any pending chunk streams (passthrough kinds
// excepted). Process never fails; a malformed chunk expands to nothing.
func (c *Canonicalizer) Process(event events.Event) []events.Event {
	switch ev := event.(type) {
	case *events.TextMessageChunkEvent:
		return c.textChunk(ev)

	case *events.ToolCallChunkEvent:
		return c.toolChunk(ev)

	case *events.RawEvent, *events.ActivitySnapshotEvent, *events.ActivityDeltaEvent:
		// Passthrough kinds never disturb pending streams.
		return []events.Event{event}

	default:
		return append(c.closePending(), event)
	}
}

// Finalize closes every stream still open and resets the canonicalizer.
// Callers that consume only a prefix of a stream must call Finalize to keep
// the Start/End pairing intact for downstream consumers.
func (c *Canonicalizer) Finalize() []events.Event {
	return c.closePending()
}

func (c *Canonicalizer) textChunk(ev *events.TextMessageChunkEvent) []events.Event {
	id := ev.MessageID
	if id == "" {
		// Continue the open text stream, or begin a fresh one.
		id = c.textID
		if id == "" {
			id = agui.GenerateMessageID()
		}
	}

	var out []events.Event
	if id != c.textID {
		out = c.closePending()
		role := ev.Role
		if role == "" {
			role = agui.RoleAssistant
		}
		out = append(out, events.NewTextMessageStartEvent(id, events.WithRole(role)))
		c.textID = id
	}
	if ev.Delta != "" {
		out = append(out, events.NewTextMessageContentEvent(id, ev.Delta))
	}
	return out
}

func (c *Canonicalizer) toolChunk(ev *events.ToolCallChunkEvent) []events.Event {
	id := ev.ToolCallID
	if id == "" {
		if c.toolID == "" {
			// No open tool stream to continue: drop.
			return nil
		}
		id = c.toolID
	}

	// The first chunk of a new tool call must name the tool; without it
	// there is nothing coherent to synthesize, so the chunk is dropped
	// before any pending stream is disturbed.
	if id != c.toolID && ev.ToolCallName == "" {
		return nil
	}

	var out []events.Event
	if id != c.toolID {
		out = c.closePending()
		var opts []events.ToolCallStartOption
		if ev.ParentMessageID != "" {
			opts = append(opts, events.WithParentMessageID(ev.ParentMessageID))
		}
		out = append(out, events.NewToolCallStartEvent(id, ev.ToolCallName, opts...))
		c.toolID = id
	}
	if ev.Delta != "" {
		out = append(out, events.NewToolCallArgsEvent(id, ev.Delta))
	}
	return out
}

// closePending synthesizes End events for open streams, text before tool,
// and resets the cursors.
func (c *Canonicalizer) closePending() []events.Event {
	var out []events.Event
	if c.textID != "" {
		out = append(out, events.NewTextMessageEndEvent(c.textID))
		c.textID = ""
	}
	if c.toolID != "" {
		out = append(out, events.NewToolCallEndEvent(c.toolID))
		c.toolID = ""
	}
	return out
}

// All canonicalizes a complete event sequence, including finalization.
func All(in []events.Event) []events.Event {
	c := New()
	out := make([]events.Event, 0, len(in))
	for _, ev := range in {
		out = append(out, c.Process(ev)...)
	}
	return append(out, c.Finalize()...)
}

// Pipe canonicalizes a channel of events, finalizing when the input closes.
// The returned channel is closed after the synthesized closing events are
// delivered.
func (c *Canonicalizer) Pipe(in <-chan events.Event) <-chan events.Event {
	out := make(chan events.Event, cap(in))
	go func() {
		defer close(out)
		for ev := range in {
			for _, e := range c.Process(ev) {
				out <- e
			}
		}
		for _, e := range c.Finalize() {
			out <- e
		}
	}()
	return out
}
