package session

import (
	"slices"

	"github.com/spetersoncode/agui"
	"github.com/spetersoncode/agui/events"
)

// Apply folds one event into the session and returns the new snapshot.
// It accepts any event kind, including the chunk variants a canonicalized
// stream no longer contains, and never fails.
func Apply(s Session, event events.Event) Session {
	s = s.clone()

	switch e := event.(type) {
	case *events.RunStartedEvent:
		s.startRun(e.ThreadID, e.RunID)

	case *events.RunFinishedEvent:
		s.Status = StatusFinished
		s.Result = e.Result

	case *events.RunErrorEvent:
		// The error terminates the run; anything still streaming is lost.
		s.Status = StatusErrored
		s.Error = e.Message
		s.ErrorCode = e.Code
		s.TextBuffers = nil
		s.ToolBuffers = nil
		s.Thinking.Active = false

	case *events.StepStartedEvent:
		s.Steps = append(s.Steps, Step{Name: e.StepName, Status: StepStatusStarted})

	case *events.StepFinishedEvent:
		s.finishStep(e.StepName)

	case *events.TextMessageStartEvent:
		if s.TextBuffers == nil {
			s.TextBuffers = map[string]TextBuffer{}
		}
		s.TextBuffers[e.MessageID] = TextBuffer{Role: e.Role}

	case *events.TextMessageContentEvent:
		s.appendText(e.MessageID, e.Delta)

	case *events.TextMessageChunkEvent:
		s.appendText(e.MessageID, e.Delta)

	case *events.TextMessageEndEvent:
		if buf, ok := s.TextBuffers[e.MessageID]; ok {
			s.Messages = append(s.Messages, agui.Message{
				ID:      e.MessageID,
				Role:    buf.Role,
				Content: buf.Content,
			})
			delete(s.TextBuffers, e.MessageID)
		}

	case *events.ToolCallStartEvent:
		if s.ToolBuffers == nil {
			s.ToolBuffers = map[string]ToolBuffer{}
		}
		s.ToolBuffers[e.ToolCallID] = ToolBuffer{
			Name:            e.ToolCallName,
			ParentMessageID: e.ParentMessageID,
		}

	case *events.ToolCallArgsEvent:
		s.appendArgs(e.ToolCallID, e.Delta)

	case *events.ToolCallChunkEvent:
		s.appendArgs(e.ToolCallID, e.Delta)

	case *events.ToolCallEndEvent:
		if buf, ok := s.ToolBuffers[e.ToolCallID]; ok {
			s.attachToolCall(e.ToolCallID, buf)
			delete(s.ToolBuffers, e.ToolCallID)
		}

	case *events.ToolCallResultEvent:
		role := e.Role
		if role == "" {
			role = agui.RoleTool
		}
		s.Messages = append(s.Messages, agui.Message{
			ID:         e.MessageID,
			Role:       role,
			Content:    e.Content,
			ToolCallID: e.ToolCallID,
		})

	case *events.StateSnapshotEvent:
		s.State = e.Snapshot

	case *events.StateDeltaEvent:
		s.State = applyPatch(s.State, e.Delta)

	case *events.MessagesSnapshotEvent:
		s.Messages = slices.Clone(e.Messages)

	case *events.ActivitySnapshotEvent:
		s.applyActivitySnapshot(e)

	case *events.ActivityDeltaEvent:
		s.applyActivityDelta(e)

	case *events.ThinkingStartEvent:
		s.Thinking = Thinking{Active: true, Title: e.Title}

	case *events.ThinkingEndEvent:
		s.Thinking.Active = false

	case *events.ThinkingTextMessageStartEvent:
		s.Thinking.Content = ""

	case *events.ThinkingTextMessageContentEvent:
		s.Thinking.Content += e.Delta

	case *events.ThinkingTextMessageEndEvent:
		// Content stays on the session for inspection.

	case *events.RawEvent, *events.CustomEvent:
		// Opaque to the session.
	}

	return s
}

// All folds a complete event sequence into the session.
func All(s Session, evs []events.Event) Session {
	for _, ev := range evs {
		s = Apply(s, ev)
	}
	return s
}

// startRun begins a run, carrying messages, state, and activities over
// from any previous run on the thread while resetting per-run trackers.
func (s *Session) startRun(threadID, runID string) {
	s.ThreadID = threadID
	s.RunID = runID
	s.Status = StatusRunning
	s.Error = ""
	s.ErrorCode = ""
	s.Result = nil
	s.Steps = nil
	s.Thinking = Thinking{}
	s.TextBuffers = nil
	s.ToolBuffers = nil
}

func (s *Session) finishStep(name string) {
	for i := len(s.Steps) - 1; i >= 0; i-- {
		if s.Steps[i].Name == name && s.Steps[i].Status == StepStatusStarted {
			s.Steps[i].Status = StepStatusFinished
			return
		}
	}
}

func (s *Session) appendText(messageID, delta string) {
	if buf, ok := s.TextBuffers[messageID]; ok {
		buf.Content += delta
		s.TextBuffers[messageID] = buf
	}
}

func (s *Session) appendArgs(toolCallID, delta string) {
	if buf, ok := s.ToolBuffers[toolCallID]; ok {
		buf.Args += delta
		s.ToolBuffers[toolCallID] = buf
	}
}

// attachToolCall records a completed tool call, either on the existing
// parent assistant message or as a new assistant message of its own.
func (s *Session) attachToolCall(toolCallID string, buf ToolBuffer) {
	call := agui.NewToolCall(toolCallID, buf.Name, buf.Args)

	if buf.ParentMessageID != "" {
		for i := range s.Messages {
			if s.Messages[i].ID == buf.ParentMessageID {
				msg := s.Messages[i]
				msg.ToolCalls = append(slices.Clone(msg.ToolCalls), call)
				s.Messages[i] = msg
				return
			}
		}
	}

	id := buf.ParentMessageID
	if id == "" {
		id = agui.GenerateMessageID()
	}
	s.Messages = append(s.Messages, agui.Message{
		ID:        id,
		Role:      agui.RoleAssistant,
		ToolCalls: []agui.ToolCall{call},
	})
}

func (s *Session) applyActivitySnapshot(e *events.ActivitySnapshotEvent) {
	if e.Replace {
		for i := range s.Activities {
			if s.Activities[i].MessageID == e.MessageID {
				s.Activities[i] = Activity{
					MessageID:    e.MessageID,
					ActivityType: e.ActivityType,
					Content:      e.Content,
				}
				return
			}
		}
	}
	s.Activities = append(s.Activities, Activity{
		MessageID:    e.MessageID,
		ActivityType: e.ActivityType,
		Content:      e.Content,
	})
}

func (s *Session) applyActivityDelta(e *events.ActivityDeltaEvent) {
	for i := len(s.Activities) - 1; i >= 0; i-- {
		if s.Activities[i].MessageID == e.MessageID {
			s.Activities[i].Content = applyPatch(s.Activities[i].Content, e.Patch)
			return
		}
	}
	s.Activities = append(s.Activities, Activity{
		MessageID:    e.MessageID,
		ActivityType: e.ActivityType,
		Content:      applyPatch(nil, e.Patch),
	})
}
