package verify

import (
	"fmt"

	"github.com/spetersoncode/agui/events"
)

// ErrorKind identifies the sequencing rule a stream violated.
type ErrorKind string

const (
	KindFirstEventMustBeRunStarted ErrorKind = "first event must be RUN_STARTED"
	KindRunAlreadyStarted          ErrorKind = "run already started"
	KindRunAlreadyFinished         ErrorKind = "run already finished"
	KindRunAlreadyErrored          ErrorKind = "run already errored"
	KindTextAlreadyStarted         ErrorKind = "text message already started"
	KindTextNotStarted             ErrorKind = "text message not started"
	KindToolAlreadyStarted         ErrorKind = "tool call already started"
	KindToolNotStarted             ErrorKind = "tool call not started"
	KindStepAlreadyStarted         ErrorKind = "step already started"
	KindStepNotStarted             ErrorKind = "step not started"
	KindThinkingAlreadyStarted     ErrorKind = "thinking already started"
	KindThinkingNotStarted         ErrorKind = "thinking not started"
	KindThinkingTextAlreadyStarted ErrorKind = "thinking text already started"
	KindThinkingTextNotStarted     ErrorKind = "thinking text not started"
	KindRunNotFinished             ErrorKind = "run not finished"
	KindTextNotEnded               ErrorKind = "text message not ended"
	KindToolNotEnded               ErrorKind = "tool call not ended"
	KindStepNotFinished            ErrorKind = "step not finished"
)

// VerifyError reports a single sequencing violation. EventType is the
// event that triggered it, or empty for end-of-stream checks. ID carries
// the message id, tool call id, or step name involved, when there is one.
type VerifyError struct {
	Kind      ErrorKind
	EventType events.EventType
	ID        string
}

func (e *VerifyError) Error() string {
	msg := "verify: " + string(e.Kind)
	if e.ID != "" {
		msg += fmt.Sprintf(" (%s)", e.ID)
	}
	if e.EventType != "" {
		msg += fmt.Sprintf(" on %s", e.EventType)
	}
	return msg
}

func violation(kind ErrorKind, t events.EventType, id string) *VerifyError {
	return &VerifyError{Kind: kind, EventType: t, ID: id}
}
