package pipeline

import (
	"slices"

	"github.com/spetersoncode/agui"
	"github.com/spetersoncode/agui/events"
	"github.com/spetersoncode/agui/session"
)

// Decision is a subscriber's verdict on one event. A nil Messages or
// State leaves that part of the session alone; non-nil replaces it ahead
// of the reducer. StopPropagation suppresses re-emission of the event to
// downstream consumers, but the reducer still applies it so the session
// stays consistent.
type Decision struct {
	Messages        *[]agui.Message
	State           *any
	StopPropagation bool
}

// Continue is the no-op decision.
func Continue() Decision {
	return Decision{}
}

// ReplaceMessages builds a decision that swaps the session's message list.
func ReplaceMessages(messages []agui.Message) Decision {
	return Decision{Messages: &messages}
}

// ReplaceState builds a decision that swaps the session's state document.
func ReplaceState(state any) Decision {
	return Decision{State: &state}
}

// Subscriber observes each event together with the session snapshot it
// is about to be applied to.
type Subscriber interface {
	OnEvent(event events.Event, s session.Session) Decision
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(event events.Event, s session.Session) Decision

func (f SubscriberFunc) OnEvent(event events.Event, s session.Session) Decision {
	return f(event, s)
}

// Chain runs subscribers in registration order. The chain halts early
// when a member requests StopPropagation.
type Chain struct {
	subscribers []Subscriber
}

// NewChain returns a chain over the given subscribers.
func NewChain(subscribers ...Subscriber) *Chain {
	return &Chain{subscribers: subscribers}
}

// Add appends subscribers to the end of the chain.
func (c *Chain) Add(subscribers ...Subscriber) {
	c.subscribers = append(c.subscribers, subscribers...)
}

// Notify offers the event to each subscriber, folding any mutation
// decisions into the session. The returned bool reports whether the
// event should still be emitted downstream.
func (c *Chain) Notify(event events.Event, s session.Session) (session.Session, bool) {
	for _, sub := range c.subscribers {
		decision := sub.OnEvent(event, s)
		if decision.Messages != nil {
			s.Messages = slices.Clone(*decision.Messages)
		}
		if decision.State != nil {
			s.State = *decision.State
		}
		if decision.StopPropagation {
			return s, false
		}
	}
	return s, true
}
