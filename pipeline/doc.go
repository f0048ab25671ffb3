// Package pipeline connects a producing agent to session state. A
// Producer turns run input into an event stream; Middleware wraps a
// Producer to add cross-cutting behavior (timing, logging, gating); and
// Subscribers observe each canonical event before the session reducer
// applies it, optionally patching messages or state and suppressing
// re-emission downstream.
//
// Runner ties the stages together: canonicalize, verify, notify
// subscribers, reduce. In strict mode a sequencing violation aborts the
// run; in the default lenient mode it is logged with full event context
// and the stream continues.
package pipeline
