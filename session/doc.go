// Package session folds a protocol event stream into a Session snapshot:
// the ordered message list, shared state document, step and thinking
// trackers, and the in-flight streaming buffers for any text message or
// tool call that has started but not yet ended.
//
// Apply is total. It never returns an error, events that make no sense
// for the current snapshot are ignored, and malformed state patches skip
// only the offending operation. A remote agent that misbehaves can
// produce a stale session, never a crashed one; run the stream through
// the verify package first when conformance matters.
//
// Sessions are values. Apply returns a new snapshot and leaves its input
// untouched, so callers can retain any intermediate snapshot safely.
package session
