// Package canon rewrites raw AG-UI event streams into canonical form.
//
// The wire format allows convenience chunk events (TEXT_MESSAGE_CHUNK,
// TOOL_CALL_CHUNK) that bundle a stream's start, content, and end into single
// events for transport efficiency. Consumers downstream of this package only
// ever see primitive Start/Content/End triads: the [Canonicalizer] expands
// chunks, synthesizes the Start and End events they imply, and guarantees no
// stream is left dangling at end of input.
//
// Canonicalization is a pure stateful transform: feed events through
// [Canonicalizer.Process] and flush with [Canonicalizer.Finalize]. It never
// fails; malformed chunks (a first tool chunk with no tool name) are dropped
// rather than surfaced as errors. Running the canonicalizer over its own
// output is a no-op.
//
// For whole streams, [All] handles slices and [Canonicalizer.Pipe] handles
// channels.
package canon
