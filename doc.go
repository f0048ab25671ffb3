// Package agui implements the core of the AG-UI Agent-User Interaction
// Protocol: the types shared by every layer of the protocol engine.
//
// AG-UI is an open, lightweight, event-based protocol that standardizes how
// AI agents connect to user-facing applications. An agent run is described by
// a stream of discriminated events (lifecycle, streamed text, tool calls,
// state synchronization, thinking traces) that a client folds into durable
// conversation state.
//
// # Packages
//
// The protocol engine is split by concern, leaves first:
//
//   - [github.com/spetersoncode/agui/events]: the event model and its wire
//     encode/decode. Every other package depends on it.
//   - [github.com/spetersoncode/agui/canon]: expands convenience chunk events
//     into canonical Start/Content/End triads and guarantees no stream is
//     left dangling.
//   - [github.com/spetersoncode/agui/verify]: a state machine that rejects
//     illegal event orderings.
//   - [github.com/spetersoncode/agui/session]: folds a validated event stream
//     into durable session snapshots, including JSON Patch application.
//   - [github.com/spetersoncode/agui/pipeline]: subscriber and middleware
//     composition around the reducer.
//
// This root package holds the wire-shaped conversation types ([Message],
// [ToolCall], [RunAgentInput]) and the ID generators used across packages.
//
// # Data Flow
//
// Raw wire events flow through the engine in a fixed order:
//
//	decode -> canonicalize -> verify (optional) -> reduce -> Session
//
// Transports (HTTP/SSE readers, WebSocket wrappers) are out of scope: they
// frame bytes into one JSON map per event and hand the decoded events to this
// core. See the events package for decoding and the pipeline package for
// driving a full stream.
package agui
