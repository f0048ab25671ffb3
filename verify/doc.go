// Package verify checks that an event stream respects the protocol's
// sequencing rules: a run opens before anything else happens, every
// streaming Start is eventually matched by an End, steps and thinking
// phases nest correctly, and a finished run is not written to again.
//
// The Verifier is a pure single-pass state machine. Verify reports a
// *VerifyError for the first rule an event violates and Finalize reports
// anything left open at end of stream. It never mutates events and keeps
// no reference to them, so callers are free to treat a violation as fatal
// or merely log it and continue.
package verify
