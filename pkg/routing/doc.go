// Package routing connects topic-based API handlers to a shared
// publish/subscribe transport.
//
// A Handler owns one response topic and declares how inbound payloads on
// that topic should be processed: JSON-mode handlers receive a parsed
// Document, raw-mode handlers receive the payload bytes. The Router binds
// the transport (plus framework Hooks) into each registered handler and
// dispatches inbound messages to the handler whose response topic matches.
//
// The router performs no transport I/O itself; the host's receive loop
// feeds it via Dispatch.
package routing
