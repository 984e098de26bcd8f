// Package transport defines the publish/subscribe capabilities the
// provisioning handshake needs from an underlying messaging client.
//
// The package deliberately does not implement a broker connection. A real
// deployment adapts its MQTT (or other pub/sub) client to the Transport
// interface; frameworks that inject bare function handles instead can use
// Callbacks, which satisfies Transport from three function fields.
//
// Loopback is an in-memory Transport for tests and demos: it records
// subscriptions, hands published messages to a scripted peer, and delivers
// peer messages back to a registered inbound sink.
package transport
