package routing

import (
	"github.com/provwire/provision-go/pkg/transport"
)

// ProcessType declares how a handler's inbound payloads are processed
// before delivery.
type ProcessType uint8

const (
	// ProcessJSON delivers payloads as parsed Documents via OnDocument.
	ProcessJSON ProcessType = iota

	// ProcessRaw delivers payload bytes unparsed via OnRaw.
	ProcessRaw
)

// String returns a human-readable process type name.
func (p ProcessType) String() string {
	switch p {
	case ProcessJSON:
		return "JSON"
	case ProcessRaw:
		return "RAW"
	default:
		return "UNKNOWN"
	}
}

// Document is a parsed JSON object as delivered to JSON-mode handlers.
type Document map[string]any

// Hooks carries the auxiliary functions the host framework offers handlers
// at bind time. Handlers retain only what they use; nil fields are valid.
type Hooks struct {
	// SetBufferSize asks the transport to grow its receive buffer.
	SetBufferSize func(size int) error

	// NextRequestID returns the next shared request identifier.
	NextRequestID func() uint32
}

// Handler is the contract an API implementation fulfills to participate in
// topic routing.
type Handler interface {
	// ProcessType declares whether inbound payloads are parsed as JSON.
	ProcessType() ProcessType

	// ResponseTopic returns the topic this handler receives messages on.
	ResponseTopic() string

	// OnDocument handles a parsed JSON document (JSON-mode handlers).
	OnDocument(topic string, doc Document)

	// OnRaw handles an unparsed payload.
	OnRaw(topic string, payload []byte)

	// Initialize is called once after the transport has been bound.
	Initialize()

	// Unsubscribe releases the handler's response-topic subscription.
	Unsubscribe() error

	// Resubscribe refreshes the handler's subscription state after a
	// transport reconnect.
	Resubscribe() error

	// BindTransport injects the shared transport and framework hooks.
	BindTransport(t transport.Transport, hooks Hooks)
}
