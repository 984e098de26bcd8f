package transport

import "errors"

// Transport errors.
var (
	// ErrNotBound is returned by Callbacks when the required function
	// handle for an operation was never set.
	ErrNotBound = errors.New("transport callback not bound")
)

// Transport is the capability set the provisioning handshake requires from
// a publish/subscribe client: publishing a JSON document to a topic and
// managing a topic subscription. Implementations own connection state,
// QoS, and delivery; none of that is visible at this interface.
type Transport interface {
	// PublishJSON publishes an encoded JSON document to the given topic.
	PublishJSON(topic string, payload []byte) error

	// Subscribe subscribes to the given topic.
	Subscribe(topic string) error

	// Unsubscribe removes the subscription for the given topic.
	Unsubscribe(topic string) error
}

// Callbacks adapts bare function handles to the Transport interface, for
// host frameworks that inject callbacks rather than passing a client.
// A nil field causes the corresponding operation to fail with ErrNotBound.
type Callbacks struct {
	// PublishJSONFunc publishes an encoded JSON document to a topic.
	PublishJSONFunc func(topic string, payload []byte) error

	// SubscribeFunc subscribes to a topic.
	SubscribeFunc func(topic string) error

	// UnsubscribeFunc removes a topic subscription.
	UnsubscribeFunc func(topic string) error
}

// PublishJSON calls PublishJSONFunc, or returns ErrNotBound if it is nil.
func (c Callbacks) PublishJSON(topic string, payload []byte) error {
	if c.PublishJSONFunc == nil {
		return ErrNotBound
	}
	return c.PublishJSONFunc(topic, payload)
}

// Subscribe calls SubscribeFunc, or returns ErrNotBound if it is nil.
func (c Callbacks) Subscribe(topic string) error {
	if c.SubscribeFunc == nil {
		return ErrNotBound
	}
	return c.SubscribeFunc(topic)
}

// Unsubscribe calls UnsubscribeFunc, or returns ErrNotBound if it is nil.
func (c Callbacks) Unsubscribe(topic string) error {
	if c.UnsubscribeFunc == nil {
		return ErrNotBound
	}
	return c.UnsubscribeFunc(topic)
}

// Compile-time interface satisfaction checks.
var (
	_ Transport = Callbacks{}
	_ Transport = (*Loopback)(nil)
)
