package transport

import "sync"

// PublishHandler receives messages published through a Loopback. It plays
// the role of the remote platform in tests and demos.
type PublishHandler func(topic string, payload []byte)

// InboundSink receives messages delivered from the peer side of a Loopback,
// typically a router's Dispatch method.
type InboundSink func(topic string, payload []byte)

// Loopback is an in-memory Transport. Published messages are handed to the
// registered PublishHandler; messages the handler (or any other caller)
// delivers via Deliver reach the InboundSink, but only while the topic is
// subscribed. Loopback is safe for concurrent use.
type Loopback struct {
	mu        sync.Mutex
	subs      map[string]struct{}
	onPublish PublishHandler
	inbound   InboundSink
}

// NewLoopback creates an empty in-memory transport.
func NewLoopback() *Loopback {
	return &Loopback{subs: make(map[string]struct{})}
}

// OnPublish registers the handler that receives published messages.
func (l *Loopback) OnPublish(fn PublishHandler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onPublish = fn
}

// SetInbound registers the sink that receives delivered messages.
func (l *Loopback) SetInbound(fn InboundSink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inbound = fn
}

// PublishJSON hands the payload to the registered PublishHandler.
// Publishing with no handler registered is not an error; the message is
// dropped, as a broker with no matching subscriber would.
func (l *Loopback) PublishJSON(topic string, payload []byte) error {
	l.mu.Lock()
	fn := l.onPublish
	l.mu.Unlock()

	if fn != nil {
		fn(topic, payload)
	}
	return nil
}

// Subscribe records the subscription.
func (l *Loopback) Subscribe(topic string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subs[topic] = struct{}{}
	return nil
}

// Unsubscribe removes the subscription. Unsubscribing a topic that was
// never subscribed is not an error.
func (l *Loopback) Unsubscribe(topic string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.subs, topic)
	return nil
}

// Subscribed reports whether the topic currently has a subscription.
func (l *Loopback) Subscribed(topic string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.subs[topic]
	return ok
}

// Deliver sends a message from the peer side to the inbound sink.
// It returns true if the message was delivered, false if the topic is not
// subscribed or no sink is registered.
func (l *Loopback) Deliver(topic string, payload []byte) bool {
	l.mu.Lock()
	_, subscribed := l.subs[topic]
	fn := l.inbound
	l.mu.Unlock()

	if !subscribed || fn == nil {
		return false
	}
	fn(topic, payload)
	return true
}
