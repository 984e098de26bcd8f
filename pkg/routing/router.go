package routing

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/provwire/provision-go/pkg/transport"
)

// Router errors.
var (
	ErrDuplicateTopic = errors.New("handler already registered for topic")
)

// Router dispatches inbound pub/sub messages to registered handlers by
// response topic. It is safe for concurrent use.
type Router struct {
	mu        sync.RWMutex
	transport transport.Transport
	hooks     Hooks
	handlers  map[string]Handler
}

// NewRouter creates a router that binds the given transport and hooks into
// every handler it registers.
func NewRouter(t transport.Transport, hooks Hooks) *Router {
	return &Router{
		transport: t,
		hooks:     hooks,
		handlers:  make(map[string]Handler),
	}
}

// Register binds the transport into the handler, initializes it, and adds
// it to the dispatch table keyed by its response topic.
func (r *Router) Register(h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	topic := h.ResponseTopic()
	if _, exists := r.handlers[topic]; exists {
		return ErrDuplicateTopic
	}

	h.BindTransport(r.transport, r.hooks)
	h.Initialize()
	r.handlers[topic] = h
	return nil
}

// Dispatch routes an inbound message to the handler registered for the
// topic. JSON-mode handlers receive the payload parsed into a Document;
// payloads that are not JSON objects fall through to OnRaw. Dispatch
// returns false if no handler is registered for the topic.
func (r *Router) Dispatch(topic string, payload []byte) bool {
	r.mu.RLock()
	h, ok := r.handlers[topic]
	r.mu.RUnlock()

	if !ok {
		return false
	}

	if h.ProcessType() == ProcessJSON {
		var doc Document
		if err := json.Unmarshal(payload, &doc); err != nil {
			h.OnRaw(topic, payload)
			return true
		}
		h.OnDocument(topic, doc)
		return true
	}

	h.OnRaw(topic, payload)
	return true
}

// ResubscribeAll asks every handler to refresh its subscription state,
// typically after a transport reconnect. All handlers are visited; the
// joined error is returned.
func (r *Router) ResubscribeAll() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs []error
	for _, h := range r.handlers {
		if err := h.Resubscribe(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// HandlerCount returns the number of registered handlers.
func (r *Router) HandlerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}
