package provision

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/provwire/provision-go/pkg/log"
	"github.com/provwire/provision-go/pkg/routing"
	"github.com/provwire/provision-go/pkg/transport"
)

// Service errors.
var (
	// ErrMissingCredentials indicates an empty provision key or secret.
	ErrMissingCredentials = errors.New("provision device key and secret are required")

	// ErrSubscribeFailed indicates the transport refused the
	// response-topic subscription.
	ErrSubscribeFailed = errors.New("subscribe to provision response topic failed")

	// ErrPublishFailed indicates the transport could not send the request.
	ErrPublishFailed = errors.New("publish provision request failed")

	// ErrNoTransport indicates no transport has been bound.
	ErrNoTransport = errors.New("no transport bound")
)

// noopHandler is stored in the correlation slot while no attempt is
// pending, so dispatch is always safe to call.
func noopHandler(routing.Document) {}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the capture logger. Defaults to log.NoopLogger.
func WithLogger(l log.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// Service implements the provisioning handshake. It tracks at most one
// outstanding attempt: the response handler lives in a single correlation
// slot that a new request overwrites (last request wins).
//
// Service implements routing.Handler so it can be registered with a
// routing.Router, which delivers the platform's response as a parsed
// document via OnDocument.
type Service struct {
	mu        sync.Mutex
	transport transport.Transport
	handler   ResponseHandler
	awaiting  bool

	logger log.Logger
}

// New creates a provisioning service on the given transport. The transport
// may be nil when the service is registered with a router that binds one.
func New(t transport.Transport, opts ...Option) *Service {
	s := &Service{
		transport: t,
		handler:   noopHandler,
		logger:    log.NoopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Request submits a provisioning attempt. It subscribes to the response
// topic, stores the handler in the correlation slot, and publishes the
// request payload. A nil return means the request was accepted for
// sending, not that provisioning succeeded; the outcome arrives in the
// handler.
//
// Submitting a request while another is pending replaces the stored
// handler: the superseded handler is never invoked.
//
// If the publish fails after a successful subscribe, the subscription and
// stored handler stay active; a later response is still dispatched.
func (s *Service) Request(req Request) error {
	if req.Key == "" || req.Secret == "" {
		return ErrMissingCredentials
	}

	t := s.currentTransport()
	if t == nil {
		return ErrNoTransport
	}

	if err := s.subscribe(t, req.Handler); err != nil {
		return err
	}

	payload, err := req.encodePayload()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}

	if err := t.PublishJSON(RequestTopic, payload); err != nil {
		return fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}

	s.logger.Log(log.Event{
		Timestamp: time.Now(),
		Direction: log.DirectionOut,
		Category:  log.CategoryRequest,
		Topic:     RequestTopic,
		Payload:   payload,
	})
	return nil
}

// Awaiting reports whether a provisioning attempt is pending a response.
func (s *Service) Awaiting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.awaiting
}

// Unsubscribe resets the correlation slot and releases the response-topic
// subscription.
func (s *Service) Unsubscribe() error {
	s.mu.Lock()
	s.handler = noopHandler
	s.awaiting = false
	t := s.transport
	s.mu.Unlock()

	if t == nil {
		return ErrNoTransport
	}
	return t.Unsubscribe(ResponseTopic)
}

// Resubscribe releases the response subscription. The next Request
// re-subscribes, so nothing needs to be restored here.
func (s *Service) Resubscribe() error {
	return s.Unsubscribe()
}

// Initialize implements routing.Handler. Nothing to do.
func (s *Service) Initialize() {}

// ProcessType declares that responses are processed as parsed JSON.
func (s *Service) ProcessType() routing.ProcessType {
	return routing.ProcessJSON
}

// ResponseTopic returns the fixed response topic.
func (s *Service) ResponseTopic() string {
	return ResponseTopic
}

// OnRaw ignores non-JSON payloads on the response topic.
func (s *Service) OnRaw(string, []byte) {}

// OnDocument dispatches the platform's response to the stored handler and
// releases the response subscription: each attempt yields exactly one
// response, so the subscription is never reused.
func (s *Service) OnDocument(topic string, doc routing.Document) {
	s.mu.Lock()
	h := s.handler
	s.mu.Unlock()

	h(doc)

	s.logger.Log(log.Event{
		Timestamp: time.Now(),
		Direction: log.DirectionIn,
		Category:  log.CategoryResponse,
		Topic:     topic,
	})

	_ = s.Unsubscribe()
}

// BindTransport injects the shared transport. The peer-framework hooks
// (buffer sizing, request-id generation) are not used by this handler.
func (s *Service) BindTransport(t transport.Transport, _ routing.Hooks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transport = t
}

// subscribe requests the response-topic subscription and, on success,
// stores the handler in the correlation slot. On failure the slot is left
// unchanged.
func (s *Service) subscribe(t transport.Transport, h ResponseHandler) error {
	if err := t.Subscribe(ResponseTopic); err != nil {
		s.logger.Log(log.Event{
			Timestamp: time.Now(),
			Direction: log.DirectionOut,
			Category:  log.CategoryError,
			Topic:     ResponseTopic,
			Error: &log.ErrorEventData{
				Message: err.Error(),
				Context: "subscribe",
			},
		})
		return fmt.Errorf("%w: %v", ErrSubscribeFailed, err)
	}

	if h == nil {
		h = noopHandler
	}
	s.mu.Lock()
	s.handler = h
	s.awaiting = true
	s.mu.Unlock()
	return nil
}

func (s *Service) currentTransport() transport.Transport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transport
}

// Compile-time interface satisfaction check.
var _ routing.Handler = (*Service)(nil)
