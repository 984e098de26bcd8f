package routing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provwire/provision-go/pkg/transport"
)

// recordingHandler captures router interactions for assertions.
type recordingHandler struct {
	processType ProcessType
	topic       string

	bound        transport.Transport
	hooks        Hooks
	initialized  int
	resubscribed int
	resubErr     error

	docs []Document
	raws [][]byte
}

func (h *recordingHandler) ProcessType() ProcessType { return h.processType }
func (h *recordingHandler) ResponseTopic() string    { return h.topic }

func (h *recordingHandler) OnDocument(_ string, doc Document) {
	h.docs = append(h.docs, doc)
}

func (h *recordingHandler) OnRaw(_ string, payload []byte) {
	h.raws = append(h.raws, payload)
}

func (h *recordingHandler) Initialize()        { h.initialized++ }
func (h *recordingHandler) Unsubscribe() error { return nil }

func (h *recordingHandler) Resubscribe() error {
	h.resubscribed++
	return h.resubErr
}

func (h *recordingHandler) BindTransport(t transport.Transport, hooks Hooks) {
	h.bound = t
	h.hooks = hooks
}

func TestRouterRegisterBindsAndInitializes(t *testing.T) {
	lb := transport.NewLoopback()
	hooks := Hooks{NextRequestID: func() uint32 { return 7 }}
	r := NewRouter(lb, hooks)

	h := &recordingHandler{topic: "/provision/response"}
	require.NoError(t, r.Register(h))

	assert.Equal(t, 1, r.HandlerCount())
	assert.Equal(t, 1, h.initialized)
	assert.NotNil(t, h.bound)
	require.NotNil(t, h.hooks.NextRequestID)
	assert.Equal(t, uint32(7), h.hooks.NextRequestID())
}

func TestRouterRegisterDuplicateTopic(t *testing.T) {
	r := NewRouter(transport.NewLoopback(), Hooks{})

	require.NoError(t, r.Register(&recordingHandler{topic: "/t"}))
	err := r.Register(&recordingHandler{topic: "/t"})
	assert.True(t, errors.Is(err, ErrDuplicateTopic))
}

func TestRouterDispatchJSON(t *testing.T) {
	r := NewRouter(transport.NewLoopback(), Hooks{})
	h := &recordingHandler{topic: "/provision/response", processType: ProcessJSON}
	require.NoError(t, r.Register(h))

	handled := r.Dispatch("/provision/response", []byte(`{"status":"SUCCESS"}`))

	assert.True(t, handled)
	require.Len(t, h.docs, 1)
	assert.Equal(t, "SUCCESS", h.docs[0]["status"])
	assert.Empty(t, h.raws)
}

func TestRouterDispatchInvalidJSONFallsThroughToRaw(t *testing.T) {
	r := NewRouter(transport.NewLoopback(), Hooks{})
	h := &recordingHandler{topic: "/provision/response", processType: ProcessJSON}
	require.NoError(t, r.Register(h))

	handled := r.Dispatch("/provision/response", []byte("not-json"))

	assert.True(t, handled)
	assert.Empty(t, h.docs)
	require.Len(t, h.raws, 1)
	assert.Equal(t, []byte("not-json"), h.raws[0])
}

func TestRouterDispatchRawMode(t *testing.T) {
	r := NewRouter(transport.NewLoopback(), Hooks{})
	h := &recordingHandler{topic: "/firmware/chunk", processType: ProcessRaw}
	require.NoError(t, r.Register(h))

	// Valid JSON still arrives raw for raw-mode handlers.
	assert.True(t, r.Dispatch("/firmware/chunk", []byte(`{"n":1}`)))
	assert.Empty(t, h.docs)
	require.Len(t, h.raws, 1)
}

func TestRouterDispatchUnknownTopic(t *testing.T) {
	r := NewRouter(transport.NewLoopback(), Hooks{})
	assert.False(t, r.Dispatch("/nobody/home", []byte(`{}`)))
}

func TestRouterResubscribeAll(t *testing.T) {
	r := NewRouter(transport.NewLoopback(), Hooks{})

	ok := &recordingHandler{topic: "/a"}
	failing := &recordingHandler{topic: "/b", resubErr: errors.New("broker down")}
	require.NoError(t, r.Register(ok))
	require.NoError(t, r.Register(failing))

	err := r.ResubscribeAll()

	assert.Error(t, err)
	assert.Equal(t, 1, ok.resubscribed, "all handlers should be visited despite errors")
	assert.Equal(t, 1, failing.resubscribed)
}

func TestProcessTypeString(t *testing.T) {
	assert.Equal(t, "JSON", ProcessJSON.String())
	assert.Equal(t, "RAW", ProcessRaw.String())
	assert.Equal(t, "UNKNOWN", ProcessType(9).String())
}
