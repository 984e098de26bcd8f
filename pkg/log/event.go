package log

import "time"

// Event represents a captured handshake event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Topic is the pub/sub topic the event relates to.
	Topic string `cbor:"4,keyasint,omitempty"`

	// Payload is the JSON document involved, when one exists.
	Payload []byte `cbor:"5,keyasint,omitempty"`

	// Error carries error details for CategoryError events.
	Error *ErrorEventData `cbor:"6,keyasint,omitempty"`
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming message.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing message.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryRequest indicates a provisioning request was published.
	CategoryRequest Category = 0
	// CategoryResponse indicates a provisioning response was dispatched.
	CategoryResponse Category = 1
	// CategoryError indicates a transport or handshake error.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRequest:
		return "REQUEST"
	case CategoryResponse:
		return "RESPONSE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures error details.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
