package log

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Reader errors.
var (
	ErrBadHeader = errors.New("invalid capture file header")
)

// Reader reads capture events from a CBOR-encoded .plog file.
// It provides an iterator interface for streaming large files.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	header  fileHeader
}

// NewReader opens a capture file and decodes its header.
func NewReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	dec := NewDecoder(f)
	var header fileHeader
	if err := dec.Decode(&header); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if header.Version == 0 || header.CaptureID == "" {
		f.Close()
		return nil, ErrBadHeader
	}

	return &Reader{file: f, decoder: dec, header: header}, nil
}

// CaptureID returns the capture identifier from the file header.
func (r *Reader) CaptureID() string {
	return r.header.CaptureID
}

// Version returns the capture file format version.
func (r *Reader) Version() uint8 {
	return r.header.Version
}

// Next returns the next event, or io.EOF when the file is exhausted.
func (r *Reader) Next() (Event, error) {
	var event Event
	if err := r.decoder.Decode(&event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// ReadFile reads all events from a capture file.
func ReadFile(path string) ([]Event, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var events []Event
	for {
		event, err := r.Next()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, event)
	}
}
