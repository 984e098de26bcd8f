package log

import (
	"os"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// captureVersion is the current .plog file format version.
const captureVersion uint8 = 1

// fileHeader is the first record of a capture file.
type fileHeader struct {
	Version   uint8     `cbor:"1,keyasint"`
	CaptureID string    `cbor:"2,keyasint"`
	Created   time.Time `cbor:"3,keyasint"`
}

// FileLogger writes capture events to a file in CBOR format.
// It is safe for concurrent use from multiple goroutines.
type FileLogger struct {
	file      *os.File
	encoder   *cbor.Encoder
	captureID string
	mu        sync.Mutex
	closed    bool
}

// NewFileLogger creates a FileLogger that writes to the specified path.
// A new file starts with a header record carrying a fresh capture ID; if
// the file already has content, new events are appended to the existing
// capture. The file is created with permissions 0644 if it doesn't exist.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	l := &FileLogger{
		file:    f,
		encoder: NewEncoder(f),
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.Size() == 0 {
		l.captureID = uuid.NewString()
		header := fileHeader{
			Version:   captureVersion,
			CaptureID: l.captureID,
			Created:   time.Now(),
		}
		if err := l.encoder.Encode(header); err != nil {
			f.Close()
			return nil, err
		}
	}

	return l, nil
}

// CaptureID returns the capture identifier written to the file header,
// or "" when appending to an existing capture.
func (l *FileLogger) CaptureID() string {
	return l.captureID
}

// Log writes an event to the capture file.
// This method is safe for concurrent use.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	// Ignore encoding errors - capture must not disrupt the application
	_ = l.encoder.Encode(event)
}

// Close closes the capture file.
// It is safe to call Close multiple times.
// After Close is called, subsequent Log calls are silently ignored.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true
	return l.file.Close()
}

// Compile-time interface satisfaction check.
var _ Logger = (*FileLogger)(nil)
