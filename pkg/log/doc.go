// Package log provides structured event capture for the provisioning
// handshake.
//
// This package defines the Logger interface and Event type for recording
// handshake activity (requests published, responses dispatched, transport
// errors). It is separate from operational logging (slog) - capture
// produces a machine-readable trace for debugging and analysis.
//
// # Basic Usage
//
// Components accept a Logger; applications choose the implementation:
//
//	// For development: log to console via slog
//	svc := provision.New(t, provision.WithLogger(log.NewSlogAdapter(slog.Default())))
//
//	// For production: write to a binary capture file
//	capture, _ := log.NewFileLogger("/var/log/provision/device.plog")
//
//	// Both: use MultiLogger
//	log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), capture)
//
// # File Format
//
// Capture files use CBOR encoding with the .plog extension: a header
// record identifying the capture, followed by a stream of Event records.
// ReadFile and Reader decode them back.
package log
