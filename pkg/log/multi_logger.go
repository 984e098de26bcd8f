package log

// MultiLogger fans a capture event out to several loggers, letting a
// handshake be mirrored to the console (SlogAdapter) and a .plog capture
// file (FileLogger) at once.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger that fans events out to all
// provided loggers.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Log hands the event to every configured logger in order.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
