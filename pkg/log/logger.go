package log

// Logger receives validation events.
// Pass NoopLogger to disable event logging.
type Logger interface {
	// Log records an event. Implementations must be safe for concurrent use.
	Log(event Event)
}

// NoopLogger discards all events. It is usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}
