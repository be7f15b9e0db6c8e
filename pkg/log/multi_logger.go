package log

// MultiLogger fans events out to several loggers, typically a SlogAdapter
// for the console and a FileLogger for later inspection.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger returns a MultiLogger over the given loggers.
// Nil entries are dropped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// Log sends the event to every logger in order.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

var _ Logger = (*MultiLogger)(nil)
