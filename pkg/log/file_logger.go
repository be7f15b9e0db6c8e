package log

import (
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger appends events to a file as a CBOR stream.
// It is safe for concurrent use.
type FileLogger struct {
	mu      sync.Mutex
	file    *os.File
	encoder *cbor.Encoder
	closed  bool
	err     error
}

// NewFileLogger opens path for appending, creating it with mode 0644 if
// needed. Several runs can share one file; their events are told apart by
// RunID.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{
		file:    f,
		encoder: NewEncoder(f),
	}, nil
}

// Log writes an event. Calls after Close are ignored.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	// Keep the first write error for Close; the run itself must not fail.
	if err := l.encoder.Encode(event); err != nil && l.err == nil {
		l.err = err
	}
}

// Close closes the file and reports the first write error, if any.
// Calling Close more than once is safe.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	if err := l.file.Close(); err != nil {
		return err
	}
	return l.err
}

var _ Logger = (*FileLogger)(nil)
