package layout

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Loader resolves layout file names against a layouts directory.
type Loader struct {
	// Dir is the layouts directory.
	Dir string

	// Options configures parsing.
	Options ParseOptions

	// Logger is the optional logger for debug output.
	Logger *slog.Logger
}

// NewLoader creates a loader for the given layouts directory.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	return &Loader{Dir: dir, Logger: logger}
}

// Path returns the resolved path of a layout file name.
func (l *Loader) Path(filename string) string {
	return filepath.Join(l.Dir, filename)
}

// Open parses the named layout file, returning any error encountered.
func (l *Loader) Open(filename string) (*Document, error) {
	f, err := os.Open(l.Path(filename))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseWithOptions(f, l.Options)
}

// Load parses the named layout file. A missing or unparseable file yields
// nil; devices without visible controls legitimately have no layout.
func (l *Loader) Load(filename string) *Document {
	if filename == "" {
		return nil
	}

	doc, err := l.Open(filename)
	if err != nil {
		l.logger().Debug("layout not loaded", "file", l.Path(filename), "error", err)
		return nil
	}
	return doc
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l.Logger
}
