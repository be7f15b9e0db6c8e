package log

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/flying-elephant/libwacom/pkg/check"
)

// Filter selects events when reading a log.
// Zero-valued fields match everything.
type Filter struct {
	// RunID matches a single run.
	RunID string

	// Category matches run or result events.
	Category *Category

	// Device matches the device name exactly.
	Device string

	// Layout matches the layout file name exactly.
	Layout string

	// RuleID matches result events for one rule.
	RuleID string

	// Status matches result events with the given outcome.
	Status *check.Status

	// TimeStart matches events at or after this time.
	TimeStart *time.Time

	// TimeEnd matches events before this time.
	TimeEnd *time.Time
}

// Matches reports whether the event satisfies all filter criteria.
func (f *Filter) Matches(event Event) bool {
	if f.RunID != "" && event.RunID != f.RunID {
		return false
	}
	if f.Category != nil && event.Category != *f.Category {
		return false
	}
	if f.Device != "" && event.Device != f.Device {
		return false
	}
	if f.Layout != "" && event.Layout != f.Layout {
		return false
	}
	if f.RuleID != "" || f.Status != nil {
		// Rule and status only exist on result events.
		if event.Result == nil {
			return false
		}
		if f.RuleID != "" && event.Result.RuleID != f.RuleID {
			return false
		}
		if f.Status != nil && event.Result.Status != *f.Status {
			return false
		}
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// Reader streams events from a log file.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader opens a log file and reads every event.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens a log file and reads only events matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next matching event, or io.EOF at the end of the file.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, err
		}
		if r.filter.Matches(event) {
			return event, nil
		}
	}
}

// ReadAll returns all remaining matching events.
func (r *Reader) ReadAll() ([]Event, error) {
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

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
