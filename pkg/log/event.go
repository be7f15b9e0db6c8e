package log

import (
	"time"

	"github.com/flying-elephant/libwacom/pkg/check"
)

// Event is a single validation event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID identifies the validation run (UUID).
	RunID string `cbor:"2,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"3,keyasint"`

	// Device is the device name (result events only).
	Device string `cbor:"4,keyasint,omitempty"`

	// Layout is the layout base file name (result events only).
	Layout string `cbor:"5,keyasint,omitempty"`

	// Exactly one payload is set, matching Category.
	Run    *RunEvent    `cbor:"6,keyasint,omitempty"`
	Result *ResultEvent `cbor:"7,keyasint,omitempty"`
}

// Category classifies events.
type Category uint8

const (
	// CategoryRun marks run start and end events.
	CategoryRun Category = 0
	// CategoryResult marks a single check result.
	CategoryResult Category = 1
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRun:
		return "RUN"
	case CategoryResult:
		return "RESULT"
	default:
		return "UNKNOWN"
	}
}

// RunPhase distinguishes run start from run end.
type RunPhase uint8

const (
	// RunStarted is emitted before the first check.
	RunStarted RunPhase = 0
	// RunFinished is emitted after the last check.
	RunFinished RunPhase = 1
)

// String returns the phase name.
func (p RunPhase) String() string {
	switch p {
	case RunStarted:
		return "STARTED"
	case RunFinished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

// RunEvent describes the start or end of a run.
type RunEvent struct {
	Phase RunPhase `cbor:"1,keyasint"`

	// Root is the source root of the run.
	Root string `cbor:"2,keyasint,omitempty"`

	// Targets is the number of validation targets.
	Targets int `cbor:"3,keyasint,omitempty"`

	// Rules lists the enabled rule IDs.
	Rules []string `cbor:"4,keyasint,omitempty"`

	// Summary counts (RunFinished only).
	Passed  int `cbor:"5,keyasint,omitempty"`
	Failed  int `cbor:"6,keyasint,omitempty"`
	Skipped int `cbor:"7,keyasint,omitempty"`

	// Duration of the run in nanoseconds (RunFinished only).
	Duration time.Duration `cbor:"8,keyasint,omitempty"`
}

// ResultEvent describes the outcome of one rule on one target.
type ResultEvent struct {
	RuleID string       `cbor:"1,keyasint"`
	Status check.Status `cbor:"2,keyasint"`

	// Message is the failure diagnostic or skip reason.
	Message string `cbor:"3,keyasint,omitempty"`

	// Autogenerated reports the target's autogenerated flag.
	Autogenerated bool `cbor:"4,keyasint,omitempty"`

	// Duration of the check in nanoseconds.
	Duration time.Duration `cbor:"5,keyasint,omitempty"`
}
