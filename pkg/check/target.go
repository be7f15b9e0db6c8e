package check

import (
	"fmt"
	"path/filepath"

	"github.com/flying-elephant/libwacom/pkg/device"
	"github.com/flying-elephant/libwacom/pkg/layout"
)

// Target pairs a device with its layout document.
type Target struct {
	// Device is the device record.
	Device *device.Device

	// Document is the parsed layout, or nil if none could be loaded.
	Document *layout.Document

	// Autogenerated is true if the layout was produced by a generator tool.
	Autogenerated bool
}

// ID returns the base file name of the device layout.
func (t *Target) ID() string {
	return filepath.Base(t.Device.LayoutFilename)
}

// Name returns the device name.
func (t *Target) Name() string {
	return t.Device.Name
}

// HasItem checks an element requirement against the target document.
func (t *Target) HasItem(id string, classes ...string) error {
	return HasItem(t.Document, id, classes...)
}

// Status is the terminal outcome of a check.
type Status uint8

const (
	// StatusPass indicates the check succeeded.
	StatusPass Status = iota
	// StatusFail indicates the check failed.
	StatusFail
	// StatusSkip indicates the check was inconclusive and skipped.
	StatusSkip
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	case StatusSkip:
		return "SKIP"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// Outcome is the result of evaluating one rule against one target.
type Outcome struct {
	Status Status

	// Err is the error that failed or skipped the check.
	Err error

	// SkipReason explains a skip.
	SkipReason string
}

// Message returns a diagnostic message for the outcome, or "" on pass.
func (o Outcome) Message() string {
	switch o.Status {
	case StatusSkip:
		return o.SkipReason
	case StatusFail:
		if o.Err != nil {
			return o.Err.Error()
		}
	}
	return ""
}

// Evaluate runs rule against t. Element errors of downgradable rules on
// autogenerated layouts become skips.
func Evaluate(rule Rule, t *Target) Outcome {
	err := rule.Check(t)
	if err == nil {
		return Outcome{Status: StatusPass}
	}

	if rule.Downgradable() && t.Autogenerated && IsItemError(err) {
		return Outcome{
			Status:     StatusSkip,
			Err:        err,
			SkipReason: fmt.Sprintf("Autogenerated device has errors in SVG: %v", err),
		}
	}
	return Outcome{Status: StatusFail, Err: err}
}
