// Package catalog provides a YAML-backed device database.
package catalog

import (
	"fmt"

	"github.com/flying-elephant/libwacom/pkg/device"
)

// databaseFile is the on-disk layout of a catalog file.
type databaseFile struct {
	// Devices lists the device records.
	Devices []*device.Device `yaml:"devices"`
}

// LoadError provides details about a catalog loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Device is the name of the offending device record, if known.
	Device string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Device != "" {
		msg = fmt.Sprintf("device %q: %s", e.Device, msg)
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	if e.File != "" {
		return e.File + ": " + msg
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
