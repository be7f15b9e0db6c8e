// Package engine runs validation rules over layout targets and collects results.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/flying-elephant/libwacom/pkg/check"
	"github.com/flying-elephant/libwacom/pkg/log"
)

// TestResult is the outcome of one rule applied to one target.
type TestResult struct {
	// Target is the validated device layout.
	Target *check.Target

	// RuleID and RuleName identify the rule.
	RuleID   string
	RuleName string

	// Status is the terminal outcome.
	Status check.Status

	// Error is the error that failed or skipped the check, if any.
	Error error

	// SkipReason explains why the check was skipped.
	SkipReason string

	// Duration is how long the check took.
	Duration time.Duration

	// StartTime when the check started.
	StartTime time.Time

	// EndTime when the check finished.
	EndTime time.Time
}

// Passed reports whether the check passed.
func (r *TestResult) Passed() bool { return r.Status == check.StatusPass }

// Skipped reports whether the check was skipped.
func (r *TestResult) Skipped() bool { return r.Status == check.StatusSkip }

// Name returns "<layout>/<rule>", unique within a run.
func (r *TestResult) Name() string {
	return fmt.Sprintf("%s/%s", r.Target.ID(), r.RuleID)
}

// Message returns the failure diagnostic or skip reason.
func (r *TestResult) Message() string {
	switch r.Status {
	case check.StatusSkip:
		return r.SkipReason
	case check.StatusFail:
		if r.Error != nil {
			return r.Error.Error()
		}
	}
	return ""
}

// SuiteResult is the outcome of a validation run.
type SuiteResult struct {
	// SuiteName identifies the run in reports.
	SuiteName string

	// RunID is the unique identifier of the run.
	RunID string

	// Targets is the number of targets validated.
	Targets int

	// Results contains one entry per (target, rule) pair.
	Results []*TestResult

	PassCount int
	FailCount int
	SkipCount int

	// Duration is the total time for the run.
	Duration time.Duration

	// Interrupted is set when the run stopped before all targets were checked.
	Interrupted bool
}

// Failed reports whether any check failed. Skips do not count.
func (s *SuiteResult) Failed() bool {
	return s.FailCount > 0
}

func (s *SuiteResult) add(r *TestResult) {
	s.Results = append(s.Results, r)
	switch r.Status {
	case check.StatusPass:
		s.PassCount++
	case check.StatusSkip:
		s.SkipCount++
	default:
		s.FailCount++
	}
}

// EngineConfig configures the engine.
type EngineConfig struct {
	// Registry supplies the enabled rules. Defaults to an empty registry.
	Registry *check.RuleRegistry

	// SuiteName names the run in reports.
	SuiteName string

	// Root is recorded in run events.
	Root string

	// EventLogger receives run and result events. Nil disables event logging.
	EventLogger log.Logger

	// Logger is used for operational logging. Nil discards.
	Logger *slog.Logger

	// StopOnFirstFailure ends the run after the first failed check.
	StopOnFirstFailure bool

	// OnTestComplete is called after each check.
	OnTestComplete func(*TestResult)
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		Registry:    check.NewRuleRegistry(),
		SuiteName:   "layout validation",
		EventLogger: log.NoopLogger{},
	}
}
