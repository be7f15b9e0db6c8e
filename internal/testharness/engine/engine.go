package engine

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flying-elephant/libwacom/pkg/check"
	"github.com/flying-elephant/libwacom/pkg/log"
)

// Engine evaluates the enabled rules of a registry against targets.
type Engine struct {
	config *EngineConfig
	logger *slog.Logger
}

// New creates an engine with the default configuration.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an engine with the given configuration.
// Missing fields fall back to the defaults.
func NewWithConfig(config *EngineConfig) *Engine {
	defaults := DefaultConfig()
	if config == nil {
		config = defaults
	}
	if config.Registry == nil {
		config.Registry = defaults.Registry
	}
	if config.SuiteName == "" {
		config.SuiteName = defaults.SuiteName
	}
	if config.EventLogger == nil {
		config.EventLogger = defaults.EventLogger
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{config: config, logger: logger}
}

// Registry returns the rule registry used by the engine.
func (e *Engine) Registry() *check.RuleRegistry {
	return e.config.Registry
}

// Run evaluates a single rule against a single target.
func (e *Engine) Run(rule check.Rule, t *check.Target) *TestResult {
	result := &TestResult{
		Target:    t,
		RuleID:    rule.ID(),
		RuleName:  rule.Name(),
		StartTime: time.Now(),
	}

	outcome := check.Evaluate(rule, t)
	result.Status = outcome.Status
	result.Error = outcome.Err
	result.SkipReason = outcome.SkipReason

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	return result
}

// RunTarget evaluates every enabled rule whose scope includes the target,
// in registration order.
func (e *Engine) RunTarget(t *check.Target) []*TestResult {
	var results []*TestResult
	for _, rule := range e.config.Registry.EnabledRules() {
		if !rule.Scope().Includes(t.Device) {
			continue
		}
		results = append(results, e.Run(rule, t))
	}
	return results
}

// RunSuite validates all targets and returns the aggregated result.
// Cancellation of ctx is checked between targets.
func (e *Engine) RunSuite(ctx context.Context, targets []*check.Target) *SuiteResult {
	result := &SuiteResult{
		SuiteName: e.config.SuiteName,
		RunID:     uuid.New().String(),
	}

	startTime := time.Now()
	e.emitRunStarted(result.RunID, len(targets))
	e.logger.Info("validation started", "run_id", result.RunID, "targets", len(targets))

	defer func() {
		result.Duration = time.Since(startTime)
		e.emitRunFinished(result)
		e.logger.Info("validation finished",
			"run_id", result.RunID,
			"passed", result.PassCount,
			"failed", result.FailCount,
			"skipped", result.SkipCount,
			"duration", result.Duration)
	}()

	for _, t := range targets {
		select {
		case <-ctx.Done():
			result.Interrupted = true
			e.logger.Warn("validation interrupted", "run_id", result.RunID, "error", ctx.Err())
			return result
		default:
		}

		result.Targets++
		for _, tr := range e.RunTarget(t) {
			result.add(tr)
			e.emitResult(result.RunID, tr)

			if e.config.OnTestComplete != nil {
				e.config.OnTestComplete(tr)
			}
			if tr.Status == check.StatusFail && e.config.StopOnFirstFailure {
				result.Interrupted = true
				return result
			}
		}
	}

	return result
}

func (e *Engine) emitRunStarted(runID string, targets int) {
	var ids []string
	for _, rule := range e.config.Registry.EnabledRules() {
		ids = append(ids, rule.ID())
	}
	e.config.EventLogger.Log(log.Event{
		Timestamp: time.Now(),
		RunID:     runID,
		Category:  log.CategoryRun,
		Run: &log.RunEvent{
			Phase:   log.RunStarted,
			Root:    e.config.Root,
			Targets: targets,
			Rules:   ids,
		},
	})
}

func (e *Engine) emitRunFinished(result *SuiteResult) {
	e.config.EventLogger.Log(log.Event{
		Timestamp: time.Now(),
		RunID:     result.RunID,
		Category:  log.CategoryRun,
		Run: &log.RunEvent{
			Phase:    log.RunFinished,
			Root:     e.config.Root,
			Targets:  result.Targets,
			Passed:   result.PassCount,
			Failed:   result.FailCount,
			Skipped:  result.SkipCount,
			Duration: result.Duration,
		},
	})
}

func (e *Engine) emitResult(runID string, tr *TestResult) {
	e.config.EventLogger.Log(log.Event{
		Timestamp: tr.EndTime,
		RunID:     runID,
		Category:  log.CategoryResult,
		Device:    tr.Target.Name(),
		Layout:    tr.Target.ID(),
		Result: &log.ResultEvent{
			RuleID:        tr.RuleID,
			Status:        tr.Status,
			Message:       tr.Message(),
			Autogenerated: tr.Target.Autogenerated,
			Duration:      tr.Duration,
		},
	})
}
