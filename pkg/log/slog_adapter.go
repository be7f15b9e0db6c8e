package log

import (
	"context"
	"log/slog"
	"strings"

	"github.com/flying-elephant/libwacom/pkg/check"
)

// SlogAdapter writes events to an slog.Logger.
// Passing results log at Debug, failures at Warn and everything else at Info.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns an adapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event as one record.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("category", event.Category.String()),
	}
	if event.Device != "" {
		attrs = append(attrs, slog.String("device", event.Device))
	}
	if event.Layout != "" {
		attrs = append(attrs, slog.String("layout", event.Layout))
	}

	level := slog.LevelInfo
	msg := "validation event"

	switch {
	case event.Run != nil:
		msg = "run " + strings.ToLower(event.Run.Phase.String())
		if event.Run.Root != "" {
			attrs = append(attrs, slog.String("root", event.Run.Root))
		}
		switch event.Run.Phase {
		case RunStarted:
			attrs = append(attrs,
				slog.Int("targets", event.Run.Targets),
				slog.Any("rules", event.Run.Rules),
			)
		case RunFinished:
			attrs = append(attrs,
				slog.Int("passed", event.Run.Passed),
				slog.Int("failed", event.Run.Failed),
				slog.Int("skipped", event.Run.Skipped),
				slog.Duration("duration", event.Run.Duration),
			)
		}
	case event.Result != nil:
		msg = "check result"
		attrs = append(attrs,
			slog.String("rule", event.Result.RuleID),
			slog.String("status", event.Result.Status.String()),
			slog.Duration("duration", event.Result.Duration),
		)
		if event.Result.Autogenerated {
			attrs = append(attrs, slog.Bool("autogenerated", true))
		}
		if event.Result.Message != "" {
			attrs = append(attrs, slog.String("message", event.Result.Message))
		}
		switch event.Result.Status {
		case check.StatusPass:
			level = slog.LevelDebug
		case check.StatusFail:
			level = slog.LevelWarn
		}
	}

	a.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
