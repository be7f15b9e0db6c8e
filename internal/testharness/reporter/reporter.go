// Package reporter formats validation results.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/flying-elephant/libwacom/internal/testharness/engine"
	"github.com/flying-elephant/libwacom/pkg/check"
)

// Reporter formats and outputs validation results.
type Reporter interface {
	// ReportSuite reports results for a whole run.
	ReportSuite(result *engine.SuiteResult)

	// ReportTest reports a single result.
	ReportTest(result *engine.TestResult)
}

// TextReporter outputs human-readable text reports.
// Passing checks are listed only in verbose mode.
type TextReporter struct {
	writer  io.Writer
	verbose bool
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(w io.Writer, verbose bool) *TextReporter {
	return &TextReporter{
		writer:  w,
		verbose: verbose,
	}
}

// ReportSuite reports suite results in text format.
func (r *TextReporter) ReportSuite(result *engine.SuiteResult) {
	fmt.Fprintf(r.writer, "\n=== %s ===\n", result.SuiteName)
	fmt.Fprintf(r.writer, "Run:      %s\n", result.RunID)
	fmt.Fprintf(r.writer, "Layouts:  %d\n", result.Targets)
	fmt.Fprintf(r.writer, "Duration: %s\n\n", result.Duration.Round(time.Millisecond))

	for _, tr := range result.Results {
		r.ReportTest(tr)
	}

	fmt.Fprintf(r.writer, "\n--- Summary ---\n")
	fmt.Fprintf(r.writer, "Total:   %d\n", len(result.Results))
	fmt.Fprintf(r.writer, "Passed:  %d\n", result.PassCount)
	fmt.Fprintf(r.writer, "Failed:  %d\n", result.FailCount)
	fmt.Fprintf(r.writer, "Skipped: %d\n", result.SkipCount)

	if total := result.PassCount + result.FailCount; total > 0 {
		rate := float64(result.PassCount) / float64(total) * 100
		fmt.Fprintf(r.writer, "Pass Rate: %.1f%%\n", rate)
	}
	if result.Interrupted {
		fmt.Fprintf(r.writer, "Run interrupted before all layouts were checked\n")
	}
}

// ReportTest reports a single result in text format.
func (r *TextReporter) ReportTest(result *engine.TestResult) {
	if result.Passed() && !r.verbose {
		return
	}

	fmt.Fprintf(r.writer, "[%s] %s - %s (%s)\n",
		result.Status, result.Name(), result.Target.Name(), result.Duration.Round(time.Microsecond))

	switch result.Status {
	case check.StatusSkip:
		fmt.Fprintf(r.writer, "       Skip reason: %s\n", result.SkipReason)
	case check.StatusFail:
		if result.Error != nil {
			fmt.Fprintf(r.writer, "       Error: %v\n", result.Error)
		}
	}
}

// JSONReporter outputs JSON-formatted reports.
type JSONReporter struct {
	writer io.Writer
	pretty bool
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(w io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{
		writer: w,
		pretty: pretty,
	}
}

// JSONSuiteResult is the JSON representation of a run.
type JSONSuiteResult struct {
	SuiteName   string           `json:"suite_name"`
	RunID       string           `json:"run_id"`
	Layouts     int              `json:"layouts"`
	Duration    string           `json:"duration"`
	Total       int              `json:"total"`
	Passed      int              `json:"passed"`
	Failed      int              `json:"failed"`
	Skipped     int              `json:"skipped"`
	PassRate    float64          `json:"pass_rate"`
	Interrupted bool             `json:"interrupted,omitempty"`
	Tests       []JSONTestResult `json:"tests"`
}

// JSONTestResult is the JSON representation of a single result.
type JSONTestResult struct {
	Layout        string `json:"layout"`
	Device        string `json:"device"`
	Rule          string `json:"rule"`
	RuleName      string `json:"rule_name"`
	Status        string `json:"status"`
	Autogenerated bool   `json:"autogenerated,omitempty"`
	Duration      string `json:"duration"`
	Error         string `json:"error,omitempty"`
	SkipReason    string `json:"skip_reason,omitempty"`
}

// ReportSuite reports suite results in JSON format.
func (r *JSONReporter) ReportSuite(result *engine.SuiteResult) {
	var passRate float64
	if total := result.PassCount + result.FailCount; total > 0 {
		passRate = float64(result.PassCount) / float64(total) * 100
	}

	jr := JSONSuiteResult{
		SuiteName:   result.SuiteName,
		RunID:       result.RunID,
		Layouts:     result.Targets,
		Duration:    result.Duration.Round(time.Millisecond).String(),
		Total:       len(result.Results),
		Passed:      result.PassCount,
		Failed:      result.FailCount,
		Skipped:     result.SkipCount,
		PassRate:    passRate,
		Interrupted: result.Interrupted,
		Tests:       make([]JSONTestResult, 0, len(result.Results)),
	}

	for _, tr := range result.Results {
		jr.Tests = append(jr.Tests, testToJSON(tr))
	}

	r.writeJSON(jr)
}

// ReportTest reports a single result in JSON format.
func (r *JSONReporter) ReportTest(result *engine.TestResult) {
	r.writeJSON(testToJSON(result))
}

func testToJSON(result *engine.TestResult) JSONTestResult {
	jr := JSONTestResult{
		Layout:        result.Target.ID(),
		Device:        result.Target.Name(),
		Rule:          result.RuleID,
		RuleName:      result.RuleName,
		Status:        strings.ToLower(result.Status.String()),
		Autogenerated: result.Target.Autogenerated,
		Duration:      result.Duration.String(),
		SkipReason:    result.SkipReason,
	}
	if result.Error != nil {
		jr.Error = result.Error.Error()
	}
	return jr
}

func (r *JSONReporter) writeJSON(v any) {
	var data []byte
	var err error

	if r.pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		fmt.Fprintf(r.writer, `{"error": "failed to marshal: %s"}`, err)
		return
	}

	fmt.Fprintln(r.writer, string(data))
}

// JUnitReporter outputs JUnit XML for CI integration.
// Each layout becomes the classname and each rule a testcase.
type JUnitReporter struct {
	writer io.Writer
}

// NewJUnitReporter creates a new JUnit reporter.
func NewJUnitReporter(w io.Writer) *JUnitReporter {
	return &JUnitReporter{writer: w}
}

// ReportSuite reports suite results in JUnit XML format.
func (r *JUnitReporter) ReportSuite(result *engine.SuiteResult) {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("\n")

	fmt.Fprintf(&b, `<testsuite name="%s" tests="%d" failures="%d" skipped="%d" time="%.3f">`,
		escapeXML(result.SuiteName),
		len(result.Results),
		result.FailCount,
		result.SkipCount,
		result.Duration.Seconds())
	b.WriteString("\n")

	for _, tr := range result.Results {
		fmt.Fprintf(&b, `  <testcase name="%s" classname="%s" time="%.3f">`,
			escapeXML(tr.RuleID),
			escapeXML(tr.Target.ID()),
			tr.Duration.Seconds())
		b.WriteString("\n")

		switch tr.Status {
		case check.StatusSkip:
			fmt.Fprintf(&b, `    <skipped message="%s"/>`, escapeXML(tr.SkipReason))
			b.WriteString("\n")
		case check.StatusFail:
			msg := tr.Message()
			fmt.Fprintf(&b, `    <failure message="%s">`, escapeXML(msg))
			b.WriteString("\n")
			fmt.Fprintf(&b, "      <![CDATA[%s: %s]]>\n", tr.Target.Name(), msg)
			b.WriteString("    </failure>\n")
		}

		b.WriteString("  </testcase>\n")
	}

	b.WriteString("</testsuite>\n")

	fmt.Fprint(r.writer, b.String())
}

// ReportTest reports a single result wrapped in a one-case testsuite.
func (r *JUnitReporter) ReportTest(result *engine.TestResult) {
	suite := &engine.SuiteResult{
		SuiteName: result.Target.ID(),
		Targets:   1,
		Results:   []*engine.TestResult{result},
		Duration:  result.Duration,
	}
	switch result.Status {
	case check.StatusPass:
		suite.PassCount = 1
	case check.StatusSkip:
		suite.SkipCount = 1
	default:
		suite.FailCount = 1
	}
	r.ReportSuite(suite)
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
