package reporter_test

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/flying-elephant/libwacom/internal/testharness/engine"
	"github.com/flying-elephant/libwacom/internal/testharness/reporter"
	"github.com/flying-elephant/libwacom/pkg/check"
	"github.com/flying-elephant/libwacom/pkg/device"
)

func createTestResult(layout, rule string, status check.Status, err error) *engine.TestResult {
	r := &engine.TestResult{
		Target: &check.Target{
			Device: &device.Device{Name: "Tablet " + layout, LayoutFilename: layout},
		},
		RuleID:   rule,
		RuleName: rule + " name",
		Status:   status,
		Error:    err,
		Duration: 100 * time.Microsecond,
	}
	if status == check.StatusSkip {
		r.Target.Autogenerated = true
		r.SkipReason = "Autogenerated device has errors in SVG: " + err.Error()
	}
	return r
}

func createSuiteResult() *engine.SuiteResult {
	missing := &check.ItemError{Kind: check.ErrMissingElement, ID: "Strip"}
	class := &check.ItemError{Kind: check.ErrMissingClass, ID: "Ring", Count: 1, Class: "TouchRing", Have: "Ring <odd>"}

	return &engine.SuiteResult{
		SuiteName: "layout validation",
		RunID:     "3b7e3a4c-0000-4000-8000-000000000000",
		Targets:   3,
		Results: []*engine.TestResult{
			createTestResult("pass.svg", "SVG-001", check.StatusPass, nil),
			createTestResult("fail.svg", "RING-001", check.StatusFail, class),
			createTestResult("skip.svg", "STRIP-001", check.StatusSkip, missing),
		},
		PassCount: 1,
		FailCount: 1,
		SkipCount: 1,
		Duration:  500 * time.Millisecond,
	}
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewTextReporter(&buf, false)

	r.ReportSuite(createSuiteResult())
	output := buf.String()

	if !strings.Contains(output, "=== layout validation ===") {
		t.Error("Missing suite header")
	}
	if !strings.Contains(output, "Layouts:  3") {
		t.Error("Missing layout count")
	}

	// Passing checks are hidden unless verbose.
	if strings.Contains(output, "[PASS]") {
		t.Error("Passed checks should not be listed in summary mode")
	}
	if !strings.Contains(output, "[FAIL] fail.svg/RING-001 - Tablet fail.svg") {
		t.Error("Missing failed check")
	}
	if !strings.Contains(output, "Error: Missing class 'TouchRing' for Ring. Have: Ring <odd>") {
		t.Error("Missing failure message")
	}
	if !strings.Contains(output, "[SKIP] skip.svg/STRIP-001") {
		t.Error("Missing skipped check")
	}
	if !strings.Contains(output, "Skip reason: Autogenerated device has errors in SVG: Failed to find required element with id Strip") {
		t.Error("Missing skip reason")
	}

	if !strings.Contains(output, "Total:   3") {
		t.Error("Missing total count")
	}
	if !strings.Contains(output, "Skipped: 1") {
		t.Error("Missing skipped count")
	}
	if !strings.Contains(output, "Pass Rate: 50.0%") {
		t.Error("Missing pass rate")
	}
	if strings.Contains(output, "interrupted") {
		t.Error("Unexpected interruption notice")
	}
}

func TestTextReporterVerbose(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewTextReporter(&buf, true)

	r.ReportTest(createTestResult("pass.svg", "SVG-001", check.StatusPass, nil))

	if !strings.Contains(buf.String(), "[PASS] pass.svg/SVG-001") {
		t.Errorf("Verbose mode should list passed checks, got %q", buf.String())
	}
}

func TestTextReporterInterrupted(t *testing.T) {
	var buf bytes.Buffer
	suite := createSuiteResult()
	suite.Interrupted = true

	reporter.NewTextReporter(&buf, false).ReportSuite(suite)

	if !strings.Contains(buf.String(), "Run interrupted") {
		t.Error("Missing interruption notice")
	}
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewJSONReporter(&buf, true)

	r.ReportSuite(createSuiteResult())

	var result reporter.JSONSuiteResult
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if result.RunID != "3b7e3a4c-0000-4000-8000-000000000000" {
		t.Errorf("Unexpected run id %s", result.RunID)
	}
	if result.Layouts != 3 || result.Total != 3 {
		t.Errorf("Expected 3 layouts and 3 results, got %d and %d", result.Layouts, result.Total)
	}
	if result.Passed != 1 || result.Failed != 1 || result.Skipped != 1 {
		t.Errorf("Unexpected counts %d/%d/%d", result.Passed, result.Failed, result.Skipped)
	}
	if result.PassRate != 50.0 {
		t.Errorf("Expected 50%% pass rate, got %.1f%%", result.PassRate)
	}
	if len(result.Tests) != 3 {
		t.Fatalf("Expected 3 tests, got %d", len(result.Tests))
	}

	want := []string{"pass", "fail", "skip"}
	for i, tr := range result.Tests {
		if tr.Status != want[i] {
			t.Errorf("Test %d: expected status %s, got %s", i, want[i], tr.Status)
		}
	}

	skipped := result.Tests[2]
	if skipped.Layout != "skip.svg" || skipped.Rule != "STRIP-001" {
		t.Errorf("Unexpected identification %s/%s", skipped.Layout, skipped.Rule)
	}
	if !skipped.Autogenerated {
		t.Error("Skipped result should be marked autogenerated")
	}
	if skipped.SkipReason == "" {
		t.Error("Missing skip reason")
	}
	if result.Tests[1].Error != "Missing class 'TouchRing' for Ring. Have: Ring <odd>" {
		t.Errorf("Unexpected error %q", result.Tests[1].Error)
	}
}

func TestJSONReporterSingleTest(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewJSONReporter(&buf, false)

	r.ReportTest(createTestResult("pass.svg", "SVG-001", check.StatusPass, nil))

	var jr reporter.JSONTestResult
	if err := json.Unmarshal(buf.Bytes(), &jr); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if jr.Layout != "pass.svg" {
		t.Errorf("Expected layout pass.svg, got %s", jr.Layout)
	}
	if jr.Status != "pass" {
		t.Errorf("Expected status pass, got %s", jr.Status)
	}
	if jr.Error != "" {
		t.Errorf("Passing result should have no error, got %s", jr.Error)
	}
}

func TestJUnitReporter(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewJUnitReporter(&buf)

	r.ReportSuite(createSuiteResult())
	output := buf.String()

	if !strings.HasPrefix(output, `<?xml version="1.0"`) {
		t.Error("Missing XML header")
	}
	if !strings.Contains(output, `<testsuite name="layout validation" tests="3" failures="1" skipped="1"`) {
		t.Error("Missing testsuite element")
	}
	if !strings.Contains(output, `<testcase name="RING-001" classname="fail.svg"`) {
		t.Error("Missing failing test case")
	}
	// Attribute values must be escaped.
	if !strings.Contains(output, `Have: Ring &lt;odd&gt;`) {
		t.Error("Failure message not escaped")
	}
	if !strings.Contains(output, `<skipped message="Autogenerated device has errors in SVG`) {
		t.Error("Missing skipped element")
	}

	// The document must be well formed.
	var doc struct {
		XMLName xml.Name `xml:"testsuite"`
		Cases   []struct {
			Name      string `xml:"name,attr"`
			Classname string `xml:"classname,attr"`
		} `xml:"testcase"`
	}
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("JUnit output is not valid XML: %v", err)
	}
	if len(doc.Cases) != 3 {
		t.Errorf("Expected 3 test cases, got %d", len(doc.Cases))
	}
}

func TestJUnitReporterSingleTest(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewJUnitReporter(&buf)

	r.ReportTest(createTestResult("pass.svg", "SVG-001", check.StatusPass, nil))
	output := buf.String()

	if !strings.Contains(output, `<testsuite name="pass.svg"`) {
		t.Error("Single result should be wrapped in a suite named after the layout")
	}
	if !strings.Contains(output, `tests="1" failures="0" skipped="0"`) {
		t.Error("Should have 1 passing test")
	}
}
