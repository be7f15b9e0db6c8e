package check

import (
	"errors"
	"testing"

	"github.com/flying-elephant/libwacom/pkg/device"
)

type stubRule struct {
	*BaseRule
	err error
}

func (r *stubRule) Check(*Target) error { return r.err }

func newStubRule(id, category string, scope Scope, downgradable bool, err error) *stubRule {
	return &stubRule{BaseRule: NewBaseRule(id, id, category, scope, downgradable), err: err}
}

func TestRuleRegistry(t *testing.T) {
	r := NewRuleRegistry()
	r.Register(newStubRule("A-001", "a", ScopeAll, false, nil))
	r.Register(newStubRule("B-001", "b", ScopeRings, false, nil))
	r.Register(newStubRule("B-002", "b", ScopeStrips, true, nil))

	if r.Count() != 3 || r.EnabledCount() != 3 {
		t.Fatalf("Count=%d EnabledCount=%d, want 3/3", r.Count(), r.EnabledCount())
	}

	r.Disable("B-001")
	if r.IsEnabled("B-001") {
		t.Error("B-001 should be disabled")
	}
	if got := len(r.EnabledRules()); got != 2 {
		t.Errorf("EnabledRules() = %d, want 2", got)
	}

	r.Disable("unknown")
	if r.Count() != 3 {
		t.Error("disabling an unknown rule must not register it")
	}

	r.DisableAll()
	r.EnableCategory("b")
	rules := r.EnabledRules()
	if len(rules) != 2 || rules[0].ID() != "B-001" || rules[1].ID() != "B-002" {
		t.Errorf("EnabledRules() after EnableCategory = %v", rules)
	}

	if cats := r.Categories(); len(cats) != 2 || cats[0] != "a" || cats[1] != "b" {
		t.Errorf("Categories() = %v", cats)
	}
	if got := len(r.RulesByCategory("b")); got != 2 {
		t.Errorf("RulesByCategory(b) = %d, want 2", got)
	}
	if r.GetRule("A-001") == nil || r.GetRule("nope") != nil {
		t.Error("GetRule lookup mismatch")
	}
}

func TestRuleRegistryRunRules(t *testing.T) {
	elemErr := &ItemError{Kind: ErrMissingElement, ID: "Strip"}

	r := NewRuleRegistry()
	r.Register(newStubRule("ALL", "a", ScopeAll, false, nil))
	r.Register(newStubRule("RING", "a", ScopeRings, false, elemErr))
	r.Register(newStubRule("STRIP", "a", ScopeStrips, true, elemErr))

	target := &Target{
		Device:        &device.Device{Name: "Foo", NumStrips: 1},
		Autogenerated: true,
	}

	outcomes := r.RunRules(target)
	if len(outcomes) != 2 {
		t.Fatalf("RunRules() = %d outcomes, want 2 (ring rule out of scope)", len(outcomes))
	}
	if outcomes["ALL"].Status != StatusPass {
		t.Errorf("ALL = %v, want PASS", outcomes["ALL"].Status)
	}
	if outcomes["STRIP"].Status != StatusSkip {
		t.Errorf("STRIP = %v, want SKIP", outcomes["STRIP"].Status)
	}
}

func TestEvaluate(t *testing.T) {
	elemErr := &ItemError{Kind: ErrMissingClass, ID: "Strip", Class: "TouchStrip", Have: "Strip"}
	otherErr := errors.New("boom")

	tests := []struct {
		name          string
		downgradable  bool
		autogenerated bool
		err           error
		want          Status
	}{
		{"pass", true, true, nil, StatusPass},
		{"hard fail", false, true, elemErr, StatusFail},
		{"not autogenerated", true, false, elemErr, StatusFail},
		{"downgraded", true, true, elemErr, StatusSkip},
		{"non element error", true, true, otherErr, StatusFail},
		{"missing layout", true, true, ErrMissingLayout, StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := newStubRule("X", "x", ScopeAll, tt.downgradable, tt.err)
			target := &Target{Device: &device.Device{Name: "Foo"}, Autogenerated: tt.autogenerated}

			got := Evaluate(rule, target)
			if got.Status != tt.want {
				t.Fatalf("Evaluate() = %v, want %v", got.Status, tt.want)
			}
			if got.Status == StatusSkip && got.Message() != "Autogenerated device has errors in SVG: Missing class 'TouchStrip' for Strip. Have: Strip" {
				t.Errorf("skip message = %q", got.Message())
			}
			if got.Status == StatusFail && got.Message() != tt.err.Error() {
				t.Errorf("fail message = %q", got.Message())
			}
		})
	}
}

func TestScope(t *testing.T) {
	d := &device.Device{NumButtons: 1, NumDials: 2}

	for _, tt := range []struct {
		scope Scope
		want  bool
	}{
		{ScopeAll, true},
		{ScopeButtons, true},
		{ScopeRings, false},
		{ScopeStrips, false},
		{ScopeDials, true},
	} {
		if got := tt.scope.Includes(d); got != tt.want {
			t.Errorf("%s.Includes() = %v, want %v", tt.scope, got, tt.want)
		}
		parsed, err := ParseScope(tt.scope.String())
		if err != nil || parsed != tt.scope {
			t.Errorf("ParseScope(%q) = %v, %v", tt.scope.String(), parsed, err)
		}
	}

	if _, err := ParseScope("pedals"); err == nil {
		t.Error("expected error for unknown scope")
	}
	if ScopeFor(device.ControlStrip) != ScopeStrips {
		t.Error("ScopeFor(strip) mismatch")
	}
}

func TestTargetID(t *testing.T) {
	target := &Target{Device: &device.Device{Name: "Foo", LayoutFilename: "sub/foo.svg"}}
	if target.ID() != "foo.svg" {
		t.Errorf("ID() = %q, want foo.svg", target.ID())
	}
	if target.Name() != "Foo" {
		t.Errorf("Name() = %q", target.Name())
	}
}
