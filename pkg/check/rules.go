package check

import (
	"fmt"

	"github.com/flying-elephant/libwacom/pkg/device"
)

// Scope selects the targets a rule applies to.
type Scope uint8

const (
	// ScopeAll applies to every device with a layout.
	ScopeAll Scope = iota
	// ScopeButtons applies to devices with at least one button.
	ScopeButtons
	// ScopeRings applies to devices with at least one ring.
	ScopeRings
	// ScopeStrips applies to devices with at least one strip.
	ScopeStrips
	// ScopeDials applies to devices with at least one dial.
	ScopeDials
)

// ScopeFor returns the scope matching a control type.
func ScopeFor(c device.ControlType) Scope {
	switch c {
	case device.ControlButton:
		return ScopeButtons
	case device.ControlRing:
		return ScopeRings
	case device.ControlStrip:
		return ScopeStrips
	case device.ControlDial:
		return ScopeDials
	default:
		return ScopeAll
	}
}

// ParseScope parses a scope name as returned by String.
func ParseScope(s string) (Scope, error) {
	for _, sc := range []Scope{ScopeAll, ScopeButtons, ScopeRings, ScopeStrips, ScopeDials} {
		if sc.String() == s {
			return sc, nil
		}
	}
	return ScopeAll, fmt.Errorf("unknown scope %q", s)
}

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeButtons:
		return "buttons"
	case ScopeRings:
		return "rings"
	case ScopeStrips:
		return "strips"
	case ScopeDials:
		return "dials"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// Includes returns true if the device falls within the scope.
func (s Scope) Includes(d *device.Device) bool {
	switch s {
	case ScopeAll:
		return true
	case ScopeButtons:
		return d.NumButtons > 0
	case ScopeRings:
		return d.NumRings > 0
	case ScopeStrips:
		return d.NumStrips > 0
	case ScopeDials:
		return d.NumDials > 0
	default:
		return false
	}
}

// Rule is a validation rule applied to a Target.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "RING-001").
	ID() string
	// Name returns a human-readable name for the rule.
	Name() string
	// Category returns the rule category (e.g., "document", "controls").
	Category() string
	// Scope returns the targets the rule applies to.
	Scope() Scope
	// Downgradable reports whether element errors on autogenerated layouts
	// are recorded as skips.
	Downgradable() bool
	// Check applies the rule and returns the first error found.
	Check(t *Target) error
}

// BaseRule provides a default implementation of common Rule methods.
type BaseRule struct {
	id           string
	name         string
	category     string
	scope        Scope
	downgradable bool
}

// ID returns the rule ID.
func (r *BaseRule) ID() string { return r.id }

// Name returns the rule name.
func (r *BaseRule) Name() string { return r.name }

// Category returns the rule category.
func (r *BaseRule) Category() string { return r.category }

// Scope returns the rule scope.
func (r *BaseRule) Scope() Scope { return r.scope }

// Downgradable returns the downgrade policy.
func (r *BaseRule) Downgradable() bool { return r.downgradable }

// NewBaseRule creates a new BaseRule with the given properties.
func NewBaseRule(id, name, category string, scope Scope, downgradable bool) *BaseRule {
	return &BaseRule{
		id:           id,
		name:         name,
		category:     category,
		scope:        scope,
		downgradable: downgradable,
	}
}
