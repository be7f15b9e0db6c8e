package rules

import (
	"github.com/flying-elephant/libwacom/pkg/check"
	"github.com/flying-elephant/libwacom/pkg/device"
)

// CategoryControls groups rules that check the depiction of physical controls.
const CategoryControls = "controls"

// RegisterControlRules registers all control rules with the given registry.
func RegisterControlRules(registry *check.RuleRegistry) {
	registry.Register(NewRING001())
	registry.Register(NewSTRIP001())
	registry.Register(NewDIAL001())
	registry.Register(NewBUTTON001())
}

// ControlRule checks the required elements of every control of one type.
type ControlRule struct {
	*check.BaseRule
	control device.ControlType
}

// NewControlRule creates a rule for the given control type.
func NewControlRule(id, name string, control device.ControlType, downgradable bool) *ControlRule {
	return &ControlRule{
		BaseRule: check.NewBaseRule(id, name, CategoryControls, check.ScopeFor(control), downgradable),
		control:  control,
	}
}

// Control returns the control type checked by the rule.
func (r *ControlRule) Control() device.ControlType {
	return r.control
}

func (r *ControlRule) Check(t *check.Target) error {
	if t.Document == nil {
		return check.ErrMissingLayout
	}
	for _, req := range check.DeviceRequirements(t.Device, r.control) {
		if err := t.HasItem(req.ID, req.Classes...); err != nil {
			return err
		}
	}
	return nil
}

// NewRING001 checks touch rings. Failures are never downgraded.
func NewRING001() *ControlRule {
	return NewControlRule("RING-001", "Ring elements", device.ControlRing, false)
}

// NewSTRIP001 checks touch strips; autogenerated layouts are skipped on error.
func NewSTRIP001() *ControlRule {
	return NewControlRule("STRIP-001", "Strip elements", device.ControlStrip, true)
}

// NewDIAL001 checks dials; autogenerated layouts are skipped on error.
func NewDIAL001() *ControlRule {
	return NewControlRule("DIAL-001", "Dial elements", device.ControlDial, true)
}

// NewBUTTON001 checks buttons. Failures are never downgraded.
func NewBUTTON001() *ControlRule {
	return NewControlRule("BUTTON-001", "Button elements", device.ControlButton, false)
}
