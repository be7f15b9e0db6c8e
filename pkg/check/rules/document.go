package rules

import (
	"fmt"

	"github.com/flying-elephant/libwacom/pkg/check"
)

// CategoryDocument groups rules that apply to the document as a whole.
const CategoryDocument = "document"

// RegisterDocumentRules registers all document-level rules with the given registry.
func RegisterDocumentRules(registry *check.RuleRegistry) {
	registry.Register(NewSVG001())
	registry.Register(NewSVG002())
}

// SVG001 checks that the layout root is an svg element with dimensions.
type SVG001 struct {
	*check.BaseRule
}

func NewSVG001() *SVG001 {
	return &SVG001{
		BaseRule: check.NewBaseRule("SVG-001", "SVG root element", CategoryDocument, check.ScopeAll, false),
	}
}

func (r *SVG001) Check(t *check.Target) error {
	if t.Document == nil || t.Document.Root == nil {
		return fmt.Errorf("%w: %s", check.ErrMissingLayout, t.Device.LayoutFilename)
	}

	root := t.Document.Root
	if !root.IsSVG() {
		return fmt.Errorf("%w: have %q", check.ErrNotSVG, root.Name.Local)
	}
	for _, attr := range []string{"width", "height"} {
		if _, ok := root.Attr(attr); !ok {
			return fmt.Errorf("%w: root element has no %s attribute", check.ErrMissingDimension, attr)
		}
	}
	return nil
}

// SVG002 checks that a device without controls does not declare a layout.
type SVG002 struct {
	*check.BaseRule
}

func NewSVG002() *SVG002 {
	return &SVG002{
		BaseRule: check.NewBaseRule("SVG-002", "Layout requires controls", CategoryDocument, check.ScopeAll, false),
	}
}

func (r *SVG002) Check(t *check.Target) error {
	d := t.Device
	if d.HasLayout() && !d.HasControls() {
		return fmt.Errorf("%w: Device %s has no buttons/rings/strips/dials and should not have an SVG",
			check.ErrLayoutNotNeeded, d.Name)
	}
	return nil
}
