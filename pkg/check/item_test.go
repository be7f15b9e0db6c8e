package check

import (
	"errors"
	"strings"
	"testing"

	"github.com/flying-elephant/libwacom/pkg/layout"
)

func mustParse(t *testing.T, s string) *layout.Document {
	t.Helper()
	doc, err := layout.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestHasItem(t *testing.T) {
	doc := mustParse(t, `<svg width="10" height="10">
  <g>
    <circle id="Ring" class="Ring TouchRing"/>
  </g>
  <rect id="Twice" class="A"/>
  <rect id="Twice" class="A"/>
  <rect id="NoClass"/>
  <rect id="Spaced" class="  Label	A "/>
</svg>`)

	tests := []struct {
		name    string
		id      string
		classes []string
		kind    error
		message string
	}{
		{"present", "Ring", []string{"Ring", "TouchRing"}, nil, ""},
		{"no classes required", "Ring", nil, nil, ""},
		{"whitespace tokens", "Spaced", []string{"Label", "A"}, nil, ""},
		{"missing", "Strip", nil, ErrMissingElement, "Failed to find required element with id Strip"},
		{"duplicate", "Twice", nil, ErrDuplicateID, "Expected one element with id Twice, have 2"},
		{"missing class", "Ring", []string{"Ring", "Touch"}, ErrMissingClass, "Missing class 'Touch' for Ring. Have: Ring TouchRing"},
		{"no class attribute", "NoClass", []string{"A"}, ErrMissingClass, "Missing class 'A' for NoClass. Have: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HasItem(doc, tt.id, tt.classes...)
			if tt.kind == nil {
				if err != nil {
					t.Fatalf("HasItem() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("HasItem() error = %v, want kind %v", err, tt.kind)
			}
			if err.Error() != tt.message {
				t.Errorf("message = %q, want %q", err.Error(), tt.message)
			}
			if !IsItemError(err) {
				t.Error("expected an *ItemError")
			}
		})
	}
}

func TestHasItemNilDocument(t *testing.T) {
	err := HasItem(nil, "Ring")
	if !errors.Is(err, ErrMissingLayout) {
		t.Errorf("HasItem(nil) error = %v, want ErrMissingLayout", err)
	}
	if IsItemError(err) {
		t.Error("missing layout must not be an element error")
	}
}
