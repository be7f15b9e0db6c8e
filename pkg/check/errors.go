package check

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingElement indicates a required element id was not found.
	ErrMissingElement = errors.New("missing element")

	// ErrDuplicateID indicates more than one element shares a required id.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrMissingClass indicates an element lacks a required class.
	ErrMissingClass = errors.New("missing class")

	// ErrMissingLayout indicates a device has no loadable layout document.
	ErrMissingLayout = errors.New("missing layout")

	// ErrLayoutNotNeeded indicates a device without controls declares a layout.
	ErrLayoutNotNeeded = errors.New("layout not needed")

	// ErrNotSVG indicates the document root is not an svg element.
	ErrNotSVG = errors.New("root element is not svg")

	// ErrMissingDimension indicates the svg root lacks width or height.
	ErrMissingDimension = errors.New("missing dimension")
)

// ItemError describes a failed element requirement.
type ItemError struct {
	// Kind is one of ErrMissingElement, ErrDuplicateID or ErrMissingClass.
	Kind error

	// ID is the required element id.
	ID string

	// Count is the number of elements found with ID.
	Count int

	// Class is the missing class (ErrMissingClass only).
	Class string

	// Have is the actual class attribute value (ErrMissingClass only).
	Have string
}

func (e *ItemError) Error() string {
	switch e.Kind {
	case ErrMissingElement:
		return fmt.Sprintf("Failed to find required element with id %s", e.ID)
	case ErrDuplicateID:
		return fmt.Sprintf("Expected one element with id %s, have %d", e.ID, e.Count)
	case ErrMissingClass:
		return fmt.Sprintf("Missing class '%s' for %s. Have: %s", e.Class, e.ID, e.Have)
	default:
		return fmt.Sprintf("%v: %s", e.Kind, e.ID)
	}
}

func (e *ItemError) Unwrap() error {
	return e.Kind
}

// IsItemError returns true if err is or wraps an *ItemError.
func IsItemError(err error) bool {
	var ie *ItemError
	return errors.As(err, &ie)
}
