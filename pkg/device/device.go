package device

import "fmt"

// MaxButtons is the number of addressable button letters (A-Z).
const MaxButtons = 26

// ControlType identifies a kind of physical control.
type ControlType uint8

const (
	// ControlButton is a push button.
	ControlButton ControlType = iota
	// ControlRing is a touch ring.
	ControlRing
	// ControlStrip is a touch strip.
	ControlStrip
	// ControlDial is a rotary dial.
	ControlDial
)

// String returns the control type name as used in layout ids.
func (c ControlType) String() string {
	switch c {
	case ControlButton:
		return "Button"
	case ControlRing:
		return "Ring"
	case ControlStrip:
		return "Strip"
	case ControlDial:
		return "Dial"
	default:
		return fmt.Sprintf("ControlType(%d)", c)
	}
}

// Device is a single device record from the database.
type Device struct {
	// Name is the human-readable device name and its identity.
	Name string `yaml:"name"`

	// LayoutFilename is the layout diagram file name, relative to the
	// layouts directory. Empty if the device has no layout.
	LayoutFilename string `yaml:"layout,omitempty"`

	NumButtons int `yaml:"buttons,omitempty"`
	NumRings   int `yaml:"rings,omitempty"`
	NumStrips  int `yaml:"strips,omitempty"`
	NumDials   int `yaml:"dials,omitempty"`

	// Buttons maps a button letter to its flags. Letters without an entry
	// have no flags.
	Buttons map[string]ButtonFlags `yaml:"button_flags,omitempty"`
}

// ButtonFlags returns the flags of the button with the given letter.
func (d *Device) ButtonFlags(letter string) ButtonFlags {
	return d.Buttons[letter]
}

// HasLayout returns true if the device references a layout file.
func (d *Device) HasLayout() bool {
	return d.LayoutFilename != ""
}

// Count returns the number of controls of the given type.
func (d *Device) Count(c ControlType) int {
	switch c {
	case ControlButton:
		return d.NumButtons
	case ControlRing:
		return d.NumRings
	case ControlStrip:
		return d.NumStrips
	case ControlDial:
		return d.NumDials
	default:
		return 0
	}
}

// HasControls returns true if the device has at least one control of any type.
func (d *Device) HasControls() bool {
	return d.NumButtons > 0 || d.NumRings > 0 || d.NumStrips > 0 || d.NumDials > 0
}

// ButtonLetters returns the letters of all buttons, "A" upward.
// At most MaxButtons letters are returned.
func (d *Device) ButtonLetters() []string {
	n := min(d.NumButtons, MaxButtons)
	letters := make([]string, 0, max(n, 0))
	for i := 0; i < n; i++ {
		letters = append(letters, string(rune('A'+i)))
	}
	return letters
}

func (d *Device) String() string {
	return fmt.Sprintf("%s (buttons=%d rings=%d strips=%d dials=%d)",
		d.Name, d.NumButtons, d.NumRings, d.NumStrips, d.NumDials)
}

// Catalog provides the device records of a device database.
type Catalog interface {
	// ListDevices returns all devices known to the catalog.
	ListDevices() []*Device
}
