package device

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ButtonFlags is a set of behavioral flags attached to a single button.
type ButtonFlags uint32

const (
	// ButtonNone indicates a button without any flag.
	ButtonNone ButtonFlags = 0

	// ButtonPositionLeft places the button on the left side of the tablet.
	ButtonPositionLeft ButtonFlags = 1 << 0
	// ButtonPositionRight places the button on the right side of the tablet.
	ButtonPositionRight ButtonFlags = 1 << 1
	// ButtonPositionTop places the button on the top side of the tablet.
	ButtonPositionTop ButtonFlags = 1 << 2
	// ButtonPositionBottom places the button on the bottom side of the tablet.
	ButtonPositionBottom ButtonFlags = 1 << 3

	// ButtonRingModeSwitch toggles the mode of the first ring.
	ButtonRingModeSwitch ButtonFlags = 1 << 4
	// ButtonRing2ModeSwitch toggles the mode of the second ring.
	ButtonRing2ModeSwitch ButtonFlags = 1 << 5
	// ButtonStripModeSwitch toggles the mode of the first strip.
	ButtonStripModeSwitch ButtonFlags = 1 << 6
	// ButtonStrip2ModeSwitch toggles the mode of the second strip.
	ButtonStrip2ModeSwitch ButtonFlags = 1 << 7
	// ButtonOLED indicates the button has an OLED display.
	ButtonOLED ButtonFlags = 1 << 8
	// ButtonDialModeSwitch toggles the mode of the first dial.
	ButtonDialModeSwitch ButtonFlags = 1 << 9
	// ButtonDial2ModeSwitch toggles the mode of the second dial.
	ButtonDial2ModeSwitch ButtonFlags = 1 << 10
)

// ModeSwitchFlags are the flags that mark a button as a mode switch.
const ModeSwitchFlags = ButtonRingModeSwitch | ButtonRing2ModeSwitch |
	ButtonStripModeSwitch | ButtonStrip2ModeSwitch |
	ButtonDialModeSwitch | ButtonDial2ModeSwitch

// flagNames maps database names to flags, in bit order.
var flagNames = []struct {
	name string
	flag ButtonFlags
}{
	{"left", ButtonPositionLeft},
	{"right", ButtonPositionRight},
	{"top", ButtonPositionTop},
	{"bottom", ButtonPositionBottom},
	{"ring-modeswitch", ButtonRingModeSwitch},
	{"ring2-modeswitch", ButtonRing2ModeSwitch},
	{"strip-modeswitch", ButtonStripModeSwitch},
	{"strip2-modeswitch", ButtonStrip2ModeSwitch},
	{"oled", ButtonOLED},
	{"dial-modeswitch", ButtonDialModeSwitch},
	{"dial2-modeswitch", ButtonDial2ModeSwitch},
}

// ParseButtonFlag returns the flag for a database name (case-insensitive).
func ParseButtonFlag(name string) (ButtonFlags, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range flagNames {
		if f.name == n {
			return f.flag, nil
		}
	}
	return ButtonNone, fmt.Errorf("unknown button flag %q", name)
}

// Has returns true if all bits of other are set.
func (f ButtonFlags) Has(other ButtonFlags) bool {
	return f&other == other
}

// Intersects returns true if any bit of other is set.
func (f ButtonFlags) Intersects(other ButtonFlags) bool {
	return f&other != 0
}

// IsModeSwitch returns true if the flags contain any mode-switch flag.
func (f ButtonFlags) IsModeSwitch() bool {
	return f.Intersects(ModeSwitchFlags)
}

// Names returns the database names of all set flags, in bit order.
func (f ButtonFlags) Names() []string {
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return names
}

// String returns the flag names joined by "|", or "none".
func (f ButtonFlags) String() string {
	names := f.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// UnmarshalYAML decodes a list of flag names.
func (f *ButtonFlags) UnmarshalYAML(node *yaml.Node) error {
	var names []string
	if err := node.Decode(&names); err != nil {
		return fmt.Errorf("line %d: button flags must be a list of names: %w", node.Line, err)
	}

	var flags ButtonFlags
	for _, name := range names {
		flag, err := ParseButtonFlag(name)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		flags |= flag
	}
	*f = flags
	return nil
}

// MarshalYAML encodes the flags as a list of names.
func (f ButtonFlags) MarshalYAML() (interface{}, error) {
	return f.Names(), nil
}
