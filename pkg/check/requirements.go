package check

import (
	"strconv"
	"sync"

	"github.com/flying-elephant/libwacom/pkg/device"
)

// MaxInstances is the number of ring, strip or dial instances checked per device.
const MaxInstances = 2

// ModeSwitchClass marks elements of mode-switch buttons.
const ModeSwitchClass = "ModeSwitch"

// Requirement is a required element id and the classes it must carry.
type Requirement struct {
	ID      string
	Classes []string
}

type tableKey struct {
	control device.ControlType
	index   int
}

var (
	tableOnce    sync.Once
	controlTable map[tableKey][]Requirement
	buttonTable  map[string][]Requirement
)

// directions lists the two label/leader directions of a control type.
var directions = map[device.ControlType][2]string{
	device.ControlRing:  {"CW", "CCW"},
	device.ControlStrip: {"Up", "Down"},
	device.ControlDial:  {"CW", "CCW"},
}

func buildTables() {
	controlTable = make(map[tableKey][]Requirement)
	for control, dirs := range directions {
		name := control.String()
		for index := 1; index <= MaxInstances; index++ {
			base := name
			if index > 1 {
				base += strconv.Itoa(index)
			}

			reqs := []Requirement{{ID: base, Classes: []string{base, "Touch" + name}}}
			for _, role := range []string{"Label", "Leader"} {
				for _, dir := range dirs {
					reqs = append(reqs, Requirement{
						ID:      role + base + dir,
						Classes: []string{base + dir, base, role},
					})
				}
			}
			controlTable[tableKey{control, index}] = reqs
		}
	}

	buttonTable = make(map[string][]Requirement)
	for i := 0; i < device.MaxButtons; i++ {
		letter := string(rune('A' + i))
		buttonTable[letter] = []Requirement{
			{ID: "Button" + letter, Classes: []string{"Button", letter}},
			{ID: "Label" + letter, Classes: []string{"Label", letter}},
			{ID: "Leader" + letter, Classes: []string{"Leader", letter}},
		}
	}
}

func copyRequirements(reqs []Requirement, extra ...string) []Requirement {
	out := make([]Requirement, len(reqs))
	for i, r := range reqs {
		classes := make([]string, 0, len(r.Classes)+len(extra))
		classes = append(classes, r.Classes...)
		classes = append(classes, extra...)
		out[i] = Requirement{ID: r.ID, Classes: classes}
	}
	return out
}

// ControlRequirements returns the requirements of one ring, strip or dial
// instance. index is 1-based; nil is returned for unknown keys.
func ControlRequirements(control device.ControlType, index int) []Requirement {
	tableOnce.Do(buildTables)
	reqs, ok := controlTable[tableKey{control, index}]
	if !ok {
		return nil
	}
	return copyRequirements(reqs)
}

// ButtonRequirements returns the requirements of the button with the given
// letter, adding ModeSwitchClass when modeSwitch is set.
func ButtonRequirements(letter string, modeSwitch bool) []Requirement {
	tableOnce.Do(buildTables)
	reqs, ok := buttonTable[letter]
	if !ok {
		return nil
	}
	if modeSwitch {
		return copyRequirements(reqs, ModeSwitchClass)
	}
	return copyRequirements(reqs)
}

// DeviceRequirements returns all requirements for the controls of type
// control declared by d, in check order.
func DeviceRequirements(d *device.Device, control device.ControlType) []Requirement {
	var reqs []Requirement
	if control == device.ControlButton {
		for _, letter := range d.ButtonLetters() {
			reqs = append(reqs, ButtonRequirements(letter, d.ButtonFlags(letter).IsModeSwitch())...)
		}
		return reqs
	}

	n := min(d.Count(control), MaxInstances)
	for index := 1; index <= n; index++ {
		reqs = append(reqs, ControlRequirements(control, index)...)
	}
	return reqs
}
