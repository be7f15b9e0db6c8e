package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestButtonLetters(t *testing.T) {
	tests := []struct {
		name    string
		buttons int
		want    []string
	}{
		{"none", 0, []string{}},
		{"four", 4, []string{"A", "B", "C", "D"}},
		{"capped", 30, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Device{NumButtons: tt.buttons}
			got := d.ButtonLetters()
			if tt.want == nil {
				assert.Len(t, got, MaxButtons)
				assert.Equal(t, "Z", got[len(got)-1])
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeviceCount(t *testing.T) {
	d := &Device{NumButtons: 8, NumRings: 2, NumStrips: 1}

	assert.Equal(t, 8, d.Count(ControlButton))
	assert.Equal(t, 2, d.Count(ControlRing))
	assert.Equal(t, 1, d.Count(ControlStrip))
	assert.Equal(t, 0, d.Count(ControlDial))
	assert.True(t, d.HasControls())
	assert.False(t, (&Device{}).HasControls())
}

func TestButtonFlagsModeSwitch(t *testing.T) {
	assert.True(t, ButtonRingModeSwitch.IsModeSwitch())
	assert.True(t, (ButtonPositionLeft | ButtonDial2ModeSwitch).IsModeSwitch())
	assert.False(t, (ButtonPositionLeft | ButtonOLED).IsModeSwitch())
	assert.False(t, ButtonNone.IsModeSwitch())
}

func TestButtonFlagsString(t *testing.T) {
	assert.Equal(t, "none", ButtonNone.String())
	assert.Equal(t, "left|ring-modeswitch", (ButtonRingModeSwitch | ButtonPositionLeft).String())
}

func TestButtonFlagsYAML(t *testing.T) {
	var d Device
	data := `
name: Test Tablet
layout: test.svg
buttons: 2
rings: 1
button_flags:
  A: [left, ring-modeswitch]
  B: [Right]
`
	require.NoError(t, yaml.Unmarshal([]byte(data), &d))

	assert.Equal(t, ButtonPositionLeft|ButtonRingModeSwitch, d.ButtonFlags("A"))
	assert.Equal(t, ButtonPositionRight, d.ButtonFlags("B"))
	assert.Equal(t, ButtonNone, d.ButtonFlags("C"))
}

func TestButtonFlagsYAMLUnknown(t *testing.T) {
	var d Device
	err := yaml.Unmarshal([]byte("button_flags:\n  A: [sideways]\n"), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown button flag "sideways"`)
}
