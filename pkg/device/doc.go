// Package device defines the device records consumed by the layout checks.
//
// A Device describes a tablet as recorded in the device database: its name,
// the layout diagram that depicts it, and the number of physical controls
// (buttons, rings, strips and dials) it carries. Devices are supplied by a
// Catalog and are never mutated once the catalog has been loaded.
//
// # Controls
//
// Each control type has an associated count. Buttons are addressed by
// letter, starting at "A":
//
//	d.NumButtons = 4   // buttons A, B, C, D
//	d.ButtonFlags("B") // flags for button B
//
// # Mode Switches
//
// Buttons carrying any of [ModeSwitchFlags] toggle the operating mode of a
// ring, strip or dial. Layout diagrams mark those buttons with an additional
// "ModeSwitch" class.
package device
