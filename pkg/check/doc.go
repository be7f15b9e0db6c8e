// Package check validates device layout diagrams against the elements
// required by their device records.
//
// Every control a device declares must be depicted in its layout by a set of
// elements with well-known ids and classes. For the first ring:
//
//	Ring           class="Ring TouchRing"
//	LabelRingCW    class="RingCW Ring Label"
//	LabelRingCCW   class="RingCCW Ring Label"
//	LeaderRingCW   class="RingCW Ring Leader"
//	LeaderRingCCW  class="RingCCW Ring Leader"
//
// A second ring uses the "Ring2" prefix. Strips use Up/Down instead of
// CW/CCW; dials follow the ring naming. Buttons are addressed by letter:
//
//	ButtonA  class="Button A"
//	LabelA   class="Label A"
//	LeaderA  class="Leader A"
//
// Buttons that switch the mode of a ring, strip or dial carry the additional
// class "ModeSwitch".
//
// # Rules
//
// Rules are registered in a [RuleRegistry] and evaluated per [Target]. A rule
// returns the first error it finds. [Evaluate] turns that error into an
// [Outcome]: downgradable rules (strips and dials) report a skip instead of a
// failure when the layout was produced by a generator tool.
package check
