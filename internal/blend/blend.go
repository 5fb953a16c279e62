// Package blend provides color blending operations.
//
// Compute combines two colors with one of the separable blend modes and
// then applies the alpha composite. Both operands and the result are
// wide.F32x4 lanes with channels normalized to [0, 1].
package blend

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Mode represents a blending mode.
type Mode uint8

const (
	// Darken selects the darker of both channels: min(a, b).
	Darken Mode = iota
	// Multiply darkens by multiplication: a * b.
	Multiply
	// ColorBurn darkens the second operand by the first: 1 - (1-a) / b.
	ColorBurn
	// LinearBurn sums and subtracts white: a + b - 1.
	LinearBurn
	// Lighten selects the lighter of both channels: max(a, b).
	Lighten
	// Screen brightens by inverse multiplication: 1 - (1-a)(1-b).
	Screen
	// ColorDodge brightens the second operand by the first: b / (1-a).
	ColorDodge
	// LinearDodge adds both channels: a + b.
	LinearDodge
	// Overlay is HardLight keyed on the second operand.
	Overlay
	// SoftLight is a softer HardLight.
	SoftLight
	// HardLight multiplies or screens depending on the first operand.
	HardLight
	// VividLight burns or dodges depending on the first operand.
	VividLight
	// LinearLight: b + 2a - 1.
	LinearLight
	// PinLight is named for completeness but has no formula. See Supported.
	PinLight
	// Difference: |b - a|.
	Difference
	// Exclusion: a + b - 2ab.
	Exclusion
	// Divide: b / a.
	Divide
	// Subtract: b - a.
	Subtract
	// Luminosity adds the weighted luminance difference to the second operand.
	Luminosity
	// Average: (a + b) / 2.
	Average

	modeCount
)

var modeNames = [modeCount]string{
	Darken:      "Darken",
	Multiply:    "Multiply",
	ColorBurn:   "ColorBurn",
	LinearBurn:  "LinearBurn",
	Lighten:     "Lighten",
	Screen:      "Screen",
	ColorDodge:  "ColorDodge",
	LinearDodge: "LinearDodge",
	Overlay:     "Overlay",
	SoftLight:   "SoftLight",
	HardLight:   "HardLight",
	VividLight:  "VividLight",
	LinearLight: "LinearLight",
	PinLight:    "PinLight",
	Difference:  "Difference",
	Exclusion:   "Exclusion",
	Divide:      "Divide",
	Subtract:    "Subtract",
	Luminosity:  "Luminosity",
	Average:     "Average",
}

// lookup maps folded, separator-free names to modes.
var lookup = func() map[string]Mode {
	m := make(map[string]Mode, modeCount)
	for i, name := range modeNames {
		m[foldName(name)] = Mode(i)
	}
	return m
}()

// String returns the mode name, e.g. "ColorBurn".
func (m Mode) String() string {
	if !m.Valid() {
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m < modeCount
}

// Supported reports whether Compute has a formula for m.
// PinLight is defined but unsupported.
func (m Mode) Supported() bool {
	return m.Valid() && m != PinLight
}

// Modes returns every defined mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, modeCount)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// Parse looks a mode up by name. Matching is case-insensitive and ignores
// '_', '-' and spaces, so "color_burn", "Color Burn" and "COLORBURN" all
// resolve to ColorBurn.
func Parse(name string) (Mode, bool) {
	m, ok := lookup[foldName(name)]
	return m, ok
}

// foldName strips separators and case-folds s. A Caser is stateful, so a
// fresh one is used per call.
func foldName(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return r
	}, s)
	return cases.Fold().String(s)
}
