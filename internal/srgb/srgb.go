// Package srgb decodes gamma-encoded 8-bit sRGB channels to linear light.
//
// Decoding goes through a 256-entry lookup table built once at start-up,
// replacing a math.Pow call per channel with an array index.
package srgb

import "math"

// toLinearLUT maps an 8-bit sRGB channel to linear light in [0, 1].
var toLinearLUT [256]float64

func init() {
	for i := range toLinearLUT {
		toLinearLUT[i] = decode(float64(i) / 255)
	}
}

// decode is the sRGB electro-optical transfer function.
//
// The WCAG 2 threshold is 0.03928 and the IEC one 0.04045; no 8-bit value
// falls between them, so both agree on every table entry.
func decode(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// ToLinear converts an sRGB channel to linear light in [0, 1].
func ToLinear(v uint8) float64 {
	return toLinearLUT[v]
}

// Luminance returns the relative luminance of an sRGB triple using the
// Rec. 709 / WCAG coefficients.
func Luminance(r, g, b uint8) float64 {
	return 0.2126*toLinearLUT[r] + 0.7152*toLinearLUT[g] + 0.0722*toLinearLUT[b]
}
