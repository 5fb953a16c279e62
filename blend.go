package tincture

import (
	"fmt"

	"github.com/gogpu/tincture/internal/blend"
	"github.com/gogpu/tincture/internal/wide"
)

// BlendMode selects the per-channel formula used by Blend.
type BlendMode = blend.Mode

// Blend modes. The first operand a is the color being blended into; the
// second operand b is the one blended onto it.
const (
	Darken      = blend.Darken      // min(a, b)
	Multiply    = blend.Multiply    // a * b
	ColorBurn   = blend.ColorBurn   // 1 - (1-a) / b
	LinearBurn  = blend.LinearBurn  // a + b - 1
	Lighten     = blend.Lighten     // max(a, b)
	Screen      = blend.Screen      // 1 - (1-a)(1-b)
	ColorDodge  = blend.ColorDodge  // b / (1-a)
	LinearDodge = blend.LinearDodge // a + b
	Overlay     = blend.Overlay     // HardLight keyed on b
	SoftLight   = blend.SoftLight
	HardLight   = blend.HardLight // 2ab below a = 0.5, screen above
	VividLight  = blend.VividLight
	LinearLight = blend.LinearLight // b + 2a - 1
	PinLight    = blend.PinLight    // unsupported
	Difference  = blend.Difference  // |b - a|
	Exclusion   = blend.Exclusion   // a + b - 2ab
	Divide      = blend.Divide      // b / a
	Subtract    = blend.Subtract    // b - a
	Luminosity  = blend.Luminosity
	Average     = blend.Average // (a + b) / 2
)

// BlendModes returns every defined mode, PinLight included.
func BlendModes() []BlendMode {
	return blend.Modes()
}

// ParseBlendMode looks a mode up by name. Matching is case-insensitive and
// ignores '_', '-' and spaces.
func ParseBlendMode(name string) (BlendMode, error) {
	m, ok := blend.Parse(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBlendMode, name)
	}
	return m, nil
}

// checkBlendMode rejects modes that Blend cannot compute.
func checkBlendMode(mode BlendMode) error {
	switch {
	case !mode.Valid():
		return fmt.Errorf("%w: %v", ErrUnknownBlendMode, mode)
	case !mode.Supported():
		return fmt.Errorf("%w: %v", ErrUnsupportedBlendMode, mode)
	}
	return nil
}

// Blend blends b onto a with mode and alpha-composites the result.
//
// Both colors are normalized to [0, 1], combined per channel, composited,
// rescaled by 255, clamped and rounded. Division singularities of
// ColorDodge, ColorBurn, Divide and VividLight are not validated: an
// infinite channel saturates to 255 and NaN quantizes to 0. A fully
// transparent pair yields Transparent.
//
// PinLight fails with ErrUnsupportedBlendMode.
func Blend(mode BlendMode, a, b Color) (Color, error) {
	if err := checkBlendMode(mode); err != nil {
		return a, err
	}
	return blendLanes(mode, a.lane(), b.lane()), nil
}

// BlendAll folds colors left to right: Blend(mode, Blend(mode, c0, c1), c2)...
// It needs at least one color.
func BlendAll(mode BlendMode, colors ...Color) (Color, error) {
	if len(colors) == 0 {
		return Transparent, fmt.Errorf("%w: BlendAll needs at least one color", ErrLengthMismatch)
	}
	if err := checkBlendMode(mode); err != nil {
		return colors[0], err
	}

	acc := colors[0]
	for _, c := range colors[1:] {
		acc = blendLanes(mode, acc.lane(), c.lane())
	}
	return acc, nil
}

// blendLanes blends two lanes holding channel values in [0, 255].
func blendLanes(mode BlendMode, a, b wide.F32x4) Color {
	v := blend.Compute(mode, wide.Normalize(a), wide.Normalize(b))
	return fromLane(wide.Denormalize(v))
}
