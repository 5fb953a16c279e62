package blend

import "github.com/gogpu/tincture/internal/wide"

// Luminance weights applied to (a - b) by Luminosity. They are the Rec. 601
// luma coefficients divided by 255.
const (
	lumaR = 0.00117255
	lumaG = 0.00230196
	lumaB = 0.00044706
)

var (
	half = wide.SplatF32(0.5)
	one  = wide.SplatF32(1)
	two  = wide.SplatF32(2)
)

// Compute blends a and b with mode and composites the result.
//
// Channels of a and b are normalized to [0, 1]; a is the first operand
// (the color being blended into) and b the second. The alpha of the
// per-channel formula is discarded; the result alpha comes from Composite.
//
// Division singularities of ColorDodge, ColorBurn, Divide and VividLight are
// not guarded and yield IEEE infinities or NaN. Unsupported modes return a
// unchanged; callers are expected to reject them first.
func Compute(mode Mode, a, b wide.F32x4) wide.F32x4 {
	if !mode.Supported() {
		return a
	}
	return Composite(Channels(mode, a, b), a, b)
}

// Channels applies the per-channel formula of mode without compositing.
func Channels(mode Mode, a, b wide.F32x4) wide.F32x4 {
	switch mode {
	case Darken:
		return a.Min(b)
	case Lighten:
		return a.Max(b)
	case Multiply:
		return a.Mul(b)
	case Screen:
		return screen(a, b)
	case LinearDodge:
		return a.Add(b)
	case LinearBurn:
		return a.Add(b).Sub(one)
	case ColorDodge:
		return b.Div(one.Sub(a))
	case ColorBurn:
		return one.Sub(one.Sub(a).Div(b))
	case HardLight:
		return hardLight(a.Less(half), a, b)
	case Overlay:
		return hardLight(b.Less(half), a, b)
	case SoftLight:
		return softLight(a, b)
	case VividLight:
		return vividLight(a, b)
	case LinearLight:
		return b.Add(two.Mul(a)).Sub(one)
	case Average:
		return a.Add(b).Scale(0.5)
	case Exclusion:
		return a.Add(b).Sub(two.Mul(a).Mul(b))
	case Difference:
		return b.Sub(a).Abs()
	case Divide:
		return b.Div(a)
	case Subtract:
		return b.Sub(a)
	case Luminosity:
		return luminosity(a, b)
	default:
		return a
	}
}

// Composite merges the blended channels f with the operands' opacity.
//
//	alpha = a1 + a2*(1-a1)
//	rgb   = (f*a1 + b*a2*(1-a1)) / alpha
//
// A fully transparent pair (alpha == 0) composites to transparent black.
func Composite(f, a, b wide.F32x4) wide.F32x4 {
	a1, a2 := a[3], b[3]
	w := a2 * (1 - a1)

	alpha := a1 + w
	if alpha == 0 {
		return wide.F32x4{}
	}

	rgb := f.Scale(a1).Add(b.Scale(w)).Div(wide.SplatF32(alpha))
	return rgb.WithAlpha(alpha)
}

func screen(a, b wide.F32x4) wide.F32x4 {
	return one.Sub(one.Sub(a).Mul(one.Sub(b)))
}

// hardLight selects 2ab where below is set and 1-2(1-a)(1-b) elsewhere.
func hardLight(below wide.Mask4, a, b wide.F32x4) wide.F32x4 {
	lo := two.Mul(a).Mul(b)
	hi := one.Sub(two.Mul(one.Sub(a)).Mul(one.Sub(b)))
	return wide.Select(below, lo, hi)
}

func softLight(a, b wide.F32x4) wide.F32x4 {
	// a < 0.5: 1 - 2(1-a)(1-b) + 2ba
	lo := one.Sub(two.Mul(one.Sub(a)).Mul(one.Sub(b))).Add(two.Mul(b).Mul(a))
	// else: 2b(1-b) + sqrt(b)(2a-1)
	hi := two.Mul(b).Mul(one.Sub(b)).Add(b.Sqrt().Mul(two.Mul(a).Sub(one)))
	return wide.Select(a.Less(half), lo, hi)
}

func vividLight(a, b wide.F32x4) wide.F32x4 {
	// a < 0.5: 1 - (1-b) / 2a
	lo := one.Sub(one.Sub(b).Div(two.Mul(a)))
	// else: b / 2(1-a)
	hi := b.Div(two.Mul(one.Sub(a)))
	return wide.Select(a.Less(half), lo, hi)
}

func luminosity(a, b wide.F32x4) wide.F32x4 {
	d := a.Sub(b)
	l := lumaR*d[0] + lumaG*d[1] + lumaB*d[2]
	return b.Add(wide.SplatF32(l))
}
