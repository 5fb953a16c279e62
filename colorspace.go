package tincture

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/tincture/internal/wide"
)

// Colorspace conversions delegate to go-colorful. Alpha is carried alongside
// as a [0, 1] value since colorful.Color has no alpha channel.

// toColorful drops alpha and scales R, G, B to [0, 1].
func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

// fromColorful clamps cc into gamut and quantizes it with alpha in [0, 1].
func fromColorful(cc colorful.Color, alpha float64) Color {
	cc = cc.Clamped()
	return fromLane(wide.RGBA(float32(cc.R), float32(cc.G), float32(cc.B), float32(alpha)).Scale(wide.ChannelMax))
}

// alphaUnit returns the alpha channel scaled to [0, 1].
func (c Color) alphaUnit() float64 {
	return float64(c.A()) / 255
}

// HSL returns hue in [0, 360), saturation and lightness in [0, 1].
func (c Color) HSL() (h, s, l float64) {
	return c.toColorful().Hsl()
}

// HSV returns hue in [0, 360), saturation and value in [0, 1].
func (c Color) HSV() (h, s, v float64) {
	return c.toColorful().Hsv()
}

// XYZ returns CIE XYZ coordinates (D65).
func (c Color) XYZ() (x, y, z float64) {
	return c.toColorful().Xyz()
}

// OKLab returns OKLab coordinates.
func (c Color) OKLab() (l, a, b float64) {
	return c.toColorful().OkLab()
}

// OKLCh returns OKLab in cylindrical form, hue in [0, 360).
func (c Color) OKLCh() (l, ch, h float64) {
	return c.toColorful().OkLch()
}

// UnitRGBA returns every channel scaled to [0, 1].
func (c Color) UnitRGBA() (r, g, b, a float64) {
	cc := c.toColorful()
	return cc.R, cc.G, cc.B, c.alphaUnit()
}

// FromUnitRGBA creates a color from channels in [0, 1].
func FromUnitRGBA(r, g, b, a float64) (Color, error) {
	if err := checkUnits(unit{"red", r}, unit{"green", g}, unit{"blue", b}, unit{"alpha", a}); err != nil {
		return Transparent, err
	}
	return fromLane(wide.RGBA(float32(r), float32(g), float32(b), float32(a)).Scale(wide.ChannelMax)), nil
}

// CMYK returns the naive CMYK separation of c and its alpha, all in [0, 1].
// Black is (0, 0, 0, 1).
func (c Color) CMYK() (cy, m, y, k, alpha float64) {
	r, g, b, alpha := c.UnitRGBA()
	maxC := math.Max(r, math.Max(g, b))
	if maxC == 0 {
		return 0, 0, 0, 1, alpha
	}
	return (maxC - r) / maxC, (maxC - g) / maxC, (maxC - b) / maxC, 1 - maxC, alpha
}

// FromCMYK creates a color from a naive CMYK separation. Every argument
// must lie in [0, 1].
func FromCMYK(cy, m, y, k, alpha float64) (Color, error) {
	if err := checkUnits(unit{"cyan", cy}, unit{"magenta", m}, unit{"yellow", y}, unit{"black", k}, unit{"alpha", alpha}); err != nil {
		return Transparent, err
	}
	return FromUnitRGBA((1-cy)*(1-k), (1-m)*(1-k), (1-y)*(1-k), alpha)
}

// FromHSL creates a color from hue (degrees, wrapped into [0, 360)),
// saturation, lightness and alpha, each of the last three in [0, 1].
func FromHSL(h, s, l, alpha float64) (Color, error) {
	if err := checkUnits(unit{"saturation", s}, unit{"lightness", l}, unit{"alpha", alpha}); err != nil {
		return Transparent, err
	}
	return fromColorful(colorful.Hsl(wrapHue(h), s, l), alpha), nil
}

// FromHSV creates a color from hue (degrees, wrapped into [0, 360)),
// saturation, value and alpha, each of the last three in [0, 1].
func FromHSV(h, s, v, alpha float64) (Color, error) {
	if err := checkUnits(unit{"saturation", s}, unit{"value", v}, unit{"alpha", alpha}); err != nil {
		return Transparent, err
	}
	return fromColorful(colorful.Hsv(wrapHue(h), s, v), alpha), nil
}

// FromXYZ creates a color from CIE XYZ coordinates. Out-of-gamut results are
// clamped.
func FromXYZ(x, y, z, alpha float64) (Color, error) {
	if err := checkUnit("alpha", alpha); err != nil {
		return Transparent, err
	}
	return fromColorful(colorful.Xyz(x, y, z), alpha), nil
}

// FromOKLab creates a color from OKLab coordinates, lightness in [0, 1].
// Out-of-gamut results are clamped.
func FromOKLab(l, a, b, alpha float64) (Color, error) {
	if err := checkUnits(unit{"lightness", l}, unit{"alpha", alpha}); err != nil {
		return Transparent, err
	}
	return fromColorful(colorful.OkLab(l, a, b), alpha), nil
}

// FromOKLCh creates a color from OKLCh coordinates: lightness in [0, 1],
// non-negative chroma, hue in degrees.
func FromOKLCh(l, ch, h, alpha float64) (Color, error) {
	if err := checkUnits(unit{"lightness", l}, unit{"alpha", alpha}); err != nil {
		return Transparent, err
	}
	if !(ch >= 0) {
		return Transparent, fmt.Errorf("%w: chroma = %v, want >= 0", ErrOutOfRange, ch)
	}
	return fromColorful(colorful.OkLch(l, ch, wrapHue(h)), alpha), nil
}

// Tint rotates the hue of c by degrees in HSL, keeping alpha.
func (c Color) Tint(degrees float64) Color {
	if math.Mod(degrees, 360) == 0 {
		return c
	}
	h, s, l := c.HSL()
	return fromColorful(colorful.Hsl(wrapHue(h+degrees), s, l), c.alphaUnit())
}

// Saturate scales the HSV saturation of c by 1+factor, keeping alpha.
func (c Color) Saturate(factor float64) Color {
	if factor == 0 {
		return c
	}
	h, s, v := c.HSV()
	s = math.Max(0, math.Min(1, s*(1+factor)))
	return fromColorful(colorful.Hsv(h, s, v), c.alphaUnit())
}

// Triadic returns the two colors 120 degrees either side of c on the HSL
// hue wheel.
func (c Color) Triadic() [2]Color {
	return [2]Color{c.Tint(120), c.Tint(-120)}
}

// Clerp interpolates from c to end in OKLCh, which keeps perceived
// lightness and chroma even along the way. Alpha is interpolated linearly.
// t must lie in [0, 1].
func (c Color) Clerp(end Color, t float64) (Color, error) {
	if err := checkUnit("t", t); err != nil {
		return c, err
	}
	alpha := c.alphaUnit() + (end.alphaUnit()-c.alphaUnit())*t
	return fromColorful(c.toColorful().BlendOkLch(end.toColorful(), t), alpha), nil
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

type unit struct {
	name  string
	value float64
}

func checkUnits(units ...unit) error {
	for _, u := range units {
		if err := checkUnit(u.name, u.value); err != nil {
			return err
		}
	}
	return nil
}
