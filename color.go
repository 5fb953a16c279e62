package tincture

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/tincture/internal/srgb"
	"github.com/gogpu/tincture/internal/wide"
)

// Color is a packed 8-bit RGBA color: R, G, B, A from the most- to the
// least-significant byte of one 32-bit word.
//
// Color is a value type. Every method returns a new Color; use AtomicColor
// for a shared cell that is updated in place. Two colors are equal when
// their words are equal, so Color can be compared with == and used as a
// map key.
type Color uint32

// Channel indices.
const (
	Red   = 0
	Green = 1
	Blue  = 2
	Alpha = 3
)

// Common colors
const (
	Black       Color = 0x000000ff
	White       Color = 0xffffffff
	Transparent Color = 0x00000000
)

// New creates a color from its four channels.
func New(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return New(r, g, b, 255)
}

// FromWord reinterprets a packed RGBA word as a Color.
func FromWord(w uint32) Color {
	return Color(w)
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return New(n.R, n.G, n.B, n.A)
}

// Word returns the packed RGBA word.
func (c Color) Word() uint32 { return uint32(c) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c) }

// Channels returns R, G, B, A.
func (c Color) Channels() [4]uint8 {
	return [4]uint8{c.R(), c.G(), c.B(), c.A()}
}

// NRGBA converts c to a non-premultiplied color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color. It returns alpha-premultiplied 16-bit
// channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String returns "Color(r, g, b, a)".
func (c Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d, %d)", c.R(), c.G(), c.B(), c.A())
}

// =============================================================================
// Channel access
// =============================================================================

// Channel returns the channel at index i (0 red, 1 green, 2 blue, 3 alpha).
func (c Color) Channel(i int) (uint8, error) {
	if i < Red || i > Alpha {
		return 0, fmt.Errorf("%w: channel %d", ErrIndexOutOfRange, i)
	}
	return uint8(c >> channelShift(i)), nil
}

// WithChannel returns c with the channel at index i replaced by v.
func (c Color) WithChannel(i int, v uint8) (Color, error) {
	if i < Red || i > Alpha {
		return c, fmt.Errorf("%w: channel %d", ErrIndexOutOfRange, i)
	}
	shift := channelShift(i)
	return c&^(0xff<<shift) | Color(v)<<shift, nil
}

// ChannelByName is Channel addressed by name: red, green, blue, alpha or
// r, g, b, a, case-insensitive.
func (c Color) ChannelByName(name string) (uint8, error) {
	i, err := ChannelIndex(name)
	if err != nil {
		return 0, err
	}
	return c.Channel(i)
}

// WithChannelByName is WithChannel addressed by name.
func (c Color) WithChannelByName(name string, v uint8) (Color, error) {
	i, err := ChannelIndex(name)
	if err != nil {
		return c, err
	}
	return c.WithChannel(i, v)
}

var channelNames = map[string]int{
	"red": Red, "r": Red,
	"green": Green, "g": Green,
	"blue": Blue, "b": Blue,
	"alpha": Alpha, "a": Alpha,
}

// ChannelIndex resolves a channel name to its index.
func ChannelIndex(name string) (int, error) {
	i, ok := channelNames[cases.Fold().String(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}
	return i, nil
}

func channelShift(i int) uint {
	return uint(24 - 8*i)
}

// =============================================================================
// Arithmetic
//
// All arithmetic runs on the same float32 lanes as Batch: the operands are
// combined per channel, clamped to [0, 255] and rounded half away from zero.
// When includeAlpha is false the alpha operand is the identity of the
// operation, so alpha passes through unchanged.
// =============================================================================

// lane expands c to a 4-wide vector of channel values in [0, 255].
func (c Color) lane() wide.F32x4 {
	return wide.Unpack(uint32(c))
}

// fromLane clamps, rounds and packs v.
func fromLane(v wide.F32x4) Color {
	return Color(wide.Pack(v))
}

const (
	additiveIdentity       = 0
	multiplicativeIdentity = 1
)

// scalarOperand broadcasts s to a lane, replacing alpha with identity
// unless includeAlpha is set.
func scalarOperand(s float64, includeAlpha bool, identity float32) wide.F32x4 {
	v := wide.SplatF32(float32(s))
	if !includeAlpha {
		v[Alpha] = identity
	}
	return v
}

// colorOperand is scalarOperand for a color operand.
func colorOperand(c Color, includeAlpha bool, identity float32) wide.F32x4 {
	v := c.lane()
	if !includeAlpha {
		v[Alpha] = identity
	}
	return v
}

// AddScalar adds s to every channel.
func (c Color) AddScalar(s float64, includeAlpha bool) Color {
	return fromLane(c.lane().Add(scalarOperand(s, includeAlpha, additiveIdentity)))
}

// SubScalar subtracts s from every channel.
func (c Color) SubScalar(s float64, includeAlpha bool) Color {
	return fromLane(c.lane().Sub(scalarOperand(s, includeAlpha, additiveIdentity)))
}

// MulScalar multiplies every channel by s.
func (c Color) MulScalar(s float64, includeAlpha bool) Color {
	return fromLane(c.lane().Mul(scalarOperand(s, includeAlpha, multiplicativeIdentity)))
}

// DivScalar divides every channel by s. It fails with ErrDivideByZero when s
// is exactly zero.
func (c Color) DivScalar(s float64, includeAlpha bool) (Color, error) {
	if s == 0 {
		return c, ErrDivideByZero
	}
	return fromLane(c.lane().Div(scalarOperand(s, includeAlpha, multiplicativeIdentity))), nil
}

// NthRoot replaces every channel x with x^(1/root). A root of zero is not an
// error: it sends channels above 1 to 255 and channels below 1 to 0.
func (c Color) NthRoot(root float64, includeAlpha bool) Color {
	return fromLane(c.lane().Root(scalarOperand(root, includeAlpha, multiplicativeIdentity)))
}

// Pow raises every channel x to x^exp, saturating at 255. A negative exp
// sends zero channels to 255.
func (c Color) Pow(exp float64, includeAlpha bool) Color {
	return fromLane(c.lane().Pow(scalarOperand(exp, includeAlpha, multiplicativeIdentity)))
}

// Add adds other channel-wise, saturating at 255.
func (c Color) Add(other Color, includeAlpha bool) Color {
	return fromLane(c.lane().Add(colorOperand(other, includeAlpha, additiveIdentity)))
}

// Sub subtracts other channel-wise, saturating at 0.
func (c Color) Sub(other Color, includeAlpha bool) Color {
	return fromLane(c.lane().Sub(colorOperand(other, includeAlpha, additiveIdentity)))
}

// Mul multiplies channel-wise in floating point, then clamps.
func (c Color) Mul(other Color, includeAlpha bool) Color {
	return fromLane(c.lane().Mul(colorOperand(other, includeAlpha, multiplicativeIdentity)))
}

// Div divides channel-wise in floating point, then clamps. It fails with
// ErrDivideByZero when a participating channel of other is zero.
func (c Color) Div(other Color, includeAlpha bool) (Color, error) {
	d := colorOperand(other, includeAlpha, multiplicativeIdentity)
	for i, v := range d {
		if v == 0 {
			return c, fmt.Errorf("%w: channel %d of %v", ErrDivideByZero, i, other)
		}
	}
	return fromLane(c.lane().Div(d)), nil
}

// Min returns the channel-wise minimum.
func (c Color) Min(other Color, includeAlpha bool) Color {
	v := c.lane().Min(other.lane())
	if !includeAlpha {
		v[Alpha] = float32(c.A())
	}
	return fromLane(v)
}

// Max returns the channel-wise maximum.
func (c Color) Max(other Color, includeAlpha bool) Color {
	v := c.lane().Max(other.lane())
	if !includeAlpha {
		v[Alpha] = float32(c.A())
	}
	return fromLane(v)
}

// Inverse returns 255 - x for every channel.
func (c Color) Inverse(includeAlpha bool) Color {
	inv := ^c
	if !includeAlpha {
		inv = inv&^0xff | c&0xff
	}
	return inv
}

// Grayscale returns the Rec. 601 luma of c on R, G and B, keeping alpha.
func (c Color) Grayscale() Color {
	l := 0.299*float32(c.R()) + 0.587*float32(c.G()) + 0.114*float32(c.B())
	return fromLane(wide.RGBA(l, l, l, float32(c.A())))
}

// Lerp interpolates linearly from c to end in RGBA space. t must lie in
// [0, 1].
func (c Color) Lerp(end Color, t float64) (Color, error) {
	if err := checkUnit("t", t); err != nil {
		return c, err
	}
	return fromLane(c.lane().Lerp(end.lane(), float32(t))), nil
}

// ApproxEqual reports whether every channel of other lies within diff of
// the same channel of c. Alpha is compared only when includeAlpha is set.
func (c Color) ApproxEqual(other Color, diff uint8, includeAlpha bool) bool {
	a, b := c.Channels(), other.Channels()
	n := 3
	if includeAlpha {
		n = 4
	}
	for i := range n {
		d := int(a[i]) - int(b[i])
		if d < -int(diff) || d > int(diff) {
			return false
		}
	}
	return true
}

// Contrast scales R, G and B away from (factor > 0) or toward (factor < 0)
// mid-gray by 1+factor.
func (c Color) Contrast(factor float64) Color {
	if factor == 0 {
		return c
	}
	mid := wide.RGBA(127.5, 127.5, 127.5, 0)
	v := c.lane().Sub(mid).Mul(scalarOperand(factor+1, false, multiplicativeIdentity)).Add(mid)
	return fromLane(v)
}

// Brightness scales R, G and B by 1+factor for a positive factor and by
// 1/(1+|factor|) for a negative one.
func (c Color) Brightness(factor float64) Color {
	if factor == 0 {
		return c
	}
	k := factor + 1
	if factor < 0 {
		k = 1 / (1 - factor)
	}
	return c.MulScalar(k, false)
}

// Temperature warms (delta > 0) or cools (delta < 0) c by adding delta to
// red and subtracting it from blue, saturating both.
func (c Color) Temperature(delta int) Color {
	d := float32(max(-255, min(255, delta)))
	return fromLane(c.lane().Add(wide.RGBA(d, 0, -d, 0)))
}

// Shift rotates the four channels right by places: Shift(1) moves red to
// green, green to blue, blue to alpha and alpha to red. Negative places
// rotate left.
func (c Color) Shift(places int) Color {
	n := ((places % 4) + 4) % 4
	bits := uint(8 * n)
	return c>>bits | c<<(32-bits)
}

// Luminance returns the WCAG relative luminance of c in [0, 1].
func (c Color) Luminance() float64 {
	return srgb.Luminance(c.R(), c.G(), c.B())
}

// Saturation returns (max - min) / max over R, G and B, or 0 for black.
func (c Color) Saturation() float64 {
	hi := max(c.R(), c.G(), c.B())
	if hi == 0 {
		return 0
	}
	lo := min(c.R(), c.G(), c.B())
	return float64(hi-lo) / float64(hi)
}

// =============================================================================
// Hex
// =============================================================================

// Hex returns "#rrggbb", or "#rrggbbaa" when includeAlpha is set.
func (c Color) Hex(includeAlpha bool) string {
	if includeAlpha {
		return fmt.Sprintf("#%08x", uint32(c))
	}
	return fmt.Sprintf("#%06x", uint32(c)>>8)
}

// ParseHex parses a hex color.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'.
func ParseHex(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")

	var ch [4]uint32
	ch[Alpha] = 255

	var ok bool
	switch len(s) {
	case 3, 4:
		ok = true
		for i := range len(s) {
			var v uint32
			ok = ok && parseHexDigits(s[i:i+1], &v)
			ch[i] = v * 17
		}
	case 6, 8:
		ok = true
		for i := 0; i < len(s); i += 2 {
			ok = ok && parseHexDigits(s[i:i+2], &ch[i/2])
		}
	}
	if !ok {
		return Transparent, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	// #nosec G115 -- every channel was parsed from at most two hex digits
	return New(uint8(ch[0]), uint8(ch[1]), uint8(ch[2]), uint8(ch[3])), nil
}

// parseHexDigits accumulates s as hexadecimal into val and reports whether
// every digit was valid.
func parseHexDigits(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// checkUnit fails with ErrOutOfRange unless v lies in [0, 1].
func checkUnit(name string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return fmt.Errorf("%w: %s = %v, want [0, 1]", ErrOutOfRange, name, v)
	}
	return nil
}
