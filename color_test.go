package tincture

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

// =============================================================================
// Packing and channel access
// =============================================================================

func TestNew_Packing(t *testing.T) {
	c := New(0x01, 0x02, 0x03, 0x04)

	if c.Word() != 0x01020304 {
		t.Errorf("Word() = %#08x, want 0x01020304", c.Word())
	}
	if c.R() != 1 || c.G() != 2 || c.B() != 3 || c.A() != 4 {
		t.Errorf("channels = %v, want [1 2 3 4]", c.Channels())
	}
	if FromWord(0x01020304) != c {
		t.Error("FromWord() should round-trip Word()")
	}
	if RGB(1, 2, 3) != New(1, 2, 3, 255) {
		t.Error("RGB() should be opaque")
	}
}

func TestColor_String(t *testing.T) {
	if got := New(1, 2, 3, 4).String(); got != "Color(1, 2, 3, 4)" {
		t.Errorf("String() = %q", got)
	}
}

func TestColor_ImageColor(t *testing.T) {
	c := New(255, 0, 0, 128)

	var _ color.Color = c

	r, g, b, a := c.RGBA()
	wr, wg, wb, wa := color.NRGBA{R: 255, G: 0, B: 0, A: 128}.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("RGBA() = %d %d %d %d, want %d %d %d %d", r, g, b, a, wr, wg, wb, wa)
	}

	// Premultiplied half-red converts back to full red at half alpha.
	got := FromColor(color.RGBA{R: 128, G: 0, B: 0, A: 128})
	if got != c {
		t.Errorf("FromColor() = %v, want %v", got, c)
	}
}

func TestColor_Channel(t *testing.T) {
	c := New(10, 20, 30, 40)

	for i, want := range []uint8{10, 20, 30, 40} {
		got, err := c.Channel(i)
		if err != nil || got != want {
			t.Errorf("Channel(%d) = %d, %v; want %d", i, got, err, want)
		}
	}

	for _, i := range []int{-1, 4, 100} {
		_, err := c.Channel(i)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Channel(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
		if !IsValidation(err) {
			t.Errorf("Channel(%d) error should be a validation error", i)
		}
	}
}

func TestColor_WithChannel(t *testing.T) {
	c := New(10, 20, 30, 40)

	got, err := c.WithChannel(Blue, 99)
	if err != nil {
		t.Fatal(err)
	}
	if got != New(10, 20, 99, 40) {
		t.Errorf("WithChannel(Blue, 99) = %v", got)
	}
	if c != New(10, 20, 30, 40) {
		t.Error("WithChannel modified the receiver")
	}

	if _, err := c.WithChannel(-1, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("WithChannel(-1) error = %v", err)
	}
}

func TestChannelIndex(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"red", Red},
		{" G ", Green},
		{"Blue", Blue},
		{"ALPHA", Alpha},
	}
	for _, tt := range tests {
		got, err := ChannelIndex(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ChannelIndex(%q) = %d, %v; want %d", tt.name, got, err, tt.want)
		}
	}

	if _, err := ChannelIndex("hue"); !errors.Is(err, ErrUnknownChannel) || !IsValidation(err) {
		t.Errorf("ChannelIndex(hue) error = %v, want ErrUnknownChannel", err)
	}
}

func TestColor_ChannelByName(t *testing.T) {
	c := New(10, 20, 30, 40)

	tests := []struct {
		name string
		want uint8
	}{
		{"red", 10},
		{"RED", 10},
		{"Green", 20},
		{"b", 30},
		{"A", 40},
		{" alpha ", 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ChannelByName(tt.name)
			if err != nil || got != tt.want {
				t.Errorf("ChannelByName(%q) = %d, %v; want %d", tt.name, got, err, tt.want)
			}
		})
	}

	for _, name := range []string{"purple", "", "rgba", "4"} {
		_, err := c.ChannelByName(name)
		if !errors.Is(err, ErrUnknownChannel) || !IsValidation(err) {
			t.Errorf("ChannelByName(%q) error = %v, want ErrUnknownChannel", name, err)
		}
	}

	got, err := c.WithChannelByName("Alpha", 255)
	if err != nil || got != New(10, 20, 30, 255) {
		t.Errorf("WithChannelByName(Alpha) = %v, %v", got, err)
	}
}

// =============================================================================
// Scalar arithmetic
// =============================================================================

func TestColor_ScalarArithmetic(t *testing.T) {
	c := New(10, 21, 30, 100)

	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"add", c.AddScalar(5, false), New(15, 26, 35, 100)},
		{"add alpha", c.AddScalar(5, true), New(15, 26, 35, 105)},
		{"add saturates", c.AddScalar(300, true), New(255, 255, 255, 255)},
		{"sub saturates", c.SubScalar(20, false), New(0, 1, 10, 100)},
		{"sub alpha", c.SubScalar(200, true), New(0, 0, 0, 0)},
		{"mul rounds half away", c.MulScalar(1.5, false), New(15, 32, 45, 100)},
		{"mul negative", c.MulScalar(-1, true), New(0, 0, 0, 0)},
		{"fractional add", c.AddScalar(0.4, false), New(10, 21, 30, 100)},
		{"nth root", New(100, 16, 0, 7).NthRoot(2, false), New(10, 4, 0, 7)},
		{"nth root alpha", New(100, 16, 0, 81).NthRoot(2, true), New(10, 4, 0, 9)},
		{"zeroth root", New(100, 1, 200, 7).NthRoot(0, false), New(255, 1, 255, 7)},
		{"pow", New(2, 3, 16, 4).Pow(2, false), New(4, 9, 255, 4)},
		{"pow alpha", New(100, 16, 0, 81).Pow(0.5, true), New(10, 4, 0, 9)},
		{"pow negative", New(4, 0, 255, 9).Pow(-1, false), New(0, 255, 0, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestColor_DivScalar(t *testing.T) {
	c := New(10, 21, 30, 100)

	got, err := c.DivScalar(2, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != New(5, 11, 15, 50) {
		t.Errorf("DivScalar(2) = %v, want Color(5, 11, 15, 50)", got)
	}

	got, err = c.DivScalar(0, true)
	if !errors.Is(err, ErrDivideByZero) {
		t.Errorf("DivScalar(0) error = %v, want ErrDivideByZero", err)
	}
	if IsValidation(err) {
		t.Error("ErrDivideByZero is not a validation error")
	}
	if got != c {
		t.Errorf("DivScalar(0) = %v, want receiver unchanged", got)
	}
}

func TestColor_AlphaExclusion(t *testing.T) {
	scalars := []float64{-1000, -1, 0.5, 3, 1000}
	colors := []Color{New(0, 0, 0, 0), New(1, 2, 3, 77), New(255, 255, 255, 255)}

	for _, c := range colors {
		for _, s := range scalars {
			results := map[string]Color{
				"add":  c.AddScalar(s, false),
				"sub":  c.SubScalar(s, false),
				"mul":  c.MulScalar(s, false),
				"root": c.NthRoot(s, false),
				"pow":  c.Pow(s, false),
			}
			d, err := c.DivScalar(s, false)
			if err != nil {
				t.Fatal(err)
			}
			results["div"] = d

			for op, got := range results {
				if got.A() != c.A() {
					t.Errorf("%s(%v) on %v changed alpha to %d", op, s, c, got.A())
				}
			}
		}
	}
}

// =============================================================================
// Color-to-color arithmetic
// =============================================================================

func TestColor_ColorArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"add saturates", RGB(200, 200, 200).Add(New(100, 100, 100, 0), true), New(255, 255, 255, 255)},
		{"add keeps alpha", New(1, 2, 3, 4).Add(New(1, 1, 1, 200), false), New(2, 3, 4, 4)},
		{"sub saturates", New(10, 20, 30, 40).Sub(New(20, 10, 30, 50), true), New(0, 10, 0, 0)},
		{"sub keeps alpha", New(10, 20, 30, 40).Sub(New(20, 10, 30, 50), false), New(0, 10, 0, 40)},
		{"mul", New(2, 3, 4, 5).Mul(New(10, 100, 0, 2), true), New(20, 255, 0, 10)},
		{"min", New(10, 200, 30, 40).Min(New(20, 100, 30, 5), false), New(10, 100, 30, 40)},
		{"min alpha", New(10, 200, 30, 40).Min(New(20, 100, 30, 5), true), New(10, 100, 30, 5)},
		{"max", New(10, 200, 30, 40).Max(New(20, 100, 30, 50), false), New(20, 200, 30, 40)},
		{"inverse", New(0, 55, 255, 10).Inverse(false), New(255, 200, 0, 10)},
		{"inverse alpha", New(0, 55, 255, 10).Inverse(true), New(255, 200, 0, 245)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestColor_Div(t *testing.T) {
	c := New(100, 50, 9, 200)

	got, err := c.Div(New(3, 2, 2, 0), false)
	if err != nil {
		t.Fatal(err)
	}
	if got != New(33, 25, 5, 200) {
		t.Errorf("Div() = %v, want Color(33, 25, 5, 200)", got)
	}

	// With alpha included the zero alpha divisor participates.
	if _, err := c.Div(New(3, 2, 2, 0), true); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Div() error = %v, want ErrDivideByZero", err)
	}
	if _, err := c.Div(New(3, 0, 2, 1), false); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Div() error = %v, want ErrDivideByZero", err)
	}
}

// =============================================================================
// Adjustments
// =============================================================================

func TestColor_Adjustments(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"grayscale", New(255, 0, 0, 9).Grayscale(), New(76, 76, 76, 9)},
		{"contrast up", RGB(200, 100, 127).Contrast(1), RGB(255, 73, 127)},
		{"contrast zero", RGB(200, 100, 127).Contrast(0), RGB(200, 100, 127)},
		{"contrast flat", RGB(200, 100, 0).Contrast(-1), RGB(128, 128, 128)},
		{"brightness up", New(100, 50, 200, 3).Brightness(1), New(200, 100, 255, 3)},
		{"brightness down", New(100, 50, 200, 3).Brightness(-1), New(50, 25, 100, 3)},
		{"temperature warm", RGB(250, 100, 5).Temperature(10), RGB(255, 100, 0)},
		{"temperature cool", RGB(250, 100, 5).Temperature(-10), RGB(240, 100, 15)},
		{"shift right", New(1, 2, 3, 4).Shift(1), New(4, 1, 2, 3)},
		{"shift left", New(1, 2, 3, 4).Shift(-1), New(2, 3, 4, 1)},
		{"shift full turn", New(1, 2, 3, 4).Shift(8), New(1, 2, 3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestColor_Lerp(t *testing.T) {
	got, err := Black.Lerp(White, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got != RGB(128, 128, 128) {
		t.Errorf("Lerp(0.5) = %v", got)
	}

	for _, tv := range []float64{0, 1} {
		if _, err := Black.Lerp(White, tv); err != nil {
			t.Errorf("Lerp(%v) error = %v", tv, err)
		}
	}

	for _, tv := range []float64{-0.1, 1.5, math.NaN()} {
		if _, err := Black.Lerp(White, tv); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Lerp(%v) error = %v, want ErrOutOfRange", tv, err)
		}
	}
}

func TestColor_ApproxEqual(t *testing.T) {
	a := New(100, 100, 100, 100)
	b := New(102, 98, 101, 50)

	if !a.ApproxEqual(b, 2, false) {
		t.Error("ApproxEqual(diff 2, no alpha) = false")
	}
	if a.ApproxEqual(b, 1, false) {
		t.Error("ApproxEqual(diff 1) = true")
	}
	if a.ApproxEqual(b, 2, true) {
		t.Error("ApproxEqual(diff 2, alpha) = true")
	}
}

func TestColor_LuminanceAndSaturation(t *testing.T) {
	if got := White.Luminance(); math.Abs(got-1) > 1e-9 {
		t.Errorf("White.Luminance() = %v, want 1", got)
	}
	if got := Black.Luminance(); got != 0 {
		t.Errorf("Black.Luminance() = %v, want 0", got)
	}
	if got := RGB(200, 100, 50).Saturation(); got != 0.75 {
		t.Errorf("Saturation() = %v, want 0.75", got)
	}
	if got := Black.Saturation(); got != 0 {
		t.Errorf("Black.Saturation() = %v, want 0", got)
	}
}

// =============================================================================
// Hex
// =============================================================================

func TestColor_Hex(t *testing.T) {
	c := New(0x12, 0x34, 0x56, 0x78)
	if got := c.Hex(false); got != "#123456" {
		t.Errorf("Hex(false) = %q", got)
	}
	if got := c.Hex(true); got != "#12345678" {
		t.Errorf("Hex(true) = %q", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#fff", White, true},
		{"f00", RGB(255, 0, 0), true},
		{"#1234", New(0x11, 0x22, 0x33, 0x44), true},
		{"#11223344", New(0x11, 0x22, 0x33, 0x44), true},
		{"#AbCdEf", RGB(0xab, 0xcd, 0xef), true},
		{"", 0, false},
		{"#12345", 0, false},
		{"#zzzzzz", 0, false},
		{"#12g", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.ok {
				if err != nil || got != tt.want {
					t.Errorf("ParseHex(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
				}
				return
			}
			if !errors.Is(err, ErrInvalidHex) {
				t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", tt.in, err)
			}
		})
	}
}

func TestHex_RoundTrip(t *testing.T) {
	for _, c := range []Color{Black, White, Transparent, New(1, 2, 3, 4), New(0xde, 0xad, 0xbe, 0xef)} {
		got, err := ParseHex(c.Hex(true))
		if err != nil || got != c {
			t.Errorf("ParseHex(%q) = %v, %v; want %v", c.Hex(true), got, err, c)
		}
	}
}
