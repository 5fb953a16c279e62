package wide

import "github.com/chewxy/math32"

// F32x4 represents 4 float32 values for SIMD-style operations.
// One F32x4 holds the R, G, B, A channels of a single color (a lane).
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type F32x4 [4]float32

// Mask4 is the result of a lane-wise comparison. It is consumed by Select.
type Mask4 [4]bool

// SplatF32 creates F32x4 with all elements set to n.
func SplatF32(n float32) F32x4 {
	return F32x4{n, n, n, n}
}

// RGBA creates F32x4 from four channel values.
func RGBA(r, g, b, a float32) F32x4 {
	return F32x4{r, g, b, a}
}

// Add performs element-wise addition.
func (v F32x4) Add(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x4) Sub(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x4) Mul(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div performs element-wise division.
// Note: Division by zero results in +Inf, -Inf, or NaN according to IEEE 754.
func (v F32x4) Div(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// Scale multiplies every element by s.
func (v F32x4) Scale(s float32) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] * s
	}
	return result
}

// Sqrt computes square root of each element.
// Negative values result in NaN according to IEEE 754.
func (v F32x4) Sqrt() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Sqrt(v[i])
	}
	return result
}

// Abs computes the absolute value of each element.
func (v F32x4) Abs() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Abs(v[i])
	}
	return result
}

// Root computes v[i]^(1/root[i]) for each element.
//
// There is no vector instruction for an arbitrary root, so this is a scalar
// loop in every kernel.
func (v F32x4) Root(root F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Pow(v[i], 1/root[i])
	}
	return result
}

// Pow computes v[i]^exp[i] for each element. Like Root it is a scalar loop.
func (v F32x4) Pow(exp F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Pow(v[i], exp[i])
	}
	return result
}

// Clamp clamps each element to [minVal, maxVal].
// NaN elements are set to minVal so that quantization is deterministic.
func (v F32x4) Clamp(minVal, maxVal float32) F32x4 {
	var result F32x4
	for i := range v {
		switch {
		case !(v[i] >= minVal): // also catches NaN
			result[i] = minVal
		case v[i] > maxVal:
			result[i] = maxVal
		default:
			result[i] = v[i]
		}
	}
	return result
}

// Round rounds each element to the nearest integer, half away from zero.
func (v F32x4) Round() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Round(v[i])
	}
	return result
}

// Lerp performs linear interpolation: v + (other - v) * t.
func (v F32x4) Lerp(other F32x4, t float32) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + (other[i]-v[i])*t
	}
	return result
}

// Min performs element-wise minimum.
func (v F32x4) Min(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		if v[i] < other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Max performs element-wise maximum.
func (v F32x4) Max(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		if v[i] > other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Less reports v[i] < other[i] for each element.
func (v F32x4) Less(other F32x4) Mask4 {
	var m Mask4
	for i := range v {
		m[i] = v[i] < other[i]
	}
	return m
}

// Select returns a[i] where m[i] is set and b[i] elsewhere.
//
// Both a and b are computed in full before selection, so per-channel
// branches stay branchless at the call site.
func Select(m Mask4, a, b F32x4) F32x4 {
	var result F32x4
	for i := range m {
		if m[i] {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}

// WithAlpha returns v with its fourth element replaced by a.
func (v F32x4) WithAlpha(a float32) F32x4 {
	v[3] = a
	return v
}
