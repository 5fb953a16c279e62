package wide

// ChannelMax is the largest value of a quantized channel.
const ChannelMax = 255

// Unpack expands a packed RGBA word (R in the most significant byte) into a
// lane holding channel values in [0, 255].
func Unpack(word uint32) F32x4 {
	return F32x4{
		float32(word >> 24),
		float32((word >> 16) & 0xFF),
		float32((word >> 8) & 0xFF),
		float32(word & 0xFF),
	}
}

// Pack clamps a lane to [0, 255], rounds each channel to the nearest
// integer and packs it back into an RGBA word.
//
// NaN quantizes to 0, +Inf to 255 and -Inf to 0.
func Pack(v F32x4) uint32 {
	q := v.Clamp(0, ChannelMax).Round()
	// Intentional truncation - channels are clamped to [0, 255] above
	return uint32(q[0])<<24 | uint32(q[1])<<16 | uint32(q[2])<<8 | uint32(q[3]) // #nosec G115
}

// Normalize maps a lane from [0, 255] to [0, 1] without clamping.
func Normalize(v F32x4) F32x4 {
	return v.Div(SplatF32(ChannelMax))
}

// Denormalize maps a lane from [0, 1] to [0, 255] without clamping.
func Denormalize(v F32x4) F32x4 {
	return v.Scale(ChannelMax)
}
