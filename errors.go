package tincture

import "errors"

// Validation errors. Every one of them satisfies IsValidation.
var (
	// ErrIndexOutOfRange is returned when a channel or batch index is outside
	// its valid range.
	ErrIndexOutOfRange = errors.New("tincture: index out of range")

	// ErrUnknownChannel is returned when a channel name is not one of
	// red, green, blue, alpha (or r, g, b, a).
	ErrUnknownChannel = errors.New("tincture: unknown channel")

	// ErrLengthMismatch is returned when parallel argument lists differ in length.
	ErrLengthMismatch = errors.New("tincture: length mismatch")

	// ErrOutOfRange is returned when a numeric argument is outside its
	// declared bound, e.g. an interpolation factor outside [0, 1].
	ErrOutOfRange = errors.New("tincture: argument out of range")

	// ErrUnknownBlendMode is returned when a blend mode name cannot be parsed.
	ErrUnknownBlendMode = errors.New("tincture: unknown blend mode")

	// ErrUnsupportedBlendMode is returned for modes that are named but have
	// no formula (PinLight).
	ErrUnsupportedBlendMode = errors.New("tincture: unsupported blend mode")

	// ErrInvalidHex is returned when a hex color string is malformed.
	ErrInvalidHex = errors.New("tincture: invalid hex color")

	// ErrUnknownColor is returned when a color name is not in the named table.
	ErrUnknownColor = errors.New("tincture: unknown color name")
)

// ErrDivideByZero is returned when dividing by a scalar or channel that is
// exactly zero.
var ErrDivideByZero = errors.New("tincture: division by zero")

var validationErrors = []error{
	ErrIndexOutOfRange,
	ErrUnknownChannel,
	ErrLengthMismatch,
	ErrOutOfRange,
	ErrUnknownBlendMode,
	ErrUnsupportedBlendMode,
	ErrInvalidHex,
	ErrUnknownColor,
}

// IsValidation reports whether err (or any error it wraps) is a validation
// error: a bad index, name, length or bound supplied by the caller.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
