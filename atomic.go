package tincture

import "sync/atomic"

// AtomicColor is a shared, mutable Color cell.
//
// Every mutation replaces the whole word with one atomic store or
// compare-and-swap, so a concurrent Load never observes a mix of old and new
// channels. In-place methods mirror the copy-returning methods of Color and
// return the value they stored. The zero value holds Transparent.
//
// An AtomicColor must not be copied after first use.
type AtomicColor struct {
	_ noCopy
	v atomic.Uint32
}

// noCopy lets go vet's copylocks check flag copies of AtomicColor.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// NewAtomicColor creates a cell holding c.
func NewAtomicColor(c Color) *AtomicColor {
	a := &AtomicColor{}
	a.v.Store(uint32(c))
	return a
}

// Load returns the current color.
func (a *AtomicColor) Load() Color {
	return Color(a.v.Load())
}

// Store replaces the current color.
func (a *AtomicColor) Store(c Color) {
	a.v.Store(uint32(c))
}

// Swap stores c and returns the previous color.
func (a *AtomicColor) Swap(c Color) Color {
	return Color(a.v.Swap(uint32(c)))
}

// CompareAndSwap stores newColor if the cell still holds old.
func (a *AtomicColor) CompareAndSwap(old, newColor Color) bool {
	return a.v.CompareAndSwap(uint32(old), uint32(newColor))
}

// Update applies fn to the current color and stores the result, retrying
// if another goroutine changed the cell in between. fn may run more than
// once and must not have side effects. If fn fails, nothing is stored and
// the error is returned with the color fn saw.
func (a *AtomicColor) Update(fn func(Color) (Color, error)) (Color, error) {
	for {
		old := a.Load()
		next, err := fn(old)
		if err != nil {
			return old, err
		}
		if a.CompareAndSwap(old, next) {
			return next, nil
		}
	}
}

// update is Update for infallible transforms.
func (a *AtomicColor) update(fn func(Color) Color) Color {
	c, _ := a.Update(func(c Color) (Color, error) { return fn(c), nil })
	return c
}

// SetChannel replaces channel i in place.
func (a *AtomicColor) SetChannel(i int, v uint8) (Color, error) {
	return a.Update(func(c Color) (Color, error) { return c.WithChannel(i, v) })
}

// SetChannelByName replaces the named channel in place.
func (a *AtomicColor) SetChannelByName(name string, v uint8) (Color, error) {
	i, err := ChannelIndex(name)
	if err != nil {
		return a.Load(), err
	}
	return a.SetChannel(i, v)
}

// AddScalar is Color.AddScalar in place.
func (a *AtomicColor) AddScalar(s float64, includeAlpha bool) Color {
	return a.update(func(c Color) Color { return c.AddScalar(s, includeAlpha) })
}

// SubScalar is Color.SubScalar in place.
func (a *AtomicColor) SubScalar(s float64, includeAlpha bool) Color {
	return a.update(func(c Color) Color { return c.SubScalar(s, includeAlpha) })
}

// MulScalar is Color.MulScalar in place.
func (a *AtomicColor) MulScalar(s float64, includeAlpha bool) Color {
	return a.update(func(c Color) Color { return c.MulScalar(s, includeAlpha) })
}

// DivScalar is Color.DivScalar in place. On ErrDivideByZero the cell is
// left unchanged.
func (a *AtomicColor) DivScalar(s float64, includeAlpha bool) (Color, error) {
	return a.Update(func(c Color) (Color, error) { return c.DivScalar(s, includeAlpha) })
}

// NthRoot is Color.NthRoot in place.
func (a *AtomicColor) NthRoot(root float64, includeAlpha bool) Color {
	return a.update(func(c Color) Color { return c.NthRoot(root, includeAlpha) })
}

// Blend blends the cell (first operand) with other in place.
func (a *AtomicColor) Blend(mode BlendMode, other Color) (Color, error) {
	return a.Update(func(c Color) (Color, error) { return Blend(mode, c, other) })
}

// String returns the String of the current color.
func (a *AtomicColor) String() string {
	return a.Load().String()
}
