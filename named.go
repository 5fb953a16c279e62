package tincture

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Named returns the SVG 1.1 named color, plus CSS4 rebeccapurple, e.g.
// "cornflowerblue". Lookup ignores case, spaces, '_' and '-', so
// "Cornflower Blue" also matches. "transparent" is accepted as well.
func Named(name string) (Color, error) {
	key := foldColorName(name)
	switch key {
	case "transparent":
		return Transparent, nil
	case "rebeccapurple":
		return RGB(102, 51, 153), nil
	}
	rgba, ok := colornames.Map[key]
	if !ok {
		return Transparent, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return FromColor(rgba), nil
}

// Parse parses a color given as hex ("#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa") or as a name accepted by Named. A bare hex string without '#'
// is tried as a name first, so "bad" is hex but "red" is a name.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	if c, err := Named(s); err == nil {
		return c, nil
	}
	if c, err := ParseHex(s); err == nil {
		return c, nil
	}
	return Transparent, fmt.Errorf("%w: %q is neither a hex color nor a color name", ErrUnknownColor, s)
}

func foldColorName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, name)
	return cases.Fold().String(name)
}

// Randomize returns a color whose channels are drawn uniformly from
// [lo[i], hi[i]] using rng. Pass lo = {0,0,0,0} and hi = {255,255,255,255}
// for a fully random color, or lo[i] == hi[i] to pin a channel. It fails
// with ErrOutOfRange when lo[i] > hi[i].
//
// The source is supplied by the caller; tincture keeps no global
// generator.
func Randomize(rng *rand.Rand, lo, hi [4]uint8) (Color, error) {
	var ch [4]uint8
	for i := range ch {
		if lo[i] > hi[i] {
			return Transparent, fmt.Errorf("%w: channel %d range [%d, %d]", ErrOutOfRange, i, lo[i], hi[i])
		}
		// #nosec G115 -- the sum is at most hi[i]
		ch[i] = lo[i] + uint8(rng.IntN(int(hi[i])-int(lo[i])+1))
	}
	return New(ch[0], ch[1], ch[2], ch[3]), nil
}
