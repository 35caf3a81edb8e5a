package compositor

import (
	"fmt"
	"strings"
)

type BlendMode uint8

const (
	// Standard alpha compositing; the source is drawn over the backdrop.
	SourceOver BlendMode = iota

	// Overlapping pixels keep the lighter of the source and backdrop
	// channel values.
	Lighten

	// Overlapping pixels keep the darker channel values.
	Darken
)

func (m BlendMode) String() string {
	switch m {
	case SourceOver:
		return "source-over"
	case Lighten:
		return "lighten"
	case Darken:
		return "darken"
	}
	return fmt.Sprintf("blend(%d)", uint8(m))
}

// Parse a blend mode name as returned by BlendMode.String.
func ParseBlendMode(name string) (BlendMode, error) {
	for _, m := range []BlendMode{SourceOver, Lighten, Darken} {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return SourceOver, fmt.Errorf("%w: %q", ErrUnknownBlendMode, name)
}

// A blendFn combines a premultiplied source channel sc (alpha sa) with a
// premultiplied backdrop channel dc (alpha da) and returns the
// premultiplied result.
type blendFn func(sc, sa, dc, da float32) float32

func (m BlendMode) blendFn() blendFn {
	switch m {
	case Lighten:
		return blendLighten
	case Darken:
		return blendDarken
	}
	return blendSourceOver
}

func blendSourceOver(sc, sa, dc, da float32) float32 {
	return sc + dc*(1-sa)
}

// Separable blending with B(cb, cs) = max(cb, cs), expressed on
// premultiplied values:
// co = max(sc*da, dc*sa) + sc*(1-da) + dc*(1-sa)
func blendLighten(sc, sa, dc, da float32) float32 {
	return max32(sc*da, dc*sa) + sc*(1-da) + dc*(1-sa)
}

func blendDarken(sc, sa, dc, da float32) float32 {
	return min32(sc*da, dc*sa) + sc*(1-da) + dc*(1-sa)
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
