package pointillism

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Distance returns the Euclidean distance between two colors over the R, G
// and B channels. Alpha is not part of the comparison.
//
// The result is symmetric and Distance(c, c) is 0. The largest possible value
// (black against white) is about 441.67.
func Distance(c1, c2 Pixel) float64 {
	dr := int(c1.R) - int(c2.R)
	dg := int(c1.G) - int(c2.G)
	db := int(c1.B) - int(c2.B)
	return math.Sqrt(float64(dr*dr + dg*dg + db*db))
}

// WithinTolerance reports whether Distance(c1, c2) <= tolerance.
func WithinTolerance(c1, c2 Pixel, tolerance float64) bool {
	return Distance(c1, c2) <= tolerance
}

// sameColor is the comparison used by the ring test: both pixels must be
// opaque and within tolerance of each other.
func sameColor(center, other Pixel, tolerance float64) bool {
	if center.Transparent() || other.Transparent() {
		return false
	}
	return WithinTolerance(center, other, tolerance)
}

// ParseColor parses a CSS style hex color ("#RRGGBB" or "#RGB", the leading
// '#' is optional) into an opaque Pixel.
func ParseColor(s string) (Pixel, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Pixel{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Pixel{R: r, G: g, B: b, A: 255}, nil
}

// Hex formats the RGB channels as "#rrggbb". Alpha is omitted.
func (p Pixel) Hex() string {
	return colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}.Hex()
}
