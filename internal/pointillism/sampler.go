package pointillism

// Point is one emitted sample: a center, its color, and the circle it stands
// for. Size is the diameter used when drawing (2*Radius for sized points, the
// grid stride for fixed grid points).
type Point struct {
	X      int   `json:"x"`
	Y      int   `json:"y"`
	R      uint8 `json:"r"`
	G      uint8 `json:"g"`
	B      uint8 `json:"b"`
	A      uint8 `json:"a"`
	Radius int   `json:"radius,omitempty"`
	Size   int   `json:"size"`
}

// Color returns the point's color as a Pixel.
func (p Point) Color() Pixel {
	return Pixel{R: p.R, G: p.G, B: p.B, A: p.A}
}

func newPoint(x, y int, c Pixel, radius, size int) Point {
	return Point{X: x, Y: y, R: c.R, G: c.G, B: c.B, A: c.A, Radius: radius, Size: size}
}

// SampleSizable performs one raster scan at a fixed radius.
//
// Every opaque pixel whose boundary ring at radius matches its color within
// tolerance is emitted as a point of size 2*radius, in increasing Y then X
// order. When consume is true the disk around each accepted point is cleared
// immediately, so pixels claimed earlier in the same scan are skipped both as
// centers and as boundary matches.
//
// A radius <= 0 or an empty buffer yields no points.
func SampleSizable(b *Buffer, radius int, tolerance float64, consume bool) []Point {
	points := []Point{}
	if radius <= 0 || b.Empty() {
		return points
	}

	ring := NewRing(radius)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			c, _ := b.At(x, y)
			if c.Transparent() {
				continue
			}
			if !ring.Uniform(b, x, y, tolerance) {
				continue
			}
			points = append(points, newPoint(x, y, c, radius, radius*2))
			if consume {
				Consume(b, x, y, radius)
			}
		}
	}
	return points
}

// SampleGrid emits every opaque pixel on a uniform grid of the given stride,
// starting at (0,0), in raster order. Points carry Size = weight and no
// radius. No uniformity test is applied and the buffer is not modified.
// A weight < 1 yields no points.
func SampleGrid(b *Buffer, weight int) []Point {
	points := []Point{}
	if weight < 1 || b.Empty() {
		return points
	}
	for y := 0; y < b.Height(); y += weight {
		for x := 0; x < b.Width(); x += weight {
			c, _ := b.At(x, y)
			if c.Transparent() {
				continue
			}
			points = append(points, newPoint(x, y, c, 0, weight))
		}
	}
	return points
}
