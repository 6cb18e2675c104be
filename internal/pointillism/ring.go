package pointillism

import "image"

// Ring holds the boundary offsets of a circle of one radius, enumerated with
// the midpoint circle algorithm. Only the circumference is listed, never the
// interior of the disk.
//
// A Ring is built once per radius and reused for every candidate center of a
// pass.
type Ring struct {
	radius  int
	offsets []image.Point
}

// NewRing enumerates the boundary of a circle of the given radius.
//
// For each step y increases from 0 while x tracks the circle from radius
// downward; the eight symmetric offsets are recorded in the order
// (x,y) (y,x) (-x,y) (-y,x) (-x,-y) (-y,-x) (x,-y) (y,-x). Duplicates on the
// axes and diagonals are kept. A radius <= 0 yields an empty ring.
func NewRing(radius int) *Ring {
	r := &Ring{radius: radius}
	if radius <= 0 {
		return r
	}

	x, y := radius, 0
	decision := 1 - x
	for x >= y {
		r.offsets = append(r.offsets,
			image.Pt(x, y), image.Pt(y, x),
			image.Pt(-x, y), image.Pt(-y, x),
			image.Pt(-x, -y), image.Pt(-y, -x),
			image.Pt(x, -y), image.Pt(y, -x),
		)
		y++
		if decision <= 0 {
			decision += 2*y + 1
		} else {
			x--
			decision += 2*(y-x) + 1
		}
	}
	return r
}

// Radius returns the radius the ring was built for.
func (r *Ring) Radius() int { return r.radius }

// Offsets returns the boundary offsets relative to a center.
// The slice is shared and must not be modified.
func (r *Ring) Offsets() []image.Point { return r.offsets }

// Uniform reports whether every boundary pixel around (x0, y0) matches the
// center color within tolerance.
//
// The test fails when the center is transparent or out of range, when any
// boundary coordinate falls outside the buffer, or when any boundary pixel is
// transparent. It stops at the first mismatch. Interior pixels are not
// examined, so a disk with a uniform rim passes even if its inside differs.
func (r *Ring) Uniform(b *Buffer, x0, y0 int, tolerance float64) bool {
	if len(r.offsets) == 0 {
		return false
	}
	center, ok := b.At(x0, y0)
	if !ok || center.Transparent() {
		return false
	}
	for _, off := range r.offsets {
		p, ok := b.At(x0+off.X, y0+off.Y)
		if !ok {
			return false
		}
		if !sameColor(center, p, tolerance) {
			return false
		}
	}
	return true
}

// RingUniform is a convenience wrapper that builds the ring for a single test.
// Passes over a whole buffer should build a Ring once and call Uniform.
func RingUniform(b *Buffer, x0, y0, radius int, tolerance float64) bool {
	return NewRing(radius).Uniform(b, x0, y0, tolerance)
}
