package pointillism

// Consume marks the filled disk of the given radius around (x0, y0) as used
// by zeroing alpha on every pixel whose distance from the center is at most
// radius. The scan is limited to the disk's bounding box clipped to the
// buffer, so centers near an edge cost no more than the visible part.
//
// It returns the number of pixels that were opaque before the call.
// A negative radius consumes nothing.
func Consume(b *Buffer, x0, y0, radius int) int {
	if radius < 0 || b.Empty() {
		return 0
	}

	xmin, xmax := max(x0-radius, 0), min(x0+radius, b.Width()-1)
	ymin, ymax := max(y0-radius, 0), min(y0+radius, b.Height()-1)
	r2 := radius * radius

	cleared := 0
	for y := ymin; y <= ymax; y++ {
		dy := y - y0
		for x := xmin; x <= xmax; x++ {
			dx := x - x0
			if dx*dx+dy*dy > r2 {
				continue
			}
			if p, ok := b.At(x, y); ok && !p.Transparent() {
				cleared++
			}
			b.SetAlpha(x, y, 0)
		}
	}
	return cleared
}
