package pointillism

// ExcludeColor makes every opaque pixel within tolerance of color transparent
// and returns how many pixels it cleared. Pixels farther away are left
// untouched. It is typically run before sampling to drop a background.
func ExcludeColor(b *Buffer, color Pixel, tolerance float64) int {
	excluded := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			p, _ := b.At(x, y)
			if p.Transparent() {
				continue
			}
			if WithinTolerance(color, p, tolerance) {
				b.SetAlpha(x, y, 0)
				excluded++
			}
		}
	}
	return excluded
}
