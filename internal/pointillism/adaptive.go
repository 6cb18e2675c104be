package pointillism

// SampleAdaptive runs SampleSizable with consumption at every radius from
// opts.MaxRadius down to opts.MinRadius, stepping by opts.Step, and returns
// the concatenated points: all points of a larger radius precede those of a
// smaller one, and each pass is in raster order.
//
// The run is destructive. On return the buffer keeps every transparent hole
// left by accepted points; nothing is restored. Clone the buffer beforehand
// if the original pixels are needed again.
//
// Invalid options (see Options.Valid) and empty buffers produce no points.
func SampleAdaptive(b *Buffer, opts Options) []Point {
	points := []Point{}
	for _, r := range opts.Radii() {
		if b.Empty() {
			break
		}
		points = append(points, SampleSizable(b, r, opts.Tolerance, true)...)
	}
	return points
}

// PassCount is the number of points emitted at one radius.
type PassCount struct {
	Radius int `json:"radius"`
	Count  int `json:"count"`
}

// CountByRadius summarizes a point list as consecutive runs of equal radius,
// preserving order. For adaptive output this is one entry per pass that
// emitted at least one point.
func CountByRadius(points []Point) []PassCount {
	counts := []PassCount{}
	for _, p := range points {
		n := len(counts)
		if n > 0 && counts[n-1].Radius == p.Radius {
			counts[n-1].Count++
			continue
		}
		counts = append(counts, PassCount{Radius: p.Radius, Count: 1})
	}
	return counts
}
