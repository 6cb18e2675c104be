package pointillism

import "testing"

// assertRasterOrder fails if points are not in increasing y-then-x order
func assertRasterOrder(t *testing.T, points []Point) {
	t.Helper()
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		if cur.Y < prev.Y || (cur.Y == prev.Y && cur.X <= prev.X) {
			t.Errorf("point %d (%d,%d) is not after (%d,%d) in raster order",
				i, cur.X, cur.Y, prev.X, prev.Y)
		}
	}
}

func TestSampleSizable_NoConsume(t *testing.T) {
	b := newUniformBuffer(4, 4, gray)

	points := SampleSizable(b, 1, 0, false)
	if len(points) != 4 {
		t.Fatalf("expected the 4 interior pixels, got %d points", len(points))
	}

	want := [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	for i, p := range points {
		if p.X != want[i][0] || p.Y != want[i][1] {
			t.Errorf("point %d: got (%d,%d), want (%d,%d)", i, p.X, p.Y, want[i][0], want[i][1])
		}
		if p.Radius != 1 || p.Size != 2 {
			t.Errorf("point %d: radius %d size %d, want 1 and 2", i, p.Radius, p.Size)
		}
		if p.Color() != gray {
			t.Errorf("point %d: color %+v, want %+v", i, p.Color(), gray)
		}
	}

	if b.OpaqueCount() != 16 {
		t.Errorf("sampling without consume modified the buffer: %d opaque", b.OpaqueCount())
	}
}

func TestSampleSizable_Consume(t *testing.T) {
	b := newUniformBuffer(4, 4, gray)

	points := SampleSizable(b, 1, 0, true)
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	if points[0].X != 1 || points[0].Y != 1 {
		t.Errorf("point at (%d,%d), want (1,1)", points[0].X, points[0].Y)
	}
	if b.OpaqueCount() != 16-5 {
		t.Errorf("opaque after pass: got %d, want 11", b.OpaqueCount())
	}
}

func TestSampleSizable_EdgeExclusion(t *testing.T) {
	const n = 9
	for _, r := range []int{1, 2, 3} {
		b := newUniformBuffer(n, n, gray)
		points := SampleSizable(b, r, 0, false)

		side := n - 2*r
		if len(points) != side*side {
			t.Errorf("radius %d: got %d points, want %d", r, len(points), side*side)
		}
		for _, p := range points {
			if p.X < r || p.Y < r || p.X > n-1-r || p.Y > n-1-r {
				t.Errorf("radius %d: point (%d,%d) is closer than r to an edge", r, p.X, p.Y)
			}
		}
		assertRasterOrder(t, points)
	}
}

func TestSampleSizable_SkipsConsumedPixels(t *testing.T) {
	b := newUniformBuffer(5, 5, gray)
	b.SetAlpha(2, 2, 0)

	points := SampleSizable(b, 1, 1000, false)
	if len(points) != 0 {
		t.Errorf("every interior ring touches the consumed center, got %d points", len(points))
	}
	for _, p := range points {
		if p.X == 2 && p.Y == 2 {
			t.Error("a transparent pixel was emitted as a center")
		}
	}
}

func TestSampleSizable_TwoRegions(t *testing.T) {
	// Left half red, right half blue
	b := NewBuffer(10, 5)
	red := Pixel{R: 255, A: 255}
	blue := Pixel{B: 255, A: 255}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if x < 5 {
				b.Set(x, y, red)
			} else {
				b.Set(x, y, blue)
			}
		}
	}

	points := SampleSizable(b, 1, 0, false)
	for _, p := range points {
		if p.X == 4 || p.X == 5 {
			t.Errorf("(%d,%d) sits on the color border and should not qualify", p.X, p.Y)
		}
		want := red
		if p.X >= 5 {
			want = blue
		}
		if p.Color() != want {
			t.Errorf("(%d,%d) color %+v, want %+v", p.X, p.Y, p.Color(), want)
		}
	}
	// 3 columns (1..3 and 6..8) x 3 rows on each side
	if len(points) != 18 {
		t.Errorf("got %d points, want 18", len(points))
	}
}

func TestSampleSizable_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		buf    *Buffer
		radius int
	}{
		{"empty width", NewBuffer(0, 4), 1},
		{"empty height", NewBuffer(4, 0), 1},
		{"zero radius", newUniformBuffer(4, 4, gray), 0},
		{"negative radius", newUniformBuffer(4, 4, gray), -2},
		{"radius larger than buffer", newUniformBuffer(4, 4, gray), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := SampleSizable(tt.buf, tt.radius, 1, true)
			if points == nil {
				t.Error("expected an empty slice, got nil")
			}
			if len(points) != 0 {
				t.Errorf("expected no points, got %d", len(points))
			}
		})
	}
}

func TestSampleGrid(t *testing.T) {
	b := newUniformBuffer(5, 5, gray)
	b.SetAlpha(2, 2, 0)

	points := SampleGrid(b, 2)
	// (0,2,4) x (0,2,4) minus the transparent (2,2)
	if len(points) != 8 {
		t.Fatalf("got %d points, want 8", len(points))
	}
	for _, p := range points {
		if p.X%2 != 0 || p.Y%2 != 0 {
			t.Errorf("(%d,%d) is off the grid", p.X, p.Y)
		}
		if p.Size != 2 || p.Radius != 0 {
			t.Errorf("(%d,%d): size %d radius %d, want 2 and 0", p.X, p.Y, p.Size, p.Radius)
		}
	}
	assertRasterOrder(t, points)

	if b.OpaqueCount() != 24 {
		t.Error("grid sampling must not modify the buffer")
	}
}

func TestSampleGrid_WeightOne(t *testing.T) {
	b := newUniformBuffer(3, 2, gray)
	if n := len(SampleGrid(b, 1)); n != 6 {
		t.Errorf("weight 1 should emit every pixel, got %d", n)
	}
}

func TestSampleGrid_Invalid(t *testing.T) {
	b := newUniformBuffer(3, 3, gray)
	for _, w := range []int{0, -1} {
		if n := len(SampleGrid(b, w)); n != 0 {
			t.Errorf("weight %d: expected no points, got %d", w, n)
		}
	}
	if n := len(SampleGrid(NewBuffer(0, 0), 1)); n != 0 {
		t.Errorf("empty buffer: expected no points, got %d", n)
	}
}
