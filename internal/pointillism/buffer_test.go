package pointillism

import (
	"image"
	"image/color"
	"testing"
)

// newUniformBuffer creates a buffer where every pixel has the same color
func newUniformBuffer(width, height int, p Pixel) *Buffer {
	b := NewBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b.Set(x, y, p)
		}
	}
	return b
}

var gray = Pixel{R: 100, G: 100, B: 100, A: 255}

func TestNewBuffer(t *testing.T) {
	b := NewBuffer(3, 2)
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", b.Width(), b.Height())
	}
	if b.OpaqueCount() != 0 {
		t.Errorf("new buffer should be fully transparent, got %d opaque pixels", b.OpaqueCount())
	}
	if b.Empty() {
		t.Error("3x2 buffer reported empty")
	}
}

func TestNewBuffer_Empty(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -3, 5},
		{"negative height", 5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.width, tt.height)
			if !b.Empty() {
				t.Errorf("NewBuffer(%d,%d) should be empty", tt.width, tt.height)
			}
			if _, ok := b.At(0, 0); ok {
				t.Error("At(0,0) should be out of range on an empty buffer")
			}
		})
	}
}

func TestBuffer_OutOfRange(t *testing.T) {
	b := newUniformBuffer(4, 3, gray)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x equals width", 4, 0},
		{"y equals height", 0, 3},
		{"far away", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := b.At(tt.x, tt.y); ok {
				t.Errorf("At(%d,%d) should report out of range", tt.x, tt.y)
			}
			if b.SetAlpha(tt.x, tt.y, 0) {
				t.Errorf("SetAlpha(%d,%d) should report out of range", tt.x, tt.y)
			}
			if b.Set(tt.x, tt.y, Pixel{}) {
				t.Errorf("Set(%d,%d) should report out of range", tt.x, tt.y)
			}
		})
	}

	// Row wrap must not happen: (4,0) is not (0,1)
	if b.OpaqueCount() != 12 {
		t.Errorf("out-of-range writes modified the buffer: %d opaque pixels, want 12", b.OpaqueCount())
	}
}

func TestBuffer_SetAndAt(t *testing.T) {
	b := NewBuffer(3, 3)
	want := Pixel{R: 10, G: 20, B: 30, A: 40}
	if !b.Set(2, 1, want) {
		t.Fatal("Set(2,1) failed")
	}

	got, ok := b.At(2, 1)
	if !ok {
		t.Fatal("At(2,1) reported out of range")
	}
	if got != want {
		t.Errorf("At(2,1): got %+v, want %+v", got, want)
	}

	// Layout is row-major RGBA: (2,1) lives at 4*(1*3+2)
	img := b.Image()
	if img.Pix[20] != 10 || img.Pix[21] != 20 || img.Pix[22] != 30 || img.Pix[23] != 40 {
		t.Errorf("unexpected channel layout: %v", img.Pix[20:24])
	}

	b.SetAlpha(2, 1, 0)
	got, _ = b.At(2, 1)
	if !got.Transparent() {
		t.Error("SetAlpha(0) should make the pixel transparent")
	}
	if got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("SetAlpha changed color channels: %+v", got)
	}
}

func TestFromImage(t *testing.T) {
	// Non-zero origin to make sure the buffer is re-anchored at (0,0)
	img := image.NewRGBA(image.Rect(5, 5, 9, 8))
	for y := 5; y < 8; y++ {
		for x := 5; x < 9; x++ {
			img.Set(x, y, color.RGBA{255, 128, 64, 255})
		}
	}
	img.Set(8, 7, color.RGBA{0, 0, 0, 0})

	b := FromImage(img)
	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", b.Width(), b.Height())
	}

	p, _ := b.At(0, 0)
	if p != (Pixel{R: 255, G: 128, B: 64, A: 255}) {
		t.Errorf("At(0,0): got %+v", p)
	}
	p, _ = b.At(3, 2)
	if !p.Transparent() {
		t.Errorf("At(3,2) should be transparent, got %+v", p)
	}
}

func TestFromImage_Nil(t *testing.T) {
	if b := FromImage(nil); !b.Empty() {
		t.Error("FromImage(nil) should return an empty buffer")
	}
}

func TestBuffer_Clone(t *testing.T) {
	b := newUniformBuffer(3, 3, gray)
	c := b.Clone()
	c.SetAlpha(1, 1, 0)

	p, _ := b.At(1, 1)
	if p.Transparent() {
		t.Error("modifying the clone changed the original")
	}
	if c.OpaqueCount() != 8 {
		t.Errorf("clone opaque count: got %d, want 8", c.OpaqueCount())
	}
}

func TestBuffer_Region(t *testing.T) {
	b := NewBuffer(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			b.Set(x, y, Pixel{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}

	t.Run("inside", func(t *testing.T) {
		r := b.Region(1, 2, 2, 2)
		if r.Width() != 2 || r.Height() != 2 {
			t.Fatalf("dimensions: got %dx%d, want 2x2", r.Width(), r.Height())
		}
		p, _ := r.At(0, 0)
		if p.R != 1 || p.G != 2 {
			t.Errorf("Region(0,0): got %+v, want source (1,2)", p)
		}
		p, _ = r.At(1, 1)
		if p.R != 2 || p.G != 3 {
			t.Errorf("Region(1,1): got %+v, want source (2,3)", p)
		}
	})

	t.Run("overlapping edge", func(t *testing.T) {
		r := b.Region(3, 3, 2, 2)
		if r.OpaqueCount() != 1 {
			t.Errorf("only one source pixel overlaps, got %d opaque", r.OpaqueCount())
		}
		p, _ := r.At(1, 1)
		if !p.Transparent() {
			t.Error("pixels outside the source should be transparent")
		}
	})

	t.Run("independent copy", func(t *testing.T) {
		r := b.Region(0, 0, 2, 2)
		r.SetAlpha(0, 0, 0)
		if p, _ := b.At(0, 0); p.Transparent() {
			t.Error("modifying a region changed the source buffer")
		}
	})

	t.Run("empty", func(t *testing.T) {
		if r := b.Region(0, 0, 0, 3); !r.Empty() {
			t.Error("zero-width region should be empty")
		}
	})
}

func TestBuffer_RegionNegativeOffset(t *testing.T) {
	b := newUniformBuffer(3, 3, gray)

	r := b.Region(-2, -1, 4, 3)
	if r.Width() != 4 || r.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", r.Width(), r.Height())
	}
	// Source columns 0..1 land at region columns 2..3, rows 0..1 at rows 1..2.
	if r.OpaqueCount() != 4 {
		t.Errorf("opaque count: got %d, want 4", r.OpaqueCount())
	}
	if p, _ := r.At(2, 1); p != gray {
		t.Errorf("At(2,1): got %+v, want %+v", p, gray)
	}
	if p, _ := r.At(1, 1); !p.Transparent() {
		t.Errorf("At(1,1) lies left of the source and should be transparent, got %+v", p)
	}

	if r := b.Region(-1<<40, 1<<40, 2, 2); r.OpaqueCount() != 0 || r.Width() != 2 {
		t.Errorf("far-away region: got %dx%d with %d opaque, want 2x2 transparent",
			r.Width(), r.Height(), r.OpaqueCount())
	}
}

func TestNewBuffer_Oversized(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"wrapping product", 1 << 31, 1 << 31},
		{"huge width", 1 << 62, 2},
		{"just over the cap", MaxPixels/2 + 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.width, tt.height)
			if !b.Empty() {
				t.Fatalf("NewBuffer(%d,%d): got %dx%d, want empty", tt.width, tt.height, b.Width(), b.Height())
			}
			if _, ok := b.At(5, 5); ok {
				t.Error("At on an empty buffer should report out of range")
			}
			if b.Set(5, 5, gray) {
				t.Error("Set on an empty buffer should report out of range")
			}
		})
	}

	src := newUniformBuffer(2, 2, gray)
	if r := src.Region(0, 0, 1<<31, 1<<31); !r.Empty() {
		t.Errorf("oversized region: got %dx%d, want empty", r.Width(), r.Height())
	}
}
