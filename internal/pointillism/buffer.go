package pointillism

import (
	"image"

	"github.com/disintegration/imaging"
)

// Pixel is a single non-premultiplied RGBA8 value.
//
// An alpha of 0 marks the pixel as absent or already consumed. Such pixels
// are never emitted and never match any color.
type Pixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Transparent reports whether the pixel has been consumed or was never set.
func (p Pixel) Transparent() bool {
	return p.A == 0
}

// Buffer owns a width x height block of RGBA8 pixels stored row-major,
// four bytes per pixel in R,G,B,A order.
//
// Every coordinate access is bounds checked; reads and writes outside
// 0 <= x < width, 0 <= y < height report false instead of wrapping.
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

// MaxPixels is the largest pixel count a Buffer may hold.
const MaxPixels = 1 << 26

// NewBuffer creates a buffer of fully transparent pixels.
//
// Negative dimensions are treated as 0, yielding an empty buffer. A size
// whose pixel count exceeds MaxPixels also yields an empty buffer.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width > 0 && height > MaxPixels/width {
		width, height = 0, 0
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// FromImage copies a decoded image into a new buffer.
//
// The image is converted to non-premultiplied RGBA through imaging.Clone, so
// any color model is accepted. The buffer's origin is the image's Min point.
func FromImage(img image.Image) *Buffer {
	if img == nil {
		return NewBuffer(0, 0)
	}
	nrgba := imaging.Clone(img)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	b := NewBuffer(w, h)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		copy(b.pix[b.index(0, y):], row)
	}
	return b
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Empty reports whether the buffer has no pixels.
func (b *Buffer) Empty() bool {
	return b.width == 0 || b.height == 0
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// index is the only place a channel offset is computed.
func (b *Buffer) index(x, y int) int {
	return 4 * (y*b.width + x)
}

// At returns the pixel at (x, y). The second result is false when the
// coordinate lies outside the buffer.
func (b *Buffer) At(x, y int) (Pixel, bool) {
	if !b.InBounds(x, y) {
		return Pixel{}, false
	}
	i := b.index(x, y)
	return Pixel{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}, true
}

// Set writes all four channels at (x, y). It reports false and does nothing
// when the coordinate is out of range.
func (b *Buffer) Set(x, y int, p Pixel) bool {
	if !b.InBounds(x, y) {
		return false
	}
	i := b.index(x, y)
	b.pix[i] = p.R
	b.pix[i+1] = p.G
	b.pix[i+2] = p.B
	b.pix[i+3] = p.A
	return true
}

// SetAlpha writes only the alpha channel at (x, y). It reports false and does
// nothing when the coordinate is out of range.
func (b *Buffer) SetAlpha(x, y int, a uint8) bool {
	if !b.InBounds(x, y) {
		return false
	}
	b.pix[b.index(x, y)+3] = a
	return true
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{width: b.width, height: b.height, pix: make([]uint8, len(b.pix))}
	copy(c.pix, b.pix)
	return c
}

// Region returns a copy of the width x height rectangle whose top-left corner
// is (x, y). Parts of the rectangle outside the buffer come back transparent,
// so the result always has the requested size (or is empty when a dimension
// is not positive or the area exceeds MaxPixels).
func (b *Buffer) Region(x, y, width, height int) *Buffer {
	r := NewBuffer(width, height)
	x0, x1 := clipSpan(x, r.width, b.width)
	y0, y1 := clipSpan(y, r.height, b.height)
	if x0 >= x1 {
		return r
	}
	for sy := y0; sy < y1; sy++ {
		copy(r.pix[r.index(x0-x, sy-y):], b.pix[b.index(x0, sy):b.index(x1, sy)])
	}
	return r
}

// clipSpan returns the part of [start, start+n) that lies inside [0, limit).
// lo >= hi means the spans do not overlap.
func clipSpan(start, n, limit int) (lo, hi int) {
	if n <= 0 || start >= limit {
		return 0, 0
	}
	lo = max(start, 0)
	hi = limit
	if start < limit-n {
		hi = start + n
	}
	if hi < lo {
		return 0, 0
	}
	return lo, hi
}

// OpaqueCount returns the number of pixels whose alpha is not 0.
func (b *Buffer) OpaqueCount() int {
	n := 0
	for i := 3; i < len(b.pix); i += 4 {
		if b.pix[i] != 0 {
			n++
		}
	}
	return n
}

// Image returns a copy of the buffer as an *image.NRGBA anchored at (0,0).
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}
