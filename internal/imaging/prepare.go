package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/pointillism-mcp/internal/pointillism"
)

// Limits on caller-supplied sizes. A prepared buffer never holds more than
// pointillism.MaxPixels pixels.
const (
	// MaxDimension bounds resize targets and region sides.
	MaxDimension = 1 << 15

	// MaxSmooth bounds the Gaussian blur radius.
	MaxSmooth = 100
)

// Region selects a sub-rectangle of the prepared image by its top-left
// corner and size. Parts that fall outside the image become transparent.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ExcludeSpec names a color to remove before sampling.
type ExcludeSpec struct {
	Color     pointillism.Pixel
	Tolerance float64
}

// PrepareOptions controls how a decoded image becomes a sampling buffer.
// The zero value copies the image unchanged.
type PrepareOptions struct {
	// Width and Height resize the image before sampling. When only one is
	// set the other follows the aspect ratio. Both 0 keeps the native size.
	Width  int
	Height int

	// Smooth is the Gaussian blur radius applied after resizing. Flattening
	// noise lets more rings pass the uniformity test. 0 disables it.
	Smooth float64

	// Region restricts the buffer to a sub-rectangle of the resized image.
	Region *Region

	// Exclude lists colors made transparent before sampling.
	Exclude []ExcludeSpec
}

// PrepareResult is a freshly built buffer plus how many pixels the exclude
// pre-pass removed.
type PrepareResult struct {
	Buffer   *pointillism.Buffer
	Excluded int
}

// Prepare turns a decoded image into a new pointillism.Buffer.
//
// Steps run in a fixed order: resize, smooth, copy into the buffer, select
// the region. The source image is never modified.
func Prepare(img image.Image, opts PrepareOptions) (*pointillism.Buffer, error) {
	res, err := PrepareWithExclusions(img, opts)
	if err != nil {
		return nil, err
	}
	return res.Buffer, nil
}

// PrepareWithExclusions runs Prepare and then the exclude-color pre-pass for
// every entry of opts.Exclude.
func PrepareWithExclusions(img image.Image, opts PrepareOptions) (*PrepareResult, error) {
	if img == nil {
		return nil, fmt.Errorf("no image to prepare")
	}
	if opts.Width < 0 || opts.Height < 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", opts.Width, opts.Height)
	}
	if opts.Smooth < 0 || opts.Smooth > MaxSmooth {
		return nil, fmt.Errorf("invalid smooth radius %g (max %d)", opts.Smooth, MaxSmooth)
	}
	if r := opts.Region; r != nil {
		if err := checkSize("region", r.Width, r.Height); err != nil {
			return nil, err
		}
		if outOfRange(r.X) || outOfRange(r.Y) {
			return nil, fmt.Errorf("region offset (%d,%d) out of range", r.X, r.Y)
		}
	}

	src := img
	if opts.Width > 0 || opts.Height > 0 {
		w, h := resizedSize(src.Bounds(), opts.Width, opts.Height)
		if err := checkSize("target", w, h); err != nil {
			return nil, err
		}
		src = imaging.Resize(src, opts.Width, opts.Height, imaging.Lanczos)
	}
	if opts.Smooth > 0 {
		src = blur.Gaussian(src, opts.Smooth)
	}

	var buf *pointillism.Buffer
	if r := opts.Region; r != nil {
		buf = cropRegion(src, r)
	} else {
		buf = pointillism.FromImage(src)
	}

	excluded := 0
	for _, ex := range opts.Exclude {
		excluded += pointillism.ExcludeColor(buf, ex.Color, ex.Tolerance)
	}

	return &PrepareResult{Buffer: buf, Excluded: excluded}, nil
}

// cropRegion copies only the part of img that r overlaps, then pads it with
// transparent pixels out to the full region size.
func cropRegion(img image.Image, r *Region) *pointillism.Buffer {
	bounds := img.Bounds()
	want := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height).Add(bounds.Min)
	clip := want.Intersect(bounds)
	if clip.Empty() {
		return pointillism.NewBuffer(r.Width, r.Height)
	}
	cropped := pointillism.FromImage(imaging.Crop(img, clip))
	return cropped.Region(want.Min.X-clip.Min.X, want.Min.Y-clip.Min.Y, r.Width, r.Height)
}

// resizedSize mirrors how imaging.Resize fills in a 0 dimension from the
// source aspect ratio.
func resizedSize(src image.Rectangle, width, height int) (int, int) {
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 {
		return 0, 0
	}
	if width == 0 {
		width = max(int(float64(sw)*float64(height)/float64(sh)+0.5), 1)
	}
	if height == 0 {
		height = max(int(float64(sh)*float64(width)/float64(sw)+0.5), 1)
	}
	return width, height
}

func checkSize(what string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid %s size %dx%d", what, width, height)
	}
	if width > MaxDimension || height > MaxDimension || width*height > pointillism.MaxPixels {
		return fmt.Errorf("%s size %dx%d too large (max %d per side, %d pixels)",
			what, width, height, MaxDimension, pointillism.MaxPixels)
	}
	return nil
}

func outOfRange(offset int) bool {
	return offset < -MaxDimension || offset > MaxDimension
}
