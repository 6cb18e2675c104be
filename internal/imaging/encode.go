package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pointillism-mcp/internal/pointillism"
)

// EncodedImage is a buffer rendered as base64 PNG.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodeBuffer encodes the current state of a buffer, including any
// transparent holes left by consumption, as a base64 PNG.
func EncodeBuffer(b *pointillism.Buffer) (*EncodedImage, error) {
	if b.Empty() {
		return nil, fmt.Errorf("cannot encode empty %dx%d buffer", b.Width(), b.Height())
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, b.Image(), imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode buffer: %w", err)
	}

	return &EncodedImage{
		Width:       b.Width(),
		Height:      b.Height(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
