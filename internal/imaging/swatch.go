package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/colour-tools-mcp/internal/colours"
)

// Default swatch size in pixels.
const (
	DefaultSwatchWidth  = 400
	DefaultSwatchHeight = 40
)

// SwatchResult contains a rendered colour strip
type SwatchResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Bands       int    `json:"bands"`
}

// RenderSwatch draws areas as vertical bands left to right, each as wide as
// its share of the strip. Any unclassified remainder is left transparent at
// the right-hand end.
func RenderSwatch(areas []colours.ColourArea, width, height int) (*SwatchResult, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid swatch size %dx%d", width, height)
	}

	strip := imaging.New(width, height, color.Transparent)
	bands := 0
	var cumulative float64
	for _, a := range areas {
		x0 := int(math.Round(cumulative * float64(width)))
		cumulative += a.Area
		x1 := int(math.Round(cumulative * float64(width)))
		if x1 <= x0 {
			continue
		}
		strip = imaging.Paste(strip, imaging.New(x1-x0, height, a.Colour.Colorful().Clamped()), image.Pt(x0, 0))
		bands++
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, strip); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       width,
		Height:      height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Bands:       bands,
	}, nil
}
