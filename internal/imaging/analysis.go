package imaging

import (
	"fmt"

	"github.com/ironsheep/colour-tools-mcp/internal/colours"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// ColorResult contains one colour in several representations.
//
//   - Hex: "#rrggbb" for CSS/web usage
//   - RGB: 8-bit components
//   - HSB: fractions as produced by the colours package
//   - HueDegrees: the hue on the 0-360 colour wheel
type ColorResult struct {
	Hex        string            `json:"hex"`
	RGB        RGBColor          `json:"rgb"`
	HSB        colours.HSBColour `json:"hsb"`
	HueDegrees float64           `json:"hue_degrees"`
}

func newColorResult(c colours.HSBColour) ColorResult {
	r, g, b := c.Colorful().Clamped().RGB255()
	return ColorResult{
		Hex:        c.Hex(),
		RGB:        RGBColor{R: r, G: g, B: b},
		HSB:        c,
		HueDegrees: c.Degrees(),
	}
}

// AverageColourResult is the mean colour of an image.
type AverageColourResult struct {
	Color      ColorResult `json:"color"`
	Resolution float64     `json:"resolution"`
	Samples    int         `json:"samples"` // Number of pixels averaged
}

// AverageColour computes the mean colour of the image at path.
//
// Parameters:
//   - cache: The image cache to use for loading. Must not be nil.
//   - path: Path to the image file.
//   - reader: Analysis settings. Only the resolution is used.
//
// Returns an error wrapping colours.ErrInvalidParameter or
// colours.ErrEmptySampleSet, or a load error.
func AverageColour(cache *ImageCache, path string, reader colours.Reader) (*AverageColourResult, error) {
	src, err := cache.Source(path)
	if err != nil {
		return nil, err
	}
	c, err := reader.AverageColour(src)
	if err != nil {
		return nil, fmt.Errorf("failed to analyse image: %w", err)
	}
	return &AverageColourResult{
		Color:      newColorResult(c),
		Resolution: reader.Resolution(),
		Samples:    colours.SampleCount(src.Width(), src.Height(), reader.Resolution()),
	}, nil
}

// BucketArea is one colour bucket of an image.
type BucketArea struct {
	Bucket     string      `json:"bucket"`
	Color      ColorResult `json:"color"`      // Averaged colour of the bucket
	Area       float64     `json:"area"`       // Fraction of samples (0-1)
	Percentage float64     `json:"percentage"` // Area as 0-100
}

// ColourAreaResult contains the colour buckets of an image.
//
// Buckets are sorted by area in descending order (largest first).
type ColourAreaResult struct {
	Buckets      []BucketArea `json:"buckets"`
	TotalArea    float64      `json:"total_area"`   // Below 1 when samples were unclassified
	Resolution   float64      `json:"resolution"`
	Samples      int          `json:"samples"`
	Unclassified float64      `json:"unclassified"` // Fraction of samples in no bucket; 0 when Normalised
	Normalised   bool         `json:"normalised"`
}

// ColourArea breaks the image at path into colour buckets.
//
// The raw colours.ColourArea values are returned alongside the JSON result so
// callers such as RenderSwatch can reuse them.
func ColourArea(cache *ImageCache, path string, reader colours.Reader) (*ColourAreaResult, []colours.ColourArea, error) {
	src, err := cache.Source(path)
	if err != nil {
		return nil, nil, err
	}
	areas, err := reader.ColourArea(src)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to analyse image: %w", err)
	}

	result := &ColourAreaResult{
		Buckets:    make([]BucketArea, 0, len(areas)),
		Resolution: reader.Resolution(),
		Samples:    colours.SampleCount(src.Width(), src.Height(), reader.Resolution()),
		Normalised: reader.NormalisedAreas(),
	}
	for _, a := range areas {
		result.Buckets = append(result.Buckets, BucketArea{
			Bucket:     a.Bucket,
			Color:      newColorResult(a.Colour),
			Area:       a.Area,
			Percentage: a.Area * 100,
		})
		result.TotalArea += a.Area
	}
	if !result.Normalised {
		result.Unclassified = 1 - result.TotalArea
		// Float noise when everything was classified
		if result.Unclassified < 1e-9 {
			result.Unclassified = 0
		}
	}
	return result, areas, nil
}
