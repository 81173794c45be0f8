package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Pattern names accepted by GeneratePattern.
const (
	PatternSolid    = "solid"
	PatternHalf     = "half"
	PatternQuarters = "quarters"
)

// patternColours is the number of colours each pattern needs.
var patternColours = map[string]int{
	PatternSolid:    1,
	PatternHalf:     2,
	PatternQuarters: 4,
}

// SolidImage returns a width x height image filled with c.
func SolidImage(width, height int, c color.Color) *image.NRGBA {
	return imaging.New(width, height, c)
}

// HalfHalfImage fills the left half (width/2 columns) with left and the rest
// with right.
func HalfHalfImage(width, height int, left, right color.Color) *image.NRGBA {
	img := imaging.New(width, height, right)
	return imaging.Paste(img, imaging.New(width/2, height, left), image.Pt(0, 0))
}

// QuartersImage fills the four quadrants, split at width/2 and height/2, in
// the order top-left, top-right, bottom-left, bottom-right.
func QuartersImage(width, height int, topLeft, topRight, bottomLeft, bottomRight color.Color) *image.NRGBA {
	midX, midY := width/2, height/2
	img := imaging.New(width, height, bottomRight)
	img = imaging.Paste(img, imaging.New(midX, midY, topLeft), image.Pt(0, 0))
	img = imaging.Paste(img, imaging.New(width-midX, midY, topRight), image.Pt(midX, 0))
	img = imaging.Paste(img, imaging.New(midX, height-midY, bottomLeft), image.Pt(0, midY))
	return img
}

// GeneratePattern builds a test image from hex colours ("#rrggbb").
//
// Parameters:
//   - pattern: PatternSolid (1 colour), PatternHalf (2) or PatternQuarters (4).
//   - width, height: Image size in pixels, both positive.
//   - hexColours: Exactly as many colours as the pattern needs.
func GeneratePattern(pattern string, width, height int, hexColours []string) (*image.NRGBA, error) {
	want, ok := patternColours[pattern]
	if !ok {
		return nil, fmt.Errorf("unknown pattern: %s", pattern)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid pattern size %dx%d", width, height)
	}
	if len(hexColours) != want {
		return nil, fmt.Errorf("pattern %s needs %d colours, got %d", pattern, want, len(hexColours))
	}

	cs := make([]color.Color, len(hexColours))
	for i, h := range hexColours {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("invalid colour %q: %w", h, err)
		}
		r, g, b := c.RGB255()
		cs[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}

	switch pattern {
	case PatternSolid:
		return SolidImage(width, height, cs[0]), nil
	case PatternHalf:
		return HalfHalfImage(width, height, cs[0], cs[1]), nil
	default:
		return QuartersImage(width, height, cs[0], cs[1], cs[2], cs[3]), nil
	}
}

// SavePattern generates a pattern image and writes it to path as PNG.
//
// Any cached copy of path is evicted so later analysis sees the new file.
func SavePattern(cache *ImageCache, path, pattern string, width, height int, hexColours []string) (*DimensionsResult, error) {
	img, err := GeneratePattern(pattern, width, height, hexColours)
	if err != nil {
		return nil, err
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return nil, fmt.Errorf("failed to save pattern: %w", err)
	}
	cache.Evict(path)

	return &DimensionsResult{Width: width, Height: height}, nil
}
