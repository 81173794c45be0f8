package colours

import (
	"fmt"
	"image"
	"iter"
	"math"
)

// RGB is a 24-bit colour packed as 0xRRGGBB.
type RGB uint32

// PackRGB packs 8-bit components into an RGB value.
func PackRGB(r, g, b uint8) RGB {
	return RGB(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Channels unpacks the red, green and blue components.
func (c RGB) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// HSB converts the colour to HSB.
func (c RGB) HSB() HSBColour {
	return FromRGB(c.Channels())
}

// PixelSource is a read-only grid of pixels addressed from (0,0) at the
// top-left to (Width-1, Height-1) at the bottom-right.
type PixelSource interface {
	Width() int
	Height() int
	Pixel(x, y int) RGB
}

// imageSource adapts an image.Image to PixelSource.
type imageSource struct {
	img    image.Image
	bounds image.Rectangle
}

// FromImage returns a PixelSource reading from img. Coordinates are relative
// to img.Bounds().Min and alpha is ignored.
func FromImage(img image.Image) PixelSource {
	return imageSource{img: img, bounds: img.Bounds()}
}

func (s imageSource) Width() int  { return s.bounds.Dx() }
func (s imageSource) Height() int { return s.bounds.Dy() }

func (s imageSource) Pixel(x, y int) RGB {
	r, g, b, _ := s.img.At(s.bounds.Min.X+x, s.bounds.Min.Y+y).RGBA()
	// Convert from 16-bit to 8-bit
	return PackRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ValidateResolution returns ErrInvalidParameter unless resolution is in (0, 1].
func ValidateResolution(resolution float64) error {
	if !(resolution > 0 && resolution <= 1) {
		return fmt.Errorf("%w: resolution %v outside (0, 1]", ErrInvalidParameter, resolution)
	}
	return nil
}

// step returns the sampling stride along an axis of the given length.
func step(length int, resolution float64) int {
	n := int(math.Round(float64(length) * resolution))
	if n < 1 {
		n = 1
	}
	s := length / n
	if s < 1 {
		s = 1
	}
	return s
}

// SampleCount reports how many pixels Sample visits for an image of the
// given dimensions. The resolution is assumed valid.
func SampleCount(width, height int, resolution float64) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	xStep, yStep := step(width, resolution), step(height, resolution)
	return ((width + xStep - 1) / xStep) * ((height + yStep - 1) / yStep)
}

// Sample returns the pixels of src selected by resolution.
//
// The stride along each axis is length / round(length * resolution), never
// less than 1, so resolution 1 visits every pixel exactly once. Columns form
// the outer loop and rows the inner loop. The returned sequence holds no
// cursor state: every range over it starts again from (0,0).
//
// Returns ErrInvalidParameter without reading any pixel if resolution is
// not in (0, 1].
func Sample(src PixelSource, resolution float64) (iter.Seq[RGB], error) {
	if err := ValidateResolution(resolution); err != nil {
		return nil, err
	}
	return func(yield func(RGB) bool) {
		width, height := src.Width(), src.Height()
		if width <= 0 || height <= 0 {
			return
		}
		xStep, yStep := step(width, resolution), step(height, resolution)
		for x := 0; x < width; x += xStep {
			for y := 0; y < height; y += yStep {
				if !yield(src.Pixel(x, y)) {
					return
				}
			}
		}
	}, nil
}
