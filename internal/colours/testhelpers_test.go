package colours

import (
	"image"
	"image/color"
	"math"
	"testing"
)

var (
	red     = color.RGBA{255, 0, 0, 255}
	green   = color.RGBA{0, 255, 0, 255}
	blue    = color.RGBA{0, 0, 255, 255}
	white   = color.RGBA{255, 255, 255, 255}
	black   = color.RGBA{0, 0, 0, 255}
	yellow  = color.RGBA{255, 255, 0, 255}
	magenta = color.RGBA{255, 0, 255, 255}
)

// solidImage creates an in-memory image filled with one colour
func solidImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// halfHalfImage fills the left half with c1 and the right half with c2
func halfHalfImage(width, height int, c1, c2 color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 {
				img.Set(x, y, c1)
			} else {
				img.Set(x, y, c2)
			}
		}
	}
	return img
}

// quartersImage fills each quadrant with a colour: top-left, top-right,
// bottom-left, bottom-right
func quartersImage(width, height int, c1, c2, c3, c4 color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			switch {
			case x < width/2 && y < height/2:
				c = c1
			case x >= width/2 && y < height/2:
				c = c2
			case x < width/2:
				c = c3
			default:
				c = c4
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// countingSource records how many pixels were read
type countingSource struct {
	PixelSource
	reads int
}

func (s *countingSource) Pixel(x, y int) RGB {
	s.reads++
	return s.PixelSource.Pixel(x, y)
}

// gridSource is a PixelSource whose pixel value encodes its coordinates
type gridSource struct {
	w, h int
}

func (g gridSource) Width() int         { return g.w }
func (g gridSource) Height() int        { return g.h }
func (g gridSource) Pixel(x, y int) RGB { return RGB(x<<12 | y) }

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %f, want %f (±%g)", name, got, want, tol)
	}
}

func sumAreas(areas []ColourArea) float64 {
	var total float64
	for _, a := range areas {
		total += a.Area
	}
	return total
}

func mustHueRange(t *testing.T, name string, minDegrees, maxDegrees float64) HueRange {
	t.Helper()
	h, err := NewHueRangeDegrees(name, rgb255(255, 255, 255), minDegrees, maxDegrees)
	if err != nil {
		t.Fatalf("NewHueRangeDegrees(%q) failed: %v", name, err)
	}
	return h
}
