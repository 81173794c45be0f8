package colours

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// equalTolerance is the per-component tolerance used by Equal.
const equalTolerance = 1e-5

// HSBColour is a colour in cylindrical Hue-Saturation-Brightness space.
//
// Hue is a fraction of the colour wheel in [0, 1), where 0 is red, 1/3 green
// and 2/3 blue. Saturation and Brightness are in [0, 1].
type HSBColour struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
}

// FromRGB converts 8-bit RGB components to HSB.
//
// Achromatic colours (r == g == b) have hue 0.
func FromRGB(r, g, b uint8) HSBColour {
	c := colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
	h, s, v := c.Hsv()
	return HSBColour{Hue: normaliseHue(h / 360.0), Saturation: s, Brightness: v}
}

// normaliseHue folds a hue fraction into [0, 1).
func normaliseHue(h float64) float64 {
	h = math.Mod(h, 1.0)
	if h < 0 {
		h += 1.0
	}
	if h >= 1.0 {
		h = 0
	}
	return h
}

// Degrees returns the hue in degrees, [0, 360).
func (c HSBColour) Degrees() float64 {
	return c.Hue * 360.0
}

// Colorful converts the colour back to RGB.
func (c HSBColour) Colorful() colorful.Color {
	return colorful.Hsv(c.Degrees(), c.Saturation, c.Brightness)
}

// Hex returns the colour as "#rrggbb".
func (c HSBColour) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// Equal reports whether two colours match within 1e-5 on every component.
func (c HSBColour) Equal(o HSBColour) bool {
	return math.Abs(c.Hue-o.Hue) < equalTolerance &&
		math.Abs(c.Saturation-o.Saturation) < equalTolerance &&
		math.Abs(c.Brightness-o.Brightness) < equalTolerance
}

func (c HSBColour) String() string {
	return fmt.Sprintf("HSBColour [hue=%f, saturation=%f, brightness=%f]", c.Hue, c.Saturation, c.Brightness)
}
