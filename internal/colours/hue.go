package colours

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const degreesScale = 360.0

// Range is an inclusive interval of the colour wheel, as fractions in [0, 1].
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether hue lies within [Min, Max].
func (r Range) Contains(hue float64) bool {
	return hue >= r.Min && hue <= r.Max
}

// String formats the interval in degrees, e.g. "330-360°".
func (r Range) String() string {
	return fmt.Sprintf("%.5g-%.5g°", r.Min*degreesScale, r.Max*degreesScale)
}

// HueRange is a named colour bucket covering one or more intervals of the
// colour wheel. Buckets that wrap past 0 (red) use two intervals.
//
// Reference is a representative colour for the bucket. It is informational;
// buckets are keyed by Name.
type HueRange struct {
	Name      string
	Reference colorful.Color
	ranges    []Range
}

// NewHueRange creates a hue range from intervals given as fractions of the
// colour wheel.
//
// Returns ErrInvalidParameter if name is empty, no intervals are given, or an
// interval is outside [0, 1] or has Min > Max.
func NewHueRange(name string, reference colorful.Color, ranges ...Range) (HueRange, error) {
	if name == "" {
		return HueRange{}, fmt.Errorf("%w: hue range name is empty", ErrInvalidParameter)
	}
	if len(ranges) == 0 {
		return HueRange{}, fmt.Errorf("%w: hue range %q has no intervals", ErrInvalidParameter, name)
	}
	for _, r := range ranges {
		if !(r.Min >= 0 && r.Max <= 1 && r.Min <= r.Max) {
			return HueRange{}, fmt.Errorf("%w: hue range %q interval [%v, %v] outside [0, 1]",
				ErrInvalidParameter, name, r.Min, r.Max)
		}
	}
	return HueRange{
		Name:      name,
		Reference: reference,
		ranges:    append([]Range(nil), ranges...),
	}, nil
}

// NewHueRangeDegrees creates a single-interval hue range from degree bounds.
func NewHueRangeDegrees(name string, reference colorful.Color, minDegrees, maxDegrees float64) (HueRange, error) {
	return NewHueRange(name, reference, Range{Min: minDegrees / degreesScale, Max: maxDegrees / degreesScale})
}

// Ranges returns a copy of the intervals covered by the hue range.
func (h HueRange) Ranges() []Range {
	return append([]Range(nil), h.ranges...)
}

// Matches reports whether hue falls within any of the range's intervals.
func (h HueRange) Matches(hue float64) bool {
	for _, r := range h.ranges {
		if r.Contains(hue) {
			return true
		}
	}
	return false
}

func (h HueRange) String() string {
	return fmt.Sprintf("HueRange [name=%s, ranges=%s]", h.Name, h.Bounds())
}

// Bounds formats the intervals in degrees, e.g. "0-30°, 330-360°".
func (h HueRange) Bounds() string {
	parts := make([]string, len(h.ranges))
	for i, r := range h.ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

// degrees builds a preset from degree intervals. Presets are fixed, so a bad
// interval is a programming error.
func degrees(name string, reference colorful.Color, bounds ...[2]float64) HueRange {
	ranges := make([]Range, len(bounds))
	for i, b := range bounds {
		ranges[i] = Range{Min: b[0] / degreesScale, Max: b[1] / degreesScale}
	}
	h, err := NewHueRange(name, reference, ranges...)
	if err != nil {
		panic(err)
	}
	return h
}

func rgb255(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

var (
	baseHues = []HueRange{
		degrees("red", rgb255(255, 0, 0), [2]float64{0, 30}, [2]float64{330, 360}),
		degrees("yellow", rgb255(255, 255, 0), [2]float64{30, 90}),
		degrees("green", rgb255(0, 255, 0), [2]float64{90, 150}),
		degrees("cyan", rgb255(0, 255, 255), [2]float64{150, 210}),
		degrees("blue", rgb255(0, 0, 255), [2]float64{210, 270}),
		degrees("magenta", rgb255(255, 0, 255), [2]float64{270, 330}),
	}

	fineHues = []HueRange{
		degrees("red", rgb255(255, 0, 0), [2]float64{0, 15}, [2]float64{345, 360}),
		degrees("orange", rgb255(255, 200, 0), [2]float64{15, 45}),
		degrees("yellow", rgb255(255, 255, 0), [2]float64{45, 75}),
		degrees("light green", rgb255(128, 255, 0), [2]float64{75, 105}),
		degrees("green", rgb255(0, 255, 0), [2]float64{105, 135}),
		degrees("sea green", rgb255(0, 255, 128), [2]float64{135, 165}),
		degrees("cyan", rgb255(0, 255, 255), [2]float64{165, 195}),
		degrees("light blue", rgb255(0, 128, 255), [2]float64{195, 225}),
		degrees("blue", rgb255(0, 0, 255), [2]float64{225, 255}),
		degrees("purple", rgb255(128, 0, 255), [2]float64{255, 285}),
		degrees("magenta", rgb255(255, 0, 255), [2]float64{285, 315}),
		degrees("pink", rgb255(255, 0, 128), [2]float64{315, 345}),
	}
)

// BaseHues returns the six primary and secondary hue buckets at 60 degree
// intervals: red, yellow, green, cyan, blue, magenta.
func BaseHues() []HueRange {
	return append([]HueRange(nil), baseHues...)
}

// FineHues returns twelve hue buckets at 30 degree intervals, starting at red.
func FineHues() []HueRange {
	return append([]HueRange(nil), fineHues...)
}
