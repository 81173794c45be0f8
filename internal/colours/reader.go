package colours

import (
	"fmt"
	"iter"
)

// Default reader settings.
const (
	DefaultResolution     = 1.0
	DefaultBlackThreshold = 0.1
	DefaultWhiteThreshold = 0.1
)

// Reader holds the settings used to analyse images.
//
// A Reader is an immutable value: the With methods return a modified copy and
// never change the receiver, so one Reader can be reused across images and
// goroutines. The zero value is not valid; use NewReader or DefaultReader.
type Reader struct {
	hues           []HueRange
	resolution     float64
	blackThreshold float64
	whiteThreshold float64
	normalise      bool
}

// Option configures a Reader built by NewReader.
type Option func(*Reader)

// WithResolutionOption sets the sampling resolution.
func WithResolutionOption(resolution float64) Option {
	return func(r *Reader) { r.resolution = resolution }
}

// WithThresholdsOption sets the black and white thresholds.
func WithThresholdsOption(black, white float64) Option {
	return func(r *Reader) {
		r.blackThreshold = black
		r.whiteThreshold = white
	}
}

// WithHuesOption sets the hue buckets.
func WithHuesOption(hues []HueRange) Option {
	return func(r *Reader) { r.hues = append([]HueRange(nil), hues...) }
}

// WithNormalisedAreasOption excludes unclassified samples from area totals.
func WithNormalisedAreasOption(normalise bool) Option {
	return func(r *Reader) { r.normalise = normalise }
}

// DefaultReader returns a Reader using BaseHues, full resolution and the
// default thresholds.
func DefaultReader() Reader {
	return Reader{
		hues:           BaseHues(),
		resolution:     DefaultResolution,
		blackThreshold: DefaultBlackThreshold,
		whiteThreshold: DefaultWhiteThreshold,
	}
}

// NewReader returns the default Reader with opts applied.
//
// Returns ErrInvalidParameter if the resulting settings are out of range.
func NewReader(opts ...Option) (Reader, error) {
	r := DefaultReader()
	for _, opt := range opts {
		opt(&r)
	}
	if err := r.validate(); err != nil {
		return Reader{}, err
	}
	return r, nil
}

func validateThreshold(name string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return fmt.Errorf("%w: %s threshold %v outside [0, 1]", ErrInvalidParameter, name, v)
	}
	return nil
}

func validateHues(hues []HueRange) error {
	if len(hues) == 0 {
		return fmt.Errorf("%w: hue set is empty", ErrInvalidParameter)
	}
	// Buckets are keyed by name, so names must be unique and distinct from
	// the achromatic buckets.
	seen := make(map[string]bool, len(hues))
	for i, h := range hues {
		if h.Name == "" || len(h.ranges) == 0 {
			return fmt.Errorf("%w: hue %d is not a valid hue range", ErrInvalidParameter, i)
		}
		switch h.Name {
		case BucketWhite, BucketGrey, BucketBlack:
			return fmt.Errorf("%w: hue name %q is reserved", ErrInvalidParameter, h.Name)
		}
		if seen[h.Name] {
			return fmt.Errorf("%w: duplicate hue name %q", ErrInvalidParameter, h.Name)
		}
		seen[h.Name] = true
	}
	return nil
}

func (r Reader) validate() error {
	if err := ValidateResolution(r.resolution); err != nil {
		return err
	}
	if err := validateThreshold("black", r.blackThreshold); err != nil {
		return err
	}
	if err := validateThreshold("white", r.whiteThreshold); err != nil {
		return err
	}
	return validateHues(r.hues)
}

// with applies opt to a copy of r, returning r unchanged if the result is invalid.
func (r Reader) with(opt Option) (Reader, error) {
	next := r
	next.hues = append([]HueRange(nil), r.hues...)
	opt(&next)
	if err := next.validate(); err != nil {
		return r, err
	}
	return next, nil
}

// WithResolution returns a copy of r sampling at resolution.
func (r Reader) WithResolution(resolution float64) (Reader, error) {
	return r.with(WithResolutionOption(resolution))
}

// WithBlackThreshold returns a copy of r with a new black threshold.
func (r Reader) WithBlackThreshold(threshold float64) (Reader, error) {
	return r.with(func(n *Reader) { n.blackThreshold = threshold })
}

// WithWhiteThreshold returns a copy of r with a new white threshold.
func (r Reader) WithWhiteThreshold(threshold float64) (Reader, error) {
	return r.with(func(n *Reader) { n.whiteThreshold = threshold })
}

// WithHues returns a copy of r classifying against hues, tried in order.
// Names must be unique and must not be one of the achromatic bucket names.
func (r Reader) WithHues(hues []HueRange) (Reader, error) {
	return r.with(WithHuesOption(hues))
}

// WithNormalisedAreas returns a copy of r that, when normalise is true,
// reports areas as fractions of classified samples only.
func (r Reader) WithNormalisedAreas(normalise bool) (Reader, error) {
	return r.with(WithNormalisedAreasOption(normalise))
}

// Hues returns a copy of the configured hue buckets.
func (r Reader) Hues() []HueRange { return append([]HueRange(nil), r.hues...) }

// Resolution returns the sampling resolution.
func (r Reader) Resolution() float64 { return r.resolution }

// BlackThreshold returns the brightness at or below which samples are black.
func (r Reader) BlackThreshold() float64 { return r.blackThreshold }

// WhiteThreshold returns the saturation cut-off for white and grey.
func (r Reader) WhiteThreshold() float64 { return r.whiteThreshold }

// NormalisedAreas reports whether unclassified samples are excluded from areas.
func (r Reader) NormalisedAreas() bool { return r.normalise }

func (r Reader) String() string {
	return fmt.Sprintf("Reader [hues=%d, resolution=%.3f, black=%.3f, white=%.3f, normalise=%t]",
		len(r.hues), r.resolution, r.blackThreshold, r.whiteThreshold, r.normalise)
}

// AverageColour returns the mean colour of the pixels sampled from src.
//
// Channels are averaged as 0-255 integers with truncating division, then the
// averaged RGB is converted to HSB. Returns ErrInvalidParameter for an
// invalid reader and ErrEmptySampleSet for an image with no pixels.
func (r Reader) AverageColour(src PixelSource) (HSBColour, error) {
	if err := r.validate(); err != nil {
		return HSBColour{}, err
	}
	samples, err := Sample(src, r.resolution)
	if err != nil {
		return HSBColour{}, err
	}

	var totalR, totalG, totalB uint64
	var n uint64
	for rgb := range samples {
		cr, cg, cb := rgb.Channels()
		totalR += uint64(cr)
		totalG += uint64(cg)
		totalB += uint64(cb)
		n++
	}
	if n == 0 {
		return HSBColour{}, ErrEmptySampleSet
	}
	return FromRGB(uint8(totalR/n), uint8(totalG/n), uint8(totalB/n)), nil
}

// classified yields the classification of each sample.
func (r Reader) classified(samples iter.Seq[RGB]) iter.Seq[Classification] {
	return func(yield func(Classification) bool) {
		for rgb := range samples {
			if !yield(Classify(rgb, r.hues, r.blackThreshold, r.whiteThreshold)) {
				return
			}
		}
	}
}

// ColourArea breaks the pixels sampled from src into colour buckets, sorted
// by descending area.
//
// Returns ErrInvalidParameter for an invalid reader and ErrEmptySampleSet for
// an image with no pixels.
func (r Reader) ColourArea(src PixelSource) ([]ColourArea, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	samples, err := Sample(src, r.resolution)
	if err != nil {
		return nil, err
	}
	agg := newAggregator()
	for c := range r.classified(samples) {
		agg.add(c)
	}
	return agg.result(r.normalise)
}

// AverageColour returns the mean colour of src sampled at resolution, using
// the default reader otherwise.
func AverageColour(src PixelSource, resolution float64) (HSBColour, error) {
	r, err := DefaultReader().WithResolution(resolution)
	if err != nil {
		return HSBColour{}, err
	}
	return r.AverageColour(src)
}

// ColourAreas breaks src into colour buckets using DefaultReader.
func ColourAreas(src PixelSource) ([]ColourArea, error) {
	return DefaultReader().ColourArea(src)
}
