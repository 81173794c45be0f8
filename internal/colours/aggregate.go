package colours

import (
	"fmt"
	"iter"
	"math"
	"sort"
)

// ColourArea is a bucket's averaged colour and the fraction of the image it
// covers.
type ColourArea struct {
	Bucket string    `json:"bucket"`
	Colour HSBColour `json:"colour"`
	Area   float64   `json:"area"` // Fraction of samples, 0-1
}

// Equal reports whether both areas match within 1e-5 and the colours are Equal.
// The bucket name is not compared.
func (a ColourArea) Equal(o ColourArea) bool {
	return math.Abs(a.Area-o.Area) < equalTolerance && a.Colour.Equal(o.Colour)
}

func (a ColourArea) String() string {
	return fmt.Sprintf("ColourArea [colour=%s, area=%.4f]", a.Colour, a.Area)
}

type bucketSum struct {
	hue, saturation, brightness float64
	count                       int
}

// aggregator accumulates classified samples per bucket.
type aggregator struct {
	order      []string
	sums       map[string]*bucketSum
	total      int
	classified int
}

func newAggregator() *aggregator {
	return &aggregator{sums: make(map[string]*bucketSum)}
}

func (a *aggregator) add(c Classification) {
	a.total++
	if !c.Classified() {
		return
	}
	a.classified++
	sum, ok := a.sums[c.Bucket]
	if !ok {
		sum = &bucketSum{}
		a.sums[c.Bucket] = sum
		a.order = append(a.order, c.Bucket)
	}
	sum.hue += c.Colour.Hue
	sum.saturation += c.Colour.Saturation
	sum.brightness += c.Colour.Brightness
	sum.count++
}

// result averages each bucket and sorts by descending area. Buckets with
// equal areas keep the order in which they were first seen. When normalise
// is set the area denominator excludes unclassified samples.
func (a *aggregator) result(normalise bool) ([]ColourArea, error) {
	if a.total == 0 {
		return nil, ErrEmptySampleSet
	}
	denominator := a.total
	if normalise {
		denominator = a.classified
	}

	areas := make([]ColourArea, 0, len(a.order))
	for _, name := range a.order {
		sum := a.sums[name]
		n := float64(sum.count)
		areas = append(areas, ColourArea{
			Bucket: name,
			Colour: HSBColour{
				// Arithmetic mean, not circular: see package docs.
				Hue:        sum.hue / n,
				Saturation: sum.saturation / n,
				Brightness: sum.brightness / n,
			},
			Area: n / float64(denominator),
		})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Area > areas[j].Area
	})
	return areas, nil
}

// Aggregate averages classified samples into one ColourArea per bucket,
// sorted by descending area.
//
// Unclassified samples belong to no bucket but are counted in the total, so
// the areas sum to less than 1 when any are present.
//
// Returns ErrEmptySampleSet if samples yields nothing.
func Aggregate(samples iter.Seq[Classification]) ([]ColourArea, error) {
	agg := newAggregator()
	for c := range samples {
		agg.add(c)
	}
	return agg.result(false)
}
