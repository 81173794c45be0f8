// Package colours analyses the colour composition of raster images.
//
// Two operations are provided on top of a deterministic pixel sampler:
//   - AverageColour: the mean colour of the sampled pixels, as HSB
//   - ColourArea: a breakdown of the image into named buckets (black, white,
//     grey and a configurable set of hue ranges), each with its averaged
//     colour and the fraction of the image it covers
//
// # Sampling
//
// Images are consumed through the PixelSource interface. A resolution in
// (0, 1] controls the sampling stride: 1 visits every pixel, smaller values
// skip columns and rows evenly. The walk is x outer, y inner, and the same
// inputs always produce the same samples.
//
// # Classification
//
// Each sample is converted to HSB and assigned to the first bucket that
// matches, in this order:
//  1. white: saturation <= white threshold and brightness >= 1 - white threshold
//  2. grey: hue <= black threshold, saturation <= white threshold and brightness
//     strictly between the black threshold and 1 - white threshold
//  3. black: brightness <= black threshold
//  4. the first hue range containing the hue (bounds inclusive)
//
// Samples matching nothing are unclassified. They still count towards the
// total, so the reported areas sum to less than 1. Use
// Reader.WithNormalisedAreas to exclude them from the total instead.
//
// # Averaging
//
// Bucket colours are the arithmetic mean of their samples' hue, saturation
// and brightness. Hue is not averaged on the circle, so a bucket spanning
// the 0/1 boundary (red) may average to a hue far from either end.
//
// # Thread Safety
//
// Reader is an immutable value. One Reader may be shared by any number of
// goroutines analysing different images.
package colours
