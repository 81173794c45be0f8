// Package imaging loads images from disk and adapts them for colour analysis.
//
// This package sits between files and the colours package: it decodes and
// caches images, runs colours.Reader analyses against them and shapes the
// results for JSON output. It also generates solid, half and quarter test
// patterns and renders colour-area results as swatch strips.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Analysis functions are
// stateless and take an immutable colours.Reader, so they can be called
// concurrently on different images.
//
// # Color Representation
//
// Colors are returned in multiple formats:
//   - Hex: 6-character format "#rrggbb" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - HSB: Hue, Saturation, Brightness as fractions (0-1)
//   - HueDegrees: Hue on the 0-360 colour wheel
//
// # Error Handling
//
// Functions return errors for:
//   - File I/O and decoding errors during image loading
//   - Invalid analysis settings (wrapping colours.ErrInvalidParameter)
//   - Images with no pixels (wrapping colours.ErrEmptySampleSet)
//   - Unknown patterns, bad sizes or malformed hex colours
package imaging
