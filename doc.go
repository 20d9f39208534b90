// Package bmpr provides a minimal 2D raster image library for Go.
//
// # Overview
//
// bmpr maintains an in-memory grid of true-color pixels, offers primitive
// drawing operations (lines, circles, rectangles, quadratic curves), simple
// whole-image transforms (flip, rotate, invert), and serializes the grid to
// an uncompressed 24-bit bitmap file.
//
// # Quick Start
//
//	import "github.com/bmpr/bmpr"
//
//	img, err := bmpr.New(512, 512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	img.Clear(bmpr.White)
//	img.DrawCircle(256, 256, 100, bmpr.Red)
//	img.DrawLine(0, 0, 511, 511, bmpr.Blue)
//
//	if err := img.Save("output.bmp"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Drawing primitives clip silently: coordinates outside the canvas are
// ignored rather than reported, so malformed geometry never faults.
//
// # File Format
//
// Save writes an uncompressed 24-bit bottom-up bitmap (BMP) with a fixed
// 54-byte header. There is no decoder; the library is write-only.
//
// # Concurrency
//
// A Canvas is not safe for concurrent use. Every operation is a synchronous
// in-memory transformation; callers that share a Canvas across goroutines
// must provide their own synchronization.
package bmpr

// Version is the current version of the library.
const Version = "1.0.0"
