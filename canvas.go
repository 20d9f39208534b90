package bmpr

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"
)

// ErrInvalidDimension is returned by New when a requested dimension is
// negative.
var ErrInvalidDimension = errors.New("bmpr: invalid canvas dimension")

// Canvas is a fixed-size rectangular grid of true-color pixels. The grid is
// stored row-major; a coordinate (x, y) is in bounds when 0 <= x < Width()
// and 0 <= y < Height(). Dimensions are fixed at construction and every
// drawing and transform operation mutates the canvas in place.
type Canvas struct {
	width  int
	height int
	pix    []Color // row-major, len == width*height
}

// New creates a canvas with the given dimensions, every pixel initialized to
// black. A negative width or height fails with ErrInvalidDimension; a zero
// dimension is accepted and yields an empty canvas.
func New(width, height int) (*Canvas, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}, nil
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Set writes the pixel at (x, y) without a bounds check. The caller must
// guarantee the coordinate is in bounds; a coordinate outside the backing
// storage panics. Use SetSafe when the coordinate may fall outside the
// canvas.
func (c *Canvas) Set(x, y int, col Color) {
	c.pix[y*c.width+x] = col
}

// Get returns the pixel at (x, y) without a bounds check. The same caller
// contract as Set applies.
func (c *Canvas) Get(x, y int) Color {
	return c.pix[y*c.width+x]
}

// SetSafe writes the pixel at (x, y), silently ignoring coordinates outside
// the canvas. Every drawing primitive routes its output through SetSafe, so
// geometry that extends past the edges is clipped rather than faulting.
func (c *Canvas) SetSafe(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = col
}

// Clear sets every pixel to col.
func (c *Canvas) Clear(col Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// Invert replaces every pixel with its channel-wise inverse (255 - value).
// Invert is self-inverse: applying it twice restores the original canvas.
func (c *Canvas) Invert() {
	for i := range c.pix {
		c.pix[i] = c.pix[i].Invert()
	}
}

// Rotate180 rotates the image 180 degrees about its center. Because the
// storage is row-major this is a reversal of the backing sequence.
func (c *Canvas) Rotate180() {
	slices.Reverse(c.pix)
}

// FlipHorizontal mirrors the image across its vertical midline. For an odd
// width the middle column is untouched.
func (c *Canvas) FlipHorizontal() {
	for y := 0; y < c.height; y++ {
		row := c.pix[y*c.width : (y+1)*c.width]
		for x := 0; x < c.width/2; x++ {
			row[x], row[c.width-1-x] = row[c.width-1-x], row[x]
		}
	}
}

// FlipVertical mirrors the image across its horizontal midline. For an odd
// height the middle row is untouched.
func (c *Canvas) FlipVertical() {
	for y := 0; y < c.height/2; y++ {
		top := c.pix[y*c.width : (y+1)*c.width]
		bottom := c.pix[(c.height-1-y)*c.width : (c.height-y)*c.width]
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
}

// ToImage converts the canvas to an image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			px := c.pix[y*c.width+x]
			i := img.PixOffset(x, y)
			img.Pix[i+0] = px.R
			img.Pix[i+1] = px.G
			img.Pix[i+2] = px.B
			img.Pix[i+3] = 255
		}
	}
	return img
}

// At implements the image.Image interface. Out-of-bounds coordinates
// return black.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Black.Color()
	}
	return c.pix[y*c.width+x].Color()
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
