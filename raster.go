// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import "github.com/mnit-rtmc/iris-sub000/multi"

// Raster is a rectangular grid of 24-bit pixels, one page of a sign
// message before face rendering.
type Raster struct {
	width  int
	height int
	pix    []multi.RGB
}

// NewRaster creates a raster filled with one color.
func NewRaster(width, height int, clr multi.RGB) *Raster {
	pix := make([]multi.RGB, width*height)
	for i := range pix {
		pix[i] = clr
	}
	return &Raster{width: width, height: height, pix: pix}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.height
}

// Pixel returns the color at 0-based coordinates.
func (r *Raster) Pixel(x, y int) multi.RGB {
	return r.pix[y*r.width+x]
}

// SetPixel sets the color at 0-based coordinates. Out-of-bounds
// coordinates are ignored.
func (r *Raster) SetPixel(x, y int, clr multi.RGB) {
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.pix[y*r.width+x] = clr
	}
}

// IndexedRaster is a grid of palette indices, the result of face
// rendering.
type IndexedRaster struct {
	width  int
	height int
	pix    []uint8
}

// NewIndexedRaster creates an indexed raster cleared to entry 0.
func NewIndexedRaster(width, height int) *IndexedRaster {
	return &IndexedRaster{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// Width returns the raster width in pixels.
func (r *IndexedRaster) Width() int {
	return r.width
}

// Height returns the raster height in pixels.
func (r *IndexedRaster) Height() int {
	return r.height
}

// Pixel returns the palette index at 0-based coordinates.
func (r *IndexedRaster) Pixel(x, y int) uint8 {
	return r.pix[y*r.width+x]
}

// SetPixel sets the palette index at 0-based coordinates.
func (r *IndexedRaster) SetPixel(x, y int, i uint8) {
	r.pix[y*r.width+x] = i
}

// Pix returns the underlying index buffer in row-major order.
func (r *IndexedRaster) Pix() []uint8 {
	return r.pix
}
