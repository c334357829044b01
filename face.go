// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/mnit-rtmc/iris-sub000/multi"
)

// Color used for unlit pixels on the rendered sign face.
var darkPixel = multi.RGB{R: 20, G: 20, B: 0}

// RenderFace post-processes a page raster into a simulated sign face:
// each source pixel becomes a radially attenuated circle on a dark
// background, positioned by the sign's physical geometry. The palette
// accumulates the blended colors and is shared by all frames of one
// rendering.
func (c *SignConfig) RenderFace(page *Raster, palette *Palette,
	w, h int) *IndexedRaster {
	face := NewIndexedRaster(w, h)
	pw := page.Width()
	ph := page.Height()
	s := min(float32(w)/float32(pw), float32(h)/float32(ph))
	for y := 0; y < ph; y++ {
		py := c.pixelY(y) * float32(h)
		for x := 0; x < pw; x++ {
			px := c.pixelX(x) * float32(w)
			rgb := page.Pixel(x, y)
			sr := max(rgb.R, rgb.G, rgb.B)
			// Clamp radius between 0.6 and 0.8 (blooming)
			r := s * min(max(float32(sr)/255, 0.6), 0.8)
			clr := rgb
			if sr <= 20 {
				clr = darkPixel
			}
			renderCircle(face, palette, px, py, r, clr)
		}
	}
	return face
}

// Render an attenuated circle.
//
//   - face: indexed raster.
//   - palette: global color palette.
//   - cx, cy: center of circle.
//   - r: radius of circle.
//   - clr: color of circle.
func renderCircle(face *IndexedRaster, palette *Palette, cx, cy, r float32,
	clr multi.RGB) {
	x0 := int(max(floorf(cx-r), 0))
	x1 := int(min(ceilf(cx+r), float32(face.Width())))
	y0 := int(max(floorf(cy-r), 0))
	y1 := int(min(ceilf(cy+r), float32(face.Height())))
	rs := r * r
	for y := y0; y < y1; y++ {
		yd := absf(cy - float32(y) - 0.5)
		ys := yd * yd
		for x := x0; x < x1; x++ {
			xd := absf(cx - float32(x) - 0.5)
			xs := xd * xd
			ds := xs + ys
			// If the center is within this pixel, make it brighter
			if ds < 1 {
				ds = ds * ds
			}
			// compare distance squared with radius squared
			drs := ds / rs
			v := 1 - min(drs*drs, 1)
			if v <= 0 {
				continue
			}
			// blend with the existing pixel
			e, ok := palette.Entry(int(face.Pixel(x, y)))
			if !ok {
				log.Warn("index not found in color palette")
				continue
			}
			blended := multi.RGB{
				R: max(uint8(float32(clr.R)*v), e.R),
				G: max(uint8(float32(clr.G)*v), e.G),
				B: max(uint8(float32(clr.B)*v), e.B),
			}
			if i, ok := palette.SetEntry(blended); ok {
				face.SetPixel(x, y, i)
			} else {
				log.Warn("blending failed -- color palette full")
			}
		}
	}
}

func floorf(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

func ceilf(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}

func absf(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
