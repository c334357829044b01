// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"image/color"

	"github.com/mnit-rtmc/iris-sub000/multi"
)

// Palette is a color table for indexed rasters. Colors within a
// fill-level-dependent threshold of an existing entry are merged into
// it, so the table degrades gracefully as it fills.
type Palette struct {
	capacity int
	entries  []multi.RGB
}

// NewPalette creates an empty palette with the given capacity.
func NewPalette(capacity int) *Palette {
	return &Palette{capacity: capacity}
}

// Len returns the number of used entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entry returns the color of a palette entry.
func (p *Palette) Entry(i int) (multi.RGB, bool) {
	if i < len(p.entries) {
		return p.entries[i], true
	}
	return multi.RGB{}, false
}

// SetEntry finds or adds an entry for a color, returning its index.
// It fails only when the palette is full and no existing entry is
// within the threshold.
func (p *Palette) SetEntry(clr multi.RGB) (uint8, bool) {
	t := paletteThreshold(len(p.entries))
	for i, e := range p.entries {
		if absDiff(e.R, clr.R) <= t.R &&
			absDiff(e.G, clr.G) <= t.G &&
			absDiff(e.B, clr.B) <= t.B {
			return uint8(i), true
		}
	}
	if len(p.entries) < p.capacity {
		p.entries = append(p.entries, clr)
		return uint8(len(p.entries) - 1), true
	}
	return 0, false
}

// Colors returns the used entries as an image color palette.
func (p *Palette) Colors() color.Palette {
	pal := make(color.Palette, len(p.entries))
	for i, e := range p.entries {
		pal[i] = color.RGBA{R: e.R, G: e.G, B: e.B, A: 0xFF}
	}
	return pal
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// Upper bound of each threshold bucket, indexed by threshold level.
var paletteThresholdBounds = [31]uint8{
	0x0F, 0x1E, 0x2D, 0x3B, 0x49, 0x56, 0x63, 0x6F,
	0x7B, 0x86, 0x91, 0x9B, 0xA5, 0xAE, 0xB7, 0xBF,
	0xC7, 0xCE, 0xD5, 0xDB, 0xE1, 0xE6, 0xEB, 0xEF,
	0xF3, 0xF6, 0xF9, 0xFB, 0xFD, 0xFE, 0xFF,
}

// Get the difference threshold for a 256 capacity palette, varying
// with the current fill level.
func paletteThreshold(v int) multi.RGB {
	var i uint8
	for level, bound := range paletteThresholdBounds {
		if uint8(v) <= bound {
			i = uint8(level)
			break
		}
	}
	return multi.RGB{R: i * 4, G: i * 4, B: i * 5}
}
