// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mnit-rtmc/iris-sub000/multi"
)

// Graphic is a bitmap image which can be placed on a sign with a [g]
// tag. The wire format matches the IRIS graphic JSON documents: 1-bit
// graphics hold one bit per pixel, 8-bit graphics one byte, and 24-bit
// graphics three bytes.
type Graphic struct {
	Number           uint8   `json:"g_number"`
	Name             string  `json:"name"`
	Height           uint16  `json:"height"`
	Width            uint16  `json:"width"`
	ColorScheme      string  `json:"color_scheme"`
	TransparentColor *uint32 `json:"transparent_color"`
	Pixels           string  `json:"pixels"`

	bitmap []byte
}

// init decodes the base64 pixel data. GraphicCache.Insert does this.
func (g *Graphic) init() error {
	buf, err := base64.StdEncoding.DecodeString(g.Pixels)
	if err != nil {
		return fmt.Errorf("graphic %d: %w", g.Number, err)
	}
	n := int(g.Width) * int(g.Height)
	var need int
	switch multi.ColorSchemeFromString(g.ColorScheme) {
	case multi.SchemeMonochrome1Bit:
		need = (n + 7) / 8
	case multi.SchemeMonochrome8Bit:
		need = n
	default:
		need = n * 3
	}
	if len(buf) < need {
		return fmt.Errorf("graphic %d: %d bytes for %d pixels",
			g.Number, len(buf), n)
	}
	g.bitmap = buf
	return nil
}

// Pixel value of the graphic at 0-based coordinates, packed as
// 0xRRGGBB for 24-bit graphics.
func (g *Graphic) pixelValue(x, y int) uint32 {
	i := y*int(g.Width) + x
	switch multi.ColorSchemeFromString(g.ColorScheme) {
	case multi.SchemeMonochrome1Bit:
		return uint32(g.bitmap[i/8] >> (7 - i%8) & 1)
	case multi.SchemeMonochrome8Bit:
		return uint32(g.bitmap[i])
	}
	i *= 3
	return uint32(g.bitmap[i])<<16 |
		uint32(g.bitmap[i+1])<<8 |
		uint32(g.bitmap[i+2])
}

// Color of one pixel, resolved against a color context for legacy
// schemes. Monochrome 1-bit graphics use the current foreground, so
// [cf] tags recolor them; 8-bit graphics ramp between the default
// colors.
func (g *Graphic) pixelColor(v uint32, ctx *multi.ColorCtx) (multi.RGB, bool) {
	switch multi.ColorSchemeFromString(g.ColorScheme) {
	case multi.SchemeMonochrome1Bit:
		return ctx.Foreground(), true
	case multi.SchemeMonochrome8Bit:
		return ctx.RGB(multi.Legacy(v))
	}
	return multi.NewRGB(v), true
}

// Transparent pixel value; unlit pixels of 1-bit graphics are
// transparent unless a transparent color says otherwise.
func (g *Graphic) transparent(v uint32) bool {
	if g.TransparentColor != nil {
		return v == *g.TransparentColor
	}
	return multi.ColorSchemeFromString(g.ColorScheme) ==
		multi.SchemeMonochrome1Bit && v == 0
}

// Render blits the graphic onto a raster at 1-based coordinates.
// Transparent pixels are skipped.
func (g *Graphic) Render(page *Raster, x, y int, ctx *multi.ColorCtx) error {
	for gy := 0; gy < int(g.Height); gy++ {
		for gx := 0; gx < int(g.Width); gx++ {
			v := g.pixelValue(gx, gy)
			if g.transparent(v) {
				continue
			}
			clr, ok := g.pixelColor(v, ctx)
			if !ok {
				return multi.UnsupportedTagValue(
					fmt.Sprintf("graphic %d pixel %d", g.Number, v))
			}
			page.SetPixel(x-1+gx, y-1+gy, clr)
		}
	}
	return nil
}

// GraphicCache is a collection of graphics keyed by graphic number.
type GraphicCache struct {
	graphics map[uint8]*Graphic
}

// NewGraphicCache creates an empty graphic cache.
func NewGraphicCache() *GraphicCache {
	return &GraphicCache{graphics: make(map[uint8]*Graphic)}
}

// Insert decodes and adds a graphic, replacing any graphic with the
// same number.
func (c *GraphicCache) Insert(g *Graphic) error {
	if err := g.init(); err != nil {
		return err
	}
	c.graphics[g.Number] = g
	return nil
}

// Graphic looks up a graphic by number.
func (c *GraphicCache) Graphic(num uint8) (*Graphic, bool) {
	g, ok := c.graphics[num]
	return g, ok
}

// LoadGraphics reads a JSON array of graphics into a cache.
func LoadGraphics(r io.Reader) (*GraphicCache, error) {
	var graphics []Graphic
	if err := json.NewDecoder(r).Decode(&graphics); err != nil {
		return nil, fmt.Errorf("unable to decode graphics: %w", err)
	}
	c := NewGraphicCache()
	for i := range graphics {
		if err := c.Insert(&graphics[i]); err != nil {
			return nil, err
		}
	}
	return c, nil
}
