// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"

	"github.com/mnit-rtmc/iris-sub000/multi"
)

// Glyph is the bitmap of one character of a bitmap font. Pixels are
// packed row-major, most significant bit first.
type Glyph struct {
	CodePoint uint16 `json:"code_point"`
	Width     uint8  `json:"width"`
	Pixels    string `json:"pixels"`

	bitmap *bitset.BitSet
}

// Lit checks whether the pixel at 0-based glyph coordinates is lit.
func (g *Glyph) Lit(x, y int) bool {
	return g.bitmap.Test(uint(y*int(g.Width) + x))
}

// Decode the base64 pixel data into the glyph bitmap.
func (g *Glyph) decode(height uint8) error {
	buf, err := base64.StdEncoding.DecodeString(g.Pixels)
	if err != nil {
		return fmt.Errorf("glyph %d: %w", g.CodePoint, err)
	}
	bits := int(g.Width) * int(height)
	if len(buf)*8 < bits {
		return fmt.Errorf("glyph %d: %d bytes for %d pixels",
			g.CodePoint, len(buf), bits)
	}
	bm := bitset.New(uint(bits))
	for i := 0; i < bits; i++ {
		if buf[i/8]>>(7-i%8)&1 != 0 {
			bm.Set(uint(i))
		}
	}
	g.bitmap = bm
	return nil
}

// Font is a bitmap font of a sign, keyed by font number. The wire
// format matches the IRIS font JSON documents.
type Font struct {
	Number      uint8   `json:"f_number"`
	Name        string  `json:"name"`
	Height      uint8   `json:"height"`
	Width       uint8   `json:"width"`
	CharSpacing uint8   `json:"char_spacing"`
	LineSpacing uint8   `json:"line_spacing"`
	VersionID   uint16  `json:"version_id"`
	Glyphs      []Glyph `json:"glyphs"`

	glyphs map[rune]*Glyph
}

// init decodes all glyph bitmaps and builds the lookup table. It must
// be called once before rendering; FontCache.Insert does this.
func (f *Font) init() error {
	f.glyphs = make(map[rune]*Glyph, len(f.Glyphs))
	for i := range f.Glyphs {
		g := &f.Glyphs[i]
		if err := g.decode(f.Height); err != nil {
			return fmt.Errorf("font %d: %w", f.Number, err)
		}
		f.glyphs[rune(g.CodePoint)] = g
	}
	return nil
}

// Glyph looks up the glyph for a character.
func (f *Font) Glyph(c rune) (*Glyph, error) {
	if g, ok := f.glyphs[c]; ok {
		return g, nil
	}
	return nil, multi.CharacterNotDefined(c)
}

// TextWidth calculates the width of a string in pixels, with the given
// spacing between characters.
func (f *Font) TextWidth(s string, charSpacing int) (int, error) {
	width := 0
	for _, c := range s {
		g, err := f.Glyph(c)
		if err != nil {
			return 0, err
		}
		if width > 0 {
			width += charSpacing
		}
		width += int(g.Width)
	}
	return width, nil
}

// RenderText blits a string onto a raster at 0-based coordinates with
// the given character spacing and foreground color.
func (f *Font) RenderText(page *Raster, s string, x, y, charSpacing int,
	clr multi.RGB) error {
	for _, c := range s {
		g, err := f.Glyph(c)
		if err != nil {
			return err
		}
		w := int(g.Width)
		for gy := 0; gy < int(f.Height); gy++ {
			for gx := 0; gx < w; gx++ {
				if g.Lit(gx, gy) {
					page.SetPixel(x+gx, y+gy, clr)
				}
			}
		}
		x += w + charSpacing
	}
	return nil
}

// FontCache is a collection of fonts keyed by font number.
type FontCache struct {
	fonts map[uint8]*Font
}

// NewFontCache creates an empty font cache.
func NewFontCache() *FontCache {
	return &FontCache{fonts: make(map[uint8]*Font)}
}

// Insert decodes and adds a font, replacing any font with the same
// number.
func (c *FontCache) Insert(f *Font) error {
	if err := f.init(); err != nil {
		return err
	}
	c.fonts[f.Number] = f
	return nil
}

// Font looks up a font by number.
func (c *FontCache) Font(num uint8) (*Font, bool) {
	f, ok := c.fonts[num]
	return f, ok
}

// LookupName finds a font by name.
func (c *FontCache) LookupName(name string) (*Font, bool) {
	for _, f := range c.fonts {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// LoadFonts reads a JSON array of fonts into a cache.
func LoadFonts(r io.Reader) (*FontCache, error) {
	var fonts []Font
	if err := json.NewDecoder(r).Decode(&fonts); err != nil {
		return nil, fmt.Errorf("unable to decode fonts: %w", err)
	}
	c := NewFontCache()
	for i := range fonts {
		if err := c.Insert(&fonts[i]); err != nil {
			return nil, err
		}
	}
	return c, nil
}
