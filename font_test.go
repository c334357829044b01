// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mnit-rtmc/iris-sub000/multi"
)

// A 5x7 'T' glyph: one full row, then a centered stem.
const fontJSON = `[{
	"name": "07_full",
	"f_number": 2,
	"height": 7,
	"width": 5,
	"char_spacing": 2,
	"line_spacing": 3,
	"version_id": 1234,
	"glyphs": [
		{"code_point": 84, "width": 5, "pixels": "+QhCEIA="}
	]
}]`

func TestLoadFonts(t *testing.T) {
	fonts, err := LoadFonts(strings.NewReader(fontJSON))
	require.NoError(t, err)
	f, ok := fonts.Font(2)
	require.True(t, ok)
	require.Equal(t, "07_full", f.Name)
	require.Equal(t, uint8(7), f.Height)
	require.Equal(t, uint8(2), f.CharSpacing)
	require.Equal(t, uint8(3), f.LineSpacing)

	_, ok = fonts.Font(1)
	require.False(t, ok)
	f, ok = fonts.LookupName("07_full")
	require.True(t, ok)
	require.Equal(t, uint8(2), f.Number)
	_, ok = fonts.LookupName("bogus")
	require.False(t, ok)
}

func TestGlyphPixels(t *testing.T) {
	fonts, err := LoadFonts(strings.NewReader(fontJSON))
	require.NoError(t, err)
	f, _ := fonts.Font(2)
	g, err := f.Glyph('T')
	require.NoError(t, err)
	for x := 0; x < 5; x++ {
		require.True(t, g.Lit(x, 0), "top row x=%d", x)
	}
	for y := 1; y < 7; y++ {
		require.False(t, g.Lit(0, y))
		require.False(t, g.Lit(1, y))
		require.True(t, g.Lit(2, y), "stem y=%d", y)
		require.False(t, g.Lit(3, y))
		require.False(t, g.Lit(4, y))
	}
}

func TestGlyphNotDefined(t *testing.T) {
	fonts, err := LoadFonts(strings.NewReader(fontJSON))
	require.NoError(t, err)
	f, _ := fonts.Font(2)
	_, err = f.Glyph('U')
	require.Equal(t, multi.CharacterNotDefined('U'), err)
}

func TestTextWidth(t *testing.T) {
	fonts, err := LoadFonts(strings.NewReader(fontJSON))
	require.NoError(t, err)
	f, _ := fonts.Font(2)

	w, err := f.TextWidth("T", 2)
	require.NoError(t, err)
	require.Equal(t, 5, w)

	w, err = f.TextWidth("TTT", 2)
	require.NoError(t, err)
	require.Equal(t, 19, w)

	_, err = f.TextWidth("TX", 2)
	require.Equal(t, multi.CharacterNotDefined('X'), err)
}

func TestRenderText(t *testing.T) {
	fonts, err := LoadFonts(strings.NewReader(fontJSON))
	require.NoError(t, err)
	f, _ := fonts.Font(2)
	amber := multi.ClassicAmber.RGB()
	page := NewRaster(12, 7, multi.RGB{})
	require.NoError(t, f.RenderText(page, "TT", 0, 0, 2, amber))
	require.Equal(t, amber, page.Pixel(0, 0))
	require.Equal(t, amber, page.Pixel(4, 0))
	require.Equal(t, multi.RGB{}, page.Pixel(5, 0))
	require.Equal(t, amber, page.Pixel(7, 0))
	require.Equal(t, amber, page.Pixel(9, 6))
}

func TestFontBadPixels(t *testing.T) {
	bad := strings.Replace(fontJSON, "+QhCEIA=", "%%%", 1)
	_, err := LoadFonts(strings.NewReader(bad))
	require.Error(t, err)

	short := strings.Replace(fontJSON, "+QhCEIA=", "+Qg=", 1)
	_, err = LoadFonts(strings.NewReader(short))
	require.Error(t, err)
}
