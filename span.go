// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"math"

	"github.com/mnit-rtmc/iris-sub000/multi"
)

// TextSpan is a run of text with the render state captured at its
// start. Snapshots are immutable once created.
type TextSpan struct {
	state State
	text  string
}

// Get the font of a text span.
func (s *TextSpan) font(fonts *FontCache) (*Font, error) {
	f, ok := fonts.Font(s.state.font.Number)
	if !ok {
		return nil, multi.FontNotDefined(s.state.font.Number)
	}
	return f, nil
}

// Get the width of a text span.
func (s *TextSpan) width(fonts *FontCache) (int, error) {
	font, err := s.font(fonts)
	if err != nil {
		return 0, err
	}
	cs, err := s.charSpacingFonts(fonts)
	if err != nil {
		return 0, err
	}
	return font.TextWidth(s.text, cs)
}

// Get the char spacing, from the state override or the span font.
func (s *TextSpan) charSpacingFonts(fonts *FontCache) (int, error) {
	if s.state.charSpacing != nil {
		return int(*s.state.charSpacing), nil
	}
	font, err := s.font(fonts)
	if err != nil {
		return 0, err
	}
	return int(font.CharSpacing), nil
}

// Get the char spacing with a known font.
func (s *TextSpan) charSpacingFont(font *Font) int {
	if s.state.charSpacing != nil {
		return int(*s.state.charSpacing)
	}
	return int(font.CharSpacing)
}

// Get the char spacing between two adjacent spans.
func (s *TextSpan) charSpacingBetween(prev *TextSpan, fonts *FontCache) (int,
	error) {
	if s.state.charSpacing != nil {
		return int(*s.state.charSpacing), nil
	}
	// NTCIP 1203 fontCharSpacing:
	// "... the average character spacing of the two fonts,
	// rounded up to the nearest whole pixel ..." ???
	psc, err := prev.charSpacingFonts(fonts)
	if err != nil {
		return 0, err
	}
	sc, err := s.charSpacingFonts(fonts)
	if err != nil {
		return 0, err
	}
	return int(math.Round(float64(psc+sc) / 2)), nil
}

// Get the height of a text span.
func (s *TextSpan) height(fonts *FontCache) (int, error) {
	font, err := s.font(fonts)
	if err != nil {
		return 0, err
	}
	return int(font.Height), nil
}

// Get the font line spacing.
func (s *TextSpan) fontSpacing(fonts *FontCache) (int, error) {
	font, err := s.font(fonts)
	if err != nil {
		return 0, err
	}
	return int(font.LineSpacing), nil
}

// Get the line spacing override, -1 when not set.
func (s *TextSpan) lineSpacing() int {
	if s.state.lineSpacing != nil {
		return int(*s.state.lineSpacing)
	}
	return -1
}

// Render the text span onto a page raster.
func (s *TextSpan) renderText(page *Raster, font *Font, x, y int) error {
	cs := s.charSpacingFont(font)
	cf := s.state.foregroundRGB()
	return font.RenderText(page, s.text, x, y, cs, cf)
}

// textLine is the combined metrics of the spans of one line.
type textLine struct {
	height      int
	fontSpacing int
	lineSpacing int // -1 when not set
}

// Combine a text line with another.
func (ln *textLine) combine(other textLine) {
	ln.height = max(ln.height, other.height)
	ln.fontSpacing = max(ln.fontSpacing, other.fontSpacing)
	if ln.lineSpacing < 0 {
		ln.lineSpacing = other.lineSpacing
	}
}

// Get the spacing between two adjacent text lines.
func (ln *textLine) spacing(other *textLine) int {
	if ln.lineSpacing >= 0 {
		return ln.lineSpacing
	}
	// NTCIP 1203 fontLineSpacing:
	// "The number of pixels between adjacent lines
	// is the average of the 2 line spacings of each
	// line, rounded up to the nearest whole pixel."
	return int(math.Round(float64(ln.fontSpacing+other.fontSpacing) / 2))
}
