// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"github.com/mnit-rtmc/iris-sub000/multi"
)

// FontRef identifies a font by number with an optional version ID.
type FontRef struct {
	Number  uint8
	Version *uint16
}

// State is the render state while laying out one page of a MULTI
// message. It is copied into each text span when the span starts, so
// span snapshots are never aliased with the mutable splitter state.
type State struct {
	colorCtx      multi.ColorCtx
	charWidth     uint8
	charHeight    uint8
	pageOnTimeDS  uint8
	pageOffTimeDS uint8
	textRectangle multi.Rectangle
	justPage      multi.PageJustification
	justLine      multi.LineJustification
	lineNumber    uint8
	spanNumber    uint8
	lineSpacing   *uint8
	charSpacing   *uint8
	font          FontRef
}

// NewState creates a render state.
//
// A zero charWidth and charHeight selects a full-matrix sign; a
// positive charWidth selects a character-matrix sign, where text
// rectangles and positions must align to cell boundaries.
func NewState(colorCtx multi.ColorCtx, charWidth, charHeight uint8,
	pageOnTimeDS, pageOffTimeDS uint8, textRectangle multi.Rectangle,
	justPage multi.PageJustification, justLine multi.LineJustification,
	font FontRef) State {
	return State{
		colorCtx:      colorCtx,
		charWidth:     charWidth,
		charHeight:    charHeight,
		pageOnTimeDS:  pageOnTimeDS,
		pageOffTimeDS: pageOffTimeDS,
		textRectangle: textRectangle,
		justPage:      justPage,
		justLine:      justLine,
		font:          font,
	}
}

// ColorCtx returns the state's color context.
func (rs *State) ColorCtx() multi.ColorCtx {
	return rs.colorCtx
}

// TextRectangle returns the active text rectangle.
func (rs *State) TextRectangle() multi.Rectangle {
	return rs.textRectangle
}

// PageOnTimeDS returns the page-on time in deciseconds.
func (rs *State) PageOnTimeDS() uint8 {
	return rs.pageOnTimeDS
}

// PageOffTimeDS returns the page-off time in deciseconds.
func (rs *State) PageOffTimeDS() uint8 {
	return rs.pageOffTimeDS
}

// Font returns the current font reference.
func (rs *State) Font() FontRef {
	return rs.font
}

// Check if the sign is a character-matrix.
func (rs *State) isCharMatrix() bool {
	return rs.charWidth > 0
}

// Check if the sign is a full-matrix.
func (rs *State) isFullMatrix() bool {
	return rs.charWidth == 0 && rs.charHeight == 0
}

// Get the character width (1 for variable width).
func (rs *State) charWidthPx() int {
	if rs.isCharMatrix() {
		return int(rs.charWidth)
	}
	return 1
}

// Get the character height (1 for variable height).
func (rs *State) charHeightPx() int {
	if rs.charHeight > 0 {
		return int(rs.charHeight)
	}
	return 1
}

// Update the text rectangle, substituting zero extents and checking
// containment and cell alignment.
func (rs *State) updateTextRectangle(defaultState *State,
	r multi.Rectangle, v multi.Value) error {
	r = r.MatchWidthHeight(defaultState.textRectangle)
	if !defaultState.textRectangle.Contains(r) {
		return multi.UnsupportedTagValue(v.String())
	}
	cw := uint16(rs.charWidthPx())
	// Check text rectangle matches character boundaries
	if (r.X-1)%cw != 0 || r.W%cw != 0 {
		return multi.UnsupportedTagValue(v.String())
	}
	lh := uint16(rs.charHeightPx())
	// Check text rectangle matches line boundaries
	if (r.Y-1)%lh != 0 || r.H%lh != 0 {
		return multi.UnsupportedTagValue(v.String())
	}
	rs.textRectangle = r
	return nil
}

// Get the background color.
func (rs *State) backgroundRGB() multi.RGB {
	return rs.colorCtx.Background()
}

// Get the foreground color.
func (rs *State) foregroundRGB() multi.RGB {
	return rs.colorCtx.Foreground()
}

// Check if states match for text spans.
func (rs *State) matchesSpan(other *State) bool {
	return rs.textRectangle == other.textRectangle &&
		rs.justPage == other.justPage &&
		rs.lineNumber == other.lineNumber &&
		rs.justLine == other.justLine
}

// Check if states match for lines.
func (rs *State) matchesLine(other *State) bool {
	return rs.textRectangle == other.textRectangle &&
		rs.justPage == other.justPage
}
