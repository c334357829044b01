// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"github.com/mnit-rtmc/iris-sub000/multi"
)

// PageSplitter consumes the value stream of a MULTI string and emits
// one PageRenderer per page. Pages are delimited by [np] tags; a
// non-empty input produces at least one page and an empty input
// produces exactly one blank page.
type PageSplitter struct {
	defaultState State
	state        State
	parser       *multi.Parser
	morePages    bool
	lineBlank    bool
}

// NewPageSplitter creates a page splitter.
//
//   - defaultState: default render state.
//   - ms: MULTI string to parse.
func NewPageSplitter(defaultState State, ms string) *PageSplitter {
	return &PageSplitter{
		defaultState: defaultState,
		state:        defaultState,
		parser:       multi.NewParser(ms),
		morePages:    true,
		lineBlank:    true,
	}
}

// Next returns the next page or error. Both results are nil when the
// sequence is exhausted. An error terminates the page in progress.
func (ps *PageSplitter) Next() (*PageRenderer, error) {
	if !ps.morePages {
		return nil, nil
	}
	return ps.makePage()
}

// Make the next page.
func (ps *PageSplitter) makePage() (*PageRenderer, error) {
	ps.morePages = false
	ps.lineBlank = true
	page := NewPageRenderer(ps.pageState())
	for {
		v, err := ps.parser.Next()
		if err != nil {
			return nil, err
		}
		if v == nil {
			break
		}
		if err := ps.updateState(v, page); err != nil {
			return nil, err
		}
		if ps.morePages {
			break
		}
	}
	if err := page.checkJustification(); err != nil {
		return nil, err
	}
	return page, nil
}

// Get the render state for the start of the next page. The text
// rectangle and line spacing revert to the default state.
func (ps *PageSplitter) pageState() State {
	rs := ps.state
	rs.textRectangle = ps.defaultState.textRectangle
	rs.lineSpacing = ps.defaultState.lineSpacing
	return rs
}

// Update the render state with one MULTI value.
//
//   - v: MULTI value.
//   - page: page renderer being populated.
func (ps *PageSplitter) updateState(v multi.Value,
	page *PageRenderer) error {
	ds := &ps.defaultState
	rs := &ps.state
	switch v := v.(type) {
	case multi.ColorBackground:
		// This tag remains for backward compatibility with 1203v1
		if err := rs.colorCtx.SetBackground(v.Color, v); err != nil {
			return err
		}
		return page.state.colorCtx.SetBackground(v.Color, v)
	case multi.PageBackground:
		if err := rs.colorCtx.SetBackground(v.Color, v); err != nil {
			return err
		}
		return page.state.colorCtx.SetBackground(v.Color, v)
	case multi.ColorForeground:
		return rs.colorCtx.SetForeground(v.Color, v)
	case multi.ColorRectangle:
		// only set foreground color in a cloned context; [cr] does
		// not change the current foreground
		ctx := rs.colorCtx
		if err := ctx.SetForeground(v.Color, v); err != nil {
			return err
		}
		page.values = append(page.values, placedValue{value: v, ctx: ctx})
	case multi.Font:
		if v.Number == 0 {
			rs.font = ds.font
		} else {
			rs.font = FontRef{Number: v.Number, Version: v.Version}
		}
	case multi.Graphic:
		page.values = append(page.values,
			placedValue{value: v, ctx: rs.colorCtx})
	case multi.JustificationLine:
		if v.Just == multi.LineJustOther || v.Just == multi.LineJustFull {
			return multi.UnsupportedTagValue(v.String())
		}
		if v.Just == multi.LineJustNone {
			rs.justLine = ds.justLine
		} else {
			rs.justLine = v.Just
		}
		rs.spanNumber = 0
	case multi.JustificationPage:
		if v.Just == multi.PageJustOther {
			return multi.UnsupportedTagValue(v.String())
		}
		if v.Just == multi.PageJustNone {
			rs.justPage = ds.justPage
		} else {
			rs.justPage = v.Just
		}
		rs.lineNumber = 0
		rs.spanNumber = 0
	case multi.NewLine:
		if v.Spacing != nil && !rs.isFullMatrix() {
			return multi.UnsupportedTagValue(v.String())
		}
		// Insert an empty text span for blank lines.
		if ps.lineBlank {
			page.spans = append(page.spans, TextSpan{state: *rs})
		}
		ps.lineBlank = true
		rs.lineSpacing = v.Spacing
		rs.lineNumber++
		rs.spanNumber = 0
	case multi.NewPage:
		rs.lineNumber = 0
		rs.spanNumber = 0
		ps.morePages = true
	case multi.PageTime:
		on := ds.pageOnTimeDS
		if v.On != nil {
			on = *v.On
		}
		off := ds.pageOffTimeDS
		if v.Off != nil {
			off = *v.Off
		}
		rs.pageOnTimeDS = on
		rs.pageOffTimeDS = off
		page.state.pageOnTimeDS = on
		page.state.pageOffTimeDS = off
	case multi.SpacingCharacter:
		if rs.isCharMatrix() {
			return multi.UnsupportedTag(v.String())
		}
		sc := uint8(v)
		rs.charSpacing = &sc
	case multi.SpacingCharacterEnd:
		if rs.isCharMatrix() {
			return multi.UnsupportedTag(v.String())
		}
		rs.charSpacing = nil
	case multi.TextRectangle:
		ps.lineBlank = true
		rs.lineNumber = 0
		rs.spanNumber = 0
		return rs.updateTextRectangle(ds, v.Rect, v)
	case multi.Text:
		page.spans = append(page.spans,
			TextSpan{state: *rs, text: string(v)})
		rs.spanNumber++
		ps.lineBlank = false
	case multi.HexadecimalCharacter:
		c := rune(v)
		if c >= 0xD800 && c <= 0xDFFF {
			// Invalid code point (surrogate in D800-DFFF range)
			return multi.UnsupportedTagValue(v.String())
		}
		page.spans = append(page.spans,
			TextSpan{state: *rs, text: string(c)})
		rs.spanNumber++
		ps.lineBlank = false
	default:
		// Unsupported tags: [f], [fl], [ms], [mv]
		return multi.UnsupportedTag(v.String())
	}
	return nil
}
