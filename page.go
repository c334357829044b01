// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"github.com/mnit-rtmc/iris-sub000/multi"
)

// placedValue is a color rectangle or graphic placement with the color
// context captured at placement time.
type placedValue struct {
	value multi.Value
	ctx   multi.ColorCtx
}

// PageRenderer lays out and rasterizes one page of a MULTI message.
// It is populated by the PageSplitter and finalized before use.
type PageRenderer struct {
	state  State // render state at start of page
	values []placedValue
	spans  []TextSpan
}

// NewPageRenderer creates a page renderer with the page start state.
func NewPageRenderer(state State) *PageRenderer {
	return &PageRenderer{state: state}
}

// State returns the render state at the start of the page.
func (p *PageRenderer) State() *State {
	return &p.state
}

// Check page and line justification ordering. Within one text
// rectangle, spans must not step backward in page justification, nor
// backward in line justification on the same line.
func (p *PageRenderer) checkJustification() error {
	var tr multi.Rectangle
	jp := multi.PageJustOther
	jl := multi.LineJustOther
	ln := uint8(0)
	for i := range p.spans {
		rs := &p.spans[i].state
		if rs.textRectangle == tr &&
			(rs.justPage < jp ||
				(rs.justPage == jp && rs.lineNumber == ln &&
					rs.justLine < jl)) {
			return multi.TagConflict()
		}
		tr = rs.textRectangle
		jp = rs.justPage
		jl = rs.justLine
		ln = rs.lineNumber
	}
	return nil
}

// PageOnTimeDS returns the page-on time in deciseconds.
func (p *PageRenderer) PageOnTimeDS() uint16 {
	return uint16(p.state.pageOnTimeDS)
}

// PageOffTimeDS returns the page-off time in deciseconds.
func (p *PageRenderer) PageOffTimeDS() uint16 {
	return uint16(p.state.pageOffTimeDS)
}

// RenderBlank renders a blank page with only the background color.
func (p *PageRenderer) RenderBlank() *Raster {
	rs := &p.state
	return NewRaster(int(rs.textRectangle.W), int(rs.textRectangle.H),
		rs.backgroundRGB())
}

// Render rasterizes the page: background, color rectangles and
// graphics in placement order, then text spans in span order.
func (p *PageRenderer) Render(fonts *FontCache,
	graphics *GraphicCache) (*Raster, error) {
	rs := &p.state
	page := NewRaster(int(rs.textRectangle.W), int(rs.textRectangle.H),
		rs.backgroundRGB())
	for i := range p.values {
		pv := &p.values[i]
		switch v := pv.value.(type) {
		case multi.ColorRectangle:
			clr := pv.ctx.Foreground()
			if err := p.renderRect(page, v.Rect, clr, v); err != nil {
				return nil, err
			}
		case multi.Graphic:
			g, ok := graphics.Graphic(v.Number)
			if !ok {
				return nil, multi.GraphicNotDefined(v.Number)
			}
			x, y := 1, 1
			if v.X > 0 {
				x, y = int(v.X), int(v.Y)
			}
			if err := g.Render(page, x, y, &pv.ctx); err != nil {
				return nil, err
			}
		default:
			return nil, multi.UnsupportedTag(pv.value.String())
		}
	}
	for i := range p.spans {
		s := &p.spans[i]
		x, err := p.spanX(s, fonts)
		if err != nil {
			return nil, err
		}
		y, err := p.spanY(s, fonts)
		if err != nil {
			return nil, err
		}
		font, err := s.font(fonts)
		if err != nil {
			return nil, err
		}
		if err := s.renderText(page, font, x, y); err != nil {
			return nil, err
		}
	}
	return page, nil
}

// Render a color rectangle, validating containment.
func (p *PageRenderer) renderRect(page *Raster, r multi.Rectangle,
	clr multi.RGB, v multi.Value) error {
	rx := int(r.X) - 1 // r.X must be > 0
	ry := int(r.Y) - 1 // r.Y must be > 0
	rw := int(r.W)
	rh := int(r.H)
	if rx+rw > page.Width() || ry+rh > page.Height() {
		return multi.UnsupportedTagValue(v.String())
	}
	for y := 0; y < rh; y++ {
		for x := 0; x < rw; x++ {
			page.SetPixel(rx+x, ry+y, clr)
		}
	}
	return nil
}

// Get the X position of a text span.
func (p *PageRenderer) spanX(s *TextSpan, fonts *FontCache) (int, error) {
	switch s.state.justLine {
	case multi.LineJustLeft:
		return p.spanXLeft(s, fonts)
	case multi.LineJustCenter:
		return p.spanXCenter(s, fonts)
	case multi.LineJustRight:
		return p.spanXRight(s, fonts)
	}
	// rejected by the splitter before rendering
	return 0, multi.UnsupportedTagValue(s.state.justLine.String())
}

// Get the X position of a left-justified text span.
func (p *PageRenderer) spanXLeft(span *TextSpan, fonts *FontCache) (int,
	error) {
	left := int(span.state.textRectangle.X) - 1
	before, _, err := p.offsetHoriz(span, fonts)
	if err != nil {
		return 0, err
	}
	return left + before, nil
}

// Get the X position of a center-justified text span, truncated to a
// character-width boundary.
func (p *PageRenderer) spanXCenter(span *TextSpan, fonts *FontCache) (int,
	error) {
	left := int(span.state.textRectangle.X) - 1
	w := int(span.state.textRectangle.W)
	before, after, err := p.offsetHoriz(span, fonts)
	if err != nil {
		return 0, err
	}
	offset := (w - before - after) / 2 // offset for centering
	x := left + offset + before
	cw := p.state.charWidthPx()
	return (x / cw) * cw, nil
}

// Get the X position of a right-justified text span.
func (p *PageRenderer) spanXRight(span *TextSpan, fonts *FontCache) (int,
	error) {
	left := int(span.state.textRectangle.X) - 1
	w := int(span.state.textRectangle.W)
	_, after, err := p.offsetHoriz(span, fonts)
	if err != nil {
		return 0, err
	}
	return left + w - after, nil
}

// Calculate the horizontal offsets of a span: the summed widths and
// inter-span spacings of matching spans before and after it.
func (p *PageRenderer) offsetHoriz(span *TextSpan, fonts *FontCache) (int,
	int, error) {
	rs := &span.state
	before, after := 0, 0
	var pspan *TextSpan
	for i := range p.spans {
		s := &p.spans[i]
		if !rs.matchesSpan(&s.state) {
			continue
		}
		if pspan != nil {
			w, err := s.charSpacingBetween(pspan, fonts)
			if err != nil {
				return 0, 0, err
			}
			if s.state.spanNumber <= rs.spanNumber {
				before += w
			} else {
				after += w
			}
		}
		w, err := s.width(fonts)
		if err != nil {
			return 0, 0, err
		}
		if s.state.spanNumber < rs.spanNumber {
			before += w
		} else {
			after += w
		}
		pspan = s
	}
	if before+after > int(rs.textRectangle.W) {
		return 0, 0, multi.TextTooBig()
	}
	return before, after, nil
}

// Get the Y position of a text span.
func (p *PageRenderer) spanY(s *TextSpan, fonts *FontCache) (int, error) {
	b, err := p.baseline(s, fonts)
	if err != nil {
		return 0, err
	}
	h, err := s.height(fonts)
	if err != nil {
		return 0, err
	}
	return b - h, nil
}

// Get the baseline of a text span.
func (p *PageRenderer) baseline(s *TextSpan, fonts *FontCache) (int, error) {
	switch s.state.justPage {
	case multi.PageJustTop:
		return p.baselineTop(s, fonts)
	case multi.PageJustMiddle:
		return p.baselineMiddle(s, fonts)
	case multi.PageJustBottom:
		return p.baselineBottom(s, fonts)
	}
	// rejected by the splitter before rendering
	return 0, multi.UnsupportedTagValue(s.state.justPage.String())
}

// Get the baseline of a top-justified span.
func (p *PageRenderer) baselineTop(span *TextSpan, fonts *FontCache) (int,
	error) {
	top := int(span.state.textRectangle.Y) - 1
	above, _, err := p.offsetVert(span, fonts)
	if err != nil {
		return 0, err
	}
	return top + above, nil
}

// Get the baseline of a middle-justified span, truncated to a
// line-height boundary.
func (p *PageRenderer) baselineMiddle(span *TextSpan, fonts *FontCache) (int,
	error) {
	top := int(span.state.textRectangle.Y) - 1
	h := int(span.state.textRectangle.H)
	above, below, err := p.offsetVert(span, fonts)
	if err != nil {
		return 0, err
	}
	offset := (h - above - below) / 2 // offset for centering
	y := top + offset + above
	ch := p.state.charHeightPx()
	return (y / ch) * ch, nil
}

// Get the baseline of a bottom-justified span.
func (p *PageRenderer) baselineBottom(span *TextSpan, fonts *FontCache) (int,
	error) {
	top := int(span.state.textRectangle.Y) - 1
	h := int(span.state.textRectangle.H)
	_, below, err := p.offsetVert(span, fonts)
	if err != nil {
		return 0, err
	}
	return top + h - below, nil
}

// Calculate the vertical offsets of a span: the summed heights and
// line spacings of matching lines above (including its own line) and
// below it.
func (p *PageRenderer) offsetVert(span *TextSpan, fonts *FontCache) (int,
	int, error) {
	rs := &span.state
	var lines []textLine
	for i := range p.spans {
		s := &p.spans[i]
		if !rs.matchesLine(&s.state) {
			continue
		}
		ln := int(s.state.lineNumber)
		h, err := s.height(fonts)
		if err != nil {
			return 0, 0, err
		}
		fs, err := s.fontSpacing(fonts)
		if err != nil {
			return 0, 0, err
		}
		line := textLine{
			height:      h,
			fontSpacing: fs,
			lineSpacing: s.lineSpacing(),
		}
		if ln >= len(lines) {
			lines = append(lines, line)
		} else {
			lines[ln].combine(line)
		}
	}
	sln := int(rs.lineNumber)
	above, below := 0, 0
	for ln := range lines {
		line := &lines[ln]
		if ln > 0 {
			h := line.spacing(&lines[ln-1])
			if ln <= sln {
				above += h
			} else {
				below += h
			}
		}
		if ln <= sln {
			above += line.height
		} else {
			below += line.height
		}
	}
	if above+below > int(rs.textRectangle.H) {
		return 0, 0, multi.TextTooBig()
	}
	return above, below, nil
}
