// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dms renders NTCIP 1203 MULTI sign messages into animated
// images of dynamic message signs.
//
// The pipeline splits a MULTI string into pages, lays out text spans,
// color rectangles and graphics on a pixel grid, rasterizes each page,
// and post-processes the result into a simulated sign face. Fonts,
// graphics and sign configurations are supplied by the caller as
// immutable collections; the package performs no I/O of its own beyond
// writing the encoded image.
package dms

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mnit-rtmc/iris-sub000/multi"
)

// Defaults are the sign-wide message defaults, normally taken from DMS
// system attributes. Zero values select the NTCIP defaults.
type Defaults struct {
	PageOnTimeDS  uint8
	PageOffTimeDS uint8
	JustPage      multi.PageJustification
	JustLine      multi.LineJustification
	FontNumber    uint8
}

// Get the default page-on time (deciseconds).
func (d Defaults) pageOnTimeDS() uint8 {
	if d.PageOnTimeDS > 0 {
		return d.PageOnTimeDS
	}
	return 20
}

// Get the default page justification.
func (d Defaults) justPage() multi.PageJustification {
	if d.JustPage != multi.PageJustNone {
		return d.JustPage
	}
	return multi.PageJustTop
}

// Get the default line justification.
func (d Defaults) justLine() multi.LineJustification {
	if d.JustLine != multi.LineJustNone {
		return d.JustLine
	}
	return multi.LineJustCenter
}

// Get the default font number.
func (d Defaults) fontNumber() uint8 {
	if d.FontNumber > 0 {
		return d.FontNumber
	}
	return 1
}

// DefaultState builds the default render state for a sign
// configuration.
func DefaultState(cfg *SignConfig, d Defaults) State {
	ctx := multi.NewColorCtx(cfg.ColorScheme(), cfg.ForegroundDefault(),
		cfg.BackgroundDefault())
	rect := multi.NewRectangle(1, 1, uint16(cfg.PixelWidth),
		uint16(cfg.PixelHeight))
	return NewState(ctx, uint8(cfg.CharWidth), uint8(cfg.CharHeight),
		d.pageOnTimeDS(), d.PageOffTimeDS, rect, d.justPage(),
		d.justLine(), FontRef{Number: d.fontNumber()})
}

// Frame is one frame of a rendered sign message.
type Frame struct {
	Face *IndexedRaster
	// DelayCS is the frame delay in centiseconds.
	DelayCS int
}

// RenderFrames renders every page of a MULTI message to sign face
// frames sharing one palette. Pages with a non-zero off time produce
// an extra blank frame.
func RenderFrames(cfg *SignConfig, ms string, fonts *FontCache,
	graphics *GraphicCache, d Defaults) ([]Frame, *Palette, error) {
	start := time.Now()
	palette := NewPalette(256)
	palette.SetEntry(multi.RGB{})
	w, h := cfg.CalculateSize()
	var frames []Frame
	ps := NewPageSplitter(DefaultState(cfg, d), ms)
	for {
		page, err := ps.Next()
		if err != nil {
			return nil, nil, err
		}
		if page == nil {
			break
		}
		raster, err := page.Render(fonts, graphics)
		if err != nil {
			return nil, nil, err
		}
		frames = append(frames, Frame{
			Face:    cfg.RenderFace(raster, palette, w, h),
			DelayCS: int(page.PageOnTimeDS()) * 10,
		})
		if off := page.PageOffTimeDS(); off > 0 {
			frames = append(frames, Frame{
				Face:    cfg.RenderFace(page.RenderBlank(), palette, w, h),
				DelayCS: int(off) * 10,
			})
		}
	}
	log.WithFields(log.Fields{
		"config": cfg.Name,
		"frames": len(frames),
	}).Infof("sign message rendered in %v", time.Since(start))
	return frames, palette, nil
}
