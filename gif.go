// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"fmt"
	"image"
	"image/gif"
	"io"
)

// RenderSignMessage renders a MULTI message against a sign
// configuration and writes an animated GIF. The logical screen size is
// the face-rendered output size, the global color table is the shared
// palette, and the animation loops forever when there is more than one
// frame.
func RenderSignMessage(w io.Writer, cfg *SignConfig, ms string,
	fonts *FontCache, graphics *GraphicCache, d Defaults) error {
	frames, palette, err := RenderFrames(cfg, ms, fonts, graphics, d)
	if err != nil {
		return err
	}
	ow, oh := cfg.CalculateSize()
	pal := palette.Colors()
	g := &gif.GIF{
		LoopCount: 0,
		Config: image.Config{
			ColorModel: pal,
			Width:      ow,
			Height:     oh,
		},
	}
	for _, f := range frames {
		img := &image.Paletted{
			Pix:     f.Face.Pix(),
			Stride:  f.Face.Width(),
			Rect:    image.Rect(0, 0, f.Face.Width(), f.Face.Height()),
			Palette: pal,
		}
		g.Image = append(g.Image, img)
		g.Delay = append(g.Delay, f.DelayCS)
	}
	if err := gif.EncodeAll(w, g); err != nil {
		return fmt.Errorf("unable to encode %s: %w", cfg.Name, err)
	}
	return nil
}
