// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/mnit-rtmc/iris-sub000/multi"
)

// Maximum pixel width of rendered sign images.
const pixWidth = 450.0

// Maximum pixel height of rendered sign images.
const pixHeight = 100.0

// SignConfig describes the physical geometry and color capabilities of
// a sign. Distances are in millimeters; the wire format matches the
// IRIS sign_config JSON documents. The renderer consumes it read-only.
type SignConfig struct {
	Name                  string `json:"name"`
	FaceWidth             int    `json:"face_width"`
	FaceHeight            int    `json:"face_height"`
	BorderHoriz           int    `json:"border_horiz"`
	BorderVert            int    `json:"border_vert"`
	PitchHoriz            int    `json:"pitch_horiz"`
	PitchVert             int    `json:"pitch_vert"`
	PixelWidth            int    `json:"pixel_width"`
	PixelHeight           int    `json:"pixel_height"`
	CharWidth             int    `json:"char_width"`
	CharHeight            int    `json:"char_height"`
	MonochromeForeground  uint32 `json:"monochrome_foreground"`
	MonochromeBackground  uint32 `json:"monochrome_background"`
	ColorSchemeName       string `json:"color_scheme"`
	DefaultFont           string `json:"default_font,omitempty"`
}

// LoadSignConfigs reads a JSON array of sign configurations keyed by
// name.
func LoadSignConfigs(r io.Reader) (map[string]*SignConfig, error) {
	var cfgs []SignConfig
	if err := json.NewDecoder(r).Decode(&cfgs); err != nil {
		return nil, fmt.Errorf("unable to decode sign configs: %w", err)
	}
	m := make(map[string]*SignConfig, len(cfgs))
	for i := range cfgs {
		m[cfgs[i].Name] = &cfgs[i]
	}
	return m, nil
}

// ColorScheme returns the color scheme of the sign.
func (c *SignConfig) ColorScheme() multi.ColorScheme {
	return multi.ColorSchemeFromString(c.ColorSchemeName)
}

// ForegroundDefault returns the default foreground color.
func (c *SignConfig) ForegroundDefault() multi.RGB {
	switch c.ColorScheme() {
	case multi.SchemeColorClassic, multi.SchemeColor24Bit:
		return multi.ClassicAmber.RGB()
	}
	return multi.NewRGB(c.MonochromeForeground)
}

// BackgroundDefault returns the default background color.
func (c *SignConfig) BackgroundDefault() multi.RGB {
	switch c.ColorScheme() {
	case multi.SchemeColorClassic, multi.SchemeColor24Bit:
		return multi.ClassicBlack.RGB()
	}
	return multi.NewRGB(c.MonochromeBackground)
}

// Get the face width (mm).
func (c *SignConfig) faceWidth() float32 {
	return float32(c.FaceWidth)
}

// Get the face height (mm).
func (c *SignConfig) faceHeight() float32 {
	return float32(c.FaceHeight)
}

// Get the horizontal excess (mm).
func (c *SignConfig) horizontalExcessMM() float32 {
	pixelsMM := float32(c.PitchHoriz * (c.PixelWidth - 1))
	return c.faceWidth() - pixelsMM
}

// Get the horizontal border (mm). Sanity check included in case the
// sign vendor supplies stupid values.
func (c *SignConfig) horizontalBorderMM() float32 {
	excessMM := c.horizontalExcessMM()
	return min(float32(c.BorderHoriz), max(0, excessMM/2))
}

// Get the number of gaps between characters.
func (c *SignConfig) charGaps() int {
	if c.CharWidth > 1 && c.PixelWidth > c.CharWidth {
		return c.PixelWidth/c.CharWidth - 1
	}
	return 0
}

// Get the character gap (mm).
func (c *SignConfig) charGapMM() float32 {
	excessMM := c.horizontalExcessMM()
	borderMM := c.horizontalBorderMM() * 2
	gaps := float32(c.charGaps())
	if excessMM > borderMM && gaps > 0 {
		return (excessMM - borderMM) / gaps
	}
	return 0
}

// Get the horizontal character offset (mm).
func (c *SignConfig) charOffsetMM(x int) float32 {
	if c.CharWidth > 1 {
		gap := float32(x / c.CharWidth)
		return gap * c.charGapMM()
	}
	return 0
}

// Get the X-position of a pixel on the sign face (from 0 to 1).
func (c *SignConfig) pixelX(x int) float32 {
	hb := c.horizontalBorderMM()
	co := c.charOffsetMM(x)
	pos := hb + co + float32(c.PitchHoriz*x)
	return pos / c.faceWidth()
}

// Get the vertical excess (mm).
func (c *SignConfig) verticalExcessMM() float32 {
	pixelsMM := float32(c.PitchVert * (c.PixelHeight - 1))
	return c.faceHeight() - pixelsMM
}

// Get the vertical border (mm). Sanity check included in case the
// sign vendor supplies stupid values.
func (c *SignConfig) verticalBorderMM() float32 {
	excessMM := c.verticalExcessMM()
	return min(float32(c.BorderVert), max(0, excessMM/2))
}

// Get the number of gaps between lines.
func (c *SignConfig) lineGaps() int {
	if c.CharHeight > 1 && c.PixelHeight > c.CharHeight {
		return c.PixelHeight/c.CharHeight - 1
	}
	return 0
}

// Get the line gap (mm).
func (c *SignConfig) lineGapMM() float32 {
	excessMM := c.verticalExcessMM()
	borderMM := c.verticalBorderMM() * 2
	gaps := float32(c.lineGaps())
	if excessMM > borderMM && gaps > 0 {
		return (excessMM - borderMM) / gaps
	}
	return 0
}

// Get the vertical line offset (mm).
func (c *SignConfig) lineOffsetMM(y int) float32 {
	if c.CharHeight > 1 {
		gap := float32(y / c.CharHeight)
		return gap * c.lineGapMM()
	}
	return 0
}

// Get the Y-position of a pixel on the sign face (from 0 to 1).
func (c *SignConfig) pixelY(y int) float32 {
	vb := c.verticalBorderMM()
	lo := c.lineOffsetMM(y)
	pos := vb + lo + float32(c.PitchVert*y)
	return pos / c.faceHeight()
}

// CalculateSize returns the output raster size of the rendered sign
// face, scaled uniformly to fit the maximum image size.
func (c *SignConfig) CalculateSize() (int, int) {
	fw := c.faceWidth()
	fh := c.faceHeight()
	if fw > 0 && fh > 0 {
		s := min(pixWidth/fw, pixHeight/fh)
		w := int(math.Round(float64(fw * s)))
		h := int(math.Round(float64(fh * s)))
		return w, h
	}
	return pixWidth, pixHeight
}
