package multi

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// ColorScheme is the color scheme of a sign.
type ColorScheme uint8

// Color schemes defined by NTCIP 1203.
const (
	SchemeMonochrome1Bit ColorScheme = iota + 1
	SchemeMonochrome8Bit
	SchemeColorClassic
	SchemeColor24Bit
)

func (s ColorScheme) String() string {
	switch s {
	case SchemeMonochrome1Bit:
		return "monochrome1Bit"
	case SchemeMonochrome8Bit:
		return "monochrome8Bit"
	case SchemeColorClassic:
		return "colorClassic"
	case SchemeColor24Bit:
		return "color24Bit"
	}
	return "unknown"
}

// ColorSchemeFromString creates a color scheme from its NTCIP name.
// Unknown names fall back to monochrome 1-bit.
func ColorSchemeFromString(s string) ColorScheme {
	switch s {
	case "monochrome1Bit":
		return SchemeMonochrome1Bit
	case "monochrome8Bit":
		return SchemeMonochrome8Bit
	case "colorClassic":
		return SchemeColorClassic
	case "color24Bit":
		return SchemeColor24Bit
	}
	log.Warnf("unknown color scheme: %s", s)
	return SchemeMonochrome1Bit
}

// RGB is a 24-bit color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// NewRGB creates a color from a packed 0xRRGGBB value.
func NewRGB(rgb uint32) RGB {
	return RGB{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
	}
}

func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Color is one color of a MULTI tag: either an explicit 24-bit RGB
// triple or a legacy value whose meaning depends on the color scheme.
type Color interface {
	fmt.Stringer
	isColor()
}

// Legacy is a scheme-dependent color value: 0-1 for monochrome 1-bit,
// 0-255 for monochrome 8-bit, or 0-9 for classic color.
type Legacy uint8

func (l Legacy) String() string {
	return fmt.Sprintf("%d", uint8(l))
}

func (Legacy) isColor() {}
func (RGB) isColor()    {}

// ClassicColor is one of the ten classic colors of NTCIP 1203. The
// ordinals correspond to legacy color codes in the colorClassic and
// color24Bit schemes.
type ClassicColor uint8

// Classic color values.
const (
	ClassicBlack ClassicColor = iota
	ClassicRed
	ClassicYellow
	ClassicGreen
	ClassicCyan
	ClassicBlue
	ClassicMagenta
	ClassicWhite
	ClassicOrange
	ClassicAmber
)

// RGB returns the fixed color of a classic color.
func (c ClassicColor) RGB() RGB {
	switch c {
	case ClassicBlack:
		return NewRGB(0x000000)
	case ClassicRed:
		return NewRGB(0xFF0000)
	case ClassicYellow:
		return NewRGB(0xFFFF00)
	case ClassicGreen:
		return NewRGB(0x00FF00)
	case ClassicCyan:
		return NewRGB(0x00FFFF)
	case ClassicBlue:
		return NewRGB(0x0000FF)
	case ClassicMagenta:
		return NewRGB(0xFF00FF)
	case ClassicWhite:
		return NewRGB(0xFFFFFF)
	case ClassicOrange:
		return NewRGB(0xFFA500)
	case ClassicAmber:
		return NewRGB(0xFFD000)
	}
	return RGB{}
}

// ClassicColorFromValue converts a legacy value into a classic color.
func ClassicColorFromValue(v uint8) (ClassicColor, bool) {
	if v <= uint8(ClassicAmber) {
		return ClassicColor(v), true
	}
	return 0, false
}

// ColorCtx holds the color scheme and the current foreground and
// background colors while processing a MULTI string.
type ColorCtx struct {
	scheme    ColorScheme
	fgDefault RGB
	fgCurrent RGB
	bgDefault RGB
	bgCurrent RGB
}

// NewColorCtx creates a color context with current colors set to the
// defaults.
func NewColorCtx(scheme ColorScheme, fgDefault, bgDefault RGB) ColorCtx {
	return ColorCtx{
		scheme:    scheme,
		fgDefault: fgDefault,
		fgCurrent: fgDefault,
		bgDefault: bgDefault,
		bgCurrent: bgDefault,
	}
}

// Scheme returns the color scheme.
func (ctx *ColorCtx) Scheme() ColorScheme {
	return ctx.scheme
}

// Foreground returns the current foreground color.
func (ctx *ColorCtx) Foreground() RGB {
	return ctx.fgCurrent
}

// SetForeground sets the foreground color. A nil color restores the
// default. The value v is used for error reporting.
func (ctx *ColorCtx) SetForeground(c Color, v Value) error {
	if c == nil {
		ctx.fgCurrent = ctx.fgDefault
		return nil
	}
	rgb, ok := ctx.RGB(c)
	if !ok {
		return UnsupportedTagValue(v.String())
	}
	ctx.fgCurrent = rgb
	return nil
}

// Background returns the current background color.
func (ctx *ColorCtx) Background() RGB {
	return ctx.bgCurrent
}

// SetBackground sets the background color. A nil color restores the
// default. The value v is used for error reporting.
func (ctx *ColorCtx) SetBackground(c Color, v Value) error {
	if c == nil {
		ctx.bgCurrent = ctx.bgDefault
		return nil
	}
	rgb, ok := ctx.RGB(c)
	if !ok {
		return UnsupportedTagValue(v.String())
	}
	ctx.bgCurrent = rgb
	return nil
}

// RGB resolves a color against the context's scheme.
func (ctx *ColorCtx) RGB(c Color) (RGB, bool) {
	switch c := c.(type) {
	case Legacy:
		switch ctx.scheme {
		case SchemeMonochrome1Bit:
			return ctx.rgbMonochrome1(uint8(c))
		case SchemeMonochrome8Bit:
			return ctx.rgbMonochrome8(uint8(c)), true
		default:
			return rgbClassic(uint8(c))
		}
	case RGB:
		if ctx.scheme == SchemeColor24Bit {
			return c, true
		}
	}
	return RGB{}, false
}

// Get RGB for a monochrome 1-bit color.
func (ctx *ColorCtx) rgbMonochrome1(v uint8) (RGB, bool) {
	switch v {
	case 0:
		return ctx.bgDefault, true
	case 1:
		return ctx.fgDefault, true
	}
	return RGB{}, false
}

// Get RGB for a monochrome 8-bit color.
func (ctx *ColorCtx) rgbMonochrome8(v uint8) RGB {
	return RGB{
		R: lerp(ctx.bgDefault.R, ctx.fgDefault.R, v),
		G: lerp(ctx.bgDefault.G, ctx.fgDefault.G, v),
		B: lerp(ctx.bgDefault.B, ctx.fgDefault.B, v),
	}
}

// Get RGB for a classic color.
func rgbClassic(v uint8) (RGB, bool) {
	c, ok := ClassicColorFromValue(v)
	if !ok {
		return RGB{}, false
	}
	return c.RGB(), true
}

// Interpolate between two color components.
func lerp(bg, fg, v uint8) uint8 {
	lo, hi := bg, fg
	if lo > hi {
		lo, hi = hi, lo
	}
	d := uint32(hi - lo)
	c := d * uint32(v)
	// cheap alternative to divide by 255
	r := uint8((c + 1 + (c >> 8)) >> 8)
	return lo + r
}
