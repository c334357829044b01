// Package multi implements the MarkUp Language for Transportation
// Information (MULTI) defined by NTCIP 1203 for dynamic message signs.
//
// A MULTI string is a run of printable ASCII text interleaved with
// bracketed tags such as [nl], [cf255,0,0] or [np]. The Parser splits a
// string into Value items; Normalize re-emits a string in canonical
// form.
package multi

import (
	"fmt"
	"strings"
)

// Rectangle is a rectangular area of a sign, in pixels. X and Y start
// from 1. A zero width or height means "extend to the edge of the
// enclosing rectangle".
type Rectangle struct {
	X uint16
	Y uint16
	W uint16
	H uint16
}

// NewRectangle creates a rectangle.
func NewRectangle(x, y, w, h uint16) Rectangle {
	return Rectangle{X: x, Y: y, W: w, H: h}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.W, r.H)
}

// MatchWidthHeight substitutes a zero width or height with the extent
// reaching the edge of another rectangle.
func (r Rectangle) MatchWidthHeight(other Rectangle) Rectangle {
	w := r.W
	if w == 0 {
		w = 1 + other.W - r.X
	}
	h := r.H
	if h == 0 {
		h = 1 + other.H - r.Y
	}
	return NewRectangle(r.X, r.Y, w, h)
}

// Contains checks if a rectangle fully contains another rectangle.
func (r Rectangle) Contains(other Rectangle) bool {
	return other.X >= r.X && other.X+other.W <= r.X+r.W &&
		other.Y >= r.Y && other.Y+other.H <= r.Y+r.H
}

// FlashOrder is the order of a flashing message.
type FlashOrder uint8

const (
	// FlashOnOff flashes on first, then off.
	FlashOnOff FlashOrder = iota
	// FlashOffOn flashes off first, then on.
	FlashOffOn
)

// LineJustification is horizontal justification within a line.
type LineJustification uint8

// Line justification values. The numeric discriminants are part of the
// MULTI wire format.
const (
	LineJustNone LineJustification = iota
	LineJustOther
	LineJustLeft
	LineJustCenter
	LineJustRight
	LineJustFull
)

func (j LineJustification) String() string {
	return fmt.Sprintf("%d", uint8(j))
}

// LineJustificationFromString creates a line justification from a tag
// parameter.
func LineJustificationFromString(v string) LineJustification {
	switch v {
	case "1":
		return LineJustOther
	case "2":
		return LineJustLeft
	case "3":
		return LineJustCenter
	case "4":
		return LineJustRight
	case "5":
		return LineJustFull
	}
	return LineJustNone
}

// PageJustification is vertical justification within a page.
type PageJustification uint8

// Page justification values. The numeric discriminants are part of the
// MULTI wire format.
const (
	PageJustNone PageJustification = iota
	PageJustOther
	PageJustTop
	PageJustMiddle
	PageJustBottom
)

func (j PageJustification) String() string {
	return fmt.Sprintf("%d", uint8(j))
}

// PageJustificationFromString creates a page justification from a tag
// parameter.
func PageJustificationFromString(v string) PageJustification {
	switch v {
	case "1":
		return PageJustOther
	case "2":
		return PageJustTop
	case "3":
		return PageJustMiddle
	case "4":
		return PageJustBottom
	}
	return PageJustNone
}

// MovingTextMode is the mode for moving text.
type MovingTextMode struct {
	// Linear selects linear motion; otherwise motion is circular.
	Linear bool
	// Exit is the linear exit number.
	Exit uint8
}

func (m MovingTextMode) String() string {
	if m.Linear {
		return fmt.Sprintf("l%d", m.Exit)
	}
	return "c"
}

// MovingTextDirection is the direction for moving text.
type MovingTextDirection uint8

const (
	// MovingLeft moves text toward the left.
	MovingLeft MovingTextDirection = iota
	// MovingRight moves text toward the right.
	MovingRight
)

func (d MovingTextDirection) String() string {
	if d == MovingRight {
		return "r"
	}
	return "l"
}

// Value is one element of a parsed MULTI string: a tag with typed
// fields or a run of literal text. The String method of every variant
// produces the canonical MULTI form.
type Value interface {
	fmt.Stringer
	isValue()
}

// Text is a run of literal characters.
type Text string

func (t Text) String() string {
	s := strings.ReplaceAll(string(t), "[", "[[")
	return strings.ReplaceAll(s, "]", "]]")
}

// NewLine is a [nl] tag. Spacing overrides the vertical gap to the
// previous line (nil for font default).
type NewLine struct {
	Spacing *uint8
}

func (n NewLine) String() string {
	if n.Spacing != nil {
		return fmt.Sprintf("[nl%d]", *n.Spacing)
	}
	return "[nl]"
}

// NewPage is a [np] tag.
type NewPage struct{}

func (NewPage) String() string { return "[np]" }

// ColorForeground is a [cf] tag. A nil color restores the default.
type ColorForeground struct {
	Color Color
}

func (c ColorForeground) String() string {
	if c.Color != nil {
		return fmt.Sprintf("[cf%s]", c.Color)
	}
	return "[cf]"
}

// ColorBackground is a [cb] tag, retained for NTCIP 1203 v1
// compatibility. Only legacy colors are allowed.
type ColorBackground struct {
	Color Color
}

func (c ColorBackground) String() string {
	if c.Color != nil {
		return fmt.Sprintf("[cb%s]", c.Color)
	}
	return "[cb]"
}

// PageBackground is a [pb] tag.
type PageBackground struct {
	Color Color
}

func (c PageBackground) String() string {
	if c.Color != nil {
		return fmt.Sprintf("[pb%s]", c.Color)
	}
	return "[pb]"
}

// ColorRectangle is a [cr] tag: a solid rectangle of one color.
type ColorRectangle struct {
	Rect  Rectangle
	Color Color
}

func (c ColorRectangle) String() string {
	return fmt.Sprintf("[cr%s,%s]", c.Rect, c.Color)
}

// TextRectangle is a [tr] tag restricting subsequent text placement.
type TextRectangle struct {
	Rect Rectangle
}

func (t TextRectangle) String() string {
	return fmt.Sprintf("[tr%s]", t.Rect)
}

// JustificationLine is a [jl] tag. LineJustNone restores the default.
type JustificationLine struct {
	Just LineJustification
}

func (j JustificationLine) String() string {
	if j.Just != LineJustNone {
		return fmt.Sprintf("[jl%s]", j.Just)
	}
	return "[jl]"
}

// JustificationPage is a [jp] tag. PageJustNone restores the default.
type JustificationPage struct {
	Just PageJustification
}

func (j JustificationPage) String() string {
	if j.Just != PageJustNone {
		return fmt.Sprintf("[jp%s]", j.Just)
	}
	return "[jp]"
}

// Font is a [fo] tag. A zero Number restores the default font; Version
// is an optional font version ID.
type Font struct {
	Number  uint8
	Version *uint16
}

func (f Font) String() string {
	switch {
	case f.Number == 0:
		return "[fo]"
	case f.Version != nil:
		return fmt.Sprintf("[fo%d,%04x]", f.Number, *f.Version)
	}
	return fmt.Sprintf("[fo%d]", f.Number)
}

// Graphic is a [g] tag. X and Y are the 1-based placement (zero when
// not given); Version is an optional graphic version ID.
type Graphic struct {
	Number  uint8
	X       uint16
	Y       uint16
	Version *uint16
}

func (g Graphic) String() string {
	switch {
	case g.X == 0:
		return fmt.Sprintf("[g%d]", g.Number)
	case g.Version != nil:
		return fmt.Sprintf("[g%d,%d,%d,%04x]", g.Number, g.X, g.Y, *g.Version)
	}
	return fmt.Sprintf("[g%d,%d,%d]", g.Number, g.X, g.Y)
}

// HexadecimalCharacter is a [hc] tag holding one character code.
type HexadecimalCharacter uint16

func (h HexadecimalCharacter) String() string {
	return fmt.Sprintf("[hc%x]", uint16(h))
}

// ManufacturerSpecific is a [ms] tag, recorded as an opaque value.
type ManufacturerSpecific struct {
	Code uint32
	Tag  *string
}

func (m ManufacturerSpecific) String() string {
	if m.Tag != nil {
		return fmt.Sprintf("[ms%d,%s]", m.Code, *m.Tag)
	}
	return fmt.Sprintf("[ms%d]", m.Code)
}

// ManufacturerSpecificEnd is a [/ms] tag.
type ManufacturerSpecificEnd struct {
	Code uint32
	Tag  *string
}

func (m ManufacturerSpecificEnd) String() string {
	if m.Tag != nil {
		return fmt.Sprintf("[/ms%d,%s]", m.Code, *m.Tag)
	}
	return fmt.Sprintf("[/ms%d]", m.Code)
}

// MovingText is a [mv] tag.
type MovingText struct {
	Mode      MovingTextMode
	Direction MovingTextDirection
	Width     uint16
	Space     uint8
	Rate      uint8
	Text      string
}

func (m MovingText) String() string {
	return fmt.Sprintf("[mv%s%s%d,%d,%d,%s]", m.Mode, m.Direction, m.Width,
		m.Space, m.Rate, m.Text)
}

// Flash is a [fl] tag. On and Off are flash times in tenths of a
// second.
type Flash struct {
	Order FlashOrder
	On    *uint8
	Off   *uint8
}

func (f Flash) String() string {
	a, b := f.On, f.Off
	x, y := "t", "o"
	if f.Order == FlashOffOn {
		a, b = f.Off, f.On
		x, y = "o", "t"
	}
	var sb strings.Builder
	sb.WriteString("[fl")
	sb.WriteString(x)
	if a != nil {
		fmt.Fprintf(&sb, "%d", *a)
	}
	sb.WriteString(y)
	if b != nil {
		fmt.Fprintf(&sb, "%d", *b)
	}
	sb.WriteString("]")
	return sb.String()
}

// FlashEnd is a [/fl] tag.
type FlashEnd struct{}

func (FlashEnd) String() string { return "[/fl]" }

// Field is a [f] tag referencing a field device value.
type Field struct {
	ID    uint8
	Width *uint8
}

func (f Field) String() string {
	if f.Width != nil {
		return fmt.Sprintf("[f%d,%d]", f.ID, *f.Width)
	}
	return fmt.Sprintf("[f%d]", f.ID)
}

// PageTime is a [pt] tag. On and Off are page times in tenths of a
// second (nil for the sign default).
type PageTime struct {
	On  *uint8
	Off *uint8
}

func (p PageTime) String() string {
	var sb strings.Builder
	sb.WriteString("[pt")
	if p.On != nil {
		fmt.Fprintf(&sb, "%d", *p.On)
	}
	sb.WriteString("o")
	if p.Off != nil {
		fmt.Fprintf(&sb, "%d", *p.Off)
	}
	sb.WriteString("]")
	return sb.String()
}

// SpacingCharacter is a [sc] tag overriding character spacing.
type SpacingCharacter uint8

func (s SpacingCharacter) String() string {
	return fmt.Sprintf("[sc%d]", uint8(s))
}

// SpacingCharacterEnd is a [/sc] tag.
type SpacingCharacterEnd struct{}

func (SpacingCharacterEnd) String() string { return "[/sc]" }

func (Text) isValue()                    {}
func (NewLine) isValue()                 {}
func (NewPage) isValue()                 {}
func (ColorForeground) isValue()         {}
func (ColorBackground) isValue()         {}
func (PageBackground) isValue()          {}
func (ColorRectangle) isValue()          {}
func (TextRectangle) isValue()           {}
func (JustificationLine) isValue()       {}
func (JustificationPage) isValue()       {}
func (Font) isValue()                    {}
func (Graphic) isValue()                 {}
func (HexadecimalCharacter) isValue()    {}
func (ManufacturerSpecific) isValue()    {}
func (ManufacturerSpecificEnd) isValue() {}
func (MovingText) isValue()              {}
func (Flash) isValue()                   {}
func (FlashEnd) isValue()                {}
func (Field) isValue()                   {}
func (PageTime) isValue()                {}
func (SpacingCharacter) isValue()        {}
func (SpacingCharacterEnd) isValue()     {}
