package multi

import (
	"strconv"
	"strings"
)

// Parser splits a MULTI string into a sequence of Values. It is a
// non-restartable pull parser: each call to Next yields one value or
// one syntax error until the input is exhausted.
type Parser struct {
	src []rune
	pos int
	tag bool
}

// NewParser creates a parser for a MULTI string.
func NewParser(ms string) *Parser {
	return &Parser{src: []rune(ms)}
}

// Next returns the next value or syntax error. Both results are nil
// when the input is exhausted.
func (p *Parser) Next() (Value, error) {
	return p.parseValue()
}

// Peek at the next character.
func (p *Parser) peekChar() (rune, bool) {
	if p.pos < len(p.src) {
		return p.src[p.pos], true
	}
	return 0, false
}

// Get the next character. Only printable ASCII is permitted; NTCIP
// 1203 mentions Extended ASCII (code page 437) -- don't do it!
func (p *Parser) nextChar() (rune, bool, error) {
	if p.pos >= len(p.src) {
		return 0, false, nil
	}
	c := p.src[p.pos]
	p.pos++
	if c < ' ' || c > '~' {
		return 0, false, CharacterNotDefined(c)
	}
	return c, true, nil
}

// Parse a tag starting at the current position.
func (p *Parser) parseTagBody() (Value, error) {
	var sb strings.Builder
	for {
		c, ok, err := p.nextChar()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, UnsupportedTag(sb.String())
		}
		switch c {
		case '[':
			return nil, UnsupportedTagValue(sb.String())
		case ']':
			return parseTag(sb.String())
		default:
			sb.WriteRune(c)
		}
	}
}

// Parse a value at the current position.
func (p *Parser) parseValue() (Value, error) {
	if p.tag {
		p.tag = false
		return p.parseTagBody()
	}
	var sb strings.Builder
	for {
		c, ok, err := p.nextChar()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if c == '[' {
			if n, ok := p.peekChar(); ok && n == '[' {
				p.pos++
			} else if sb.Len() > 0 {
				p.tag = true
				break
			} else {
				return p.parseTagBody()
			}
		} else if c == ']' {
			if n, ok := p.peekChar(); ok && n == ']' {
				p.pos++
			} else {
				return nil, UnsupportedTag(sb.String())
			}
		}
		sb.WriteRune(c)
	}
	if sb.Len() > 0 {
		return Text(sb.String()), nil
	}
	return nil, nil
}

// Normalize tokenizes a MULTI string, drops all erroneous items and
// re-emits the canonical form of each value. The result is idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(ms string) string {
	var sb strings.Builder
	sb.Grow(len(ms))
	p := NewParser(ms)
	for {
		v, err := p.Next()
		if v == nil && err == nil {
			return sb.String()
		}
		if v != nil {
			sb.WriteString(v.String())
		}
	}
}

func parseUint8(s string) (uint8, bool) {
	v, err := strconv.ParseUint(s, 10, 8)
	return uint8(v), err == nil
}

func parseUint16(s string) (uint16, bool) {
	v, err := strconv.ParseUint(s, 10, 16)
	return uint16(v), err == nil
}

func parseUint32(s string) (uint32, bool) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err == nil
}

// Parse an optional uint8 field. A missing or empty field is nil.
func parseOptional8(fs []string, i int) (*uint8, bool) {
	if i >= len(fs) || fs[i] == "" {
		return nil, true
	}
	v, ok := parseUint8(fs[i])
	if !ok {
		return nil, false
	}
	return &v, true
}

// Parse an optional uint8 field ranging from 0 to 99.
func parseOptional99(fs []string, i int) (*uint8, bool) {
	v, ok := parseOptional8(fs, i)
	if !ok || (v != nil && *v > 99) {
		return nil, false
	}
	return v, true
}

// Parse a version ID field: exactly four hexadecimal digits.
func parseVersionID(fs []string, i int) (*uint16, bool) {
	if i >= len(fs) {
		return nil, true
	}
	if len(fs[i]) != 4 {
		return nil, false
	}
	v, err := strconv.ParseUint(fs[i], 16, 16)
	if err != nil {
		return nil, false
	}
	vid := uint16(v)
	return &vid, true
}

// Parse a color from tag parameters: either one legacy value or an
// RGB triple.
func parseColor(fs []string) (Color, bool) {
	switch len(fs) {
	case 1:
		if v, ok := parseUint8(fs[0]); ok {
			return Legacy(v), true
		}
	case 3:
		r, okR := parseUint8(fs[0])
		g, okG := parseUint8(fs[1])
		b, okB := parseUint8(fs[2])
		if okR && okG && okB {
			return RGB{R: r, G: g, B: b}, true
		}
	}
	return nil, false
}

// Parse a rectangle from the first four tag parameters.
func parseRectangle(fs []string) (Rectangle, bool) {
	if len(fs) < 4 {
		return Rectangle{}, false
	}
	x, okX := parseUint16(fs[0])
	y, okY := parseUint16(fs[1])
	w, okW := parseUint16(fs[2])
	h, okH := parseUint16(fs[3])
	if okX && okY && okW && okH && x > 0 && y > 0 {
		return NewRectangle(x, y, w, h), true
	}
	return Rectangle{}, false
}

// Parse a Color -- Background tag [cb].
func parseColorBackground(tag string) (Value, bool) {
	if len(tag) > 2 {
		// 1203 specifies a numeric value between 0 and 999,
		// but anything above 255 does not make sense
		n, ok := parseUint8(tag[2:])
		if !ok {
			return nil, false
		}
		return ColorBackground{Color: Legacy(n)}, true
	}
	return ColorBackground{}, true
}

// Parse a Page -- Background tag [pb].
func parsePageBackground(tag string) (Value, bool) {
	if len(tag) > 2 {
		c, ok := parseColor(strings.Split(tag[2:], ","))
		if !ok {
			return nil, false
		}
		return PageBackground{Color: c}, true
	}
	return PageBackground{}, true
}

// Parse a Color -- Foreground tag [cf].
func parseColorForeground(tag string) (Value, bool) {
	if len(tag) > 2 {
		c, ok := parseColor(strings.Split(tag[2:], ","))
		if !ok {
			return nil, false
		}
		return ColorForeground{Color: c}, true
	}
	return ColorForeground{}, true
}

// Parse a Color Rectangle tag [cr].
func parseColorRectangle(tag string) (Value, bool) {
	fs := strings.SplitN(tag[2:], ",", 7)
	r, okR := parseRectangle(fs)
	if !okR {
		return nil, false
	}
	c, okC := parseColor(fs[4:])
	if !okC {
		return nil, false
	}
	return ColorRectangle{Rect: r, Color: c}, true
}

// Parse a Field tag [f].
func parseField(tag string) (Value, bool) {
	fs := strings.SplitN(tag[1:], ",", 2)
	id, ok := parseUint8(fs[0])
	if !ok || id >= 100 {
		return nil, false
	}
	w, ok := parseOptional8(fs, 1)
	if !ok {
		return nil, false
	}
	return Field{ID: id, Width: w}, true
}

// Parse a Flash time tag [fl].
func parseFlashTime(tag string) (Value, bool) {
	if len(tag) > 2 {
		v := tag[2:]
		switch v[:1] {
		case "t":
			return parseFlashOn(v[1:])
		case "o":
			return parseFlashOff(v[1:])
		}
		return nil, false
	}
	return Flash{Order: FlashOnOff}, true
}

// Parse a flash on -> off tag fragment.
func parseFlashOn(v string) (Value, bool) {
	fs := strings.SplitN(v, "o", 2)
	t, okT := parseOptional99(fs, 0)
	o, okO := parseOptional99(fs, 1)
	if !okT || !okO {
		return nil, false
	}
	return Flash{Order: FlashOnOff, On: t, Off: o}, true
}

// Parse a flash off -> on tag fragment.
func parseFlashOff(v string) (Value, bool) {
	fs := strings.SplitN(v, "t", 2)
	o, okO := parseOptional99(fs, 0)
	t, okT := parseOptional99(fs, 1)
	if !okO || !okT {
		return nil, false
	}
	return Flash{Order: FlashOffOn, On: t, Off: o}, true
}

// Parse a flash end tag [/fl].
func parseFlashEnd(tag string) (Value, bool) {
	if len(tag) == 3 {
		return FlashEnd{}, true
	}
	return nil, false
}

// Parse a Font tag [fo].
func parseFont(tag string) (Value, bool) {
	if len(tag) > 2 {
		fs := strings.SplitN(tag[2:], ",", 2)
		n, okN := parseUint8(fs[0])
		if !okN || n == 0 {
			return nil, false
		}
		vid, okV := parseVersionID(fs, 1)
		if !okV {
			return nil, false
		}
		return Font{Number: n, Version: vid}, true
	}
	return Font{}, true
}

// Parse a Graphic tag [g].
func parseGraphic(tag string) (Value, bool) {
	fs := strings.SplitN(tag[1:], ",", 4)
	n, okN := parseUint8(fs[0])
	if !okN || n == 0 {
		return nil, false
	}
	switch len(fs) {
	case 1:
		return Graphic{Number: n}, true
	case 3, 4:
		x, okX := parseUint16(fs[1])
		y, okY := parseUint16(fs[2])
		if !okX || !okY || x == 0 || y == 0 {
			return nil, false
		}
		vid, okV := parseVersionID(fs, 3)
		if !okV {
			return nil, false
		}
		return Graphic{Number: n, X: x, Y: y, Version: vid}, true
	}
	return nil, false
}

// Parse a hexadecimal character tag [hc]. The value may be 1 to 4
// hexadecimal digits.
func parseHexadecimalCharacter(tag string) (Value, bool) {
	v, err := strconv.ParseUint(tag[2:], 16, 16)
	if err != nil {
		return nil, false
	}
	return HexadecimalCharacter(v), true
}

// Parse a Justification -- Line tag [jl].
func parseJustificationLine(tag string) (Value, bool) {
	if len(tag) > 2 {
		jl := LineJustificationFromString(tag[2:])
		if jl == LineJustNone {
			return nil, false
		}
		return JustificationLine{Just: jl}, true
	}
	return JustificationLine{}, true
}

// Parse a Justification -- Page tag [jp].
func parseJustificationPage(tag string) (Value, bool) {
	if len(tag) > 2 {
		jp := PageJustificationFromString(tag[2:])
		if jp == PageJustNone {
			return nil, false
		}
		return JustificationPage{Just: jp}, true
	}
	return JustificationPage{}, true
}

// Parse a Manufacturer Specific tag [ms].
func parseManufacturerSpecific(tag string) (Value, bool) {
	fs := strings.SplitN(tag[2:], ",", 2)
	m, ok := parseUint32(fs[0])
	if !ok {
		return nil, false
	}
	if len(fs) > 1 {
		t := fs[1]
		return ManufacturerSpecific{Code: m, Tag: &t}, true
	}
	return ManufacturerSpecific{Code: m}, true
}

// Parse a Manufacturer Specific end tag [/ms].
func parseManufacturerSpecificEnd(tag string) (Value, bool) {
	fs := strings.SplitN(tag[3:], ",", 2)
	m, ok := parseUint32(fs[0])
	if !ok {
		return nil, false
	}
	if len(fs) > 1 {
		t := fs[1]
		return ManufacturerSpecificEnd{Code: m, Tag: &t}, true
	}
	return ManufacturerSpecificEnd{Code: m}, true
}

// Parse a Moving text tag [mv].
func parseMovingText(tag string) (Value, bool) {
	if len(tag) > 2 {
		t := tag[3:]
		switch tag[2:3] {
		case "c", "C":
			return parseMovingTextMode(t, MovingTextMode{})
		case "l", "L":
			return parseMovingTextLinear(t)
		}
	}
	return nil, false
}

// Parse a moving text linear fragment.
func parseMovingTextLinear(tag string) (Value, bool) {
	if len(tag) > 0 {
		if i, ok := parseUint8(tag[:1]); ok {
			return parseMovingTextMode(tag[1:],
				MovingTextMode{Linear: true, Exit: i})
		}
		return parseMovingTextMode(tag, MovingTextMode{Linear: true})
	}
	return nil, false
}

// Parse a moving text mode fragment.
func parseMovingTextMode(tag string, m MovingTextMode) (Value, bool) {
	if len(tag) == 0 {
		return nil, false
	}
	var d MovingTextDirection
	switch tag[:1] {
	case "l", "L":
		d = MovingLeft
	case "r", "R":
		d = MovingRight
	default:
		return nil, false
	}
	fs := strings.SplitN(tag[1:], ",", 4)
	if len(fs) < 4 {
		return nil, false
	}
	w, okW := parseUint16(fs[0])
	s, okS := parseUint8(fs[1])
	r, okR := parseUint8(fs[2])
	if !okW || !okS || !okR {
		return nil, false
	}
	return MovingText{
		Mode:      m,
		Direction: d,
		Width:     w,
		Space:     s,
		Rate:      r,
		Text:      fs[3],
	}, true
}

// Parse a New Line tag [nl]. 1203 only specifies a single digit
// parameter (0-9).
func parseNewLine(tag string) (Value, bool) {
	switch len(tag) {
	case 2:
		return NewLine{}, true
	case 3:
		n, ok := parseUint8(tag[2:])
		if !ok {
			return nil, false
		}
		return NewLine{Spacing: &n}, true
	}
	return nil, false
}

// Parse a New Page tag [np].
func parseNewPage(tag string) (Value, bool) {
	if len(tag) == 2 {
		return NewPage{}, true
	}
	return nil, false
}

// Parse a Page Time tag [pt].
func parsePageTime(tag string) (Value, bool) {
	fs := strings.SplitN(tag[2:], "o", 2)
	on, okOn := parseOptional8(fs, 0)
	off, okOff := parseOptional8(fs, 1)
	if !okOn || !okOff {
		return nil, false
	}
	return PageTime{On: on, Off: off}, true
}

// Parse a Spacing -- Character tag [sc].
func parseSpacingCharacter(tag string) (Value, bool) {
	s, ok := parseUint8(tag[2:])
	if !ok || s >= 100 {
		return nil, false
	}
	return SpacingCharacter(s), true
}

// Parse a Spacing -- Character end tag [/sc].
func parseSpacingCharacterEnd(tag string) (Value, bool) {
	if len(tag) == 3 {
		return SpacingCharacterEnd{}, true
	}
	return nil, false
}

// Parse a Text Rectangle tag [tr].
func parseTextRectangle(tag string) (Value, bool) {
	fs := strings.SplitN(tag[2:], ",", 4)
	r, ok := parseRectangle(fs)
	if !ok {
		return nil, false
	}
	return TextRectangle{Rect: r}, true
}

// Parse a tag body (without brackets). Errors carry the original tag
// text with case preserved.
func parseTag(tag string) (Value, error) {
	t := strings.ToLower(tag)
	var v Value
	var ok bool
	// Sorted by most likely occurrence
	switch {
	case strings.HasPrefix(t, "nl"):
		v, ok = parseNewLine(t)
	case strings.HasPrefix(t, "np"):
		v, ok = parseNewPage(t)
	case strings.HasPrefix(t, "fo"):
		v, ok = parseFont(t)
	case strings.HasPrefix(t, "jl"):
		v, ok = parseJustificationLine(t)
	case strings.HasPrefix(t, "jp"):
		v, ok = parseJustificationPage(t)
	case strings.HasPrefix(t, "pt"):
		v, ok = parsePageTime(t)
	case strings.HasPrefix(t, "pb"):
		v, ok = parsePageBackground(t)
	case strings.HasPrefix(t, "cf"):
		v, ok = parseColorForeground(t)
	case strings.HasPrefix(t, "cr"):
		v, ok = parseColorRectangle(t)
	case strings.HasPrefix(t, "tr"):
		v, ok = parseTextRectangle(t)
	case strings.HasPrefix(t, "cb"):
		v, ok = parseColorBackground(t)
	case strings.HasPrefix(t, "g"):
		v, ok = parseGraphic(tag)
	case strings.HasPrefix(t, "sc"):
		v, ok = parseSpacingCharacter(t)
	case strings.HasPrefix(t, "/sc"):
		v, ok = parseSpacingCharacterEnd(tag)
	case strings.HasPrefix(t, "hc"):
		v, ok = parseHexadecimalCharacter(t)
	case strings.HasPrefix(t, "fl"):
		v, ok = parseFlashTime(t)
	case strings.HasPrefix(t, "/fl"):
		v, ok = parseFlashEnd(tag)
	case strings.HasPrefix(t, "f") && !strings.HasPrefix(t, "fe"):
		// Don't treat "fe" as a field tag -- this allows handling
		// non-MULTI tags (e.g. [feedx]) properly with UnsupportedTag.
		v, ok = parseField(tag)
	case strings.HasPrefix(t, "mv"):
		v, ok = parseMovingText(tag)
	case strings.HasPrefix(t, "ms"):
		v, ok = parseManufacturerSpecific(tag)
	case strings.HasPrefix(t, "/ms"):
		v, ok = parseManufacturerSpecificEnd(tag)
	default:
		return nil, UnsupportedTag(tag)
	}
	if !ok {
		return nil, UnsupportedTagValue(tag)
	}
	return v, nil
}
