package multi

import "fmt"

// ErrCode classifies a MULTI syntax error, using the error terminology
// of NTCIP 1203 dmsMultiSyntaxError.
type ErrCode uint8

// Syntax error codes. Several codes are defined for compatibility with
// the MULTI specification but are never produced here.
const (
	ErrOther ErrCode = iota
	ErrUnsupportedTag
	ErrUnsupportedTagValue
	ErrTextTooBig
	ErrFontNotDefined
	ErrCharacterNotDefined
	ErrFieldDeviceNotExist
	ErrFieldDeviceError
	ErrFlashRegionError
	ErrTagConflict
	ErrTooManyPages
	ErrFontVersionID
	ErrGraphicID
	ErrGraphicNotDefined
)

func (c ErrCode) String() string {
	switch c {
	case ErrUnsupportedTag:
		return "unsupportedTag"
	case ErrUnsupportedTagValue:
		return "unsupportedTagValue"
	case ErrTextTooBig:
		return "textTooBig"
	case ErrFontNotDefined:
		return "fontNotDefined"
	case ErrCharacterNotDefined:
		return "characterNotDefined"
	case ErrFieldDeviceNotExist:
		return "fieldDeviceNotExist"
	case ErrFieldDeviceError:
		return "fieldDeviceError"
	case ErrFlashRegionError:
		return "flashRegionError"
	case ErrTagConflict:
		return "tagConflict"
	case ErrTooManyPages:
		return "tooManyPages"
	case ErrFontVersionID:
		return "fontVersionID"
	case ErrGraphicID:
		return "graphicID"
	case ErrGraphicNotDefined:
		return "graphicNotDefined"
	}
	return "other"
}

// SyntaxError is an error encountered while parsing or rendering a
// MULTI string. It is a comparable value so callers can match specific
// errors with ==.
type SyntaxError struct {
	Code ErrCode
	// Tag is the offending tag body or text run, if any.
	Tag string
	// Char is the offending character for ErrCharacterNotDefined.
	Char rune
	// Number is the font or graphic number for ErrFontNotDefined and
	// ErrGraphicNotDefined.
	Number uint8
}

func (e SyntaxError) Error() string {
	switch e.Code {
	case ErrCharacterNotDefined:
		return fmt.Sprintf("syntaxError: %s %q", e.Code, e.Char)
	case ErrFontNotDefined, ErrGraphicNotDefined:
		return fmt.Sprintf("syntaxError: %s %d", e.Code, e.Number)
	}
	if e.Tag != "" {
		return fmt.Sprintf("syntaxError: %s %q", e.Code, e.Tag)
	}
	return fmt.Sprintf("syntaxError: %s", e.Code)
}

// UnsupportedTag creates an error for an unrecognized tag.
func UnsupportedTag(tag string) SyntaxError {
	return SyntaxError{Code: ErrUnsupportedTag, Tag: tag}
}

// UnsupportedTagValue creates an error for a tag with an invalid value.
func UnsupportedTagValue(tag string) SyntaxError {
	return SyntaxError{Code: ErrUnsupportedTagValue, Tag: tag}
}

// TextTooBig creates an error for text exceeding its rectangle.
func TextTooBig() SyntaxError {
	return SyntaxError{Code: ErrTextTooBig}
}

// FontNotDefined creates an error for a missing font.
func FontNotDefined(num uint8) SyntaxError {
	return SyntaxError{Code: ErrFontNotDefined, Number: num}
}

// CharacterNotDefined creates an error for a character outside the
// permitted set.
func CharacterNotDefined(c rune) SyntaxError {
	return SyntaxError{Code: ErrCharacterNotDefined, Char: c}
}

// TagConflict creates an error for conflicting justification tags.
func TagConflict() SyntaxError {
	return SyntaxError{Code: ErrTagConflict}
}

// GraphicNotDefined creates an error for a missing graphic.
func GraphicNotDefined(num uint8) SyntaxError {
	return SyntaxError{Code: ErrGraphicNotDefined, Number: num}
}
