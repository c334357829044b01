// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mnit-rtmc/iris-sub000/multi"
)

func makeFullMatrix() State {
	return NewState(
		multi.NewColorCtx(multi.SchemeColor24Bit,
			multi.ClassicWhite.RGB(), multi.ClassicBlack.RGB()),
		0, 0,
		20, 0,
		multi.NewRectangle(1, 1, 60, 30),
		multi.PageJustTop,
		multi.LineJustLeft,
		FontRef{Number: 1})
}

func makeCharMatrix() State {
	return NewState(
		multi.NewColorCtx(multi.SchemeMonochrome1Bit,
			multi.ClassicWhite.RGB(), multi.ClassicBlack.RGB()),
		5, 7,
		20, 0,
		multi.NewRectangle(1, 1, 100, 21),
		multi.PageJustTop,
		multi.LineJustLeft,
		FontRef{Number: 1})
}

// countPages drains a splitter, requiring every page to be valid.
func countPages(t *testing.T, rs State, ms string) int {
	t.Helper()
	n := 0
	ps := NewPageSplitter(rs, ms)
	for {
		page, err := ps.Next()
		require.NoError(t, err)
		if page == nil {
			return n
		}
		n++
	}
}

func TestPageCount(t *testing.T) {
	rs := makeFullMatrix()
	cases := []struct {
		ms    string
		pages int
	}{
		{"", 1},
		{"1", 1},
		{"[np]", 2},
		{"1[NP]", 2},
		{"1[Np]2", 2},
		{"1[np]2[nP]", 3},
		{"[fo6][nl][jl2][cf255,255,255]RAMP A[jl4][cf255,255,0]FULL[nl]" +
			"[jl2][cf255,255,255]RAMP B[jl4][cf255,255,0]FULL[nl]" +
			"[jl2][cf255,255,255]RAMP C[jl4][cf255,255,0]FULL", 1},
	}
	for _, c := range cases {
		if got := countPages(t, rs, c.ms); got != c.pages {
			t.Errorf("pages of %q: got=%d, want=%d", c.ms, got, c.pages)
		}
	}
}

func TestPageDefaultState(t *testing.T) {
	ps := NewPageSplitter(makeFullMatrix(), "")
	page, err := ps.Next()
	require.NoError(t, err)
	rs := page.State()
	require.Equal(t, multi.SchemeColor24Bit, rs.colorCtx.Scheme())
	require.Equal(t, multi.ClassicWhite.RGB(), rs.foregroundRGB())
	require.Equal(t, multi.ClassicBlack.RGB(), rs.backgroundRGB())
	require.Equal(t, uint8(20), rs.pageOnTimeDS)
	require.Equal(t, uint8(0), rs.pageOffTimeDS)
	require.Equal(t, multi.NewRectangle(1, 1, 60, 30), rs.textRectangle)
	require.Equal(t, multi.PageJustTop, rs.justPage)
	require.Equal(t, multi.LineJustLeft, rs.justLine)
	require.Nil(t, rs.lineSpacing)
	require.Nil(t, rs.charSpacing)
	require.Equal(t, uint8(0), rs.charWidth)
	require.Equal(t, uint8(0), rs.charHeight)
	require.Equal(t, FontRef{Number: 1}, rs.font)
	page, err = ps.Next()
	require.NoError(t, err)
	require.Nil(t, page)
}

func TestPageFullMatrix(t *testing.T) {
	ps := NewPageSplitter(makeFullMatrix(),
		"[pt10o2][cb9][pb5][cf3][jp3][jl4][tr1,1,10,10][nl4][fo3,1234]"+
			"[sc2][np][pb][pt][cb][/sc]")
	page, err := ps.Next()
	require.NoError(t, err)
	rs := page.State()
	// [cf3] changes only the splitter state, not the page start state
	require.Equal(t, multi.ClassicWhite.RGB(), rs.foregroundRGB())
	// [pb5] reaches back into the page start state
	require.Equal(t, multi.ClassicBlue.RGB(), rs.backgroundRGB())
	require.Equal(t, uint8(10), rs.pageOnTimeDS)
	require.Equal(t, uint8(2), rs.pageOffTimeDS)
	require.Equal(t, multi.NewRectangle(1, 1, 60, 30), rs.textRectangle)
	require.Equal(t, multi.PageJustTop, rs.justPage)
	require.Equal(t, multi.LineJustLeft, rs.justLine)
	require.Nil(t, rs.lineSpacing)
	require.Nil(t, rs.charSpacing)
	require.Equal(t, FontRef{Number: 1}, rs.font)

	page, err = ps.Next()
	require.NoError(t, err)
	rs = page.State()
	require.Equal(t, multi.ClassicGreen.RGB(), rs.foregroundRGB())
	require.Equal(t, multi.ClassicBlack.RGB(), rs.backgroundRGB())
	require.Equal(t, uint8(20), rs.pageOnTimeDS)
	require.Equal(t, uint8(0), rs.pageOffTimeDS)
	require.Equal(t, multi.NewRectangle(1, 1, 60, 30), rs.textRectangle)
	require.Equal(t, multi.PageJustMiddle, rs.justPage)
	require.Equal(t, multi.LineJustRight, rs.justLine)
	require.Nil(t, rs.lineSpacing)
	require.NotNil(t, rs.charSpacing)
	require.Equal(t, uint8(2), *rs.charSpacing)
	vid := uint16(0x1234)
	require.Equal(t, FontRef{Number: 3, Version: &vid}, rs.font)

	page, err = ps.Next()
	require.NoError(t, err)
	require.Nil(t, page)
}

func TestPageCharMatrix(t *testing.T) {
	rs := makeCharMatrix()
	cases := []struct {
		ms string
		ok bool
	}{
		{"[tr1,1,12,12]", false}, // width not a multiple of 5
		{"[tr1,1,50,12]", false}, // height not a multiple of 7
		{"[tr1,1,12,14]", false},
		{"[tr1,1,50,14]", true},
		{"[pb9]", false}, // legacy 9 out of range for monochrome 1-bit
		{"[nl5]", false}, // spacing override needs a full-matrix sign
		{"[sc1]", false},
		{"[/sc]", false},
	}
	for _, c := range cases {
		ps := NewPageSplitter(rs, c.ms)
		_, err := ps.Next()
		if c.ok {
			require.NoError(t, err, c.ms)
			continue
		}
		var serr multi.SyntaxError
		require.ErrorAs(t, err, &serr, c.ms)
	}
}

func TestSplitterErrors(t *testing.T) {
	rs := makeFullMatrix()
	cases := []struct {
		ms   string
		want error
	}{
		{"[f1]", multi.UnsupportedTag("[f1]")},
		{"[flt5o5]", multi.UnsupportedTag("[flt5o5]")},
		{"[/fl]", multi.UnsupportedTag("[/fl]")},
		{"[mvcl100,1,10,Text]", multi.UnsupportedTag("[mvcl100,1,10,Text]")},
		{"[ms1,Test]", multi.UnsupportedTag("[ms1,Test]")},
		{"[jl1]", multi.UnsupportedTagValue("[jl1]")},
		{"[jl5]", multi.UnsupportedTagValue("[jl5]")},
		{"[jp1]", multi.UnsupportedTagValue("[jp1]")},
		{"[hcd912]", multi.UnsupportedTagValue("[hcd912]")},
		{"[tr1,1,61,30]", multi.UnsupportedTagValue("[tr1,1,61,30]")},
		{"[jp4]UP[jp2]DOWN", multi.TagConflict()},
		{"[jl4]RIGHT[jl2]LEFT", multi.TagConflict()},
		{"\x07", multi.CharacterNotDefined('\x07')},
	}
	for _, c := range cases {
		ps := NewPageSplitter(rs, c.ms)
		_, err := ps.Next()
		require.Equal(t, c.want, err, c.ms)
	}
}

func TestSplitterHexChar(t *testing.T) {
	ps := NewPageSplitter(makeFullMatrix(), "A[hc42]C")
	page, err := ps.Next()
	require.NoError(t, err)
	require.Len(t, page.spans, 3)
	require.Equal(t, "A", page.spans[0].text)
	require.Equal(t, "B", page.spans[1].text)
	require.Equal(t, "C", page.spans[2].text)
	require.Equal(t, uint8(0), page.spans[0].state.spanNumber)
	require.Equal(t, uint8(1), page.spans[1].state.spanNumber)
	require.Equal(t, uint8(2), page.spans[2].state.spanNumber)
}

func TestSplitterBlankLines(t *testing.T) {
	ps := NewPageSplitter(makeFullMatrix(), "A[nl][nl]B")
	page, err := ps.Next()
	require.NoError(t, err)
	// the second [nl] inserts an empty span so the blank line takes
	// vertical space
	require.Len(t, page.spans, 3)
	require.Equal(t, "A", page.spans[0].text)
	require.Equal(t, "", page.spans[1].text)
	require.Equal(t, uint8(1), page.spans[1].state.lineNumber)
	require.Equal(t, "B", page.spans[2].text)
	require.Equal(t, uint8(2), page.spans[2].state.lineNumber)
}

func TestSplitterTextRectangle(t *testing.T) {
	ps := NewPageSplitter(makeFullMatrix(), "[tr5,5,0,0]A")
	page, err := ps.Next()
	require.NoError(t, err)
	require.Len(t, page.spans, 1)
	// zero extents reach the default rectangle's edges
	require.Equal(t, multi.NewRectangle(5, 5, 56, 26),
		page.spans[0].state.textRectangle)
	// the page start state keeps the default rectangle
	require.Equal(t, multi.NewRectangle(1, 1, 60, 30),
		page.State().textRectangle)
}

func TestSplitterColorRectangleContext(t *testing.T) {
	ps := NewPageSplitter(makeFullMatrix(),
		"[cf255,0,0][cr1,1,10,10,5]AFTER")
	page, err := ps.Next()
	require.NoError(t, err)
	require.Len(t, page.values, 1)
	// the rectangle color is captured as the placed foreground
	require.Equal(t, multi.ClassicBlue.RGB(), page.values[0].ctx.Foreground())
	// ... without disturbing the current foreground
	require.Equal(t, multi.RGB{R: 255},
		page.spans[0].state.foregroundRGB())
}
