// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"bytes"
	"image/gif"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mnit-rtmc/iris-sub000/multi"
)

func TestLoadSignConfigs(t *testing.T) {
	const doc = `[{
		"name": "cfg_1",
		"face_width": 2500,
		"face_height": 350,
		"border_horiz": 25,
		"border_vert": 25,
		"pitch_horiz": 49,
		"pitch_vert": 43,
		"pixel_width": 50,
		"pixel_height": 7,
		"char_width": 0,
		"char_height": 0,
		"monochrome_foreground": 16764928,
		"monochrome_background": 0,
		"color_scheme": "monochrome1Bit",
		"default_font": "07_full"
	}]`
	configs, err := LoadSignConfigs(strings.NewReader(doc))
	require.NoError(t, err)
	cfg, ok := configs["cfg_1"]
	require.True(t, ok)
	require.Equal(t, 50, cfg.PixelWidth)
	require.Equal(t, uint32(0xFFD000), cfg.MonochromeForeground)
	require.Equal(t, "07_full", cfg.DefaultFont)
}

func TestDefaults(t *testing.T) {
	d := Defaults{}
	require.Equal(t, uint8(20), d.pageOnTimeDS())
	require.Equal(t, uint8(1), d.fontNumber())
	st := DefaultState(testConfig(), d)
	require.Equal(t, uint8(20), st.pageOnTimeDS)
	require.Equal(t, uint8(0), st.pageOffTimeDS)
	require.Equal(t, "1,1,50,7", st.textRectangle.String())
	require.False(t, st.isCharMatrix())
}

func signDefaults() Defaults {
	return Defaults{
		JustPage: multi.PageJustTop,
		JustLine: multi.LineJustLeft,
	}
}

func TestRenderFrames(t *testing.T) {
	cfg := testConfig()
	fonts := NewFontCache()
	require.NoError(t, fonts.Insert(testFont(1)))
	graphics := NewGraphicCache()

	// page times persist across [np] until reset by a bare [pt]
	frames, palette, err := RenderFrames(cfg, "[pt5o3]HI[np][pt]BYE", fonts,
		graphics, signDefaults())
	require.NoError(t, err)
	// page 1 on, page 1 off, page 2 on
	require.Len(t, frames, 3)
	require.Equal(t, 50, frames[0].DelayCS)
	require.Equal(t, 30, frames[1].DelayCS)
	require.Equal(t, 200, frames[2].DelayCS)
	require.Greater(t, palette.Len(), 1)
	w, h := cfg.CalculateSize()
	for _, f := range frames {
		require.Equal(t, w, f.Face.Width())
		require.Equal(t, h, f.Face.Height())
	}
}

func TestRenderFramesError(t *testing.T) {
	cfg := testConfig()
	fonts := NewFontCache()
	require.NoError(t, fonts.Insert(testFont(1)))
	_, _, err := RenderFrames(cfg, "[bogus]", fonts, NewGraphicCache(),
		signDefaults())
	require.Error(t, err)
}

func TestRenderSignMessageGif(t *testing.T) {
	cfg := testConfig()
	fonts := NewFontCache()
	require.NoError(t, fonts.Insert(testFont(1)))
	graphics := NewGraphicCache()

	var buf bytes.Buffer
	err := RenderSignMessage(&buf, cfg, "[pt5o3]HI[np][pt]BYE", fonts,
		graphics, signDefaults())
	require.NoError(t, err)

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, 3)
	require.Equal(t, []int{50, 30, 200}, g.Delay)
	require.Equal(t, 0, g.LoopCount)
	w, h := cfg.CalculateSize()
	require.Equal(t, w, g.Config.Width)
	require.Equal(t, h, g.Config.Height)
	require.Equal(t, w, g.Image[0].Rect.Dx())
	require.Equal(t, h, g.Image[0].Rect.Dy())
}

func TestRenderSignMessageSingleFrame(t *testing.T) {
	cfg := testConfig()
	fonts := NewFontCache()
	require.NoError(t, fonts.Insert(testFont(1)))

	var buf bytes.Buffer
	err := RenderSignMessage(&buf, cfg, "HI", fonts, NewGraphicCache(),
		signDefaults())
	require.NoError(t, err)
	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, 1)
	require.Equal(t, []int{200}, g.Delay)
}

func TestSignMessageRender(t *testing.T) {
	configs := map[string]*SignConfig{"cfg_1": testConfig()}
	fonts := NewFontCache()
	require.NoError(t, fonts.Insert(testFont(1)))
	msgs, err := LoadSignMessages(strings.NewReader(`[{
		"name": "msg_1",
		"sign_config": "cfg_1",
		"multi": "HI",
		"beacon_enabled": false,
		"prefix_page": false,
		"msg_priority": 1,
		"sources": "operator"
	}]`))
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	var buf bytes.Buffer
	err = msgs[0].Render(&buf, configs, fonts, NewGraphicCache(),
		signDefaults())
	require.NoError(t, err)
	require.Positive(t, buf.Len())

	msgs[0].SignConfig = "missing"
	err = msgs[0].Render(&buf, configs, fonts, NewGraphicCache(), Defaults{})
	require.Error(t, err)
}
