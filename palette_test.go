// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mnit-rtmc/iris-sub000/multi"
)

func TestPaletteThresholdSchedule(t *testing.T) {
	cases := []struct {
		v    int
		want multi.RGB
	}{
		{0x00, multi.RGB{R: 0, G: 0, B: 0}},
		{0x0F, multi.RGB{R: 0, G: 0, B: 0}},
		{0x10, multi.RGB{R: 4, G: 4, B: 5}},
		{0x1E, multi.RGB{R: 4, G: 4, B: 5}},
		{0x1F, multi.RGB{R: 8, G: 8, B: 10}},
		{0x2E, multi.RGB{R: 12, G: 12, B: 15}},
		{0x3C, multi.RGB{R: 16, G: 16, B: 20}},
		{0x4A, multi.RGB{R: 20, G: 20, B: 25}},
		{0x57, multi.RGB{R: 24, G: 24, B: 30}},
		{0x64, multi.RGB{R: 28, G: 28, B: 35}},
		{0x70, multi.RGB{R: 32, G: 32, B: 40}},
		{0x7C, multi.RGB{R: 36, G: 36, B: 45}},
		{0x87, multi.RGB{R: 40, G: 40, B: 50}},
		{0x92, multi.RGB{R: 44, G: 44, B: 55}},
		{0x9C, multi.RGB{R: 48, G: 48, B: 60}},
		{0xA6, multi.RGB{R: 52, G: 52, B: 65}},
		{0xAF, multi.RGB{R: 56, G: 56, B: 70}},
		{0xB8, multi.RGB{R: 60, G: 60, B: 75}},
		{0xC0, multi.RGB{R: 64, G: 64, B: 80}},
		{0xC8, multi.RGB{R: 68, G: 68, B: 85}},
		{0xCF, multi.RGB{R: 72, G: 72, B: 90}},
		{0xD6, multi.RGB{R: 76, G: 76, B: 95}},
		{0xDC, multi.RGB{R: 80, G: 80, B: 100}},
		{0xE2, multi.RGB{R: 84, G: 84, B: 105}},
		{0xE7, multi.RGB{R: 88, G: 88, B: 110}},
		{0xEC, multi.RGB{R: 92, G: 92, B: 115}},
		{0xF0, multi.RGB{R: 96, G: 96, B: 120}},
		{0xF4, multi.RGB{R: 100, G: 100, B: 125}},
		{0xF7, multi.RGB{R: 104, G: 104, B: 130}},
		{0xFA, multi.RGB{R: 108, G: 108, B: 135}},
		{0xFC, multi.RGB{R: 112, G: 112, B: 140}},
		{0xFE, multi.RGB{R: 116, G: 116, B: 145}},
		{0xFF, multi.RGB{R: 120, G: 120, B: 150}},
	}
	for _, c := range cases {
		if got := paletteThreshold(c.v); got != c.want {
			t.Errorf("paletteThreshold(%#02x): got=%v, want=%v",
				c.v, got, c.want)
		}
	}
}

func TestPaletteSetEntry(t *testing.T) {
	p := NewPalette(256)
	i, ok := p.SetEntry(multi.RGB{})
	require.True(t, ok)
	require.Equal(t, uint8(0), i)
	require.Equal(t, 1, p.Len())

	// exact match with a zero threshold reuses the entry
	i, ok = p.SetEntry(multi.RGB{})
	require.True(t, ok)
	require.Equal(t, uint8(0), i)
	require.Equal(t, 1, p.Len())

	i, ok = p.SetEntry(multi.RGB{R: 255, G: 208})
	require.True(t, ok)
	require.Equal(t, uint8(1), i)

	e, ok := p.Entry(1)
	require.True(t, ok)
	require.Equal(t, multi.RGB{R: 255, G: 208}, e)
	_, ok = p.Entry(2)
	require.False(t, ok)
}

func TestPaletteMerging(t *testing.T) {
	p := NewPalette(256)
	// fill past 0x10 entries so the threshold becomes (4, 4, 5)
	for i := 0; i < 0x11; i++ {
		_, ok := p.SetEntry(multi.RGB{R: uint8(i * 12)})
		require.True(t, ok)
	}
	require.Equal(t, 0x11, p.Len())
	i, ok := p.SetEntry(multi.RGB{R: 3})
	require.True(t, ok)
	require.Equal(t, uint8(0), i)
	require.Equal(t, 0x11, p.Len())
}

func TestPaletteFull(t *testing.T) {
	p := NewPalette(2)
	p.SetEntry(multi.RGB{})
	p.SetEntry(multi.RGB{R: 100})
	_, ok := p.SetEntry(multi.RGB{B: 200})
	require.False(t, ok)
}

func TestPaletteColors(t *testing.T) {
	p := NewPalette(256)
	p.SetEntry(multi.RGB{})
	p.SetEntry(multi.RGB{R: 255, G: 208})
	pal := p.Colors()
	require.Len(t, pal, 2)
	r, g, b, a := pal[1].RGBA()
	require.Equal(t, uint32(0xFFFF), r)
	require.Equal(t, uint32(0xD0D0), g)
	require.Equal(t, uint32(0), b)
	require.Equal(t, uint32(0xFFFF), a)
}
