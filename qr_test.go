// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/unixdj/qrcode/coding"
)

// capacity lists the largest number of bytes of text that fits
// versions 1 to 10 at each level in each mode.
var capacity = [4][3][10]int{
	L: {
		coding.Numeric:      {41, 77, 127, 187, 255, 322, 370, 461, 552, 652},
		coding.Alphanumeric: {25, 47, 77, 114, 154, 195, 224, 279, 335, 395},
		coding.Byte:         {17, 32, 53, 78, 106, 134, 154, 192, 230, 271},
	},
	M: {
		coding.Numeric:      {34, 63, 101, 149, 202, 255, 293, 365, 432, 513},
		coding.Alphanumeric: {20, 38, 61, 90, 122, 154, 178, 221, 262, 311},
		coding.Byte:         {14, 26, 42, 62, 84, 106, 122, 152, 180, 213},
	},
	Q: {
		coding.Numeric:      {27, 48, 77, 111, 144, 178, 207, 259, 312, 364},
		coding.Alphanumeric: {16, 29, 47, 67, 87, 108, 125, 157, 189, 221},
		coding.Byte:         {11, 20, 32, 46, 60, 74, 86, 108, 130, 151},
	},
	H: {
		coding.Numeric:      {17, 34, 58, 82, 106, 139, 154, 202, 235, 288},
		coding.Alphanumeric: {10, 20, 35, 50, 64, 84, 93, 122, 143, 174},
		coding.Byte:         {7, 14, 24, 34, 44, 58, 64, 84, 98, 119},
	},
}

func TestMinVersion(t *testing.T) {
	for l := L; l <= H; l++ {
		for mode := coding.Numeric; mode <= coding.Byte; mode++ {
			for i, n := range capacity[l][mode] {
				v := coding.Version(i + 1)
				got, ok := MinVersion(mode, n, l)
				assert.True(t, ok)
				assert.Equal(t, v, got, "%v %v %d", l, mode, n)
				got, ok = MinVersion(mode, n+1, l)
				if v == coding.MaxVersion {
					assert.False(t, ok, "%v %v %d", l, mode, n+1)
				} else {
					assert.True(t, ok)
					assert.Equal(t, v+1, got, "%v %v %d", l, mode, n+1)
				}
			}
		}
	}
	_, ok := MinVersion(coding.Mode(3), 1, L)
	assert.False(t, ok)
}

func TestDetectMode(t *testing.T) {
	for _, tc := range []struct {
		text string
		want coding.Mode
	}{
		{"", coding.Numeric},
		{"0123456789", coding.Numeric},
		{"12A", coding.Alphanumeric},
		{"HELLO WORLD", coding.Alphanumeric},
		{"$%*+-./: ", coding.Alphanumeric},
		{"Hello", coding.Byte},
		{"123a", coding.Byte},
		{"ÅÄÖ", coding.Byte},
		{"A\x00", coding.Byte},
	} {
		assert.Equal(t, tc.want, DetectMode([]byte(tc.text)), "%q", tc.text)
	}
}

func TestSelectLevel(t *testing.T) {
	for _, tc := range []struct {
		text    string
		overlay bool
		l       Level
		v       coding.Version
	}{
		{"HELLO WORLD", false, H, 2},
		{"HELLO WORLD", true, H, 2},
		{strings.Repeat("a", 120), false, Q, 9},
		{strings.Repeat("a", 271), false, L, 10},
		{strings.Repeat("1", 652), false, L, 10},
		{strings.Repeat("1", 288), true, H, 10},
	} {
		l, v, err := SelectLevel([]byte(tc.text), tc.overlay)
		require.NoError(t, err)
		assert.Equal(t, tc.l, l, "%d bytes", len(tc.text))
		assert.Equal(t, tc.v, v, "%d bytes", len(tc.text))
	}
}

func TestCapacityError(t *testing.T) {
	for _, tc := range []struct {
		text    string
		overlay bool
		want    CapacityError
		msg     string
	}{
		{strings.Repeat("a", 275), false, CapacityError{275, 274, L},
			"qr: data too large: 275 bytes exceeds capacity of 274 bytes at level L"},
		{strings.Repeat("a", 120), true, CapacityError{120, 122, H},
			"qr: data too large: 120 bytes exceeds capacity of 122 bytes at level H"},
		{strings.Repeat("1", 653), false, CapacityError{653, 274, L},
			"qr: data too large: 653 bytes exceeds capacity of 274 bytes at level L"},
	} {
		_, err := EncodeString(tc.text, tc.overlay)
		var ce *CapacityError
		require.True(t, errors.As(err, &ce), "%v", err)
		assert.Equal(t, tc.want, *ce)
		assert.EqualError(t, err, tc.msg)
	}
}

func TestEncodeEmpty(t *testing.T) {
	_, err := Encode(nil, false)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = EncodeString("", true)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestEncode(t *testing.T) {
	c, err := EncodeString("HELLO WORLD", false)
	require.NoError(t, err)
	assert.Equal(t, coding.Version(2), c.Version)
	assert.Equal(t, H, c.Level)
	assert.Equal(t, coding.Alphanumeric, c.Mode)
	assert.Equal(t, 25, c.Size)
	require.Len(t, c.Modules, 25)

	cc, err := coding.Encode(2, coding.H,
		coding.Segment{Text: "HELLO WORLD", Mode: coding.Alphanumeric})
	require.NoError(t, err)
	assert.Equal(t, cc.Mask, c.Mask)
	assert.Equal(t, cc.Penalty(), c.Penalty())
	for y, row := range c.Modules {
		for x, v := range row {
			assert.Equal(t, cc.At(y, x), v)
			assert.Equal(t, v, c.Black(x, y))
		}
	}
	assert.False(t, c.Black(-1, 0))
	assert.False(t, c.Black(0, 25))
}

func TestEncodeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.SliceOfN(rapid.Byte(), 1, 271).Draw(t, "text")
		overlay := rapid.Bool().Draw(t, "overlay")
		c, err := Encode(text, overlay)
		if _, ok := MinVersion(DetectMode(text), len(text), H); overlay && !ok {
			var ce *CapacityError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, H, ce.Level)
			return
		}
		require.NoError(t, err)
		assert.Equal(t, 4*int(c.Version)+17, c.Size)
		require.Len(t, c.Modules, c.Size)
		for _, row := range c.Modules {
			require.Len(t, row, c.Size)
		}
		if overlay {
			assert.Equal(t, H, c.Level)
		}
		// the version is the smallest that fits at the level
		v, ok := MinVersion(c.Mode, len(text), c.Level)
		require.True(t, ok)
		assert.Equal(t, v, c.Version)
		// no higher level fits
		for l := c.Level + 1; l <= H; l++ {
			_, ok := MinVersion(c.Mode, len(text), l)
			assert.False(t, ok, "level %v", l)
		}

		c2, err := Encode(text, overlay)
		require.NoError(t, err)
		assert.Equal(t, c, c2)
	})
}

// decodePBM returns the pixels of a P4 image as rows of booleans.
func decodePBM(t *testing.T, b []byte) [][]bool {
	f := bytes.SplitN(b, []byte("\n"), 3)
	require.Len(t, f, 3)
	require.Equal(t, "P4", string(f[0]))
	var w, h int
	_, err := fmt.Sscan(string(f[1]), &w, &h)
	require.NoError(t, err)
	b = f[2]
	stride := (w + 7) / 8
	require.Len(t, b, stride*h)
	pix := make([][]bool, h)
	for y := range pix {
		pix[y] = make([]bool, w)
		for x := range pix[y] {
			pix[y][x] = b[y*stride+x/8]&(0x80>>(x%8)) != 0
		}
	}
	return pix
}

func TestEncodePBM(t *testing.T) {
	c, err := EncodeString("01234567", false)
	require.NoError(t, err)
	for _, tc := range []struct {
		scale, border int
		reverse       bool
	}{
		{1, 0, false}, {1, 4, false}, {3, 2, true}, {8, 4, false}, {5, 1, true},
	} {
		c.Scale, c.Border, c.Reverse = tc.scale, tc.border, tc.reverse
		var b bytes.Buffer
		require.NoError(t, c.EncodePBM(&b))
		pix := decodePBM(t, b.Bytes())
		require.Len(t, pix, (c.Size+2*tc.border)*tc.scale)
		for y, row := range pix {
			for x, v := range row {
				want := c.Black(x/tc.scale-tc.border, y/tc.scale-tc.border) != tc.reverse
				if v != want {
					t.Fatalf("%+v: pixel (%d,%d) is %v", tc, x, y, v)
				}
			}
		}
	}
	c.Scale = 0
	assert.ErrorIs(t, c.EncodePBM(&bytes.Buffer{}), ErrArgs)
}

func TestImage(t *testing.T) {
	c, err := EncodeString("HELLO WORLD", false)
	require.NoError(t, err)
	img := c.Image()
	require.NotNil(t, img)
	d := (25 + 8) * 8
	assert.Equal(t, d, img.Bounds().Dx())
	assert.True(t, img.ColorModel() == color.GrayModel)
	gray := func(x, y int) uint8 {
		return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
	}
	assert.Equal(t, uint8(0xff), gray(0, 0), "quiet zone")
	assert.Equal(t, uint8(0x00), gray(32, 32), "position box corner")
	assert.Equal(t, uint8(0xff), gray(32+8, 32+8), "position box ring")
	assert.Equal(t, uint8(0xff), gray(d, 0), "out of bounds")

	c.Reverse = true
	assert.Equal(t, uint8(0x00), gray(0, 0))
	assert.Equal(t, uint8(0xff), gray(32, 32))

	c.Border = -1
	assert.Nil(t, c.Image())
}

func TestString(t *testing.T) {
	c, err := EncodeString("HELLO WORLD", false)
	require.NoError(t, err)
	c.Border = 0
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	require.Len(t, lines, 13)
	for _, line := range lines {
		assert.Equal(t, 25, utf8.RuneCountInString(line))
	}
	assert.True(t, strings.HasPrefix(lines[0], "█▀▀▀▀▀█"), lines[0])
	// last line holds only the bottom row
	assert.True(t, strings.HasPrefix(lines[12], "▀▀▀▀▀▀▀ "), lines[12])

	c.Border = 1
	lines = strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	require.Len(t, lines, 14)
	assert.True(t, strings.HasPrefix(lines[0], " ▄▄▄▄▄▄▄ "), lines[0])

	var b strings.Builder
	require.NoError(t, c.EncodeText(&b))
	assert.Equal(t, c.String(), b.String())
	assert.ErrorIs(t, (&Code{}).EncodeText(&b), ErrArgs)
}
