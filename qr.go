// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrcode encodes QR codes of versions 1 to 10.

Encode picks the encoding mode from the input, the highest error
correction level at which the data fits, and the smallest version at
that level.  The returned Code holds the module grid and the
parameters it was built with; image, PBM and text views of the code
are provided for convenience.
*/
package qrcode // import "github.com/unixdj/qrcode"

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/unixdj/qrcode/coding"
)

var (
	ErrEmpty = errors.New("qr: empty input")
	ErrArgs  = errors.New("qr: invalid arguments")
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string { return coding.Level(l).String() }

// A CapacityError reports data that does not fit a QR code of any
// supported version at the attempted level.
type CapacityError struct {
	Bytes int   // length of the data
	Max   int   // data bytes of the largest version at Level
	Level Level // last level attempted
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: data too large: %d bytes exceeds capacity of %d bytes at level %v",
		e.Bytes, e.Max, e.Level)
}

// DetectMode returns the most compact mode able to encode all of text:
// Numeric for digits only, Alphanumeric for digits, upper case letters
// and " $%*+-./:", Byte otherwise.
func DetectMode(text []byte) coding.Mode {
	mode := coding.Numeric
	for _, c := range text {
		for mode < coding.Byte && !coding.Is(c, mode) {
			mode++
		}
	}
	return mode
}

// MinVersion returns the smallest version that holds n bytes of text
// encoded in mode at level l.  It reports false if none does.
func MinVersion(mode coding.Mode, n int, l Level) (coding.Version, bool) {
	cl := coding.Level(l)
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		bits := mode.Length(n, v.SizeClass())
		if bits != 0 && (bits+7)/8 <= v.DataBytes(cl) {
			return v, true
		}
	}
	return 0, false
}

// SelectLevel returns the highest error correction level at which text
// fits a QR code, and the smallest version holding it at that level.
// If overlay is set, part of the code is expected to be covered, and
// only level H is considered.
func SelectLevel(text []byte, overlay bool) (Level, coding.Version, error) {
	mode := DetectMode(text)
	levels := []Level{H, Q, M, L}
	if overlay {
		levels = levels[:1]
	}
	var l Level
	for _, l = range levels {
		if v, ok := MinVersion(mode, len(text), l); ok {
			return l, v, nil
		}
	}
	return l, 0, &CapacityError{
		Bytes: len(text),
		Max:   coding.MaxVersion.DataBytes(coding.Level(l)),
		Level: l,
	}
}

// Encode returns a QR code encoding text.  If overlay is set, the code
// is built at level H so that it survives being partly covered, e.g.
// by a logo.
func Encode(text []byte, overlay bool) (*Code, error) {
	if len(text) == 0 {
		return nil, ErrEmpty
	}
	l, v, err := SelectLevel(text, overlay)
	if err != nil {
		return nil, err
	}
	seg := coding.Segment{Text: string(text), Mode: DetectMode(text)}
	cc, err := coding.Encode(v, coding.Level(l), seg)
	if err != nil {
		return nil, fmt.Errorf("qr: version %v-%v: %w", v, l, err)
	}
	return &Code{
		Version: cc.Version,
		Size:    cc.Size,
		Modules: cc.Rows(),
		Mask:    cc.Mask,
		Level:   l,
		Mode:    seg.Mode,
		Scale:   8,
		Border:  4,
	}, nil
}

// EncodeString is like Encode, but takes a string.
func EncodeString(text string, overlay bool) (*Code, error) {
	return Encode([]byte(text), overlay)
}

// A Code is a square pixel grid.
// It implements image.Image and direct PBM encoding.
//
// The encoder fills in Version, Size, Modules, Mask, Level and Mode.
// Scale, Border and Reverse only affect the image and text views.
type Code struct {
	Version coding.Version // QR code version
	Size    int            // number of modules on a side
	Modules [][]bool       // Modules[row][col], true is dark
	Mask    coding.Mask    // mask pattern applied to data modules
	Level   Level          // error correction level
	Mode    coding.Mode    // encoding mode of the data

	Scale   int  // number of image pixels per QR module
	Border  int  // quiet zone width in modules
	Reverse bool // swap dark and light
}

// Black returns true if the module at (x,y) is dark.
// Modules outside the code are light.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size && c.Modules[y][x]
}

// dark reports whether the module at (x,y) is drawn in the foreground
// colour, taking c.Reverse into account.
func (c *Code) dark(x, y int) bool {
	return c.Black(x, y) != c.Reverse
}

// isValid reports whether c can be drawn.
func (c *Code) isValid() bool {
	const maxPix = 1 << 16
	return c != nil && c.Size > 0 && len(c.Modules) == c.Size &&
		c.Scale > 0 && c.Border >= 0 &&
		c.Scale <= maxPix/(c.Size+c.Border*2)
}

// Penalty returns the mask penalty score of the code.
func (c *Code) Penalty() int {
	m := coding.NewMatrix(c.Size)
	for y, row := range c.Modules {
		copy(m.Modules[y*c.Size:(y+1)*c.Size], row)
	}
	return m.Penalty()
}

// Image returns an Image displaying the code, with a quiet zone of
// c.Border modules on each side.  It returns nil if c.Scale or
// c.Border is out of range.
func (c *Code) Image() image.Image {
	if !c.isValid() {
		return nil
	}
	return &codeImage{c}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + c.Border*2) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(c.Bounds())) {
		return whiteColor
	}
	if c.dark(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}
