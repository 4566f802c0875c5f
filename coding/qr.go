// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details for QR versions
// 1 to 10: bit packing, Reed-Solomon check bytes, block interleaving,
// module placement and masking.
package coding // import "github.com/unixdj/qrcode/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/unixdj/qrcode/gf256"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 10: the larger the version,
// the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 10 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is a supported version.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side of a version v code.
func (v Version) Size() int { return int(v)*4 + 17 }

// QR version size classes, determining the width of the character
// count field.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// Bytes returns the total number of codewords, data and check,
// in a QR code of version v.
func (v Version) Bytes() int { return vtab[v].bytes }

// Blocks returns the block structure of a QR code
// with the given version and level.
func (v Version) Blocks(l Level) Blocks { return vtab[v].level[l] }

// DataBytes returns the number of data bytes that can be
// stored in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	return vtab[v].level[l].DataBytes()
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int { return v.DataBytes(l) * 8 }

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is one of L, M, Q and H.
func (l Level) IsValid() bool { return L <= l && l <= H }

// Predefined encoding modes.
const (
	Numeric      Mode = iota // numeric mode, digits only
	Alphanumeric             // alphanumeric mode, "0-9A-Z $%*+-./:"
	Byte                     // byte mode, any data
)

// A Mode is a QR segment encoding mode.
type Mode int

// ModeEncoder implements a QR segment encoding.
type ModeEncoder struct {
	Name      string // Name for error reporting
	Indicator byte   // 4 bit mode indicator

	// CountLength lists lengths of the character count field in
	// three QR version size classes.
	CountLength [3]byte

	// EncodedLength returns the encoded data length in bits of a valid
	// string of the given length in bytes.  If nil, each byte is
	// encoded as 8 bits.
	EncodedLength func(bytes int) int

	// Accepts reports whether the encoding mode accepts the byte.
	// If nil, any byte is accepted.
	Accepts func(byte) bool

	// Encode3, Encode2 and Encode1 return the encoding of the bytes
	// and its length in bits.  The encoder calls a non-nil Encode{N}
	// repeatedly as long as N source bytes are available, in
	// descending order of N.  If all are nil, each byte is encoded as
	// 8 bits.  The encoder panics if not all bytes are consumed.
	Encode3 func([3]byte) (uint32, int)
	Encode2 func([2]byte) (uint32, int)
	Encode1 func(byte) (uint32, int)
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// The set of modes is fixed.
var modes = [...]ModeEncoder{
	Numeric: {
		Name:          "numeric",
		Indicator:     1,
		CountLength:   [3]byte{10, 12, 14},
		EncodedLength: func(b int) int { return (10*b + 2) / 3 },
		Accepts:       func(c byte) bool { return c-'0' < 10 },
		Encode1: func(b byte) (uint32, int) {
			return uint32(b), 4
		},
		Encode2: func(b [2]byte) (uint32, int) {
			return uint32(b[0])*10 + uint32(b[1]) - '0'*11&0x7f, 7
		},
		Encode3: func(b [3]byte) (uint32, int) {
			return uint32(b[0])*100 + uint32(b[1])*10 +
				uint32(b[2]) + -'0'*111&0x3ff, 10
		},
	},
	Alphanumeric: {
		Name:          "alphanumeric",
		Indicator:     2,
		CountLength:   [3]byte{9, 11, 13},
		EncodedLength: func(b int) int { return (11*b + 1) / 2 },
		Accepts: func(c byte) bool {
			return alphamask>>(uint32(c)-' ')&1 != 0
		},
		Encode1: func(b byte) (uint32, int) {
			return uint32(alpha[b&0x3f]), 6
		},
		Encode2: func(b [2]byte) (uint32, int) {
			return uint32(alpha[b[0]&0x3f])*45 +
				uint32(alpha[b[1]&0x3f]), 11
		},
	},
	Byte: {
		Name:        "byte",
		Indicator:   4,
		CountLength: [3]byte{8, 16, 16},
	},
}

func getMode(mode Mode) *ModeEncoder {
	if mode >= 0 && int(mode) < len(modes) {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := getMode(mode); m != nil {
		return m.Name
	}
	return strconv.Itoa(int(mode))
}

// CountLength returns the width in bits of the character count field
// for mode at the given QR version size class.
func (mode Mode) CountLength(class int) int {
	if m := getMode(mode); m != nil {
		return int(m.CountLength[class])
	}
	return 0
}

// length returns the length in bits of a valid string of the given
// length in bytes encoded in mode at the given QR version size class,
// including the header.
func (m *ModeEncoder) length(bytes, class int) int {
	n := 4 + int(m.CountLength[class])
	if f := m.EncodedLength; f != nil {
		n += f(bytes)
	} else {
		n += bytes * 8
	}
	return n
}

// Length returns the length in bits of a valid string of the given
// length in bytes encoded in mode at the given QR version size class,
// including the header.  Length returns 0 if and only if mode is
// invalid.
func (mode Mode) Length(bytes, class int) int {
	n := 0
	if m := getMode(mode); m != nil {
		n = m.length(bytes, class)
	}
	return n
}

// Is reports whether c is encodable in mode.
func Is(c byte, mode Mode) bool {
	m := getMode(mode)
	return m != nil && (m.Accepts == nil || m.Accepts(c))
}

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents an invalid Segment.
type SegmentError Segment

func (e SegmentError) Error() string {
	if m := getMode(e.Mode); m != nil {
		return fmt.Sprintf("qr: non-%s string %#q", m.Name, e.Text)
	}
	return fmt.Sprintf("qr: invalid mode %d", e.Mode)
}

// isValid reports whether seg is encodable.
func (m *ModeEncoder) isValid(seg Segment) bool {
	if is := m.Accepts; is != nil {
		for i := 0; i < len(seg.Text); i++ {
			if !is(seg.Text[i]) {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool {
	if m := getMode(seg.Mode); m != nil {
		return m.isValid(seg)
	}
	return false
}

// EncodedLength returns the encoded length in bits of seg in the
// given QR version size class.  EncodedLength returns 0 if and only
// if mode is invalid.  The segment is not validated.
func (seg Segment) EncodedLength(class int) int {
	return seg.Mode.Length(len(seg.Text), class)
}

// Encode writes seg encoded for the given QR version size class to b.
func (seg Segment) Encode(b *Bits, class int) error {
	m := getMode(seg.Mode)
	if m == nil || !m.isValid(seg) {
		return SegmentError(seg)
	}
	// write header
	s := seg.Text
	b.Write(uint32(m.Indicator), 4)
	b.Write(uint32(len(s)), int(m.CountLength[class]))
	// encode the string
	enc3, enc2, enc1 := m.Encode3, m.Encode2, m.Encode1
	if enc3 != nil || enc2 != nil || enc1 != nil {
		if enc3 != nil {
			for len(s) >= 3 {
				b.Write(enc3([3]byte{s[0], s[1], s[2]}))
				s = s[3:]
			}
		}
		if enc2 != nil {
			for len(s) >= 2 {
				b.Write(enc2([2]byte{s[0], s[1]}))
				s = s[2:]
			}
		}
		if enc1 != nil {
			for len(s) >= 1 {
				b.Write(enc1(s[0]))
				s = s[1:]
			}
		} else if s != "" {
			panic("qr: " + m.Name + " mode internal error")
		}
	} else if b.nbit&7 != 0 {
		for ; len(s) >= 4; s = s[4:] {
			v := uint32(s[0])<<24 | uint32(s[1])<<16 |
				uint32(s[2])<<8 | uint32(s[3])
			b.Write(v, 32)
		}
		if s != "" {
			var v uint32
			for i := 0; i < len(s); i++ {
				v = v<<8 | uint32(s[i])
			}
			b.Write(v, 8*len(s))
		}
	} else {
		b.b = append(b.b, s...)
		b.nbit += len(s) * 8
	}
	return nil
}

// A Code is a QR code: a square grid of modules with the parameters
// used to construct it.
type Code struct {
	Matrix          // modules, true is dark
	Version Version // QR code version
	Level   Level   // QR error correction level
	Mask    Mask    // mask pattern applied to data modules
}

// Black reports whether the module in column x, row y is dark.
// Modules outside the code are light.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size && c.At(y, x)
}

// Encoder encodes a QR code.
type Encoder struct {
	p *Plan
	l Level
	b *Bits
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(version Version, level Level) (*Encoder, error) {
	if !level.IsValid() {
		return nil, ErrLevel
	}
	p, err := NewPlan(version)
	if err != nil {
		return nil, err
	}
	return &Encoder{p: p, l: level, b: NewBits(version)}, nil
}

// Write adds text to e.
func (e *Encoder) Write(text ...Segment) error {
	class := e.p.Version.SizeClass()
	for _, t := range text {
		if err := t.Encode(e.b, class); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) Reset() { e.b.Reset() }

// DataBytes pads the data written to e and returns the data
// codewords, without check bytes.  It fails if the data does not fit
// the version and level of e.
func (e *Encoder) DataBytes() ([]byte, error) {
	v := e.p.Version
	if nb := v.DataBits(e.l); e.b.Bits() > nb {
		return nil, fmt.Errorf("cannot encode %d bits into %d-bit code",
			e.b.Bits(), nb)
	}
	e.b.Pad(4, v.DataBytes(e.l))
	return e.b.Bytes(), nil
}

// Code returns a QR code containing data written to e.
func (e *Encoder) Code() (*Code, error) {
	data, err := e.DataBytes()
	if err != nil {
		return nil, err
	}
	p, v, l := e.p, e.p.Version, e.l
	// Now we have the data bytes.  Add the checksum, interleave and
	// construct the bitmap consisting of data and checksum bits.
	bits := NewBitStream(Codewords(data, v, l))
	unmasked := p.Pattern.Clone()
	p.Serialise(bits, unmasked)

	// Apply masks to the bitmap to construct the actual codes.
	// Choose the code with the smallest penalty, the first one
	// on a tie.
	c := &Code{Matrix: NewMatrix(unmasked.Size), Version: v, Level: l}
	cand := NewMatrix(unmasked.Size)
	pen := 1 << 30 // largest penalty is < 1<<20
	for mask := Mask(0); mask < Masks; mask++ {
		copy(cand.Modules, unmasked.Modules)
		mask.Apply(cand, p)
		p.Format(cand, l, mask)
		if q := cand.Penalty(); q < pen {
			copy(c.Modules, cand.Modules)
			c.Mask, pen = mask, q
		}
	}
	return c, nil
}

// Encode is a wrapper around Write and Code.
func (e *Encoder) Encode(text ...Segment) (*Code, error) {
	if err := e.Write(text...); err != nil {
		return nil, err
	}
	return e.Code()
}

// Encode encodes text using an Encoder with the given version and level.
func Encode(version Version, level Level, text ...Segment) (*Code, error) {
	e, err := NewEncoder(version, level)
	if err != nil {
		return nil, err
	}
	return e.Encode(text...)
}
