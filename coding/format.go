// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

const (
	formatPoly = 0x537  // BCH(15,5) generator
	formatMask = 0x5412 // XORed with the format word
)

// FormatBits returns the 15-bit format information word for level l
// and mask: 2 bits of level, 3 bits of mask, 10 bits of BCH(15,5)
// checksum, XORed with 0x5412.
func FormatBits(l Level, mask Mask) uint16 {
	// level indicator: L=01, M=00, Q=11, H=10
	fb := uint16(l^1)<<3 | uint16(mask)
	rem := fb << 10
	for i := 14; i >= 10; i-- {
		if rem&(1<<i) != 0 {
			rem ^= formatPoly << (i - 10)
		}
	}
	return (fb<<10 | rem) ^ formatMask
}

// VersionBits returns the 18-bit version information word for v,
// or 0 if v is below 7.
func VersionBits(v Version) uint32 {
	if !v.IsValid() {
		return 0
	}
	return vtab[v].pattern
}

// Format writes both copies of the format information for level l
// and mask to m.  Bit 0 is the least significant bit of the word.
//
// The first copy runs down column 8 from the top, skipping the
// horizontal timing strip, and then left along row 8.  The second
// copy runs right to left along the top of row 8 at the right edge,
// then down column 8 at the bottom edge.
func (p *Plan) Format(m Matrix, l Level, mask Mask) {
	fb := FormatBits(l, mask)
	siz := p.Size
	bit := func(i int) bool { return fb>>i&1 != 0 }

	// first copy, around the top left position box
	for i := 0; i < 6; i++ {
		m.Set(i, 8, bit(i))
	}
	m.Set(7, 8, bit(6))
	m.Set(8, 8, bit(7))
	m.Set(8, 7, bit(8))
	for i := 9; i < 15; i++ {
		m.Set(8, 14-i, bit(i))
	}

	// second copy, split between the other two position boxes
	for i := 0; i < 8; i++ {
		m.Set(8, siz-1-i, bit(i))
	}
	for i := 8; i < 15; i++ {
		m.Set(siz-15+i, 8, bit(i))
	}

	m.Set(siz-8, 8, true)
}
