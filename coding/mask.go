// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Mask is a QR data mask pattern number.
type Mask int

// Masks is the number of mask patterns.
const Masks Mask = 8

func (mask Mask) String() string { return strconv.Itoa(int(mask)) }

// Mask patterns, by row y and column x.  A data module is inverted
// where the formula is true.
var maskFunc = [Masks]func(y, x int) bool{
	func(y, x int) bool { return (y+x)%2 == 0 },
	func(y, x int) bool { return y%2 == 0 },
	func(y, x int) bool { return x%3 == 0 },
	func(y, x int) bool { return (y+x)%3 == 0 },
	func(y, x int) bool { return (y/2+x/3)%2 == 0 },
	func(y, x int) bool { return y*x%2+y*x%3 == 0 },
	func(y, x int) bool { return (y*x%2+y*x%3)%2 == 0 },
	func(y, x int) bool { return ((y+x)%2+y*x%3)%2 == 0 },
}

// Dark reports whether mask inverts the module at row, col.
func (mask Mask) Dark(row, col int) bool { return maskFunc[mask](row, col) }

// Apply inverts the data modules of m selected by mask.
// Modules reserved by p are left intact.
func (mask Mask) Apply(m Matrix, p *Plan) {
	f := maskFunc[mask]
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			if !p.Map.At(y, x) && f(y, x) {
				m.Set(y, x, !m.At(y, x))
			}
		}
	}
}

// Penalty returns the penalty value for a QR code.
// The value is used for choosing the mask.
func (m Matrix) Penalty() int {
	// Total penalty is the sum of penalties for runs and boxes
	// of same-colour pixels, finder patterns and colour balance.
	//
	//   - RunP: for each run of n pixels in a row or column,
	//     n>=5 -> 3+(n-5)
	//   - BoxP: for possibly overlapping 2x2 boxes -> 3
	//   - FindP: for possibly overlapping 10111010000 or 00001011101
	//     patterns in a row or column -> 40
	//   - BalP: for n% of black pixels -> 10*abs(ceiling(n/5)-10)
	const (
		BoxPP = 3  // BoxP:  points per box
		BalPP = 10 // BalP:  10 points
	)
	siz := m.Size
	p := 0

	// horizontal and vertical runs: RunP, FindP
	col := make([]bool, siz)
	for i := 0; i < siz; i++ {
		p += linePenalty(m.Modules[i*siz : (i+1)*siz])
		for y := range col {
			col[y] = m.At(y, i)
		}
		p += linePenalty(col)
	}

	// BoxP
	for y := 1; y < siz; y++ {
		prev, line := m.Modules[(y-1)*siz:y*siz], m.Modules[y*siz:(y+1)*siz]
		for x := 1; x < siz; x++ {
			v := line[x]
			if line[x-1] == v && prev[x-1] == v && prev[x] == v {
				p += BoxPP
			}
		}
	}

	// BalP, with the percentage divided by 5 rounded up
	sq := siz * siz
	k := (m.Count()*20+sq-1)/sq - 10
	p += abs(k) * BalPP
	return p
}

// linePenalty returns the RunP and FindP penalty of a row or column.
func linePenalty(line []bool) int {
	const (
		MinRun = 5  // RunP:  miniumum run length
		RunPP  = 3  // RunP:  points for a run of MinRun
		FindPP = 40 // FindP: points per pattern

		// finder patterns, last pixel in bit 0
		FindA = 0b1011101_0000 // quiet zone after
		FindB = 0b0000_1011101 // quiet zone before
		FindN = 11             // pattern length
	)
	p := 0
	r := 0         // current run length for RunP
	var pat uint16 // last FindN pixels for FindP
	for x, v := range line {
		if x != 0 && v != line[x-1] { // colour change
			if r >= MinRun {
				p += RunPP + r - MinRun // RunP
			}
			r = 0
		}
		r++
		pat = (pat<<1)&(1<<FindN-1) | b2u(v)
		if x >= FindN-1 && (pat == FindA || pat == FindB) {
			p += FindPP // FindP
		}
	}
	// handle last run
	if r >= MinRun {
		p += RunPP + r - MinRun // RunP
	}
	return p
}

func b2u(v bool) uint16 {
	if v {
		return 1
	}
	return 0
}
