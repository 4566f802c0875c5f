// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Matrix is a square grid of modules stored row by row.
type Matrix struct {
	Size    int    // number of modules on a side
	Modules []bool // Size*Size modules, Modules[row*Size+col]
}

// NewMatrix returns an all-false Matrix with size modules on a side.
func NewMatrix(size int) Matrix {
	return Matrix{Size: size, Modules: make([]bool, size*size)}
}

// At returns the module at row, col.
func (m Matrix) At(row, col int) bool { return m.Modules[row*m.Size+col] }

// Set sets the module at row, col.
func (m Matrix) Set(row, col int, v bool) { m.Modules[row*m.Size+col] = v }

// Clone returns a copy of m.
func (m Matrix) Clone() Matrix {
	c := NewMatrix(m.Size)
	copy(c.Modules, m.Modules)
	return c
}

// Rows returns m as a slice of rows.  The rows share memory with m.
func (m Matrix) Rows() [][]bool {
	rows := make([][]bool, m.Size)
	for i := range rows {
		rows[i] = m.Modules[i*m.Size : (i+1)*m.Size : (i+1)*m.Size]
	}
	return rows
}

// Count returns the number of true modules.
func (m Matrix) Count() int {
	n := 0
	for _, v := range m.Modules {
		if v {
			n++
		}
	}
	return n
}

// A Plan describes how to construct a QR code of a specific version.
type Plan struct {
	Version Version // QR code version
	Size    int     // number of modules on a side

	Map     Matrix // reserved modules: false is data or checksum, true is other
	Pattern Matrix // finder, alignment and timing patterns, version info
}

// NewPlan returns a Plan for a QR code with the given version.
// The plan is created anew on every call.
func NewPlan(v Version) (*Plan, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	info := &vtab[v]
	siz := v.Size()
	p := &Plan{
		Version: v,
		Size:    siz,
		Map:     NewMatrix(siz),
		Pattern: NewMatrix(siz),
	}

	// Timing markers (overwritten by boxes).
	for i := 0; i < siz; i++ {
		p.set(6, i, i&1 == 0)
		p.set(i, 6, i&1 == 0)
	}

	// Position boxes with their separators.
	p.posBox(0, 0)
	p.posBox(0, siz-7)
	p.posBox(siz-7, 0)

	// Alignment boxes, except where they would overlap position boxes.
	for _, y := range info.align {
		for _, x := range info.align {
			if y-2 < 8 && (x-2 < 8 || x+2 >= siz-8) ||
				y+2 >= siz-8 && x-2 < 8 {
				continue
			}
			p.alignBox(y, x)
		}
	}

	// Format pixels, set for each mask by Format.
	for i := 0; i < 9; i++ {
		p.Map.Set(8, i, true)
		p.Map.Set(i, 8, true)
	}
	for i := siz - 8; i < siz; i++ {
		p.Map.Set(8, i, true)
		p.Map.Set(i, 8, true)
	}

	// Version pattern.
	// vpat: 6x3 pixels at (0, siz-11)
	// hpat: 3x6 pixels at (siz-11, 0)
	if pat := info.pattern; pat != 0 {
		for i := 0; i < 18; i++ {
			a, b := siz-11+i%3, i/3
			v := pat>>i&1 != 0
			p.set(b, a, v)
			p.set(a, b, v)
		}
	}

	// One lonely black pixel
	p.set(siz-8, 8, true)
	return p, nil
}

// set reserves the module at row, col and sets its value.
func (p *Plan) set(row, col int, v bool) {
	p.Map.Set(row, col, true)
	p.Pattern.Set(row, col, v)
}

// posBox draws a position (big) box at upper left row, col,
// with a light separator strip on the sides facing the data.
func (p *Plan) posBox(row, col int) {
	for y := -1; y <= 7; y++ {
		for x := -1; x <= 7; x++ {
			r, c := row+y, col+x
			if r < 0 || r >= p.Size || c < 0 || c >= p.Size {
				continue
			}
			// 7x7 dark ring, 5x5 light ring, 3x3 dark centre,
			// light separator
			d := max(abs(y-3), abs(x-3))
			p.set(r, c, d != 2 && d != 4)
		}
	}
}

// alignBox draws an alignment (small) box centred at row, col.
func (p *Plan) alignBox(row, col int) {
	for y := -2; y <= 2; y++ {
		for x := -2; x <= 2; x++ {
			p.set(row+y, col+x, max(abs(y), abs(x)) != 1)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Serialise writes bits from s to the data modules of m in zigzag
// scan order: pairs of columns from the right, alternately upwards and
// downwards, right column first, skipping the vertical timing strip.
// Modules left over after the end of s are set to false.
func (p *Plan) Serialise(s BitStream, m Matrix) {
	siz := p.Size
	up := true
	for x := siz - 1; x >= 1; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for _, xx := range [2]int{x, x - 1} {
				if !p.Map.At(y, xx) {
					m.Set(y, xx, s.Next() != 0)
				}
			}
		}
		up = !up
	}
}

// DataModules returns the number of modules available for data and
// error correction bits.
func (p *Plan) DataModules() int {
	return p.Size*p.Size - p.Map.Count()
}
