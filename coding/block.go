// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/qrcode/gf256"

// A version describes metadata associated with a version.
type version struct {
	bytes     int       // total codewords
	remainder int       // remainder bits after the last codeword
	align     []int     // alignment pattern centre coordinates
	pattern   uint32    // version information bits, 0 below 7
	level     [4]Blocks // block structure per level
}

// Blocks describes how the data codewords of a QR code are divided
// into blocks.  The Count1 blocks of group 1 hold Size1 data bytes
// each, the Count2 blocks of group 2 hold Size2 = Size1+1.  Every block
// gets Check error correction bytes.
type Blocks struct {
	Count1, Size1 int
	Count2, Size2 int
	Check         int
}

// Len returns the total number of blocks.
func (bl Blocks) Len() int { return bl.Count1 + bl.Count2 }

// DataBytes returns the total number of data codewords.
func (bl Blocks) DataBytes() int {
	return bl.Count1*bl.Size1 + bl.Count2*bl.Size2
}

// Split splits data into blocks.  The blocks share the underlying
// array with data.
func (bl Blocks) Split(data []byte) [][]byte {
	if len(data) != bl.DataBytes() {
		panic("qr: wrong data length")
	}
	blocks := make([][]byte, 0, bl.Len())
	for i := 0; i < bl.Len(); i++ {
		n := bl.Size1
		if i >= bl.Count1 {
			n = bl.Size2
		}
		blocks = append(blocks, data[:n:n])
		data = data[n:]
	}
	return blocks
}

// ECC returns the error correction bytes for each block.
func (bl Blocks) ECC(blocks [][]byte) [][]byte {
	rs := gf256.NewRSEncoder(Field, bl.Check)
	buf := make([]byte, len(blocks)*bl.Check)
	check := make([][]byte, len(blocks))
	for i, b := range blocks {
		check[i], buf = buf[:bl.Check:bl.Check], buf[bl.Check:]
		rs.ECC(b, check[i])
	}
	return check
}

// Interleave appends the bytes of blocks to dst, reading the first
// byte of each block, then the second, and so on.  Blocks that run
// out of bytes are skipped.
func Interleave(dst []byte, blocks [][]byte) []byte {
	n := 0
	for _, b := range blocks {
		n = max(n, len(b))
	}
	for i := 0; i < n; i++ {
		for _, b := range blocks {
			if i < len(b) {
				dst = append(dst, b[i])
			}
		}
	}
	return dst
}

// Codewords returns the data codewords for a QR code with the given
// version and level followed by the error correction codewords, both
// interleaved by block.
func Codewords(data []byte, v Version, l Level) []byte {
	bl := v.Blocks(l)
	blocks := bl.Split(data)
	dst := make([]byte, 0, v.Bytes())
	dst = Interleave(dst, blocks)
	dst = Interleave(dst, bl.ECC(blocks))
	if len(dst) != v.Bytes() {
		panic("qr: internal error")
	}
	return dst
}
