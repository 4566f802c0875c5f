// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import (
	"io"
	"strings"
)

// halfBlocks maps a pair of vertically adjacent modules, upper in
// bit 1, lower in bit 0, to a character.
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// String returns the code as UTF-8 text, two rows of modules per
// line of half block characters, with a quiet zone of c.Border
// modules.  Dark modules are drawn in the foreground colour; as
// terminals usually have light text on a dark background, set
// c.Reverse for a scannable result there.
func (c *Code) String() string {
	var b strings.Builder
	c.writeText(&b)
	return b.String()
}

// EncodeText writes the code to w as returned by String.
func (c *Code) EncodeText(w io.Writer) error {
	if c == nil || c.Size <= 0 || c.Border < 0 {
		return ErrArgs
	}
	var b strings.Builder
	c.writeText(&b)
	_, err := io.WriteString(w, b.String())
	return err
}

func (c *Code) writeText(b *strings.Builder) {
	if c == nil || c.Size <= 0 || c.Border < 0 {
		return
	}
	bord := c.Border
	pix := c.Size + bord*2
	b.Grow((pix*len("█") + 1) * (pix + 1) / 2)
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			i := 0
			if c.dark(x, y) {
				i |= 2
			}
			if y+1 < c.Size+bord && c.dark(x, y+1) {
				i |= 1
			}
			b.WriteString(halfBlocks[i])
		}
		b.WriteByte('\n')
	}
}
