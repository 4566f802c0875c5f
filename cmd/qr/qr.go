// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qr generates QR codes of versions 1 to 10.
package main

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/unixdj/qrcode"
)

var g = struct {
	scale   int    // scale
	border  int    // quiet zone
	rev     bool   // reverse colours
	fn      string // filename
	format  int    // output file format
	cx      int    // randr source X coordinate index in inc
	inc     [2]int // randr source X,Y coordinate increments
	overlay bool   // reserve room for an overlay, force level H
	latin1  bool   // convert input to Latin-1
	nfc     bool   // normalise input to NFC
	upper   bool   // uppercase
	debug   bool   // debug log
}{
	inc: [2]int{1, 1},
}

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "qr"})

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  The encoding mode, the error correction level
(highest that fits) and the version (1 to 10, smallest that fits) are
chosen automatically.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.9.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

func flip() {
	g.inc[0] = -g.inc[0]
}

func rotate() {
	g.cx ^= 1
	m := g.inc[0] * g.inc[1]
	g.inc[0] *= m
	g.inc[1] *= -m
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*qrcode.Code, io.Writer) error{
	func(c *qrcode.Code, w io.Writer) error {
		img := c.Image()
		if img == nil {
			return qrcode.ErrArgs
		}
		return png.Encode(w, img)
	},
	(*qrcode.Code).EncodePBM,
	(*qrcode.Code).EncodeText,
	ascii,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(&g.latin1, '1', "convert input to Latin-1")
	getopt.Flag(&g.nfc, 'n', "normalise input to Unicode NFC")
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.overlay, 'L', "leave room for a logo overlay: "+
		"use error correction level H")
	getopt.Flag(&g.debug, 'd', "log encoding parameters")
	getopt.Flag(&g.border, 'm', `quiet zone modules`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	scale := getopt.Unsigned('s', 4,
		&(getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 1 << 12}),
		`image pixels per QR module ("pixel"); `+
			`ignored for types utf8[i] and ascii[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	g.border = 4
	getopt.Parse()
	if g.border < 0 {
		fmt.Fprintln(os.Stderr, "-m must not be negative")
		usage()
	}
	g.scale = int(*scale)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
	if g.debug {
		logger.SetLevel(log.DebugLevel)
	}
}

// convert applies the input conversions selected by flags.
func convert(s string) (string, error) {
	if g.nfc {
		s = norm.NFC.String(s)
	}
	if g.upper {
		s = cases.Upper(language.Und).String(s)
	}
	if g.latin1 {
		t, err := charmap.ISO8859_1.NewEncoder().String(s)
		if err != nil {
			return "", fmt.Errorf("cannot convert to Latin-1: %w", err)
		}
		s = t
	}
	return s, nil
}

func main() {
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			logger.Fatal("reading input", "err", err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	s, err := convert(s)
	if err != nil {
		logger.Fatal(err)
	}

	c, err := qrcode.EncodeString(s, g.overlay)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Debug("encoded", "bytes", len(s), "mode", c.Mode,
		"level", c.Level, "version", c.Version, "size", c.Size,
		"mask", c.Mask, "penalty", c.Penalty())
	write(c)
}

func write(c *qrcode.Code) {
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			logger.Fatal(err)
		}
	}
	c = randr(c)
	c.Scale = g.scale
	c.Border = g.border
	c.Reverse = g.rev
	err := encoders[g.format](c, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		logger.Fatal(err)
	}
}

// randr rotates and reflects c.
func randr(c *qrcode.Code) *qrcode.Code {
	cx, inc := g.cx, g.inc
	if cx == 0 && inc == [2]int{1, 1} {
		return c
	}
	siz := c.Size
	m := make([][]bool, siz)
	var coord [2]int
	coord[cx^1] = (siz - 1) & inc[1]
	for y := 0; y < siz; y++ {
		m[y] = make([]bool, siz)
		coord[cx] = (siz - 1) & inc[0]
		for x := 0; x < siz; x++ {
			m[y][x] = c.Black(coord[0], coord[1])
			coord[cx] += inc[0]
		}
		coord[cx^1] += inc[1]
	}
	c.Modules = m
	return c
}

func ascii(c *qrcode.Code, w io.Writer) error {
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.Black(x, y) != c.Reverse {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
