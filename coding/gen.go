//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// tables from qrencode-3.1.1/qrspec.c, versions 1 to 10

var capacity = [11]struct {
	width     int
	words     int
	remainder int
	ec        [4]int
}{
	{0, 0, 0, [4]int{0, 0, 0, 0}},
	{21, 26, 0, [4]int{7, 10, 13, 17}}, // 1
	{25, 44, 7, [4]int{10, 16, 22, 28}},
	{29, 70, 7, [4]int{15, 26, 36, 44}},
	{33, 100, 7, [4]int{20, 36, 52, 64}},
	{37, 134, 7, [4]int{26, 48, 72, 88}}, // 5
	{41, 172, 7, [4]int{36, 64, 96, 112}},
	{45, 196, 0, [4]int{40, 72, 108, 130}},
	{49, 242, 0, [4]int{48, 88, 132, 156}},
	{53, 292, 0, [4]int{60, 110, 160, 192}},
	{57, 346, 0, [4]int{72, 130, 192, 224}}, //10
}

// number of blocks in group 1 and group 2
var eccTable = [11][4][2]int{
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}}, // 1
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
	{{1, 0}, {1, 0}, {2, 0}, {2, 0}},
	{{1, 0}, {2, 0}, {2, 0}, {4, 0}},
	{{1, 0}, {2, 0}, {2, 2}, {2, 2}}, // 5
	{{2, 0}, {4, 0}, {4, 0}, {4, 0}},
	{{2, 0}, {4, 0}, {2, 4}, {4, 1}},
	{{2, 0}, {2, 2}, {4, 2}, {4, 2}},
	{{2, 0}, {3, 2}, {4, 4}, {4, 4}},
	{{2, 2}, {4, 1}, {6, 2}, {6, 2}}, //10
}

var align = [11][]int{
	nil,
	nil, {6, 18}, {6, 22}, {6, 26}, {6, 30}, // 1- 5
	{6, 34}, {6, 22, 38}, {6, 24, 42}, {6, 26, 46}, {6, 28, 50}, // 6-10
}

var versionPattern = [11]int{
	0,
	0, 0, 0, 0, 0, 0,
	0x07c94, 0x085bc, 0x09a99, 0x0a4d3,
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// Version table.
var vtab = [MaxVersion + 1]version{
`)
	for i := 1; i < len(capacity); i++ {
		c := &capacity[i]
		apos := "nil"
		if a := align[i]; a != nil {
			apos = "[]int{" + strings.Trim(fmt.Sprint(a), "[]") + "}"
			apos = strings.ReplaceAll(apos, " ", ", ")
		}
		var lev [4]string
		for l := range lev {
			n1, n2 := eccTable[i][l][0], eccTable[i][l][1]
			check := c.ec[l] / (n1 + n2)
			data := c.words - c.ec[l]
			size := data / (n1 + n2)
			if n2 != 0 {
				lev[l] = fmt.Sprintf("{%d, %d, %d, %d, %d}",
					n1, size, n2, size+1, check)
			} else {
				lev[l] = fmt.Sprintf("{%d, %d, 0, 0, %d}",
					n1, size, check)
			}
		}
		fmt.Fprintf(w, "\t%d: {%d, %d, %s, %#x, [4]Blocks{%s}},\n",
			i, c.words, c.remainder, apos, versionPattern[i],
			strings.Join(lev[:], ", "))
	}
	fmt.Fprintln(w, "}")
	w.Flush()
}
