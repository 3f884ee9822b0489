package tui

import "strings"

// brailleBuf is a micro-pixel canvas. Every terminal cell carries a 2x4
// grid of braille dots, so a w x h cell buffer addresses 2w x 4h
// micro pixels.
type brailleBuf struct {
	w, h int
	m    [][]uint8
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// Braille dot bits by (column, row) inside one cell.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// set turns on the micro pixel at (mx, my). Out-of-range coordinates
// are ignored so callers can draw partially visible shapes.
func (b *brailleBuf) set(mx, my int) {
	if mx < 0 || my < 0 || mx >= b.w*2 || my >= b.h*4 {
		return
	}
	b.m[my/4][mx/2] |= dotBits[mx%2][my%4]
}

// line draws a micro-pixel segment with Bresenham stepping.
func (b *brailleBuf) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		b.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// rows renders the buffer as one string per cell row. Empty cells come
// out as spaces rather than blank braille so terminals without braille
// fallback fonts still show gaps.
func (b *brailleBuf) rows() []string {
	out := make([]string, b.h)
	var sb strings.Builder
	for y := range b.h {
		sb.Reset()
		for x := range b.w {
			if mask := b.m[y][x]; mask == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(rune(0x2800 + int(mask)))
			}
		}
		out[y] = sb.String()
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
