package tui

import (
	"sort"
	"strings"

	"github.com/paulmach/orb"
)

// viewBound is the world region on screen: the union of the subject and
// window bounds, padded so the window edge never sits on the border.
func (m Model) viewBound() orb.Bound {
	b := m.win.Bound()
	if m.subject != nil {
		b = b.Union(m.subject.Bound())
	}
	w := b.Max[0] - b.Min[0]
	h := b.Max[1] - b.Min[1]
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	const pad = 0.05
	return orb.Bound{
		Min: orb.Point{b.Min[0] - pad*w, b.Min[1] - pad*h},
		Max: orb.Point{b.Max[0] + pad*w, b.Max[1] + pad*h},
	}
}

// micro projects a world coordinate onto a mw x mh micro grid, flipping
// y so north is up.
func micro(b orb.Bound, p orb.Point, mw, mh int) (int, int) {
	nx := (p[0] - b.Min[0]) / (b.Max[0] - b.Min[0])
	ny := (p[1] - b.Min[1]) / (b.Max[1] - b.Min[1])
	return int(nx * float64(mw-1)), int((1 - ny) * float64(mh-1))
}

// renderCanvas draws the subject outline, the filled clip result, and
// the window frame into one braille buffer.
func (m Model) renderCanvas(w, h int) string {
	br := newBrailleBuf(w, h)
	b := m.viewBound()

	if m.showSubject && m.subject != nil {
		drawGeometry(br, b, m.subject, false)
	}
	if m.clipped != nil {
		drawGeometry(br, b, m.clipped, true)
	}
	drawChain(br, b, m.win.Bound().ToRing())

	return strings.Join(br.rows(), "\n")
}

// drawGeometry draws edges always and a scanline fill for polygonal
// geometries when fill is set.
func drawGeometry(br *brailleBuf, b orb.Bound, g orb.Geometry, fill bool) {
	switch v := g.(type) {
	case orb.Point:
		x, y := micro(b, v, br.w*2, br.h*4)
		br.set(x, y)
	case orb.MultiPoint:
		for _, p := range v {
			x, y := micro(b, p, br.w*2, br.h*4)
			br.set(x, y)
		}
	case orb.LineString:
		drawChain(br, b, v)
	case orb.MultiLineString:
		for _, ls := range v {
			drawChain(br, b, ls)
		}
	case orb.Ring:
		drawGeometry(br, b, orb.Polygon{v}, fill)
	case orb.Polygon:
		if fill {
			fillRings(br, b, v)
		}
		for _, rg := range v {
			drawChain(br, b, rg)
		}
	case orb.MultiPolygon:
		for _, poly := range v {
			drawGeometry(br, b, poly, fill)
		}
	}
}

func drawChain(br *brailleBuf, b orb.Bound, pts []orb.Point) {
	mw, mh := br.w*2, br.h*4
	for i := 0; i+1 < len(pts); i++ {
		x0, y0 := micro(b, pts[i], mw, mh)
		x1, y1 := micro(b, pts[i+1], mw, mh)
		br.line(x0, y0, x1, y1)
	}
}

// fillRings fills a polygon with even-odd scanlines over all of its
// rings, which leaves holes empty.
func fillRings(br *brailleBuf, b orb.Bound, poly orb.Polygon) {
	mw, mh := br.w*2, br.h*4

	var rings [][][2]int
	for _, rg := range poly {
		if len(rg) < 3 {
			continue
		}
		pts := make([][2]int, 0, len(rg))
		for _, p := range rg {
			x, y := micro(b, p, mw, mh)
			pts = append(pts, [2]int{x, y})
		}
		rings = append(rings, pts)
	}

	var xs []int
	for y := 0; y < mh; y++ {
		xs = xs[:0]
		for _, pts := range rings {
			for i := range pts {
				a := pts[i]
				c := pts[(i+1)%len(pts)]
				if a[1] == c[1] {
					continue
				}
				if (y >= a[1] && y < c[1]) || (y >= c[1] && y < a[1]) {
					t := float64(y-a[1]) / float64(c[1]-a[1])
					xs = append(xs, a[0]+int(t*float64(c[0]-a[0])))
				}
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := xs[i]; x <= xs[i+1]; x++ {
				br.set(x, y)
			}
		}
	}
}
