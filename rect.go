package klippa

import (
	"math"
	"slices"

	"github.com/paulmach/orb"
)

// Rect is an axis-aligned clipping window. The zero value is the empty
// window at the origin; use NewRect to build one.
type Rect struct {
	x0, y0, x1, y1 float64
}

// NewRect returns the window spanning the corner points (x0,y0) and
// (x1,y1). The corners may be given in any order.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{x0: x0, y0: y0, x1: x1, y1: y1}
}

// NewRectFromBound returns the window covering b.
func NewRectFromBound(b orb.Bound) Rect {
	return NewRect(b.Min[0], b.Min[1], b.Max[0], b.Max[1])
}

// Bound returns the window as an orb.Bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{r.x0, r.y0}, Max: orb.Point{r.x1, r.y1}}
}

// Contains reports whether p lies inside the window or on its boundary.
func (r Rect) Contains(p orb.Point) bool {
	return r.x0 <= p[0] && p[0] <= r.x1 && r.y0 <= p[1] && p[1] <= r.y1
}

func (r Rect) containsSegment(s Segment) bool {
	return r.Contains(s.Start) && r.Contains(s.End)
}

// isCrossing reports whether both segment endpoints are outside the window.
func (r Rect) isCrossing(s Segment) bool {
	return !r.Contains(s.Start) && !r.Contains(s.End)
}

// corner returns window corner k of the perimeter traversal. Corner k
// sits at perimeter index k.
func (r Rect) corner(k int) orb.Point {
	switch k {
	case 0:
		return orb.Point{r.x0, r.y0}
	case 1:
		return orb.Point{r.x0, r.y1}
	case 2:
		return orb.Point{r.x1, r.y1}
	}
	return orb.Point{r.x1, r.y0}
}

func (r Rect) isCorner(p orb.Point) bool {
	for k := 0; k < 4; k++ {
		if p == r.corner(k) {
			return true
		}
	}
	return false
}

// sides returns the four boundary segments in perimeter order: left
// ascending, top, right descending, bottom.
func (r Rect) sides() [4]Segment {
	return [4]Segment{
		{Start: r.corner(0), End: r.corner(1)},
		{Start: r.corner(1), End: r.corner(2)},
		{Start: r.corner(2), End: r.corner(3)},
		{Start: r.corner(3), End: r.corner(0)},
	}
}

// center returns the midpoint of the window.
func (r Rect) center() orb.Point {
	return orb.Point{(r.x0 + r.x1) / 2, (r.y0 + r.y1) / 2}
}

// boundaryRing returns the whole window boundary as a closed ring in
// perimeter order.
func (r Rect) boundaryRing() orb.Ring {
	return orb.Ring{r.corner(0), r.corner(1), r.corner(2), r.corner(3), r.corner(0)}
}

// ClipSegment clips seg to the window. The reported segment keeps seg's
// direction. The second return value is false when nothing of seg lies
// within the window; a segment that only grazes a window corner from the
// outside also reports false, as its clipped form would be a single point.
func (r Rect) ClipSegment(seg Segment) (Segment, bool) {
	if r.containsSegment(seg) {
		return seg, true
	}

	// Distinct boundary crossings. A crossing through a corner is found
	// on both adjacent sides, so duplicates must be dropped.
	var buf [4]orb.Point
	isects := buf[:0]
	for _, side := range r.sides() {
		p, ok := side.Intersection(seg)
		if ok && !slices.Contains(isects, p) {
			isects = append(isects, p)
		}
	}

	switch len(isects) {
	case 0:
		return Segment{}, false

	case 1:
		p := isects[0]
		if r.isCrossing(seg) && r.isCorner(p) {
			return Segment{}, false
		}
		if r.Contains(seg.Start) {
			return Segment{Start: seg.Start, End: p}, true
		}
		return Segment{Start: p, End: seg.End}, true
	}

	// Two crossings: keep the one nearer to seg's own start first.
	p1, p2 := isects[0], isects[1]
	if manhattanDist(seg.Start, p1) <= manhattanDist(seg.Start, p2) {
		return Segment{Start: p1, End: p2}, true
	}
	return Segment{Start: p2, End: p1}, true
}

// ClipSegments clips every segment and groups the survivors into
// end-to-start contiguous chains. The input is treated as cyclic: a run
// that wraps over the end of the slice comes back as a single chain, so a
// chain split mid-input is reported with its tail portion first.
func (r Rect) ClipSegments(segs []Segment) [][]Segment {
	clipped := make([]Segment, 0, len(segs))
	for _, seg := range segs {
		if c, ok := r.ClipSegment(seg); ok {
			clipped = append(clipped, c)
		}
	}
	if len(clipped) == 0 {
		return nil
	}

	// First break in cyclic contiguity. If the chain never breaks the
	// scan leaves offset at 0.
	n := len(clipped)
	offset := 0
	for i := 0; i < n; i++ {
		if clipped[i].End != clipped[(i+1)%n].Start {
			offset = (i + 1) % n
			break
		}
	}

	var groups [][]Segment
	for i := 0; i < n; i++ {
		seg := clipped[(offset+i)%n]
		if len(groups) > 0 {
			last := groups[len(groups)-1]
			if last[len(last)-1].End == seg.Start {
				groups[len(groups)-1] = append(last, seg)
				continue
			}
		}
		groups = append(groups, []Segment{seg})
	}
	return groups
}

// PerimeterIndex locates a boundary point along the window perimeter as a
// fraction in [0, 4). Corner (x0,y0) indexes 0 and each full side adds 1,
// walking through (x0,y1) at 1, (x1,y1) at 2 and (x1,y0) at 3. A point
// off the boundary indexes as 4.
func (r Rect) PerimeterIndex(p orb.Point) float64 {
	for i := 0; i < 4; i++ {
		a := r.corner(i)
		b := r.corner((i + 1) % 4)
		if i%2 == 0 {
			if p[0] == a[0] {
				return float64(i) + (p[1]-a[1])/(b[1]-a[1])
			}
		} else {
			if p[1] == a[1] {
				return float64(i) + (p[0]-a[0])/(b[0]-a[0])
			}
		}
	}
	return 4
}

// indexCloser reports whether perimeter index a comes before b when
// walking the perimeter forward from i.
func indexCloser(i, a, b float64) bool {
	if a < i {
		a += 4
	}
	if b < i {
		b += 4
	}
	return a < b
}

// cornersBetween returns the window corners passed when walking the
// perimeter forward from index a to index b. An endpoint sitting exactly
// on a corner includes that corner.
func (r Rect) cornersBetween(a, b float64) []orb.Point {
	if b < a {
		b += 4
	}
	var pts []orb.Point
	for k := int(math.Ceil(a)); k <= int(b); k++ {
		pts = append(pts, r.corner(k%4))
	}
	return pts
}
