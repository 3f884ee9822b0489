package klippa

import (
	"sort"

	"github.com/paulmach/orb"
)

// Clip returns the part of g that lies within the window, or nil when
// nothing remains. Multi-part results collapse to their single-part type
// when exactly one part survives, except MultiPoint which always stays a
// MultiPoint. Unsupported variants (orb.Collection, orb.Bound) yield nil.
//
// The input geometry is never modified.
func (r Rect) Clip(g orb.Geometry) orb.Geometry {
	switch g := g.(type) {
	case orb.Point:
		if r.Contains(g) {
			return g
		}
		return nil

	case orb.MultiPoint:
		var mp orb.MultiPoint
		for _, p := range g {
			if r.Contains(p) {
				mp = append(mp, p)
			}
		}
		if len(mp) == 0 {
			return nil
		}
		return mp

	case orb.LineString:
		return lineStringResult(r.clipLineString(g))

	case orb.MultiLineString:
		var chains []orb.LineString
		for _, ls := range g {
			chains = append(chains, r.clipLineString(ls)...)
		}
		return lineStringResult(chains)

	case orb.Ring:
		return ringResult(r.clipRing(g))

	case orb.Polygon:
		return polygonResult(r.clipPolygon(g))

	case orb.MultiPolygon:
		var polys []orb.Polygon
		for _, poly := range g {
			polys = append(polys, r.clipPolygon(poly)...)
		}
		return polygonResult(polys)
	}

	return nil
}

func (r Rect) clipLineString(ls orb.LineString) []orb.LineString {
	groups := r.ClipSegments(chainSegments(ls))
	chains := make([]orb.LineString, 0, len(groups))
	for _, g := range groups {
		chains = append(chains, orb.LineString(chainCoords(g)))
	}
	return chains
}

func lineStringResult(chains []orb.LineString) orb.Geometry {
	switch len(chains) {
	case 0:
		return nil
	case 1:
		return chains[0]
	}
	return orb.MultiLineString(chains)
}

// fragment is an open piece of a clipped ring, tagged with the perimeter
// index of its first coordinate.
type fragment struct {
	start  float64
	coords []orb.Point
}

// clipRing clips one ring to the window and stitches the surviving pieces
// back into closed rings, routing through window corners where the ring
// left and re-entered the window on different sides.
func (r Rect) clipRing(rg orb.Ring) []orb.Ring {
	groups := r.ClipSegments(ringSegments(rg))
	if len(groups) == 0 {
		// The boundary misses the window entirely. The window is either
		// fully inside the ring, which makes the whole window the result,
		// or fully outside it.
		if len(rg) >= 3 && pointInRing(r.center(), closeRing(rg)) {
			return []orb.Ring{r.boundaryRing()}
		}
		return nil
	}

	queue := make([]fragment, 0, len(groups))
	for _, g := range groups {
		coords := chainCoords(g)
		queue = append(queue, fragment{
			start:  r.PerimeterIndex(coords[0]),
			coords: coords,
		})
	}

	// Highest start index first; each round works on the tail fragment,
	// the one with the lowest remaining start.
	sort.Slice(queue, func(i, j int) bool {
		return queue[i].start > queue[j].start
	})

	Logger().Debug("stitching ring fragments", "fragments", len(queue))

	var rings []orb.Ring
	for len(queue) > 0 {
		a := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if isClosed(a.coords) {
			rings = append(rings, orb.Ring(a.coords))
			continue
		}

		// Walk the perimeter forward from a's open tail. The next
		// fragment is the one whose start comes soonest, and a's own
		// start bounds the walk so the search never overshoots the
		// point that would close a.
		tail := r.PerimeterIndex(a.coords[len(a.coords)-1])
		best := -1
		for i, f := range queue {
			if !indexCloser(tail, f.start, a.start) {
				continue
			}
			if best < 0 || indexCloser(tail, f.start, queue[best].start) {
				best = i
			}
		}

		if best < 0 {
			// Nothing between the tail and a's own start: close a onto
			// itself around the perimeter.
			Logger().Debug("closing fragment", "start", a.start, "tail", tail)
			a.coords = append(a.coords, r.cornersBetween(tail, a.start)...)
			a.coords = append(a.coords, a.coords[0])
			queue = append(queue, a)
			continue
		}

		b := queue[best]
		queue = append(queue[:best], queue[best+1:]...)
		Logger().Debug("joining fragments", "tail", tail, "next", b.start)
		a.coords = append(a.coords, r.cornersBetween(tail, b.start)...)
		a.coords = append(a.coords, b.coords...)
		queue = append(queue, a)
	}

	return rings
}

func ringResult(rings []orb.Ring) orb.Geometry {
	switch len(rings) {
	case 0:
		return nil
	case 1:
		return rings[0]
	}
	mp := make(orb.MultiPolygon, 0, len(rings))
	for _, rg := range rings {
		mp = append(mp, orb.Polygon{rg})
	}
	return mp
}

// clipPolygon clips the exterior ring, then clips each hole and attaches
// the surviving holes to the exterior that contains them. Rings that
// collapse below three distinct points are discarded.
func (r Rect) clipPolygon(poly orb.Polygon) []orb.Polygon {
	if len(poly) == 0 {
		return nil
	}

	var polys []orb.Polygon
	for _, rg := range r.clipRing(poly[0]) {
		if degenerateRing(rg) {
			continue
		}
		polys = append(polys, orb.Polygon{rg})
	}
	if len(polys) == 0 {
		return nil
	}

	for _, hole := range poly[1:] {
		// Holes wind opposite to the exterior. Clipping them reversed
		// keeps the stitching corner-routing direction consistent with
		// exterior processing; flip the survivors back afterwards.
		for _, rg := range r.clipRing(reverseRing(hole)) {
			if degenerateRing(rg) {
				continue
			}
			r.attachHole(polys, reverseRing(rg))
		}
	}

	return polys
}

// attachHole adds a clipped hole to the exterior ring that contains it.
// A hole contained by none of the exteriors is dropped.
func (r Rect) attachHole(polys []orb.Polygon, hole orb.Ring) {
	if len(polys) == 1 {
		polys[0] = append(polys[0], hole)
		return
	}

	probe := r.interiorCoord(hole)
	for i := range polys {
		if pointInRing(probe, closeRing(polys[i][0])) {
			polys[i] = append(polys[i], hole)
			return
		}
	}
	Logger().Debug("hole matches no exterior", "probe", probe)
}

// interiorCoord returns a coordinate of rg suited for containment
// probing, preferring one strictly inside the window: coordinates on the
// window boundary may be shared between exteriors and are ambiguous.
func (r Rect) interiorCoord(rg orb.Ring) orb.Point {
	for _, p := range rg {
		if r.x0 < p[0] && p[0] < r.x1 && r.y0 < p[1] && p[1] < r.y1 {
			return p
		}
	}
	return rg[0]
}

func polygonResult(polys []orb.Polygon) orb.Geometry {
	switch len(polys) {
	case 0:
		return nil
	case 1:
		return polys[0]
	}
	return orb.MultiPolygon(polys)
}
