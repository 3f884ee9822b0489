package klippa

import (
	"math"

	"github.com/paulmach/orb"
)

// Segment is a directed straight edge between two points. Direction is
// significant: clipping preserves the start-to-end orientation of its
// input, and chain reassembly matches segment ends to segment starts.
type Segment struct {
	Start, End orb.Point
}

// vertical reports whether the segment is parallel to the y axis.
func (s Segment) vertical() bool { return s.Start[0] == s.End[0] }

// orthogonal reports whether the segment is axis-aligned.
func (s Segment) orthogonal() bool {
	return s.Start[0] == s.End[0] || s.Start[1] == s.End[1]
}

// swapAxes mirrors the segment across the line y = x.
func (s Segment) swapAxes() Segment {
	return Segment{
		Start: orb.Point{s.Start[1], s.Start[0]},
		End:   orb.Point{s.End[1], s.End[0]},
	}
}

func (s Segment) dx() float64 { return s.End[0] - s.Start[0] }

func (s Segment) slope() float64 {
	return (s.End[1] - s.Start[1]) / (s.End[0] - s.Start[0])
}

// Intersection returns the point where seg truly crosses the receiver.
// The receiver must be axis-aligned; Intersection panics otherwise.
//
// Tangent contacts do not count as crossings: if seg ends exactly on the
// receiver's line, or runs collinear with it, the second return value is
// false. A crossing exactly through one of the receiver's endpoints does
// count and returns that endpoint.
func (s Segment) Intersection(seg Segment) (orb.Point, bool) {
	if !s.orthogonal() {
		panic("klippa: Intersection receiver must be axis-aligned")
	}

	// Horizontal receiver: solve in transposed axes, mirror the result back.
	if !s.vertical() {
		p, ok := s.swapAxes().Intersection(seg.swapAxes())
		if !ok {
			return orb.Point{}, false
		}
		return orb.Point{p[1], p[0]}, true
	}

	// Signed x-distances from seg's start to the receiver's line and to
	// seg's own end. seg crosses only if it heads toward the line and
	// reaches strictly past it.
	c := Segment{Start: seg.Start, End: s.Start}
	dxC := c.dx()
	dxB := seg.dx()
	if math.Signbit(dxC) != math.Signbit(dxB) || math.Abs(dxB) <= math.Abs(dxC) {
		return orb.Point{}, false
	}

	// seg passes between the receiver's endpoints only if its slope lies
	// between the slopes of the chords from seg's start to those endpoints
	// (inclusive, so a crossing through an endpoint is kept).
	d := Segment{Start: seg.Start, End: s.End}
	slopeB := seg.slope()
	slopeC := c.slope()
	slopeD := d.slope()
	if slopeB < minf(slopeC, slopeD) || slopeB > maxf(slopeC, slopeD) {
		return orb.Point{}, false
	}

	return orb.Point{seg.Start[0] + dxC, seg.Start[1] + dxC*slopeB}, true
}

// manhattanDist returns the L1 distance between two points.
func manhattanDist(a, b orb.Point) float64 {
	return math.Abs(a[0]-b[0]) + math.Abs(a[1]-b[1])
}

// minf returns the smaller of a and b; if one is NaN the other is
// returned. A chord slope is NaN when seg starts exactly on one of the
// receiver's endpoints.
func minf(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	case a < b:
		return a
	}
	return b
}

// maxf returns the larger of a and b; if one is NaN the other is returned.
func maxf(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	case a > b:
		return a
	}
	return b
}

// pointInRing reports whether p lies inside ring under the even-odd rule:
// a vertical ray from p to +infinity must cross the ring's edges an odd
// number of times. The ring must be closed (first == last).
func pointInRing(p orb.Point, ring orb.Ring) bool {
	ray := Segment{Start: p, End: orb.Point{p[0], math.Inf(1)}}
	crossings := 0
	for i := 0; i+1 < len(ring); i++ {
		if _, ok := ray.Intersection(Segment{Start: ring[i], End: ring[i+1]}); ok {
			crossings++
		}
	}
	return crossings%2 == 1
}
