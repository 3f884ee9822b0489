package klippa

import "github.com/paulmach/orb"

// chainSegments decomposes an ordered coordinate chain into consecutive
// segments. Fewer than two coordinates yield no segments.
func chainSegments(coords []orb.Point) []Segment {
	if len(coords) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(coords)-1)
	for i := 0; i+1 < len(coords); i++ {
		segs = append(segs, Segment{Start: coords[i], End: coords[i+1]})
	}
	return segs
}

// chainCoords flattens a contiguous segment chain back into its
// coordinate sequence.
func chainCoords(segs []Segment) []orb.Point {
	if len(segs) == 0 {
		return nil
	}
	coords := make([]orb.Point, 0, len(segs)+1)
	for _, s := range segs {
		coords = append(coords, s.Start)
	}
	return append(coords, segs[len(segs)-1].End)
}

// ringSegments decomposes a ring into its boundary segments, closing the
// ring first if its last coordinate does not repeat the first.
func ringSegments(rg orb.Ring) []Segment {
	return chainSegments(closeRing(rg))
}

// closeRing returns rg with an explicit closing coordinate. rg itself is
// never modified.
func closeRing(rg orb.Ring) orb.Ring {
	if len(rg) == 0 || rg[0] == rg[len(rg)-1] {
		return rg
	}
	out := make(orb.Ring, len(rg), len(rg)+1)
	copy(out, rg)
	return append(out, rg[0])
}

// reverseRing returns a reversed copy of rg.
func reverseRing(rg orb.Ring) orb.Ring {
	out := make(orb.Ring, len(rg))
	for i, p := range rg {
		out[len(rg)-1-i] = p
	}
	return out
}

// isClosed reports whether a coordinate chain ends where it starts.
func isClosed(coords []orb.Point) bool {
	return len(coords) > 1 && coords[0] == coords[len(coords)-1]
}

// degenerateRing reports whether rg holds fewer than three distinct
// coordinates once closed, too few to bound any area.
func degenerateRing(rg orb.Ring) bool {
	return len(closeRing(rg)) < 4
}
