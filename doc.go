// Package klippa clips 2-D vector geometries against an axis-aligned
// rectangular window.
//
// # Overview
//
// klippa implements exact rectangle clipping for the geometry types of
// github.com/paulmach/orb: points, line strings, rings, polygons, and their
// multi-part variants. Clipping a polygon ring that leaves and re-enters the
// window severs it into open fragments; klippa stitches those fragments back
// into closed rings by walking the window boundary, splicing in window
// corners where the ring routed around them. Interior rings (holes) are
// clipped the same way and reattached to whichever clipped exterior ring
// contains them.
//
// # Quick Start
//
//	import (
//		"github.com/klippa-geo/klippa"
//		"github.com/paulmach/orb"
//	)
//
//	rect := klippa.NewRect(0, 0, 4, 4)
//	out := rect.Clip(orb.LineString{{-1, 1}, {5, 1}})
//	// out is orb.LineString{{0, 1}, {4, 1}}
//
// # Results
//
// Clip returns nil when nothing of the input lies inside the window: a
// geometry entirely outside, a segment that only grazes a window corner, or
// a ring that collapses to fewer than three distinct points. Unsupported
// variants (orb.Collection, orb.Bound) also yield nil. A nil result is not
// an error; clipping has no error conditions for valid geometry.
//
// # Concurrency
//
// A Rect is immutable after construction. A single Rect may clip many
// geometries from many goroutines concurrently; per-call state is local.
package klippa

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
