// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"sort"
)

// SegmentIntersectsRect reports whether any point of the segment from
// a to b lies in r. It clips the segment against r's four edges
// (Liang-Barsky), so a segment with an endpoint inside r always
// intersects.
func SegmentIntersectsRect(a, b Point, r Rect) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			// Parallel to this edge; inside iff q >= 0.
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}
	return clip(-dx, a.X-r.X0) &&
		clip(dx, r.X1-a.X) &&
		clip(-dy, a.Y-r.Y0) &&
		clip(dy, r.Y1-a.Y) &&
		t0 <= t1
}

// PolylineIntersectsRect reports whether the polyline through the
// points (xs[i], ys[i]) passes through r. Points with a NaN
// coordinate break the polyline.
//
// If xs is non-decreasing and has no NaNs, only the segments spanning r's x extent
// are examined.
func PolylineIntersectsRect(xs, ys []float64, r Rect) bool {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 0 {
		return false
	}
	if n == 1 {
		return r.Contains(Point{xs[0], ys[0]})
	}

	lo, hi := 0, n-1
	if sorted(xs[:n]) {
		// Segment i runs from point i to point i+1. The first
		// segment that can reach r starts at the last point
		// left of r.X0.
		lo = sort.SearchFloat64s(xs[:n], r.X0) - 1
		if lo < 0 {
			lo = 0
		}
		hi = sort.Search(n, func(i int) bool { return xs[i] > r.X1 })
		if hi > n-1 {
			hi = n - 1
		}
	}
	for i := lo; i < hi; i++ {
		if SegmentIntersectsRect(Point{xs[i], ys[i]}, Point{xs[i+1], ys[i+1]}, r) {
			return true
		}
	}
	// Catch an isolated point between NaNs.
	for i := lo; i <= hi; i++ {
		if math.IsNaN(ys[i]) {
			continue
		}
		prevNaN := i == 0 || math.IsNaN(ys[i-1]) || math.IsNaN(xs[i-1])
		nextNaN := i == n-1 || math.IsNaN(ys[i+1]) || math.IsNaN(xs[i+1])
		if prevNaN && nextNaN && r.Contains(Point{xs[i], ys[i]}) {
			return true
		}
	}
	return false
}

// sorted reports whether xs is non-decreasing and free of NaNs, so
// that it can be binary searched.
func sorted(xs []float64) bool {
	for i, x := range xs {
		if math.IsNaN(x) || i > 0 && x < xs[i-1] {
			return false
		}
	}
	return true
}
