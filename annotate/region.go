// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotate

import (
	"fmt"

	"github.com/aclements/go-yampex/geom"
)

const (
	// ffShift is how far the box's connecting edge overlaps the
	// offset point.
	ffShift = 5

	// regionPadding is added around every region.
	regionPadding = 2
)

// A Region is the rectangle an annotation's box would occupy at some
// offset from its anchor, in display space. It also knows the anchor
// and the point of the box the arrow leaves from, so it can test for
// arrows crossing other regions.
type Region struct {
	geom.Rect
	Anchor geom.Point
	RelPos geom.Point
}

// NewRegion returns the region of a w by h box offset by offset from
// anchor.
//
// On each axis, a negative offset puts the box's far edge (right or
// top) at the offset point and connects the arrow there, a positive
// offset puts its near edge there, and a zero offset centers the box
// on the anchor.
func NewRegion(anchor, offset geom.Point, w, h float64) Region {
	var r Region
	r.Anchor = anchor
	r.X0, r.X1, r.RelPos.X = shift(anchor.X, offset.X, w)
	r.Y0, r.Y1, r.RelPos.Y = shift(anchor.Y, offset.Y, h)
	return r
}

func shift(v, d, dim float64) (v0, v1, relpos float64) {
	switch {
	case d < 0:
		relpos = 1
		v1 = v + d + ffShift
		v0 = v1 - dim
	case d > 0:
		relpos = 0
		v0 = v + d - ffShift
		v1 = v0 + dim
	default:
		relpos = 0.5
		v0 = v - 0.5*dim
		v1 = v + 0.5*dim
	}
	return v0 - regionPadding, v1 + regionPadding, relpos
}

// Overlaps reports whether r and o overlap.
func (r Region) Overlaps(o Region) bool {
	return r.Rect.Overlaps(o.Rect)
}

// ArrowOverlaps reports whether r's arrow crosses o. Only vertical and
// horizontal arrows are considered; diagonal arrows never overlap.
func (r Region) ArrowOverlaps(o Region) bool {
	// between reports whether z is strictly between a and b.
	between := func(a, b, z float64) bool {
		return z > a && z < b
	}
	x, y := r.Anchor.X, r.Anchor.Y
	switch {
	case r.RelPos.X == 0.5:
		// Vertical arrow.
		if x < o.X0 || x > o.X1 {
			return false
		}
		if r.Y1 < o.Y0 {
			// o is above r.
			if y < r.Y0 || between(r.Y1, o.Y0, y) {
				return false
			}
		} else if y > r.Y1 || between(o.Y1, r.Y0, y) {
			return false
		}
		return true
	case r.RelPos.Y == 0.5:
		// Horizontal arrow.
		if y < o.Y0 || y > o.Y1 {
			return false
		}
		if r.X1 < o.X0 {
			// o is right of r.
			if x < r.X0 || between(r.X1, o.X0, x) {
				return false
			}
		} else if x > r.X1 || between(o.X1, r.X0, x) {
			return false
		}
		return true
	}
	return false
}

func (r Region) String() string {
	return fmt.Sprintf("%v <--- %v", r.Anchor, r.Rect)
}
