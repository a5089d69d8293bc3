// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the pixel-space geometry used to lay out
// figures and to test annotation placements for overlap.
//
// All coordinates are in display space: the origin is at the lower
// left corner of the figure and y increases upward.
package geom

import (
	"fmt"
	"math"
)

// Point is a location in display space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle. A well-formed Rect has X0 <= X1
// and Y0 <= Y1, so (X0, Y0) is its lower left corner.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Center() Point {
	return Point{0.5 * (r.X0 + r.X1), 0.5 * (r.Y0 + r.Y1)}
}

// Contains reports whether p is inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Pad returns r grown by d on every side. A negative d shrinks it.
func (r Rect) Pad(d float64) Rect {
	return Rect{r.X0 - d, r.Y0 - d, r.X1 + d, r.Y1 + d}
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, o.X0),
		Y0: math.Min(r.Y0, o.Y0),
		X1: math.Max(r.X1, o.X1),
		Y1: math.Max(r.Y1, o.Y1),
	}
}

// Intersect returns the intersection of r and o and whether it is
// non-empty.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	i := Rect{
		X0: math.Max(r.X0, o.X0),
		Y0: math.Max(r.Y0, o.Y0),
		X1: math.Min(r.X1, o.X1),
		Y1: math.Min(r.Y1, o.Y1),
	}
	if i.X0 > i.X1 || i.Y0 > i.Y1 {
		return Rect{}, false
	}
	return i, true
}

// XOverlap reports whether the x extents of r and o overlap. Extents
// that merely touch overlap.
func (r Rect) XOverlap(o Rect) bool {
	return !(r.X1 < o.X0 || r.X0 > o.X1)
}

// YOverlap reports whether the y extents of r and o overlap.
func (r Rect) YOverlap(o Rect) bool {
	return !(r.Y1 < o.Y0 || r.Y0 > o.Y1)
}

// Overlaps reports whether r and o share any point.
func (r Rect) Overlaps(o Rect) bool {
	return r.XOverlap(o) && r.YOverlap(o)
}

// Outside reports whether any part of r lies beyond bound.
func (r Rect) Outside(bound Rect) bool {
	return r.X0 < bound.X0 || r.X1 > bound.X1 || r.Y0 < bound.Y0 || r.Y1 > bound.Y1
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.0f,%.0f %.0f,%.0f]", r.X0, r.Y0, r.X1, r.Y1)
}
