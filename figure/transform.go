// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-yampex/geom"
)

// margin is the fraction of the data range added on each side of
// automatically computed limits.
const margin = 0.05

// DataLim returns the range of the finite data plotted on an axis,
// including reference lines. On a log axis only positive values
// count. ok is false if there is no such data.
func (ax *Axes) DataLim(axis Axis) (lo, hi float64, ok bool) {
	log := ax.axes[axis].log
	lo, hi = math.Inf(1), math.Inf(-1)
	add := func(v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || (log && v <= 0) {
			return
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	for _, l := range ax.lines {
		vs := l.X
		if axis == Y {
			vs = l.Y
		}
		for _, v := range vs {
			add(v)
		}
		if axis == Y && (l.Style.Kind == KindBar || l.Style.Kind == KindStem) {
			add(0)
		}
	}
	for _, r := range ax.refLines {
		if r.Axis == axis {
			add(r.At)
		}
	}
	return lo, hi, lo <= hi
}

// Lim returns the current limits of an axis. Limits that have not
// been set are computed from the data with a small margin.
func (ax *Axes) Lim(axis Axis) (lo, hi float64) {
	o := ax.axes[axis]
	lo, hi = o.lo, o.hi
	if !math.IsNaN(lo) && !math.IsNaN(hi) {
		return lo, hi
	}
	dlo, dhi, ok := ax.DataLim(axis)
	if !ok {
		if o.log {
			dlo, dhi = 1, 10
		} else {
			dlo, dhi = 0, 1
		}
	}
	if o.log {
		l0, l1 := math.Log10(dlo), math.Log10(dhi)
		if l0 == l1 {
			l0, l1 = l0-1, l1+1
		}
		d := margin * (l1 - l0)
		dlo, dhi = math.Pow(10, l0-d), math.Pow(10, l1+d)
	} else {
		if dlo == dhi {
			d := 0.05 * math.Abs(dlo)
			if d == 0 {
				d = 0.5
			}
			dlo, dhi = dlo-d, dhi+d
		} else {
			d := margin * (dhi - dlo)
			dlo, dhi = dlo-d, dhi+d
		}
	}
	if math.IsNaN(lo) {
		lo = dlo
	}
	if math.IsNaN(hi) {
		hi = dhi
	}
	return lo, hi
}

// unit maps a data coordinate on axis to [0, 1] across the plotting
// area. Values that cannot be shown on a log axis map to NaN.
func (ax *Axes) unit(axis Axis) func(v float64) float64 {
	lo, hi := ax.Lim(axis)
	if ax.axes[axis].log {
		if lo <= 0 || hi <= 0 {
			return func(float64) float64 { return math.NaN() }
		}
		s := scale.Linear{Min: math.Log10(lo), Max: math.Log10(hi)}
		return func(v float64) float64 {
			if v <= 0 {
				return math.NaN()
			}
			return s.Map(math.Log10(v))
		}
	}
	if lo == hi {
		return func(float64) float64 { return 0.5 }
	}
	s := scale.Linear{Min: lo, Max: hi}
	return s.Map
}

// DataToPixels converts a data point to display space.
func (ax *Axes) DataToPixels(x, y float64) geom.Point {
	ux, uy := ax.unit(X), ax.unit(Y)
	b := ax.box
	return geom.Point{
		X: b.X0 + ux(x)*b.Width(),
		Y: b.Y0 + uy(y)*b.Height(),
	}
}

// Transform converts data coordinates to display space.
func (ax *Axes) Transform(xs, ys []float64) (px, py []float64) {
	ux, uy := ax.unit(X), ax.unit(Y)
	b := ax.box
	px = make([]float64, len(xs))
	py = make([]float64, len(ys))
	for i, x := range xs {
		px[i] = b.X0 + ux(x)*b.Width()
	}
	for i, y := range ys {
		py[i] = b.Y0 + uy(y)*b.Height()
	}
	return
}
