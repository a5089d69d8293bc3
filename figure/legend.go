// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"math"

	"github.com/aclements/go-yampex/geom"
)

// legendEntries returns the lines of ax that have legend labels.
func (ax *Axes) legendEntries() []*Line {
	var ls []*Line
	for _, l := range ax.lines {
		if l.Style.Label != "" {
			ls = append(ls, l)
		}
	}
	return ls
}

// legendMetrics returns the size of one legend row and of the whole
// legend box.
func (ax *Axes) legendMetrics() (rowH, sampleW, pad, w, h float64) {
	f := ax.fig
	pts := orDefault(ax.legendPts, 10)
	px := f.Pixels(pts)
	pad = 0.5 * px
	sampleW = 2 * px
	entries := ax.legendEntries()
	for _, l := range entries {
		tw, th := f.TextDims(l.Style.Label, pts)
		w = math.Max(w, tw)
		rowH = math.Max(rowH, th)
	}
	w += sampleW + 3*pad
	h = float64(len(entries))*rowH + 2*pad
	return
}

// LegendBox returns the box of ax's legend in display space, placed at
// whichever candidate location covers the fewest plotted lines. ok is
// false if the legend is off or empty.
func (ax *Axes) LegendBox() (box geom.Rect, ok bool) {
	if !ax.legend || len(ax.legendEntries()) == 0 {
		return geom.Rect{}, false
	}
	_, _, pad, w, h := ax.legendMetrics()
	b := ax.box.Pad(-pad)
	cands := []geom.Point{
		{X: b.X1 - w, Y: b.Y1 - h},              // upper right
		{X: b.X0, Y: b.Y1 - h},                  // upper left
		{X: b.X0, Y: b.Y0},                      // lower left
		{X: b.X1 - w, Y: b.Y0},                  // lower right
		{X: b.X1 - w, Y: (b.Y0 + b.Y1 - h) / 2}, // center right
		{X: b.X0, Y: (b.Y0 + b.Y1 - h) / 2},     // center left
		{X: (b.X0 + b.X1 - w) / 2, Y: b.Y0},     // lower center
		{X: (b.X0 + b.X1 - w) / 2, Y: b.Y1 - h}, // upper center
	}
	var paths [][2][]float64
	for _, l := range ax.lines {
		px, py := ax.Transform(l.X, l.Y)
		paths = append(paths, [2][]float64{px, py})
	}
	best, bestBad := geom.Rect{}, math.Inf(1)
	for _, c := range cands {
		r := geom.Rect{X0: c.X, Y0: c.Y, X1: c.X + w, Y1: c.Y + h}
		bad := 0.0
		for _, p := range paths {
			if geom.PolylineIntersectsRect(p[0], p[1], r) {
				bad++
			}
		}
		for _, a := range ax.anns {
			if a.TextBox().Overlaps(r) {
				bad += 0.5
			}
		}
		if bad < bestBad {
			best, bestBad = r, bad
		}
		if bad == 0 {
			break
		}
	}
	return best, true
}
