// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotate

import (
	"github.com/aclements/go-yampex/figure"
	"github.com/aclements/go-yampex/geom"
)

// Badness weights.
const (
	axesBoundaryScore   = 3.0
	figureBoundaryScore = 6.0
	overlapScore        = 4.0
	arrowOverlapScore   = 2.0
	dataScore           = 1.5
)

// A Positioner scores candidate placements of annotations. Lower
// scores are better and zero means no conflicts.
type Positioner struct {
	sizer *Sizer
	anns  []*figure.Annotation

	// data holds each plotted line of the axes in display space.
	data [][2][]float64
}

// NewPositioner returns a Positioner that sizes annotation boxes with
// sizer.
func NewPositioner(sizer *Sizer) *Positioner {
	return &Positioner{sizer: sizer}
}

// Add makes a one of the annotations that others must avoid.
func (p *Positioner) Add(a *figure.Annotation) {
	p.anns = append(p.anns, a)
}

// Remove removes a from p's annotations.
func (p *Positioner) Remove(a *figure.Annotation) {
	for i, b := range p.anns {
		if a == b {
			p.anns = append(p.anns[:i:i], p.anns[i+1:]...)
			return
		}
	}
}

// Annotations returns the annotations p knows about.
func (p *Positioner) Annotations() []*figure.Annotation {
	return p.anns
}

// SetData sets the data sets, in display space, that annotations
// should avoid.
func (p *Positioner) SetData(data [][2][]float64) {
	p.data = data
}

// LoadData sets p's data to the lines plotted on ax.
func (p *Positioner) LoadData(ax *figure.Axes) {
	var data [][2][]float64
	for _, l := range ax.Lines() {
		xs, ys := ax.Transform(l.X, l.Y)
		data = append(data, [2][]float64{xs, ys})
	}
	p.SetData(data)
}

// Region returns the region a would occupy at offset.
func (p *Positioner) Region(a *figure.Annotation, offset geom.Point) Region {
	w, h := p.sizer.Size(a)
	return NewRegion(a.Anchor(), offset, w, h)
}

// Score returns the badness of placing a at offset times radius.
// Scoring stops early once it reaches mustBeat. It also returns the
// region that was scored.
func (p *Positioner) Score(a *figure.Annotation, offset geom.Point, radius, mustBeat float64) (float64, Region) {
	r := p.Region(a, geom.Pt(radius*offset.X, radius*offset.Y))
	score := p.withBoundary(a, r)
	if score < mustBeat {
		score += p.withOthers(a, r, mustBeat)
	}
	if score < mustBeat {
		score += p.withData(r, mustBeat)
	}
	return radius * score, r
}

// withBoundary scores r going beyond the axes box, and more for also
// going beyond the figure.
func (p *Positioner) withBoundary(a *figure.Annotation, r Region) float64 {
	ax := a.Axes()
	if !r.Outside(ax.Box()) {
		return 0
	}
	score := axesBoundaryScore
	if r.Outside(ax.Figure().Box()) {
		score += figureBoundaryScore
	}
	return score
}

// withOthers scores r overlapping other annotations at their current
// offsets.
func (p *Positioner) withOthers(a *figure.Annotation, r Region, mustBeat float64) float64 {
	score := 0.0
	for _, other := range p.anns {
		if other == a || other.Anchor().IsNaN() {
			continue
		}
		or := p.Region(other, other.Offset)
		if r.Overlaps(or) {
			return overlapScore
		}
		if r.ArrowOverlaps(or) {
			score += arrowOverlapScore
		}
		if score >= mustBeat {
			break
		}
	}
	return score
}

// withData scores r for each data set it crosses.
func (p *Positioner) withData(r Region, mustBeat float64) float64 {
	score := 0.0
	for _, d := range p.data {
		if geom.PolylineIntersectsRect(d[0], d[1], r.Rect) {
			score += dataScore
			if score >= mustBeat {
				break
			}
		}
	}
	return score
}
