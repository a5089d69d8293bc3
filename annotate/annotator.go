// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package annotate places text annotations on a plot so that they
// avoid the plotted data, the edges of the subplot and figure, and
// each other.
//
// Each annotation is tried at a series of compass offsets of
// increasing radius from its data point. Every candidate is scored
// for conflicts by a Positioner and the annotation is moved to the
// least bad one. Since moving one annotation can create conflicts for
// others, all of them are re-evaluated until nothing moves.
package annotate

import (
	"log"
	"math"

	"github.com/aclements/go-yampex/figure"
	"github.com/aclements/go-yampex/geom"
	"github.com/aclements/go-yampex/textsize"
)

// rp is the distance of the on-axis compass offsets, which keeps them
// as far out as the diagonal ones.
const rp = 28.3

// offsets are the compass offsets tried at every radius: NE, E, SE,
// S, SW, W, NW, N.
var offsets = []geom.Point{
	{X: 20, Y: 20},
	{X: rp, Y: 0},
	{X: 20, Y: -20},
	{X: 0, Y: -rp},
	{X: -20, Y: -20},
	{X: -rp, Y: 0},
	{X: -20, Y: 20},
	{X: 0, Y: rp},
}

// moreOffsets follow the corresponding compass offset at radii beyond
// 2: NNE, ENE, ESE, SSE, SSW, WSW, WNW, NNW.
var moreOffsets = []geom.Point{
	{X: 11, Y: 26},
	{X: 26, Y: 11},
	{X: 26, Y: -11},
	{X: 11, Y: -26},
	{X: -11, Y: -26},
	{X: -26, Y: -11},
	{X: -26, Y: 11},
	{X: -11, Y: 26},
}

var radii = []float64{1, 2, 4, 8, 12, 16}

// Default appearance of annotations.
const (
	DefaultFontSize = 12 // points
	DefaultColor    = "#800000"
	DefaultMaxDepth = 10
)

// An Annotator places the annotations of one subplot.
type Annotator struct {
	// FontSize is the annotation font size, either in points or
	// as a size name such as "small".
	FontSize any

	// FontWeight is "normal" or "bold".
	FontWeight string

	// Color is the color of the box edge and arrow.
	Color string

	// MaxDepth limits the number of passes Update makes.
	MaxDepth int

	// Verbose logs every move.
	Verbose bool

	ax *figure.Axes
	p  *Positioner
}

// New returns an Annotator for the annotations of ax.
func New(ax *figure.Axes) *Annotator {
	return &Annotator{
		FontSize:   DefaultFontSize,
		FontWeight: "normal",
		Color:      DefaultColor,
		MaxDepth:   DefaultMaxDepth,
		ax:         ax,
		p:          NewPositioner(NewSizer()),
	}
}

// Positioner returns the Positioner that scores placements.
func (an *Annotator) Positioner() *Positioner {
	return an.p
}

// Annotations returns the annotations placed by an.
func (an *Annotator) Annotations() []*figure.Annotation {
	return an.p.Annotations()
}

func (an *Annotator) points() float64 {
	return textsize.Points(an.FontSize)
}

// Padding returns the padding inside an annotation box, in units of
// the font size. Larger fonts get relatively less padding.
func (an *Annotator) Padding() float64 {
	return math.Min(0.25, 0.44-0.008*an.points())
}

// TextAlignment returns the horizontal and vertical alignment of text
// whose box connects to its arrow at relpos.
func TextAlignment(relpos geom.Point) (ha, va string) {
	switch relpos.X {
	case 0:
		ha = "left"
	case 1:
		ha = "right"
	default:
		ha = "center"
	}
	switch relpos.Y {
	case 0:
		va = "bottom"
	case 1:
		va = "top"
	default:
		va = "center"
	}
	return
}

// Add annotates data point (x, y) with text and moves annotations as
// needed to fit it in.
func (an *Annotator) Add(x, y float64, text string) *figure.Annotation {
	relpos := geom.Pt(0.5, 0.5)
	ha, va := TextAlignment(relpos)
	style := figure.TextStyle{
		Size:     an.points(),
		Weight:   an.FontWeight,
		HAlign:   ha,
		VAlign:   va,
		Box:      true,
		BoxFace:  "white",
		BoxEdge:  an.Color,
		BoxAlpha: 0.8,
		BoxPad:   an.Padding(),
	}
	a := an.ax.Annotate(text, x, y, geom.Point{}, relpos, style)
	a.ArrowColor = an.Color
	an.p.Add(a)
	an.Update()
	return a
}

// Remove removes a from the subplot.
func (an *Annotator) Remove(a *figure.Annotation) {
	an.ax.RemoveAnnotation(a)
	an.p.Remove(a)
}

// Update re-evaluates the placement of every annotation, repeating
// until none moves or MaxDepth passes have been made. It reports
// whether anything moved.
func (an *Annotator) Update() bool {
	an.p.LoadData(an.ax)
	maxDepth := an.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	updated := false
	for depth := 0; depth < maxDepth; depth++ {
		moved := false
		for _, a := range an.p.Annotations() {
			if an.evaluate(a) {
				moved = true
			}
		}
		if !moved {
			break
		}
		updated = true
	}
	return updated
}

func radiusPenalty(radius float64) float64 {
	if radius > 2 {
		return 0.2 * math.Sqrt(radius)
	}
	return 0
}

// searchDone reports whether no radius beyond radii[k] can beat a
// best score of best.
func searchDone(best float64, k int) bool {
	return k+1 < len(radii) && best < radiusPenalty(radii[k+1])
}

// best searches for the best offset of a. It returns the offset, the
// region at that offset, and its score.
func (an *Annotator) best(a *figure.Annotation) (geom.Point, Region, float64) {
	var (
		bestScore  = 1e9
		bestOffset geom.Point
		bestRegion Region
	)
	for k, radius := range radii {
		try := func(offset geom.Point) bool {
			score, r := an.p.Score(a, offset, radius, bestScore)
			if score < bestScore {
				bestScore = score
				bestOffset = geom.Pt(radius*offset.X, radius*offset.Y)
				bestRegion = r
			}
			return score == 0
		}
		for i, off := range offsets {
			if try(off) {
				break
			}
			if radius > 2 && try(moreOffsets[i]) {
				break
			}
		}
		if bestScore == 0 {
			break
		}
		bestScore += radiusPenalty(radius)
		if searchDone(bestScore, k) {
			break
		}
	}
	return bestOffset, bestRegion, bestScore
}

// evaluate moves a to its best offset. It reports whether a moved.
// An annotation whose anchor is not on the plot, such as a
// non-positive value on a log axis, is left where it is.
func (an *Annotator) evaluate(a *figure.Annotation) bool {
	if a.Anchor().IsNaN() {
		return false
	}
	offset, r, score := an.best(a)
	if math.Abs(offset.X-a.Offset.X) <= 0.5 && math.Abs(offset.Y-a.Offset.Y) <= 0.5 {
		return false
	}
	if an.Verbose {
		log.Printf("annotation %q: %v -> %v, score %.2f", a.Text, a.Offset, offset, score)
	}
	a.Offset = offset
	a.RelPos = r.RelPos
	a.Style.HAlign, a.Style.VAlign = TextAlignment(r.RelPos)
	return true
}
