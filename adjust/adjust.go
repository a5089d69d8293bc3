// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adjust sizes the white space around and between subplots
// to fit their tick labels, axis labels, and titles.
//
// The formulas are empirical. Margins grow with the estimated size of
// the text they must hold, plus a fixed pixel margin, and are limited
// so that text can never squeeze the plots out of the figure.
package adjust

import (
	"math"

	"github.com/aclements/go-yampex/figure"
	"github.com/aclements/go-yampex/textsize"
)

// tickPoints is the font size of tick labels.
const tickPoints = 10

// An Adjuster computes subplot margin parameters for a figure.
type Adjuster struct {
	fig *figure.Figure

	// Measurer measures text. If nil, the figure's Measurer is
	// used, and if that is nil, sizes are estimated.
	Measurer textsize.Measurer
}

// New returns an Adjuster for f.
func New(f *figure.Figure) *Adjuster {
	return &Adjuster{fig: f}
}

// textDims returns the size of text in pixels.
func (a *Adjuster) textDims(text string, points float64) (w, h float64) {
	if text == "" {
		return 0, 0
	}
	m := a.Measurer
	if m == nil {
		m = a.fig.Measurer
	}
	if m == nil {
		return textsize.New(a.fig.DPI).Estimate(text, points)
	}
	return m.Dims(text, points)
}

func (a *Adjuster) width(text string, points float64) float64 {
	w, _ := a.textDims(text, points)
	return w
}

// height is the measured height of text plus half again for
// surrounding space.
func (a *Adjuster) height(text string, points float64) float64 {
	_, h := a.textDims(text, points)
	return 1.5 * h
}

func (a *Adjuster) tickWidth(ax *figure.Axes) float64 {
	max := 0.0
	for _, l := range ax.Ticks(figure.Y).Labels {
		max = math.Max(max, a.width(l, tickPoints))
	}
	return max
}

func (a *Adjuster) tickHeight(ax *figure.Axes) float64 {
	max := 0.0
	for _, l := range ax.Ticks(figure.Y).Labels {
		max = math.Max(max, a.height(l, tickPoints))
	}
	return max
}

// labelHeight returns the unpadded height of an axis label, or 0.
func (a *Adjuster) labelHeight(ax *figure.Axes, axis figure.Axis) float64 {
	label, pts := ax.Label(axis)
	_, h := a.textDims(label, pts)
	return h
}

func (a *Adjuster) titleHeight(ax *figure.Axes) float64 {
	title, pts := ax.Title()
	_, h := a.textDims(title, pts)
	return h
}

func (a *Adjuster) onLeft(ax *figure.Axes) bool {
	_, col := ax.Position()
	return col == 0
}

func (a *Adjuster) onTop(ax *figure.Axes) bool {
	row, _ := ax.Position()
	return row == 0
}

// atBottom reports whether no subplot is below ax.
func (a *Adjuster) atBottom(ax *figure.Axes) bool {
	row, col := ax.Position()
	for _, o := range a.fig.Axes() {
		if r, c := o.Position(); c == col && r > row {
			return false
		}
	}
	return true
}

// wSpace returns the widest space needed left of a subplot for its
// tick labels and y label. If left, only subplots in the left column
// count.
func (a *Adjuster) wSpace(left bool) float64 {
	max := 0.0
	for _, ax := range a.fig.Axes() {
		if left && !a.onLeft(ax) {
			continue
		}
		w := a.tickWidth(ax)
		if h := a.labelHeight(ax, figure.Y); h > 0 {
			// The y label is rotated.
			w += 2 * h
		}
		max = math.Max(max, w)
	}
	return max
}

// hSpace returns the tallest space needed by a subplot for its tick
// labels, x label, and title. If top, only titles of the top row
// count. If bottom, only tick labels and x labels of the bottom row
// count.
func (a *Adjuster) hSpace(top, bottom, universalXLabel bool) float64 {
	max := 0.0
	for _, ax := range a.fig.Axes() {
		if top && !a.onTop(ax) {
			continue
		}
		if bottom && !a.atBottom(ax) {
			continue
		}
		h := 0.0
		if !top {
			h += a.tickHeight(ax)
			if bottom || !universalXLabel || a.atBottom(ax) {
				h += 2 * a.labelHeight(ax, figure.X)
			}
		}
		if !bottom {
			h += 2 * a.titleHeight(ax)
		}
		max = math.Max(max, h)
	}
	return max
}

// scaledWidth converts a pixel width plus margin to a fraction of the
// figure width, or of a subplot column's width if perSubplot.
func (a *Adjuster) scaledWidth(x float64, perSubplot bool, scale, margin float64) float64 {
	pw := a.fig.Width
	if perSubplot {
		_, ncols := a.fig.Grid()
		pw /= float64(max(ncols, 1))
	}
	return scale * (x + margin) / pw
}

// scaledHeight is like scaledWidth for heights, but is limited to
// limit if limit is positive.
func (a *Adjuster) scaledHeight(x float64, perSubplot bool, scale, margin, limit float64) float64 {
	ph := a.fig.Height
	if perSubplot {
		nrows, _ := a.fig.Grid()
		ph /= float64(max(nrows, 1))
	}
	h := scale * (x + margin) / ph
	if limit > 0 && h > limit {
		h = limit
	}
	return h
}

// UniversalXLabel reports whether every subplot has the same x label,
// so it only needs to be shown on the bottom row.
func UniversalXLabel(xlabels map[int]string) bool {
	first, seen := "", false
	for _, l := range xlabels {
		if seen && l != first {
			return false
		}
		first, seen = l, true
	}
	return true
}

// Adjust sets the x labels of the figure's subplots and returns
// margin parameters that fit all the text. xlabels maps subplot
// indexes to x labels of the given font size. If universalXLabel is
// set and all the labels are the same, only the bottom row gets one.
// titleHeight is the height in pixels of the figure title, if any.
func (a *Adjuster) Adjust(xlabels map[int]string, labelPoints float64, universalXLabel bool, titleHeight float64) figure.Params {
	if universalXLabel && !UniversalXLabel(xlabels) {
		universalXLabel = false
	}
	axes := a.fig.Axes()
	for k, label := range xlabels {
		if k < 0 || k >= len(axes) {
			continue
		}
		ax := axes[k]
		if universalXLabel && !a.atBottom(ax) {
			ax.SetLabel(figure.X, "", labelPoints)
			continue
		}
		ax.SetLabel(figure.X, label, labelPoints)
	}

	var p figure.Params
	topPixels := a.hSpace(true, false, false)
	if topPixels > 0 {
		// Subplot titles already make room.
		titleHeight *= 0.6
	}
	topPixels += titleHeight
	p.Top = 1 - a.scaledHeight(topPixels, false, 1, 15, 0.15)
	p.HSpace = a.scaledHeight(a.hSpace(false, false, universalXLabel), true, 1, 30, 0.3)
	p.Bottom = a.scaledHeight(a.hSpace(false, true, false), false, 1, 15, 0.3)
	p.WSpace = a.scaledWidth(a.wSpace(false), true, 1.3, 15)
	p.Left = a.scaledWidth(a.wSpace(true), false, 1.3, 15)
	p.Right = 1 - a.scaledWidth(a.rightOverhang(), false, 1, 15)
	return p
}

// rightOverhang returns how far the last x tick label of the
// right-most subplots extends past the plotting area.
func (a *Adjuster) rightOverhang() float64 {
	_, ncols := a.fig.Grid()
	max := 0.0
	for _, ax := range a.fig.Axes() {
		if _, col := ax.Position(); col != ncols-1 {
			continue
		}
		labels := ax.Ticks(figure.X).Labels
		if len(labels) == 0 {
			continue
		}
		max = math.Max(max, 0.5*a.width(labels[len(labels)-1], tickPoints))
	}
	return max
}
