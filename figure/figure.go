// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure is a small plotting library: a Figure holds a grid
// of Axes, each holding lines, labels, text boxes, and annotations,
// and can be rendered to SVG or PNG.
//
// Geometry is in display space, where the origin is the lower left
// corner of the figure, units are pixels, and y increases upward.
package figure

import (
	"fmt"

	"github.com/aclements/go-gg/gg/layout"
	"github.com/aclements/go-yampex/geom"
	"github.com/aclements/go-yampex/textsize"
)

// Params are the subplot margin parameters of a figure. Left, Right,
// Top, and Bottom are the edges of the subplot grid as fractions of
// the figure width or height. WSpace and HSpace are the gaps between
// neighboring subplots as fractions of the average subplot width or
// height.
type Params struct {
	Left, Right, Top, Bottom float64
	WSpace, HSpace           float64
}

// DefaultParams are the margins of a new figure.
var DefaultParams = Params{
	Left: 0.125, Right: 0.9,
	Top: 0.88, Bottom: 0.11,
	WSpace: 0.2, HSpace: 0.2,
}

// A Figure is a canvas holding a grid of subplots.
type Figure struct {
	// Width and Height are the figure size in pixels.
	Width, Height float64

	// DPI is the resolution used to convert points to pixels.
	DPI float64

	// Measurer measures text. It defaults to a textsize.Computer
	// for DPI.
	Measurer textsize.Measurer

	params   Params
	suptitle *Text
	axes     []*Axes
	texts    []*Text

	nrows, ncols int
}

// New returns an empty figure of the given size.
func New(width, height, dpi float64) *Figure {
	if dpi <= 0 {
		dpi = textsize.DefaultDPI
	}
	return &Figure{
		Width:    width,
		Height:   height,
		DPI:      dpi,
		Measurer: textsize.New(dpi),
		params:   DefaultParams,
	}
}

// Box returns the rectangle of the whole figure.
func (f *Figure) Box() geom.Rect {
	return geom.Rect{X0: 0, Y0: 0, X1: f.Width, Y1: f.Height}
}

// Pixels converts a size in points to pixels.
func (f *Figure) Pixels(points float64) float64 {
	return f.DPI * points / 72
}

// TextDims returns the pixel size of text at the given point size.
func (f *Figure) TextDims(text string, points float64) (w, h float64) {
	if text == "" {
		return 0, 0
	}
	return f.Measurer.Dims(text, points)
}

// AddSubplot adds a subplot at position k of an nrows by ncols grid
// and returns its Axes. k counts from 0 in row-major order starting
// at the top left. All subplots of a figure share one grid shape.
func (f *Figure) AddSubplot(nrows, ncols, k int) (*Axes, error) {
	if nrows < 1 || ncols < 1 {
		return nil, fmt.Errorf("bad subplot grid %dx%d", nrows, ncols)
	}
	if k < 0 || k >= nrows*ncols {
		return nil, fmt.Errorf("subplot index %d out of range for %dx%d grid", k, nrows, ncols)
	}
	if len(f.axes) > 0 && (nrows != f.nrows || ncols != f.ncols) {
		return nil, fmt.Errorf("subplot grid %dx%d does not match existing %dx%d grid", nrows, ncols, f.nrows, f.ncols)
	}
	f.nrows, f.ncols = nrows, ncols
	ax := newAxes(f, k/ncols, k%ncols)
	f.axes = append(f.axes, ax)
	f.layout()
	return ax, nil
}

// Axes returns the subplots of f in the order they were added.
func (f *Figure) Axes() []*Axes {
	return f.axes
}

// Grid returns the shape of f's subplot grid.
func (f *Figure) Grid() (nrows, ncols int) {
	return f.nrows, f.ncols
}

// Params returns the current margin parameters.
func (f *Figure) Params() Params {
	return f.params
}

// SubplotsAdjust sets the margin parameters and lays out the
// subplots again.
func (f *Figure) SubplotsAdjust(p Params) {
	f.params = p
	f.layout()
}

// SetSuptitle sets the figure title, drawn centered at the top of the
// figure. An empty text removes it.
func (f *Figure) SetSuptitle(text string, points float64) {
	if text == "" {
		f.suptitle = nil
		return
	}
	f.suptitle = &Text{
		X: 0.5, Y: 0.98, Text: text,
		Style: TextStyle{Size: points, HAlign: "center", VAlign: "top"},
	}
}

// Suptitle returns the figure title, or nil.
func (f *Figure) Suptitle() *Text {
	return f.suptitle
}

// Text adds text to the figure at (x, y) in figure fractions.
func (f *Figure) Text(x, y float64, text string, style TextStyle) *Text {
	t := &Text{X: x, Y: y, Text: text, Style: style}
	f.texts = append(f.texts, t)
	return t
}

// Texts returns the text items added by Text.
func (f *Figure) Texts() []*Text {
	return f.texts
}

// RemoveText removes t from f. It reports whether t was found.
func (f *Figure) RemoveText(t *Text) bool {
	var ok bool
	f.texts, ok = removeText(f.texts, t)
	return ok
}

func removeText(ts []*Text, t *Text) ([]*Text, bool) {
	for i, u := range ts {
		if u == t {
			return append(ts[:i:i], ts[i+1:]...), true
		}
	}
	return ts, false
}

// A Text is text placed at a position given as fractions of a parent
// rectangle, which is either the figure or an Axes.
type Text struct {
	X, Y  float64
	Text  string
	Style TextStyle
}

// cell is a leaf of the subplot layout grid.
type cell struct {
	layout.Leaf
	w, h         float64
	flexw, flexh bool
}

func (c *cell) SizeHint() (w, h float64, flexw, flexh bool) {
	return c.w, c.h, c.flexw, c.flexh
}

// layout assigns each Axes its box. Subplot cells are flexible and
// share the grid area equally. They are separated by fixed gap cells.
func (f *Figure) layout() {
	if f.nrows == 0 {
		return
	}
	p := f.params
	gridW := (p.Right - p.Left) * f.Width
	gridH := (p.Top - p.Bottom) * f.Height
	if gridW < 0 {
		gridW = 0
	}
	if gridH < 0 {
		gridH = 0
	}
	ws, hs := clampSpace(p.WSpace), clampSpace(p.HSpace)
	axW := gridW / (float64(f.ncols) + float64(f.ncols-1)*ws)
	axH := gridH / (float64(f.nrows) + float64(f.nrows-1)*hs)

	// Cells are at even grid positions and gaps are at odd
	// positions. The layout grid's y axis points down.
	var g layout.Grid
	cells := make([]*cell, f.nrows*f.ncols)
	for r := 0; r < f.nrows; r++ {
		for c := 0; c < f.ncols; c++ {
			cl := &cell{flexw: true, flexh: true}
			cells[r*f.ncols+c] = cl
			g.Add(cl, 2*c, 2*r, 1, 1)
		}
	}
	for c := 1; c < f.ncols; c++ {
		g.Add(&cell{w: ws * axW, flexh: true}, 2*c-1, 0, 1, 1)
	}
	for r := 1; r < f.nrows; r++ {
		g.Add(&cell{h: hs * axH, flexw: true}, 0, 2*r-1, 1, 1)
	}
	g.SetLayout(0, 0, gridW, gridH)

	for _, ax := range f.axes {
		x, y, w, h := cells[ax.row*f.ncols+ax.col].Layout()
		x0 := p.Left*f.Width + x
		y1 := p.Top*f.Height - y
		ax.box = geom.Rect{X0: x0, Y0: y1 - h, X1: x0 + w, Y1: y1}
	}
}

func clampSpace(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 0.9 {
		return 0.9
	}
	return s
}
