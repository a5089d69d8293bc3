// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"math"

	"github.com/aclements/go-yampex/geom"
)

// Axis identifies the x or y axis of an Axes.
type Axis int

const (
	X Axis = iota
	Y
)

func (a Axis) String() string {
	if a == X {
		return "x"
	}
	return "y"
}

// A Line is one data set plotted on an Axes.
type Line struct {
	X, Y  []float64
	Style LineStyle
}

// A RefLine is a vertical or horizontal line across an Axes at a
// data coordinate.
type RefLine struct {
	Axis  Axis // X for a vertical line at X=At
	At    float64
	Style LineStyle
}

// axisOpts are the per-axis settings of an Axes.
type axisOpts struct {
	lo, hi   float64 // NaN if not set
	log      bool
	label    string
	labelPts float64
	minor    bool
	maxTicks int
	spacing  float64
}

// Axes is a single subplot.
type Axes struct {
	fig      *Figure
	row, col int
	box      geom.Rect

	axes [2]axisOpts

	title    string
	titlePts float64
	grid     bool

	lines    []*Line
	refLines []RefLine
	texts    []*Text
	anns     []*Annotation

	legend    bool
	legendPts float64
}

func newAxes(f *Figure, row, col int) *Axes {
	ax := &Axes{fig: f, row: row, col: col}
	ax.Clear()
	return ax
}

// Figure returns the figure containing ax.
func (ax *Axes) Figure() *Figure {
	return ax.fig
}

// Position returns the row and column of ax in the subplot grid.
func (ax *Axes) Position() (row, col int) {
	return ax.row, ax.col
}

// Box returns the pixel rectangle of the plotting area.
func (ax *Axes) Box() geom.Rect {
	return ax.box
}

// Clear removes everything drawn on ax and resets its settings.
func (ax *Axes) Clear() {
	for i := range ax.axes {
		ax.axes[i] = axisOpts{lo: math.NaN(), hi: math.NaN()}
	}
	ax.title, ax.titlePts = "", 0
	ax.grid = false
	ax.lines, ax.refLines, ax.texts, ax.anns = nil, nil, nil, nil
	ax.legend = false
}

// AddLine plots ys against xs. It is an error for xs and ys to
// differ in length.
func (ax *Axes) AddLine(xs, ys []float64, style LineStyle) (*Line, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("x and y have different lengths %d and %d", len(xs), len(ys))
	}
	l := &Line{X: xs, Y: ys, Style: style}
	ax.lines = append(ax.lines, l)
	return l, nil
}

// Lines returns the data sets plotted on ax.
func (ax *Axes) Lines() []*Line {
	return ax.lines
}

// AddRefLine draws a vertical (axis X) or horizontal (axis Y) line
// across ax at data coordinate at.
func (ax *Axes) AddRefLine(axis Axis, at float64, style LineStyle) {
	ax.refLines = append(ax.refLines, RefLine{axis, at, style})
}

// RefLines returns the reference lines of ax.
func (ax *Axes) RefLines() []RefLine {
	return ax.refLines
}

// SetLim fixes the limits of an axis. A NaN bound is computed from the
// data.
func (ax *Axes) SetLim(axis Axis, lo, hi float64) {
	ax.axes[axis].lo, ax.axes[axis].hi = lo, hi
}

// SetLog makes an axis logarithmic.
func (ax *Axes) SetLog(axis Axis, log bool) {
	ax.axes[axis].log = log
}

// IsLog reports whether an axis is logarithmic.
func (ax *Axes) IsLog(axis Axis) bool {
	return ax.axes[axis].log
}

// SetLabel sets the label of an axis.
func (ax *Axes) SetLabel(axis Axis, label string, points float64) {
	ax.axes[axis].label, ax.axes[axis].labelPts = label, points
}

// Label returns the label of an axis and its font size.
func (ax *Axes) Label(axis Axis) (string, float64) {
	o := ax.axes[axis]
	return o.label, orDefault(o.labelPts, 10)
}

// SetMinorTicks turns minor tick marks on or off for an axis.
func (ax *Axes) SetMinorTicks(axis Axis, on bool) {
	ax.axes[axis].minor = on
}

// SetMaxTicks limits the number of major ticks on an axis. Zero
// chooses a count from the axis length.
func (ax *Axes) SetMaxTicks(axis Axis, n int) {
	ax.axes[axis].maxTicks = n
}

// SetTickSpacing places major ticks at multiples of spacing. Zero
// chooses the spacing automatically.
func (ax *Axes) SetTickSpacing(axis Axis, spacing float64) {
	ax.axes[axis].spacing = spacing
}

// SetTitle sets the subplot title.
func (ax *Axes) SetTitle(title string, points float64) {
	ax.title, ax.titlePts = title, points
}

// Title returns the subplot title and its font size.
func (ax *Axes) Title() (string, float64) {
	return ax.title, orDefault(ax.titlePts, 12)
}

// SetGrid turns grid lines on or off.
func (ax *Axes) SetGrid(on bool) {
	ax.grid = on
}

// SetLegend turns the legend on or off. The legend lists every line
// with a label and is placed where it covers the least data.
func (ax *Axes) SetLegend(on bool, points float64) {
	ax.legend, ax.legendPts = on, points
}

// Text adds text at (x, y) given as fractions of the plotting area.
func (ax *Axes) Text(x, y float64, text string, style TextStyle) *Text {
	t := &Text{X: x, Y: y, Text: text, Style: style}
	ax.texts = append(ax.texts, t)
	return t
}

// Texts returns the text items added by Text.
func (ax *Axes) Texts() []*Text {
	return ax.texts
}

// RemoveText removes t from ax. It reports whether t was found.
func (ax *Axes) RemoveText(t *Text) bool {
	var ok bool
	ax.texts, ok = removeText(ax.texts, t)
	return ok
}

func orDefault(x, def float64) float64 {
	if x <= 0 {
		return def
	}
	return x
}
