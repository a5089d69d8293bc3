// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import "github.com/aclements/go-yampex/geom"

// An Annotation is boxed text with an arrow pointing at a data point.
//
// The text box is placed at Offset pixels from the data point. RelPos
// is the point of the text box, as fractions of its width and height,
// that is at that position and from which the arrow leaves.
type Annotation struct {
	X, Y   float64 // anchor in data coordinates
	Text   string
	Offset geom.Point
	RelPos geom.Point
	Style  TextStyle

	// ArrowColor is the color of the arrow; empty means the box
	// edge color.
	ArrowColor string

	ax *Axes
}

// Annotate adds an annotation of the data point (x, y).
func (ax *Axes) Annotate(text string, x, y float64, offset, relpos geom.Point, style TextStyle) *Annotation {
	a := &Annotation{
		X: x, Y: y,
		Text:   text,
		Offset: offset,
		RelPos: relpos,
		Style:  style,
		ax:     ax,
	}
	ax.anns = append(ax.anns, a)
	return a
}

// RemoveAnnotation removes a from ax. It reports whether a was found.
func (ax *Axes) RemoveAnnotation(a *Annotation) bool {
	for i, b := range ax.anns {
		if a == b {
			ax.anns = append(ax.anns[:i:i], ax.anns[i+1:]...)
			return true
		}
	}
	return false
}

// Annotations returns the annotations of ax.
func (ax *Axes) Annotations() []*Annotation {
	return ax.anns
}

// Axes returns the Axes that a annotates.
func (a *Annotation) Axes() *Axes {
	return a.ax
}

// Anchor returns the annotated point in display space.
func (a *Annotation) Anchor() geom.Point {
	return a.ax.DataToPixels(a.X, a.Y)
}

// TextBox returns the box around a's text, including padding, in
// display space.
func (a *Annotation) TextBox() geom.Rect {
	f := a.ax.fig
	w, h := f.TextDims(a.Text, a.Style.size())
	pad := a.Style.BoxPad * f.Pixels(a.Style.size())
	w, h = w+2*pad, h+2*pad
	p := a.Anchor().Add(a.Offset)
	x0 := p.X - a.RelPos.X*w
	y0 := p.Y - a.RelPos.Y*h
	return geom.Rect{X0: x0, Y0: y0, X1: x0 + w, Y1: y0 + h}
}

// arrowStart returns the point on the text box where the arrow starts.
func (a *Annotation) arrowStart() geom.Point {
	return a.Anchor().Add(a.Offset)
}
