// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

// Kind is the way a Line is drawn.
type Kind int

const (
	KindPlot Kind = iota
	KindStep
	KindStem
	KindBar
	KindScatter
)

var kindNames = [...]string{"plot", "step", "stem", "bar", "scatter"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// LineStyle controls how a Line is drawn. The zero LineStyle is a
// solid blue line.
type LineStyle struct {
	Kind Kind

	// Color is a color string understood by ParseColor.
	Color string

	// Dash is "-" (solid), "--", ":", "-.", or "none".
	Dash string

	// Width is the stroke width in pixels. Zero means 1.5.
	Width float64

	// Marker is "", "o", ".", "s", "^", "v", "x", "+", or "*".
	Marker string

	// MarkerSize is the marker diameter in points. Zero means 6.
	MarkerSize float64

	// Label is the legend label of the line, if any.
	Label string
}

func (s LineStyle) width() float64 {
	if s.Width <= 0 {
		return 1.5
	}
	return s.Width
}

func (s LineStyle) color() string {
	if s.Color == "" {
		return "b"
	}
	return s.Color
}

func (s LineStyle) markerSize() float64 {
	if s.MarkerSize <= 0 {
		return 6
	}
	return s.MarkerSize
}

// dashArray returns the SVG stroke-dasharray for the dash style, or
// "" for a solid line.
func (s LineStyle) dashArray() string {
	w := s.width()
	switch s.Dash {
	case "--":
		return fmtNums(3.7*w, 1.6*w)
	case ":":
		return fmtNums(w, 1.65*w)
	case "-.":
		return fmtNums(6.4*w, 1.6*w, w, 1.6*w)
	}
	return ""
}

// TextStyle controls how text is drawn.
type TextStyle struct {
	// Size is the font size in points. Zero means 10.
	Size float64

	// Weight is "normal" or "bold".
	Weight string

	// Color is the text color. Zero means black.
	Color string

	// Family is "sans-serif" (the default) or "monospace".
	Family string

	// HAlign is "left", "center", or "right" and VAlign is "top",
	// "center", or "bottom". They say which point of the text's
	// bounding box is at the text's position. The zero values
	// mean left and bottom.
	HAlign, VAlign string

	// Box draws a box behind the text.
	Box bool

	// BoxFace and BoxEdge are the fill and outline colors of the
	// box. BoxAlpha is the box opacity; zero means opaque.
	BoxFace, BoxEdge string
	BoxAlpha         float64

	// BoxPad is the padding around the text inside its box, in
	// units of the font size.
	BoxPad float64
}

func (s TextStyle) size() float64 {
	if s.Size <= 0 {
		return 10
	}
	return s.Size
}
