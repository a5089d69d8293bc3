// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aclements/go-yampex/figure"
	"github.com/aclements/go-yampex/textsize"
)

// Text box locations, as fractions of the parent's width and height.
var boxXY = map[string][2]float64{
	"NE": {1.0, 1.0},
	"E":  {1.0, 0.5},
	"SE": {1.0, 0.0},
	"S":  {0.5, 0.0},
	"SW": {0.0, 0.0},
	"W":  {0.0, 0.5},
	"NW": {0.0, 1.0},
	"N":  {0.5, 1.0},
	"M":  {0.5, 0.5},
}

var boxAlignment = map[string][2]string{
	"NE": {"right", "top"},
	"E":  {"right", "center"},
	"SE": {"right", "bottom"},
	"S":  {"center", "center"},
	"SW": {"left", "bottom"},
	"W":  {"left", "center"},
	"NW": {"left", "top"},
	"N":  {"center", "center"},
	"M":  {"center", "center"},
}

// TextBoxOptions configure a TextBoxMaker.
type TextBoxOptions struct {
	// Margin is the space between the text box and the edge of
	// its parent, as a fraction of the parent's size. Zero means
	// 0.02.
	Margin float64

	// PixelMargin, if positive, is the margin in pixels. It
	// requires FigDims.
	PixelMargin int

	// FigDims are the figure width and height in pixels. If
	// known, the text size is accounted for in placing the box.
	FigDims [2]float64

	// DPI is the figure resolution, for measuring text.
	DPI float64

	// FontSize is the text size in points. Zero means 10.
	FontSize float64

	// Alpha and Background are the opacity and color of the box.
	// Zero means opaque white.
	Alpha      float64
	Background string
}

// ErrPixelMargin is returned when a pixel margin is requested
// without the figure dimensions needed to use it.
var ErrPixelMargin = errors.New("pixel margin requires figure dimensions")

// A TextBoxMaker places text boxes at compass locations of a subplot
// or of the whole figure.
type TextBoxMaker struct {
	opts  TextBoxOptions
	fig   *figure.Figure
	ax    *figure.Axes
	ncnr  [2]int
	tsc   *textsize.Computer
	texts []*figure.Text
}

// NewFigureTextBoxMaker returns a TextBoxMaker for boxes positioned
// relative to the whole figure.
func NewFigureTextBoxMaker(f *figure.Figure, opts TextBoxOptions) *TextBoxMaker {
	return newTextBoxMaker(f, nil, [2]int{}, opts)
}

// NewTextBoxMaker returns a TextBoxMaker for boxes positioned
// relative to ax, which is one subplot of a grid of ncols by nrows.
// Margins are relative to the figure, so they are scaled up by the
// grid size.
func NewTextBoxMaker(ax *figure.Axes, ncols, nrows int, opts TextBoxOptions) *TextBoxMaker {
	return newTextBoxMaker(ax.Figure(), ax, [2]int{ncols, nrows}, opts)
}

func newTextBoxMaker(f *figure.Figure, ax *figure.Axes, ncnr [2]int, opts TextBoxOptions) *TextBoxMaker {
	if opts.Margin == 0 {
		opts.Margin = 0.02
	}
	if opts.FontSize == 0 {
		opts.FontSize = 10
	}
	if opts.Background == "" {
		opts.Background = "white"
	}
	if opts.DPI == 0 {
		opts.DPI = f.DPI
	}
	return &TextBoxMaker{opts: opts, fig: f, ax: ax, ncnr: ncnr, tsc: textsize.New(opts.DPI)}
}

// Position returns the position and alignment of a text box at
// location.
func (m *TextBoxMaker) Position(location, text string) (x, y float64, ha, va string, err error) {
	loc := strings.ToUpper(location)
	xy, ok := boxXY[loc]
	if !ok {
		return 0, 0, "", "", fmt.Errorf("unknown text box location %q", location)
	}
	fd := m.opts.FigDims
	haveDims := fd[0] > 0 && fd[1] > 0
	var dims, margins [2]float64
	switch {
	case haveDims:
		w, h := m.tsc.Dims(text, m.opts.FontSize)
		dims[0], dims[1] = textsize.PixelsToFraction(w, h, fd[0], fd[1])
		if m.opts.PixelMargin > 0 {
			margins = [2]float64{float64(m.opts.PixelMargin) / fd[0], float64(m.opts.PixelMargin) / fd[1]}
		} else {
			margins = [2]float64{m.opts.Margin, m.opts.Margin}
		}
	case m.opts.PixelMargin > 0:
		return 0, 0, "", "", ErrPixelMargin
	default:
		margins = [2]float64{m.opts.Margin, m.opts.Margin}
	}

	for k, v := range xy {
		mk := margins[k]
		if m.ax != nil {
			mk *= float64(m.ncnr[k])
		}
		switch v {
		case 0:
			xy[k] = 0.5*dims[k] + mk
		case 1:
			xy[k] = 1 - 0.5*dims[k] - mk
		}
	}
	al := boxAlignment[loc]
	return xy[0], xy[1], al[0], al[1], nil
}

// Add places text in a box at location, one of NE, E, SE, S, SW, W,
// NW, N, or M (middle).
func (m *TextBoxMaker) Add(location, text string) (*figure.Text, error) {
	x, y, ha, va, err := m.Position(location, text)
	if err != nil {
		return nil, err
	}
	style := figure.TextStyle{
		Size:     m.opts.FontSize,
		HAlign:   ha,
		VAlign:   va,
		Box:      true,
		BoxFace:  m.opts.Background,
		BoxAlpha: m.opts.Alpha,
		BoxPad:   0.2,
	}
	var t *figure.Text
	if m.ax != nil {
		t = m.ax.Text(x, y, text, style)
	} else {
		t = m.fig.Text(x, y, text, style)
	}
	m.texts = append(m.texts, t)
	return t, nil
}

// Remove removes every text box added by m.
func (m *TextBoxMaker) Remove() {
	for _, t := range m.texts {
		if m.ax != nil {
			m.ax.RemoveText(t)
		} else {
			m.fig.RemoveText(t)
		}
	}
	m.texts = nil
}
