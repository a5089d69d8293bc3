// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot draws figures of one or more subplots with little
// ceremony.
//
// A Plotter is configured with chained option methods and then
// filled in by plotting calls, one per subplot, inside Subplots:
//
//	p := plot.New(2).FilePath("out.svg")
//	p.SetTitle("Trig").UseGrid()
//	err := p.Subplots(func(sp *plot.Plotter) error {
//		sp.AddLegend("sin")
//		if _, err := sp.Plot(x, sinx); err != nil {
//			return err
//		}
//		_, err := sp.SetYLabel("cos(x)").Plot(x, cosx)
//		return err
//	})
//	if err == nil {
//		err = p.Show()
//	}
//
// Margins are sized to fit titles, labels, and tick labels, and
// annotations are moved to avoid the data and each other.
package plot

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/go-yampex/adjust"
	"github.com/aclements/go-yampex/figure"
	"github.com/aclements/go-yampex/textsize"
)

const (
	defaultWidth  = 1000
	defaultHeight = 700

	titlePoints = 12
	labelPoints = 10
)

// A Plotter makes a figure with a grid of subplots.
type Plotter struct {
	n, ncols, nrows    int
	width, height, dpi float64
	filePath           string
	vectors            Vectors
	verbose            bool
	measurer           textsize.Measurer

	fig             *figure.Figure
	global          opts
	local           *opts
	title           string
	universalXLabel bool
	helpers         []*helper

	inContext bool
	finished  bool
	err       error
}

// Columns returns the number of columns used for n subplots.
func Columns(n int) int {
	switch {
	case n > 6:
		return 3
	case n > 3:
		return 2
	}
	return 1
}

// New returns a Plotter for n subplots, arranged in one column for up
// to 3 subplots, two columns for up to 6, and three columns beyond
// that.
func New(n int) *Plotter {
	ncols := Columns(n)
	p := NewGrid(ncols, (n+ncols-1)/ncols)
	if n < 1 {
		p.setErr(fmt.Errorf("bad subplot count %d", n))
	} else {
		p.n = n
	}
	return p
}

// NewGrid returns a Plotter for a grid of ncols by nrows subplots.
func NewGrid(ncols, nrows int) *Plotter {
	p := &Plotter{
		n:      ncols * nrows,
		ncols:  ncols,
		nrows:  nrows,
		width:  defaultWidth,
		height: defaultHeight,
		dpi:    textsize.DefaultDPI,
		global: newOpts(),
	}
	if ncols < 1 || nrows < 1 {
		p.setErr(fmt.Errorf("bad subplot grid %dx%d", ncols, nrows))
	}
	return p
}

// Width sets the figure width in pixels.
func (p *Plotter) Width(px float64) *Plotter {
	p.width = px
	return p
}

// Height sets the figure height in pixels.
func (p *Plotter) Height(px float64) *Plotter {
	p.height = px
	return p
}

// DPI sets the resolution used to convert font sizes to pixels.
func (p *Plotter) DPI(dpi float64) *Plotter {
	p.dpi = dpi
	return p
}

// FilePath makes Show save the figure to path instead of writing SVG
// to standard output.
func (p *Plotter) FilePath(path string) *Plotter {
	p.filePath = path
	return p
}

// Use sets the container in which plotting calls look up vectors
// given by name.
func (p *Plotter) Use(v Vectors) *Plotter {
	p.vectors = v
	return p
}

// Verbose logs layout and annotation decisions.
func (p *Plotter) Verbose() *Plotter {
	p.verbose = true
	return p
}

// N returns the number of subplots.
func (p *Plotter) N() int {
	return p.n
}

// Figure returns the figure made by the last Enter, or nil.
func (p *Plotter) Figure() *figure.Figure {
	return p.fig
}

// Enter starts a new figure with empty subplots. Until Exit, options
// apply to the next subplot only and each plotting call fills in the
// next subplot.
func (p *Plotter) Enter() *Plotter {
	fig := figure.New(p.width, p.height, p.dpi)
	if p.measurer != nil {
		fig.Measurer = p.measurer
	}
	for k := 0; k < p.n; k++ {
		if _, err := fig.AddSubplot(p.nrows, p.ncols, k); err != nil {
			p.setErr(err)
			break
		}
	}
	p.fig = fig
	p.helpers = nil
	p.local = p.global.copy()
	p.inContext = true
	p.finished = false
	return p
}

// Exit plots every subplot filled in since Enter.
func (p *Plotter) Exit() error {
	p.local = nil
	p.inContext = false
	if p.err != nil {
		return p.err
	}
	for _, h := range p.helpers {
		if err := h.doPlots(); err != nil {
			return fmt.Errorf("subplot %d: %w", h.k, err)
		}
	}
	return nil
}

// Subplots calls fn between Enter and Exit.
func (p *Plotter) Subplots(fn func(sp *Plotter) error) error {
	p.Enter()
	if err := fn(p); err != nil {
		p.local = nil
		p.inContext = false
		return err
	}
	return p.Exit()
}

// Plot fills in the next subplot. Each argument is a []float64 vector
// or the name of one in the Use container, and the first argument
// may instead be a Vectors container for the names that follow. A
// string that names no vector is a line format like "r--" for the
// vector before it.
//
// With one vector, it is plotted against its index, or against the
// subplot's earlier x vector. With more, the first is the x vector
// for the rest.
func (p *Plotter) Plot(args ...any) (*figure.Axes, error) {
	return p.plot(call{}, args)
}

// Semilogy is Plot with a logarithmic y axis.
func (p *Plotter) Semilogy(args ...any) (*figure.Axes, error) {
	return p.plot(call{logy: true}, args)
}

// Semilogx is Plot with a logarithmic x axis.
func (p *Plotter) Semilogx(args ...any) (*figure.Axes, error) {
	return p.plot(call{logx: true}, args)
}

// Loglog is Plot with logarithmic axes.
func (p *Plotter) Loglog(args ...any) (*figure.Axes, error) {
	return p.plot(call{logx: true, logy: true}, args)
}

// Bar is Plot drawing bars.
func (p *Plotter) Bar(args ...any) (*figure.Axes, error) {
	return p.plot(call{kind: figure.KindBar}, args)
}

// Step is Plot drawing steps.
func (p *Plotter) Step(args ...any) (*figure.Axes, error) {
	return p.plot(call{kind: figure.KindStep}, args)
}

// Stem is Plot drawing stems.
func (p *Plotter) Stem(args ...any) (*figure.Axes, error) {
	return p.plot(call{kind: figure.KindStem}, args)
}

func (p *Plotter) plot(c call, args []any) (*figure.Axes, error) {
	if p.err != nil {
		return nil, p.err
	}
	if !p.inContext {
		return nil, fmt.Errorf("plotting call outside of Subplots")
	}
	axes := p.fig.Axes()
	k := len(p.helpers)
	if k >= len(axes) {
		return nil, fmt.Errorf("all %d subplots already plotted", len(axes))
	}
	h := newHelper(p, axes[k], k, p.local)
	if err := h.addCall(c, args); err != nil {
		return nil, fmt.Errorf("subplot %d: %w", k, err)
	}
	p.helpers = append(p.helpers, h)
	p.local = p.global.copy()
	return h.ax, nil
}

// finish sizes the margins and places annotations and text boxes.
func (p *Plotter) finish() error {
	if p.err != nil {
		return p.err
	}
	if p.fig == nil {
		return fmt.Errorf("nothing plotted")
	}
	if p.inContext {
		return fmt.Errorf("figure shown before Exit")
	}
	if p.finished {
		return nil
	}
	fig := p.fig
	fig.SetSuptitle(p.title, titlePoints)
	titleHeight := 0.0
	if p.title != "" {
		_, h := fig.TextDims(p.title, titlePoints)
		titleHeight = 1.5 * h
	}
	xlabels := map[int]string{}
	for _, h := range p.helpers {
		if h.o.xlabel != "" {
			xlabels[h.k] = h.o.xlabel
		}
	}
	params := adjust.New(fig).Adjust(xlabels, labelPoints, p.universalXLabel, titleHeight)
	fig.SubplotsAdjust(params)
	if p.verbose {
		log.Printf("subplot params %+v", params)
	}
	for _, h := range p.helpers {
		if err := h.doAnnotations(); err != nil {
			return err
		}
		if err := h.doTextBoxes(); err != nil {
			return err
		}
	}
	p.finished = true
	return nil
}

// Show writes the figure to the file set by FilePath, or as SVG to
// standard output.
func (p *Plotter) Show() error {
	if p.filePath != "" {
		return p.Save(p.filePath)
	}
	return p.WriteSVG(os.Stdout)
}

// Save writes the figure to path in the format given by its
// extension.
func (p *Plotter) Save(path string) error {
	if err := p.finish(); err != nil {
		return err
	}
	return p.fig.Save(context.Background(), path)
}

// WriteSVG writes the figure to w as SVG.
func (p *Plotter) WriteSVG(w io.Writer) error {
	if err := p.finish(); err != nil {
		return err
	}
	return p.fig.WriteSVG(w)
}

// XY writes a quick scatter plot of y against x, with a grid and a
// zero line, to w as SVG.
func XY(w io.Writer, x, y []float64) error {
	p := New(1)
	err := p.Subplots(func(sp *Plotter) error {
		if len(x) < 30 {
			sp.AddMarker("o", 0)
		}
		_, err := sp.UseGrid().SetZeroLine().Plot(x, y)
		return err
	})
	if err != nil {
		return err
	}
	return p.WriteSVG(w)
}
