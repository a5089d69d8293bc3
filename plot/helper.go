// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-yampex/annotate"
	"github.com/aclements/go-yampex/figure"
)

// Vectors is a container of named vectors.
type Vectors interface {
	Get(name string) ([]float64, bool)
}

// Map is a Vectors backed by a map.
type Map map[string][]float64

// Get returns the vector called name.
func (m Map) Get(name string) ([]float64, bool) {
	v, ok := m[name]
	return v, ok
}

var timeScales = []struct {
	mult float64
	name string
}{
	{1e-9, "Nanoseconds"},
	{1e-6, "Microseconds"},
	{1e-3, "Milliseconds"},
	{1, "Seconds"},
	{60, "Minutes"},
	{3600, "Hours"},
}

// A call is the kind of plotting call that made a pair.
type call struct {
	kind       figure.Kind
	logx, logy bool
}

// A pair is one x, y pair of vectors in a subplot.
type pair struct {
	call         call
	x, y         []float64
	xname, yname string
	format       *figure.LineStyle
	legend       string
}

// A label is a line annotation made in place of a legend entry.
type label struct {
	kVector, k int
	text       string
}

// A helper does the plotting for one subplot.
type helper struct {
	p      *Plotter
	ax     *figure.Axes
	k      int
	o      *opts
	pairs  []*pair
	labels []label

	annotator *annotate.Annotator
	boxes     *annotate.TextBoxMaker
}

func newHelper(p *Plotter, ax *figure.Axes, k int, o *opts) *helper {
	return &helper{p: p, ax: ax, k: k, o: o}
}

// firstX returns the x vector of the first pair, or nil.
func (h *helper) firstX() ([]float64, string) {
	if len(h.pairs) == 0 {
		return nil, ""
	}
	return h.pairs[0].x, h.pairs[0].xname
}

// addCall parses the arguments of a plotting call into pairs. The
// first argument may be a Vectors container for the names that
// follow. Other arguments are []float64 vectors, names of vectors,
// or line format strings applying to the vector before them.
func (h *helper) addCall(c call, args []any) error {
	vectors := h.p.vectors
	if len(args) > 0 {
		if v, ok := args[0].(Vectors); ok {
			vectors, args = v, args[1:]
		}
	}
	var vecs [][]float64
	var names []string
	formats := map[int]*figure.LineStyle{}
	for _, arg := range args {
		switch a := arg.(type) {
		case []float64:
			vecs = append(vecs, append([]float64(nil), a...))
			names = append(names, "")
		case string:
			if vectors != nil {
				if v, ok := vectors.Get(a); ok {
					vecs = append(vecs, append([]float64(nil), v...))
					names = append(names, a)
					continue
				}
			}
			st, ok := parseFormat(a)
			if !ok {
				return fmt.Errorf("unknown vector %q", a)
			}
			if len(vecs) == 0 {
				return fmt.Errorf("line format %q before any vector", a)
			}
			formats[len(vecs)-1] = &st
		default:
			return fmt.Errorf("unsupported plot argument of type %T", arg)
		}
	}
	if len(vecs) == 0 {
		return fmt.Errorf("no vectors to plot")
	}

	x, xname := h.firstX()
	start := 0
	if len(vecs) == 1 {
		if x == nil {
			x = make([]float64, len(vecs[0]))
			for i := range x {
				x[i] = float64(i)
			}
		}
	} else {
		start = 1
		if x == nil {
			h.timeScaling(vecs[0])
		}
		x, xname = vecs[0], names[0]
	}
	for i := start; i < len(vecs); i++ {
		y := vecs[i]
		if len(x) != len(y) {
			return fmt.Errorf("x and y lengths differ: %d vs %d", len(x), len(y))
		}
		h.pairs = append(h.pairs, &pair{
			call:   c,
			x:      x,
			xname:  xname,
			y:      y,
			yname:  names[i],
			format: formats[i],
		})
	}
	return nil
}

// timeScaling picks the time unit for x vector x if the subplot
// uses time x.
func (h *helper) timeScaling(x []float64) {
	if !h.o.timex {
		return
	}
	tmax := math.Inf(-1)
	for _, v := range x {
		tmax = math.Max(tmax, v)
	}
	ts := timeScales[len(timeScales)-1]
	for _, s := range timeScales {
		if s.mult < 1 && tmax < 1000*s.mult || s.mult >= 1 && tmax < 150*s.mult {
			ts = s
			break
		}
	}
	h.o.xlabel = ts.name
	h.o.xscale = 1 / ts.mult
}

// scaleX multiplies every x vector by scale. Pairs share x vectors,
// so each is scaled once.
func (h *helper) scaleX(scale float64) {
	if scale == 0 || scale == 1 {
		return
	}
	scaled := map[*float64][]float64{}
	for _, pr := range h.pairs {
		if len(pr.x) == 0 {
			continue
		}
		key := &pr.x[0]
		if s, ok := scaled[key]; ok {
			pr.x = s
			continue
		}
		s := make([]float64, len(pr.x))
		for i, v := range pr.x {
			s[i] = v * scale
		}
		scaled[key] = s
		pr.x = s
	}
}

// minmax returns the range of the x vectors, or the y vectors if
// useY is set, ignoring non-finite values.
func (h *helper) minmax(useY bool) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, pr := range h.pairs {
		z := pr.x
		if useY {
			z = pr.y
		}
		for _, v := range z {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	return
}

// doSettings applies axes options.
func (h *helper) doSettings() {
	o, ax := h.o, h.ax
	ax.SetLabel(figure.Y, o.ylabel, 0)
	if o.title != "" {
		ax.SetTitle(o.title, 0)
	}
	ax.SetGrid(o.grid)
	for _, axis := range []figure.Axis{figure.X, figure.Y} {
		t := o.ticks[axis]
		if t.maxTicks > 0 {
			ax.SetMaxTicks(axis, t.maxTicks)
		}
		if t.spacing > 0 {
			ax.SetTickSpacing(axis, t.spacing)
		}
		if t.minor != nil {
			ax.SetMinorTicks(axis, *t.minor)
		}
	}
	logx, logy := o.logx, o.logy
	for _, pr := range h.pairs {
		logx = logx || pr.call.logx
		logy = logy || pr.call.logy
	}
	ax.SetLog(figure.X, logx)
	ax.SetLog(figure.Y, logy)

	for name, v := range o.settings {
		switch name {
		case "xlim":
			lim, _ := limits(v)
			ax.SetLim(figure.X, lim[0], lim[1])
		case "ylim":
			lim, _ := limits(v)
			ax.SetLim(figure.Y, lim[0], lim[1])
		case "xlabel":
			o.xlabel = v.(string)
		case "ylabel":
			ax.SetLabel(figure.Y, v.(string), 0)
		case "title":
			ax.SetTitle(v.(string), 0)
		case "xscale":
			ax.SetLog(figure.X, v == "log")
		case "yscale":
			ax.SetLog(figure.Y, v == "log")
		case "grid":
			ax.SetGrid(v.(bool))
		}
	}
}

// yscales returns the multiplier of each pair's y vector.
func (h *helper) yscales() []float64 {
	mults := make([]float64, len(h.pairs))
	for i := range mults {
		mults[i] = 1
	}
	if h.o.yscale == 0 || len(h.pairs) < 2 {
		return mults
	}
	var s *Scaler
	if h.o.yscale < 0 {
		s = NewScaler(h.pairs[0].y)
	}
	for i := 1; i < len(h.pairs); i++ {
		if s != nil {
			mults[i] = s.Scale(h.pairs[i].y)
		} else {
			mults[i] = h.o.yscale
		}
	}
	return mults
}

// plotVectors adds a line for every pair.
func (h *helper) plotVectors() error {
	o := h.o
	fig := h.ax.Figure()
	mults := h.yscales()
	for k, pr := range h.pairs {
		st, err := o.lineStyle(fig, k)
		if err != nil {
			return err
		}
		if pr.format != nil {
			st.Dash, st.Marker = pr.format.Dash, pr.format.Marker
			if pr.format.Color != "" {
				st.Color = pr.format.Color
			}
		}
		if pr.call.kind != figure.KindPlot {
			st.Kind = pr.call.kind
		}

		if m := mults[k]; m != 1 {
			y := make([]float64, len(pr.y))
			for i, v := range pr.y {
				y[i] = m * v
			}
			pr.y = y
		}

		switch {
		case k < len(o.legend):
			pr.legend = o.legend[k]
		case o.autolegend:
			pr.legend = pr.yname
			if pr.legend == "" {
				pr.legend = fmt.Sprintf("#%d", k+1)
			}
		}
		if pr.legend != "" && mults[k] != 1 {
			pr.legend += fmt.Sprintf(" x%g", mults[k])
		}
		if o.useLabels {
			if pr.legend != "" {
				h.addLabel(k, pr.legend)
			}
		} else {
			st.Label = pr.legend
		}
		if _, err := h.ax.AddLine(pr.x, pr.y, st); err != nil {
			return err
		}
	}
	return nil
}

// addLabel labels the k'th vector at its right-most point within
// 0.1% of its extreme value.
func (h *helper) addLabel(kVector int, text string) {
	y := h.pairs[kVector].y
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, v := range y {
		ymin, ymax = math.Min(ymin, v), math.Max(ymax, v)
	}
	k := -1
	for i, v := range y {
		if ymax > 0 && v > 0.999*ymax || ymax <= 0 && v < 0.999*ymin {
			k = i
		}
	}
	if k < 0 {
		return
	}
	h.labels = append(h.labels, label{kVector, k, text})
}

// yBounds raises the upper y limit by 20% if bump is set or ymax is
// within 5% of it, and makes the lower limit 0 if zeroBottom is set.
func (h *helper) yBounds(ymax float64, bump, zeroBottom bool) {
	lo, hi := h.ax.Lim(figure.Y)
	if !bump && ymax > 0.95*hi {
		bump = true
	}
	if !bump && !zeroBottom {
		return
	}
	if zeroBottom {
		lo = 0
	}
	if bump {
		hi *= 1.2
	}
	h.ax.SetLim(figure.Y, lo, hi)
}

// doPlots plots the subplot's vectors and sets up its axes.
func (h *helper) doPlots() error {
	o := h.o
	h.scaleX(o.xscale)
	h.doSettings()
	if err := h.plotVectors(); err != nil {
		return err
	}

	ymin, ymax := h.minmax(true)
	switch {
	case o.axisExact[figure.Y]:
		if ymin <= ymax {
			h.ax.SetLim(figure.Y, ymin, ymax)
		}
	case o.bump:
		h.yBounds(ymax, true, o.zeroBottom)
	case o.firstVectorTop:
		h.yBounds(ymax, false, o.zeroBottom)
	case o.zeroBottom:
		h.yBounds(math.Inf(-1), false, true)
	}
	if o.axisExact[figure.X] {
		if xmin, xmax := h.minmax(false); xmin <= xmax {
			h.ax.SetLim(figure.X, xmin, xmax)
		}
	}

	fig := h.ax.Figure()
	x0, _ := h.firstX()
	for _, v := range o.axvlines {
		var x float64
		switch v := v.(type) {
		case int:
			if v < 0 {
				v += len(x0)
			}
			if v < 0 || v >= len(x0) {
				continue
			}
			x = x0[v]
		case float64:
			x = v
		}
		h.ax.AddRefLine(figure.X, x, figure.LineStyle{Dash: "--", Color: "#404040", Width: fig.Pixels(1)})
	}

	if o.zeroLine != nil {
		yz := *o.zeroLine
		if y0, y1 := h.ax.Lim(figure.Y); y0 < yz && yz < y1 {
			h.ax.AddRefLine(figure.Y, yz, figure.LineStyle{Dash: "--", Color: "black", Width: fig.Pixels(1)})
		}
	}

	if o.useLegend() {
		h.ax.SetLegend(true, o.fontsize("legend", "small"))
	}
	return nil
}

// index resolves an annotation position to an index into pr.
func (a annotationOpt) index(pr *pair) (int, error) {
	n := len(pr.y)
	switch k := a.k.(type) {
	case int:
		if k < 0 {
			k += n
		}
		if k < 0 || k >= n {
			return 0, fmt.Errorf("annotation index %d out of range [0,%d)", a.k, n)
		}
		return k, nil
	case float64:
		if n == 0 {
			return 0, fmt.Errorf("annotation of empty vector")
		}
		if a.y {
			best, bestD := 0, math.Inf(1)
			for i, v := range pr.y {
				if d := math.Abs(v - k); d < bestD {
					best, bestD = i, d
				}
			}
			return best, nil
		}
		i := sort.SearchFloat64s(pr.x, k)
		if i >= n {
			i = n - 1
		}
		return i, nil
	}
	return 0, fmt.Errorf("bad annotation index %v", a.k)
}

// doAnnotations places the subplot's annotations and line labels.
// It runs after the figure layout is final.
func (h *helper) doAnnotations() error {
	an := annotate.New(h.ax)
	an.FontSize = h.o.fontsize("annotations", "small")
	an.Verbose = h.p.verbose
	h.annotator = an
	for _, l := range h.labels {
		pr := h.pairs[l.kVector]
		an.Add(pr.x[l.k], pr.y[l.k], l.text)
	}
	for _, a := range h.o.annotations {
		if a.kVector < 0 || a.kVector >= len(h.pairs) {
			return fmt.Errorf("subplot %d: annotation of vector %d, have %d", h.k, a.kVector, len(h.pairs))
		}
		pr := h.pairs[a.kVector]
		k, err := a.index(pr)
		if err != nil {
			return fmt.Errorf("subplot %d: %w", h.k, err)
		}
		an.Add(pr.x[k], pr.y[k], a.text)
	}
	return nil
}

// doTextBoxes adds the subplot's text boxes.
func (h *helper) doTextBoxes() error {
	if len(h.o.boxOrder) == 0 {
		return nil
	}
	nrows, ncols := h.p.fig.Grid()
	fig := h.p.fig
	h.boxes = annotate.NewTextBoxMaker(h.ax, ncols, nrows, annotate.TextBoxOptions{
		FigDims: [2]float64{fig.Width, fig.Height},
	})
	for _, loc := range h.o.boxOrder {
		if _, err := h.boxes.Add(loc, h.o.textBoxes[loc]); err != nil {
			return fmt.Errorf("subplot %d: %w", h.k, err)
		}
	}
	return nil
}
