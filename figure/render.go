// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-yampex/geom"
	svg "github.com/ajstarks/svgo"
)

const (
	tickLen      = 4
	minorTickLen = 2
	xTickSep     = 5 // Separation between X axis and tick labels
	yTickSep     = 5 // Separation between Y axis and tick labels
)

// WriteSVG renders f as an SVG image to w.
func (f *Figure) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	r := &renderer{f: f, svg: svg.New(bw)}
	r.render()
	return bw.Flush()
}

type renderer struct {
	f      *Figure
	svg    *svg.SVG
	clipID int
}

// y flips a display y coordinate to SVG's downward y.
func (r *renderer) y(y float64) int {
	return round(r.f.Height - y)
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func (r *renderer) render() {
	f := r.f
	svg := r.svg
	svg.Start(round(f.Width), round(f.Height), `font-family="Go,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`)
	defer svg.End()
	svg.Rect(0, 0, round(f.Width), round(f.Height), "fill:#fff")

	for _, ax := range f.axes {
		r.renderAxes(ax)
	}
	// Annotations go over every subplot.
	for _, ax := range f.axes {
		for _, a := range ax.anns {
			r.renderAnnotation(a)
		}
	}
	for _, t := range f.texts {
		r.renderText(f.Box(), t)
	}
	if f.suptitle != nil {
		r.renderText(f.Box(), f.suptitle)
	}
}

func (r *renderer) renderAxes(ax *Axes) {
	svg := r.svg
	b := ax.box
	if b.Width() <= 0 || b.Height() <= 0 {
		return
	}
	x, y, w, h := round(b.X0), r.y(b.Y1), round(b.Width()), round(b.Height())

	svg.Rect(x, y, w, h, "fill:#eee")
	xt, yt := ax.Ticks(X), ax.Ticks(Y)
	if ax.grid {
		r.renderGrid(ax, xt, yt)
	}

	r.clipID++
	clipID := fmt.Sprintf("clip%d", r.clipID)
	svg.ClipPath(`id="` + clipID + `"`)
	svg.Rect(x, y, w, h)
	svg.ClipEnd()
	svg.Group(`clip-path="url(#` + clipID + `)"`)
	for _, rl := range ax.refLines {
		r.renderRefLine(ax, rl)
	}
	for _, l := range ax.lines {
		r.renderLine(ax, l)
	}
	svg.Gend()

	svg.Path(fmt.Sprintf("M%d %dH%dV%dH%dZ", x, y, x+w, y+h, x), "stroke:#888;fill:none;stroke-width:1")
	r.renderTicks(ax, X, xt)
	r.renderTicks(ax, Y, yt)
	r.renderLabels(ax, xt, yt)

	for _, t := range ax.texts {
		r.renderText(b, t)
	}
	if lb, ok := ax.LegendBox(); ok {
		r.renderLegend(ax, lb)
	}
}

func (r *renderer) renderGrid(ax *Axes, xt, yt Ticks) {
	var path strings.Builder
	b := ax.box
	for _, t := range xt.Major {
		p := ax.DataToPixels(t, 0)
		fmt.Fprintf(&path, "M%d %dV%d", round(p.X), r.y(b.Y0), r.y(b.Y1))
	}
	for _, t := range yt.Major {
		p := ax.DataToPixels(0, t)
		fmt.Fprintf(&path, "M%d %dH%d", round(b.X0), r.y(p.Y), round(b.X1))
	}
	if path.Len() > 0 {
		r.svg.Path(wrapPath(path.String()), "stroke:#fff;stroke-width:1")
	}
}

func (r *renderer) renderTicks(ax *Axes, axis Axis, t Ticks) {
	b := ax.box
	var path strings.Builder
	mark := func(v float64, n int) {
		if axis == X {
			p := ax.DataToPixels(v, 1)
			if math.IsNaN(p.X) {
				return
			}
			fmt.Fprintf(&path, "M%d %dv%d", round(p.X), r.y(b.Y0), n)
		} else {
			p := ax.DataToPixels(1, v)
			if math.IsNaN(p.Y) {
				return
			}
			fmt.Fprintf(&path, "M%d %dh%d", round(b.X0), r.y(p.Y), -n)
		}
	}
	for _, v := range t.Major {
		mark(v, tickLen)
	}
	for _, v := range t.Minor {
		mark(v, minorTickLen)
	}
	if path.Len() > 0 {
		r.svg.Path(wrapPath(path.String()), "stroke:#888;stroke-width:1")
	}

	px := fmt.Sprintf(`font-size="%.3gpx"`, r.f.Pixels(10))
	for i, v := range t.Major {
		if axis == X {
			p := ax.DataToPixels(v, 1)
			r.svg.Text(round(p.X), r.y(b.Y0-tickLen-xTickSep), t.Labels[i], `text-anchor="middle"`, `dy=".8em"`, `fill="#666"`, px)
		} else {
			p := ax.DataToPixels(1, v)
			r.svg.Text(round(b.X0-tickLen-yTickSep), r.y(p.Y), t.Labels[i], `text-anchor="end"`, `dy=".3em"`, `fill="#666"`, px)
		}
	}
}

// TickLabelDims returns the largest width and height of the major
// tick labels of an axis.
func (ax *Axes) TickLabelDims(axis Axis) (w, h float64) {
	for _, l := range ax.Ticks(axis).Labels {
		lw, lh := ax.fig.TextDims(l, 10)
		w, h = math.Max(w, lw), math.Max(h, lh)
	}
	return
}

func (r *renderer) renderLabels(ax *Axes, xt, yt Ticks) {
	b := ax.box
	if label, pts := ax.Label(X); label != "" {
		_, th := ax.TickLabelDims(X)
		t := &Text{Text: label, Style: TextStyle{Size: pts, HAlign: "center", VAlign: "top"}}
		r.drawText(geom.Pt(b.Center().X, b.Y0-tickLen-xTickSep-th-2), t, false)
	}
	if label, pts := ax.Label(Y); label != "" {
		tw, _ := ax.TickLabelDims(Y)
		t := &Text{Text: label, Style: TextStyle{Size: pts, HAlign: "center", VAlign: "bottom"}}
		r.drawText(geom.Pt(b.X0-tickLen-yTickSep-tw-4, b.Center().Y), t, true)
	}
	if title, pts := ax.Title(); title != "" {
		t := &Text{Text: title, Style: TextStyle{Size: pts, HAlign: "center", VAlign: "bottom"}}
		r.drawText(geom.Pt(b.Center().X, b.Y1+0.3*r.f.Pixels(pts)), t, false)
	}
}

func (r *renderer) renderRefLine(ax *Axes, rl RefLine) {
	b := ax.box
	style := rl.Style
	if style.Color == "" {
		style.Color = "k"
	}
	var d string
	if rl.Axis == X {
		p := ax.DataToPixels(rl.At, 1)
		if math.IsNaN(p.X) {
			return
		}
		d = fmt.Sprintf("M%d %dV%d", round(p.X), r.y(b.Y0), r.y(b.Y1))
	} else {
		p := ax.DataToPixels(1, rl.At)
		if math.IsNaN(p.Y) {
			return
		}
		d = fmt.Sprintf("M%d %dH%d", round(b.X0), r.y(p.Y), round(b.X1))
	}
	r.svg.Path(d, strokeStyle(style))
}

func strokeStyle(s LineStyle) string {
	css := cssPaint("stroke", s.color(), 0) + ";fill:none;stroke-width:" + fmtNum(s.width())
	if da := s.dashArray(); da != "" {
		css += ";stroke-dasharray:" + da
	}
	return css
}

func (r *renderer) renderLine(ax *Axes, l *Line) {
	xs, ys := ax.Transform(l.X, l.Y)
	for i := range ys {
		ys[i] = r.f.Height - ys[i]
	}
	st := l.Style
	switch st.Kind {
	case KindPlot:
		if st.Dash != "none" {
			r.drawPath(xs, ys, strokeStyle(st))
		}
	case KindStep:
		// Steps change value at the previous x.
		var sx, sy []float64
		for i := range xs {
			if i > 0 {
				sx, sy = append(sx, xs[i-1]), append(sy, ys[i])
			}
			sx, sy = append(sx, xs[i]), append(sy, ys[i])
		}
		r.drawPath(sx, sy, strokeStyle(st))
	case KindStem:
		base := r.baseline(ax)
		var path strings.Builder
		for i := range xs {
			if finite(xs[i]) && finite(ys[i]) {
				fmt.Fprintf(&path, "M%s %sV%s", fmtNum(xs[i]), fmtNum(base), fmtNum(ys[i]))
			}
		}
		if path.Len() > 0 {
			r.svg.Path(wrapPath(path.String()), strokeStyle(st))
		}
		if st.Marker == "" {
			st.Marker = "o"
		}
	case KindBar:
		base := r.baseline(ax)
		bw := 0.8 * minGap(xs)
		fill := cssPaint("fill", st.color(), 0)
		for i := range xs {
			if !finite(xs[i]) || !finite(ys[i]) {
				continue
			}
			top, bot := math.Min(ys[i], base), math.Max(ys[i], base)
			r.svg.Rect(round(xs[i]-bw/2), round(top), round(bw), round(bot-top), fill)
		}
	case KindScatter:
		if st.Marker == "" {
			st.Marker = "o"
		}
	}
	if st.Marker != "" {
		r.drawMarkers(xs, ys, st)
	}
}

// baseline returns the SVG y coordinate of data y=0, clamped to the
// plotting area.
func (r *renderer) baseline(ax *Axes) float64 {
	b := ax.box
	p := ax.DataToPixels(1, 0)
	y := p.Y
	if math.IsNaN(y) || y < b.Y0 {
		y = b.Y0
	} else if y > b.Y1 {
		y = b.Y1
	}
	return r.f.Height - y
}

// minGap returns the smallest gap between distinct x coordinates, or
// 10 if there is only one.
func minGap(xs []float64) float64 {
	s := make([]float64, 0, len(xs))
	for _, x := range xs {
		if finite(x) {
			s = append(s, x)
		}
	}
	sort.Float64s(s)
	gap := math.Inf(1)
	for i := 1; i < len(s); i++ {
		if d := s[i] - s[i-1]; d > 0 && d < gap {
			gap = d
		}
	}
	if math.IsInf(gap, 1) {
		return 10
	}
	return gap
}

// drawPath draws a polyline through the points in SVG coordinates,
// breaking it at non-finite points.
func (r *renderer) drawPath(xs, ys []float64, style string) {
	var path []byte
	inLine := false
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			inLine = false
			continue
		}
		if !inLine {
			path = append(path, 'M')
			inLine = true
		} else {
			path = append(path, ' ', 'L')
		}
		path = strconv.AppendFloat(path, xs[i], 'f', 1, 64)
		path = append(path, ' ')
		path = strconv.AppendFloat(path, ys[i], 'f', 1, 64)
	}
	if len(path) == 0 {
		return
	}
	r.svg.Path(wrapPath(string(path)), style)
}

func (r *renderer) drawMarkers(xs, ys []float64, st LineStyle) {
	d := r.f.Pixels(st.markerSize())
	rad := d / 2
	fill := cssPaint("fill", st.color(), 0)
	stroke := cssPaint("stroke", st.color(), 0) + ";fill:none;stroke-width:" + fmtNum(st.width())
	for i := range xs {
		x, y := xs[i], ys[i]
		if !finite(x) || !finite(y) {
			continue
		}
		switch st.Marker {
		case "o":
			r.svg.Circle(round(x), round(y), round(rad), fill)
		case ".":
			r.svg.Circle(round(x), round(y), round(math.Max(1, rad/3)), fill)
		case "s":
			r.svg.Rect(round(x-rad), round(y-rad), round(d), round(d), fill)
		case "^":
			r.svg.Path(fmt.Sprintf("M%s %sL%s %sL%s %sZ", fmtNum(x), fmtNum(y-rad), fmtNum(x+rad), fmtNum(y+rad), fmtNum(x-rad), fmtNum(y+rad)), fill)
		case "v":
			r.svg.Path(fmt.Sprintf("M%s %sL%s %sL%s %sZ", fmtNum(x), fmtNum(y+rad), fmtNum(x+rad), fmtNum(y-rad), fmtNum(x-rad), fmtNum(y-rad)), fill)
		case "x":
			r.svg.Path(fmt.Sprintf("M%s %sl%s %sM%s %sl%s %s", fmtNum(x-rad), fmtNum(y-rad), fmtNum(d), fmtNum(d), fmtNum(x-rad), fmtNum(y+rad), fmtNum(d), fmtNum(-d)), stroke)
		case "+":
			r.svg.Path(fmt.Sprintf("M%s %sh%sM%s %sv%s", fmtNum(x-rad), fmtNum(y), fmtNum(d), fmtNum(x), fmtNum(y-rad), fmtNum(d)), stroke)
		case "*":
			r.svg.Path(fmt.Sprintf("M%s %sh%sM%s %sv%sM%s %sl%s %sM%s %sl%s %s",
				fmtNum(x-rad), fmtNum(y), fmtNum(d), fmtNum(x), fmtNum(y-rad), fmtNum(d),
				fmtNum(x-0.7*rad), fmtNum(y-0.7*rad), fmtNum(1.4*rad), fmtNum(1.4*rad),
				fmtNum(x-0.7*rad), fmtNum(y+0.7*rad), fmtNum(1.4*rad), fmtNum(-1.4*rad)), stroke)
		}
	}
}

func (r *renderer) renderLegend(ax *Axes, box geom.Rect) {
	rowH, sampleW, pad, _, _ := ax.legendMetrics()
	pts := orDefault(ax.legendPts, 10)
	r.svg.Rect(round(box.X0), r.y(box.Y1), round(box.Width()), round(box.Height()), "fill:#fff;fill-opacity:0.8;stroke:#888;stroke-width:1")
	y := box.Y1 - pad - rowH/2
	for _, l := range ax.legendEntries() {
		st := l.Style
		x0 := box.X0 + pad
		if st.Kind == KindBar {
			r.svg.Rect(round(x0), r.y(y+rowH/4), round(sampleW), round(rowH/2), cssPaint("fill", st.color(), 0))
		} else {
			if st.Kind != KindScatter && st.Dash != "none" {
				r.svg.Path(fmt.Sprintf("M%d %dH%d", round(x0), r.y(y), round(x0+sampleW)), strokeStyle(st))
			}
			if st.Marker != "" || st.Kind == KindScatter || st.Kind == KindStem {
				if st.Marker == "" {
					st.Marker = "o"
				}
				r.drawMarkers([]float64{x0 + sampleW/2}, []float64{r.f.Height - y}, st)
			}
		}
		t := &Text{Text: st.Label, Style: TextStyle{Size: pts, VAlign: "center"}}
		r.drawText(geom.Pt(x0+sampleW+pad, y), t, false)
		y -= rowH
	}
}

func (r *renderer) renderAnnotation(a *Annotation) {
	anchor := a.Anchor()
	if anchor.IsNaN() {
		return
	}
	st := a.Style
	edge := st.BoxEdge
	if edge == "" {
		edge = "k"
	}
	arrow := a.ArrowColor
	if arrow == "" {
		arrow = edge
	}
	box := a.TextBox()

	// The arrow runs from the box's relpos point to the anchor.
	start := a.arrowStart()
	if d := math.Hypot(anchor.X-start.X, anchor.Y-start.Y); d > 1 {
		r.svg.Line(round(start.X), r.y(start.Y), round(anchor.X), r.y(anchor.Y), cssPaint("stroke", arrow, 0)+";stroke-width:1")
		r.arrowHead(start, anchor, arrow)
	}

	st.Box = true
	if st.BoxFace == "" {
		st.BoxFace = "w"
	}
	st.BoxEdge = edge
	st.HAlign, st.VAlign = "left", "bottom"
	pad := st.BoxPad * r.f.Pixels(st.size())
	r.drawText(geom.Pt(box.X0+pad, box.Y0+pad), &Text{Text: a.Text, Style: st}, false)
}

func (r *renderer) arrowHead(from, to geom.Point, color string) {
	const size = 6
	ang := math.Atan2(to.Y-from.Y, to.X-from.X)
	p1 := geom.Pt(to.X-size*math.Cos(ang-0.4), to.Y-size*math.Sin(ang-0.4))
	p2 := geom.Pt(to.X-size*math.Cos(ang+0.4), to.Y-size*math.Sin(ang+0.4))
	r.svg.Path(fmt.Sprintf("M%s %sL%s %sL%s %sZ",
		fmtNum(to.X), fmtNum(r.f.Height-to.Y),
		fmtNum(p1.X), fmtNum(r.f.Height-p1.Y),
		fmtNum(p2.X), fmtNum(r.f.Height-p2.Y)), cssPaint("fill", color, 0))
}

// renderText draws t positioned as fractions of parent.
func (r *renderer) renderText(parent geom.Rect, t *Text) {
	p := geom.Pt(parent.X0+t.X*parent.Width(), parent.Y0+t.Y*parent.Height())
	r.drawText(p, t, false)
}

// TextRect returns the rectangle of text drawn at p in display space
// with the given style, before any box padding.
func (f *Figure) TextRect(p geom.Point, text string, st TextStyle) geom.Rect {
	w, h := f.TextDims(text, st.size())
	x0, y0 := p.X, p.Y
	switch st.HAlign {
	case "center":
		x0 -= w / 2
	case "right":
		x0 -= w
	}
	switch st.VAlign {
	case "center":
		y0 -= h / 2
	case "top":
		y0 -= h
	}
	return geom.Rect{X0: x0, Y0: y0, X1: x0 + w, Y1: y0 + h}
}

// drawText draws t with its alignment point at p. If rotated, the
// text reads upward and its alignment applies in the rotated frame.
func (r *renderer) drawText(p geom.Point, t *Text, rotated bool) {
	st := t.Style
	// Rotated text is laid out at the origin and then rotated and
	// moved to p.
	origin := p
	if rotated {
		origin = geom.Point{}
	}
	rect := r.f.TextRect(origin, t.Text, st)
	px := r.f.Pixels(st.size())
	attrs := []string{fmt.Sprintf(`font-size="%.3gpx"`, px)}
	if st.Weight == "bold" {
		attrs = append(attrs, `font-weight="bold"`)
	}
	if st.Family == "monospace" {
		attrs = append(attrs, `font-family="Go Mono,monospace"`)
	}
	if rotated {
		attrs = append(attrs, fmt.Sprintf(`transform="translate(%d,%d) rotate(-90)"`, round(p.X), r.y(p.Y)))
	}
	r.svg.Group(attrs...)
	defer r.svg.Gend()

	yOf := func(y float64) int {
		if rotated {
			return round(-y)
		}
		return r.y(y)
	}
	if st.Box {
		pad := st.BoxPad * px
		bx := rect.Pad(pad)
		style := cssPaint("fill", st.BoxFace, st.BoxAlpha)
		if st.BoxEdge != "" {
			style += ";" + cssPaint("stroke", st.BoxEdge, 0) + ";stroke-width:1"
		}
		r.svg.Rect(round(bx.X0), yOf(bx.Y1), round(bx.Width()), round(bx.Height()), style)
	}

	lines := strings.Split(t.Text, "\n")
	lineH := rect.Height() / float64(len(lines))
	color := st.Color
	if color == "" {
		color = "k"
	}
	fill := cssPaint("fill", color, 0)
	x, anchor := rect.X0, "start"
	switch st.HAlign {
	case "center":
		x, anchor = rect.Center().X, "middle"
	case "right":
		x, anchor = rect.X1, "end"
	}
	for i, line := range lines {
		cy := rect.Y1 - (float64(i)+0.5)*lineH
		r.svg.Text(round(x), yOf(cy), line, `text-anchor="`+anchor+`"`, `dy=".35em"`, fill)
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func fmtNum(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func fmtNums(xs ...float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'f', 2, 64)
	}
	return strings.Join(parts, ",")
}

// wrapPath wraps SVG path data so no line is much longer than 70
// bytes.
func wrapPath(p string) string {
	const width = 70
	if len(p) <= width {
		return p
	}
	parts := make([]string, 0, 16)
	for len(p) > width {
		// Find the last command or space before exceeding width.
		lastCmd, lastSpace := 0, 0
		for i, ch := range p {
			if i >= width && (lastCmd != 0 || lastSpace != 0) {
				break
			}
			if 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' {
				lastCmd = i
			} else if ch == ' ' {
				lastSpace = i
			}
		}
		split := len(p)
		// Prefer splitting at commands.
		if lastCmd != 0 {
			split = lastCmd
		} else if lastSpace != 0 {
			split = lastSpace
		}
		parts, p = append(parts, p[:split]), p[split:]
	}
	if len(p) > 0 {
		parts = append(parts, p)
	}
	return strings.Join(parts, "\n")
}
