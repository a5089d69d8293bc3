// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-yampex/figure"
)

// The option methods of Plotter return the Plotter so they can be
// chained. Called outside of Subplots, an option applies to every
// subplot. Called inside, it applies only to the next subplot
// plotted.
//
// Invalid arguments are recorded and returned by the next Plot call
// or by Exit.

func (p *Plotter) opts() *opts {
	if p.local != nil {
		return p.local
	}
	return &p.global
}

func (p *Plotter) setErr(err error) *Plotter {
	if p.err == nil {
		p.err = err
	}
	return p
}

// Set sets an axes property of the subplot. Recognized names are
// "xlim" and "ylim" ([2]float64 or []float64), "xlabel", "ylabel",
// and "title" (string), "xscale" and "yscale" ("linear" or "log"),
// and "grid" (bool).
func (p *Plotter) Set(name string, value any) *Plotter {
	if err := checkSetting(name, value); err != nil {
		return p.setErr(err)
	}
	p.opts().settings[name] = value
	return p
}

func checkSetting(name string, value any) error {
	switch name {
	case "xlim", "ylim":
		if _, ok := limits(value); !ok {
			return fmt.Errorf("setting %s: want two numbers, got %v", name, value)
		}
	case "xlabel", "ylabel", "title":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("setting %s: want string, got %T", name, value)
		}
	case "xscale", "yscale":
		if value != "log" && value != "linear" {
			return fmt.Errorf("setting %s: want \"log\" or \"linear\", got %v", name, value)
		}
	case "grid":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("setting %s: want bool, got %T", name, value)
		}
	default:
		return fmt.Errorf("unknown setting %q", name)
	}
	return nil
}

func limits(v any) ([2]float64, bool) {
	switch v := v.(type) {
	case [2]float64:
		return v, true
	case []float64:
		if len(v) == 2 {
			return [2]float64{v[0], v[1]}, true
		}
	}
	return [2]float64{}, false
}

// AddPlotKeyword overrides one style property of every line:
// "color", "linestyle", "linewidth" (points), "marker", or
// "markersize" (points).
func (p *Plotter) AddPlotKeyword(name string, value any) *Plotter {
	var st figure.LineStyle
	if err := applyKeywords(figure.New(1, 1, 0), &st, map[string]any{name: value}); err != nil {
		return p.setErr(err)
	}
	p.opts().keywords[name] = value
	return p
}

// ClearPlotKeywords removes all plot keywords.
func (p *Plotter) ClearPlotKeywords() *Plotter {
	p.opts().keywords = map[string]any{}
	return p
}

// SetLogLog makes both axes logarithmic.
func (p *Plotter) SetLogLog(on bool) *Plotter {
	o := p.opts()
	o.logx, o.logy = on, on
	return p
}

// SetSemilogX makes the x axis logarithmic.
func (p *Plotter) SetSemilogX(on bool) *Plotter {
	p.opts().logx = on
	return p
}

// SetSemilogY makes the y axis logarithmic.
func (p *Plotter) SetSemilogY(on bool) *Plotter {
	p.opts().logy = on
	return p
}

func (p *Plotter) setKind(k figure.Kind, on bool) *Plotter {
	o := p.opts()
	if on {
		o.kind = k
	} else if o.kind == k {
		o.kind = figure.KindPlot
	}
	return p
}

// SetBar draws vectors as bar charts.
func (p *Plotter) SetBar(on bool) *Plotter { return p.setKind(figure.KindBar, on) }

// SetStem draws vectors as stem plots.
func (p *Plotter) SetStem(on bool) *Plotter { return p.setKind(figure.KindStem, on) }

// SetStep draws vectors as step plots.
func (p *Plotter) SetStep(on bool) *Plotter { return p.setKind(figure.KindStep, on) }

// UseLabels labels each line with an annotation instead of putting
// its legend entry in a legend box.
func (p *Plotter) UseLabels() *Plotter {
	p.opts().useLabels = true
	return p
}

// UseGrid draws a grid at the major ticks.
func (p *Plotter) UseGrid() *Plotter {
	p.opts().grid = true
	return p
}

// SetTimeX treats x vectors as seconds and scales them to the most
// readable time unit, which becomes the x label. Set outside of
// Subplots, the x label is shown only on the bottom row.
func (p *Plotter) SetTimeX() *Plotter {
	p.opts().timex = true
	if p.local == nil {
		p.universalXLabel = true
	}
	return p
}

// SetFirstVectorTop raises the y limit if the data comes within 5%
// of it.
func (p *Plotter) SetFirstVectorTop() *Plotter {
	p.opts().firstVectorTop = true
	return p
}

// SetBump raises the upper y limit by 20%.
func (p *Plotter) SetBump() *Plotter {
	p.opts().bump = true
	return p
}

// SetZeroBottom makes the lower y limit zero.
func (p *Plotter) SetZeroBottom() *Plotter {
	p.opts().zeroBottom = true
	return p
}

// SetZeroLine draws a dashed horizontal line at y (default 0) if it
// is within the y limits.
func (p *Plotter) SetZeroLine(y ...float64) *Plotter {
	v := 0.0
	if len(y) > 0 {
		v = y[0]
	}
	p.opts().zeroLine = &v
	return p
}

// ClearZeroLine removes the zero line.
func (p *Plotter) ClearZeroLine() *Plotter {
	p.opts().zeroLine = nil
	return p
}

// AddMarker appends a marker for the next line. Lines past the end
// of the marker list use the last marker. A size of 0 uses the
// default size.
func (p *Plotter) AddMarker(marker string, size float64) *Plotter {
	o := p.opts()
	o.markers = append(o.markers, markerOpt{marker, size})
	return p
}

// ClearMarkers removes all markers.
func (p *Plotter) ClearMarkers() *Plotter {
	p.opts().markers = nil
	return p
}

// AddLine appends a line style ("-", "--", ":", "-.", or "") and
// width in points for the next line.
func (p *Plotter) AddLine(dash string, width float64) *Plotter {
	o := p.opts()
	o.lines = append(o.lines, lineOpt{dash, width})
	return p
}

// ClearLines removes all line styles.
func (p *Plotter) ClearLines() *Plotter {
	p.opts().lines = nil
	return p
}

// AddColor appends a color to the palette.
func (p *Plotter) AddColor(c string) *Plotter {
	if _, err := figure.ParseColor(c); err != nil {
		return p.setErr(err)
	}
	o := p.opts()
	o.colors = append(o.colors, c)
	return p
}

// SetColors replaces the palette. With no colors, the default
// palette is used.
func (p *Plotter) SetColors(colors ...string) *Plotter {
	for _, c := range colors {
		if _, err := figure.ParseColor(c); err != nil {
			return p.setErr(err)
		}
	}
	p.opts().colors = append([]string(nil), colors...)
	return p
}

// SetColorGradient replaces the palette with n colors evenly spaced
// on a gradient between from and to.
func (p *Plotter) SetColorGradient(from, to string, n int) *Plotter {
	c0, err := figure.ParseColor(from)
	if err != nil {
		return p.setErr(err)
	}
	c1, err := figure.ParseColor(to)
	if err != nil {
		return p.setErr(err)
	}
	if n < 1 {
		return p.setErr(fmt.Errorf("bad gradient size %d", n))
	}
	grad := palette.RGBGradient{Colors: []color.RGBA{c0, c1}}
	colors := make([]string, n)
	for i := range colors {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		colors[i] = figure.ColorString(grad.Map(x))
	}
	p.opts().colors = colors
	return p
}

// SetYScale multiplies every vector after the first dependent one by
// scale. A scale of 0 picks the multiplier automatically.
func (p *Plotter) SetYScale(scale float64) *Plotter {
	if scale == 0 {
		scale = -1
	}
	p.opts().yscale = scale
	return p
}

func parseAxes(name string) ([]figure.Axis, error) {
	var axes []figure.Axis
	for _, c := range strings.ToLower(name) {
		switch c {
		case 'x':
			axes = append(axes, figure.X)
		case 'y':
			axes = append(axes, figure.Y)
		default:
			return nil, fmt.Errorf("unknown axis %q", name)
		}
	}
	if len(axes) == 0 {
		return nil, fmt.Errorf("no axis named")
	}
	return axes, nil
}

// SetAxisExact makes the limits of the named axes ("x", "y", or
// "xy") exactly the data range.
func (p *Plotter) SetAxisExact(axis string) *Plotter {
	axes, err := parseAxes(axis)
	if err != nil {
		return p.setErr(err)
	}
	for _, a := range axes {
		p.opts().axisExact[a] = true
	}
	return p
}

// SetTickSpacing sets the major ticks of the named axis. An int
// major is the maximum number of ticks and a float64 is the spacing
// between them.
func (p *Plotter) SetTickSpacing(axis string, major any) *Plotter {
	axes, err := parseAxes(axis)
	if err != nil {
		return p.setErr(err)
	}
	for _, a := range axes {
		t := &p.opts().ticks[a]
		switch m := major.(type) {
		case int:
			t.maxTicks, t.spacing = m, 0
		case float64:
			t.maxTicks, t.spacing = 0, m
		default:
			return p.setErr(fmt.Errorf("tick spacing: want int or float64, got %T", major))
		}
	}
	return p
}

// SetMinorTicks turns minor ticks of the named axis on or off.
func (p *Plotter) SetMinorTicks(axis string, on bool) *Plotter {
	axes, err := parseAxes(axis)
	if err != nil {
		return p.setErr(err)
	}
	for _, a := range axes {
		v := on
		p.opts().ticks[a].minor = &v
	}
	return p
}

// AddAxvline draws a dashed vertical line at x, which is either an
// int index into the x vector or a float64 x value.
func (p *Plotter) AddAxvline(x any) *Plotter {
	switch x.(type) {
	case int, float64:
	default:
		return p.setErr(fmt.Errorf("axvline: want int or float64, got %T", x))
	}
	o := p.opts()
	o.axvlines = append(o.axvlines, x)
	return p
}

// SetXLabel sets the x label. Set outside of Subplots, it is shown
// only on the bottom row.
func (p *Plotter) SetXLabel(format string, args ...any) *Plotter {
	p.opts().xlabel = fmt.Sprintf(format, args...)
	if p.local == nil {
		p.universalXLabel = true
	}
	return p
}

// SetYLabel sets the y label.
func (p *Plotter) SetYLabel(format string, args ...any) *Plotter {
	p.opts().ylabel = fmt.Sprintf(format, args...)
	return p
}

// AddLegend appends a legend entry for the next line.
func (p *Plotter) AddLegend(format string, args ...any) *Plotter {
	o := p.opts()
	o.legend = append(o.legend, fmt.Sprintf(format, args...))
	return p
}

// ClearLegend removes all legend entries.
func (p *Plotter) ClearLegend() *Plotter {
	o := p.opts()
	o.legend, o.autolegend = nil, false
	return p
}

// SetLegend replaces the legend entries.
func (p *Plotter) SetLegend(entries ...string) *Plotter {
	p.opts().legend = append([]string(nil), entries...)
	return p
}

// UseAutoLegend gives every line a legend entry: its vector name if
// it has one, otherwise "#k".
func (p *Plotter) UseAutoLegend() *Plotter {
	p.opts().autolegend = true
	return p
}

// AddAnnotation annotates a point of a vector. k is an int index
// into the vector, counting from the end if negative, or a float64
// x value. text is a string, an int, or a float64. The optional
// kVector selects the vector, counting dependent vectors from 0.
func (p *Plotter) AddAnnotation(k any, text any, kVector ...int) *Plotter {
	return p.addAnnotation(k, text, false, kVector)
}

// AddYAnnotation annotates the point of a vector whose value is
// nearest y.
func (p *Plotter) AddYAnnotation(y float64, text any, kVector ...int) *Plotter {
	return p.addAnnotation(y, text, true, kVector)
}

func (p *Plotter) addAnnotation(k any, text any, y bool, kVector []int) *Plotter {
	switch k.(type) {
	case int, float64:
	default:
		return p.setErr(fmt.Errorf("annotation index: want int or float64, got %T", k))
	}
	s, err := annotationText(text)
	if err != nil {
		return p.setErr(err)
	}
	a := annotationOpt{k: k, text: s, y: y}
	if len(kVector) > 0 {
		a.kVector = kVector[0]
	}
	o := p.opts()
	o.annotations = append(o.annotations, a)
	return p
}

func annotationText(text any) (string, error) {
	switch t := text.(type) {
	case string:
		return t, nil
	case int:
		return fmt.Sprintf("%d", t), nil
	case float64:
		return fmt.Sprintf("%.2f", t), nil
	}
	return "", fmt.Errorf("annotation text: want string, int, or float64, got %T", text)
}

// ClearAnnotations removes all annotations.
func (p *Plotter) ClearAnnotations() *Plotter {
	p.opts().annotations = nil
	return p
}

// AddTextBox adds text at a compass location ("NE", "S", "M", ...)
// of the subplot. Text added at a location that already has some
// goes on a new line.
func (p *Plotter) AddTextBox(location, format string, args ...any) *Plotter {
	loc := strings.ToUpper(location)
	o := p.opts()
	text := fmt.Sprintf(format, args...)
	if prev, ok := o.textBoxes[loc]; ok {
		o.textBoxes[loc] = prev + "\n" + text
		return p
	}
	o.textBoxes[loc] = text
	o.boxOrder = append(o.boxOrder, loc)
	return p
}

// ClearTextBoxes removes all text boxes.
func (p *Plotter) ClearTextBoxes() *Plotter {
	o := p.opts()
	o.textBoxes, o.boxOrder = map[string]string{}, nil
	return p
}

// SetTitle sets the figure title outside of Subplots, or the subplot
// title inside.
func (p *Plotter) SetTitle(format string, args ...any) *Plotter {
	text := fmt.Sprintf(format, args...)
	if p.local == nil {
		p.title = text
		return p
	}
	p.local.title = text
	return p
}

// SetFontsize sets the size of "legend" or "annotations" text, in
// points or as a size name such as "small".
func (p *Plotter) SetFontsize(name string, size any) *Plotter {
	if name != "legend" && name != "annotations" {
		return p.setErr(fmt.Errorf("unknown font size name %q", name))
	}
	p.opts().fontsizes[name] = size
	return p
}
