// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"

	"github.com/aclements/go-yampex/figure"
	"github.com/aclements/go-yampex/textsize"
)

// DefaultColors is the palette used when no colors are set.
var DefaultColors = []string{"b", "g", "r", "#40C0C0", "#C0C040", "#C040C0", "#8080FF"}

type markerOpt struct {
	marker string
	size   float64
}

type lineOpt struct {
	dash  string
	width float64
}

type annotationOpt struct {
	k       any // int index or float64 value
	text    string
	kVector int
	y       bool
}

type tickOpt struct {
	maxTicks int
	spacing  float64
	minor    *bool
}

// opts are the options of one subplot, or the defaults for all
// subplots.
type opts struct {
	colors   []string
	settings map[string]any
	keywords map[string]any
	marker   markerOpt
	markers  []markerOpt
	lines    []lineOpt

	kind       figure.Kind
	logx, logy bool

	grid           bool
	useLabels      bool
	timex          bool
	firstVectorTop bool
	bump           bool
	zeroBottom     bool
	zeroLine       *float64
	axisExact      [2]bool
	ticks          [2]tickOpt
	axvlines       []any

	xlabel, ylabel, title string
	xscale                float64

	// yscale is the multiplier for vectors after the first
	// dependent one. Zero means unscaled and a negative value
	// means automatic.
	yscale float64

	legend      []string
	autolegend  bool
	annotations []annotationOpt
	textBoxes   map[string]string
	boxOrder    []string
	fontsizes   map[string]any
}

func newOpts() opts {
	return opts{
		settings:  map[string]any{},
		keywords:  map[string]any{},
		textBoxes: map[string]string{},
		fontsizes: map[string]any{},
	}
}

// copy returns a deep copy of o.
func (o *opts) copy() *opts {
	n := *o
	n.colors = append([]string(nil), o.colors...)
	n.markers = append([]markerOpt(nil), o.markers...)
	n.lines = append([]lineOpt(nil), o.lines...)
	n.axvlines = append([]any(nil), o.axvlines...)
	n.legend = append([]string(nil), o.legend...)
	n.annotations = append([]annotationOpt(nil), o.annotations...)
	n.boxOrder = append([]string(nil), o.boxOrder...)
	n.settings = copyMap(o.settings)
	n.keywords = copyMap(o.keywords)
	n.fontsizes = copyMap(o.fontsizes)
	n.textBoxes = map[string]string{}
	for k, v := range o.textBoxes {
		n.textBoxes[k] = v
	}
	return &n
}

func copyMap(m map[string]any) map[string]any {
	n := make(map[string]any, len(m))
	for k, v := range m {
		n[k] = v
	}
	return n
}

// color returns the color of the k'th line.
func (o *opts) color(k int) string {
	colors := o.colors
	if len(colors) == 0 {
		colors = DefaultColors
	}
	return colors[k%len(colors)]
}

// getLast returns xs[k], or the last element if k is past the end.
func getLast[T any](xs []T, k int) T {
	if k < len(xs) {
		return xs[k]
	}
	return xs[len(xs)-1]
}

// fontsize returns the size in points of the named text element.
func (o *opts) fontsize(name string, def any) float64 {
	if size, ok := o.fontsizes[name]; ok {
		return textsize.Points(size)
	}
	return textsize.Points(def)
}

// useLegend reports whether a subplot with these options gets a
// legend box rather than line labels.
func (o *opts) useLegend() bool {
	return !o.useLabels && (len(o.legend) > 0 || o.autolegend)
}

// lineStyle returns the style of the k'th line, converting point
// sizes to pixels for f. Plot keywords override everything else.
func (o *opts) lineStyle(f *figure.Figure, k int) (figure.LineStyle, error) {
	m := o.marker
	if len(o.markers) > 0 {
		m = getLast(o.markers, k)
	}
	st := figure.LineStyle{
		Kind:       o.kind,
		Color:      o.color(k),
		Marker:     m.marker,
		MarkerSize: m.size,
	}
	width := 2.0
	switch {
	case len(o.lines) > 0:
		l := getLast(o.lines, k)
		st.Dash = l.dash
		if l.width > 0 {
			width = l.width
		}
	case m.marker == "," || m.marker == ".":
		st.Dash = "none"
	default:
		st.Dash = "-"
	}
	st.Width = f.Pixels(width)
	if err := applyKeywords(f, &st, o.keywords); err != nil {
		return st, err
	}
	st.Marker = normMarker(st.Marker)
	st.Dash = normDash(st.Dash)
	return st, nil
}

func applyKeywords(f *figure.Figure, st *figure.LineStyle, kw map[string]any) error {
	for name, v := range kw {
		switch name {
		case "color", "c":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("plot keyword %s: want string, got %T", name, v)
			}
			st.Color = s
		case "linestyle", "ls":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("plot keyword %s: want string, got %T", name, v)
			}
			st.Dash = s
		case "marker":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("plot keyword %s: want string, got %T", name, v)
			}
			st.Marker = s
		case "linewidth", "lw":
			x, ok := number(v)
			if !ok {
				return fmt.Errorf("plot keyword %s: want number, got %T", name, v)
			}
			st.Width = f.Pixels(x)
		case "markersize", "ms":
			x, ok := number(v)
			if !ok {
				return fmt.Errorf("plot keyword %s: want number, got %T", name, v)
			}
			st.MarkerSize = x
		default:
			return fmt.Errorf("unknown plot keyword %q", name)
		}
	}
	return nil
}

func number(v any) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	return 0, false
}

func normMarker(m string) string {
	if m == "," {
		return "."
	}
	if m == "None" || m == "none" || m == " " {
		return ""
	}
	return m
}

func normDash(d string) string {
	switch d {
	case "", " ", "None", "none":
		return "none"
	case "solid":
		return "-"
	case "dashed":
		return "--"
	case "dotted":
		return ":"
	case "dashdot":
		return "-."
	}
	return d
}

const (
	formatColors  = "bgrcmykw"
	formatMarkers = "o.,s^vx+*"
)

// parseFormat parses a line format string such as "r--" or "bo"
// into a partial style. It reports false if s is not a format.
func parseFormat(s string) (st figure.LineStyle, ok bool) {
	if s == "" {
		return st, false
	}
	rest := s
	for rest != "" {
		switch {
		case strings.HasPrefix(rest, "--"), strings.HasPrefix(rest, "-."):
			st.Dash, rest = rest[:2], rest[2:]
		case rest[0] == '-' || rest[0] == ':':
			st.Dash, rest = rest[:1], rest[1:]
		case strings.IndexByte(formatColors, rest[0]) >= 0:
			if st.Color != "" {
				return st, false
			}
			st.Color, rest = rest[:1], rest[1:]
		case strings.IndexByte(formatMarkers, rest[0]) >= 0:
			if st.Marker != "" {
				return st, false
			}
			st.Marker, rest = normMarker(rest[:1]), rest[1:]
		default:
			return st, false
		}
	}
	if st.Dash == "" {
		if st.Marker != "" {
			st.Dash = "none"
		} else {
			st.Dash = "-"
		}
	}
	return st, true
}
