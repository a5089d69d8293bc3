// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/aclements/go-yampex/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// fixedMeasurer makes every character 6x10 pixels.
type fixedMeasurer struct{}

func (fixedMeasurer) Dims(text string, points float64) (w, h float64) {
	n := 0
	lines := strings.Split(text, "\n")
	for _, l := range lines {
		if len(l) > n {
			n = len(l)
		}
	}
	return 6 * float64(n), 10 * float64(len(lines))
}

func newTestFigure(t *testing.T, nrows, ncols int) (*Figure, []*Axes) {
	t.Helper()
	f := New(1000, 500, 100)
	f.Measurer = fixedMeasurer{}
	var axes []*Axes
	for k := 0; k < nrows*ncols; k++ {
		ax, err := f.AddSubplot(nrows, ncols, k)
		if err != nil {
			t.Fatal(err)
		}
		axes = append(axes, ax)
	}
	return f, axes
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestLayout(t *testing.T) {
	f, axes := newTestFigure(t, 2, 2)
	f.SubplotsAdjust(Params{Left: 0.1, Right: 0.9, Top: 0.9, Bottom: 0.1, WSpace: 0.25, HSpace: 0.5})
	// Grid is 800x400. Axes width w: 2w + 0.25w = 800.
	w := 800 / 2.25
	h := 400 / 2.5
	want := []geom.Rect{
		{X0: 100, Y0: 450 - h, X1: 100 + w, Y1: 450},
		{X0: 100 + 1.25*w, Y0: 450 - h, X1: 900, Y1: 450},
		{X0: 100, Y0: 50, X1: 100 + w, Y1: 50 + h},
		{X0: 100 + 1.25*w, Y0: 50, X1: 900, Y1: 50 + h},
	}
	for i, ax := range axes {
		if diff := cmp.Diff(want[i], ax.Box(), approx); diff != "" {
			t.Errorf("axes %d box mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestAddSubplotErrors(t *testing.T) {
	f := New(100, 100, 0)
	if f.DPI != 100 {
		t.Errorf("default DPI = %v, want 100", f.DPI)
	}
	if _, err := f.AddSubplot(2, 2, 4); err == nil {
		t.Errorf("out of range subplot: want error")
	}
	if _, err := f.AddSubplot(2, 2, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AddSubplot(3, 1, 1); err == nil {
		t.Errorf("mismatched grid: want error")
	}
}

func TestLimAndTransform(t *testing.T) {
	f, axes := newTestFigure(t, 1, 1)
	f.SubplotsAdjust(Params{Left: 0.1, Right: 0.9, Top: 0.9, Bottom: 0.1})
	ax := axes[0]
	if _, err := ax.AddLine([]float64{0, 10}, []float64{0, 100}, LineStyle{}); err != nil {
		t.Fatal(err)
	}
	lo, hi := ax.Lim(X)
	if diff := cmp.Diff([]float64{-0.5, 10.5}, []float64{lo, hi}, approx); diff != "" {
		t.Errorf("x limits (-want +got):\n%s", diff)
	}
	ax.SetLim(X, 0, 10)
	ax.SetLim(Y, 0, 100)
	got := ax.DataToPixels(5, 25)
	if diff := cmp.Diff(geom.Pt(500, 150), got, approx); diff != "" {
		t.Errorf("DataToPixels (-want +got):\n%s", diff)
	}

	ax.SetLog(Y, true)
	ax.SetLim(Y, 1, 100)
	px, py := ax.Transform([]float64{0, 10}, []float64{10, -1})
	if diff := cmp.Diff([]float64{100, 900}, px, approx); diff != "" {
		t.Errorf("Transform x (-want +got):\n%s", diff)
	}
	if py[0] != 250 || !math.IsNaN(py[1]) {
		t.Errorf("Transform log y = %v, want [250 NaN]", py)
	}
}

func TestAddLineMismatch(t *testing.T) {
	_, axes := newTestFigure(t, 1, 1)
	if _, err := axes[0].AddLine([]float64{1, 2}, []float64{1}, LineStyle{}); err == nil {
		t.Errorf("mismatched lengths: want error")
	}
}

func TestSpacedTicks(t *testing.T) {
	got := spacedTicks(-0.1, 1.05, 0.5)
	if diff := cmp.Diff([]float64{0, 0.5, 1}, got.Major, approx); diff != "" {
		t.Errorf("major ticks (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"0.0", "0.5", "1.0"}, got.Labels); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
}

func TestTickLabels(t *testing.T) {
	for _, test := range []struct {
		ticks []float64
		want  []string
	}{
		{[]float64{0, 10, 20}, []string{"0", "10", "20"}},
		{[]float64{0, 0.25, 0.5}, []string{"0.00", "0.25", "0.50"}},
		{[]float64{1e6, 2e6}, []string{"1e+06", "2e+06"}},
	} {
		if diff := cmp.Diff(test.want, tickLabels(test.ticks)); diff != "" {
			t.Errorf("tickLabels(%v) (-want +got):\n%s", test.ticks, diff)
		}
	}
}

func TestLinearTicksInRange(t *testing.T) {
	ts := linearTicks(-3.2, 17.9, 6)
	if len(ts.Major) < 2 || len(ts.Major) > 6 {
		t.Fatalf("got %d major ticks %v, want 2 to 6", len(ts.Major), ts.Major)
	}
	for _, x := range ts.Major {
		if x < -3.2 || x > 17.9 {
			t.Errorf("tick %v outside limits", x)
		}
	}
	if len(ts.Labels) != len(ts.Major) {
		t.Errorf("%d labels for %d ticks", len(ts.Labels), len(ts.Major))
	}
}

func TestLogTicks(t *testing.T) {
	ts := logTicks(1, 1000, 10)
	if diff := cmp.Diff([]float64{1, 10, 100, 1000}, ts.Major, approx); diff != "" {
		t.Errorf("major ticks (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "10", "100", "1000"}, ts.Labels); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
	if len(ts.Minor) != 8*3 {
		t.Errorf("got %d minor ticks, want 24", len(ts.Minor))
	}
}

func TestAnnotationTextBox(t *testing.T) {
	f, axes := newTestFigure(t, 1, 1)
	f.SubplotsAdjust(Params{Left: 0.1, Right: 0.9, Top: 0.9, Bottom: 0.1})
	ax := axes[0]
	ax.SetLim(X, 0, 10)
	ax.SetLim(Y, 0, 100)
	a := ax.Annotate("abcd", 5, 50, geom.Pt(-20, 10), geom.Pt(1, 0), TextStyle{})
	// Anchor (500, 250), box 24x10 with lower right at (480, 260).
	if diff := cmp.Diff(geom.Rect{X0: 456, Y0: 260, X1: 480, Y1: 270}, a.TextBox(), approx); diff != "" {
		t.Errorf("TextBox (-want +got):\n%s", diff)
	}
	if !ax.RemoveAnnotation(a) || len(ax.Annotations()) != 0 {
		t.Errorf("RemoveAnnotation failed")
	}
	if ax.RemoveAnnotation(a) {
		t.Errorf("second RemoveAnnotation succeeded")
	}
}

func TestLegendBoxAvoidsData(t *testing.T) {
	f, axes := newTestFigure(t, 1, 1)
	f.SubplotsAdjust(Params{Left: 0.1, Right: 0.9, Top: 0.9, Bottom: 0.1})
	ax := axes[0]
	// A line rising to the upper right leaves the upper left clear.
	ax.AddLine([]float64{0, 1, 2, 3}, []float64{0, 0, 0, 3}, LineStyle{Label: "rising"})
	ax.SetLegend(true, 10)
	box, ok := ax.LegendBox()
	if !ok {
		t.Fatal("no legend")
	}
	if box.X0 > ax.Box().Center().X || box.Y0 < ax.Box().Center().Y {
		t.Errorf("legend at %v, want upper left of %v", box, ax.Box())
	}
}

func TestWriteSVG(t *testing.T) {
	f, axes := newTestFigure(t, 1, 2)
	f.SetSuptitle("Figure <title>", 14)
	ax := axes[0]
	ax.AddLine([]float64{0, 1, 2}, []float64{1, math.NaN(), 3}, LineStyle{Color: "r", Dash: "--", Label: "a"})
	ax.AddLine([]float64{0, 1, 2}, []float64{3, 2, 1}, LineStyle{Kind: KindBar, Color: "#40C0C0"})
	ax.AddRefLine(X, 1, LineStyle{Color: "k"})
	ax.SetLabel(X, "Time", 10)
	ax.SetLabel(Y, "Value", 10)
	ax.SetTitle("Left", 12)
	ax.SetGrid(true)
	ax.SetLegend(true, 10)
	ax.Annotate("peak", 2, 3, geom.Pt(20, 20), geom.Pt(0, 0), TextStyle{BoxPad: 0.2})
	axes[1].AddLine([]float64{1, 2}, []float64{1, 2}, LineStyle{Kind: KindStem})

	var buf bytes.Buffer
	if err := f.WriteSVG(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"<svg", "</svg>", "clip-path", "stroke-dasharray", "fill:#40c0c0",
		"Figure &lt;title&gt;", ">Time<", ">Value<", "rotate(-90)", ">peak<", ">Left<",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}

func TestFormat(t *testing.T) {
	for _, test := range []struct {
		path, want string
		err        bool
	}{
		{"a.svg", "svg", false},
		{"dir/b.PNG", "png", false},
		{"c.jpg", "jpeg", false},
		{"d.pdf", "", true},
	} {
		got, err := Format(test.path)
		if (err != nil) != test.err || got != test.want {
			t.Errorf("Format(%q) = %q, %v, want %q, error %v", test.path, got, err, test.want, test.err)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		in   string
		want string
	}{
		{"b", "#0000ff"},
		{"#40C0C0", "#40c0c0"},
		{"#abc", "#aabbcc"},
		{"Maroon", "#800000"},
	} {
		c, err := ParseColor(test.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", test.in, err)
			continue
		}
		if got := ColorString(c); got != test.want {
			t.Errorf("ParseColor(%q) = %s, want %s", test.in, got, test.want)
		}
	}
	if _, err := ParseColor("#12"); err == nil {
		t.Errorf("ParseColor(#12): want error")
	}
}
