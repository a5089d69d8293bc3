// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotate

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/aclements/go-yampex/figure"
	"github.com/aclements/go-yampex/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

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

// newAxes returns a 1000x500 figure with one subplot whose plotting
// area is [100,900]x[50,450] and shows x in [0,10] and y in [0,100].
func newAxes(t *testing.T) *figure.Axes {
	t.Helper()
	f := figure.New(1000, 500, 100)
	f.Measurer = fixedMeasurer{}
	ax, err := f.AddSubplot(1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	f.SubplotsAdjust(figure.Params{Left: 0.1, Right: 0.9, Top: 0.9, Bottom: 0.1})
	ax.SetLim(figure.X, 0, 10)
	ax.SetLim(figure.Y, 0, 100)
	return ax
}

func TestNewRegion(t *testing.T) {
	anchor := geom.Pt(100, 100)
	for _, test := range []struct {
		offset geom.Point
		want   Region
	}{
		{geom.Pt(20, 20), Region{geom.Rect{X0: 113, Y0: 113, X1: 157, Y1: 137}, anchor, geom.Pt(0, 0)}},
		{geom.Pt(-20, -20), Region{geom.Rect{X0: 43, Y0: 63, X1: 87, Y1: 87}, anchor, geom.Pt(1, 1)}},
		{geom.Pt(0, 28.3), Region{geom.Rect{X0: 78, Y0: 121.3, X1: 122, Y1: 145.3}, anchor, geom.Pt(0.5, 0)}},
	} {
		got := NewRegion(anchor, test.offset, 40, 20)
		if diff := cmp.Diff(test.want, got, approx); diff != "" {
			t.Errorf("NewRegion(offset %v) mismatch (-want +got):\n%s", test.offset, diff)
		}
	}
}

func TestArrowOverlaps(t *testing.T) {
	anchor := geom.Pt(100, 100)
	rect := func(x0, y0, x1, y1 float64) Region {
		return Region{Rect: geom.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}}
	}
	up := NewRegion(anchor, geom.Pt(0, 56.6), 40, 20)
	left := NewRegion(anchor, geom.Pt(-56.6, 0), 40, 20)
	diag := NewRegion(anchor, geom.Pt(40, 40), 40, 20)
	for _, test := range []struct {
		name string
		r, o Region
		want bool
	}{
		{"vertical crosses", up, rect(90, 110, 110, 130), true},
		{"vertical beyond box", up, rect(90, 180, 110, 200), false},
		{"vertical beside", up, rect(200, 110, 220, 130), false},
		{"horizontal crosses", left, rect(60, 90, 80, 110), true},
		{"horizontal beyond anchor", left, rect(120, 90, 140, 110), false},
		{"diagonal", diag, rect(110, 110, 130, 130), false},
	} {
		if got := test.r.ArrowOverlaps(test.o); got != test.want {
			t.Errorf("%s: %v.ArrowOverlaps(%v) = %v, want %v", test.name, test.r, test.o, got, test.want)
		}
	}
}

func TestSizer(t *testing.T) {
	s := NewSizer()
	heights := []float64{2, 3, 20, 30}
	calls := 0
	s.Measure = func(a *figure.Annotation) (w, h float64) {
		h = heights[calls]
		calls++
		return 40, h
	}
	a := &figure.Annotation{Text: "x"}
	w, h := s.Size(a)
	if w != 40 || h != 20 || calls != 3 {
		t.Errorf("Size = %v, %v after %d calls, want 40, 20 after 3", w, h, calls)
	}
	// Now cached.
	if w, h := s.Size(a); w != 40 || h != 20 || calls != 3 {
		t.Errorf("cached Size = %v, %v after %d calls, want 40, 20 after 3", w, h, calls)
	}

	// Bogus sizes are retried maxTries times.
	calls = 0
	s.Measure = func(a *figure.Annotation) (w, h float64) {
		calls++
		return 0, 0
	}
	b := &figure.Annotation{Text: "y"}
	s.Size(b)
	if calls != maxTries+1 {
		t.Errorf("got %d measurements of a bogus size, want %d", calls, maxTries+1)
	}
	// A zero-area size is never legitimate, so it is measured again.
	s.Size(b)
	if calls != 2*(maxTries+1) {
		t.Errorf("got %d measurements after second Size, want %d", calls, 2*(maxTries+1))
	}
}

func fixedSizer(w, h float64) *Sizer {
	s := NewSizer()
	s.Measure = func(*figure.Annotation) (float64, float64) { return w, h }
	return s
}

func TestScore(t *testing.T) {
	ax := newAxes(t)
	p := NewPositioner(fixedSizer(40, 20))
	center := ax.Annotate("center", 5, 50, geom.Point{}, geom.Pt(0.5, 0.5), figure.TextStyle{})
	right := ax.Annotate("right", 10, 50, geom.Point{}, geom.Pt(0.5, 0.5), figure.TextStyle{})
	p.Add(center)

	ne, e := offsets[0], offsets[1]
	for _, test := range []struct {
		name     string
		a        *figure.Annotation
		offset   geom.Point
		radius   float64
		mustBeat float64
		want     float64
	}{
		{"clear", center, ne, 1, 1e9, 0},
		// Region [913,957] is beyond the axes.
		{"beyond axes", right, ne, 1, 1e9, 3},
		{"beyond axes, radius 2", right, ne, 2, 1e9, 6},
		// Region starts at x=1006.2, beyond the figure.
		{"beyond figure", right, e, 4, 1e9, 36},
	} {
		got, _ := p.Score(test.a, test.offset, test.radius, test.mustBeat)
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("%s: Score = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestScoreOthersAndData(t *testing.T) {
	ax := newAxes(t)
	if _, err := ax.AddLine([]float64{0, 10}, []float64{50, 50}, figure.LineStyle{}); err != nil {
		t.Fatal(err)
	}
	p := NewPositioner(fixedSizer(40, 20))
	p.LoadData(ax)
	a := ax.Annotate("a", 5, 50, geom.Point{}, geom.Pt(0.5, 0.5), figure.TextStyle{})
	b := ax.Annotate("b", 5, 50, geom.Pt(28.3, 0), geom.Pt(0, 0.5), figure.TextStyle{})
	p.Add(a)

	ne, e := offsets[0], offsets[1]
	score, _ := p.Score(a, ne, 1, 1e9)
	if score != 0 {
		t.Errorf("NE above the data: score %v, want 0", score)
	}
	score, _ = p.Score(a, e, 1, 1e9)
	if score != dataScore {
		t.Errorf("E across the data: score %v, want %v", score, dataScore)
	}

	p.Add(b)
	score, _ = p.Score(a, e, 1, 1e9)
	if want := overlapScore + dataScore; score != want {
		t.Errorf("E over b and the data: score %v, want %v", score, want)
	}
	score, _ = p.Score(a, e, 1, 3)
	if score != overlapScore {
		t.Errorf("E over b, mustBeat 3: score %v, want %v", score, overlapScore)
	}
}

func TestAnnotatorClear(t *testing.T) {
	ax := newAxes(t)
	an := New(ax)
	a := an.Add(5, 50, "abcd")
	if diff := cmp.Diff(geom.Pt(20, 20), a.Offset, approx); diff != "" {
		t.Errorf("offset mismatch (-want +got):\n%s", diff)
	}
	if a.RelPos != geom.Pt(0, 0) || a.Style.HAlign != "left" || a.Style.VAlign != "bottom" {
		t.Errorf("relpos %v, alignment %s/%s, want (0, 0), left/bottom", a.RelPos, a.Style.HAlign, a.Style.VAlign)
	}
	if a.ArrowColor != DefaultColor || !a.Style.Box {
		t.Errorf("annotation not styled: %+v", a)
	}
}

func TestAnnotatorAvoidsData(t *testing.T) {
	ax := newAxes(t)
	// A diagonal through the anchor crosses the NE and E candidates.
	if _, err := ax.AddLine([]float64{0, 10}, []float64{0, 100}, figure.LineStyle{}); err != nil {
		t.Fatal(err)
	}
	an := New(ax)
	a := an.Add(5, 50, "abcd")
	if diff := cmp.Diff(geom.Pt(20, -20), a.Offset, approx); diff != "" {
		t.Errorf("offset mismatch (-want +got):\n%s", diff)
	}
	if a.RelPos != geom.Pt(0, 1) || a.Style.VAlign != "top" {
		t.Errorf("relpos %v, valign %s, want (0, 1), top", a.RelPos, a.Style.VAlign)
	}
}

func TestAnnotatorAvoidsOthers(t *testing.T) {
	ax := newAxes(t)
	an := New(ax)
	a1 := an.Add(5, 50, "abcd")
	a2 := an.Add(5, 50, "efgh")
	if diff := cmp.Diff(geom.Pt(20, 20), a1.Offset, approx); diff != "" {
		t.Errorf("first offset mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(geom.Pt(28.3, 0), a2.Offset, approx); diff != "" {
		t.Errorf("second offset mismatch (-want +got):\n%s", diff)
	}
	if len(an.Annotations()) != 2 || len(ax.Annotations()) != 2 {
		t.Errorf("got %d/%d annotations, want 2", len(an.Annotations()), len(ax.Annotations()))
	}
	an.Remove(a1)
	if len(an.Annotations()) != 1 || len(ax.Annotations()) != 1 {
		t.Errorf("after Remove got %d/%d annotations, want 1", len(an.Annotations()), len(ax.Annotations()))
	}
}

func TestPadding(t *testing.T) {
	an := New(nil)
	for _, test := range []struct {
		size any
		want float64
	}{
		{12, 0.25},
		{20, 0.28},
		{30, 0.2},
		{"xx-large", 0.44 - 0.008*17.28},
	} {
		an.FontSize = test.size
		if got := an.Padding(); math.Abs(got-math.Min(0.25, test.want)) > 1e-9 {
			t.Errorf("Padding at %v = %v, want %v", test.size, got, math.Min(0.25, test.want))
		}
	}
}

func TestTextBoxPosition(t *testing.T) {
	f := figure.New(1000, 500, 100)
	fm := NewFigureTextBoxMaker(f, TextBoxOptions{})
	for _, test := range []struct {
		loc    string
		x, y   float64
		ha, va string
	}{
		{"NE", 0.98, 0.98, "right", "top"},
		{"sw", 0.02, 0.02, "left", "bottom"},
		{"S", 0.5, 0.02, "center", "center"},
		{"W", 0.02, 0.5, "left", "center"},
		{"M", 0.5, 0.5, "center", "center"},
	} {
		x, y, ha, va, err := fm.Position(test.loc, "text")
		if err != nil {
			t.Errorf("Position(%s): %v", test.loc, err)
			continue
		}
		if math.Abs(x-test.x) > 1e-9 || math.Abs(y-test.y) > 1e-9 || ha != test.ha || va != test.va {
			t.Errorf("Position(%s) = %v, %v, %s, %s, want %v, %v, %s, %s", test.loc, x, y, ha, va, test.x, test.y, test.ha, test.va)
		}
	}
	if _, _, _, _, err := fm.Position("Q", "text"); err == nil {
		t.Errorf("Position(Q): want error")
	}

	pm := NewFigureTextBoxMaker(f, TextBoxOptions{PixelMargin: 10})
	if _, _, _, _, err := pm.Position("NE", "text"); !errors.Is(err, ErrPixelMargin) {
		t.Errorf("pixel margin without dims: got %v, want %v", err, ErrPixelMargin)
	}
	pm = NewFigureTextBoxMaker(f, TextBoxOptions{PixelMargin: 10, FigDims: [2]float64{1000, 500}})
	x, y, _, _, err := pm.Position("NE", "text")
	if err != nil {
		t.Fatal(err)
	}
	if x >= 0.99 || y >= 0.98 {
		t.Errorf("Position with pixel margin = %v, %v, want inside margin", x, y)
	}

	ax, err := f.AddSubplot(3, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	am := NewTextBoxMaker(ax, 2, 3, TextBoxOptions{})
	x, y, _, _, err = am.Position("NE", "text")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-0.96) > 1e-9 || math.Abs(y-0.94) > 1e-9 {
		t.Errorf("subplot Position(NE) = %v, %v, want 0.96, 0.94", x, y)
	}
}

func TestTextBoxAddRemove(t *testing.T) {
	f := figure.New(1000, 500, 100)
	m := NewFigureTextBoxMaker(f, TextBoxOptions{})
	if _, err := m.Add("NW", "one"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Add("SE", "two\nlines"); err != nil {
		t.Fatal(err)
	}
	if len(f.Texts()) != 2 {
		t.Fatalf("got %d figure texts, want 2", len(f.Texts()))
	}
	m.Remove()
	if len(f.Texts()) != 0 {
		t.Errorf("got %d figure texts after Remove, want 0", len(f.Texts()))
	}
}

func TestNaNAnchor(t *testing.T) {
	ax := newAxes(t)
	ax.SetLog(figure.Y, true)
	ax.SetLim(figure.Y, 1, 100)
	p := NewPositioner(fixedSizer(40, 20))
	good := ax.Annotate("good", 5, 10, geom.Point{}, geom.Pt(0.5, 0.5), figure.TextStyle{})
	p.Add(good)
	if score, r := p.Score(good, offsets[0], 1, 1e9); score != 0 {
		t.Fatalf("NE alone: score %v at %v, want 0", score, r)
	}

	// y <= 0 has no place on a log axis.
	bad := ax.Annotate("bad", 5, -1, geom.Point{}, geom.Pt(0.5, 0.5), figure.TextStyle{})
	if !bad.Anchor().IsNaN() {
		t.Fatalf("anchor of y=-1 on a log axis is %v, want NaN", bad.Anchor())
	}
	p.Add(bad)
	if score, r := p.Score(good, offsets[0], 1, 1e9); score != 0 {
		t.Errorf("NE with an off-plot annotation: score %v at %v, want 0", score, r)
	}

	an := New(ax)
	an.p = NewPositioner(fixedSizer(40, 20))
	a1 := an.Add(5, -1, "bad")
	a2 := an.Add(5, 10, "good")
	if a1.Offset != (geom.Point{}) {
		t.Errorf("off-plot annotation moved to %v", a1.Offset)
	}
	if diff := cmp.Diff(geom.Pt(20, 20), a2.Offset, approx); diff != "" {
		t.Errorf("offset mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchIntermediateOffset(t *testing.T) {
	ax := newAxes(t)
	an := New(ax)
	an.p = NewPositioner(fixedSizer(40, 20))
	// The anchor is at (500, 250). Horizontal lines cross every
	// candidate at radii 1 and 2 and NE at radius 4, leaving NNE at
	// radius 4 as the first clear one.
	var data [][2][]float64
	for _, dy := range []float64{0, 25, -25, 50, -50, 85} {
		data = append(data, [2][]float64{{300, 700}, {250 + dy, 250 + dy}})
	}
	a := ax.Annotate("a", 5, 50, geom.Point{}, geom.Pt(0.5, 0.5), figure.TextStyle{})
	an.p.Add(a)
	an.p.SetData(data)

	offset, r, score := an.best(a)
	if score != 0 {
		t.Errorf("best score %v, want 0", score)
	}
	if diff := cmp.Diff(geom.Pt(44, 104), offset, approx); diff != "" {
		t.Errorf("offset mismatch (-want +got):\n%s", diff)
	}
	want := geom.Rect{X0: 537, Y0: 347, X1: 581, Y1: 371}
	if diff := cmp.Diff(want, r.Rect, approx); diff != "" {
		t.Errorf("region mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchDone(t *testing.T) {
	for _, test := range []struct {
		best float64
		k    int
		want bool
	}{
		{1.5, 0, false},
		{1.5, 1, false},
		// Nothing beyond radius 2 can beat 0.3 after the radius 4
		// penalty of 0.4.
		{0.3, 1, true},
		{0.45, 1, false},
		{0.45, 2, true}, // radius 8 penalty is 0.57
		{0.1, len(radii) - 1, false},
	} {
		if got := searchDone(test.best, test.k); got != test.want {
			t.Errorf("searchDone(%v, %d) = %v, want %v", test.best, test.k, got, test.want)
		}
	}
}

func TestUpdateMaxDepth(t *testing.T) {
	// a2 starts over a1's NE spot. In the first pass a1 moves E and
	// then a2 moves away to its own NE. A second pass moves a1 back
	// to NE.
	setup := func(maxDepth int) (an *Annotator, a1, a2 *figure.Annotation) {
		ax := newAxes(t)
		an = New(ax)
		an.MaxDepth = maxDepth
		an.p = NewPositioner(fixedSizer(40, 20))
		a1 = ax.Annotate("a1", 5, 50, geom.Point{}, geom.Pt(0.5, 0.5), figure.TextStyle{})
		a2 = ax.Annotate("a2", 7, 50, geom.Pt(-130, 20), geom.Pt(1, 0), figure.TextStyle{})
		an.p.Add(a1)
		an.p.Add(a2)
		return
	}

	an, a1, a2 := setup(1)
	if !an.Update() {
		t.Errorf("Update with MaxDepth 1 reported no moves")
	}
	if diff := cmp.Diff(geom.Pt(28.3, 0), a1.Offset, approx); diff != "" {
		t.Errorf("MaxDepth 1: a1 offset mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(geom.Pt(20, 20), a2.Offset, approx); diff != "" {
		t.Errorf("MaxDepth 1: a2 offset mismatch (-want +got):\n%s", diff)
	}

	an, a1, a2 = setup(DefaultMaxDepth)
	an.Update()
	if diff := cmp.Diff(geom.Pt(20, 20), a1.Offset, approx); diff != "" {
		t.Errorf("MaxDepth %d: a1 offset mismatch (-want +got):\n%s", DefaultMaxDepth, diff)
	}
	if diff := cmp.Diff(geom.Pt(20, 20), a2.Offset, approx); diff != "" {
		t.Errorf("MaxDepth %d: a2 offset mismatch (-want +got):\n%s", DefaultMaxDepth, diff)
	}
	if an.Update() {
		t.Errorf("Update after settling reported moves")
	}
}
