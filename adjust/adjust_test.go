// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adjust

import (
	"strings"
	"testing"

	"github.com/aclements/go-yampex/figure"
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

// newFigure returns a 1000x500 figure with two stacked subplots whose
// ticks are fixed at y = 0, 5, 10 and x = 0, 50, 100.
func newFigure(t *testing.T) (*figure.Figure, []*figure.Axes) {
	t.Helper()
	f := figure.New(1000, 500, 100)
	f.Measurer = fixedMeasurer{}
	var axes []*figure.Axes
	for k := 0; k < 2; k++ {
		ax, err := f.AddSubplot(2, 1, k)
		if err != nil {
			t.Fatal(err)
		}
		ax.SetLim(figure.X, 0, 100)
		ax.SetTickSpacing(figure.X, 50)
		ax.SetLim(figure.Y, 0, 10)
		ax.SetTickSpacing(figure.Y, 5)
		ax.SetLabel(figure.Y, "V", 10)
		axes = append(axes, ax)
	}
	axes[0].SetTitle("Top", 12)
	return f, axes
}

func TestAdjust(t *testing.T) {
	f, axes := newFigure(t)
	a := New(f)
	got := a.Adjust(map[int]string{0: "Time", 1: "Time"}, 10, true, 30)
	want := figure.Params{
		Top:    1 - 53.0/500,
		HSpace: 65.0 / 250,
		Bottom: 50.0 / 500,
		WSpace: 1.3 * 47 / 1000,
		Left:   1.3 * 47 / 1000,
		Right:  1 - 24.0/1000,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Adjust mismatch (-want +got):\n%s", diff)
	}
	if l, _ := axes[0].Label(figure.X); l != "" {
		t.Errorf("top subplot has x label %q with a universal label", l)
	}
	if l, _ := axes[1].Label(figure.X); l != "Time" {
		t.Errorf("bottom subplot x label = %q, want Time", l)
	}
}

func TestAdjustNotUniversal(t *testing.T) {
	f, axes := newFigure(t)
	New(f).Adjust(map[int]string{0: "a", 1: "b"}, 10, true, 0)
	for i, want := range []string{"a", "b"} {
		if l, _ := axes[i].Label(figure.X); l != want {
			t.Errorf("subplot %d x label = %q, want %q", i, l, want)
		}
	}
}

func TestScaledHeightLimit(t *testing.T) {
	f, _ := newFigure(t)
	a := New(f)
	if got := a.scaledHeight(1000, false, 1, 15, 0.15); got != 0.15 {
		t.Errorf("scaledHeight = %v, want limit 0.15", got)
	}
	if got := a.scaledHeight(85, true, 1, 15, 0); got != 100.0/250 {
		t.Errorf("per-subplot scaledHeight = %v, want %v", got, 100.0/250)
	}
}

func TestUniversalXLabel(t *testing.T) {
	for _, test := range []struct {
		labels map[int]string
		want   bool
	}{
		{nil, true},
		{map[int]string{0: "x"}, true},
		{map[int]string{0: "x", 3: "x"}, true},
		{map[int]string{0: "x", 1: "y"}, false},
	} {
		if got := UniversalXLabel(test.labels); got != test.want {
			t.Errorf("UniversalXLabel(%v) = %v, want %v", test.labels, got, test.want)
		}
	}
}

func TestEstimateFallback(t *testing.T) {
	f := figure.New(1000, 500, 72)
	f.Measurer = nil
	a := New(f)
	w, h := a.textDims("abcde", 10)
	if w != 20 || h != 10 {
		t.Errorf("estimated dims = %v, %v, want 20, 10", w, h)
	}
}
