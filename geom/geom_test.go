// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOverlaps(t *testing.T) {
	base := Rect{10, 10, 20, 20}
	for _, test := range []struct {
		o    Rect
		want bool
	}{
		{Rect{0, 0, 5, 5}, false},
		{Rect{0, 0, 10, 10}, true}, // Touching corners.
		{Rect{15, 15, 25, 25}, true},
		{Rect{12, 12, 18, 18}, true},
		{Rect{0, 12, 30, 18}, true},
		{Rect{21, 10, 30, 20}, false},
		{Rect{10, 21, 20, 30}, false},
		{Rect{12, -5, 18, 9.9}, false},
	} {
		if got := base.Overlaps(test.o); got != test.want {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", base, test.o, got, test.want)
		}
		if got := test.o.Overlaps(base); got != test.want {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", test.o, base, got, test.want)
		}
	}
}

func TestOutside(t *testing.T) {
	bound := Rect{0, 0, 100, 50}
	for _, test := range []struct {
		r    Rect
		want bool
	}{
		{Rect{0, 0, 100, 50}, false},
		{Rect{10, 10, 20, 20}, false},
		{Rect{-1, 10, 20, 20}, true},
		{Rect{90, 10, 101, 20}, true},
		{Rect{10, 45, 20, 51}, true},
		{Rect{10, -0.5, 20, 20}, true},
	} {
		if got := test.r.Outside(bound); got != test.want {
			t.Errorf("%v.Outside(%v) = %v, want %v", test.r, bound, got, test.want)
		}
	}
}

func TestUnionIntersect(t *testing.T) {
	a, b := Rect{0, 0, 10, 10}, Rect{5, -5, 20, 8}
	if diff := cmp.Diff(Rect{0, -5, 20, 10}, a.Union(b)); diff != "" {
		t.Errorf("Union mismatch (-want +got):\n%s", diff)
	}
	got, ok := a.Intersect(b)
	if !ok {
		t.Fatalf("Intersect reported empty")
	}
	if diff := cmp.Diff(Rect{5, 0, 10, 8}, got); diff != "" {
		t.Errorf("Intersect mismatch (-want +got):\n%s", diff)
	}
	if _, ok := a.Intersect(Rect{11, 11, 12, 12}); ok {
		t.Errorf("disjoint Intersect reported non-empty")
	}
}

func TestSegmentIntersectsRect(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	for _, test := range []struct {
		name string
		a, b Point
		want bool
	}{
		{"inside", Pt(12, 12), Pt(18, 18), true},
		{"one end inside", Pt(0, 0), Pt(15, 15), true},
		{"through", Pt(0, 15), Pt(30, 15), true},
		{"diagonal through", Pt(0, 0), Pt(30, 30), true},
		{"above", Pt(0, 25), Pt(30, 25), false},
		{"left vertical", Pt(5, 0), Pt(5, 30), false},
		{"misses corner", Pt(0, 15), Pt(15, 0), false},
		{"clips corner", Pt(0, 28), Pt(28, 0), true},
		{"along edge", Pt(0, 10), Pt(30, 10), true},
		{"short of rect", Pt(0, 15), Pt(9, 15), false},
		{"NaN", Pt(math.NaN(), 15), Pt(30, 15), false},
	} {
		if got := SegmentIntersectsRect(test.a, test.b, r); got != test.want {
			t.Errorf("%s: SegmentIntersectsRect(%v, %v) = %v, want %v", test.name, test.a, test.b, got, test.want)
		}
	}
}

func TestSorted(t *testing.T) {
	nan := math.NaN()
	for _, test := range []struct {
		xs   []float64
		want bool
	}{
		{nil, true},
		{[]float64{0, 0, 1}, true},
		{[]float64{1, 0}, false},
		{[]float64{0, 10, nan, 30}, false},
		{[]float64{nan}, false},
	} {
		if got := sorted(test.xs); got != test.want {
			t.Errorf("sorted(%v) = %v, want %v", test.xs, got, test.want)
		}
	}
}

func TestPolylineIntersectsRect(t *testing.T) {
	xs := []float64{0, 10, 20, 30, 40, 50}
	ys := []float64{0, 0, 0, 100, 100, 100}
	nan := math.NaN()
	for _, test := range []struct {
		name string
		xs   []float64
		ys   []float64
		r    Rect
		want bool
	}{
		{"flat part", xs, ys, Rect{5, -1, 15, 1}, true},
		{"above flat part", xs, ys, Rect{5, 10, 15, 20}, false},
		{"rising edge", xs, ys, Rect{24, 40, 26, 60}, true},
		{"beside rising edge", xs, ys, Rect{21, 60, 23, 80}, false},
		{"beyond data", xs, ys, Rect{60, 0, 70, 200}, false},
		{"unsorted", []float64{50, 0}, []float64{0, 100}, Rect{20, 50, 30, 70}, true},
		{"single point", []float64{5}, []float64{5}, Rect{0, 0, 10, 10}, true},
		{"NaN gap", []float64{0, 10, 20}, []float64{0, nan, 100}, Rect{8, 40, 12, 60}, false},
		{"isolated point", []float64{0, 10, 20}, []float64{nan, 50, nan}, Rect{8, 40, 12, 60}, true},
		{"empty", nil, nil, Rect{0, 0, 10, 10}, false},
		{"NaN x gap before", []float64{0, 10, nan, 30, 40}, []float64{50, 50, 50, 50, 50}, Rect{5, 40, 8, 60}, true},
		{"NaN x gap after", []float64{0, 10, nan, 30, 40}, []float64{50, 50, 50, 50, 50}, Rect{33, 40, 36, 60}, true},
		{"NaN x gap inside", []float64{0, 10, nan, 30, 40}, []float64{50, 50, 50, 50, 50}, Rect{15, 40, 25, 60}, false},
	} {
		if got := PolylineIntersectsRect(test.xs, test.ys, test.r); got != test.want {
			t.Errorf("%s: PolylineIntersectsRect(%v) = %v, want %v", test.name, test.r, got, test.want)
		}
	}
}
