// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
)

// Ticks are the tick marks of one axis, in data coordinates.
type Ticks struct {
	Major, Minor []float64
	Labels       []string // one per major tick
}

// Pixels per major tick when the count is chosen automatically.
const (
	xTickPixels = 80
	yTickPixels = 50
)

// Ticks returns the tick marks of an axis.
func (ax *Axes) Ticks(axis Axis) Ticks {
	o := ax.axes[axis]
	lo, hi := ax.Lim(axis)
	if lo > hi {
		lo, hi = hi, lo
	}

	max := o.maxTicks
	if max <= 0 {
		length, per := ax.box.Width(), float64(xTickPixels)
		if axis == Y {
			length, per = ax.box.Height(), yTickPixels
		}
		max = int(length / per)
		if max < 2 {
			max = 2
		}
	}

	var t Ticks
	switch {
	case o.log && lo > 0:
		t = logTicks(lo, hi, max)
	case o.spacing > 0:
		t = spacedTicks(lo, hi, o.spacing)
	default:
		t = linearTicks(lo, hi, max)
	}
	if !o.minor {
		t.Minor = nil
	}
	return t
}

func linearTicks(lo, hi float64, max int) Ticks {
	var t Ticks
	if lo == hi {
		t.Major = []float64{lo}
		t.Labels = []string{strconv.FormatFloat(lo, 'g', 6, 64)}
		return t
	}
	s := scale.Linear{Min: lo, Max: hi}
	major, minor := s.Ticks(scale.TickOptions{Max: max})
	t.Major = within(major, lo, hi)
	t.Minor = within(minor, lo, hi)
	t.Labels = tickLabels(t.Major)
	return t
}

func spacedTicks(lo, hi, spacing float64) Ticks {
	var t Ticks
	start := math.Ceil(lo/spacing - 1e-9)
	for i := start; i*spacing <= hi*(1+1e-12)+1e-12; i++ {
		t.Major = append(t.Major, i*spacing)
		if len(t.Major) > 1000 {
			break
		}
	}
	sub := spacing / 5
	for i := math.Ceil(lo / sub); i*sub <= hi; i++ {
		t.Minor = append(t.Minor, i*sub)
		if len(t.Minor) > 5000 {
			break
		}
	}
	t.Labels = tickLabels(t.Major)
	return t
}

// logTicks places major ticks at powers of ten. The decades are
// chosen with a linear scale over the exponents, restricted to whole
// exponents.
func logTicks(lo, hi float64, max int) Ticks {
	var t Ticks
	l0, l1 := math.Log10(lo), math.Log10(hi)
	if l0 == l1 {
		return linearTicks(lo, hi, max)
	}
	// Log10 of an exact power of ten may be off by an ulp.
	l0, l1 = l0-1e-9, l1+1e-9
	s := scale.Linear{Min: l0, Max: l1}
	exps, _ := s.Ticks(scale.TickOptions{Max: max, MinLevel: 0, MaxLevel: 100})
	for _, e := range within(exps, l0, l1) {
		t.Major = append(t.Major, math.Pow(10, math.Round(e)))
		t.Labels = append(t.Labels, logLabel(int(math.Round(e))))
	}
	for e := math.Floor(l0); e <= math.Ceil(l1); e++ {
		base := math.Pow(10, e)
		for m := 2.0; m < 10; m++ {
			if v := m * base; v >= lo && v <= hi {
				t.Minor = append(t.Minor, v)
			}
		}
	}
	if len(t.Major) < 2 {
		// Less than a decade. Fall back to linear ticks.
		lt := linearTicks(lo, hi, max)
		lt.Minor = t.Minor
		return lt
	}
	return t
}

func logLabel(e int) string {
	if e >= -3 && e <= 4 {
		return strconv.FormatFloat(math.Pow(10, float64(e)), 'f', -1, 64)
	}
	return fmt.Sprintf("1e%d", e)
}

func within(xs []float64, lo, hi float64) []float64 {
	eps := 1e-9 * (hi - lo)
	var out []float64
	for _, x := range xs {
		if x >= lo-eps && x <= hi+eps {
			out = append(out, x)
		}
	}
	return out
}

// tickLabels formats evenly spaced ticks with just enough decimal
// places to tell them apart.
func tickLabels(ticks []float64) []string {
	labels := make([]string, len(ticks))
	if len(ticks) == 0 {
		return labels
	}
	step := 0.0
	if len(ticks) > 1 {
		step = math.Abs(ticks[1] - ticks[0])
	}
	big := 0.0
	for _, x := range ticks {
		big = math.Max(big, math.Abs(x))
	}
	if step == 0 || big >= 1e6 || step < 1e-4 {
		for i, x := range ticks {
			labels[i] = strconv.FormatFloat(x, 'g', 4, 64)
		}
		return labels
	}
	prec := 0
	if step < 1 {
		prec = int(math.Ceil(-math.Log10(step) - 1e-9))
		// Steps like 0.25 need one more place.
		if r := step * math.Pow(10, float64(prec)); math.Abs(r-math.Round(r)) > 1e-6 {
			prec++
		}
	}
	for i, x := range ticks {
		if math.Abs(x) < step*1e-9 {
			x = 0
		}
		labels[i] = strconv.FormatFloat(x, 'f', prec, 64)
	}
	return labels
}
