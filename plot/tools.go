// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"sort"
)

// ClipOutliers clips the most negative and most positive values of x
// in place. An extreme value is clipped to ratio times the deviation
// of the next most extreme value from the median, and the next
// subplot of sp gets an annotation with the true value followed by
// suffix. If annEnd is set, the last value is annotated too.
//
// ClipOutliers returns x.
func ClipOutliers(sp *Plotter, x []float64, ratio float64, suffix string, annEnd bool) []float64 {
	if len(x) < 2 {
		return x
	}
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return x[idx[i]] < x[idx[j]] })
	med := median(x, idx)

	withSuffix := func(v float64) string {
		return fmt.Sprintf("%+.2f%s", v, suffix)
	}
	sign := -1.0
	for _, ks := range [][2]int{{idx[0], idx[1]}, {idx[len(idx)-1], idx[len(idx)-2]}} {
		most, next := x[ks[0]], x[ks[1]]
		devMost, devNext := sign*(most-med), sign*(next-med)
		if devMost > ratio*devNext {
			x[ks[0]] = med + sign*ratio*devNext
			sp.SetAxisExact("y")
			sp.AddAnnotation(ks[0], withSuffix(most))
		}
		sign = -sign
	}
	if annEnd {
		sp.AddAnnotation(len(x)-1, withSuffix(x[len(x)-1]))
	}
	return x
}

// median returns the median of x, given the indexes of x in sorted
// order.
func median(x []float64, sorted []int) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return x[sorted[n/2]]
	}
	return (x[sorted[n/2-1]] + x[sorted[n/2]]) / 2
}
