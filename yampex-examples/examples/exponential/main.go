// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Exponential plots a*exp(-b*x) for several values of a and b.
//
// The top subplot covers the range of interest for x. The bottom one
// covers x from zero to double the top of that range on a log scale,
// with the range of interest marked by vertical lines. Each subplot
// has both a legend and an annotation where the curves are closest.
//
// Usage: exponential [out.svg]
package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/aclements/go-yampex/plot"
)

const (
	xMin, xMax = 5.0, 8.0
	points     = 100
)

var (
	as = []float64{0.25, 1.3, 17.0, 2.8e3, 4.0e5}
	bs = []float64{0.2, 0.5, 1.0, 2.0, 3.0}
)

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return xs
}

// leastVariance returns the index at which the values of ys vary
// least. If logspace is set, the variance is of their logarithms.
func leastVariance(ys [][]float64, logspace bool) int {
	best, bestVar := 0, math.Inf(1)
	for i := range ys[0] {
		var sum, sum2 float64
		for _, y := range ys {
			v := y[i]
			if logspace {
				v = math.Log(v)
			}
			sum += v
			sum2 += v * v
		}
		n := float64(len(ys))
		if v := sum2/n - (sum/n)*(sum/n); v < bestVar {
			best, bestVar = i, v
		}
	}
	return best
}

func subplot(sp *plot.Plotter, x []float64, semilog bool) error {
	args := []any{x}
	var ys [][]float64
	for i, a := range as {
		b := bs[i]
		y := make([]float64, len(x))
		for j, v := range x {
			y[j] = a * math.Exp(-b*v)
		}
		ys = append(ys, y)
		args = append(args, y)
		sp.AddLegend("a=%.2f, b=%.2f", a, b)
	}
	k := leastVariance(ys, semilog)
	sp.AddAnnotation(k, x[k])
	var err error
	if semilog {
		_, err = sp.Semilogy(args...)
	} else {
		_, err = sp.Plot(args...)
	}
	return err
}

func main() {
	log.SetPrefix("exponential: ")
	log.SetFlags(0)

	p := plot.New(2).Width(1400).Height(1200)
	if len(os.Args) > 1 {
		p.FilePath(os.Args[1])
	}
	p.UseGrid()
	p.SetTitle("Exponentials plotted from %.1f to %.1f", xMin, xMax)
	p.SetXLabel("X")
	p.SetYLabel("a*exp(-b*X)")

	err := p.Subplots(func(sp *plot.Plotter) error {
		if err := subplot(sp, linspace(xMin, xMax, points), false); err != nil {
			return fmt.Errorf("range of interest: %w", err)
		}
		sp.AddAxvline(xMin)
		sp.AddAxvline(xMax)
		return subplot(sp, linspace(0, 2*xMax, points), true)
	})
	if err == nil {
		err = p.Show()
	}
	if err != nil {
		log.Fatal(err)
	}
}
