// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Timex plots a pair of amplitude-modulated waveforms at six time
// scales. Each subplot picks its own time unit.
//
// Usage: timex [out.svg]
package main

import (
	"log"
	"math"
	"os"

	"github.com/aclements/go-yampex/plot"
)

var eqs = []string{"sin(10*t)*sin(10000*t)", "cos(10*t)*cos(10000*t)"}

func main() {
	log.SetPrefix("timex: ")
	log.SetFlags(0)

	const n, points = 6, 1000
	p := plot.New(n).Width(1600).Height(1200)
	if len(os.Args) > 1 {
		p.FilePath(os.Args[1])
	}
	p.SetTitle("With %d time scales: %s, %s", n, eqs[0], eqs[1])
	p.SetTimeX().UseGrid()
	for _, eq := range eqs {
		p.AddLegend("%s", eq)
	}
	err := p.Subplots(func(sp *plot.Plotter) error {
		for mult := 0; mult < n; mult++ {
			scale := math.Pow(10, float64(mult))
			x := make([]float64, points)
			y1 := make([]float64, points)
			y2 := make([]float64, points)
			neg := false
			for i := range x {
				x[i] = 2e-6 * scale * float64(i) / (points - 1)
				y1[i] = math.Sin(10*x[i]) * math.Sin(10000*x[i])
				y2[i] = math.Cos(10*x[i]) * math.Cos(10000*x[i])
				neg = neg || y2[i] < 0
			}
			sp.SetTitle("0 - %.5g seconds", x[points-1])
			if mult < 5 && neg {
				sp.AddYAnnotation(0, "Zero Crossing", 1)
			}
			if _, err := sp.Plot(x, y1, y2); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		err = p.Show()
	}
	if err != nil {
		log.Fatal(err)
	}
}
