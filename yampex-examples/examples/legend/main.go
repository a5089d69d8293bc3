// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Legend plots sine waves of increasing frequency and amplitude in
// one subplot, with a legend telling them apart.
//
// Usage: legend [out.svg]
package main

import (
	"log"
	"math"
	"os"

	"github.com/aclements/go-yampex/plot"
)

// waves returns x from 0 to 4π and k*sin(k*x) for k from 1 to n.
func waves(n int) []any {
	const points = 200
	x := make([]float64, points)
	for i := range x {
		x[i] = 4 * math.Pi * float64(i) / (points - 1)
	}
	vs := []any{x}
	for k := 1; k <= n; k++ {
		y := make([]float64, points)
		for i, v := range x {
			y[i] = float64(k) * math.Sin(float64(k)*v)
		}
		vs = append(vs, y)
	}
	return vs
}

func main() {
	log.SetPrefix("legend: ")
	log.SetFlags(0)

	const n = 3
	p := plot.New(1).Width(800).Height(500)
	if len(os.Args) > 1 {
		p.FilePath(os.Args[1])
	}
	p.SetTitle("Sine Waves with %d frequency & amplitude multipliers", n)
	p.SetXLabel("X").UseGrid()
	err := p.Subplots(func(sp *plot.Plotter) error {
		for mult := 1; mult <= n; mult++ {
			sp.AddLegend("x%d", mult)
		}
		_, err := sp.Plot(waves(n)...)
		return err
	})
	if err == nil {
		err = p.Show()
	}
	if err != nil {
		log.Fatal(err)
	}
}
