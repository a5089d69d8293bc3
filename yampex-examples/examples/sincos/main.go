// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Sincos plots a sine and a cosine in two subplots, with annotations
// at their zero crossings and extremes.
//
// Usage: sincos [out.svg]
package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/aclements/go-yampex/plot"
)

func main() {
	log.SetPrefix("sincos: ")
	log.SetFlags(0)

	const n = 200
	x := make([]float64, n)
	for i := range x {
		x[i] = 4 * math.Pi * float64(i) / (n - 1)
	}

	p := plot.New(2).Width(700).Height(500)
	if len(os.Args) > 1 {
		p.FilePath(os.Args[1])
	}
	p.SetTitle("Sine and Cosine")
	p.SetXLabel("X").UseGrid()
	p.AddAnnotation(-1, "Last")

	funcs := []struct {
		name string
		f    func(float64) float64
	}{
		{"sin", math.Sin},
		{"cos", math.Cos},
	}
	err := p.Subplots(func(sp *plot.Plotter) error {
		for _, fn := range funcs {
			y := make([]float64, n)
			for i, v := range x {
				y[i] = fn.f(v)
			}
			if fn.name == "sin" {
				sp.AddLine(":", 2)
			}
			sp.SetYLabel("%s(X)", fn.name)
			k := 0
			if fn.name == "cos" {
				k = 75
			}
			for _, text := range []string{"Pos ZC", "Max", "Neg ZC", "Min"} {
				sp.AddAnnotation(k, text)
				k += 25
			}
			// The second positive-going zero crossing.
			sp.AddAxvline(k)
			if _, err := sp.Plot(x, y); err != nil {
				return fmt.Errorf("%s: %w", fn.name, err)
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
