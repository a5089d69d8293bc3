// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Annotate-simple annotates the three points of a straight line and
// logs how the annotations were placed.
//
// Usage: annotate-simple [out.svg]
package main

import (
	"log"
	"os"

	"github.com/aclements/go-yampex/plot"
)

func main() {
	log.SetPrefix("annotate-simple: ")
	log.SetFlags(0)

	p := plot.New(1).Width(500).Height(500).Verbose()
	if len(os.Args) > 1 {
		p.FilePath(os.Args[1])
	}
	err := p.Subplots(func(sp *plot.Plotter) error {
		sp.UseGrid()
		sp.AddAnnotation(0, "Lower")
		sp.AddAnnotation(1, "Midway Point")
		sp.AddAnnotation(2, "Upper")
		_, err := sp.Plot([]float64{-1, 0, 1}, []float64{-1, 0, 1})
		return err
	})
	if err == nil {
		err = p.Show()
	}
	if err != nil {
		log.Fatal(err)
	}
}
