// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vplot plots columns of numbers.
//
// vplot reads a vector file (see package vectors) and draws one
// subplot per spec argument. A spec is a shell-quoted list of vector
// names. The first name is the x vector and the rest are plotted
// against it:
//
//	vplot -i data.txt -o out.svg 't speed accel' 't "fuel level"'
//
// With no specs, every vector is plotted against the first one. The
// "title", "xlabel", and "ylabel" configuration lines of the input
// label the figure unless the style file sets them.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/aclements/go-yampex/plot"
	"github.com/aclements/go-yampex/vectors"
	"github.com/kballard/go-shellquote"
)

func main() {
	log.SetPrefix("vplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagIn         = flag.String("i", "-", "read vectors from `file`")
		flagOut        = flag.String("o", "", "write output to `file` (default: SVG on stdout)")
		flagWidth      = flag.Float64("width", 0, "figure width in `pixels`")
		flagHeight     = flag.Float64("height", 0, "figure height in `pixels`")
		flagStyle      = flag.String("style", "", "read plot style from YAML `file`")
		flagTable      = flag.Bool("table", false, "output a table instead of a plot")
		flagVerbose    = flag.Bool("v", false, "log layout decisions")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [spec...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	st, err := loadStyle(*flagStyle)
	if err != nil {
		log.Fatal(err)
	}
	if *flagWidth > 0 {
		st.Width = *flagWidth
	}
	if *flagHeight > 0 {
		st.Height = *flagHeight
	}
	st.Verbose = st.Verbose || *flagVerbose

	set, err := readVectors(*flagIn)
	if err != nil {
		log.Fatal(err)
	}

	if *flagTable {
		out := os.Stdout
		if *flagOut != "" {
			out, err = os.Create(*flagOut)
			if err != nil {
				log.Fatal(err)
			}
			defer out.Close()
		}
		if err := set.Fprint(out); err != nil {
			log.Fatal(err)
		}
		return
	}

	specs, err := parseSpecs(flag.Args(), set)
	if err != nil {
		log.Print(err)
		flag.Usage()
		os.Exit(2)
	}

	p, err := makePlot(set, specs, st)
	if err != nil {
		log.Fatal(err)
	}
	if *flagOut == "" {
		err = p.WriteSVG(os.Stdout)
	} else {
		err = p.Save(*flagOut)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func readVectors(path string) (*vectors.Set, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	set, err := vectors.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// parseSpecs splits each spec into vector names and checks that they
// exist in set.
func parseSpecs(args []string, set *vectors.Set) ([][]string, error) {
	if len(args) == 0 {
		names := set.Names()
		if len(names) == 0 {
			return nil, fmt.Errorf("no vectors to plot")
		}
		return [][]string{names}, nil
	}
	var specs [][]string
	for _, arg := range args {
		names, err := shellquote.Split(arg)
		if err != nil {
			return nil, fmt.Errorf("bad spec %q: %w", arg, err)
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("empty spec")
		}
		for _, name := range names {
			if _, ok := set.Get(name); !ok {
				return nil, fmt.Errorf("spec %q: unknown vector %q", arg, name)
			}
		}
		specs = append(specs, names)
	}
	return specs, nil
}

// makePlot plots each spec in its own subplot.
func makePlot(set *vectors.Set, specs [][]string, st style) (*plot.Plotter, error) {
	p := plot.New(len(specs)).Width(st.Width).Height(st.Height).DPI(st.DPI).Use(set)
	st.apply(p, set.Config)
	err := p.Subplots(func(sp *plot.Plotter) error {
		for _, names := range specs {
			args := make([]any, len(names))
			for i, name := range names {
				args[i] = name
			}
			if _, err := sp.Plot(args...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
