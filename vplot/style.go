// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-yampex/plot"
	"gopkg.in/yaml.v3"
)

// style is the look of a plot. A style file sets any of these
// fields, and the rest keep their defaults.
type style struct {
	Width  float64 `yaml:"width"`  // Figure width in pixels
	Height float64 `yaml:"height"` // Figure height in pixels
	DPI    float64 `yaml:"dpi"`    // Resolution for font sizes

	Title  string `yaml:"title"`
	XLabel string `yaml:"xlabel"`
	YLabel string `yaml:"ylabel"`

	Grid    bool     `yaml:"grid"`
	Legend  bool     `yaml:"legend"` // Label lines with their vector names
	Labels  bool     `yaml:"labels"` // Label lines with annotations instead of a legend box
	TimeX   bool     `yaml:"timex"`  // The x vector is in seconds
	Colors  []string `yaml:"colors"`
	Markers []string `yaml:"markers"`

	// AnnotationsFont is the annotation font size, in points or
	// as a size name such as "small".
	AnnotationsFont any `yaml:"annotations-font"`

	Verbose bool `yaml:"verbose"`
}

func defaultStyle() style {
	return style{
		Width:  1000,
		Height: 700,
		DPI:    100,
		Legend: true,
	}
}

// loadStyle returns the default style overlaid with the style file at
// path, if any.
func loadStyle(path string) (style, error) {
	st := defaultStyle()
	if path == "" {
		return st, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return st, fmt.Errorf("error reading style file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&st); err != nil && !errors.Is(err, io.EOF) {
		return st, fmt.Errorf("error parsing style file %s: %w", path, err)
	}
	return st, nil
}

// apply sets the options of p from st. Labels missing from st come
// from the input's configuration lines.
func (st style) apply(p *plot.Plotter, config map[string]string) {
	or := func(s, key string) string {
		if s != "" {
			return s
		}
		return config[key]
	}
	if t := or(st.Title, "title"); t != "" {
		p.SetTitle("%s", t)
	}
	if l := or(st.XLabel, "xlabel"); l != "" {
		p.SetXLabel("%s", l)
	}
	if l := or(st.YLabel, "ylabel"); l != "" {
		p.SetYLabel("%s", l)
	}
	if st.Grid {
		p.UseGrid()
	}
	if st.Legend {
		p.UseAutoLegend()
	}
	if st.Labels {
		p.UseLabels()
	}
	if st.TimeX {
		p.SetTimeX()
	}
	if len(st.Colors) > 0 {
		p.SetColors(st.Colors...)
	}
	for _, m := range st.Markers {
		p.AddMarker(m, 0)
	}
	if st.AnnotationsFont != nil {
		p.SetFontsize("annotations", st.AnnotationsFont)
	}
	if st.Verbose {
		p.Verbose()
	}
}
