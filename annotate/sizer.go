// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotate

import "github.com/aclements/go-yampex/figure"

// Sizer caches the pixel size of annotation boxes by text.
//
// A measured height below bogusHeight is treated as a bad
// measurement and retried, up to maxTries times. A size is only
// cached if it is larger in area than the size already cached for
// that text, and once a text has a good size it is not measured
// again.
type Sizer struct {
	// Measure returns the size of an annotation's box. It
	// defaults to the size of the annotation's TextBox.
	Measure func(a *figure.Annotation) (w, h float64)

	dims  map[string][2]float64
	legit map[string]bool
}

const (
	maxTries    = 3
	bogusHeight = 5 // pixels
)

// NewSizer returns a Sizer that measures annotations' text boxes.
func NewSizer() *Sizer {
	return &Sizer{
		dims:  make(map[string][2]float64),
		legit: make(map[string]bool),
	}
}

func (s *Sizer) measure(a *figure.Annotation) (w, h float64) {
	if s.Measure != nil {
		return s.Measure(a)
	}
	b := a.TextBox()
	return b.Width(), b.Height()
}

// Size returns the width and height in pixels of a's box.
func (s *Sizer) Size(a *figure.Annotation) (w, h float64) {
	if s.legit[a.Text] {
		d := s.dims[a.Text]
		return d[0], d[1]
	}
	for try := 0; ; try++ {
		w, h = s.measure(a)
		if h >= bogusHeight || try >= maxTries {
			break
		}
	}
	prev := s.dims[a.Text]
	if w*h > prev[0]*prev[1] {
		s.dims[a.Text] = [2]float64{w, h}
		s.legit[a.Text] = true
	}
	d := s.dims[a.Text]
	return d[0], d[1]
}
