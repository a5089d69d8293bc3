// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textsize measures the pixel dimensions of rendered text.
//
// Sizes are measured with the Go Regular font face, which is what the
// figure renderer uses. If the face cannot be built, sizes fall back
// to a character-count estimate.
package textsize

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/text/width"
)

// DefaultDPI is the resolution assumed when a Computer has none.
const DefaultDPI = 100

// A Measurer returns the pixel width and height of text set at the
// given point size.
type Measurer interface {
	Dims(text string, points float64) (w, h float64)
}

// named maps the relative font size names to points, assuming a
// medium size of 10 points.
var named = map[string]float64{
	"xx-small": 5.79,
	"x-small":  6.94,
	"small":    8.33,
	"medium":   10,
	"large":    12,
	"x-large":  14.4,
	"xx-large": 17.28,
}

// Points converts a font size to points. size may be a number of
// points of any numeric type or a size name such as "small" or
// "x-large". Unrecognized sizes are medium.
func Points(size any) float64 {
	switch s := size.(type) {
	case float64:
		return s
	case float32:
		return float64(s)
	case int:
		return float64(s)
	case string:
		if p, ok := named[s]; ok {
			return p
		}
		var p float64
		if _, err := fmt.Sscanf(s, "%g", &p); err == nil && p > 0 {
			return p
		}
	}
	return named["medium"]
}

// Computer measures text for a figure of a particular resolution.
// The zero Computer uses DefaultDPI.
type Computer struct {
	DPI float64

	mu    sync.Mutex
	faces map[float64]font.Face
}

// New returns a Computer for the given resolution.
func New(dpi float64) *Computer {
	return &Computer{DPI: dpi}
}

func (c *Computer) dpi() float64 {
	if c == nil || c.DPI <= 0 {
		return DefaultDPI
	}
	return c.DPI
}

// Pixels returns the pixel size of a font of the given point size.
func (c *Computer) Pixels(points float64) float64 {
	return c.dpi() * points / 72
}

var parsed struct {
	once sync.Once
	font *opentype.Font
	err  error
}

func goRegular() (*opentype.Font, error) {
	parsed.once.Do(func() {
		parsed.font, parsed.err = opentype.Parse(goregular.TTF)
	})
	return parsed.font, parsed.err
}

// face returns the cached font face for a pixel size.
func (c *Computer) face(px float64) (font.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.faces[px]; ok {
		return f, nil
	}
	fnt, err := goRegular()
	if err != nil {
		return nil, err
	}
	// With DPI 72, Size is in pixels.
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("building %gpx face: %w", px, err)
	}
	if c.faces == nil {
		c.faces = make(map[float64]font.Face)
	}
	c.faces[px] = f
	return f, nil
}

// Dims returns the width and height in pixels of text set at the
// given point size. The width of multi-line text is that of its
// widest line.
func (c *Computer) Dims(text string, points float64) (w, h float64) {
	if c == nil {
		c = &Computer{}
	}
	px := c.Pixels(points)
	f, err := c.face(px)
	if err != nil {
		return c.Estimate(text, points)
	}
	m := f.Metrics()
	lineHeight := float64((m.Ascent + m.Descent).Ceil())
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		lw := float64(font.MeasureString(f, line).Ceil())
		w = math.Max(w, lw)
	}
	return w, lineHeight * float64(len(lines))
}

// Estimate returns a rough size of text without consulting the font.
// Each character is 0.4 of the pixel size wide, or twice that for
// East Asian wide characters, and each line is one pixel size high.
func (c *Computer) Estimate(text string, points float64) (w, h float64) {
	px := c.Pixels(points)
	n := 0
	for _, r := range text {
		if r == '\n' {
			continue
		}
		n++
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n++
		}
	}
	newlines := strings.Count(text, "\n")
	return 0.4 * px * float64(n), px * float64(1+newlines)
}

// PixelsToFraction converts pixel dimensions to fractions of the
// figure dimensions.
func PixelsToFraction(w, h, figW, figH float64) (fw, fh float64) {
	return w / figW, h / figH
}

// RuneCount returns the number of characters in the longest line of
// text.
func RuneCount(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if c := utf8.RuneCountInString(line); c > n {
			n = c
		}
	}
	return n
}
