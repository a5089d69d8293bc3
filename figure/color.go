// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// shortColors are the single-letter color codes.
var shortColors = map[string]color.RGBA{
	"b": {0, 0, 255, 255},
	"g": {0, 128, 0, 255},
	"r": {255, 0, 0, 255},
	"c": {0, 192, 192, 255},
	"m": {192, 0, 192, 255},
	"y": {192, 192, 0, 255},
	"k": {0, 0, 0, 255},
	"w": {255, 255, 255, 255},
}

var namedColors = map[string]color.RGBA{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 128, 0, 255},
	"blue":    {0, 0, 255, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"orange":  {255, 165, 0, 255},
	"purple":  {128, 0, 128, 255},
	"brown":   {165, 42, 42, 255},
	"maroon":  {128, 0, 0, 255},
	"none":    {},
}

// ParseColor parses a color given as a single-letter code ("b",
// "k"), a name ("red"), or a hex string ("#40C0C0" or "#4cc").
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := shortColors[s]; ok {
		return c, nil
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			v, err := strconv.ParseUint(hex, 16, 32)
			if err == nil {
				return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
			}
		}
	}
	return color.RGBA{}, fmt.Errorf("bad color %q", s)
}

// ColorString formats c as a hex color string that ParseColor
// accepts.
func ColorString(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// cssPaint returns a CSS fragment setting property prop to the color
// named by s with the given opacity. Unparseable colors fall back to
// black.
func cssPaint(prop, s string, alpha float64) string {
	c, err := ParseColor(s)
	if err != nil {
		c = color.RGBA{0, 0, 0, 255}
	}
	if c.A == 0 {
		return prop + ":none"
	}
	r, g, b := c.R, c.G, c.B

	css := prop
	if r>>4 == r&0xF && g>>4 == g&0xF && b>>4 == b&0xF {
		css += fmt.Sprintf(":#%x%x%x", r>>4, g>>4, b>>4)
	} else {
		css += fmt.Sprintf(":#%02x%02x%02x", r, g, b)
	}
	if alpha > 0 && alpha < 1 {
		// SVG 1.1 has no rgba, so opacity is a separate property.
		css += ";" + prop + "-opacity:" + strconv.FormatFloat(alpha, 'g', 3, 64)
	}
	return css
}
