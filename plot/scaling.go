// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "math"

// Scaler picks a multiplier that brings a vector to about the same
// size as a reference vector without crossing over it much.
// Multipliers go 1000, 500, 200, 100, 50, 20, 10, 5, 2, 1, 0.5, ...
// down to 0.0001.
type Scaler struct {
	x       []float64
	xmax    float64
	ssx     float64
	maxOver float64
}

var scalerMantissas = []float64{10, 5, 2, 1}

const (
	scalerInitialExponent  = 2
	scalerMinExponent      = -4
	maxCrossoverFraction   = 0.4
	smallCrossover         = 20
	crossoverEndsTolerance = 8
)

// NewScaler returns a Scaler relative to the reference vector x.
func NewScaler(x []float64) *Scaler {
	s := &Scaler{x: x, xmax: math.Inf(-1)}
	for _, v := range x {
		s.xmax = math.Max(s.xmax, v)
		s.ssx += v * v
	}
	s.ssx *= 0.9
	s.maxOver = maxCrossoverFraction * float64(len(x))
	return s
}

// Scale returns the multiplier for y, or 1 if none is suitable. y
// must be no longer than the reference vector.
func (s *Scaler) Scale(y []float64) float64 {
	for exp := scalerInitialExponent; exp >= scalerMinExponent; exp-- {
		for _, m := range scalerMantissas {
			mult := m * math.Pow(10, float64(exp))
			if s.fits(y, mult) {
				return mult
			}
		}
	}
	return 1
}

func (s *Scaler) fits(y []float64, mult float64) bool {
	ymax, ss := math.Inf(-1), 0.0
	for _, v := range y {
		v *= mult
		ymax = math.Max(ymax, v)
		ss += v * v
	}
	// The scaled vector must be smaller than the reference by
	// both its peak and its sum of squares.
	if ymax > s.xmax || ss > s.ssx {
		return false
	}
	var over []int
	for i, v := range y {
		if i < len(s.x) && v*mult > s.x[i] {
			over = append(over, i)
		}
	}
	if len(over) == 0 {
		return true
	}
	if float64(len(over)) > s.maxOver {
		return false
	}
	if len(over) < smallCrossover {
		return true
	}
	// One crossover region is fine, ignoring noise at its ends.
	over = over[crossoverEndsTolerance : len(over)-crossoverEndsTolerance]
	for i := 1; i < len(over); i++ {
		if over[i]-over[i-1] != 1 {
			return false
		}
	}
	return true
}
