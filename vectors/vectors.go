// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vectors reads named numeric vectors from column-oriented
// text files.
//
// A file consists of configuration lines, an optional header line,
// and rows of whitespace-separated numbers, one column per vector.
// Configuration lines have the same form as in Go benchmark result
// files:
//
//	title: Response time
//	xlabel: Seconds
//
// The header names the columns. It is either a line starting with
// "#" before the first row, or a first row that is not all numbers.
// Unnamed columns are called c1, c2, and so on. Other lines starting
// with "#" are comments.
package vectors

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Set is a parsed vector file.
type Set struct {
	// Config is the configuration lines of the file, by key.
	Config map[string]string

	// Table has one float64 column per vector.
	Table *table.Table
}

var configRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// Parse reads a vector file from r.
func Parse(r io.Reader) (*Set, error) {
	config := make(map[string]string)
	var header []string
	var cols [][]float64
	haveHeader, haveRows := false, false

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// Configuration lines.
		if m := configRe.FindStringSubmatch(line); m != nil {
			config[m[1]] = m[2]
			continue
		}

		// Header and comment lines.
		if strings.HasPrefix(line, "#") {
			if !haveHeader && !haveRows {
				header = strings.Fields(line[1:])
				haveHeader = true
			}
			continue
		}

		f := strings.Fields(line)
		row, err := parseRow(f)
		if err != nil {
			if !haveHeader && !haveRows {
				header = f
				haveHeader = true
				continue
			}
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		if !haveRows {
			n := len(row)
			if haveHeader && len(header) > n {
				n = len(header)
			}
			cols = make([][]float64, n)
			haveRows = true
		}
		if len(row) != len(cols) {
			return nil, fmt.Errorf("line %d: have %d values, want %d", lineno, len(row), len(cols))
		}
		for i, v := range row {
			cols[i] = append(cols[i], v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	names, err := columnNames(header, len(cols))
	if err != nil {
		return nil, err
	}
	b := new(table.Builder)
	for i, name := range names {
		b.Add(name, cols[i])
	}
	return &Set{Config: config, Table: b.Done()}, nil
}

func parseRow(f []string) ([]float64, error) {
	row := make([]float64, len(f))
	for i, s := range f {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q", s)
		}
		row[i] = v
	}
	return row, nil
}

// columnNames names n columns from header, filling in missing names.
func columnNames(header []string, n int) ([]string, error) {
	names := make([]string, n)
	seen := make(map[string]bool)
	for i := range names {
		if i < len(header) {
			names[i] = header[i]
		} else {
			names[i] = fmt.Sprintf("c%d", i+1)
		}
		if seen[names[i]] {
			return nil, fmt.Errorf("duplicate column name %q", names[i])
		}
		seen[names[i]] = true
	}
	return names, nil
}

// Names returns the vector names in column order.
func (s *Set) Names() []string {
	return s.Table.Columns()
}

// Len returns the length of every vector.
func (s *Set) Len() int {
	return s.Table.Len()
}

// Get returns the vector called name.
func (s *Set) Get(name string) ([]float64, bool) {
	col := s.Table.Column(name)
	if col == nil {
		return nil, false
	}
	var xs []float64
	slice.Convert(&xs, col)
	return xs, true
}

// Fprint writes the vectors to w as an aligned table.
func (s *Set) Fprint(w io.Writer) error {
	return table.Fprint(w, s.Table)
}
