// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-yampex/figure"
	"github.com/aclements/go-yampex/vectors"
	"github.com/google/go-cmp/cmp"
)

const testData = `title: Trip
xlabel: Seconds
# t speed fuel
0 0 10
1 5 9
2 9 7
3 12 4
`

func testSet(t *testing.T) *vectors.Set {
	t.Helper()
	set, err := vectors.Parse(strings.NewReader(testData))
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func TestParseSpecs(t *testing.T) {
	set := testSet(t)
	for _, test := range []struct {
		args []string
		want [][]string
		err  string
	}{
		{nil, [][]string{{"t", "speed", "fuel"}}, ""},
		{[]string{"t speed", `t "fuel`}, nil, "bad spec"},
		{[]string{"t speed", "'t' fuel"}, [][]string{{"t", "speed"}, {"t", "fuel"}}, ""},
		{[]string{"t nope"}, nil, `unknown vector "nope"`},
		{[]string{"  "}, nil, "empty spec"},
	} {
		got, err := parseSpecs(test.args, set)
		if test.err != "" {
			if err == nil || !strings.Contains(err.Error(), test.err) {
				t.Errorf("parseSpecs(%q): got error %v, want %q", test.args, err, test.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSpecs(%q): %v", test.args, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("parseSpecs(%q): (-want +got):\n%s", test.args, diff)
		}
	}
}

func TestLoadStyle(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0666); err != nil {
			t.Fatal(err)
		}
		return path
	}

	st, err := loadStyle(write("style.yaml", "width: 640\ngrid: true\ncolors: [r, \"#00f\"]\nannotations-font: 9\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := defaultStyle()
	want.Width = 640
	want.Grid = true
	want.Colors = []string{"r", "#00f"}
	want.AnnotationsFont = 9
	if diff := cmp.Diff(want, st); diff != "" {
		t.Errorf("style (-want +got):\n%s", diff)
	}

	if st, err := loadStyle(write("empty.yaml", "")); err != nil || st.Width != 1000 {
		t.Errorf("empty style file: got %+v, %v; want defaults", st, err)
	}
	if _, err := loadStyle(write("typo.yaml", "widht: 3\n")); err == nil {
		t.Errorf("unknown style field: want error")
	}
	if _, err := loadStyle(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("missing style file: want error")
	}
}

func TestMakePlot(t *testing.T) {
	set := testSet(t)
	st := defaultStyle()
	st.Width, st.Height = 600, 400
	p, err := makePlot(set, [][]string{{"t", "speed"}, {"t", "fuel"}}, st)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := p.WriteSVG(&buf); err != nil {
		t.Fatal(err)
	}
	fig := p.Figure()
	if fig.Width != 600 || fig.Height != 400 {
		t.Errorf("figure is %gx%g, want 600x400", fig.Width, fig.Height)
	}
	if st := fig.Suptitle(); st == nil || st.Text != "Trip" {
		t.Errorf("title %+v, want Trip from the input", st)
	}
	axes := fig.Axes()
	if len(axes) != 2 {
		t.Fatalf("got %d subplots, want 2", len(axes))
	}
	if l, _ := axes[1].Label(figure.X); l != "Seconds" {
		t.Errorf("bottom x label %q, want Seconds", l)
	}
	if got := axes[0].Lines()[0].Style.Label; got != "speed" {
		t.Errorf("legend entry %q, want speed", got)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("output is not SVG")
	}
}
