// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command yampex-examples extracts the example plotting programs to
// a directory, ~/yampex-examples by default.
//
// Existing files are never overwritten, so the examples can be
// modified freely. Delete a modified file and run yampex-examples
// again to restore it.
package main

import (
	"embed"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kballard/go-shellquote"
)

//go:embed examples
var examples embed.FS

// exampleRe matches the base names of the files to extract.
var exampleRe = regexp.MustCompile(`^[a-z].+\.(go|txt|sh)$`)

func main() {
	log.SetPrefix("yampex-examples: ")
	log.SetFlags(0)

	flagDir := flag.String("d", "", "extract examples to `dir` (default ~/yampex-examples)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	dir := *flagDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal(err)
		}
		dir = filepath.Join(home, "yampex-examples")
	}

	fmt.Printf("Extracting examples to\n%s\n%s\n", dir, strings.Repeat("-", 79))
	if err := extract(os.Stdout, examples, dir); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nTo run them:\n  cd %s && ./run.sh\n", shellquote.Join(dir))
}

// extract copies the files under "examples" in src into dir,
// reporting to w what it does. It never overwrites a file.
func extract(w io.Writer, src fs.FS, dir string) error {
	switch err := os.Mkdir(dir, 0777); {
	case err == nil:
		fmt.Fprintln(w, "Subdirectory created")
	case os.IsExist(err):
		fmt.Fprintln(w, "Subdirectory already exists")
	default:
		return err
	}

	return fs.WalkDir(src, "examples", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !exampleRe.MatchString(path.Base(name)) {
			return nil
		}
		rel := strings.TrimPrefix(name, "examples/")
		dst := filepath.Join(dir, filepath.FromSlash(rel))
		if _, err := os.Stat(dst); err == nil {
			fmt.Fprintf(w, "%s already exists\n", dst)
			return nil
		}
		data, err := fs.ReadFile(src, name)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0777); err != nil {
			return err
		}
		perm := os.FileMode(0666)
		if path.Ext(name) == ".sh" {
			perm = 0777
		}
		if err := os.WriteFile(dst, data, perm); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s created\n", dst)
		return nil
	})
}
