// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chromedp/chromedp"
)

// WritePNG renders f as a PNG image to w. It rasterizes the SVG
// rendering in a headless Chrome, which must be installed.
func (f *Figure) WritePNG(ctx context.Context, w io.Writer) error {
	img, err := f.screenshot(ctx)
	if err != nil {
		return err
	}
	_, err = w.Write(img)
	return err
}

// WriteJPEG is like WritePNG, but writes a JPEG image.
func (f *Figure) WriteJPEG(ctx context.Context, w io.Writer) error {
	img, err := f.screenshot(ctx)
	if err != nil {
		return err
	}
	m, err := png.Decode(bytes.NewReader(img))
	if err != nil {
		return fmt.Errorf("decoding screenshot: %w", err)
	}
	return jpeg.Encode(w, m, &jpeg.Options{Quality: 90})
}

func (f *Figure) screenshot(ctx context.Context) ([]byte, error) {
	var svgBuf bytes.Buffer
	if err := f.WriteSVG(&svgBuf); err != nil {
		return nil, err
	}
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svgBuf.Bytes())

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.WindowSize(int(f.Width)+16, int(f.Height)+16),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	cctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var img []byte
	err := chromedp.Run(cctx,
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &img, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("rasterizing figure: %w", err)
	}
	if len(img) == 0 {
		return nil, fmt.Errorf("rasterizing figure: empty screenshot")
	}
	return img, nil
}

// Format returns the image format for a file name, based on its
// extension: "svg", "png", or "jpeg".
func Format(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		return "svg", nil
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	default:
		return "", fmt.Errorf("unknown image format %q", ext)
	}
}

// Write renders f in the named format to w.
func (f *Figure) Write(ctx context.Context, w io.Writer, format string) error {
	switch format {
	case "svg":
		return f.WriteSVG(w)
	case "png":
		return f.WritePNG(ctx, w)
	case "jpeg":
		return f.WriteJPEG(ctx, w)
	}
	return fmt.Errorf("unknown image format %q", format)
}

// Save renders f to the file at path, in the format given by the
// file's extension.
func (f *Figure) Save(ctx context.Context, path string) error {
	format, err := Format(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := f.Write(ctx, &buf, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("saving figure: %w", err)
	}
	return nil
}
