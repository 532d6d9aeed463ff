// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document serializes composed page canvases as PDF files and merges
// them into the final output document.
package document

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// jpegQuality is the encode quality for page rasters embedded in the PDF.
const jpegQuality = 95

// WritePage serializes one composed page canvas as a single-page PDF at
// path. The PDF page matches the canvas pixel dimensions in points, with the
// raster embedded full bleed as an RGB JPEG.
func WritePage(page image.Image, path string) error {
	var raster bytes.Buffer
	if err := imaging.Encode(&raster, page, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("encoding page raster: %w", err)
	}

	b := page.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})

	opts := fpdf.ImageOptions{ReadDpi: false, ImageType: "JPEG"}
	pdf.RegisterImageOptionsReader("page", opts, &raster)
	pdf.ImageOptions("page", 0, 0, w, h, false, opts, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing page pdf: %w", err)
	}
	return nil
}

// Merge combines single-page PDFs into one document at outPath, preserving
// the order of pagePaths. An existing file at outPath is overwritten.
func Merge(pagePaths []string, outPath string) error {
	conf := model.NewDefaultConfiguration()
	if err := pdfapi.MergeCreateFile(pagePaths, outPath, false, conf); err != nil {
		return fmt.Errorf("merging %d page files: %w", len(pagePaths), err)
	}
	return nil
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	n, err := pdfapi.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("counting pages in %s: %w", path, err)
	}
	return n, nil
}
