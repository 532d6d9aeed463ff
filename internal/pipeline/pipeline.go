// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates a conversion run: scan the source directory,
// order the images, compose page cells, and merge the pages into one PDF.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/pdiddy/pagebind/internal/compose"
	"github.com/pdiddy/pagebind/internal/document"
	"github.com/pdiddy/pagebind/internal/scan"
	"github.com/pdiddy/pagebind/pkg/types"
)

// Progress is called after each composed image with the number of images
// done so far and the run total.
type Progress func(done, total int)

// Result summarizes one completed conversion run.
type Result struct {
	// Images is the number of source images composed.
	Images int

	// Pages is the page count of the output document.
	Pages int

	// Output is the path of the merged PDF, empty when no images were found.
	Output string

	// Deleted is the number of source images removed after the run.
	Deleted int
}

// Run executes one conversion over cfg.Directory, writing progress and
// warnings to w. The config is normalized first, so out-of-range values fall
// back to their defaults with a warning instead of aborting. A directory
// without recognized images reports on w and returns an empty Result with no
// error. A decode failure aborts the whole run before anything is written to
// the source directory; sources are deleted only after the merged output is
// fully on disk with its page count verified. Temporary page artifacts live
// in a run-scoped directory removed on every exit path. progress may be nil.
func Run(ctx context.Context, cfg types.BatchConfig, w io.Writer, progress Progress) (Result, error) {
	cfg = cfg.Normalize(w)

	files, err := scan.ListImages(cfg.Directory)
	if err != nil {
		return Result{}, err
	}
	if len(files) == 0 {
		fmt.Fprintf(w, "no image files found in %s\n", cfg.Directory)
		return Result{}, nil
	}
	scan.Order(files, cfg.SortByTime)

	cellHeight := compose.PageHeight / cfg.ImagesPerPage
	if cellHeight < 1 {
		cellHeight = 1
	}
	comp := compose.New(compose.PageWidth, cellHeight, cfg.Margin)

	tmpDir, err := os.MkdirTemp("", "pagebind-")
	if err != nil {
		return Result{}, fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	var (
		cells     []image.Image
		pagePaths []string
	)
	flush := func() error {
		page := compose.Page(cells, compose.PageWidth, compose.PageHeight, cellHeight)
		path := filepath.Join(tmpDir, fmt.Sprintf("page_%04d.pdf", len(pagePaths)+1))
		if err := document.WritePage(page, path); err != nil {
			return err
		}
		pagePaths = append(pagePaths, path)
		cells = cells[:0]
		return nil
	}

	labels := runLabels(cfg, len(files))
	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		img, err := imaging.Open(f.Path)
		if err != nil {
			return Result{}, fmt.Errorf("decoding %s: %w", f.Name, err)
		}
		cells = append(cells, comp.Render(img, labels[i]))
		if progress != nil {
			progress(i+1, len(files))
		}
		if len(cells) == cfg.ImagesPerPage || i == len(files)-1 {
			if err := flush(); err != nil {
				return Result{}, err
			}
		}
	}

	outPath := filepath.Join(cfg.Directory, cfg.Output)
	if err := document.Merge(pagePaths, outPath); err != nil {
		return Result{}, err
	}
	pages, err := document.PageCount(outPath)
	if err != nil {
		return Result{}, fmt.Errorf("verifying %s: %w", outPath, err)
	}
	if pages != len(pagePaths) {
		return Result{}, fmt.Errorf("verifying %s: found %d pages, want %d", outPath, pages, len(pagePaths))
	}

	result := Result{
		Images: len(files),
		Pages:  pages,
		Output: outPath,
	}
	fmt.Fprintf(w, "created %s (%d pages from %d images)\n", outPath, result.Pages, result.Images)

	if cfg.DeleteImages {
		for _, f := range files {
			if err := os.Remove(f.Path); err != nil {
				return result, fmt.Errorf("deleting source image %s: %w", f.Name, err)
			}
			result.Deleted++
		}
		fmt.Fprintf(w, "deleted %d source image(s)\n", result.Deleted)
	}
	return result, nil
}

// runLabels returns the label for each of n images in composition order, or
// empty labels when labeling is off. One counter spans the whole run; page
// grouping never resets it.
func runLabels(cfg types.BatchConfig, n int) []string {
	labels := make([]string, n)
	if !cfg.LabelImages {
		return labels
	}
	for i := range labels {
		labels[i] = fmt.Sprintf("%s %d", cfg.LabelPrefix, i+1)
	}
	return labels
}
