// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pagebind pipeline.
package types

import (
	"fmt"
	"io"
)

// Defaults applied by Normalize when a BatchConfig field is missing or out of range.
const (
	DefaultImagesPerPage = 1
	DefaultMargin        = 0
	DefaultLabelPrefix   = "Question"
	DefaultOutputName    = "combined_output.pdf"
)

// BatchConfig holds the settings for one directory-to-PDF conversion run.
type BatchConfig struct {
	// Directory is the source directory scanned for image files.
	Directory string `json:"directory" yaml:"directory"`

	// ImagesPerPage is the number of image cells stacked vertically on each
	// output page (default 1).
	ImagesPerPage int `json:"images_per_page" yaml:"images_per_page"`

	// DeleteImages removes the source image files after the merged PDF has
	// been written (default false).
	DeleteImages bool `json:"delete_images" yaml:"delete_images"`

	// Margin is the blank border around each image cell, in pixels (default 0).
	Margin int `json:"margin" yaml:"margin"`

	// LabelImages draws a sequential text label above each image (default false).
	LabelImages bool `json:"label_images" yaml:"label_images"`

	// LabelPrefix is the text placed before the sequence number in labels
	// (default "Question").
	LabelPrefix string `json:"label_prefix,omitempty" yaml:"label_prefix,omitempty"`

	// SortByTime orders images by file modification time instead of natural
	// filename order (default false).
	SortByTime bool `json:"sort_by_time" yaml:"sort_by_time"`

	// Output is the name of the merged PDF written into Directory
	// (default "combined_output.pdf").
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// Normalize returns a copy of the config with out-of-range values replaced by
// the documented defaults. Each replacement is reported as a warning on w.
// Invalid values never abort a run. Empty LabelPrefix and Output are filled
// silently since an unset field is not an error.
func (c BatchConfig) Normalize(w io.Writer) BatchConfig {
	if c.ImagesPerPage < 1 {
		fmt.Fprintf(w, "warning: invalid images_per_page %d, using default %d\n",
			c.ImagesPerPage, DefaultImagesPerPage)
		c.ImagesPerPage = DefaultImagesPerPage
	}
	if c.Margin < 0 {
		fmt.Fprintf(w, "warning: invalid margin %d, using default %d\n",
			c.Margin, DefaultMargin)
		c.Margin = DefaultMargin
	}
	if c.LabelPrefix == "" {
		c.LabelPrefix = DefaultLabelPrefix
	}
	if c.Output == "" {
		c.Output = DefaultOutputName
	}
	return c
}
