// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan lists the image files of a source directory and orders them
// for compositing.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// imageExtensions is the recognized set of image file extensions, lowercase
// with leading dot.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
	".tiff": true,
}

// ImageFile is one image found in the source directory. Immutable once
// listed; ordering is the only property derived from it.
type ImageFile struct {
	// Path is the location of the file on disk.
	Path string

	// Name is the base name, used for natural ordering.
	Name string

	// Key is the natural sort key derived from Name.
	Key Key

	// ModTime is the file modification time, used for time ordering.
	ModTime time.Time
}

// ListImages returns the image files directly inside dir. Subdirectories and
// files without a recognized extension are ignored; extension matching is
// case-insensitive. The returned slice follows directory listing order; call
// Order to sort it for compositing.
func ListImages(dir string) ([]ImageFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("invalid directory %s: not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []ImageFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		files = append(files, ImageFile{
			Path:    filepath.Join(dir, entry.Name()),
			Name:    entry.Name(),
			Key:     NaturalKey(entry.Name()),
			ModTime: fi.ModTime(),
		})
	}
	return files, nil
}

// Order sorts files in place into compositing order: by modification time
// ascending when byTime is set, otherwise by natural sort key on the file
// name with equal keys broken by plain name comparison.
func Order(files []ImageFile, byTime bool) {
	if byTime {
		sort.SliceStable(files, func(i, j int) bool {
			return files[i].ModTime.Before(files[j].ModTime)
		})
		return
	}
	sort.SliceStable(files, func(i, j int) bool {
		if c := files[i].Key.Compare(files[j].Key); c != 0 {
			return c < 0
		}
		return files[i].Name < files[j].Name
	})
}
