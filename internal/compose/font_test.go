// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLabelFaceMissingFile(t *testing.T) {
	face := labelFace(filepath.Join(t.TempDir(), "nope.ttf"), 12)
	if face == nil {
		t.Fatal("labelFace returned nil")
	}
	if face == basicfont.Face7x13 {
		t.Error("missing file should fall back to the embedded face, not the bitmap face")
	}
}

func TestLabelFaceGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	face := labelFace(path, 12)
	if face == nil {
		t.Fatal("labelFace returned nil")
	}
	if face == basicfont.Face7x13 {
		t.Error("unparsable file should fall back to the embedded face, not the bitmap face")
	}
}

func TestLabelFaceOnDiskFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	if face := labelFace(path, 14); face == nil {
		t.Fatal("labelFace returned nil for a valid font file")
	}
}

func TestLabelFaceTinySize(t *testing.T) {
	face := labelFace("irrelevant.ttf", 0.5)
	if face != basicfont.Face7x13 {
		t.Errorf("labelFace = %T, want the bitmap face for sub-point sizes", face)
	}
}
