//go:build mage

package main

import (
	"fmt"
	"image/color"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// sampleDir is where Sample generates its demo images.
const sampleDir = "testdata/sample"

// Sample builds the CLI and binds a generated directory of numbered images
// into a labeled demo PDF, two images per page.
func Sample() error {
	if err := Build(); err != nil {
		return err
	}
	if err := os.MkdirAll(sampleDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", sampleDir, err)
	}
	for i := 1; i <= 5; i++ {
		img := imaging.New(320, 240, color.NRGBA{R: uint8(40 * i), G: 90, B: 200, A: 255})
		path := filepath.Join(sampleDir, fmt.Sprintf("scan%d.png", i))
		if err := imaging.Save(img, path); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	cmd := exec.Command(filepath.Join(binDir, binName), "convert", sampleDir,
		"--images-per-page", "2", "--label")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s convert: %w", binName, err)
	}
	return nil
}
