// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Page stacks cell canvases top to bottom onto a white page canvas of the
// given size. Cells are placed at successive multiples of cellHeight in
// slice order; a partial group leaves the remainder of the page white.
func Page(cells []image.Image, width, height, cellHeight int) *image.NRGBA {
	page := imaging.New(width, height, color.White)
	for i, cell := range cells {
		page = imaging.Paste(page, cell, image.Pt(0, i*cellHeight))
	}
	return page
}
