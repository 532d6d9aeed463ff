// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose renders source images onto fixed-size page cells and
// stacks cells into full page canvases.
package compose

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Page canvas size in pixels, A4 at 72 DPI.
const (
	PageWidth  = 595
	PageHeight = 842
)

const (
	// labelPad is the vertical padding added below the measured label text.
	labelPad = 5

	// fontScale sets the label font size as a fraction of the cell height,
	// floored to a whole point.
	fontScale = 0.02
)

// Compositor renders source images onto white cell canvases of a fixed size.
// Rendering is a pure transform on in-memory images.
type Compositor struct {
	width  int
	height int
	margin int
	face   font.Face
}

// New returns a Compositor for cells of the given size with a blank border
// of margin pixels around each image. The label face is resolved once per
// compositor at a size proportional to the cell height.
func New(width, height, margin int) *Compositor {
	size := math.Floor(float64(height) * fontScale)
	return &Compositor{
		width:  width,
		height: height,
		margin: margin,
		face:   labelFace(labelFontFile, size),
	}
}

// Render composes src onto a fresh white canvas of exactly the cell size.
// The source is flattened against white, scaled to fit the usable area
// preserving aspect ratio, centered horizontally, and placed below the label
// band. A non-empty label is drawn in black at (margin, margin). The canvas
// dimensions never depend on the source dimensions.
func (c *Compositor) Render(src image.Image, label string) *image.NRGBA {
	labelHeight := 0
	if label != "" {
		labelHeight = c.labelHeight(label)
	}

	b := src.Bounds()
	w, h := c.fit(b.Dx(), b.Dy(), c.width-2*c.margin, c.height-2*c.margin-labelHeight)
	scaled := imaging.Resize(flatten(src), w, h, imaging.Lanczos)

	canvas := imaging.New(c.width, c.height, color.White)
	if label != "" {
		c.drawLabel(canvas, label)
	}
	return imaging.Paste(canvas, scaled, image.Pt((c.width-w)/2, c.margin+labelHeight))
}

// fit computes the scaled dimensions for a source of srcW by srcH pixels.
// The constraining axis is chosen by comparing the source ratio against the
// full cell ratio; the scaled size comes from the usable box. Dimensions are
// clamped to at least one pixel so a degenerate usable box cannot produce an
// empty resize.
func (c *Compositor) fit(srcW, srcH, usableW, usableH int) (int, int) {
	imgRatio := float64(srcW) / float64(srcH)
	cellRatio := float64(c.width) / float64(c.height)

	var w, h int
	if imgRatio > cellRatio {
		w = usableW
		h = int(math.Round(float64(usableW) / imgRatio))
	} else {
		h = usableH
		w = int(math.Round(float64(usableH) * imgRatio))
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// flatten composites src over solid white before any scaling. Cells carry an
// opaque 3-channel color model; transparent source regions come out white.
func flatten(src image.Image) *image.NRGBA {
	b := src.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(bg, src, image.Pt(0, 0), 1.0)
}

// labelHeight measures the rendered label bounding box height plus padding.
func (c *Compositor) labelHeight(label string) int {
	bounds, _ := font.BoundString(c.face, label)
	return (bounds.Max.Y - bounds.Min.Y).Ceil() + labelPad
}

// drawLabel draws label text with its ascender line at the margin offset,
// matching a top-anchored text origin.
func (c *Compositor) drawLabel(canvas *image.NRGBA, label string) {
	d := font.Drawer{
		Dst:  canvas,
		Src:  image.Black,
		Face: c.face,
		Dot:  fixed.P(c.margin, c.margin+c.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(label)
}
