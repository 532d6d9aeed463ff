// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// labelFontFile is the preferred TrueType font for labels, looked up as a
// local file like any other resource.
const labelFontFile = "arial.ttf"

// labelFace resolves the font capability for label text at size points.
// Resolution is deterministic and never fails: the preferred TrueType file
// when readable and parsable, else the embedded Go Regular face, else the
// fixed 7x13 bitmap face. Sizes below one point resolve straight to the
// bitmap face.
func labelFace(path string, size float64) font.Face {
	if size < 1 {
		return basicfont.Face7x13
	}
	if data, err := os.ReadFile(path); err == nil {
		if face, err := parseFace(data, size); err == nil {
			return face
		}
	}
	if face, err := parseFace(goregular.TTF, size); err == nil {
		return face
	}
	return basicfont.Face7x13
}

func parseFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
