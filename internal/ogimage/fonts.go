package ogimage

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// The Go fonts ship inside the binary so rendering never depends on the
// host's font setup and stays byte-for-byte reproducible.
var (
	regularFont = mustParseFont(goregular.TTF)
	boldFont    = mustParseFont(gobold.TTF)
)

func mustParseFont(ttf []byte) *opentype.Font {
	f, err := opentype.Parse(ttf)
	if err != nil {
		panic("ogimage: failed to parse embedded font: " + err.Error())
	}
	return f
}

func regularFace(size float64) font.Face {
	return mustFace(regularFont, size)
}

func boldFace(size float64) font.Face {
	return mustFace(boldFont, size)
}

func mustFace(f *opentype.Font, size float64) font.Face {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic("ogimage: failed to build font face: " + err.Error())
	}
	return face
}
