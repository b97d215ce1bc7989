package tableimage

import (
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// fonts that can draw Hangul, in preference order. dataset cells are
// frequently Korean so these are tried before degrading to the
// embedded latin face.
var koreanFontPaths = []string{
	"C:\\Windows\\Fonts\\malgun.ttf",
	"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
	"/usr/share/fonts/truetype/nanum/NanumGothicBold.ttf",
	"/usr/share/fonts/opentype/noto/NotoSansKR-Regular.otf",
	"/usr/share/fonts/truetype/noto/NotoSansKR-Regular.otf",
	"/Library/Fonts/NanumGothic.ttf",
}

// loadFace never fails: when no Korean-capable font exists on the host
// it returns the embedded face, which renders Hangul as boxes but keeps
// the pipeline going.
func loadFace(points float64) font.Face {
	for _, path := range koreanFontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		parsed, err := opentype.Parse(data)
		if err != nil {
			slog.Debug("skipping unparseable font", "path", path, "err", err)
			continue
		}
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    points,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			continue
		}
		return face
	}

	slog.Debug("no korean-capable font found, using the embedded face")
	return basicfont.Face7x13
}
