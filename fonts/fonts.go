package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Hero    FontName = "hero"
	Heading FontName = "heading"
	Body    FontName = "body"
	Small   FontName = "small"
	Mono    FontName = "mono"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the font as an ebiten text face.
func (f FontName) Face() text.Face {
	getFont(f)
	return faces[f]
}

var (
	fonts = map[FontName]font.Face{}
	faces = map[FontName]text.Face{}
)

// LoadDefaults registers the built-in Go fonts under every FontName.
func LoadDefaults() {
	LoadFontWithSize(Hero, gobold.TTF, 64)
	LoadFontWithSize(Heading, gobold.TTF, 40)
	LoadFontWithSize(Body, goregular.TTF, 22)
	LoadFontWithSize(Small, goregular.TTF, 14)
	LoadFont(Mono, gomono.TTF)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 12)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse font %s: %v", name, err))
	}
	face := truetype.NewFace(fontData, &truetype.Options{Size: size})
	fonts[name] = face
	faces[name] = text.NewGoXFace(face)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
