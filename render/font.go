package render

import (
	"github.com/spf13/afero"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FontKind откуда берутся шрифты для картинки
type FontKind int

const (
	FontLoaded   FontKind = iota //TrueType/OpenType файл
	FontFallback                 //Встроенный растровый 7x13
)

func (k FontKind) String() string {
	if k == FontLoaded {
		return "loaded"
	}
	return "fallback"
}

// Размеры в пикселях: заголовок, шапка и время, текст предметов
const (
	titleSize   = 24
	bodySize    = 18
	captionSize = 14
)

// FontSource результат загрузки шрифта. Ошибка только объясняет, почему Kind == FontFallback.
type FontSource struct {
	Kind FontKind
	Path string
	Err  error
	font *opentype.Font
}

// LoadFontSource никогда не падает: любой сбой - встроенный шрифт
func LoadFontSource(fs afero.Fs, path string) FontSource {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return FontSource{Kind: FontFallback, Path: path, Err: err}
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return FontSource{Kind: FontFallback, Path: path, Err: err}
	}

	return FontSource{Kind: FontLoaded, Path: path, font: f}
}

type faces struct {
	title, body, caption font.Face
}

var fallbackFaces = faces{
	title:   basicfont.Face7x13,
	body:    basicfont.Face7x13,
	caption: basicfont.Face7x13,
}

// faces новые лица на каждую картинку: opentype.Face нельзя делить между горутинами
func (s FontSource) faces() (faces, func()) {
	if s.Kind != FontLoaded || s.font == nil {
		return fallbackFaces, func() {}
	}

	var created []font.Face
	closeAll := func() {
		for _, f := range created {
			f.Close()
		}
	}

	var ret faces
	for _, item := range []struct {
		dst  *font.Face
		size float64
	}{
		{&ret.title, titleSize},
		{&ret.body, bodySize},
		{&ret.caption, captionSize},
	} {
		face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
			Size:    item.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			closeAll()
			return fallbackFaces, func() {}
		}
		created = append(created, face)
		*item.dst = face
	}

	return ret, closeAll
}
