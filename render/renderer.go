// Package render рисует расписание одного дня в PNG 1000x600.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"time"

	"github.com/notaneet/rasp03/logger"
	"github.com/notaneet/rasp03/model"
	"github.com/notaneet/rasp03/utils"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	Width  = 1000
	Height = 600

	margin      = 20
	timeWidth   = 150
	lineHeight  = 20
	bottomLimit = Height - 50
)

const (
	NoClasses     = "Пар нет"
	TimeHeader    = "Время"
	SubjectHeader = "Предмет и аудитория"
	Truncation    = "..."
)

var gray = color.Gray{Y: 128}

// ScheduleImage готовая картинка
type ScheduleImage struct {
	Image     *image.RGBA
	Empty     bool //Нарисовано только "Пар нет"
	Truncated bool //Не всё влезло, вместо остатка "..."
	Bottom    int  //Нижняя граница нарисованного
}

// Encode PNG
func (si *ScheduleImage) Encode(w io.Writer) error {
	return png.Encode(w, si.Image)
}

type Renderer struct {
	fonts FontSource
}

func NewRenderer(fonts FontSource, log logger.Logger) *Renderer {
	if fonts.Kind == FontFallback {
		log.Warning("font %s is not available, using built-in font: %v", fonts.Path, fonts.Err)
	} else {
		log.Info("using font %s", fonts.Path)
	}
	return &Renderer{fonts: fonts}
}

// Render слоты должны быть уже отсортированы
func (r *Renderer) Render(slots []model.TimeSlot, date time.Time, title string) *ScheduleImage {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	f, done := r.fonts.faces()
	defer done()

	c := &canvas{img: img, result: &ScheduleImage{Image: img}}

	c.text(margin, margin, fmt.Sprintf("%s (%s)", title, utils.FormatDate(date)), f.title)
	c.hline(60, 2, color.Black)

	y := 80
	if len(slots) == 0 {
		c.text(margin, y, NoClasses, f.body)
		c.result.Empty = true
		return c.result
	}

	c.text(margin, y, TimeHeader, f.body)
	c.text(margin+timeWidth, y, SubjectHeader, f.body)
	y += 30
	c.hline(y, 1, color.Black)
	y += 10

	for _, slot := range slots {
		// Следующая пара уже не влезет
		if y > bottomLimit {
			return c.truncate(y, f.body)
		}

		c.text(margin, y, slot.Time, f.body)
		for _, line := range wrapText(slot.Subject, wrapWidth) {
			if y > bottomLimit {
				return c.truncate(y, f.body)
			}
			c.text(margin+timeWidth, y, line, f.caption)
			y += lineHeight
		}

		y += 10
		c.hline(y, 1, gray)
		y += 20
	}

	return c.result
}

type canvas struct {
	img    *image.RGBA
	result *ScheduleImage
}

// text y - верх строки, как у PIL
func (c *canvas) text(x, y int, s string, face font.Face) {
	m := face.Metrics()
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(x, y+m.Ascent.Ceil()),
	}
	d.DrawString(s)

	if bottom := y + m.Height.Ceil(); bottom > c.result.Bottom {
		c.result.Bottom = bottom
	}
}

func (c *canvas) hline(y, width int, col color.Color) {
	draw.Draw(c.img, image.Rect(margin, y, Width-margin, y+width), image.NewUniform(col), image.Point{}, draw.Src)
	if y+width > c.result.Bottom {
		c.result.Bottom = y + width
	}
}

// truncate "..." вместо того, что не влезло, не ниже края холста
func (c *canvas) truncate(y int, face font.Face) *ScheduleImage {
	if maxY := Height - face.Metrics().Height.Ceil(); y > maxY {
		y = maxY
	}
	c.text(margin+timeWidth, y, Truncation, face)
	c.result.Truncated = true
	return c.result
}
