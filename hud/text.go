package hud

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextRenderer rasterizes overlay text into an RGBA image using a fixed
// 7x13 bitmap face. It is the software path; backends with their own text
// pipeline implement Renderer directly.
type TextRenderer struct {
	dst  *image.RGBA
	face font.Face
	col  color.Color
}

// NewTextRenderer creates a renderer drawing white text into dst.
func NewTextRenderer(dst *image.RGBA) *TextRenderer {
	return &TextRenderer{
		dst:  dst,
		face: basicfont.Face7x13,
		col:  color.White,
	}
}

// SetColor changes the text color for subsequent DrawText calls.
func (t *TextRenderer) SetColor(c color.Color) {
	t.col = c
}

// DrawText draws one line with its baseline origin at pos. Text outside
// the image bounds is clipped by the draw, not an error.
func (t *TextRenderer) DrawText(pos Pos, text string) {
	d := font.Drawer{
		Dst:  t.dst,
		Src:  image.NewUniform(t.col),
		Face: t.face,
		Dot:  fixed.P(int(pos.X), int(pos.Y)),
	}
	d.DrawString(text)
}
