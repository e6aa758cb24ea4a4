package preview

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// captionMargin is the distance of the caption from the image corner, in pixels.
const captionMargin = 4

// captionWidth returns the pixels s needs, margins included.
func captionWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil() + 2*captionMargin
}

// drawCaption copies img and writes s in its top-left corner using the
// 7x13 bitmap face.
func drawCaption(img image.Image, s string) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(b.Min.X+captionMargin, b.Min.Y+captionMargin+face.Ascent),
	}
	d.DrawString(s)
	return dst
}
