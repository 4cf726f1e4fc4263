package media

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const textMarkPadding = 8

// RenderTextMark rasterizes a watermark text into a translucent white mark on
// a transparent canvas, usable wherever an image asset would be. This backs
// deployments that have no uploaded watermark image yet.
func RenderTextMark(text string, fontSize float64, alpha uint8) (image.Image, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	face := truetype.NewFace(f, &truetype.Options{Size: fontSize})
	defer face.Close()

	width := font.MeasureString(face, text).Ceil() + 2*textMarkPadding
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil() + 2*textMarkPadding

	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.Transparent, image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(fontSize)
	c.SetClip(canvas.Bounds())
	c.SetDst(canvas)
	c.SetSrc(image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: alpha}))

	pt := freetype.Pt(textMarkPadding, textMarkPadding+metrics.Ascent.Ceil())
	if _, err := c.DrawString(text, pt); err != nil {
		return nil, err
	}

	return canvas, nil
}
