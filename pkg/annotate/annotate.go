// Package annotate draws element bounds and tap coordinates onto device
// screenshots, so an agent can line up what it sees with what it can tap.
package annotate

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/devicelab-dev/droidview/pkg/hierarchy"
)

var (
	boxColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	textColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Screenshot draws a bounding box and a "(x,y)" center label for each
// element onto the PNG screenshot and returns the re-encoded image.
// Zero-area elements are skipped; dump bounds are already in screen pixels
// so no scaling is applied.
func Screenshot(pngData []byte, elements []hierarchy.FlatElement) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}

	rgba := toRGBA(img)
	for _, el := range elements {
		if el.Bounds.Width <= 0 || el.Bounds.Height <= 0 {
			continue
		}
		drawElementBox(rgba, el)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("encode screenshot: %w", err)
	}
	return buf.Bytes(), nil
}

// toRGBA converts any image to RGBA for drawing.
func toRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

func drawElementBox(img *image.RGBA, el hierarchy.FlatElement) {
	b := el.Bounds
	drawRectangle(img, b.X, b.Y, b.X+b.Width, b.Y+b.Height, boxColor)

	center := b.Center()
	label := fmt.Sprintf("(%d,%d)", center.X, center.Y)
	drawTextWithOutline(img, label, center.X, center.Y, textColor, outlineColor)
}

// drawRectangle draws a one-pixel rectangle outline, clamped to the image.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}

	for x := x1; x < x2; x++ {
		img.Set(x, y1, c)
		img.Set(x, y2-1, c)
	}
	for y := y1; y < y2; y++ {
		img.Set(x1, y, c)
		img.Set(x2-1, y, c)
	}
}

// drawTextWithOutline draws the label centered at (cx, cy) with a one-pixel
// outline so it stays readable on any background.
func drawTextWithOutline(img *image.RGBA, label string, cx, cy int, fg, outline color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, label).Ceil()
	x := cx - width/2
	y := cy + face.Ascent/2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawText(img, face, label, x+dx, y+dy, outline)
		}
	}
	drawText(img, face, label, x, y, fg)
}

func drawText(img *image.RGBA, face font.Face, label string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}
