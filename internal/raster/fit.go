package raster

import (
	"image"
	"math"
)

// FitTransform maps a source image into canvas bounds without distortion,
// scaled to fit and centred.
type FitTransform struct {
	CanvasWidth, CanvasHeight int
	Scale                     float64
	Width, Height             float64
	OffsetX, OffsetY          float64
}

// Fit computes the transform for an iw x ih image on a cw x ch canvas.
// A non-positive image dimension yields a zero transform.
func Fit(cw, ch, iw, ih int) FitTransform {
	f := FitTransform{CanvasWidth: cw, CanvasHeight: ch}
	if iw <= 0 || ih <= 0 || cw <= 0 || ch <= 0 {
		return f
	}
	f.Scale = math.Min(float64(cw)/float64(iw), float64(ch)/float64(ih))
	f.Width = float64(iw) * f.Scale
	f.Height = float64(ih) * f.Scale
	f.OffsetX = (float64(cw) - f.Width) / 2
	f.OffsetY = (float64(ch) - f.Height) / 2
	return f
}

// Rect is the integer destination rectangle. Opposite margins differ by at
// most one pixel.
func (f FitTransform) Rect() image.Rectangle {
	if f.Scale == 0 {
		return image.Rectangle{}
	}
	w := min(int(math.Round(f.Width)), f.CanvasWidth)
	h := min(int(math.Round(f.Height)), f.CanvasHeight)
	x := (f.CanvasWidth - w) / 2
	y := (f.CanvasHeight - h) / 2
	return image.Rect(x, y, x+w, y+h)
}
