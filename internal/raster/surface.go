// Package raster provides the drawing surface both canvas layers are built on.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
)

// CompositeMode selects how a fill combines with the pixels already on a surface.
type CompositeMode int

const (
	// SourceOver paints opaque colour over whatever is there.
	SourceOver CompositeMode = iota
	// DestinationOut removes the covered pixels, leaving them transparent.
	DestinationOut
)

func (m CompositeMode) String() string {
	switch m {
	case SourceOver:
		return "source-over"
	case DestinationOut:
		return "destination-out"
	}
	return "unknown"
}

// Surface is a fixed-size, non-premultiplied RGBA pixel buffer.
type Surface struct {
	img *image.NRGBA
}

// NewSurface allocates a fully transparent surface of w x h pixels.
func NewSurface(w, h int) *Surface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Surface{img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

func (s *Surface) Bounds() image.Rectangle { return s.img.Bounds() }
func (s *Surface) Width() int              { return s.img.Bounds().Dx() }
func (s *Surface) Height() int             { return s.img.Bounds().Dy() }

// At returns the pixel at (x, y) as stored.
func (s *Surface) At(x, y int) color.NRGBA {
	return s.img.NRGBAAt(x, y)
}

// Clear resets every pixel to fully transparent.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// Fill paints the whole surface with c, replacing what was there.
func (s *Surface) Fill(c color.Color) {
	xdraw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
}

// DrawImageScaled resamples src into dst, replacing the pixels inside dst.
func (s *Surface) DrawImageScaled(src image.Image, dst image.Rectangle) {
	if src == nil || dst.Empty() {
		return
	}
	xdraw.CatmullRom.Scale(s.img, dst, src, src.Bounds(), xdraw.Src, nil)
}

// FillCircle fills a circle of the given diameter centred on (cx, cy).
// Coverage is hard-edged: a pixel is inside when its centre is within the radius.
func (s *Surface) FillCircle(cx, cy, diameter float64, c color.Color, mode CompositeMode) {
	if diameter <= 0 {
		return
	}
	m := circleMask{cx: cx, cy: cy, r: diameter / 2}
	r := m.Bounds().Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}

	switch mode {
	case DestinationOut:
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if m.covers(x, y) {
					i := s.img.PixOffset(x, y)
					clear(s.img.Pix[i : i+4])
				}
			}
		}
	default:
		xdraw.DrawMask(s.img, r, image.NewUniform(c), image.Point{}, m, r.Min, xdraw.Over)
	}
}

// DrawOver composites src on top of s with source-over. Both surfaces are
// aligned at their origin.
func (s *Surface) DrawOver(src *Surface) {
	if src == nil {
		return
	}
	xdraw.Draw(s.img, s.img.Bounds(), src.img, src.img.Bounds().Min, xdraw.Over)
}

// Transparent reports whether every pixel has zero alpha.
func (s *Surface) Transparent() bool {
	for i := 3; i < len(s.img.Pix); i += 4 {
		if s.img.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// CopyTo copies the pixels into dst and returns it. A new buffer is allocated
// when dst is nil or has different bounds.
func (s *Surface) CopyTo(dst *image.NRGBA) *image.NRGBA {
	if dst == nil || dst.Bounds() != s.img.Bounds() {
		dst = image.NewNRGBA(s.img.Bounds())
	}
	copy(dst.Pix, s.img.Pix)
	return dst
}

// Snapshot returns an independent copy of the surface pixels.
func (s *Surface) Snapshot() *image.NRGBA {
	return s.CopyTo(nil)
}

// EncodePNG writes the surface as a PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, s.img)
}

type circleMask struct {
	cx, cy, r float64
}

func (m circleMask) ColorModel() color.Model { return color.AlphaModel }

func (m circleMask) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(m.cx-m.r)),
		int(math.Floor(m.cy-m.r)),
		int(math.Ceil(m.cx+m.r)),
		int(math.Ceil(m.cy+m.r)),
	)
}

func (m circleMask) At(x, y int) color.Color {
	if m.covers(x, y) {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

func (m circleMask) covers(x, y int) bool {
	dx := float64(x) + 0.5 - m.cx
	dy := float64(y) + 0.5 - m.cy
	return dx*dx+dy*dy <= m.r*m.r
}
