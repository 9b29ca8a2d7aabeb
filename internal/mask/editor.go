// Package mask implements the two-layer masking editor: an image layer holding
// the fitted source image and a transparent mask layer the user paints on.
package mask

import (
	"errors"
	"image"
	"image/color"
	"log"

	"MaskPaint/internal/raster"
	"MaskPaint/internal/state"
)

const (
	MaskFilename        = "masked-image.png"
	DefaultCanvasWidth  = 500
	DefaultCanvasHeight = 500
)

var ErrNoLayers = errors.New("mask: layers not initialised")

// Layer names one of the editor's rasters.
type Layer int

const (
	ImageLayer Layer = iota
	MaskLayer
)

// Options configures an Editor at construction. Zero values take defaults.
type Options struct {
	CanvasWidth  int
	CanvasHeight int
	ScrubSize    int
	EraserSize   int
}

// Editor owns both layers, the brush and the pointer session. It is not safe
// for concurrent use; callers drive it from a single UI goroutine.
type Editor struct {
	width, height int
	image         *raster.Surface
	mask          *raster.Surface

	brush   state.Brush
	session state.Session
	gen     state.Generation

	imageID   state.ImageID
	imageSize image.Point

	// OnChange is called after an operation alters a layer.
	OnChange func(Layer)
}

func NewEditor(opts Options) *Editor {
	if opts.CanvasWidth <= 0 {
		opts.CanvasWidth = DefaultCanvasWidth
	}
	if opts.CanvasHeight <= 0 {
		opts.CanvasHeight = DefaultCanvasHeight
	}

	e := &Editor{
		width:  opts.CanvasWidth,
		height: opts.CanvasHeight,
		image:  raster.NewSurface(opts.CanvasWidth, opts.CanvasHeight),
		mask:   raster.NewSurface(opts.CanvasWidth, opts.CanvasHeight),
		brush:  state.NewBrush(),
	}
	if opts.ScrubSize > 0 {
		e.brush.SetScrubSize(opts.ScrubSize)
	}
	if opts.EraserSize > 0 {
		e.brush.SetEraserSize(opts.EraserSize)
	}
	return e
}

func (e *Editor) ready() bool {
	return e != nil && e.image != nil && e.mask != nil
}

func (e *Editor) changed(l Layer) {
	if e.OnChange != nil {
		e.OnChange(l)
	}
}

// Size returns the canvas dimensions shared by both layers.
func (e *Editor) Size() (int, int) {
	if e == nil {
		return 0, 0
	}
	return e.width, e.height
}

func (e *Editor) Brush() state.Brush {
	if e == nil {
		return state.NewBrush()
	}
	return e.brush
}

func (e *Editor) SetMode(m state.Mode)        { e.brush.SetMode(m) }
func (e *Editor) SetScrubSize(size int)       { e.brush.SetScrubSize(size) }
func (e *Editor) SetEraserSize(size int)      { e.brush.SetEraserSize(size) }
func (e *Editor) SetScrubColor(c color.Color) { e.brush.SetScrubColor(c) }
func (e *Editor) ResetScrubSize()             { e.brush.ResetScrubSize() }
func (e *Editor) ResetEraserSize()            { e.brush.ResetEraserSize() }
func (e *Editor) ResetScrubColor()            { e.brush.ResetScrubColor() }

func (e *Editor) Phase() state.Phase {
	if e == nil {
		return state.Idle
	}
	return e.session.Phase()
}

// Press starts a painting session and stamps at (x, y).
func (e *Editor) Press(x, y float64) {
	if !e.ready() {
		return
	}
	e.session.Handle(state.Press)
	e.Stamp(x, y)
}

// Move stamps at (x, y) while a painting session is active.
func (e *Editor) Move(x, y float64) {
	if !e.ready() || !e.session.Painting() {
		return
	}
	e.Stamp(x, y)
}

func (e *Editor) Release() {
	if e != nil {
		e.session.Handle(state.Release)
	}
}

func (e *Editor) Leave() {
	if e != nil {
		e.session.Handle(state.Leave)
	}
}

// Stamp draws one brush circle at (x, y) using the current mode.
func (e *Editor) Stamp(x, y float64) {
	if !e.ready() {
		return
	}
	size := float64(e.brush.Size())
	if e.brush.Mode == state.ModeErase {
		e.mask.FillCircle(x, y, size, color.Transparent, raster.DestinationOut)
	} else {
		e.mask.FillCircle(x, y, size, e.brush.ScrubColor, raster.SourceOver)
	}
	e.changed(MaskLayer)
}

// Clear wipes the mask layer. The image layer is untouched.
func (e *Editor) Clear() {
	if !e.ready() {
		return
	}
	e.mask.Clear()
	e.changed(MaskLayer)
}

// MaskEmpty reports whether nothing is painted on the mask layer.
func (e *Editor) MaskEmpty() bool {
	if !e.ready() {
		return true
	}
	return e.mask.Transparent()
}

// CopyLayer copies a layer's pixels into dst, reallocating when needed.
// Returns nil when the editor has no layers.
func (e *Editor) CopyLayer(l Layer, dst *image.NRGBA) *image.NRGBA {
	if !e.ready() {
		return nil
	}
	if l == ImageLayer {
		return e.image.CopyTo(dst)
	}
	return e.mask.CopyTo(dst)
}

func (e *Editor) HasImage() bool {
	return e != nil && e.imageID != ""
}

func (e *Editor) ImageID() state.ImageID {
	if e == nil {
		return ""
	}
	return e.imageID
}

// ImageSize is the natural size of the current source image.
func (e *Editor) ImageSize() image.Point {
	if e == nil {
		return image.Point{}
	}
	return e.imageSize
}

// BeginLoad reserves a generation for a new upload. Any decode still in
// flight for an earlier generation will be discarded on arrival.
func (e *Editor) BeginLoad() uint64 {
	if e == nil {
		return 0
	}
	return e.gen.Next()
}

// ApplyImage draws img onto the image layer, fitted and centred, and clears
// the mask layer. It reports false without changing anything when gen has
// been superseded or img is empty.
func (e *Editor) ApplyImage(gen uint64, img image.Image) bool {
	if !e.ready() || img == nil {
		return false
	}
	if !e.gen.IsCurrent(gen) {
		log.Printf("[LOAD] discarding stale image for generation %d (latest %d)", gen, e.gen.Current())
		return false
	}
	b := img.Bounds()
	if b.Empty() {
		return false
	}

	fit := raster.Fit(e.width, e.height, b.Dx(), b.Dy())
	e.image.Clear()
	e.image.DrawImageScaled(img, fit.Rect())
	e.mask.Clear()
	e.session.Handle(state.Reset)

	e.imageID = state.NewImageID()
	e.imageSize = b.Size()
	log.Printf("[LOAD] image %s applied: %dx%d at scale %.3f into %v", e.imageID, b.Dx(), b.Dy(), fit.Scale, fit.Rect())

	e.changed(ImageLayer)
	e.changed(MaskLayer)
	return true
}
