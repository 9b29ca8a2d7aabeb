package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"MaskPaint/internal/export"
	"MaskPaint/internal/mask"
)

// MaskWidget shows the image layer with the mask layer stacked on top and
// routes pointer input to the editor.
type MaskWidget struct {
	widget.BaseWidget
	editor *mask.Editor
	loader *mask.Loader

	imageBuf   *image.NRGBA
	maskBuf    *image.NRGBA
	imageLayer *canvas.Image
	maskLayer  *canvas.Image

	statusBar *widget.Label

	// OnImageLoaded is called on the UI goroutine after each upload settles.
	OnImageLoaded func(mask.LoadResult)
}

var _ fyne.Widget = (*MaskWidget)(nil)
var _ fyne.Draggable = (*MaskWidget)(nil)
var _ desktop.Mouseable = (*MaskWidget)(nil)
var _ desktop.Hoverable = (*MaskWidget)(nil)

func NewMaskWidget(e *mask.Editor) *MaskWidget {
	w := &MaskWidget{
		editor:    e,
		statusBar: widget.NewLabel("Open an image to start masking"),
	}
	w.imageBuf = e.CopyLayer(mask.ImageLayer, nil)
	w.maskBuf = e.CopyLayer(mask.MaskLayer, nil)
	w.imageLayer = newLayerImage(w.imageBuf)
	w.maskLayer = newLayerImage(w.maskBuf)

	e.OnChange = w.layerChanged
	w.loader = mask.NewLoader(e, fyne.Do)
	w.loader.OnLoaded = w.imageLoaded

	w.ExtendBaseWidget(w)
	return w
}

func newLayerImage(img *image.NRGBA) *canvas.Image {
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillStretch
	c.ScaleMode = canvas.ImageScalePixels
	return c
}

func (w *MaskWidget) Editor() *mask.Editor { return w.editor }

func (w *MaskWidget) StatusBar() *widget.Label { return w.statusBar }

func (w *MaskWidget) canvasSize() fyne.Size {
	cw, ch := w.editor.Size()
	return fyne.NewSize(float32(cw), float32(ch))
}

func (w *MaskWidget) layerChanged(l mask.Layer) {
	if l == mask.ImageLayer {
		w.imageBuf = w.editor.CopyLayer(mask.ImageLayer, w.imageBuf)
		w.imageLayer.Image = w.imageBuf
		w.imageLayer.Refresh()
		return
	}
	w.maskBuf = w.editor.CopyLayer(mask.MaskLayer, w.maskBuf)
	w.maskLayer.Image = w.maskBuf
	w.maskLayer.Refresh()
}

// SetStatus updates the status bar from any goroutine.
func (w *MaskWidget) SetStatus(text string) {
	fyne.Do(func() {
		w.statusBar.SetText(text)
	})
}

// LoadFromFile decodes the selected file in the background. The editor only
// switches images once decoding finishes, and only if no newer file was
// chosen in the meantime.
func (w *MaskWidget) LoadFromFile(reader fyne.URIReadCloser) {
	name := reader.URI().Name()
	gen := w.loader.Load(reader)
	log.Printf("[UI] loading %s as generation %d", name, gen)
	w.statusBar.SetText("Loading " + name + "...")
}

func (w *MaskWidget) imageLoaded(res mask.LoadResult) {
	switch {
	case res.Err != nil:
		w.statusBar.SetText("Could not open image: " + res.Err.Error())
	case res.Applied:
		cw, ch := w.editor.Size()
		w.statusBar.SetText(fmt.Sprintf("Loaded %s image %dx%d on a %dx%d canvas", res.Format, res.Size.X, res.Size.Y, cw, ch))
	default:
		log.Printf("[UI] generation %d superseded", res.Generation)
	}
	if w.OnImageLoaded != nil {
		w.OnImageLoaded(res)
	}
}

// ClearMask is called by the Clear button.
func (w *MaskWidget) ClearMask() {
	w.editor.Clear()
	w.statusBar.SetText("Mask cleared")
}

// SaveToFile writes the mask PNG to writer and closes it.
func (w *MaskWidget) SaveToFile(writer fyne.URIWriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}()

	if err := w.editor.Export(writer); err != nil {
		log.Printf("[EXPORT] saving %s failed: %v", writer.URI(), err)
		w.statusBar.SetText("Error saving mask")
		return
	}
	if w.editor.MaskEmpty() {
		w.statusBar.SetText("Saved blank mask to " + writer.URI().Name())
		return
	}
	w.statusBar.SetText("Saved mask to " + writer.URI().Name())
}

// SavePDF writes the mask as a one-page PDF to writer and closes it.
func (w *MaskWidget) SavePDF(writer fyne.URIWriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}()

	meta := export.Meta{Title: "Mask", ImageID: string(w.editor.ImageID())}
	if err := export.WritePDF(writer, w.editor.ExportImage(), meta); err != nil {
		log.Printf("[EXPORT] pdf %s failed: %v", writer.URI(), err)
		w.statusBar.SetText("Error saving PDF")
		return
	}
	w.statusBar.SetText("Saved PDF to " + writer.URI().Name())
}

func (w *MaskWidget) inside(p fyne.Position) bool {
	s := w.canvasSize()
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}

func (w *MaskWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !w.inside(e.Position) {
		return
	}
	w.editor.Press(float64(e.Position.X), float64(e.Position.Y))
}

func (w *MaskWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.editor.Release()
	}
}

func (w *MaskWidget) MouseMoved(e *desktop.MouseEvent) {
	w.move(e.Position)
}

func (w *MaskWidget) Dragged(e *fyne.DragEvent) {
	w.move(e.Position)
}

func (w *MaskWidget) move(p fyne.Position) {
	if !w.inside(p) {
		w.editor.Leave()
		return
	}
	w.editor.Move(float64(p.X), float64(p.Y))
}

func (w *MaskWidget) DragEnd()                    { w.editor.Release() }
func (w *MaskWidget) MouseIn(*desktop.MouseEvent) {}
func (w *MaskWidget) MouseOut()                   { w.editor.Leave() }

func (w *MaskWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &maskWidgetRenderer{mask: w}
	r.background = canvas.NewRectangle(color.White)
	r.background.StrokeColor = color.Gray{Y: 200}
	r.background.StrokeWidth = 1
	return r
}

type maskWidgetRenderer struct {
	mask       *MaskWidget
	background *canvas.Rectangle
}

func (r *maskWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.mask.imageLayer, r.mask.maskLayer}
}

func (r *maskWidgetRenderer) Layout(fyne.Size) {
	s := r.mask.canvasSize()
	for _, o := range r.Objects() {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(s)
	}
}

func (r *maskWidgetRenderer) MinSize() fyne.Size {
	return r.mask.canvasSize()
}

func (r *maskWidgetRenderer) Refresh() {
	r.background.Refresh()
	r.mask.imageLayer.Refresh()
	r.mask.maskLayer.Refresh()
}

func (r *maskWidgetRenderer) Destroy() {}
