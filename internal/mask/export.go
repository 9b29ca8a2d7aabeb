package mask

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"MaskPaint/internal/raster"
)

func (e *Editor) flatten() *raster.Surface {
	out := raster.NewSurface(e.width, e.height)
	out.Fill(color.White)
	out.DrawOver(e.mask)
	return out
}

// ExportImage returns the mask composited over an opaque white background.
// The source image never appears in it. Nil when the editor has no layers.
func (e *Editor) ExportImage() *image.NRGBA {
	if !e.ready() {
		return nil
	}
	return e.flatten().Snapshot()
}

// Export writes the flattened mask as a PNG.
func (e *Editor) Export(w io.Writer) error {
	if !e.ready() {
		return ErrNoLayers
	}
	if err := e.flatten().EncodePNG(w); err != nil {
		return fmt.Errorf("encode mask: %w", err)
	}
	log.Printf("[EXPORT] wrote %dx%d mask (image %q)", e.width, e.height, e.imageID)
	return nil
}
