// Package export writes exported masks to document formats.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const PDFFilename = "masked-image.pdf"

// Meta describes the document a mask is written into.
type Meta struct {
	Title   string
	ImageID string
}

// WritePDF embeds img in a single-page PDF whose page is exactly the image
// size, one point per pixel.
func WritePDF(w io.Writer, img image.Image, meta Meta) error {
	if img == nil || img.Bounds().Empty() {
		return errors.New("export: no mask to write")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode mask: %w", err)
	}

	wd := float64(img.Bounds().Dx())
	ht := float64(img.Bounds().Dy())
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.SetCreator("MaskPaint", true)
	if meta.Title != "" {
		p.SetTitle(meta.Title, true)
	}
	if meta.ImageID != "" {
		p.SetSubject("mask for image "+meta.ImageID, true)
	}
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("mask", opts, &buf)
	p.ImageOptions("mask", 0, 0, wd, ht, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
