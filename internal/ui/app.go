package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"MaskPaint/internal/config"
	"MaskPaint/internal/export"
	"MaskPaint/internal/mask"
)

// NewWindow builds the masking window for cfg on a.
func NewWindow(a fyne.App, cfg config.Config) (fyne.Window, *MaskWidget) {
	win := a.NewWindow("Mask Paint")

	editor := mask.NewEditor(mask.Options{
		CanvasWidth:  cfg.CanvasWidth,
		CanvasHeight: cfg.CanvasHeight,
		ScrubSize:    cfg.ScrubSize,
		EraserSize:   cfg.EraserSize,
	})
	board := NewMaskWidget(editor)
	controls := NewControls(board).Build(win)

	content := container.NewBorder(controls, board.StatusBar(), nil, nil, container.NewCenter(board))
	win.SetContent(content)
	win.Resize(fyne.NewSize(float32(cfg.CanvasWidth)+120, float32(cfg.CanvasHeight)+220))
	return win, board
}

func RunApp(a fyne.App, cfg config.Config) {
	win, _ := NewWindow(a, cfg)
	log.Printf("[UI] starting with %dx%d canvas", cfg.CanvasWidth, cfg.CanvasHeight)
	win.ShowAndRun()
}

func showOpenDialog(board *MaskWidget, win fyne.Window) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if reader == nil {
			return
		}
		board.LoadFromFile(reader)
	}, win)
	d.SetFilter(storage.NewMimeTypeFileFilter([]string{"image/*"}))
	d.Show()
}

func showSaveDialog(board *MaskWidget, win fyne.Window) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		board.SaveToFile(writer)
	}, win)
	d.SetFileName(mask.MaskFilename)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.Show()
}

func showPDFDialog(board *MaskWidget, win fyne.Window) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		board.SavePDF(writer)
	}, win)
	d.SetFileName(export.PDFFilename)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.Show()
}
