package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MaskPaint/internal/state"
)

// maskPalette is offered as swatches next to the custom colour picker.
var maskPalette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},
	color.NRGBA{G: 255, A: 255},
	color.NRGBA{B: 255, A: 255},
	color.NRGBA{R: 255, G: 255, A: 255},
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Controls holds the toolbar widgets so their state can follow the editor.
type Controls struct {
	board *MaskWidget

	modeLabel    *widget.Label
	current      *canvas.Rectangle
	scrubSlider  *widget.Slider
	scrubValue   *widget.Label
	eraserSlider *widget.Slider
	eraserValue  *widget.Label
}

func NewControls(board *MaskWidget) *Controls {
	c := &Controls{
		board:     board,
		modeLabel: widget.NewLabel(""),
		current:   canvas.NewRectangle(color.Black),
	}
	c.current.SetMinSize(fyne.NewSize(28, 28))
	c.scrubSlider, c.scrubValue = c.newSizeSlider(board.editor.SetScrubSize)
	c.eraserSlider, c.eraserValue = c.newSizeSlider(board.editor.SetEraserSize)
	c.sync()
	return c
}

func (c *Controls) newSizeSlider(set func(int)) (*widget.Slider, *widget.Label) {
	s := widget.NewSlider(state.MinBrushSize, state.MaxBrushSize)
	s.Step = 1
	value := widget.NewLabel("")
	s.OnChanged = func(v float64) {
		set(int(v))
		c.sync()
	}
	return s, value
}

// sync copies the editor's brush into the widgets.
func (c *Controls) sync() {
	b := c.board.editor.Brush()
	c.modeLabel.SetText("Mode: " + string(b.Mode))
	c.current.FillColor = b.ScrubColor
	c.current.Refresh()
	if int(c.scrubSlider.Value) != b.ScrubSize {
		c.scrubSlider.SetValue(float64(b.ScrubSize))
	}
	if int(c.eraserSlider.Value) != b.EraserSize {
		c.eraserSlider.SetValue(float64(b.EraserSize))
	}
	c.scrubValue.SetText(fmt.Sprintf("%d px", b.ScrubSize))
	c.eraserValue.SetText(fmt.Sprintf("%d px", b.EraserSize))
}

func (c *Controls) SetMode(m state.Mode) {
	c.board.editor.SetMode(m)
	c.sync()
}

func (c *Controls) SetColor(col color.Color) {
	c.board.editor.SetScrubColor(col)
	c.sync()
}

func (c *Controls) ResetScrubSize() {
	c.board.editor.ResetScrubSize()
	c.sync()
}

func (c *Controls) ResetEraserSize() {
	c.board.editor.ResetEraserSize()
	c.sync()
}

func (c *Controls) ResetColor() {
	c.board.editor.ResetScrubColor()
	c.sync()
}

// --- The Main Toolbar ---
func (c *Controls) Build(win fyne.Window) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() { showOpenDialog(c.board, win) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() { c.SetMode(state.ModeScrub) }), // Scrub
		widget.NewToolbarAction(theme.DeleteIcon(), func() { c.SetMode(state.ModeErase) }),         // Erase
	)

	swatches := container.NewHBox()
	for _, col := range maskPalette {
		swatches.Add(newColorSwatch(col, c.SetColor))
	}
	custom := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		picker := dialog.NewColorPicker("Mask colour", "Colour used by the scrub brush", c.SetColor, win)
		picker.Advanced = true
		picker.Show()
	})
	resetColor := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), c.ResetColor)

	sliderBox := func(s *widget.Slider) fyne.CanvasObject {
		return container.New(layout.NewGridWrapLayout(fyne.NewSize(140, 35)), s)
	}

	brushRow := container.NewHBox(
		widget.NewLabel("Tool:"), tb, c.modeLabel,
		widget.NewSeparator(),
		widget.NewLabel("Colour:"), c.current, swatches, custom, resetColor,
		layout.NewSpacer(),
	)
	sizeRow := container.NewHBox(
		widget.NewLabel("Scrub size:"), sliderBox(c.scrubSlider), c.scrubValue,
		widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), c.ResetScrubSize),
		widget.NewSeparator(),
		widget.NewLabel("Eraser size:"), sliderBox(c.eraserSlider), c.eraserValue,
		widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), c.ResetEraserSize),
		layout.NewSpacer(),
	)
	actionRow := container.NewHBox(
		widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), c.board.ClearMask),
		widget.NewButtonWithIcon("Download Mask", theme.DownloadIcon(), func() { showSaveDialog(c.board, win) }),
		widget.NewButtonWithIcon("Export PDF", theme.DocumentPrintIcon(), func() { showPDFDialog(c.board, win) }),
		layout.NewSpacer(),
	)
	return container.NewVBox(brushRow, sizeRow, actionRow)
}
