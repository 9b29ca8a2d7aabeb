package state

import (
	"image/color"
)

// Mode is the active brush tool.
type Mode string

const (
	ModeScrub Mode = "scrub"
	ModeErase Mode = "erase"
)

const (
	MinBrushSize     = 10
	MaxBrushSize     = 50
	DefaultBrushSize = 20
)

// DefaultScrubColor is the mask colour used until the user picks another.
var DefaultScrubColor = color.NRGBA{A: 0xff}

// Brush holds the user-adjustable painting settings. Changes only affect
// future stamps.
type Brush struct {
	Mode       Mode
	ScrubSize  int
	EraserSize int
	ScrubColor color.NRGBA
}

func NewBrush() Brush {
	return Brush{
		Mode:       ModeScrub,
		ScrubSize:  DefaultBrushSize,
		EraserSize: DefaultBrushSize,
		ScrubColor: DefaultScrubColor,
	}
}

// ClampSize bounds a diameter to [MinBrushSize, MaxBrushSize].
func ClampSize(size int) int {
	return max(MinBrushSize, min(size, MaxBrushSize))
}

func (b *Brush) SetMode(m Mode) {
	if m != ModeErase {
		m = ModeScrub
	}
	b.Mode = m
}

func (b *Brush) SetScrubSize(size int)  { b.ScrubSize = ClampSize(size) }
func (b *Brush) SetEraserSize(size int) { b.EraserSize = ClampSize(size) }

// SetScrubColor stores c as an opaque colour; the mask never carries partial alpha.
func (b *Brush) SetScrubColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	b.ScrubColor = n
}

func (b *Brush) ResetScrubSize()  { b.ScrubSize = DefaultBrushSize }
func (b *Brush) ResetEraserSize() { b.EraserSize = DefaultBrushSize }
func (b *Brush) ResetScrubColor() { b.ScrubColor = DefaultScrubColor }

// Size is the stamp diameter for the active mode.
func (b Brush) Size() int {
	if b.Mode == ModeErase {
		return b.EraserSize
	}
	return b.ScrubSize
}
