package state

import (
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBrushDefaults(t *testing.T) {
	b := NewBrush()
	assert.Equal(t, ModeScrub, b.Mode)
	assert.Equal(t, 20, b.ScrubSize)
	assert.Equal(t, 20, b.EraserSize)
	assert.Equal(t, color.NRGBA{A: 255}, b.ScrubColor)
}

func TestBrushSizeBounds(t *testing.T) {
	tests := []struct {
		name     string
		in       int
		expected int
	}{
		{"below minimum", 3, 10},
		{"minimum", 10, 10},
		{"inside", 33, 33},
		{"maximum", 50, 50},
		{"above maximum", 500, 50},
		{"negative", -4, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBrush()
			b.SetScrubSize(tt.in)
			b.SetEraserSize(tt.in)
			assert.Equal(t, tt.expected, b.ScrubSize)
			assert.Equal(t, tt.expected, b.EraserSize)
		})
	}
}

func TestBrushResetsAreIndependent(t *testing.T) {
	b := NewBrush()
	b.SetScrubSize(45)
	b.SetEraserSize(12)
	b.SetScrubColor(color.NRGBA{R: 200, A: 255})

	b.ResetScrubSize()
	assert.Equal(t, 20, b.ScrubSize)
	assert.Equal(t, 12, b.EraserSize)
	assert.Equal(t, uint8(200), b.ScrubColor.R)

	b.ResetEraserSize()
	assert.Equal(t, 20, b.EraserSize)

	b.ResetScrubColor()
	assert.Equal(t, DefaultScrubColor, b.ScrubColor)
}

func TestBrushColorIsOpaque(t *testing.T) {
	b := NewBrush()
	b.SetScrubColor(color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, b.ScrubColor)
}

func TestBrushSizeFollowsMode(t *testing.T) {
	b := NewBrush()
	b.SetScrubSize(15)
	b.SetEraserSize(40)
	assert.Equal(t, 15, b.Size())

	b.SetMode(ModeErase)
	assert.Equal(t, 40, b.Size())

	b.SetMode(Mode("bogus"))
	assert.Equal(t, ModeScrub, b.Mode)
}

func TestSessionTransitions(t *testing.T) {
	var s Session
	assert.Equal(t, Idle, s.Phase())

	assert.Equal(t, Painting, s.Handle(Press))
	assert.True(t, s.Painting())
	assert.Equal(t, Painting, s.Handle(Press))

	assert.Equal(t, Idle, s.Handle(Release))
	assert.Equal(t, Idle, s.Handle(Release))

	s.Handle(Press)
	assert.Equal(t, Idle, s.Handle(Leave))

	s.Handle(Press)
	assert.Equal(t, Idle, s.Handle(Reset))
	assert.Equal(t, "idle", s.Phase().String())
	assert.Equal(t, "painting", Painting.String())
}

func TestGeneration(t *testing.T) {
	var g Generation
	assert.False(t, g.IsCurrent(0))

	first := g.Next()
	assert.True(t, g.IsCurrent(first))

	second := g.Next()
	assert.Greater(t, second, first)
	assert.False(t, g.IsCurrent(first))
	assert.True(t, g.IsCurrent(second))
}

func TestGenerationConcurrentNext(t *testing.T) {
	var g Generation
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Next()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(50), g.Current())
}

func TestNewImageID(t *testing.T) {
	a, b := NewImageID(), NewImageID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
