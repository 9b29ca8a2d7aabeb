package mask

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queue collects dispatched functions so the test goroutine can play the
// part of the UI thread.
type queue chan func()

func (q queue) dispatch(fn func()) { q <- fn }

func (q queue) next(t *testing.T) func() {
	t.Helper()
	select {
	case fn := <-q:
		return fn
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for dispatched load")
		return nil
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestLoaderAppliesOnDispatch(t *testing.T) {
	e := NewEditor(Options{CanvasWidth: 40, CanvasHeight: 40})
	q := make(queue, 4)
	l := NewLoader(e, q.dispatch)

	var results []LoadResult
	l.OnLoaded = func(r LoadResult) { results = append(results, r) }

	gen := l.Load(io.NopCloser(bytes.NewReader(solidPNG(t, 20, 10, white))))
	assert.False(t, e.HasImage(), "nothing applied before dispatch runs")

	q.next(t)()
	require.Len(t, results, 1)
	assert.Equal(t, gen, results[0].Generation)
	assert.True(t, results[0].Applied)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "png", results[0].Format)
	assert.Equal(t, image.Pt(20, 10), results[0].Size)
	assert.Equal(t, e.ImageID(), results[0].ImageID)
}

func TestLoaderDiscardsSupersededDecode(t *testing.T) {
	e := NewEditor(Options{CanvasWidth: 40, CanvasHeight: 40})
	q := make(queue, 4)
	l := NewLoader(e, q.dispatch)

	results := map[uint64]LoadResult{}
	l.OnLoaded = func(r LoadResult) { results[r.Generation] = r }

	blue := color.NRGBA{B: 255, A: 255}
	first := l.Load(io.NopCloser(bytes.NewReader(solidPNG(t, 40, 40, color.NRGBA{R: 255, A: 255}))))
	second := l.Load(io.NopCloser(bytes.NewReader(solidPNG(t, 40, 40, blue))))

	// Completion order is up to the scheduler; either way only the latest
	// upload may reach the image layer.
	q.next(t)()
	q.next(t)()

	require.Len(t, results, 2)
	assert.False(t, results[first].Applied)
	assert.NoError(t, results[first].Err)
	assert.True(t, results[second].Applied)

	px := e.CopyLayer(ImageLayer, nil).NRGBAAt(20, 20)
	assert.Greater(t, px.B, uint8(250))
	assert.Less(t, px.R, uint8(5))
}

func TestLoaderStaleDecodeDoesNotClearNewMask(t *testing.T) {
	e := NewEditor(Options{CanvasWidth: 40, CanvasHeight: 40})
	q := make(queue, 4)
	l := NewLoader(e, q.dispatch)

	l.Load(io.NopCloser(bytes.NewReader(solidPNG(t, 8, 8, white))))
	q.next(t)()

	stale := l.Load(io.NopCloser(bytes.NewReader(solidPNG(t, 8, 8, white))))
	latest := l.Load(io.NopCloser(bytes.NewReader(solidPNG(t, 8, 8, white))))
	require.Greater(t, latest, stale)

	var applied []uint64
	l.OnLoaded = func(r LoadResult) {
		if r.Applied {
			applied = append(applied, r.Generation)
		}
	}
	q.next(t)()
	q.next(t)()
	require.Equal(t, []uint64{latest}, applied)

	e.Stamp(20, 20)
	assert.False(t, e.MaskEmpty())
}

func TestLoaderReportsErrors(t *testing.T) {
	e := NewEditor(Options{CanvasWidth: 40, CanvasHeight: 40})
	done := make(chan LoadResult, 2)
	l := NewLoader(e, nil)
	l.OnLoaded = func(r LoadResult) { done <- r }

	l.Load(io.NopCloser(bytes.NewReader([]byte("GIF89a garbage"))))
	r := <-done
	assert.Error(t, r.Err)
	assert.False(t, r.Applied)

	l.Load(io.NopCloser(failingReader{}))
	r = <-done
	assert.ErrorContains(t, r.Err, "disk on fire")
	assert.False(t, e.HasImage())
}

func TestReadImageTooLarge(t *testing.T) {
	_, _, err := ReadImage(io.LimitReader(zeros{}, MaxUploadBytes+10))
	assert.ErrorIs(t, err, ErrTooLarge)
}

type zeros struct{}

func (zeros) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
