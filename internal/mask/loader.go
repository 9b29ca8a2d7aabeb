package mask

import (
	"image"
	"io"
	"log"

	"MaskPaint/internal/state"
)

// Dispatcher runs fn on the goroutine that owns the Editor.
type Dispatcher func(fn func())

// LoadResult describes how one upload ended. Applied is false with a nil
// Err when a newer upload superseded this one.
type LoadResult struct {
	Generation uint64
	Format     string
	Size       image.Point
	ImageID    state.ImageID
	Applied    bool
	Err        error
}

// Loader reads and decodes uploads off the UI goroutine and applies the
// result through the dispatcher.
type Loader struct {
	editor   *Editor
	dispatch Dispatcher

	OnLoaded func(LoadResult)
}

// NewLoader returns a Loader for e. A nil dispatch runs results inline on
// the decoding goroutine.
func NewLoader(e *Editor, dispatch Dispatcher) *Loader {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Loader{editor: e, dispatch: dispatch}
}

// Load starts reading rc and returns the generation assigned to it. rc is
// closed once read.
func (l *Loader) Load(rc io.ReadCloser) uint64 {
	gen := l.editor.BeginLoad()
	go l.run(gen, rc)
	return gen
}

func (l *Loader) run(gen uint64, rc io.ReadCloser) {
	img, format, err := ReadImage(rc)
	if cerr := rc.Close(); cerr != nil {
		log.Printf("[LOAD] error closing upload: %v", cerr)
	}

	l.dispatch(func() {
		res := LoadResult{Generation: gen, Format: format, Err: err}
		if err != nil {
			log.Printf("[LOAD] generation %d failed: %v", gen, err)
		} else {
			res.Size = img.Bounds().Size()
			res.Applied = l.editor.ApplyImage(gen, img)
			if res.Applied {
				res.ImageID = l.editor.ImageID()
			}
		}
		if l.OnLoaded != nil {
			l.OnLoaded(res)
		}
	})
}

// Load reads and applies an image synchronously.
func (e *Editor) Load(r io.Reader) error {
	if !e.ready() {
		return ErrNoLayers
	}
	gen := e.BeginLoad()
	img, _, err := ReadImage(r)
	if err != nil {
		return err
	}
	e.ApplyImage(gen, img)
	return nil
}
