package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Generation numbers image uploads. Only the latest generation may be
// applied; decodes finishing for an older one are discarded.
type Generation struct {
	n atomic.Uint64
}

// Next starts a new upload and returns its generation.
func (g *Generation) Next() uint64 {
	return g.n.Add(1)
}

func (g *Generation) Current() uint64 {
	return g.n.Load()
}

func (g *Generation) IsCurrent(gen uint64) bool {
	return gen != 0 && gen == g.n.Load()
}

// ImageID identifies one applied source image.
type ImageID string

func NewImageID() ImageID {
	return ImageID(uuid.NewString())
}
