package mask

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func solidPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func inside(x, y int, cx, cy, d float64) bool {
	dx := float64(x) + 0.5 - cx
	dy := float64(y) + 0.5 - cy
	return dx*dx+dy*dy <= (d/2)*(d/2)
}
