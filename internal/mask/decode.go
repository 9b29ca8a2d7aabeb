package mask

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxUploadBytes caps how much of a selected file is read.
const MaxUploadBytes = 64 * 1024 * 1024

var (
	ErrEmptyImage = errors.New("image has no pixels")
	ErrTooLarge   = fmt.Errorf("image file exceeds %d bytes", MaxUploadBytes)
)

// ReadImage reads and decodes one image file.
func ReadImage(r io.Reader) (image.Image, string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return nil, "", ErrTooLarge
	}
	return DecodeImage(data)
}

func DecodeImage(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, format, ErrEmptyImage
	}
	return img, format, nil
}
