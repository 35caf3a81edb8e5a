package renderer

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Supported frame encodings.
const (
	PNG  = "png"
	BMP  = "bmp"
	TIFF = "tiff"
)

type encoderFn func(w io.Writer, img image.Image) error

func encoderFor(encoding string) (encoderFn, error) {
	switch strings.ToLower(encoding) {
	case "", PNG:
		return png.Encode, nil
	case BMP:
		return bmp.Encode, nil
	case TIFF:
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
}
