// Package decode turns encoded frame buffers into RGBA images.
//
// Decoding runs asynchronously: Decode returns a Future that the caller
// waits on. Any format registered with the image package can be decoded;
// PNG, JPEG, GIF, BMP, TIFF and WebP are registered by this package.
package decode

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/achilleasa/afterglow/log"
	"github.com/anthonynsimon/bild/clone"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// A Future holds the result of an in-flight decode.
type Future struct {
	done chan struct{}
	img  *image.RGBA
	err  error
}

// Wait for decoding to complete. If ctx expires first, Wait returns the
// context error; the decode itself keeps running until it finishes.
func (f *Future) Wait(ctx context.Context) (*image.RGBA, error) {
	select {
	case <-f.done:
		return f.img, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done returns a channel that is closed when decoding completes.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

type Decoder struct {
	logger log.Logger
}

func New() *Decoder {
	return &Decoder{
		logger: log.New("decoder"),
	}
}

// Start decoding buf in the background. The decoder takes ownership of
// buf; callers must not modify it afterwards.
func (d *Decoder) Decode(buf []byte) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.img, f.err = d.decode(buf)
	}()
	return f
}

func (d *Decoder) decode(buf []byte) (*image.RGBA, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyBuffer
	}

	src, format, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decoder: %w", err)
	}

	img := clone.AsRGBA(src)
	d.logger.Debugf("decoded %s frame (%dx%d, %d bytes)", format, img.Bounds().Dx(), img.Bounds().Dy(), len(buf))
	return img, nil
}
