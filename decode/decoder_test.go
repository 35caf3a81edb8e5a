package decode

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func encodeSolid(t *testing.T, c color.NRGBA, encode func(*bytes.Buffer, image.Image) error) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, c)
	img.SetNRGBA(1, 0, c)

	var buf bytes.Buffer
	if err := encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeFormats(t *testing.T) {
	type spec struct {
		name   string
		encode func(*bytes.Buffer, image.Image) error
	}
	specs := []spec{
		{"png", func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) }},
		{"bmp", func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) }},
	}

	red := color.NRGBA{R: 255, A: 255}
	for _, s := range specs {
		buf := encodeSolid(t, red, s.encode)

		img, err := New().Decode(buf).Wait(context.Background())
		if err != nil {
			t.Fatalf("[%s] decode failed: %v", s.name, err)
		}
		if img.Bounds() != image.Rect(0, 0, 2, 1) {
			t.Fatalf("[%s] expected bounds 2x1; got %v", s.name, img.Bounds())
		}
		if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 255, A: 255}) {
			t.Fatalf("[%s] expected red pixel; got %v", s.name, got)
		}
	}
}

func TestDecodePremultipliesAlpha(t *testing.T) {
	buf := encodeSolid(t, color.NRGBA{R: 200, G: 100, A: 128}, func(b *bytes.Buffer, img image.Image) error {
		return png.Encode(b, img)
	})

	img, err := New().Decode(buf).Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	got := img.RGBAAt(0, 0)
	if got.A != 128 || got.R != 100 || got.G != 50 {
		t.Fatalf("expected premultiplied pixel {100 50 0 128}; got %v", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	dec := New()

	if _, err := dec.Decode(nil).Wait(context.Background()); err != ErrEmptyBuffer {
		t.Fatalf("expected error %v; got %v", ErrEmptyBuffer, err)
	}

	if _, err := dec.Decode([]byte("not an image")).Wait(context.Background()); !errors.Is(err, image.ErrFormat) {
		t.Fatalf("expected error wrapping %v; got %v", image.ErrFormat, err)
	}
}

func TestWaitHonoursContext(t *testing.T) {
	f := &Future{done: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.Wait(ctx); err != context.Canceled {
		t.Fatalf("expected error %v; got %v", context.Canceled, err)
	}
}
